package handlers

import (
	"net/http"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyTraceHandler struct {
	traceService *services.PropertyTraceService
}

func NewPropertyTraceHandler(traceService *services.PropertyTraceService) *PropertyTraceHandler {
	return &PropertyTraceHandler{traceService: traceService}
}

func (h *PropertyTraceHandler) GetTraceByID(c *gin.Context) {
	trace, err := h.traceService.GetTraceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, trace)
}

func (h *PropertyTraceHandler) CreateTrace(c *gin.Context) {
	var req models.CreatePropertyTraceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewValidation("invalid request body: %v", err))
		return
	}

	trace, err := h.traceService.CreateTrace(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, trace)
}
