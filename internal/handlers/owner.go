package handlers

import (
	"net/http"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type OwnerHandler struct {
	ownerService *services.OwnerService
}

func NewOwnerHandler(ownerService *services.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

func (h *OwnerHandler) ListOwners(c *gin.Context) {
	pageNumber, err := parsePositiveInt(c.DefaultQuery("pageNumber", "1"))
	if err != nil {
		c.Error(apperrors.NewValidation("pageNumber must be a positive integer"))
		return
	}
	pageSize, err := parsePositiveInt(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		c.Error(apperrors.NewValidation("pageSize must be a positive integer"))
		return
	}

	result, err := h.ownerService.ListOwners(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *OwnerHandler) GetOwnerByID(c *gin.Context) {
	owner, err := h.ownerService.GetOwnerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	var req models.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewValidation("invalid request body: %v", err))
		return
	}

	owner, err := h.ownerService.CreateOwner(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, owner)
}
