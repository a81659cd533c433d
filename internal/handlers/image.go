package handlers

import (
	"net/http"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyImageHandler struct {
	imageService *services.PropertyImageService
}

func NewPropertyImageHandler(imageService *services.PropertyImageService) *PropertyImageHandler {
	return &PropertyImageHandler{imageService: imageService}
}

func (h *PropertyImageHandler) ListImages(c *gin.Context) {
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

	result, err := h.imageService.ListImages(c.Request.Context(), c.Query("propertyId"), pageNumber, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PropertyImageHandler) GetImageByID(c *gin.Context) {
	image, err := h.imageService.GetImageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *PropertyImageHandler) CreateImage(c *gin.Context) {
	var req models.CreatePropertyImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewValidation("invalid request body: %v", err))
		return
	}

	image, err := h.imageService.CreateImage(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, image)
}
