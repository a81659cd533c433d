package handlers

import (
	"net/http"
	"strconv"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// ListProperties handles GET /properties. Name, address and the price
// bounds are optional; absent filters match everything.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	criteria := models.PropertyCriteria{
		Name:    c.Query("name"),
		Address: c.Query("address"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		d, err := models.ParseDecimal(raw)
		if err != nil {
			c.Error(apperrors.NewValidation("minPrice is not a valid decimal"))
			return
		}
		criteria.MinPrice = &d
	}
	if raw := c.Query("maxPrice"); raw != "" {
		d, err := models.ParseDecimal(raw)
		if err != nil {
			c.Error(apperrors.NewValidation("maxPrice is not a valid decimal"))
			return
		}
		criteria.MaxPrice = &d
	}

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

	result, err := h.propertyService.ListProperties(c.Request.Context(), criteria, pageNumber, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPropertyByID handles GET /properties/:id.
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	property, err := h.propertyService.GetPropertyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// CreateProperty handles POST /properties.
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req models.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewValidation("invalid request body: %v", err))
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// ListPropertyImages handles GET /properties/:id/images.
func (h *PropertyHandler) ListPropertyImages(c *gin.Context) {
	images, err := h.propertyService.ListEnabledImages(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// ListPropertyTraces handles GET /properties/:id/traces.
func (h *PropertyHandler) ListPropertyTraces(c *gin.Context) {
	traces, err := h.propertyService.ListTraces(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, traces)
}

func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
