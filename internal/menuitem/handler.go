package menuitem

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/customization"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), req.Name, req.Description, req.BasePrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_items": items})
}

func (h *Handler) Get(c *gin.Context) {
	item, err := h.service.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// Rule editor (MANAGER)
// --------------------------------------------------
func (h *Handler) SaveRules(c *gin.Context) {
	var req struct {
		Rules []customization.CustomizationRule `json:"rules"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.service.SaveRules(c.Request.Context(), c.Param("id"), req.Rules)
	if err != nil {
		var structural *customization.StructuralError
		if errors.As(err, &structural) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": structural.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rules saved"})
}

// --------------------------------------------------
// Customization surface (ordering kiosk, PUBLIC)
// --------------------------------------------------
func (h *Handler) GetCustomizations(c *gin.Context) {
	view, err := h.service.GetCustomizations(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// Photo upload
// --------------------------------------------------
func (h *Handler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}

	url, err := h.service.AttachPhoto(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"photo_url": url})
}
