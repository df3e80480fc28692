package order

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

// --------------------------------------------------
// Kiosk asks for a price before adding to cart (PUBLIC)
// --------------------------------------------------
func (h *Handler) QuoteLine(c *gin.Context) {
	var line Line
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	quote, err := h.service.QuoteLine(c.Request.Context(), line)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// --------------------------------------------------
// Cashier places the order
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Lines []Line `json:"lines"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	placedBy := c.GetString("employeeID")

	o, err := h.service.Checkout(c.Request.Context(), placedBy, req.Lines)
	if err != nil {
		var vErr *customization.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Reason})
			return
		}
		if errors.Is(err, ErrInsufficientStock) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, o)
}

func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}
