package report

import (
	"errors"
	"fmt"
	"net/http"
	"time"

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
// Worst-case margin for one item (MANAGER)
// --------------------------------------------------
func (h *Handler) ItemMargin(c *gin.Context) {
	report, err := h.service.ItemMargin(c.Request.Context(), c.Param("menu_item_id"))
	if err != nil {
		if errors.Is(err, customization.ErrTooManyCombinations) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// --------------------------------------------------
// Menu-wide report
// --------------------------------------------------
func (h *Handler) AllMargins(c *gin.Context) {
	reports, err := h.service.AllMargins(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// --------------------------------------------------
// Drop cached reports (manual fallback)
// --------------------------------------------------
func (h *Handler) Recompute(c *gin.Context) {
	if err := h.service.Recompute(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "margin cache cleared"})
}

// --------------------------------------------------
// XLSX export
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {
	f, err := h.service.ExportXLSX(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("margins-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
