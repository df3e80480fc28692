package ingredient

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAdjustStock_UnknownIngredientIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(NewMockRepository()))
	r.PATCH("/ingredients/:id/stock", handler.AdjustStock)

	body := bytes.NewBufferString(`{"delta": 5}`)
	req := httptest.NewRequest(http.MethodPatch, "/ingredients/missing/stock", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestAdjustStock_GuardRejectionIs400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	repo := NewMockRepository()
	service := NewService(repo)
	ing, _ := service.CreateIngredient(context.Background(), "Espresso", "shot", 0.40, 2)

	handler := NewHandler(service)
	r.PATCH("/ingredients/:id/stock", handler.AdjustStock)

	body := bytes.NewBufferString(`{"delta": -100}`)
	req := httptest.NewRequest(http.MethodPatch, "/ingredients/"+ing.ID+"/stock", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
