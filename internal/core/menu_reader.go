package core

import (
	"context"

	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/customization"
)

// ItemSummary is the minimal menu item view shared across features.
type ItemSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
}

// MenuReader exposes read-only menu item data to ordering and reporting
// without coupling them to the menu item repository.
type MenuReader interface {
	GetItemSummary(ctx context.Context, menuItemID string) (*ItemSummary, error)

	ListItemSummaries(ctx context.Context) ([]ItemSummary, error)

	// GetItemIngredients returns the joined ingredient+rule records the
	// customization engine consumes.
	GetItemIngredients(
		ctx context.Context,
		menuItemID string,
	) ([]customization.ItemIngredient, error)
}
