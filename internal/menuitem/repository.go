package menuitem

import (
	"context"

	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/customization"
)

// Repository defines all database operations for menu items and their
// customization rules.
type Repository interface {
	CreateItem(ctx context.Context, item *MenuItem) error
	ListItems(ctx context.Context) ([]*MenuItem, error)
	GetItem(ctx context.Context, id string) (*MenuItem, error)
	SetPhotoURL(ctx context.Context, id, url string) error

	// ReplaceRules swaps the item's rule rows atomically.
	ReplaceRules(
		ctx context.Context,
		menuItemID string,
		rules []customization.CustomizationRule,
	) error

	// GetItemIngredients joins rules with their ingredient records.
	GetItemIngredients(
		ctx context.Context,
		menuItemID string,
	) ([]customization.ItemIngredient, error)
}
