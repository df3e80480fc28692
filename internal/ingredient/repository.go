package ingredient

import "context"

// Repository defines all database operations for ingredients.
type Repository interface {
	Create(ctx context.Context, ing *Ingredient) error
	List(ctx context.Context) ([]*Ingredient, error)
	GetByID(ctx context.Context, id string) (*Ingredient, error)
	Update(ctx context.Context, ing *Ingredient) error

	// AdjustStock applies a signed delta and fails if stock would go negative.
	AdjustStock(ctx context.Context, id string, delta int) (int, error)
}
