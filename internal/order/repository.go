package order

import "context"

// Repository defines all database operations for orders.
type Repository interface {

	// CreateOrder persists the order, its items and their customization rows,
	// and applies the stock decrements in one transaction. Fails without
	// writing anything if any decrement would drive stock negative.
	CreateOrder(ctx context.Context, o *Order, decrements []StockDecrement) error

	GetByID(ctx context.Context, id string) (*Order, error)
}
