package ingredient

import "time"

// Ingredient is the inventory record for one stocked ingredient.
type Ingredient struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Unit            string    `json:"unit"`
	CostPerUnit     float64   `json:"cost_per_unit"`
	QuantityInStock int       `json:"quantity_in_stock"`
	CreatedAt       time.Time `json:"created_at"`
}
