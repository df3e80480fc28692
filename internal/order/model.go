package order

import (
	"time"

	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/customization"
)

// Line is one cart line as submitted by the ordering UI.
type Line struct {
	MenuItemID      string                    `json:"menu_item_id"`
	Quantity        int                       `json:"quantity"`
	SelectedOptions map[string]string         `json:"selected_options"`
	Customizations  []customization.Selection `json:"customizations"`
}

// Quote is the priced verdict for one line before it enters an order.
type Quote struct {
	IsItemAvailable bool    `json:"is_item_available"`
	Valid           bool    `json:"valid"`
	Reason          string  `json:"reason,omitempty"`
	UnitPrice       float64 `json:"unit_price"`
	LineTotal       float64 `json:"line_total"`
}

type Order struct {
	ID        string      `json:"id"`
	PlacedBy  string      `json:"placed_by"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

type OrderItem struct {
	MenuItemID      string                    `json:"menu_item_id"`
	Name            string                    `json:"name"`
	Quantity        int                       `json:"quantity"`
	UnitPrice       float64                   `json:"unit_price"`
	LineTotal       float64                   `json:"line_total"`
	SelectedOptions map[string]string         `json:"selected_options,omitempty"`
	Customizations  []customization.Selection `json:"customizations,omitempty"`
}

// StockDecrement is the ingredient consumption checkout applies atomically
// with the order insert.
type StockDecrement struct {
	IngredientID string
	Quantity     int
}
