package menuitem

import (
	"time"

	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/customization"
)

// MenuItem is one sellable item on the truck's menu.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BasePrice   float64   `json:"base_price"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CustomizationView is what the ordering UI renders: the grouped categories
// with derived flags, plus whether the item can be ordered at all. Fixed
// ingredients never appear here.
type CustomizationView struct {
	MenuItemID      string                   `json:"menu_item_id"`
	BasePrice       float64                  `json:"base_price"`
	IsItemAvailable bool                     `json:"is_item_available"`
	Categories      []customization.Category `json:"categories"`
}
