package customization

// ChangeType describes how a selection deviates from an ingredient's base quantity.
type ChangeType string

const (
	ChangeAdded       ChangeType = "added"
	ChangeRemoved     ChangeType = "removed"
	ChangeSubstituted ChangeType = "substituted"
)

// Ingredient is the read-only inventory record.
// Owned by the inventory tab; the engine never mutates it.
type Ingredient struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CostPerUnit     float64 `json:"cost_per_unit"`
	QuantityInStock int     `json:"quantity_in_stock"`
}

// CustomizationRule binds one ingredient to one menu item.
// An empty Category means "base ingredient".
type CustomizationRule struct {
	MenuItemID       string  `json:"menu_item_id"`
	IngredientID     string  `json:"ingredient_id"`
	Category         string  `json:"category"`
	Required         bool    `json:"required"`
	CanSubstitute    bool    `json:"can_substitute"`
	IsDefault        bool    `json:"is_default"`
	QuantityRequired int     `json:"quantity_required"`
	MaximumQuantity  int     `json:"maximum_quantity"`
	PricePerUnit     float64 `json:"price_per_unit"`
}

// ItemIngredient joins an ingredient with its rule for one menu item.
// This is the record shape repositories hand to the engine.
type ItemIngredient struct {
	Ingredient
	CustomizationRule
}

// Fixed reports whether the ingredient can neither be removed nor increased.
// Fixed ingredients are always implicitly present and never customizable.
func (ii ItemIngredient) Fixed() bool {
	return ii.Required &&
		!ii.CanSubstitute &&
		ii.MaximumQuantity == ii.QuantityRequired
}

// Selection is one customer deviation from an ingredient's base quantity.
// QuantityDelta is signed, relative to the rule's QuantityRequired.
type Selection struct {
	IngredientID  string     `json:"ingredient_id"`
	Change        ChangeType `json:"change_type"`
	QuantityDelta int        `json:"quantity_delta"`
}

// Selections is an immutable ordered association list keyed by ingredient id.
// Updates return a rebuilt copy so validators and pricers always see a
// frozen snapshot.
type Selections struct {
	entries []Selection
}

// NewSelections builds a selection list. A later entry for the same
// ingredient replaces the earlier one, keeping its original position.
func NewSelections(entries ...Selection) Selections {
	var s Selections
	for _, e := range entries {
		s = s.With(e)
	}
	return s
}

func (s Selections) Len() int { return len(s.entries) }

// Get returns the selection for an ingredient, if any.
func (s Selections) Get(ingredientID string) (Selection, bool) {
	for _, e := range s.entries {
		if e.IngredientID == ingredientID {
			return e, true
		}
	}
	return Selection{}, false
}

// With returns a copy with the selection set, replacing any existing entry
// for the same ingredient in place.
func (s Selections) With(sel Selection) Selections {
	out := make([]Selection, 0, len(s.entries)+1)
	replaced := false
	for _, e := range s.entries {
		if e.IngredientID == sel.IngredientID {
			out = append(out, sel)
			replaced = true
			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, sel)
	}
	return Selections{entries: out}
}

// Without returns a copy with the ingredient's selection dropped.
// Dropping restores the ingredient to its base quantity.
func (s Selections) Without(ingredientID string) Selections {
	out := make([]Selection, 0, len(s.entries))
	for _, e := range s.entries {
		if e.IngredientID == ingredientID {
			continue
		}
		out = append(out, e)
	}
	return Selections{entries: out}
}

// All returns the entries in order.
func (s Selections) All() []Selection {
	out := make([]Selection, len(s.entries))
	copy(out, s.entries)
	return out
}
