package customization

import (
	"strings"
	"testing"
)

func TestValidateAcceptsUntouchedItem(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	if err := ValidateSelections(rs, NewSelections(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRequiresSubstitutableSelection(t *testing.T) {
	items := latteIngredients()
	// No member flagged or required: nothing can act as the default.
	for i := range items {
		if items[i].Category == "Milk" {
			items[i].IsDefault = false
			items[i].Required = false
		}
	}
	rs := BuildRuleSet(items)

	// Builder still promotes a fallback default, so the category passes...
	if err := ValidateSelections(rs, NewSelections(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// ...but removing the current selection leaves the category empty.
	items2 := latteIngredients()
	rs2 := BuildRuleSet(items2)
	sels := NewSelections(Selection{IngredientID: "whole", Change: ChangeRemoved, QuantityDelta: -1})

	err := ValidateSelections(rs2, sels, map[string]string{"Milk": "whole"})
	if err == nil {
		t.Fatal("expected error for removed current selection")
	}
	if !strings.Contains(err.Error(), "select an option for Milk") {
		t.Errorf("unexpected reason: %v", err)
	}
}

func TestValidateRejectsRemovingRequiredIngredient(t *testing.T) {
	items := append(latteIngredients(), ItemIngredient{
		Ingredient: Ingredient{ID: "cup", Name: "Cup", QuantityInStock: 500},
		CustomizationRule: CustomizationRule{
			IngredientID: "cup", Required: true,
			QuantityRequired: 1, MaximumQuantity: 2,
		},
	})
	rs := BuildRuleSet(items)

	sels := NewSelections(Selection{IngredientID: "cup", Change: ChangeRemoved, QuantityDelta: -1})
	err := ValidateSelections(rs, sels, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Cup is required and cannot be removed" {
		t.Errorf("unexpected reason: %v", err)
	}
}

func TestValidateRejectsOutOfRangeDeltas(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	cases := []struct {
		name string
		sel  Selection
	}{
		{"added past maximum", Selection{IngredientID: "shot", Change: ChangeAdded, QuantityDelta: 5}},
		{"added non-positive", Selection{IngredientID: "shot", Change: ChangeAdded, QuantityDelta: 0}},
		{"removal wrong delta", Selection{IngredientID: "shot", Change: ChangeRemoved, QuantityDelta: -2}},
		{"substitution wrong delta", Selection{IngredientID: "oat", Change: ChangeSubstituted, QuantityDelta: 3}},
		{"unknown change type", Selection{IngredientID: "shot", Change: "tripled", QuantityDelta: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSelections(rs, NewSelections(tc.sel), nil)
			if err == nil {
				t.Fatal("expected rejection, not clamping")
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateAcceptsInRangeAddition(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	// Base 1, max 3: delta of 2 lands exactly on the maximum.
	sels := NewSelections(Selection{IngredientID: "shot", Change: ChangeAdded, QuantityDelta: 2})
	if err := ValidateSelections(rs, sels, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateChecksStock(t *testing.T) {
	items := latteIngredients()
	for i := range items {
		if items[i].Ingredient.ID == "shot" {
			items[i].QuantityInStock = 1
		}
	}
	rs := BuildRuleSet(items)

	sels := NewSelections(Selection{IngredientID: "shot", Change: ChangeAdded, QuantityDelta: 2})

	err := ValidateSelections(rs, sels, nil)
	if err == nil {
		t.Fatal("expected stock error")
	}
	if !strings.Contains(err.Error(), "not enough Extra Shot in stock") {
		t.Errorf("unexpected reason: %v", err)
	}

	// The planning-time variant skips the stock gate entirely.
	if err := ValidateSelectionsIgnoreStock(rs, sels, nil); err != nil {
		t.Fatalf("unexpected error with stock ignored: %v", err)
	}
}

func TestValidateRejectsUnknownIngredient(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	sels := NewSelections(Selection{IngredientID: "nope", Change: ChangeAdded, QuantityDelta: 1})
	if err := ValidateSelections(rs, sels, nil); err == nil {
		t.Fatal("expected error for unknown ingredient")
	}
}

func TestValidateRejectsCustomizingFixedIngredient(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	sels := NewSelections(Selection{IngredientID: "esp", Change: ChangeAdded, QuantityDelta: 1})
	err := ValidateSelections(rs, sels, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "cannot be customized") {
		t.Errorf("unexpected reason: %v", err)
	}
}

func TestItemAvailableFalseWhenRequiredStockIsZero(t *testing.T) {
	items := latteIngredients()
	for i := range items {
		if items[i].Ingredient.ID == "esp" {
			items[i].QuantityInStock = 0
		}
	}
	rs := BuildRuleSet(items)

	// Independent of any selections: the item cannot be offered at all.
	if ItemAvailable(rs) {
		t.Fatal("expected item to be unavailable")
	}
}

func TestItemAvailableIgnoresSubstitutableCategories(t *testing.T) {
	items := latteIngredients()
	for i := range items {
		if items[i].Category == "Milk" {
			items[i].QuantityInStock = 0
		}
	}
	rs := BuildRuleSet(items)

	// Both milks out of stock still leaves the item "available"; availability
	// is derived from required non-substitutable ingredients only.
	if !ItemAvailable(rs) {
		t.Fatal("expected item to remain available")
	}
}
