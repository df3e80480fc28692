package customization

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRemovalIsAlwaysFree(t *testing.T) {
	items := latteIngredients()
	// Give the optional add-on an aggressive price; removal still refunds nothing.
	for i := range items {
		if items[i].Ingredient.ID == "shot" {
			items[i].PricePerUnit = 99.99
			items[i].Required = false
		}
	}
	rs := BuildRuleSet(items)

	sels := NewSelections(Selection{IngredientID: "shot", Change: ChangeRemoved, QuantityDelta: -1})
	if got := PriceDelta(rs, sels); got != 0 {
		t.Fatalf("expected removal to contribute 0, got %v", got)
	}
}

func TestAddedChargesPerExtraUnit(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	sels := NewSelections(Selection{IngredientID: "shot", Change: ChangeAdded, QuantityDelta: 2})
	if got := PriceDelta(rs, sels); !almostEqual(got, 2.00) {
		t.Fatalf("expected 2.00, got %v", got)
	}
}

func TestSubstitutionChargesFullQuantity(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	sels := NewSelections(Selection{IngredientID: "oat", Change: ChangeSubstituted, QuantityDelta: 1})
	if got := PriceDelta(rs, sels); !almostEqual(got, 0.75) {
		t.Fatalf("expected 0.75, got %v", got)
	}
}

func TestPriceDeltaRoundTripsToZero(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	sels := NewSelections().
		With(Selection{IngredientID: "oat", Change: ChangeSubstituted, QuantityDelta: 1}).
		Without("oat")

	if got := PriceDelta(rs, sels); got != 0 {
		t.Fatalf("expected 0 after round trip, got %v", got)
	}
}

func TestTotalPriceAddsBase(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	sels := NewSelections(
		Selection{IngredientID: "oat", Change: ChangeSubstituted, QuantityDelta: 1},
		Selection{IngredientID: "shot", Change: ChangeAdded, QuantityDelta: 1},
	)

	if got := TotalPrice(5.00, rs, sels); !almostEqual(got, 6.75) {
		t.Fatalf("expected 6.75, got %v", got)
	}
}

func TestPriceDeltaSkipsUnknownIngredients(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	// The calculator never validates; stray entries contribute nothing.
	sels := NewSelections(Selection{IngredientID: "ghost", Change: ChangeAdded, QuantityDelta: 4})
	if got := PriceDelta(rs, sels); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
