package customization

import "testing"

// latteIngredients is the shared fixture: a fixed espresso base, a
// substitutable Milk category (Whole default, Oat) and an optional extra shot.
func latteIngredients() []ItemIngredient {
	return []ItemIngredient{
		{
			Ingredient: Ingredient{ID: "esp", Name: "Espresso", CostPerUnit: 0.40, QuantityInStock: 100},
			CustomizationRule: CustomizationRule{
				IngredientID: "esp", Required: true,
				QuantityRequired: 2, MaximumQuantity: 2,
			},
		},
		{
			Ingredient: Ingredient{ID: "whole", Name: "Whole Milk", CostPerUnit: 0.25, QuantityInStock: 50},
			CustomizationRule: CustomizationRule{
				IngredientID: "whole", Category: "Milk",
				Required: true, CanSubstitute: true, IsDefault: true,
				QuantityRequired: 1, MaximumQuantity: 1,
			},
		},
		{
			Ingredient: Ingredient{ID: "oat", Name: "Oat Milk", CostPerUnit: 0.60, QuantityInStock: 50},
			CustomizationRule: CustomizationRule{
				IngredientID: "oat", Category: "Milk",
				CanSubstitute:    true,
				QuantityRequired: 1, MaximumQuantity: 1,
				PricePerUnit: 0.75,
			},
		},
		{
			Ingredient: Ingredient{ID: "shot", Name: "Extra Shot", CostPerUnit: 0.30, QuantityInStock: 20},
			CustomizationRule: CustomizationRule{
				IngredientID: "shot", Category: "Add-ons",
				QuantityRequired: 1, MaximumQuantity: 3,
				PricePerUnit: 1.00,
			},
		},
	}
}

func TestBuildRuleSetGroupsInInsertionOrder(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	if len(rs.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(rs.Categories))
	}
	if rs.Categories[0].Name != "Milk" || rs.Categories[1].Name != "Add-ons" {
		t.Errorf("unexpected category order: %s, %s",
			rs.Categories[0].Name, rs.Categories[1].Name)
	}
}

func TestBuildRuleSetExcludesFixedIngredients(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	// Espresso is required, non-substitutable and capped at its base
	// quantity, so it must never show up as a customization option.
	if _, ok := rs.Lookup("esp"); ok {
		t.Fatal("fixed ingredient exposed as customizable")
	}
	if len(rs.Fixed) != 1 || rs.Fixed[0].Ingredient.ID != "esp" {
		t.Fatalf("expected espresso in the fixed list, got %+v", rs.Fixed)
	}
}

func TestBuildRuleSetDerivesCategoryFlags(t *testing.T) {
	rs := BuildRuleSet(latteIngredients())

	milk := rs.Categories[0]
	if !milk.IsSubstitutable || !milk.IsRequired {
		t.Errorf("Milk flags wrong: substitutable=%v required=%v",
			milk.IsSubstitutable, milk.IsRequired)
	}

	addons := rs.Categories[1]
	if addons.IsSubstitutable || addons.IsRequired {
		t.Errorf("Add-ons flags wrong: substitutable=%v required=%v",
			addons.IsSubstitutable, addons.IsRequired)
	}
}

func TestBuildRuleSetUsesBaseCategoryLabel(t *testing.T) {
	items := []ItemIngredient{
		{
			Ingredient: Ingredient{ID: "bun", Name: "Bun", QuantityInStock: 10},
			CustomizationRule: CustomizationRule{
				IngredientID: "bun", Required: true,
				QuantityRequired: 1, MaximumQuantity: 2,
			},
		},
	}

	rs := BuildRuleSet(items)
	if len(rs.Categories) != 1 || rs.Categories[0].Name != BaseCategory {
		t.Fatalf("expected %q bucket, got %+v", BaseCategory, rs.Categories)
	}
}

func TestBuildRuleSetEnforcesExactlyOneDefault(t *testing.T) {
	items := latteIngredients()

	// Flag both milks as default; the builder must keep only the first.
	for i := range items {
		if items[i].Category == "Milk" {
			items[i].IsDefault = true
		}
	}

	rs := BuildRuleSet(items)
	milk := rs.Categories[0]

	defaults := 0
	for _, r := range milk.Rules {
		if r.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
	if def, _ := milk.DefaultRule(); def.Ingredient.ID != "whole" {
		t.Errorf("expected first-seen default whole, got %s", def.Ingredient.ID)
	}
}

func TestBuildRuleSetPromotesRequiredMemberToDefault(t *testing.T) {
	items := latteIngredients()
	for i := range items {
		items[i].IsDefault = false
	}

	rs := BuildRuleSet(items)
	def, ok := rs.Categories[0].DefaultRule()
	if !ok {
		t.Fatal("substitutable category ended up with no default")
	}
	if def.Ingredient.ID != "whole" {
		t.Errorf("expected required member promoted to default, got %s", def.Ingredient.ID)
	}
}

func TestSelectionsRoundTrip(t *testing.T) {
	sels := NewSelections()

	withShot := sels.With(Selection{IngredientID: "shot", Change: ChangeAdded, QuantityDelta: 1})
	if withShot.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", withShot.Len())
	}

	// Deselecting returns the list to its prior state.
	back := withShot.Without("shot")
	if back.Len() != 0 {
		t.Fatalf("expected empty list after round trip, got %d entries", back.Len())
	}

	// The original snapshot is untouched.
	if sels.Len() != 0 || withShot.Len() != 1 {
		t.Fatal("selection snapshots aliased each other")
	}
}

func TestSelectionsWithReplacesInPlace(t *testing.T) {
	sels := NewSelections(
		Selection{IngredientID: "shot", Change: ChangeAdded, QuantityDelta: 1},
		Selection{IngredientID: "oat", Change: ChangeSubstituted, QuantityDelta: 1},
		Selection{IngredientID: "shot", Change: ChangeAdded, QuantityDelta: 2},
	)

	if sels.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", sels.Len())
	}

	got, _ := sels.Get("shot")
	if got.QuantityDelta != 2 {
		t.Errorf("expected replacement delta 2, got %d", got.QuantityDelta)
	}
	if sels.All()[0].IngredientID != "shot" {
		t.Error("replacement did not keep original position")
	}
}
