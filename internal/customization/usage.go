package customization

// IngredientUsage is the final per-unit consumption of one ingredient once a
// selection is applied. Checkout multiplies it by the ordered quantity when
// decrementing stock.
type IngredientUsage struct {
	IngredientID string
	Quantity     int
}

// ResolvedUsage lists every ingredient present in the resolved selection and
// its final quantity, in rule-set order with fixed ingredients first.
// Callers must validate before trusting the result.
func ResolvedUsage(rs RuleSet, sels Selections, selectedOptions map[string]string) []IngredientUsage {
	var usage []IngredientUsage

	for _, f := range rs.Fixed {
		usage = append(usage, IngredientUsage{
			IngredientID: f.Ingredient.ID,
			Quantity:     f.QuantityRequired,
		})
	}

	for _, cat := range rs.Categories {
		current := ""
		if cat.IsSubstitutable {
			current = resolveSelected(cat, selectedOptions)
		}
		for _, member := range cat.Rules {
			q := resolvedQuantity(cat, member, sels, current)
			if q <= 0 {
				continue
			}
			usage = append(usage, IngredientUsage{
				IngredientID: member.Ingredient.ID,
				Quantity:     q,
			})
		}
	}

	return usage
}
