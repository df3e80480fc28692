package customization

// PriceDelta computes the surcharge a set of selections adds on top of the
// item's base price. Removal is always free; additions charge the per-unit
// adjustment for the extra units; substitutions charge the new ingredient's
// full configured quantity.
//
// PriceDelta does not validate. Callers must run ValidateSelections before
// trusting the result, but the function is safe on any well-formed selection
// list and skips ingredients it does not know.
func PriceDelta(rs RuleSet, sels Selections) float64 {
	var delta float64

	for _, sel := range sels.All() {
		rule, ok := rs.Lookup(sel.IngredientID)
		if !ok {
			continue
		}

		switch sel.Change {
		case ChangeRemoved:
			// Ingredients are never refunded for removal.
		case ChangeAdded:
			if sel.QuantityDelta > 0 {
				delta += rule.PricePerUnit * float64(sel.QuantityDelta)
			}
		case ChangeSubstituted:
			q := sel.QuantityDelta
			if q < 0 {
				q = -q
			}
			delta += rule.PricePerUnit * float64(q)
		}
	}

	return delta
}

// TotalPrice is the item's base price plus the selection surcharge.
func TotalPrice(basePrice float64, rs RuleSet, sels Selections) float64 {
	return basePrice + PriceDelta(rs, sels)
}
