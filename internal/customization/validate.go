package customization

// ValidateSelections decides whether a proposed set of selections is
// admissible for the rule set. selectedOptions tracks the currently selected
// ingredient per substitutable category (empty falls back to the category
// default). Returns nil when admissible, otherwise a *ValidationError whose
// reason names the first violated rule in rule-set order.
func ValidateSelections(rs RuleSet, sels Selections, selectedOptions map[string]string) error {
	return validate(rs, sels, selectedOptions, true)
}

// ValidateSelectionsIgnoreStock applies the same admissibility rules without
// stock gating. Used for planning-time analysis, not live orders.
func ValidateSelectionsIgnoreStock(rs RuleSet, sels Selections, selectedOptions map[string]string) error {
	return validate(rs, sels, selectedOptions, false)
}

func validate(rs RuleSet, sels Selections, selectedOptions map[string]string, checkStock bool) error {
	for _, cat := range rs.Categories {
		current := ""
		if cat.IsSubstitutable {
			current = resolveSelected(cat, selectedOptions)
			if cat.IsRequired {
				if current == "" {
					return invalidf("select an option for %s", cat.Name)
				}
				if sel, ok := sels.Get(current); ok && sel.Change == ChangeRemoved {
					return invalidf("select an option for %s", cat.Name)
				}
			}
		}

		for _, member := range cat.Rules {
			sel, ok := sels.Get(member.Ingredient.ID)
			if !ok {
				continue
			}

			if sel.Change == ChangeRemoved && member.Required && !member.CanSubstitute {
				return invalidf("%s is required and cannot be removed", member.Name)
			}

			if err := checkDelta(member, sel); err != nil {
				return err
			}
		}

		if checkStock {
			if err := checkCategoryStock(cat, sels, current); err != nil {
				return err
			}
		}
	}

	// Selections outside the customization surface are invalid input, not
	// something to silently drop.
	for _, sel := range sels.All() {
		if _, ok := rs.Lookup(sel.IngredientID); ok {
			continue
		}
		for _, f := range rs.Fixed {
			if f.Ingredient.ID == sel.IngredientID {
				return invalidf("%s cannot be customized", f.Name)
			}
		}
		return invalidf("unknown ingredient %s", sel.IngredientID)
	}

	if checkStock {
		for _, f := range rs.Fixed {
			if f.QuantityInStock < f.QuantityRequired {
				return invalidf("not enough %s in stock", f.Name)
			}
		}
	}

	return nil
}

// resolveSelected returns the currently selected member of a substitutable
// category, falling back to its default. Returns "" when the tracked id does
// not belong to the category.
func resolveSelected(cat Category, selectedOptions map[string]string) string {
	id := selectedOptions[cat.Name]
	if id == "" {
		if def, ok := cat.DefaultRule(); ok {
			return def.Ingredient.ID
		}
		return ""
	}
	for _, r := range cat.Rules {
		if r.Ingredient.ID == id {
			return id
		}
	}
	return ""
}

// checkDelta rejects out-of-range quantity deltas. The UI clamps before
// submitting, but the validator never assumes that happened.
func checkDelta(member ItemIngredient, sel Selection) error {
	switch sel.Change {
	case ChangeRemoved:
		if sel.QuantityDelta != -member.QuantityRequired {
			return invalidf("invalid removal quantity for %s", member.Name)
		}
	case ChangeAdded:
		if sel.QuantityDelta <= 0 {
			return invalidf("invalid added quantity for %s", member.Name)
		}
		if member.QuantityRequired+sel.QuantityDelta > member.MaximumQuantity {
			return invalidf("quantity for %s exceeds the maximum of %d", member.Name, member.MaximumQuantity)
		}
	case ChangeSubstituted:
		if sel.QuantityDelta != member.QuantityRequired {
			return invalidf("invalid substitution quantity for %s", member.Name)
		}
	default:
		return invalidf("unknown change type %q for %s", string(sel.Change), member.Name)
	}
	return nil
}

// checkCategoryStock verifies every ingredient that ends up present in the
// resolved selection against its stock on hand.
func checkCategoryStock(cat Category, sels Selections, current string) error {
	for _, member := range cat.Rules {
		q := resolvedQuantity(cat, member, sels, current)
		if q > 0 && member.QuantityInStock < q {
			return invalidf("not enough %s in stock", member.Name)
		}
	}
	return nil
}

// resolvedQuantity computes the final quantity of a member once the
// selections are applied. Zero means the ingredient is not present.
func resolvedQuantity(cat Category, member ItemIngredient, sels Selections, current string) int {
	if cat.IsSubstitutable {
		// Exactly one member of a substitutable category is present.
		if member.Ingredient.ID != current {
			return 0
		}
		q := member.QuantityRequired
		if sel, ok := sels.Get(member.Ingredient.ID); ok && sel.Change == ChangeAdded {
			q += sel.QuantityDelta
		}
		return q
	}

	sel, ok := sels.Get(member.Ingredient.ID)
	if !ok {
		return member.QuantityRequired
	}
	switch sel.Change {
	case ChangeRemoved:
		return 0
	case ChangeAdded:
		return member.QuantityRequired + sel.QuantityDelta
	default:
		return member.QuantityRequired
	}
}

// ItemAvailable reports whether the menu item can be ordered at all: every
// required non-substitutable ingredient must have its base quantity in stock.
// Substitutable categories are not consulted, even when every option in one
// is out of stock; that matches how availability has always been derived.
func ItemAvailable(rs RuleSet) bool {
	for _, f := range rs.Fixed {
		if f.QuantityInStock < f.QuantityRequired {
			return false
		}
	}
	for _, cat := range rs.Categories {
		if cat.IsSubstitutable {
			continue
		}
		for _, member := range cat.Rules {
			if member.Required && member.QuantityInStock < member.QuantityRequired {
				return false
			}
		}
	}
	return true
}
