package customization

// ValidateStructure checks draft rules before they are saved as
// customization_rules rows. It enforces the invariants the builder cannot
// repair on the editor's behalf:
//
//   - an ingredient may appear in at most one category
//   - every member of a category shares the can-substitute flag
//   - a substitutable category has exactly one default member
//   - maximum quantity is never below the base quantity
//
// The first violation wins and is returned as a *StructuralError.
func ValidateStructure(items []ItemIngredient) error {
	seen := map[string]string{}

	for _, item := range items {
		name := item.Category
		if name == "" {
			name = BaseCategory
		}

		if prev, ok := seen[item.Ingredient.ID]; ok {
			return &StructuralError{
				Category: name,
				Reason:   "ingredient " + item.Name + " already belongs to category " + prev,
			}
		}
		seen[item.Ingredient.ID] = name

		if item.MaximumQuantity < item.QuantityRequired {
			return &StructuralError{
				Category: name,
				Reason:   "maximum quantity below base quantity for " + item.Name,
			}
		}
	}

	byCategory := map[string][]ItemIngredient{}
	var order []string
	for _, item := range items {
		name := item.Category
		if name == "" {
			name = BaseCategory
		}
		if _, ok := byCategory[name]; !ok {
			order = append(order, name)
		}
		byCategory[name] = append(byCategory[name], item)
	}

	for _, name := range order {
		members := byCategory[name]

		substitutable := members[0].CanSubstitute
		for _, m := range members[1:] {
			if m.CanSubstitute != substitutable {
				return &StructuralError{
					Category: name,
					Reason:   "mixed substitutable and non-substitutable rules",
				}
			}
		}

		if !substitutable {
			continue
		}

		defaults := 0
		for _, m := range members {
			if m.IsDefault {
				defaults++
			}
		}
		if defaults == 0 {
			return &StructuralError{Category: name, Reason: "no default option selected"}
		}
		if defaults > 1 {
			return &StructuralError{Category: name, Reason: "more than one default option"}
		}
	}

	return nil
}
