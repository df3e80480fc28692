package customization

// BaseCategory is the synthetic bucket for rules with no category label.
const BaseCategory = "Base Ingredients"

// Category is a derived grouping of rules sharing a label.
type Category struct {
	Name            string           `json:"name"`
	IsSubstitutable bool             `json:"is_substitutable"`
	IsRequired      bool             `json:"is_required"`
	Rules           []ItemIngredient `json:"rules"`
}

// DefaultRule returns the pre-selected member of a substitutable category.
func (c Category) DefaultRule() (ItemIngredient, bool) {
	for _, r := range c.Rules {
		if r.IsDefault {
			return r, true
		}
	}
	return ItemIngredient{}, false
}

// RuleSet is the grouped, per-menu-item view of customization rules.
// Categories keep the insertion order of first occurrence; the ordering is
// surfaced to the UI and must stay stable for the same input order.
type RuleSet struct {
	Categories []Category `json:"categories"`

	// Fixed ingredients are excluded from every customization surface but
	// still count toward stock and availability checks.
	Fixed []ItemIngredient `json:"-"`
}

// BuildRuleSet groups a menu item's joined ingredient records by category and
// derives the per-category flags. Fixed ingredients are split out. For each
// substitutable category exactly one member ends up as the default: the first
// member flagged as default wins, falling back to the first required member,
// then to the first member.
func BuildRuleSet(items []ItemIngredient) RuleSet {
	var rs RuleSet
	index := map[string]int{}

	for _, item := range items {
		if item.Fixed() {
			rs.Fixed = append(rs.Fixed, item)
			continue
		}

		name := item.Category
		if name == "" {
			name = BaseCategory
		}

		i, ok := index[name]
		if !ok {
			i = len(rs.Categories)
			index[name] = i
			rs.Categories = append(rs.Categories, Category{Name: name})
		}
		rs.Categories[i].Rules = append(rs.Categories[i].Rules, item)
	}

	for i := range rs.Categories {
		deriveFlags(&rs.Categories[i])
	}

	return rs
}

// deriveFlags computes IsSubstitutable/IsRequired and enforces the
// exactly-one-default invariant for substitutable categories.
func deriveFlags(c *Category) {
	for _, r := range c.Rules {
		if r.CanSubstitute {
			c.IsSubstitutable = true
		}
		if r.Required {
			c.IsRequired = true
		}
	}

	if !c.IsSubstitutable {
		return
	}

	defaultAt := -1
	for i, r := range c.Rules {
		if !r.IsDefault {
			continue
		}
		if defaultAt == -1 {
			defaultAt = i
		} else {
			c.Rules[i].IsDefault = false
		}
	}
	if defaultAt >= 0 {
		return
	}

	// Nothing flagged: the required member acts as the pre-selected default.
	for i, r := range c.Rules {
		if r.Required {
			c.Rules[i].IsDefault = true
			return
		}
	}
	if len(c.Rules) > 0 {
		c.Rules[0].IsDefault = true
	}
}

// Lookup finds a customizable ingredient across all categories.
func (rs RuleSet) Lookup(ingredientID string) (ItemIngredient, bool) {
	for _, c := range rs.Categories {
		for _, r := range c.Rules {
			if r.Ingredient.ID == ingredientID {
				return r, true
			}
		}
	}
	return ItemIngredient{}, false
}
