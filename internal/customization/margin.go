package customization

import "strings"

// MaxConfigurations caps the combinatorial search. The search is exponential
// in the number of optional ingredients and substitutable options; a rule set
// past this ceiling fails fast instead of burning CPU.
const MaxConfigurations = 10000

// Configuration is one fully resolved combination of ingredient picks:
// exactly one ingredient per substitutable category, all required
// non-substitutable ingredients, and some subset of the optional ones.
// Generated and discarded during analysis, never persisted.
type Configuration struct {
	Ingredients []ItemIngredient `json:"ingredients"`
	Price       float64          `json:"price"`
	Cost        float64          `json:"cost"`
	Margin      float64          `json:"margin"`
}

// Description renders the picks for manager-facing reports.
func (c Configuration) Description() string {
	names := make([]string, len(c.Ingredients))
	for i, ing := range c.Ingredients {
		names[i] = ing.Name
	}
	return strings.Join(names, ", ")
}

// MarginReport is the worst-case result of a full enumeration.
type MarginReport struct {
	Worst      Configuration `json:"worst"`
	Enumerated int           `json:"enumerated"`
}

// CountConfigurations precomputes the branch count of the enumeration:
// the product of each substitutable category's option count and 2^k for
// every non-substitutable category with k optional members. Saturates at
// MaxConfigurations+1 to avoid overflow.
func CountConfigurations(rs RuleSet) int {
	count := 1
	for _, cat := range rs.Categories {
		if cat.IsSubstitutable {
			count *= len(cat.Rules)
		} else {
			for _, r := range cat.Rules {
				if !r.Required {
					count *= 2
				}
				if count > MaxConfigurations {
					return MaxConfigurations + 1
				}
			}
		}
		if count > MaxConfigurations {
			return MaxConfigurations + 1
		}
	}
	return count
}

// AnalyzeWorstMargin enumerates every admissible configuration and returns
// the one with the lowest price minus cost. Ties keep the first configuration
// seen, so the result is deterministic for a given rule set order. Stock is
// not consulted; this is a planning-time analysis, not a live order.
func AnalyzeWorstMargin(rs RuleSet, basePrice float64) (*MarginReport, error) {
	if CountConfigurations(rs) > MaxConfigurations {
		return nil, ErrTooManyCombinations
	}

	a := &marginSearch{rs: rs, basePrice: basePrice}
	a.walkCategories(0, nil)

	return &MarginReport{Worst: a.best, Enumerated: a.enumerated}, nil
}

type marginSearch struct {
	rs        RuleSet
	basePrice float64

	best       Configuration
	haveBest   bool
	enumerated int
}

// walkCategories branches over categories in rule-set order. Substitutable
// categories contribute one branch per member; the rest branch over the
// powerset of their optional members with every required member included.
func (a *marginSearch) walkCategories(idx int, picked []ItemIngredient) {
	if idx == len(a.rs.Categories) {
		a.evaluate(picked)
		return
	}

	cat := a.rs.Categories[idx]
	if cat.IsSubstitutable {
		for _, member := range cat.Rules {
			a.walkCategories(idx+1, append(picked, member))
		}
		return
	}

	a.walkMembers(idx, 0, picked)
}

func (a *marginSearch) walkMembers(catIdx, memberIdx int, picked []ItemIngredient) {
	cat := a.rs.Categories[catIdx]
	if memberIdx == len(cat.Rules) {
		a.walkCategories(catIdx+1, picked)
		return
	}

	member := cat.Rules[memberIdx]
	if member.Required {
		a.walkMembers(catIdx, memberIdx+1, append(picked, member))
		return
	}

	// Optional member: the without-branch first, so the base configuration
	// is enumerated before its upsells.
	a.walkMembers(catIdx, memberIdx+1, picked)
	a.walkMembers(catIdx, memberIdx+1, append(picked, member))
}

func (a *marginSearch) evaluate(picked []ItemIngredient) {
	a.enumerated++

	price := a.basePrice
	var cost float64
	for _, ing := range picked {
		price += ing.PricePerUnit
		cost += ing.CostPerUnit * float64(ing.QuantityRequired)
	}
	margin := price - cost

	if a.haveBest && margin >= a.best.Margin {
		return
	}

	// The walk reuses its backing array across branches; keep a copy.
	ings := make([]ItemIngredient, len(picked))
	copy(ings, picked)

	a.best = Configuration{
		Ingredients: ings,
		Price:       price,
		Cost:        cost,
		Margin:      margin,
	}
	a.haveBest = true
}
