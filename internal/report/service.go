package report

import (
	"context"
	"errors"
	"time"

	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/core"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/customization"
)

// MarginReport is the manager-facing worst-case view for one menu item.
type MarginReport struct {
	MenuItemID         string    `json:"menu_item_id"`
	Name               string    `json:"name"`
	BasePrice          float64   `json:"base_price"`
	WorstMargin        float64   `json:"worst_margin"`
	WorstPrice         float64   `json:"worst_price"`
	WorstCost          float64   `json:"worst_cost"`
	WorstConfiguration string    `json:"worst_configuration"`
	Configurations     int       `json:"configurations"`
	ComputedAt         time.Time `json:"computed_at"`
}

type Service struct {
	menu  core.MenuReader
	cache Cache
}

// NewService builds the margin report service. cache may be nil; reports are
// then computed on every request.
func NewService(menu core.MenuReader, cache Cache) *Service {
	return &Service{menu: menu, cache: cache}
}

// --------------------------------------------------
// Worst-case margin for one item
// --------------------------------------------------
func (s *Service) ItemMargin(ctx context.Context, menuItemID string) (*MarginReport, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, menuItemID); err == nil {
			return cached, nil
		}
	}

	sum, err := s.menu.GetItemSummary(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	report, err := s.compute(ctx, *sum)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Serving a slightly stale report beats failing the request.
		_ = s.cache.Set(ctx, report)
	}

	return report, nil
}

func (s *Service) compute(ctx context.Context, sum core.ItemSummary) (*MarginReport, error) {
	records, err := s.menu.GetItemIngredients(ctx, sum.ID)
	if err != nil {
		return nil, err
	}

	rs := customization.BuildRuleSet(records)

	analysis, err := customization.AnalyzeWorstMargin(rs, sum.BasePrice)
	if err != nil {
		return nil, err
	}

	return &MarginReport{
		MenuItemID:         sum.ID,
		Name:               sum.Name,
		BasePrice:          sum.BasePrice,
		WorstMargin:        analysis.Worst.Margin,
		WorstPrice:         analysis.Worst.Price,
		WorstCost:          analysis.Worst.Cost,
		WorstConfiguration: analysis.Worst.Description(),
		Configurations:     analysis.Enumerated,
		ComputedAt:         time.Now(),
	}, nil
}

// --------------------------------------------------
// Worst-case margin across the whole menu
// --------------------------------------------------

// AllMargins computes (or serves cached) reports for every menu item. Items
// whose rule sets trip the combination ceiling are skipped rather than
// failing the whole report.
func (s *Service) AllMargins(ctx context.Context) ([]MarginReport, error) {
	summaries, err := s.menu.ListItemSummaries(ctx)
	if err != nil {
		return nil, err
	}

	var reports []MarginReport
	for _, sum := range summaries {
		report, err := s.ItemMargin(ctx, sum.ID)
		if errors.Is(err, customization.ErrTooManyCombinations) {
			continue
		}
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	return reports, nil
}

// Recompute drops every cached report so the next read reflects current rules.
func (s *Service) Recompute(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	summaries, err := s.menu.ListItemSummaries(ctx)
	if err != nil {
		return err
	}
	for _, sum := range summaries {
		if err := s.cache.InvalidateItem(ctx, sum.ID); err != nil {
			return err
		}
	}
	return nil
}
