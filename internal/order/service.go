package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/core"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/customization"
)

type Service struct {
	menu core.MenuReader
	repo Repository
}

func NewService(menu core.MenuReader, repo Repository) *Service {
	return &Service{menu: menu, repo: repo}
}

// --------------------------------------------------
// Quote one cart line (no persistence)
// --------------------------------------------------
func (s *Service) QuoteLine(ctx context.Context, line Line) (*Quote, error) {
	if line.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	sum, err := s.menu.GetItemSummary(ctx, line.MenuItemID)
	if err != nil {
		return nil, err
	}

	records, err := s.menu.GetItemIngredients(ctx, line.MenuItemID)
	if err != nil {
		return nil, err
	}

	rs := customization.BuildRuleSet(records)

	quote := &Quote{IsItemAvailable: customization.ItemAvailable(rs)}
	if !quote.IsItemAvailable {
		quote.Reason = fmt.Sprintf("%s is currently unavailable", sum.Name)
		return quote, nil
	}

	sels := customization.NewSelections(line.Customizations...)
	if err := customization.ValidateSelections(rs, sels, line.SelectedOptions); err != nil {
		var vErr *customization.ValidationError
		if errors.As(err, &vErr) {
			quote.Reason = vErr.Reason
			return quote, nil
		}
		return nil, err
	}

	quote.Valid = true
	quote.UnitPrice = customization.TotalPrice(sum.BasePrice, rs, sels)
	quote.LineTotal = quote.UnitPrice * float64(line.Quantity)
	return quote, nil
}

// --------------------------------------------------
// Checkout (ALL-OR-NOTHING)
// --------------------------------------------------

// Checkout validates and prices every line, then persists the order and
// decrements stock in one transaction. The first invalid line rejects the
// whole order; nothing is applied partially.
func (s *Service) Checkout(ctx context.Context, placedBy string, lines []Line) (*Order, error) {
	if len(lines) == 0 {
		return nil, errors.New("order has no items")
	}

	o := &Order{
		ID:       uuid.New().String(),
		PlacedBy: placedBy,
		Status:   "PLACED",
	}

	decrementAt := map[string]int{}
	var decrements []StockDecrement

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, errors.New("quantity must be positive")
		}

		sum, err := s.menu.GetItemSummary(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}

		records, err := s.menu.GetItemIngredients(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}

		rs := customization.BuildRuleSet(records)
		if !customization.ItemAvailable(rs) {
			return nil, &customization.ValidationError{
				Reason: fmt.Sprintf("%s is currently unavailable", sum.Name),
			}
		}

		sels := customization.NewSelections(line.Customizations...)
		if err := customization.ValidateSelections(rs, sels, line.SelectedOptions); err != nil {
			var vErr *customization.ValidationError
			if errors.As(err, &vErr) {
				return nil, &customization.ValidationError{
					Reason: fmt.Sprintf("%s: %s", sum.Name, vErr.Reason),
				}
			}
			return nil, err
		}

		unitPrice := customization.TotalPrice(sum.BasePrice, rs, sels)
		lineTotal := unitPrice * float64(line.Quantity)
		o.Total += lineTotal

		o.Items = append(o.Items, OrderItem{
			MenuItemID:      line.MenuItemID,
			Name:            sum.Name,
			Quantity:        line.Quantity,
			UnitPrice:       unitPrice,
			LineTotal:       lineTotal,
			SelectedOptions: line.SelectedOptions,
			Customizations:  line.Customizations,
		})

		for _, usage := range customization.ResolvedUsage(rs, sels, line.SelectedOptions) {
			need := usage.Quantity * line.Quantity
			if i, ok := decrementAt[usage.IngredientID]; ok {
				decrements[i].Quantity += need
				continue
			}
			decrementAt[usage.IngredientID] = len(decrements)
			decrements = append(decrements, StockDecrement{
				IngredientID: usage.IngredientID,
				Quantity:     need,
			})
		}
	}

	if err := s.repo.CreateOrder(ctx, o, decrements); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}
