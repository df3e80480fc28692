package ingredient

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateIngredient(
	ctx context.Context,
	name, unit string,
	costPerUnit float64,
	initialStock int,
) (*Ingredient, error) {

	if name == "" {
		return nil, errors.New("missing required fields")
	}
	if costPerUnit < 0 {
		return nil, errors.New("cost per unit cannot be negative")
	}
	if initialStock < 0 {
		return nil, errors.New("stock cannot be negative")
	}

	ing := &Ingredient{
		Name:            name,
		Unit:            unit,
		CostPerUnit:     costPerUnit,
		QuantityInStock: initialStock,
	}

	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *Service) ListIngredients(ctx context.Context) ([]*Ingredient, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetIngredient(ctx context.Context, id string) (*Ingredient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateIngredient(
	ctx context.Context,
	id, name, unit string,
	costPerUnit float64,
) (*Ingredient, error) {

	if name == "" {
		return nil, errors.New("missing required fields")
	}
	if costPerUnit < 0 {
		return nil, errors.New("cost per unit cannot be negative")
	}

	ing := &Ingredient{ID: id, Name: name, Unit: unit, CostPerUnit: costPerUnit}
	if err := s.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ReceiveStock applies a signed adjustment and returns the new level.
func (s *Service) ReceiveStock(ctx context.Context, id string, delta int) (int, error) {
	if delta == 0 {
		return 0, errors.New("adjustment cannot be zero")
	}
	return s.repo.AdjustStock(ctx, id, delta)
}
