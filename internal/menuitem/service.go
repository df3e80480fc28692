package menuitem

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/customization"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/ingredient"
)

type Storage interface {
	UploadFileHeader(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

// IngredientReader resolves rule rows to their inventory records.
type IngredientReader interface {
	GetByID(ctx context.Context, id string) (*ingredient.Ingredient, error)
}

// ReportInvalidator drops cached margin reports when rules change.
type ReportInvalidator interface {
	InvalidateItem(ctx context.Context, menuItemID string) error
}

type Service struct {
	repo        Repository
	ingredients IngredientReader
	storage     Storage
	reports     ReportInvalidator
}

func NewService(
	repo Repository,
	ingredients IngredientReader,
	storage Storage,
	reports ReportInvalidator,
) *Service {
	return &Service{
		repo:        repo,
		ingredients: ingredients,
		storage:     storage,
		reports:     reports,
	}
}

// --------------------------------------------------
// Menu item CRUD
// --------------------------------------------------

func (s *Service) CreateItem(
	ctx context.Context,
	name, description string,
	basePrice float64,
) (*MenuItem, error) {

	if name == "" {
		return nil, errors.New("missing required fields")
	}
	if basePrice < 0 {
		return nil, errors.New("base price cannot be negative")
	}

	item := &MenuItem{Name: name, Description: description, BasePrice: basePrice}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) ListItems(ctx context.Context) ([]*MenuItem, error) {
	return s.repo.ListItems(ctx)
}

func (s *Service) GetItem(ctx context.Context, id string) (*MenuItem, error) {
	return s.repo.GetItem(ctx, id)
}

// --------------------------------------------------
// Rule editor (MANAGER)
// --------------------------------------------------

// SaveRules validates the draft structurally, then replaces the item's rule
// rows atomically. Nothing is persisted when validation fails.
func (s *Service) SaveRules(
	ctx context.Context,
	menuItemID string,
	rules []customization.CustomizationRule,
) error {

	if _, err := s.repo.GetItem(ctx, menuItemID); err != nil {
		return err
	}

	joined := make([]customization.ItemIngredient, 0, len(rules))
	for _, rule := range rules {
		ing, err := s.ingredients.GetByID(ctx, rule.IngredientID)
		if err != nil {
			return fmt.Errorf("unknown ingredient %s", rule.IngredientID)
		}

		rule.MenuItemID = menuItemID
		joined = append(joined, customization.ItemIngredient{
			Ingredient: customization.Ingredient{
				ID:              ing.ID,
				Name:            ing.Name,
				CostPerUnit:     ing.CostPerUnit,
				QuantityInStock: ing.QuantityInStock,
			},
			CustomizationRule: rule,
		})
	}

	if err := customization.ValidateStructure(joined); err != nil {
		return err
	}

	persisted := make([]customization.CustomizationRule, len(joined))
	for i, j := range joined {
		persisted[i] = j.CustomizationRule
	}

	if err := s.repo.ReplaceRules(ctx, menuItemID, persisted); err != nil {
		return err
	}

	if s.reports != nil {
		// Stale worst-margin numbers are worse than a recompute.
		_ = s.reports.InvalidateItem(ctx, menuItemID)
	}

	return nil
}

// --------------------------------------------------
// Customization surface for the ordering UI
// --------------------------------------------------

func (s *Service) GetCustomizations(
	ctx context.Context,
	menuItemID string,
) (*CustomizationView, error) {

	item, err := s.repo.GetItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.GetItemIngredients(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	rs := customization.BuildRuleSet(records)

	return &CustomizationView{
		MenuItemID:      item.ID,
		BasePrice:       item.BasePrice,
		IsItemAvailable: customization.ItemAvailable(rs),
		Categories:      rs.Categories,
	}, nil
}

// --------------------------------------------------
// Photo upload
// --------------------------------------------------

func (s *Service) AttachPhoto(
	ctx context.Context,
	menuItemID string,
	file *multipart.FileHeader,
) (string, error) {

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	if _, err := s.repo.GetItem(ctx, menuItemID); err != nil {
		return "", err
	}

	key := fmt.Sprintf("menu-items/%s/%s%s", menuItemID, uuid.New().String(), ext)

	url, err := s.storage.UploadFileHeader(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetPhotoURL(ctx, menuItemID, url); err != nil {
		return "", err
	}

	return url, nil
}
