package menuitem

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/core"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/customization"
)

var ErrNotFound = errors.New("menu item not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a menu item
// --------------------------------------------------
func (r *PostgresRepository) CreateItem(ctx context.Context, item *MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	query := `
		INSERT INTO menu_items (id, name, description, base_price)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		item.ID,
		item.Name,
		item.Description,
		item.BasePrice,
	).Scan(&item.CreatedAt)
}

// --------------------------------------------------
// List menu items
// --------------------------------------------------
func (r *PostgresRepository) ListItems(ctx context.Context) ([]*MenuItem, error) {
	query := `
		SELECT id, name, description, base_price, COALESCE(photo_url, ''), created_at
		FROM menu_items
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MenuItem

	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.BasePrice,
			&item.PhotoURL,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, nil
}

// --------------------------------------------------
// Get one menu item
// --------------------------------------------------
func (r *PostgresRepository) GetItem(ctx context.Context, id string) (*MenuItem, error) {
	query := `
		SELECT id, name, description, base_price, COALESCE(photo_url, ''), created_at
		FROM menu_items
		WHERE id = $1
	`

	var item MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.BasePrice,
		&item.PhotoURL,
		&item.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) SetPhotoURL(ctx context.Context, id, url string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items SET photo_url = $1 WHERE id = $2
	`, url, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Replace the item's rule rows (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) ReplaceRules(
	ctx context.Context,
	menuItemID string,
	rules []customization.CustomizationRule,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM customization_rules WHERE menu_item_id = $1
	`, menuItemID); err != nil {
		return err
	}

	// Position preserves the editor's ordering; the rule set builder keys
	// category order off it.
	for pos, rule := range rules {
		if _, err := tx.Exec(ctx, `
			INSERT INTO customization_rules (
				menu_item_id,
				ingredient_id,
				category,
				required,
				can_substitute,
				is_default,
				quantity_required,
				maximum_quantity,
				price_per_unit,
				position
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`,
			menuItemID,
			rule.IngredientID,
			rule.Category,
			rule.Required,
			rule.CanSubstitute,
			rule.IsDefault,
			rule.QuantityRequired,
			rule.MaximumQuantity,
			rule.PricePerUnit,
			pos,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Join rules with their ingredient records
// --------------------------------------------------
func (r *PostgresRepository) GetItemIngredients(
	ctx context.Context,
	menuItemID string,
) ([]customization.ItemIngredient, error) {

	query := `
		SELECT
			i.id,
			i.name,
			i.cost_per_unit,
			i.quantity_in_stock,
			cr.menu_item_id,
			cr.category,
			cr.required,
			cr.can_substitute,
			cr.is_default,
			cr.quantity_required,
			cr.maximum_quantity,
			cr.price_per_unit
		FROM customization_rules cr
		JOIN ingredients i
		  ON i.id = cr.ingredient_id
		WHERE cr.menu_item_id = $1
		ORDER BY cr.position
	`

	rows, err := r.db.Query(ctx, query, menuItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []customization.ItemIngredient

	for rows.Next() {
		var ii customization.ItemIngredient
		if err := rows.Scan(
			&ii.Ingredient.ID,
			&ii.Ingredient.Name,
			&ii.CostPerUnit,
			&ii.QuantityInStock,
			&ii.MenuItemID,
			&ii.Category,
			&ii.Required,
			&ii.CanSubstitute,
			&ii.IsDefault,
			&ii.QuantityRequired,
			&ii.MaximumQuantity,
			&ii.PricePerUnit,
		); err != nil {
			return nil, err
		}
		ii.IngredientID = ii.Ingredient.ID
		items = append(items, ii)
	}

	return items, nil
}

// --------------------------------------------------
// core.MenuReader (used by orders and reports)
// --------------------------------------------------

func (r *PostgresRepository) GetItemSummary(
	ctx context.Context,
	menuItemID string,
) (*core.ItemSummary, error) {

	var sum core.ItemSummary
	err := r.db.QueryRow(ctx, `
		SELECT id, name, base_price FROM menu_items WHERE id = $1
	`, menuItemID).Scan(&sum.ID, &sum.Name, &sum.BasePrice)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

func (r *PostgresRepository) ListItemSummaries(ctx context.Context) ([]core.ItemSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, base_price FROM menu_items ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []core.ItemSummary
	for rows.Next() {
		var sum core.ItemSummary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.BasePrice); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}
