package ingredient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("ingredient not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new ingredient
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, ing *Ingredient) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}

	query := `
		INSERT INTO ingredients (
			id,
			name,
			unit,
			cost_per_unit,
			quantity_in_stock
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		ing.ID,
		ing.Name,
		ing.Unit,
		ing.CostPerUnit,
		ing.QuantityInStock,
	).Scan(&ing.CreatedAt)
}

// --------------------------------------------------
// List all ingredients
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Ingredient, error) {
	query := `
		SELECT
			id,
			name,
			unit,
			cost_per_unit,
			quantity_in_stock,
			created_at
		FROM ingredients
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []*Ingredient

	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(
			&ing.ID,
			&ing.Name,
			&ing.Unit,
			&ing.CostPerUnit,
			&ing.QuantityInStock,
			&ing.CreatedAt,
		); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, &ing)
	}

	return ingredients, nil
}

// --------------------------------------------------
// Get one ingredient
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Ingredient, error) {
	query := `
		SELECT id, name, unit, cost_per_unit, quantity_in_stock, created_at
		FROM ingredients
		WHERE id = $1
	`

	var ing Ingredient
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ing.ID,
		&ing.Name,
		&ing.Unit,
		&ing.CostPerUnit,
		&ing.QuantityInStock,
		&ing.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

// --------------------------------------------------
// Update name / unit / cost
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, ing *Ingredient) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE ingredients
		SET name = $1, unit = $2, cost_per_unit = $3
		WHERE id = $4
	`, ing.Name, ing.Unit, ing.CostPerUnit, ing.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Adjust stock (receiving inventory or writing off waste)
// --------------------------------------------------
func (r *PostgresRepository) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	var stock int
	err := r.db.QueryRow(ctx, `
		UPDATE ingredients
		SET quantity_in_stock = quantity_in_stock + $1
		WHERE id = $2
		  AND quantity_in_stock + $1 >= 0
		RETURNING quantity_in_stock
	`, delta, id).Scan(&stock)

	if errors.Is(err, pgx.ErrNoRows) {
		// Zero rows means either an unknown id or a guard rejection.
		var exists int
		if lookupErr := r.db.QueryRow(ctx, `
			SELECT 1 FROM ingredients WHERE id = $1
		`, id).Scan(&exists); lookupErr != nil {
			return 0, ErrNotFound
		}
		return 0, errors.New("stock cannot go negative")
	}
	return stock, err
}
