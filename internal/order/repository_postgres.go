package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Persist order + items + customizations + stock (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) CreateOrder(
	ctx context.Context,
	o *Order,
	decrements []StockDecrement,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `
		INSERT INTO orders (id, placed_by, status, total)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, o.ID, o.PlacedBy, o.Status, o.Total).Scan(&o.CreatedAt); err != nil {
		return err
	}

	for _, item := range o.Items {
		var orderItemID int
		if err := tx.QueryRow(ctx, `
			INSERT INTO order_items (
				order_id,
				menu_item_id,
				name,
				quantity,
				unit_price,
				line_total,
				selected_options
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`,
			o.ID,
			item.MenuItemID,
			item.Name,
			item.Quantity,
			item.UnitPrice,
			item.LineTotal,
			item.SelectedOptions,
		).Scan(&orderItemID); err != nil {
			return err
		}

		for _, sel := range item.Customizations {
			if _, err := tx.Exec(ctx, `
				INSERT INTO order_item_customizations (
					order_item_id,
					ingredient_id,
					change_type,
					quantity_delta
				)
				VALUES ($1, $2, $3, $4)
			`, orderItemID, sel.IngredientID, string(sel.Change), sel.QuantityDelta); err != nil {
				return err
			}
		}
	}

	// Stock guard lives in SQL so two concurrent checkouts cannot both take
	// the last unit.
	for _, dec := range decrements {
		tag, err := tx.Exec(ctx, `
			UPDATE ingredients
			SET quantity_in_stock = quantity_in_stock - $1
			WHERE id = $2
			  AND quantity_in_stock >= $1
		`, dec.Quantity, dec.IngredientID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrInsufficientStock
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Read one order with its items
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT id, placed_by, status, total, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.PlacedBy, &o.Status, &o.Total, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT menu_item_id, name, quantity, unit_price, line_total, selected_options
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.MenuItemID,
			&item.Name,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
			&item.SelectedOptions,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}

	return &o, nil
}
