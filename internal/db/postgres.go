package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// EMPLOYEES
	// -------------------------------
	employeesSQL := `
		CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CASHIER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, employeesSQL); err != nil {
		return err
	}

	// -------------------------------
	// INGREDIENTS
	// -------------------------------
	ingredientsSQL := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id UUID PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			unit VARCHAR(50) NOT NULL DEFAULT 'unit',
			cost_per_unit NUMERIC(10,2) NOT NULL DEFAULT 0,
			quantity_in_stock INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			CHECK (quantity_in_stock >= 0)
		)
	`
	if _, err := db.Exec(ctx, ingredientsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			base_price NUMERIC(10,2) NOT NULL,
			photo_url VARCHAR(500) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CUSTOMIZATION RULES
	// -------------------------------
	rulesSQL := `
		CREATE TABLE IF NOT EXISTS customization_rules (
			id SERIAL PRIMARY KEY,
			menu_item_id UUID NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			ingredient_id UUID NOT NULL REFERENCES ingredients(id),
			category VARCHAR(255) NOT NULL,
			required BOOLEAN NOT NULL DEFAULT FALSE,
			can_substitute BOOLEAN NOT NULL DEFAULT FALSE,
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			quantity_required INTEGER NOT NULL DEFAULT 1,
			maximum_quantity INTEGER NOT NULL DEFAULT 1,
			price_per_unit NUMERIC(10,2) NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0,
			UNIQUE (menu_item_id, ingredient_id)
		)
	`
	if _, err := db.Exec(ctx, rulesSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			placed_by UUID NULL REFERENCES employees(id),
			status VARCHAR(50) NOT NULL DEFAULT 'PLACED',
			total NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	orderItemsSQL := `
		CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			name VARCHAR(255) NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL,
			line_total NUMERIC(10,2) NOT NULL,
			selected_options JSONB NOT NULL DEFAULT '{}'
		)
	`
	if _, err := db.Exec(ctx, orderItemsSQL); err != nil {
		return err
	}

	orderCustomizationsSQL := `
		CREATE TABLE IF NOT EXISTS order_item_customizations (
			id SERIAL PRIMARY KEY,
			order_item_id INTEGER NOT NULL REFERENCES order_items(id) ON DELETE CASCADE,
			ingredient_id UUID NOT NULL REFERENCES ingredients(id),
			change_type VARCHAR(20) NOT NULL,
			quantity_delta INTEGER NOT NULL
		)
	`
	if _, err := db.Exec(ctx, orderCustomizationsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
