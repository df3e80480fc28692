package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresEmployeeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEmployeeRepository(db *pgxpool.Pool) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) Save(employee *Employee) error {
	// Generate UUID if not already set
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.Email, employee.Password, employee.Role,
	)
	return err
}

func (r *PostgresEmployeeRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM employees WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	err := row.Scan(&exists)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresEmployeeRepository) FindByEmail(email string) (*Employee, error) {
	query := `
		SELECT id, name, email, password, role
		FROM employees WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	employee := &Employee{}
	if err := row.Scan(&employee.ID, &employee.Name, &employee.Email, &employee.Password, &employee.Role); err != nil {
		return nil, errors.New("employee not found")
	}
	return employee, nil
}
