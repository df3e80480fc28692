package auth

import (
	"errors"

	"github.com/google/uuid"
)

type InMemoryEmployeeRepository struct {
	employees map[string]*Employee
}

func NewInMemoryEmployeeRepository() *InMemoryEmployeeRepository {
	return &InMemoryEmployeeRepository{
		employees: make(map[string]*Employee),
	}
}

func (r *InMemoryEmployeeRepository) Save(employee *Employee) error {
	// Generate UUID if not already set
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	r.employees[employee.Email] = employee
	return nil
}

func (r *InMemoryEmployeeRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.employees[email]
	return exists, nil
}

func (r *InMemoryEmployeeRepository) FindByEmail(email string) (*Employee, error) {
	employee, ok := r.employees[email]
	if !ok {
		return nil, errors.New("employee not found")
	}
	return employee, nil
}
