package auth

// EmployeeRepository defines the data-access contract.
// Service depends ONLY on this interface.
type EmployeeRepository interface {
	Save(employee *Employee) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*Employee, error)
}
