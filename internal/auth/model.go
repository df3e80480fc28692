package auth

// Roles an employee account can hold. Managers edit menus and read
// margin reports; cashiers ring up orders.
const (
	RoleManager = "MANAGER"
	RoleCashier = "CASHIER"
)

// Employee is the domain entity.
type Employee struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

func validRole(role string) bool {
	return role == RoleManager || role == RoleCashier
}
