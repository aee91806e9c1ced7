package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByName(ctx context.Context, fullName string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
}
