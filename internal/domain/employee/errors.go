package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeNameExists = errors.New("an employee with this name already exists")
)
