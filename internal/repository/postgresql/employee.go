package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, full_name, weekly_off_day, standard_work_hours,
	shift_start_time, shift_end_time, monthly_salary,
	pay_frequency, pay_start_date, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FullName, &e.WeeklyOffDay, &e.StandardWorkHours,
		&e.ShiftStartTime, &e.ShiftEndTime, &e.MonthlySalary,
		&e.PayFrequency, &e.PayStartDate, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (
			id, full_name, weekly_off_day, standard_work_hours,
			shift_start_time, shift_end_time, monthly_salary,
			pay_frequency, pay_start_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.FullName, emp.WeeklyOffDay, emp.StandardWorkHours,
		emp.ShiftStartTime, emp.ShiftEndTime, emp.MonthlySalary,
		emp.PayFrequency, emp.PayStartDate,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_full_name") {
			return employee.Employee{}, employee.ErrEmployeeNameExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByName(ctx context.Context, fullName string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE full_name = $1 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, fullName))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE deleted_at IS NULL ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			full_name = $2, weekly_off_day = $3, standard_work_hours = $4,
			shift_start_time = $5, shift_end_time = $6, monthly_salary = $7,
			pay_frequency = $8, pay_start_date = $9, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.FullName, emp.WeeklyOffDay, emp.StandardWorkHours,
		emp.ShiftStartTime, emp.ShiftEndTime, emp.MonthlySalary,
		emp.PayFrequency, emp.PayStartDate,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "uk_employees_full_name") {
			return employee.Employee{}, employee.ErrEmployeeNameExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Soft delete so historical payroll rows keep their reference.
	tag, err := q.Exec(ctx, `UPDATE employees SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
