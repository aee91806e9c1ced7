package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/brewhr/brewhr-backend-go/internal/domain/payroll"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, employee_id, pay_period_start, pay_period_end, monthly_salary,
	total_working_days, actual_days_worked, per_day_salary,
	late_days, late_deductions, unpaid_leave_days, unpaid_leave_deductions,
	paid_made_up_leave_days, tips, deductions, final_salary,
	status, generated_at, payment_date, created_at, updated_at
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PayPeriodStart, &p.PayPeriodEnd, &p.MonthlySalary,
		&p.TotalWorkingDays, &p.ActualDaysWorked, &p.PerDaySalary,
		&p.LateDays, &p.LateDeductions, &p.UnpaidLeaveDays, &p.UnpaidLeaveDeductions,
		&p.PaidMadeUpLeaveDays, &p.Tips, &p.Deductions, &p.FinalSalary,
		&p.Status, &p.GeneratedAt, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payrolls (
			id, employee_id, pay_period_start, pay_period_end, monthly_salary,
			total_working_days, actual_days_worked, per_day_salary,
			late_days, late_deductions, unpaid_leave_days, unpaid_leave_deductions,
			paid_made_up_leave_days, tips, deductions, final_salary,
			status, generated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + payrollColumns

	created, err := scanPayroll(q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.PayPeriodStart, record.PayPeriodEnd, record.MonthlySalary,
		record.TotalWorkingDays, record.ActualDaysWorked, record.PerDaySalary,
		record.LateDays, record.LateDeductions, record.UnpaidLeaveDays, record.UnpaidLeaveDeductions,
		record.PaidMadeUpLeaveDays, record.Tips, record.Deductions, record.FinalSalary,
		record.Status, record.GeneratedAt,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payrolls_employee_period") {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.pay_period_start, p.pay_period_end, p.monthly_salary,
			   p.total_working_days, p.actual_days_worked, p.per_day_salary,
			   p.late_days, p.late_deductions, p.unpaid_leave_days, p.unpaid_leave_deductions,
			   p.paid_made_up_leave_days, p.tips, p.deductions, p.final_salary,
			   p.status, p.generated_at, p.payment_date, p.created_at, p.updated_at, e.full_name
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var record payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.PayPeriodStart, &record.PayPeriodEnd, &record.MonthlySalary,
		&record.TotalWorkingDays, &record.ActualDaysWorked, &record.PerDaySalary,
		&record.LateDays, &record.LateDeductions, &record.UnpaidLeaveDays, &record.UnpaidLeaveDeductions,
		&record.PaidMadeUpLeaveDays, &record.Tips, &record.Deductions, &record.FinalSalary,
		&record.Status, &record.GeneratedAt, &record.PaymentDate, &record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE employee_id = $1 AND pay_period_start = $2 AND pay_period_end = $3
	`

	record, err := scanPayroll(q.QueryRow(ctx, query, employeeID, periodStart, periodEnd))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by period: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND p.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND p.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM payrolls p " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.pay_period_start, p.pay_period_end, p.monthly_salary,
			   p.total_working_days, p.actual_days_worked, p.per_day_salary,
			   p.late_days, p.late_deductions, p.unpaid_leave_days, p.unpaid_leave_deductions,
			   p.paid_made_up_leave_days, p.tips, p.deductions, p.final_salary,
			   p.status, p.generated_at, p.payment_date, p.created_at, p.updated_at, e.full_name
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		%s
		ORDER BY p.pay_period_start DESC, e.full_name
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		var record payroll.Payroll
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.PayPeriodStart, &record.PayPeriodEnd, &record.MonthlySalary,
			&record.TotalWorkingDays, &record.ActualDaysWorked, &record.PerDaySalary,
			&record.LateDays, &record.LateDeductions, &record.UnpaidLeaveDays, &record.UnpaidLeaveDeductions,
			&record.PaidMadeUpLeaveDays, &record.Tips, &record.Deductions, &record.FinalSalary,
			&record.Status, &record.GeneratedAt, &record.PaymentDate, &record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll: %w", err)
		}
		records = append(records, record)
	}

	return records, total, rows.Err()
}

func (r *payrollRepository) UpdateMoneyFields(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET tips = $2, deductions = $3, final_salary = $4, status = $5, payment_date = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + payrollColumns

	updated, err := scanPayroll(q.QueryRow(ctx, query,
		record.ID, record.Tips, record.Deductions, record.FinalSalary, record.Status, record.PaymentDate,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to update payroll: %w", err)
	}

	return updated, nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
