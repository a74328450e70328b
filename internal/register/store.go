package register

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"payweek/internal/domain/payroll"
)

// Store persists the computed figures of finished pay runs for audit.
// Only derived output is written; employee records themselves are never
// stored.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// SaveRun inserts one row per result under a fresh run ID, preserving the
// sorted report order, and returns the run ID.
func (s *Store) SaveRun(ctx context.Context, results []payroll.PayResult) (string, error) {
	runID := uuid.NewString()
	for position, result := range results {
		_, err := s.DB.Exec(ctx, `
      INSERT INTO pay_run_results
        (run_id, position, employee_name, hourly_rate, regular_hours,
         daily_overtime_hours, weekly_overtime_hours, gross_pay, tax, net_pay)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `, runID, position, result.EmployeeName, result.HourlyRate, result.RegularHours,
			result.DailyOvertimeHours, result.WeeklyOvertimeHours, result.GrossPay, result.Tax, result.NetPay)
		if err != nil {
			return "", err
		}
	}
	return runID, nil
}

type RunRow struct {
	EmployeeName        string    `json:"employeeName"`
	HourlyRate          float64   `json:"hourlyRate"`
	RegularHours        float64   `json:"regularHours"`
	DailyOvertimeHours  float64   `json:"dailyOvertimeHours"`
	WeeklyOvertimeHours float64   `json:"weeklyOvertimeHours"`
	GrossPay            float64   `json:"grossPay"`
	Tax                 float64   `json:"tax"`
	NetPay              float64   `json:"netPay"`
	CreatedAt           time.Time `json:"createdAt"`
}

// RunResults returns the stored rows of one run in report order.
func (s *Store) RunResults(ctx context.Context, runID string) ([]RunRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_name, hourly_rate, regular_hours, daily_overtime_hours,
           weekly_overtime_hours, gross_pay, tax, net_pay, created_at
    FROM pay_run_results
    WHERE run_id = $1
    ORDER BY position
  `, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []RunRow
	for rows.Next() {
		var row RunRow
		if err := rows.Scan(&row.EmployeeName, &row.HourlyRate, &row.RegularHours, &row.DailyOvertimeHours,
			&row.WeeklyOvertimeHours, &row.GrossPay, &row.Tax, &row.NetPay, &row.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
