package payroll

import (
	"fmt"
	"sort"
)

// Reporter receives one computed PayResult at a time, in final sorted
// order. Formatting and display are entirely the reporter's concern.
type Reporter interface {
	Report(result PayResult) error
}

// Batch owns the employee collection for a single payroll run. A run is a
// linear pipeline: collect, validate, compute and sort, report. Any
// validation failure is terminal for the run.
type Batch struct {
	employees []Employee
	brackets  []Bracket
}

func NewBatch(brackets []Bracket) *Batch {
	return &Batch{brackets: brackets}
}

// AddEmployee appends a record. No validation happens here; duplicate
// names are allowed.
func (b *Batch) AddEmployee(employee Employee) {
	b.employees = append(b.employees, employee)
}

// Size returns the number of collected records.
func (b *Batch) Size() int {
	return len(b.employees)
}

// ValidateEntries checks every employee's rate and daily hours, failing on
// the first violation found rather than aggregating. The error names the
// offending employee.
func (b *Batch) ValidateEntries() error {
	for _, employee := range b.employees {
		if employee.HourlyRate <= 0 {
			return fmt.Errorf("employee %s: %w", employee.Name, ErrInvalidHourlyRate)
		}
		for day, hours := range employee.DailyHours {
			if hours < 0 || hours > MaxDailyHours {
				return fmt.Errorf("employee %s: day %d: %w", employee.Name, day+1, ErrInvalidDailyHours)
			}
		}
	}
	return nil
}

// ProcessPayroll validates the batch, computes a PayResult per employee,
// sorts results by net pay descending (insertion order kept on ties) and
// emits each one to the reporter. A validation failure aborts before any
// figure is computed or reported. A nil reporter skips the emit step.
func (b *Batch) ProcessPayroll(reporter Reporter) ([]PayResult, error) {
	if err := b.ValidateEntries(); err != nil {
		return nil, err
	}

	results := make([]PayResult, 0, len(b.employees))
	for _, employee := range b.employees {
		results = append(results, Compute(employee, b.brackets))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].NetPay > results[j].NetPay
	})

	if reporter != nil {
		for _, result := range results {
			if err := reporter.Report(result); err != nil {
				return nil, fmt.Errorf("report %s: %w", result.EmployeeName, err)
			}
		}
	}
	return results, nil
}
