package payroll

import "fmt"

// Employee is one pay-period record: a name, an hourly rate and exactly
// seven daily hour values. Records are read-only once constructed and are
// discarded after the report is produced.
type Employee struct {
	Name       string     `json:"name"`
	HourlyRate float64    `json:"hourlyRate"`
	DailyHours [7]float64 `json:"dailyHours"`
}

// NewEmployee builds an Employee from a daily-hours slice. A slice whose
// length is not exactly seven fails at construction; rate and hour ranges
// are checked later by batch validation.
func NewEmployee(name string, hourlyRate float64, dailyHours []float64) (Employee, error) {
	if len(dailyHours) != DaysPerWeek {
		return Employee{}, fmt.Errorf("employee %s: %w, got %d", name, ErrMalformedRecord, len(dailyHours))
	}
	employee := Employee{Name: name, HourlyRate: hourlyRate}
	copy(employee.DailyHours[:], dailyHours)
	return employee, nil
}

// PayResult carries the figures derived for one employee alongside the
// source name, rate and hours so reporters need nothing else.
type PayResult struct {
	EmployeeName        string     `json:"employeeName"`
	HourlyRate          float64    `json:"hourlyRate"`
	DailyHours          [7]float64 `json:"dailyHours"`
	RegularHours        float64    `json:"regularHours"`
	DailyOvertimeHours  float64    `json:"dailyOvertimeHours"`
	WeeklyOvertimeHours float64    `json:"weeklyOvertimeHours"`
	GrossPay            float64    `json:"grossPay"`
	Tax                 float64    `json:"tax"`
	NetPay              float64    `json:"netPay"`
}
