package payroll

import "math"

// RegularHours sums the seven daily values with each day capped at 8.
func RegularHours(days [7]float64) float64 {
	var total float64
	for _, day := range days {
		total += math.Min(day, RegularDailyLimit)
	}
	return total
}

// DailyOvertime sums the hours beyond 8 within each single day.
func DailyOvertime(days [7]float64) float64 {
	var total float64
	for _, day := range days {
		total += math.Max(day-RegularDailyLimit, 0)
	}
	return total
}

// WeeklyOvertime returns the hours over the 40-hour week that are not
// already counted as daily overtime. The result is not clamped: when daily
// overtime exceeds the over-40 excess it goes negative and reduces the
// weekly term of gross pay. That is how the published figures come out, so
// it stays.
func WeeklyOvertime(days [7]float64) float64 {
	var total float64
	for _, day := range days {
		total += day
	}
	return math.Max(total-WeeklyHourLimit, 0) - DailyOvertime(days)
}

// GrossPay prices the three hour categories at the base rate times a fixed
// multiplier: 1.0 regular, 1.5 daily overtime, 1.75 weekly overtime.
func GrossPay(hourlyRate float64, days [7]float64) float64 {
	return RegularHours(days)*hourlyRate +
		DailyOvertime(days)*hourlyRate*DailyOvertimeMultiplier +
		WeeklyOvertime(days)*hourlyRate*WeeklyOvertimeMultiplier
}

// CalculateTax walks the brackets in ascending ceiling order. Each step
// taxes min(remaining, ceiling) at the bracket rate, then subtracts the
// full ceiling (not the taxed amount) from the remaining balance; the
// termination check runs before each bracket so a negative remainder is
// never taxed. The ceiling-subtraction rule is load-bearing for the
// expected amounts, so a textbook marginal formula is not a substitute.
func CalculateTax(gross float64, brackets []Bracket) float64 {
	var tax float64
	remaining := gross
	for _, bracket := range brackets {
		if remaining <= 0 {
			break
		}
		tax += math.Min(remaining, bracket.Ceiling) * bracket.Rate
		remaining -= bracket.Ceiling
	}
	return tax
}

// NetPay returns gross pay minus the tax owed on it.
func NetPay(hourlyRate float64, days [7]float64, brackets []Bracket) float64 {
	gross := GrossPay(hourlyRate, days)
	return gross - CalculateTax(gross, brackets)
}

// Compute derives the full set of pay figures for one employee.
func Compute(employee Employee, brackets []Bracket) PayResult {
	gross := GrossPay(employee.HourlyRate, employee.DailyHours)
	tax := CalculateTax(gross, brackets)
	return PayResult{
		EmployeeName:        employee.Name,
		HourlyRate:          employee.HourlyRate,
		DailyHours:          employee.DailyHours,
		RegularHours:        RegularHours(employee.DailyHours),
		DailyOvertimeHours:  DailyOvertime(employee.DailyHours),
		WeeklyOvertimeHours: WeeklyOvertime(employee.DailyHours),
		GrossPay:            gross,
		Tax:                 tax,
		NetPay:              gross - tax,
	}
}
