package payroll

const (
	DaysPerWeek = 7

	RegularDailyLimit = 8.0
	WeeklyHourLimit   = 40.0
	MaxDailyHours     = 24.0

	DailyOvertimeMultiplier  = 1.5
	WeeklyOvertimeMultiplier = 1.75
)
