package payroll

import "errors"

var (
	ErrInvalidHourlyRate = errors.New("hourly rate must be greater than zero")
	ErrInvalidDailyHours = errors.New("daily hours must be between 0 and 24")
	ErrMalformedRecord   = errors.New("daily hours must cover exactly seven days")
)
