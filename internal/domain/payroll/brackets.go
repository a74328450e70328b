package payroll

import "math"

// Bracket is one step of the progressive tax schedule.
type Bracket struct {
	Ceiling float64 `json:"ceiling"`
	Rate    float64 `json:"rate"`
}

// DefaultBrackets is the process-wide tax schedule, ascending by ceiling
// with an unbounded last bracket. Treated as immutable; callers pass it as
// a parameter rather than reaching for it from inside the calculator.
var DefaultBrackets = []Bracket{
	{Ceiling: 600, Rate: 0.10},
	{Ceiling: 1200, Rate: 0.15},
	{Ceiling: 2000, Rate: 0.20},
	{Ceiling: math.Inf(1), Rate: 0.25},
}
