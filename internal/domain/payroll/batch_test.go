package payroll

import (
	"errors"
	"strings"
	"testing"
)

type captureReporter struct {
	results []PayResult
	fail    error
}

func (c *captureReporter) Report(result PayResult) error {
	if c.fail != nil {
		return c.fail
	}
	c.results = append(c.results, result)
	return nil
}

func mustEmployee(t *testing.T, name string, rate float64, hours []float64) Employee {
	t.Helper()
	employee, err := NewEmployee(name, rate, hours)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return employee
}

func TestNewEmployeeRejectsWrongWeekLength(t *testing.T) {
	if _, err := NewEmployee("short", 20, []float64{8, 8, 8, 8, 8, 8}); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected malformed record error for 6 days, got %v", err)
	}
	if _, err := NewEmployee("long", 20, []float64{8, 8, 8, 8, 8, 8, 8, 8}); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected malformed record error for 8 days, got %v", err)
	}
}

func TestValidateEntriesHourlyRate(t *testing.T) {
	for _, rate := range []float64{0, -5} {
		batch := NewBatch(DefaultBrackets)
		batch.AddEmployee(mustEmployee(t, "bob", rate, []float64{8, 8, 8, 8, 8, 0, 0}))

		err := batch.ValidateEntries()
		if !errors.Is(err, ErrInvalidHourlyRate) {
			t.Fatalf("expected invalid rate error for %v, got %v", rate, err)
		}
		if !strings.Contains(err.Error(), "bob") {
			t.Fatalf("expected error to name the employee, got %q", err.Error())
		}
	}
}

func TestValidateEntriesDailyHours(t *testing.T) {
	for _, hours := range []float64{25, -1} {
		batch := NewBatch(DefaultBrackets)
		batch.AddEmployee(mustEmployee(t, "carol", 20, []float64{8, hours, 8, 8, 8, 0, 0}))

		err := batch.ValidateEntries()
		if !errors.Is(err, ErrInvalidDailyHours) {
			t.Fatalf("expected invalid hours error for %v, got %v", hours, err)
		}
		if !strings.Contains(err.Error(), "carol") {
			t.Fatalf("expected error to name the employee, got %q", err.Error())
		}
	}
}

func TestValidateEntriesPasses(t *testing.T) {
	batch := NewBatch(DefaultBrackets)
	batch.AddEmployee(mustEmployee(t, "dora", 20, []float64{0, 24, 8, 8, 8, 0, 0}))

	if err := batch.ValidateEntries(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateEntriesFailsOnFirstViolation(t *testing.T) {
	batch := NewBatch(DefaultBrackets)
	batch.AddEmployee(mustEmployee(t, "first", -1, []float64{8, 8, 8, 8, 8, 0, 0}))
	batch.AddEmployee(mustEmployee(t, "second", 20, []float64{30, 8, 8, 8, 8, 0, 0}))

	err := batch.ValidateEntries()
	if !errors.Is(err, ErrInvalidHourlyRate) {
		t.Fatalf("expected the first employee's violation, got %v", err)
	}
	if !strings.Contains(err.Error(), "first") {
		t.Fatalf("expected error to name the first employee, got %q", err.Error())
	}
}

func TestProcessPayrollAbortsBeforeReporting(t *testing.T) {
	batch := NewBatch(DefaultBrackets)
	batch.AddEmployee(mustEmployee(t, "good", 20, []float64{8, 8, 8, 8, 8, 0, 0}))
	batch.AddEmployee(mustEmployee(t, "bad", 0, []float64{8, 8, 8, 8, 8, 0, 0}))

	reporter := &captureReporter{}
	results, err := batch.ProcessPayroll(reporter)
	if !errors.Is(err, ErrInvalidHourlyRate) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if results != nil {
		t.Fatalf("expected no results on failed validation, got %d", len(results))
	}
	if len(reporter.results) != 0 {
		t.Fatalf("expected no partial report, got %d entries", len(reporter.results))
	}
}

func TestProcessPayrollSortsDescendingByNet(t *testing.T) {
	batch := NewBatch(DefaultBrackets)
	batch.AddEmployee(mustEmployee(t, "low", 10, []float64{8, 8, 8, 8, 8, 0, 0}))
	batch.AddEmployee(mustEmployee(t, "high", 30, []float64{8, 8, 8, 8, 8, 0, 0}))
	batch.AddEmployee(mustEmployee(t, "mid", 20, []float64{8, 8, 8, 8, 8, 0, 0}))

	reporter := &captureReporter{}
	results, err := batch.ProcessPayroll(reporter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := []string{"high", "mid", "low"}
	for i, name := range order {
		if results[i].EmployeeName != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, results[i].EmployeeName)
		}
	}
	if len(reporter.results) != 3 {
		t.Fatalf("expected 3 reported results, got %d", len(reporter.results))
	}
	for i := range results {
		if reporter.results[i].EmployeeName != results[i].EmployeeName {
			t.Fatalf("reporter saw %s at position %d, want %s", reporter.results[i].EmployeeName, i, results[i].EmployeeName)
		}
	}
}

func TestProcessPayrollStableOnTies(t *testing.T) {
	batch := NewBatch(DefaultBrackets)
	batch.AddEmployee(mustEmployee(t, "alpha", 20, []float64{8, 8, 8, 8, 8, 0, 0}))
	batch.AddEmployee(mustEmployee(t, "beta", 20, []float64{8, 8, 8, 8, 8, 0, 0}))
	batch.AddEmployee(mustEmployee(t, "gamma", 25, []float64{8, 8, 8, 8, 8, 0, 0}))

	results, err := batch.ProcessPayroll(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := []string{"gamma", "alpha", "beta"}
	for i, name := range order {
		if results[i].EmployeeName != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, results[i].EmployeeName)
		}
	}
}

func TestProcessPayrollPropagatesReporterError(t *testing.T) {
	batch := NewBatch(DefaultBrackets)
	batch.AddEmployee(mustEmployee(t, "only", 20, []float64{8, 8, 8, 8, 8, 0, 0}))

	boom := errors.New("printer on fire")
	_, err := batch.ProcessPayroll(&captureReporter{fail: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected reporter error, got %v", err)
	}
}

func TestAddEmployeeAllowsDuplicates(t *testing.T) {
	batch := NewBatch(DefaultBrackets)
	employee := mustEmployee(t, "twin", 20, []float64{8, 8, 8, 8, 8, 0, 0})
	batch.AddEmployee(employee)
	batch.AddEmployee(employee)

	if batch.Size() != 2 {
		t.Fatalf("expected 2 entries, got %d", batch.Size())
	}
}
