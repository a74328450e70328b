package report

import (
	"bytes"
	"strings"
	"testing"

	"payweek/internal/domain/payroll"
)

func sampleResult(name string, net float64) payroll.PayResult {
	return payroll.PayResult{
		EmployeeName: name,
		HourlyRate:   20,
		RegularHours: 40,
		GrossPay:     net + 90,
		Tax:          90,
		NetPay:       net,
	}
}

func TestConsoleWritesRowsAndTotals(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	if err := console.Report(sampleResult("Ann", 710)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := console.Report(sampleResult("Ben", 500)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := console.Flush(); err != nil {
		t.Fatalf("flush error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, 2 rows and totals, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "EMPLOYEE") {
		t.Fatalf("expected header line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "Ann") || !strings.Contains(lines[1], "710.00") {
		t.Fatalf("expected Ann row with net 710.00, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "Ben") {
		t.Fatalf("expected Ben row, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "TOTAL") || !strings.Contains(lines[3], "1210.00") {
		t.Fatalf("expected totals row with net 1210.00, got %q", lines[3])
	}
}

func TestConsoleFlushWithoutRows(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)
	if err := console.Flush(); err != nil {
		t.Fatalf("flush error: %v", err)
	}
	if strings.Contains(buf.String(), "TOTAL") {
		t.Fatalf("expected no totals row for empty report, got %q", buf.String())
	}
}

type countingReporter struct{ calls int }

func (c *countingReporter) Report(payroll.PayResult) error {
	c.calls++
	return nil
}

func TestMultiFansOut(t *testing.T) {
	first := &countingReporter{}
	second := &countingReporter{}

	if err := Multi(first, second).Report(sampleResult("Ann", 710)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("expected one call each, got %d and %d", first.calls, second.calls)
	}
}
