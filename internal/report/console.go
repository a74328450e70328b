package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"payweek/internal/domain/payroll"
)

// Console writes aligned pay slips to an io.Writer, one row per employee
// in the order results arrive. Flush appends a totals row and must be
// called once all results are in.
type Console struct {
	writer *tabwriter.Writer

	rows       int
	totalGross float64
	totalTax   float64
	totalNet   float64
}

func NewConsole(out io.Writer) *Console {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "EMPLOYEE\tRATE\tREGULAR\tDAILY OT\tWEEKLY OT\tGROSS\tTAX\tNET")
	return &Console{writer: writer}
}

func (c *Console) Report(result payroll.PayResult) error {
	_, err := fmt.Fprintf(c.writer, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
		result.EmployeeName,
		result.HourlyRate,
		result.RegularHours,
		result.DailyOvertimeHours,
		result.WeeklyOvertimeHours,
		result.GrossPay,
		result.Tax,
		result.NetPay,
	)
	if err != nil {
		return err
	}
	c.rows++
	c.totalGross += result.GrossPay
	c.totalTax += result.Tax
	c.totalNet += result.NetPay
	return nil
}

func (c *Console) Flush() error {
	if c.rows > 0 {
		fmt.Fprintf(c.writer, "TOTAL\t\t\t\t\t%.2f\t%.2f\t%.2f\n", c.totalGross, c.totalTax, c.totalNet)
	}
	return c.writer.Flush()
}
