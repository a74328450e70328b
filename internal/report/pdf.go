package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"payweek/internal/domain/payroll"
)

// PDF writes one payslip file per reported result into Dir, named after
// the run ID and the employee.
type PDF struct {
	Dir   string
	RunID string

	// Paths collects the files written by this run, in report order.
	Paths []string
}

func NewPDF(dir string) *PDF {
	return &PDF{Dir: dir, RunID: uuid.NewString()}
}

func (p *PDF) Report(result payroll.PayResult) error {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return err
	}
	filePath := filepath.Join(p.Dir, fmt.Sprintf("%s-%d-%s.pdf", p.RunID, len(p.Paths)+1, slugify(result.EmployeeName)))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", result.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Hourly rate: %.2f", result.HourlyRate))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Regular hours: %.2f", result.RegularHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Daily overtime hours: %.2f", result.DailyOvertimeHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Weekly overtime hours: %.2f", result.WeeklyOvertimeHours))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %.2f", result.GrossPay))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Tax: %.2f", result.Tax))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", result.NetPay))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return err
	}
	p.Paths = append(p.Paths, filePath)
	return nil
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "employee"
	}
	return slug
}
