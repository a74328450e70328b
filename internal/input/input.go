package input

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"payweek/internal/domain/payroll"
)

type batchFile struct {
	Employee []employeeEntry `toml:"employee"`
}

type employeeEntry struct {
	Name  string    `toml:"name"`
	Rate  float64   `toml:"rate"`
	Hours []float64 `toml:"hours"`
}

// LoadBatchFile reads a TOML batch definition and returns the employee
// records in file order. The week length is checked at construction; rate
// and hour ranges are left to batch validation.
//
//	[[employee]]
//	name = "Ann"
//	rate = 20.0
//	hours = [8, 8, 8, 8, 8, 0, 0]
func LoadBatchFile(path string) ([]payroll.Employee, error) {
	var file batchFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("parse batch file: %w", err)
	}
	return toEmployees(file)
}

// ParseBatch decodes a TOML batch definition from a string.
func ParseBatch(data string) ([]payroll.Employee, error) {
	var file batchFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("parse batch: %w", err)
	}
	return toEmployees(file)
}

func toEmployees(file batchFile) ([]payroll.Employee, error) {
	if len(file.Employee) == 0 {
		return nil, fmt.Errorf("batch has no [[employee]] entries")
	}
	employees := make([]payroll.Employee, 0, len(file.Employee))
	for _, entry := range file.Employee {
		employee, err := payroll.NewEmployee(entry.Name, entry.Rate, entry.Hours)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, nil
}
