package report

import "payweek/internal/domain/payroll"

type multi []payroll.Reporter

// Multi fans each result out to every reporter in order, stopping on the
// first failure.
func Multi(reporters ...payroll.Reporter) payroll.Reporter {
	return multi(reporters)
}

func (m multi) Report(result payroll.PayResult) error {
	for _, reporter := range m {
		if err := reporter.Report(result); err != nil {
			return err
		}
	}
	return nil
}
