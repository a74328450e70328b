package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	runsTotal          uint64
	employeesPaid      uint64
	validationFailures uint64
	totalDurationMs    uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) RecordRun(employees int, duration time.Duration) {
	atomic.AddUint64(&c.runsTotal, 1)
	atomic.AddUint64(&c.employeesPaid, uint64(employees))
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordValidationFailure() {
	atomic.AddUint64(&c.validationFailures, 1)
}

func (c *Collector) Snapshot() map[string]any {
	runs := atomic.LoadUint64(&c.runsTotal)
	paid := atomic.LoadUint64(&c.employeesPaid)
	failures := atomic.LoadUint64(&c.validationFailures)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if runs > 0 {
		avg = float64(totalMs) / float64(runs)
	}
	return map[string]any{
		"runsTotal":          runs,
		"employeesPaid":      paid,
		"validationFailures": failures,
		"avgRunDurationMs":   avg,
	}
}
