package models

import "math"

// AuditAggregate holds reviews given (Up) and received (Down) restricted to
// project objects. Up and Down are sums of amounts when the backend supports
// summing, otherwise row counts (see Summed).
type AuditAggregate struct {
	Up     float64
	Down   float64
	Summed bool

	// Ratio is Up/Down unrounded; +Inf when only Up is non-zero, 0 when both are.
	Ratio float64
	// Rounded is Ratio rounded to one decimal place for display.
	Rounded float64
}

// Display renders the rounded ratio, using "∞" for the infinite case.
func (a AuditAggregate) Display() string {
	if math.IsInf(a.Rounded, 1) {
		return "∞"
	}
	return formatOneDecimal(a.Rounded)
}
