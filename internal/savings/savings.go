// Package savings turns a monthly electricity bill into a rooftop solar
// estimate: system size, savings, CO2 offset and the applicable subsidy.
package savings

import "math"

// Bill range accepted by the calculator's range control, in rupees.
const (
	MinBill     = 1000
	MaxBill     = 20000
	BillStep    = 500
	DefaultBill = 3000
)

// MaxEstimateBill caps the bill Calculate works with, keeping every derived
// figure inside int range. Larger bills, +Inf included, are estimated at it.
const MaxEstimateBill = 1e9

const (
	unitPrice          = 8.0   // rupees per kWh
	unitsPerKilowatt   = 120.0 // monthly kWh produced per installed kW
	savingsRatio       = 0.9
	co2KgPerUnit       = 0.8
	minSystemKilowatts = 1
	maxSystemKilowatts = 10
)

// Flat subsidy tiers by system size.
const (
	SubsidyOneKilowatt   = 30000
	SubsidyTwoKilowatt   = 60000
	SubsidyThreeKilowatt = 78000
)

// Estimate is the rounded result shown on the calculator.
type Estimate struct {
	Bill           int `json:"bill"`
	MonthlyUnits   int `json:"monthly_units"`
	SystemKW       int `json:"system_kw"`
	MonthlySavings int `json:"monthly_savings"`
	YearlySavings  int `json:"yearly_savings"`
	CO2OffsetKg    int `json:"co2_offset_kg"`
	Subsidy        int `json:"subsidy"`
}

// Calculate computes the estimate for a monthly bill. It is total over
// non-negative input; callers bound user input with Clamp first.
func Calculate(bill float64) Estimate {
	switch {
	case bill < 0 || math.IsNaN(bill):
		bill = 0
	case bill > MaxEstimateBill:
		bill = MaxEstimateBill
	}

	units := bill / unitPrice
	size := SystemSize(units)
	monthly := bill * savingsRatio

	return Estimate{
		Bill:           round(bill),
		MonthlyUnits:   round(units),
		SystemKW:       size,
		MonthlySavings: round(monthly),
		YearlySavings:  round(monthly * 12),
		CO2OffsetKg:    round(units * co2KgPerUnit),
		Subsidy:        Subsidy(size),
	}
}

// SystemSize returns the whole-kilowatt system needed for the given monthly
// consumption, clamped to [1, 10].
func SystemSize(monthlyUnits float64) int {
	size := int(math.Ceil(monthlyUnits / unitsPerKilowatt))
	return clampInt(size, minSystemKilowatts, maxSystemKilowatts)
}

// Subsidy looks up the flat subsidy for a system size.
func Subsidy(systemKW int) int {
	switch {
	case systemKW <= 1:
		return SubsidyOneKilowatt
	case systemKW == 2:
		return SubsidyTwoKilowatt
	default:
		return SubsidyThreeKilowatt
	}
}

// Clamp restricts a bill to the calculator's range.
func Clamp(bill float64) float64 {
	if math.IsNaN(bill) {
		return DefaultBill
	}
	return math.Min(math.Max(bill, MinBill), MaxBill)
}

func round(v float64) int {
	return int(math.Round(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
