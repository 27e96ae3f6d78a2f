package pipeline

import (
	"math"
)

// Projection presets. NPS carries the tax-benefit computation; the index
// preset projects at the higher rate without it.
var (
	PresetNPS   = Preset{Name: "nps", Rate: 0.0711, WithTaxBenefit: true}
	PresetIndex = Preset{Name: "index", Rate: 0.1449, WithTaxBenefit: false}
)

// Preset fixes the annual rate and tax-benefit behavior of a projection.
type Preset struct {
	Name           string
	Rate           float64
	WithTaxBenefit bool
}

const (
	retirementAge   = 60
	minHorizonYears = 5

	// Tax-deduction cap for retirement contributions.
	maxDeduction         = 200000.0
	deductionIncomeShare = 0.10
)

// horizonYears derives the compounding horizon from the investor's age:
// years until 60, with a floor of 5 for anyone already 60 or older.
func horizonYears(age int) int {
	if age < retirementAge {
		return retirementAge - age
	}
	return minHorizonYears
}

// compoundReturn compounds amount annually over the horizon and deflates the
// nominal result by inflation (a decimal, e.g. 0.055). Compounding frequency
// is fixed at once per year.
func compoundReturn(amount float64, years int, rate, inflation float64) float64 {
	nominal := amount * math.Pow(1+rate, float64(years))
	return nominal / math.Pow(1+inflation, float64(years))
}

// calculateTax applies the simplified progressive slab table to an annual
// income. Slab boundaries and rates are fixed.
func calculateTax(income float64) float64 {
	switch {
	case income <= 700000:
		return 0
	case income <= 1000000:
		return (income - 700000) * 0.10
	case income <= 1200000:
		return 30000 + (income-1000000)*0.15
	case income <= 1500000:
		return 60000 + (income-1200000)*0.20
	default:
		return 120000 + (income-1500000)*0.30
	}
}

// taxBenefit is the tax saved by deducting the period investment, capped at
// 10% of annual income and the absolute deduction limit.
func taxBenefit(periodInvestment, annualIncome float64) float64 {
	deduction := math.Min(periodInvestment, math.Min(deductionIncomeShare*annualIncome, maxDeduction))
	return calculateTax(annualIncome) - calculateTax(annualIncome-deduction)
}
