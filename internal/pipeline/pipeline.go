package pipeline

import (
	"github.com/dvloznov/savings-projector/internal/domain"
)

// FilteredTransaction is a valid transaction after period adjustment, with
// its final remnant and evaluation-period membership flag.
type FilteredTransaction struct {
	Date      domain.Time `json:"date"`
	Amount    float64     `json:"amount"`
	Ceiling   float64     `json:"ceiling"`
	Remnant   float64     `json:"remnant"`
	InKPeriod bool        `json:"inKPeriod"`
}

// InvalidTransaction is a rejected transaction as surfaced by the filter
// endpoint: raw fields plus the joined error message(s).
type InvalidTransaction struct {
	Date    domain.Time `json:"date"`
	Amount  float64     `json:"amount"`
	Message string      `json:"message"`
}

// FilterResult is the outcome of FilterByPeriods.
type FilterResult struct {
	Valid   []FilteredTransaction `json:"valid"`
	Invalid []InvalidTransaction  `json:"invalid"`
}

// FilterByPeriods enriches and validates transactions, applies override and
// bonus periods to each valid one, and flags evaluation-period membership.
// Transactions whose final remnant is not strictly positive are dropped from
// the valid list without being reported as errors.
func (e *Engine) FilterByPeriods(
	transactions []domain.Transaction,
	overridePeriods []domain.OverridePeriod,
	bonusPeriods []domain.BonusPeriod,
	evaluationPeriods []domain.EvaluationPeriod,
) FilterResult {
	enriched := e.Enrich(transactions)

	valid := []FilteredTransaction{}
	invalid := []InvalidTransaction{}
	seen := make(seenSet)

	for _, t := range enriched {
		if errs := checkValidationErrors(t.Amount, t.Key(), seen); len(errs) > 0 {
			invalid = append(invalid, InvalidTransaction{
				Date:    t.Date,
				Amount:  t.Amount,
				Message: joinErrors(errs),
			})
			continue
		}
		seen[t.Key()] = struct{}{}

		remnant := e.applyOverride(t.Date, t.Remnant, overridePeriods)
		remnant = e.applyBonus(t.Date, remnant, bonusPeriods)

		if remnant <= 0 {
			e.log.Debug().
				Str("date", t.Date.String()).
				Float64("remnant", remnant).
				Msg("Skipped transaction: remnant not positive")
			continue
		}

		valid = append(valid, FilteredTransaction{
			Date:      t.Date,
			Amount:    t.Amount,
			Ceiling:   t.Ceiling,
			Remnant:   remnant,
			InKPeriod: inEvaluationPeriod(t.Date, evaluationPeriods),
		})
	}

	return FilterResult{Valid: valid, Invalid: invalid}
}

// ReturnsInput bundles everything a returns projection needs. Inflation is
// a percentage (5.5 means 5.5%) and is converted to a decimal internally.
type ReturnsInput struct {
	Transactions      []domain.Transaction
	OverridePeriods   []domain.OverridePeriod
	BonusPeriods      []domain.BonusPeriod
	EvaluationPeriods []domain.EvaluationPeriod
	Age               int
	Wage              float64
	InflationPercent  float64
}

// PeriodSavings is the projection for one evaluation period.
type PeriodSavings struct {
	Start      domain.Time `json:"start"`
	End        domain.Time `json:"end"`
	Amount     float64     `json:"amount"`
	Profits    float64     `json:"profits"`
	TaxBenefit float64     `json:"taxBenefit"`
}

// ReturnsResult is the full projection: ledger-wide totals plus one entry
// per evaluation period, in the order the periods were supplied.
type ReturnsResult struct {
	TotalTransactionAmount float64         `json:"totalTransactionAmount"`
	TotalCeiling           float64         `json:"totalCeiling"`
	SavingsByDates         []PeriodSavings `json:"savingsByDates"`
}

// adjustedTransaction is a valid transaction with its post-period remnant,
// retained for evaluation-period aggregation.
type adjustedTransaction struct {
	date    domain.Time
	amount  float64
	ceiling float64
	remnant float64
}

// CalculateReturns runs the full projection pipeline: enrich, drop invalid
// transactions, apply override and bonus periods, then project compound
// returns (and, per preset, tax benefit) for each evaluation period.
func (e *Engine) CalculateReturns(in ReturnsInput, preset Preset) ReturnsResult {
	e.log.Info().
		Str("preset", preset.Name).
		Int("age", in.Age).
		Float64("wage", in.Wage).
		Float64("inflation", in.InflationPercent).
		Int("transactions", len(in.Transactions)).
		Int("override_periods", len(in.OverridePeriods)).
		Int("bonus_periods", len(in.BonusPeriods)).
		Int("evaluation_periods", len(in.EvaluationPeriods)).
		Msg("Calculating returns")

	enriched := e.Enrich(in.Transactions)
	valid := e.dropInvalid(enriched)
	processed, totalAmount, totalCeiling := e.applyPeriods(valid, in.OverridePeriods, in.BonusPeriods)

	annualIncome := in.Wage * 12
	inflation := in.InflationPercent / 100
	years := horizonYears(in.Age)

	savings := make([]PeriodSavings, 0, len(in.EvaluationPeriods))
	for _, k := range in.EvaluationPeriods {
		savings = append(savings, e.projectPeriod(k, processed, years, preset, inflation, annualIncome))
	}

	return ReturnsResult{
		TotalTransactionAmount: round2(totalAmount),
		TotalCeiling:           round2(totalCeiling),
		SavingsByDates:         savings,
	}
}

// applyPeriods applies override and bonus rules to every valid transaction.
// Raw-amount and ceiling totals cover all valid transactions; only those
// with a strictly positive final remnant survive into the returned slice.
func (e *Engine) applyPeriods(
	valid []domain.EnrichedTransaction,
	overridePeriods []domain.OverridePeriod,
	bonusPeriods []domain.BonusPeriod,
) (processed []adjustedTransaction, totalAmount, totalCeiling float64) {
	for _, t := range valid {
		remnant := e.applyOverride(t.Date, t.Remnant, overridePeriods)
		remnant = e.applyBonus(t.Date, remnant, bonusPeriods)

		totalAmount += t.Amount
		totalCeiling += t.Ceiling

		if remnant <= 0 {
			e.log.Debug().
				Str("date", t.Date.String()).
				Float64("remnant", remnant).
				Msg("Skipped transaction: remnant not positive")
			continue
		}

		processed = append(processed, adjustedTransaction{
			date:    t.Date,
			amount:  t.Amount,
			ceiling: t.Ceiling,
			remnant: remnant,
		})
	}

	e.log.Info().
		Int("processed", len(processed)).
		Float64("total_amount", totalAmount).
		Float64("total_ceiling", totalCeiling).
		Msg("Applied period rules")

	return processed, totalAmount, totalCeiling
}

// projectPeriod sums the remnants falling inside one evaluation period and
// projects compound growth and tax benefit over the horizon.
func (e *Engine) projectPeriod(
	k domain.EvaluationPeriod,
	processed []adjustedTransaction,
	years int,
	preset Preset,
	inflation float64,
	annualIncome float64,
) PeriodSavings {
	var investment float64
	for _, t := range processed {
		if k.Contains(t.date) {
			investment += t.remnant
		}
	}

	realValue := compoundReturn(investment, years, preset.Rate, inflation)
	profit := realValue - investment

	var benefit float64
	if preset.WithTaxBenefit && investment > 0 {
		benefit = taxBenefit(investment, annualIncome)
	}

	e.log.Info().
		Str("start", k.Start.String()).
		Str("end", k.End.String()).
		Float64("investment", investment).
		Int("years", years).
		Float64("real_value", realValue).
		Float64("profit", profit).
		Float64("tax_benefit", benefit).
		Msg("Projected evaluation period")

	return PeriodSavings{
		Start:      k.Start,
		End:        k.End,
		Amount:     round2(investment),
		Profits:    round2(profit),
		TaxBenefit: round2(benefit),
	}
}
