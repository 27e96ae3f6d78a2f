package pipeline

import (
	"github.com/dvloznov/savings-projector/internal/domain"
)

// applyOverride replaces the base remnant with the fixed value of the
// matching override period whose start is latest. Equal starts are resolved
// by input order: the later period wins. No match leaves the remnant as is.
func (e *Engine) applyOverride(ts domain.Time, baseRemnant float64, periods []domain.OverridePeriod) float64 {
	var best *domain.OverridePeriod
	for i := range periods {
		p := &periods[i]
		if !p.Contains(ts) {
			continue
		}
		if best == nil || !p.Start.Before(best.Start.Time) {
			best = p
		}
	}
	if best == nil {
		return baseRemnant
	}

	e.log.Debug().
		Str("date", ts.String()).
		Float64("from", baseRemnant).
		Float64("to", best.Fixed).
		Msg("Override period applied")

	return best.Fixed
}

// applyBonus adds the extra of every matching bonus period, in input order.
// All matches stack; there is no limit on how many periods may apply.
func (e *Engine) applyBonus(ts domain.Time, remnant float64, periods []domain.BonusPeriod) float64 {
	initial := remnant
	for _, p := range periods {
		if !p.Contains(ts) {
			continue
		}
		remnant += p.Extra
		e.log.Debug().
			Str("date", ts.String()).
			Float64("extra", p.Extra).
			Float64("remnant", remnant).
			Msg("Bonus period applied")
	}
	if remnant != initial {
		e.log.Debug().
			Str("date", ts.String()).
			Float64("from", initial).
			Float64("to", remnant).
			Msg("Total bonus adjustment")
	}
	return remnant
}

// inEvaluationPeriod reports whether the timestamp falls inside at least one
// evaluation period.
func inEvaluationPeriod(ts domain.Time, periods []domain.EvaluationPeriod) bool {
	for _, p := range periods {
		if p.Contains(ts) {
			return true
		}
	}
	return false
}
