package pipeline

import (
	"math"

	"github.com/dvloznov/savings-projector/internal/domain"
)

// Enrich derives ceiling and remnant for every transaction. The ceiling is
// the next multiple of 100 at or above the amount; amounts already on a
// multiple of 100 get a zero remnant.
func (e *Engine) Enrich(transactions []domain.Transaction) []domain.EnrichedTransaction {
	e.log.Info().Int("count", len(transactions)).Msg("Enriching transactions")

	result := make([]domain.EnrichedTransaction, 0, len(transactions))
	for _, t := range transactions {
		ceiling := math.Ceil(t.Amount/100) * 100
		remnant := ceiling - t.Amount

		e.log.Debug().
			Str("date", t.Date.String()).
			Float64("amount", t.Amount).
			Float64("ceiling", ceiling).
			Float64("remnant", remnant).
			Msg("Enriched transaction")

		result = append(result, domain.EnrichedTransaction{
			Date:    t.Date,
			Amount:  t.Amount,
			Ceiling: ceiling,
			Remnant: remnant,
		})
	}
	return result
}
