package pipeline

import (
	"strings"

	"github.com/dvloznov/savings-projector/internal/domain"
)

// Validation messages match the public API contract verbatim.
const (
	msgNegativeAmount = "Negative amounts are not allowed"
	msgDuplicate      = "Duplicate transaction"

	msgDelimiter = "; "
)

// seenSet tracks the deduplication keys already accepted within one
// computation. Always scoped to a single request, never shared.
type seenSet map[domain.TransactionKey]struct{}

// checkValidationErrors classifies one transaction against the running seen
// set. The order is fixed: negative-amount first, duplicate second.
func checkValidationErrors(amount float64, key domain.TransactionKey, seen seenSet) []string {
	var errs []string
	if amount < 0 {
		errs = append(errs, msgNegativeAmount)
	}
	if _, ok := seen[key]; ok {
		errs = append(errs, msgDuplicate)
	}
	return errs
}

// joinErrors flattens validation errors into the wire message.
func joinErrors(errs []string) string {
	return strings.Join(errs, msgDelimiter)
}

// InvalidEnrichedTransaction is an enriched transaction rejected by
// validation, with the joined error message(s).
type InvalidEnrichedTransaction struct {
	domain.EnrichedTransaction
	Message string `json:"message"`
}

// ValidationResult splits enriched transactions into accepted and rejected.
type ValidationResult struct {
	Valid   []domain.EnrichedTransaction `json:"valid"`
	Invalid []InvalidEnrichedTransaction `json:"invalid"`
}

// Validate classifies enriched transactions. Only error-free transactions
// enter the seen set, so the first of two duplicates stays valid and the
// second is rejected.
func (e *Engine) Validate(transactions []domain.EnrichedTransaction) ValidationResult {
	valid := make([]domain.EnrichedTransaction, 0, len(transactions))
	invalid := []InvalidEnrichedTransaction{}
	seen := make(seenSet)

	for _, t := range transactions {
		errs := checkValidationErrors(t.Amount, t.Key(), seen)
		if len(errs) > 0 {
			invalid = append(invalid, InvalidEnrichedTransaction{
				EnrichedTransaction: t,
				Message:             joinErrors(errs),
			})
			continue
		}
		seen[t.Key()] = struct{}{}
		valid = append(valid, t)
	}

	e.log.Info().
		Int("valid", len(valid)).
		Int("invalid", len(invalid)).
		Msg("Validated transactions")

	return ValidationResult{Valid: valid, Invalid: invalid}
}

// dropInvalid is the returns-pipeline variant of validation: invalid
// transactions are logged and silently excluded instead of being reported.
func (e *Engine) dropInvalid(enriched []domain.EnrichedTransaction) []domain.EnrichedTransaction {
	valid := make([]domain.EnrichedTransaction, 0, len(enriched))
	seen := make(seenSet)

	for _, t := range enriched {
		if errs := checkValidationErrors(t.Amount, t.Key(), seen); len(errs) > 0 {
			e.log.Warn().
				Str("date", t.Date.String()).
				Float64("amount", t.Amount).
				Str("reason", joinErrors(errs)).
				Msg("Skipping invalid transaction")
			continue
		}
		seen[t.Key()] = struct{}{}
		valid = append(valid, t)
	}

	e.log.Info().
		Int("valid", len(valid)).
		Int("total", len(enriched)).
		Msg("Valid transactions after validation")

	return valid
}
