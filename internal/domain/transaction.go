package domain

// Transaction is one raw ledger entry supplied by the caller.
// Two transactions with the same date and amount are considered the same
// transaction, even if they were semantically distinct purchases.
type Transaction struct {
	Date   Time    `json:"date"`
	Amount float64 `json:"amount"`
}

// EnrichedTransaction carries the derived round-up fields: Ceiling is the
// next multiple of 100 at or above Amount, Remnant is the round-up itself.
type EnrichedTransaction struct {
	Date    Time    `json:"date"`
	Amount  float64 `json:"amount"`
	Ceiling float64 `json:"ceiling"`
	Remnant float64 `json:"remnant"`
}

// TransactionKey is the deduplication identity of a transaction. The date is
// kept in wire format so equality matches what the caller sent.
type TransactionKey struct {
	Date   string
	Amount float64
}

// Key returns the deduplication identity for this transaction.
func (t Transaction) Key() TransactionKey {
	return TransactionKey{Date: t.Date.String(), Amount: t.Amount}
}

// Key returns the deduplication identity for this transaction.
func (t EnrichedTransaction) Key() TransactionKey {
	return TransactionKey{Date: t.Date.String(), Amount: t.Amount}
}
