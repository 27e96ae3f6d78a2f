package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, raw string) Time {
	t.Helper()
	ts, err := ParseTime(raw)
	require.NoError(t, err)
	return ts
}

func TestEvaluationPeriod_Contains_InclusiveBounds(t *testing.T) {
	period := EvaluationPeriod{
		Start: mustTime(t, "2024-01-01 00:00:00"),
		End:   mustTime(t, "2024-03-31 23:59:59"),
	}

	tests := []struct {
		name string
		ts   string
		want bool
	}{
		{"inside", "2024-02-15 12:00:00", true},
		{"at start", "2024-01-01 00:00:00", true},
		{"at end", "2024-03-31 23:59:59", true},
		{"one second before start", "2023-12-31 23:59:59", false},
		{"one second after end", "2024-04-01 00:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, period.Contains(mustTime(t, tt.ts)))
		})
	}
}

func TestTransactionKey_DuplicateIdentity(t *testing.T) {
	a := Transaction{Date: mustTime(t, "2024-01-15 10:30:00"), Amount: 950}
	b := Transaction{Date: mustTime(t, "2024-01-15 10:30:00"), Amount: 950}
	c := Transaction{Date: mustTime(t, "2024-01-15 10:30:01"), Amount: 950}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
