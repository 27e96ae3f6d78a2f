package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime_RoundTrip(t *testing.T) {
	tests := []string{
		"2024-01-15 10:30:00",
		"2024-12-31 23:59:59",
		"2023-06-01 00:00:00",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			parsed, err := ParseTime(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, parsed.String(), "formatting a parsed timestamp must yield the identical instant")
		})
	}
}

func TestParseTime_Invalid(t *testing.T) {
	tests := []string{
		"2024-01-15",
		"2024-01-15T10:30:00Z",
		"15/01/2024 10:30:00",
		"",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseTime(raw)
			assert.Error(t, err)
		})
	}
}

func TestTime_JSONRoundTrip(t *testing.T) {
	original, err := ParseTime("2024-01-15 10:30:00")
	require.NoError(t, err)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15 10:30:00"`, string(data))

	var decoded Time
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(original.Time))
}

func TestTime_UnmarshalJSON_Invalid(t *testing.T) {
	var ts Time
	assert.Error(t, json.Unmarshal([]byte(`"2024-01-15"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
}
