package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizonYears(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{30, 30},
		{59, 1},
		{60, 5},
		{65, 5},
		{80, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, horizonYears(tt.age), "age %d", tt.age)
	}
}

func TestCalculateTax_Slabs(t *testing.T) {
	tests := []struct {
		name   string
		income float64
		want   float64
	}{
		{"zero income", 0, 0},
		{"below first slab", 500000, 0},
		{"first slab boundary", 700000, 0},
		{"second slab", 800000, 10000},
		{"second slab boundary", 1000000, 30000},
		{"third slab", 1100000, 45000},
		{"third slab boundary", 1200000, 60000},
		{"fourth slab", 1400000, 100000},
		{"fourth slab boundary", 1500000, 120000},
		{"top slab", 2000000, 270000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, calculateTax(tt.income), 1e-9)
		})
	}
}

func TestCompoundReturn(t *testing.T) {
	t.Run("no inflation", func(t *testing.T) {
		// 1000 at 10% for 2 years = 1210
		got := compoundReturn(1000, 2, 0.10, 0)
		assert.InDelta(t, 1210, got, 1e-9)
	})

	t.Run("inflation equal to rate cancels growth", func(t *testing.T) {
		got := compoundReturn(1000, 5, 0.10, 0.10)
		assert.InDelta(t, 1000, got, 1e-9)
	})

	t.Run("zero amount stays zero", func(t *testing.T) {
		assert.Zero(t, compoundReturn(0, 30, 0.0711, 0.055))
	})

	t.Run("deflated nominal value", func(t *testing.T) {
		want := 5000 * math.Pow(1.0711, 30) / math.Pow(1.055, 30)
		got := compoundReturn(5000, 30, 0.0711, 0.055)
		assert.InDelta(t, want, got, 1e-6)
	})
}

func TestTaxBenefit(t *testing.T) {
	t.Run("deduction limited by investment", func(t *testing.T) {
		// income 1,200,000: tax 60,000; deducting 5,000 saves 15% of it
		got := taxBenefit(5000, 1200000)
		assert.InDelta(t, 750, got, 1e-9)
	})

	t.Run("deduction capped at 10 percent of income", func(t *testing.T) {
		// income 900,000: cap is 90,000; tax 20,000 -> 11,000
		got := taxBenefit(150000, 900000)
		want := calculateTax(900000) - calculateTax(810000)
		assert.InDelta(t, want, got, 1e-9)
		assert.InDelta(t, 9000, got, 1e-9)
	})

	t.Run("deduction capped at absolute limit", func(t *testing.T) {
		// income 3,000,000: 10% would be 300,000, cap holds at 200,000
		got := taxBenefit(500000, 3000000)
		want := calculateTax(3000000) - calculateTax(2800000)
		assert.InDelta(t, want, got, 1e-9)
		assert.InDelta(t, 60000, got, 1e-9)
	})

	t.Run("no tax due means no benefit", func(t *testing.T) {
		assert.Zero(t, taxBenefit(5000, 600000))
	})
}

func TestPresets(t *testing.T) {
	assert.Equal(t, 0.0711, PresetNPS.Rate)
	assert.True(t, PresetNPS.WithTaxBenefit)
	assert.Equal(t, 0.1449, PresetIndex.Rate)
	assert.False(t, PresetIndex.WithTaxBenefit)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.56, round2(1.555))
	assert.Equal(t, 1.55, round2(1.554))
	assert.Equal(t, 50.0, round2(50))
	assert.Equal(t, -1.56, round2(-1.555))
}
