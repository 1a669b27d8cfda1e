package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurity_WithChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		current, prev float64
		wantChange    float64
		wantPercent   float64
		wantPositive  bool
	}{
		{name: "gain", current: 52.50, prev: 51.25, wantChange: 1.25, wantPercent: 1.25 / 51.25 * 100, wantPositive: true},
		{name: "loss", current: 38.75, prev: 39.50, wantChange: -0.75, wantPercent: -0.75 / 39.50 * 100, wantPositive: false},
		{name: "unchanged counts as positive", current: 10, prev: 10, wantChange: 0, wantPercent: 0, wantPositive: true},
		{name: "zero previous close", current: 5, prev: 0, wantChange: 5, wantPercent: 0, wantPositive: true},
		{name: "zero prices", current: 0, prev: 0, wantChange: 0, wantPercent: 0, wantPositive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := Security{ID: "X", CurrentPrice: tt.current, PreviousClose: tt.prev}
			got := s.WithChange()

			assert.Equal(t, s, got.Security)
			assert.InDelta(t, tt.wantChange, got.Change, 1e-9)
			assert.InDelta(t, tt.wantPercent, got.ChangePercent, 1e-9)
			assert.Equal(t, tt.wantPositive, got.IsPositive)
			assert.False(t, math.IsNaN(got.ChangePercent) || math.IsInf(got.ChangePercent, 0))
		})
	}
}

func TestSecurity_WithChange_NonFinitePrice(t *testing.T) {
	t.Parallel()

	got := Security{CurrentPrice: math.Inf(1), PreviousClose: 10}.WithChange()
	assert.Equal(t, 0.0, got.ChangePercent)
	assert.True(t, got.IsPositive)
}
