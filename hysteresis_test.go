package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecideFirstRun(t *testing.T) {
	curve, _ := NewCurve(defaultCurve)

	// with no prior speed the base target passes through unchanged
	require.Equal(t, 0, decide(30, curve, speedUnknown))
	require.Equal(t, 20, decide(46, curve, speedUnknown))
	require.Equal(t, 100, decide(70, curve, speedUnknown))
}

func TestDecideIncrease(t *testing.T) {
	curve, _ := NewCurve(defaultCurve)

	tests := []struct {
		name string
		temp float64
		last int
		want int
	}{
		{name: "hovering under next step", temp: 46, last: 20, want: 20},
		{name: "still under next step", temp: 49.9, last: 20, want: 20},
		{name: "next step reached", temp: 50, last: 20, want: 35},
		{name: "two steps at once", temp: 60, last: 20, want: 75},
		{name: "from stopped", temp: 45, last: 0, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, decide(tt.temp, curve, tt.last))
		})
	}
}

func TestDecideDecrease(t *testing.T) {
	curve, _ := NewCurve(defaultCurve)

	// last=100 is anchored at 65°C: the drop is honored only once the
	// temperature has cleared 65-4=61.
	tests := []struct {
		name string
		temp float64
		last int
		want int
	}{
		{name: "at own threshold", temp: 65, last: 100, want: 100},
		{name: "inside band", temp: 63, last: 100, want: 100},
		{name: "just above band edge", temp: 61.5, last: 100, want: 100},
		{name: "band edge transitions", temp: 61, last: 100, want: 75},
		{name: "well below band", temp: 58, last: 100, want: 55},
		{name: "cold drops to zero", temp: 40, last: 100, want: 0},
		{name: "one step down", temp: 52, last: 55, want: 55},
		{name: "one step down cleared", temp: 51, last: 55, want: 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, decide(tt.temp, curve, tt.last))
		})
	}
}

func TestDecideUnanchoredLastSpeed(t *testing.T) {
	curve, _ := NewCurve(defaultCurve)

	// a last speed no step commands (e.g. forced via fanspeed) has no
	// hysteresis band: the decrease is honored immediately.
	require.Equal(t, 55, decide(56, curve, 80))
	require.Equal(t, 0, decide(30, curve, 10))
}

func TestDecideEmptyCurve(t *testing.T) {
	curve, _ := NewCurve(nil)

	require.Equal(t, 0, decide(80, curve, speedUnknown))
	// decrease from a forced speed: no step, no band, drop to 0
	require.Equal(t, 0, decide(80, curve, 100))
}
