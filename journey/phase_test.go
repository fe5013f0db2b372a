package journey

import (
	"math"
	"testing"
)

func TestPhaseForProgress(t *testing.T) {
	cases := []struct {
		progress float64
		want     Phase
	}{
		{0, Boarding},
		{0.029, Boarding},
		{0.03, Departing},
		{0.119, Departing},
		{0.12, Cruising},
		{0.5, Cruising},
		{0.849, Cruising},
		{0.85, Approaching},
		{0.969, Approaching},
		{0.97, Arrived},
		{1.0, Arrived},
	}

	for _, tc := range cases {
		got := phaseForProgress(tc.progress)
		if got != tc.want {
			t.Errorf(
				"phaseForProgress(%v) = %s, want %s",
				tc.progress,
				got,
				tc.want,
			)
		}
	}
}

func TestEaseProgressEndpoints(t *testing.T) {
	if got := easeProgress(0); got != 0 {
		t.Errorf("easeProgress(0) = %v, want exactly 0", got)
	}

	if got := easeProgress(1); got != 1 {
		t.Errorf("easeProgress(1) = %v, want exactly 1", got)
	}
}

func TestEaseProgressContinuousAtBoundaries(t *testing.T) {
	boundaries := []float64{
		boardingEnd,
		departingEnd,
		cruisingEnd,
		approachingEnd,
	}

	const eps = 1e-9

	for _, b := range boundaries {
		below := easeProgress(b - eps)
		at := easeProgress(b)

		if math.Abs(at-below) > 1e-6 {
			t.Errorf(
				"easeProgress discontinuous at %v: %v below vs %v at",
				b,
				below,
				at,
			)
		}
	}
}

func TestEaseProgressMonotonicAndBounded(t *testing.T) {
	prev := -1.0

	for raw := 0.0; raw <= 1.0; raw += 0.0005 {
		got := easeProgress(raw)

		if got < 0 || got > 1 {
			t.Fatalf("easeProgress(%v) = %v, outside [0,1]", raw, got)
		}

		if got < prev {
			t.Fatalf(
				"easeProgress(%v) = %v decreased from %v",
				raw,
				got,
				prev,
			)
		}

		prev = got
	}
}
