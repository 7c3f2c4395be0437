package compose_test

import (
	"errors"
	"math"
	"testing"

	"github.com/arielshad/balagan-promo/compose"
)

func TestInterpWithinRange(t *testing.T) {
	in := []float64{0, 10, 20}
	out := []float64{0, 100, 50}

	cases := []struct {
		x    float64
		want float64
	}{
		{0, 0},
		{5, 50},
		{10, 100},
		{15, 75},
		{20, 50},
	}
	for _, tc := range cases {
		got, err := compose.Interp(tc.x, in, out, compose.Clamp, compose.Clamp)
		if err != nil {
			t.Fatalf("Interp(%v) returned error: %v", tc.x, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Interp(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestInterpClampHoldsEndpoints(t *testing.T) {
	in := []float64{0, 10}
	out := []float64{1, 3}

	got, err := compose.Interp(-5, in, out, compose.Clamp, compose.Clamp)
	if err != nil {
		t.Fatalf("Interp returned error: %v", err)
	}
	if got != 1 {
		t.Fatalf("left clamp = %v, want 1", got)
	}

	got, err = compose.Interp(25, in, out, compose.Clamp, compose.Clamp)
	if err != nil {
		t.Fatalf("Interp returned error: %v", err)
	}
	if got != 3 {
		t.Fatalf("right clamp = %v, want 3", got)
	}
}

func TestInterpExtendContinuesSlope(t *testing.T) {
	in := []float64{0, 10, 20}
	out := []float64{0, 10, 30}

	got, err := compose.Interp(-5, in, out, compose.Extend, compose.Clamp)
	if err != nil {
		t.Fatalf("Interp returned error: %v", err)
	}
	// First segment has slope 1.
	if math.Abs(got-(-5)) > 1e-12 {
		t.Fatalf("left extend = %v, want -5", got)
	}

	got, err = compose.Interp(25, in, out, compose.Clamp, compose.Extend)
	if err != nil {
		t.Fatalf("Interp returned error: %v", err)
	}
	// Last segment has slope 2.
	if math.Abs(got-40) > 1e-12 {
		t.Fatalf("right extend = %v, want 40", got)
	}
}

func TestInterpEdgePoliciesAreIndependent(t *testing.T) {
	in := []float64{0, 1}
	out := []float64{0, 1}

	left, err := compose.Interp(-1, in, out, compose.Clamp, compose.Extend)
	if err != nil {
		t.Fatalf("Interp returned error: %v", err)
	}
	if left != 0 {
		t.Fatalf("left side should clamp, got %v", left)
	}

	right, err := compose.Interp(2, in, out, compose.Clamp, compose.Extend)
	if err != nil {
		t.Fatalf("Interp returned error: %v", err)
	}
	if math.Abs(right-2) > 1e-12 {
		t.Fatalf("right side should extend, got %v", right)
	}
}

func TestInterpRejectsBadRanges(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		out  []float64
	}{
		{"length mismatch", []float64{0, 1, 2}, []float64{0, 1}},
		{"too short", []float64{0}, []float64{0}},
		{"non-monotonic", []float64{0, 5, 5}, []float64{0, 1, 2}},
		{"decreasing", []float64{10, 0}, []float64{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compose.Interp(0.5, tc.in, tc.out, compose.Clamp, compose.Clamp)
			var cfgErr *compose.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
		})
	}
}
