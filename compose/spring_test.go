package compose_test

import (
	"errors"
	"math"
	"testing"

	"github.com/arielshad/balagan-promo/compose"
)

func TestSpringDeterminism(t *testing.T) {
	specs := []compose.SpringSpec{
		compose.Smooth(),
		compose.Bouncy(),
		{Mass: 2, Stiffness: 80, Damping: 0},
		{Mass: 1, Stiffness: 100, Damping: 20},
	}
	offsets := []float64{-3, 0, 0.25, 1, 7.5, 42, 599}

	for _, spec := range specs {
		for _, offset := range offsets {
			first, err := compose.Spring(offset, 15, spec)
			if err != nil {
				t.Fatalf("Spring(%v) returned error: %v", offset, err)
			}
			for i := 0; i < 10; i++ {
				again, err := compose.Spring(offset, 15, spec)
				if err != nil {
					t.Fatalf("Spring(%v) returned error: %v", offset, err)
				}
				if math.Float64bits(again.Value) != math.Float64bits(first.Value) {
					t.Fatalf("Spring(%v, %+v) not bit-identical: %x vs %x",
						offset, spec, math.Float64bits(again.Value), math.Float64bits(first.Value))
				}
				if again.Settled != first.Settled {
					t.Fatalf("Spring(%v, %+v) settled flag flapped", offset, spec)
				}
			}
		}
	}
}

func TestSpringMonotonicSettling(t *testing.T) {
	specs := map[string]compose.SpringSpec{
		"critically damped": {Mass: 1, Stiffness: 100, Damping: 20},
		"overdamped":        compose.Smooth(),
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			prev := -1.0
			for offset := 0.0; offset <= 300; offset += 0.5 {
				sv, err := compose.Spring(offset, 15, spec)
				if err != nil {
					t.Fatalf("Spring(%v) returned error: %v", offset, err)
				}
				if sv.Value < prev-1e-12 {
					t.Fatalf("value decreased at offset %v: %v -> %v", offset, prev, sv.Value)
				}
				if sv.Value > 1+1e-3 {
					t.Fatalf("value overshot at offset %v: %v", offset, sv.Value)
				}
				prev = sv.Value
			}

			final, err := compose.Spring(300, 15, spec)
			if err != nil {
				t.Fatalf("Spring(300) returned error: %v", err)
			}
			if math.Abs(1-final.Value) > 1e-3 {
				t.Fatalf("did not converge to 1, got %v", final.Value)
			}
			if !final.Settled {
				t.Fatal("expected spring to be settled after 20 seconds")
			}
		})
	}
}

func TestSpringPreStartRest(t *testing.T) {
	for _, offset := range []float64{-0.5, -1, -100} {
		sv, err := compose.Spring(offset, 15, compose.Smooth())
		if err != nil {
			t.Fatalf("Spring(%v) returned error: %v", offset, err)
		}
		if sv.Value != 0 {
			t.Fatalf("Spring(%v) = %v, want rest value 0", offset, sv.Value)
		}
		if sv.Settled {
			t.Fatalf("Spring(%v) reported settled before start", offset)
		}
	}
}

func TestSpringBetweenMapsRange(t *testing.T) {
	sv, err := compose.SpringBetween(-5, 15, compose.Smooth(), 3, 7)
	if err != nil {
		t.Fatalf("SpringBetween returned error: %v", err)
	}
	if sv.Value != 3 {
		t.Fatalf("pre-start value = %v, want from value 3", sv.Value)
	}

	sv, err = compose.SpringBetween(300, 15, compose.Smooth(), 3, 7)
	if err != nil {
		t.Fatalf("SpringBetween returned error: %v", err)
	}
	if math.Abs(sv.Value-7) > 1e-2 {
		t.Fatalf("settled value = %v, want ~7", sv.Value)
	}
	if !sv.Settled {
		t.Fatal("expected settled at offset 300")
	}
}

func TestSpringBetweenTriviallySettled(t *testing.T) {
	sv, err := compose.SpringBetween(-10, 15, compose.Smooth(), 5, 5)
	if err != nil {
		t.Fatalf("SpringBetween returned error: %v", err)
	}
	if sv.Value != 5 || !sv.Settled {
		t.Fatalf("degenerate range should be settled at 5, got %+v", sv)
	}
}

func TestSpringRejectsBadSpec(t *testing.T) {
	bad := []compose.SpringSpec{
		{Mass: 0, Stiffness: 100, Damping: 10},
		{Mass: 1, Stiffness: 0, Damping: 10},
		{Mass: 1, Stiffness: 100, Damping: -1},
	}
	for _, spec := range bad {
		_, err := compose.Spring(1, 15, spec)
		var cfgErr *compose.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("spec %+v: expected ConfigurationError, got %v", spec, err)
		}
	}
}
