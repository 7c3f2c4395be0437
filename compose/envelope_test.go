package compose_test

import (
	"errors"
	"math"
	"testing"

	"github.com/arielshad/balagan-promo/compose"
)

func TestEnvelopeFadeLaw(t *testing.T) {
	// Soundtrack fade of the launch video: full volume until frame 405,
	// silent from frame 450.
	fade, err := compose.FadeOut(405, 450)
	if err != nil {
		t.Fatalf("FadeOut returned error: %v", err)
	}

	if got := fade.ValueAt(400); got != 1.0 {
		t.Fatalf("ValueAt(400) = %v, want 1.0", got)
	}
	if got := fade.ValueAt(460); got != 0.0 {
		t.Fatalf("ValueAt(460) = %v, want 0.0", got)
	}
	if got := fade.ValueAt(440); math.Abs(got-0.2222) > 1e-3 {
		t.Fatalf("ValueAt(440) = %v, want ~0.222", got)
	}
}

func TestEnvelopeInteriorIsLinear(t *testing.T) {
	e, err := compose.NewEnvelope([]compose.Breakpoint{
		{Time: 0, Value: 0},
		{Time: 10, Value: 1},
		{Time: 20, Value: 0.5},
	})
	if err != nil {
		t.Fatalf("NewEnvelope returned error: %v", err)
	}

	if got := e.ValueAt(5); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("ValueAt(5) = %v, want 0.5", got)
	}
	if got := e.ValueAt(15); math.Abs(got-0.75) > 1e-12 {
		t.Fatalf("ValueAt(15) = %v, want 0.75", got)
	}
}

func TestEnvelopeRejectsBadBreakpoints(t *testing.T) {
	cases := []struct {
		name   string
		points []compose.Breakpoint
	}{
		{"too few", []compose.Breakpoint{{Time: 0, Value: 1}}},
		{"equal times", []compose.Breakpoint{{Time: 5, Value: 1}, {Time: 5, Value: 0}}},
		{"decreasing times", []compose.Breakpoint{{Time: 5, Value: 1}, {Time: 3, Value: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compose.NewEnvelope(tc.points)
			var cfgErr *compose.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
		})
	}
}
