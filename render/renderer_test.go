package render_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arielshad/balagan-promo/compose"
	"github.com/arielshad/balagan-promo/render"
)

func testComposition(t *testing.T, frames int) *compose.Composition {
	t.Helper()
	gen := func(frame int, fps float64) (compose.Contribution, error) {
		sv, err := compose.SpringBetween(float64(frame), fps, compose.Smooth(), 0, 0.6)
		if err != nil {
			return compose.Contribution{}, err
		}
		return compose.Contribution{
			Paints: []compose.Paint{
				{Rect: compose.Rect{X: 0, Y: 0, W: 1, H: 1}, Color: colorful.Color{R: 0.1, G: 0.1, B: 0.1}, Opacity: 1},
				{Rect: compose.Rect{X: sv.Value, Y: 0.2, W: 0.3, H: 0.3}, Color: colorful.Color{G: 0.8}, Opacity: 0.9},
			},
		}, nil
	}
	c, err := compose.NewComposition("clip", 64, 36, 15, frames, []compose.SequenceDef{
		{Name: "motion", Start: 0, Duration: compose.Unbounded, Gen: gen},
	})
	if err != nil {
		t.Fatalf("NewComposition returned error: %v", err)
	}
	return c
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRenderStillWritesPNG(t *testing.T) {
	dir := t.TempDir()
	r := render.New(render.Options{OutDir: dir, Logger: quietLogger()})

	path, err := r.RenderStill(testComposition(t, 10))
	if err != nil {
		t.Fatalf("RenderStill returned error: %v", err)
	}
	if path != filepath.Join(dir, "clip.png") {
		t.Fatalf("unexpected output path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading still: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}

func TestRenderVideoParallelismDoesNotChangeOutput(t *testing.T) {
	const frames = 12
	comp := testComposition(t, frames)

	renderAll := func(workers int) map[string][]byte {
		dir := t.TempDir()
		r := render.New(render.Options{OutDir: dir, Workers: workers, Logger: quietLogger()})
		if err := r.RenderVideo(context.Background(), comp); err != nil {
			t.Fatalf("RenderVideo(workers=%d) returned error: %v", workers, err)
		}
		out := make(map[string][]byte)
		for g := 0; g < frames; g++ {
			name := fmt.Sprintf("frame_%05d.png", g)
			data, err := os.ReadFile(filepath.Join(dir, "clip", name))
			if err != nil {
				t.Fatalf("missing frame %s: %v", name, err)
			}
			out[name] = data
		}
		return out
	}

	serial := renderAll(1)
	parallel := renderAll(4)
	for name, data := range serial {
		if !bytes.Equal(data, parallel[name]) {
			t.Fatalf("frame %s differs between serial and parallel render", name)
		}
	}
}

func TestRenderVideoAbortsOnResolutionFailure(t *testing.T) {
	gen := func(frame int, fps float64) (compose.Contribution, error) {
		if frame == 7 {
			return compose.Contribution{}, fmt.Errorf("bad frame")
		}
		return compose.Contribution{}, nil
	}
	comp, err := compose.NewComposition("broken", 16, 16, 15, 20, []compose.SequenceDef{
		{Name: "gen", Start: 0, Duration: compose.Unbounded, Gen: gen},
	})
	if err != nil {
		t.Fatalf("NewComposition returned error: %v", err)
	}

	r := render.New(render.Options{OutDir: t.TempDir(), Workers: 2, Logger: quietLogger()})
	err = r.RenderVideo(context.Background(), comp)
	var resErr *compose.ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
}
