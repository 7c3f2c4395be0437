package render

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/arielshad/balagan-promo/asset"
	"github.com/arielshad/balagan-promo/compose"
)

// Options configures a Renderer.
type Options struct {
	// OutDir receives rendered PNG frames and audio mixdowns.
	OutDir string
	// Workers is the number of concurrent frame workers; defaults to
	// GOMAXPROCS. Frame resolution is pure, so any degree of parallelism
	// yields identical output.
	Workers int
	// SampleRate for audio mixdowns; defaults to 44100.
	SampleRate int
	// Assets supplies audio sample data. Nil disables the mixdown.
	Assets asset.Loader
	Logger *slog.Logger
}

// Renderer exports registered compositions to still images or frame
// directories plus a mixed audio track.
type Renderer struct {
	opts Options
	log  *slog.Logger
}

// New creates a Renderer, applying option defaults.
func New(opts Options) *Renderer {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 44100
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{opts: opts, log: log}
}

// RenderStill resolves frame 0 of the composition and writes it as a
// single PNG. Returns the written path.
func (r *Renderer) RenderStill(c *compose.Composition) (string, error) {
	fs, err := c.ResolveFrame(0)
	if err != nil {
		return "", err
	}
	path := filepath.Join(r.opts.OutDir, c.Name()+".png")
	if err := writePNG(path, fs, c.Width(), c.Height()); err != nil {
		return "", err
	}
	r.log.Info("still rendered", "composition", c.Name(), "path", path)
	return path, nil
}

// RenderVideo resolves and rasterizes every frame in [0, DurationFrames)
// into OutDir/<name>/frame_%05d.png, then writes the audio mixdown when an
// asset loader is configured. Frames render concurrently; the first
// resolution error aborts the whole export and the partial output must be
// treated as invalid.
func (r *Renderer) RenderVideo(ctx context.Context, c *compose.Composition) error {
	jobID := uuid.NewString()
	frameDir := filepath.Join(r.opts.OutDir, c.Name())
	if err := os.MkdirAll(frameDir, 0o755); err != nil {
		return fmt.Errorf("create frame directory: %w", err)
	}
	r.log.Info("render started",
		"job", jobID, "composition", c.Name(),
		"frames", c.DurationFrames(), "fps", c.FPS(), "workers", r.opts.Workers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := make(chan int)
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error

	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range frames {
				if err := r.renderFrame(c, frameDir, g); err != nil {
					fail(err)
					return
				}
			}
		}()
	}

feed:
	for g := 0; g < c.DurationFrames(); g++ {
		select {
		case frames <- g:
		case <-ctx.Done():
			break feed
		}
	}
	close(frames)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.opts.Assets != nil {
		audioPath := filepath.Join(frameDir, c.Name()+".pcm")
		if err := r.mixdownToFile(c, audioPath); err != nil {
			return err
		}
		r.log.Info("audio mixed", "job", jobID, "path", audioPath)
	}

	r.log.Info("render finished", "job", jobID, "composition", c.Name())
	return nil
}

func (r *Renderer) renderFrame(c *compose.Composition, frameDir string, g int) error {
	fs, err := c.ResolveFrame(g)
	if err != nil {
		return err
	}
	path := filepath.Join(frameDir, fmt.Sprintf("frame_%05d.png", g))
	return writePNG(path, fs, c.Width(), c.Height())
}

func writePNG(path string, fs *compose.FrameState, width, height int) error {
	img := Rasterize(fs, width, height)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
