// Package asset resolves named static assets for the renderer: a byte
// stream plus a declared duration. The compositor trusts the declared
// durations for envelope math and never inspects file contents.
package asset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Loader is the boundary the renderer consumes assets through.
type Loader interface {
	// Open returns the asset's raw byte stream.
	Open(name string) (io.ReadCloser, error)
	// DurationFrames returns the asset's declared duration.
	DurationFrames(name string) (int, error)
}

type manifestEntry struct {
	File           string `yaml:"file"`
	DurationFrames int    `yaml:"durationFrames"`
}

type manifest struct {
	Assets map[string]manifestEntry `yaml:"assets"`
}

// DirLoader serves assets from a directory containing a manifest.yaml that
// declares each asset's file and duration.
type DirLoader struct {
	dir      string
	manifest manifest
}

// NewDirLoader reads dir/manifest.yaml and returns a loader over dir.
func NewDirLoader(dir string) (*DirLoader, error) {
	f, err := os.Open(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, fmt.Errorf("open asset manifest: %w", err)
	}
	defer f.Close()

	l := &DirLoader{dir: dir}
	if err := yaml.NewDecoder(f).Decode(&l.manifest); err != nil {
		return nil, fmt.Errorf("decode asset manifest: %w", err)
	}
	for name, entry := range l.manifest.Assets {
		if entry.File == "" {
			return nil, fmt.Errorf("asset %q declares no file", name)
		}
		if entry.DurationFrames <= 0 {
			return nil, fmt.Errorf("asset %q declares non-positive duration %d", name, entry.DurationFrames)
		}
	}
	return l, nil
}

func (l *DirLoader) Open(name string) (io.ReadCloser, error) {
	entry, ok := l.manifest.Assets[name]
	if !ok {
		return nil, fmt.Errorf("unknown asset %q", name)
	}
	f, err := os.Open(filepath.Join(l.dir, entry.File))
	if err != nil {
		return nil, fmt.Errorf("open asset %q: %w", name, err)
	}
	return f, nil
}

func (l *DirLoader) DurationFrames(name string) (int, error) {
	entry, ok := l.manifest.Assets[name]
	if !ok {
		return 0, fmt.Errorf("unknown asset %q", name)
	}
	return entry.DurationFrames, nil
}
