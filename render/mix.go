package render

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/arielshad/balagan-promo/compose"
)

// Mixdown resolves every frame of the composition, gathers its audio
// contributions and sums them into one stream of float64 samples. Each
// AudioClip plays the frame-sized window of its asset selected by
// AssetFrame, scaled by its envelope gain; overlapping clips add, with no
// regard to visual layering. Sample encoding and container muxing stay
// outside this package's scope, so the result is raw samples.
func (r *Renderer) Mixdown(c *compose.Composition) ([]float64, error) {
	samplesPerFrame := int(float64(r.opts.SampleRate) / c.FPS())
	mix := make([]float64, c.DurationFrames()*samplesPerFrame)
	assets := make(map[string][]float64)

	for g := 0; g < c.DurationFrames(); g++ {
		fs, err := c.ResolveFrame(g)
		if err != nil {
			return nil, err
		}
		for _, clip := range fs.Audio {
			samples, err := r.assetSamples(assets, clip.Asset, samplesPerFrame)
			if err != nil {
				return nil, err
			}
			from := clip.AssetFrame * samplesPerFrame
			base := g * samplesPerFrame
			for i := 0; i < samplesPerFrame; i++ {
				if from+i >= len(samples) {
					break
				}
				mix[base+i] += samples[from+i] * clip.Gain
			}
		}
	}
	return mix, nil
}

// assetSamples loads and caches an asset's samples, padded or truncated to
// its declared duration. Assets are raw little-endian float32 PCM.
func (r *Renderer) assetSamples(cache map[string][]float64, name string, samplesPerFrame int) ([]float64, error) {
	if samples, ok := cache[name]; ok {
		return samples, nil
	}

	duration, err := r.opts.Assets.DurationFrames(name)
	if err != nil {
		return nil, err
	}
	rc, err := r.opts.Assets.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read asset %q: %w", name, err)
	}

	// The declared duration wins over the file length; the byte stream is
	// trusted, not validated.
	samples := make([]float64, duration*samplesPerFrame)
	for i := 0; i < len(samples) && (i+1)*4 <= len(raw); i++ {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		samples[i] = float64(math.Float32frombits(bits))
	}
	cache[name] = samples
	return samples, nil
}

func (r *Renderer) mixdownToFile(c *compose.Composition, path string) error {
	mix, err := r.Mixdown(c)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	buf := make([]byte, len(mix)*4)
	for i, s := range mix {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(s)))
	}
	if _, err := f.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
