package compose

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Rect is a rectangle in normalized composition coordinates: (0,0) is the
// top-left corner of the canvas and (1,1) the bottom-right.
type Rect struct {
	X, Y, W, H float64
}

// Paint is a single renderer-rasterizable primitive: a filled rectangle
// with an opacity. Paints later in a frame's list draw over earlier ones.
type Paint struct {
	Rect    Rect
	Color   colorful.Color
	Opacity float64
}

// AudioClip contributes one frame's worth of a named audio asset.
// AssetFrame selects which frame-sized window of the asset's samples to
// play; Gain scales them before the additive mix.
type AudioClip struct {
	Asset      string
	AssetFrame int
	Gain       float64
}

// Contribution is what a content generator emits for one local frame.
type Contribution struct {
	Paints []Paint
	Audio  []AudioClip
}

// Generator produces a Sequence's contribution for a local frame. A
// generator must be a pure function of its arguments: no process clocks,
// no mutable state between calls. That purity is what makes frame-parallel
// and out-of-order rendering correct.
type Generator func(frame int, fps float64) (Contribution, error)
