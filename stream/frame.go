package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arielshad/balagan-promo/compose"
	"github.com/arielshad/balagan-promo/render"
)

// Frame represents a raster of RGB pixels sized for a preview device.
type Frame struct {
	width  int
	height int
	pixels []colorful.Color
}

// FromState composites a resolved FrameState at the preview resolution.
func FromState(fs *compose.FrameState, width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pixels: render.Composite(fs, width, height),
	}
}

// MarshalBinary converts a Frame into the wire format the preview device
// expects: little-endian uint16 width and height, then packed RGB bytes in
// row-major order.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 4, (len(f.pixels)*3)+4)
	binary.LittleEndian.PutUint16(data, uint16(f.width))
	binary.LittleEndian.PutUint16(data[2:], uint16(f.height))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
