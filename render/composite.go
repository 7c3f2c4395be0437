// Package render is the renderer boundary: it turns resolved FrameStates
// into pixels and mixed audio. It owns all I/O the compositor core stays
// free of.
package render

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arielshad/balagan-promo/compose"
)

// Composite flattens a FrameState's paints onto a width*height canvas of
// colours, back to front. The canvas starts black; each paint alpha-blends
// its fill over what is already there.
func Composite(fs *compose.FrameState, width, height int) []colorful.Color {
	pixels := make([]colorful.Color, width*height)
	for _, p := range fs.Paints {
		blendRect(pixels, width, height, p)
	}
	return pixels
}

func blendRect(pixels []colorful.Color, width, height int, p compose.Paint) {
	if p.Opacity <= 0 {
		return
	}
	alpha := p.Opacity
	if alpha > 1 {
		alpha = 1
	}

	x0 := clampPixel(int(p.Rect.X*float64(width)), width)
	y0 := clampPixel(int(p.Rect.Y*float64(height)), height)
	x1 := clampPixel(int((p.Rect.X+p.Rect.W)*float64(width)), width)
	y1 := clampPixel(int((p.Rect.Y+p.Rect.H)*float64(height)), height)

	for y := y0; y < y1; y++ {
		row := y * width
		for x := x0; x < x1; x++ {
			dst := pixels[row+x]
			pixels[row+x] = colorful.Color{
				R: p.Color.R*alpha + dst.R*(1-alpha),
				G: p.Color.G*alpha + dst.G*(1-alpha),
				B: p.Color.B*alpha + dst.B*(1-alpha),
			}
		}
	}
}

func clampPixel(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Rasterize composites a FrameState and converts it to an image.
func Rasterize(fs *compose.FrameState, width, height int) *image.RGBA {
	pixels := Composite(fs, width, height)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := pixels[y*width+x].Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
