package promo

import (
	"github.com/arielshad/balagan-promo/compose"
)

// SocialCard builds the static share image: a single-frame composition at
// the usual link-preview size.
func SocialCard() (*compose.Composition, error) {
	defs := []compose.SequenceDef{
		{
			Name:     "card",
			Start:    0,
			Duration: 1,
			Gen:      socialCardFace,
		},
	}
	return compose.NewComposition("social-card", 1200, 630, 1, 1, defs)
}

func socialCardFace(frame int, fps float64) (compose.Contribution, error) {
	return compose.Contribution{
		Paints: []compose.Paint{
			{Rect: compose.Rect{X: 0, Y: 0, W: 1, H: 1}, Color: inkColour, Opacity: 1},
			{Rect: compose.Rect{X: 0, Y: 0, W: 1, H: 0.035}, Color: brandColour, Opacity: 1},
			{Rect: compose.Rect{X: 0.08, Y: 0.3, W: 0.52, H: 0.09}, Color: textColour, Opacity: 0.95},
			{Rect: compose.Rect{X: 0.08, Y: 0.45, W: 0.4, H: 0.045}, Color: mutedColour, Opacity: 0.85},
			{Rect: compose.Rect{X: 0.08, Y: 0.53, W: 0.34, H: 0.045}, Color: mutedColour, Opacity: 0.85},
			{Rect: compose.Rect{X: 0.7, Y: 0.28, W: 0.22, H: 0.36}, Color: panelColour, Opacity: 1},
			{Rect: compose.Rect{X: 0.7, Y: 0.28, W: 0.22, H: 0.025}, Color: accentColour, Opacity: 1},
		},
	}, nil
}
