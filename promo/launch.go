package promo

import (
	"github.com/fogleman/ease"

	"github.com/arielshad/balagan-promo/compose"
	"github.com/arielshad/balagan-promo/util"
)

// Timing of the launch video, in frames at 15 fps.
const (
	launchFPS      = 15
	launchDuration = 600

	titleStart    = 0
	titleDuration = 90

	featuresStart    = 90
	featuresDuration = 210

	chaosStart    = 300
	chaosDuration = 180

	outroStart    = 480
	outroDuration = 120

	soundtrackFrames = 450
	fadeOutStart     = 405
)

// Launch builds the 600-frame product launch video: title card, three
// feature cards, the chaos-injection scene and an outro, over a single
// soundtrack that fades out before the end card.
func Launch() (*compose.Composition, error) {
	fade, err := compose.FadeOut(fadeOutStart, soundtrackFrames)
	if err != nil {
		return nil, err
	}

	defs := []compose.SequenceDef{
		{
			Name:     "backdrop",
			Start:    0,
			Duration: compose.Unbounded,
			Gen:      backdrop,
		},
		{
			Name:     "title",
			Start:    titleStart,
			Duration: titleDuration,
			Gen:      titleCard,
		},
		{
			Name:     "features",
			Start:    featuresStart,
			Duration: featuresDuration,
			Children: []compose.SequenceDef{
				{Name: "card-inject", Start: 0, Duration: compose.Unbounded, Gen: featureCard(0)},
				{Name: "card-observe", Start: 45, Duration: compose.Unbounded, Gen: featureCard(1)},
				{Name: "card-replay", Start: 90, Duration: compose.Unbounded, Gen: featureCard(2)},
			},
		},
		{
			Name:     "chaos",
			Start:    chaosStart,
			Duration: chaosDuration,
			Gen:      chaosWash,
			Children: []compose.SequenceDef{
				// Declared longer than the parent on purpose; the parent
				// window clips it.
				{Name: "glitch-bars", Start: 10, Duration: 500, Gen: glitchBars},
			},
		},
		{
			Name:     "outro",
			Start:    outroStart,
			Duration: outroDuration,
			Gen:      outroCard,
		},
		{
			Name:     "soundtrack",
			Start:    0,
			Duration: soundtrackFrames,
			Gen:      soundtrack(fade),
		},
	}

	return compose.NewComposition("launch", 1280, 720, launchFPS, launchDuration, defs)
}

// backdrop fills the canvas and keeps a faint brand strip breathing along
// the bottom edge.
func backdrop(frame int, fps float64) (compose.Contribution, error) {
	breath := pulseLut[frame%len(pulseLut)]
	return compose.Contribution{
		Paints: []compose.Paint{
			{Rect: compose.Rect{X: 0, Y: 0, W: 1, H: 1}, Color: inkColour, Opacity: 1},
			{Rect: compose.Rect{X: 0, Y: 0.97, W: 1, H: 0.03}, Color: brandColour, Opacity: 0.15 + 0.1*breath},
		},
	}, nil
}

var pulseLut = util.GenerateLut(60)

// titleCard springs the title slab down from above the canvas. A cursor
// block blinks beside it while the spring is still moving and disappears
// once it settles.
func titleCard(frame int, fps float64) (compose.Contribution, error) {
	sv, err := compose.SpringBetween(float64(frame), fps, compose.Smooth(), -0.35, 0.22)
	if err != nil {
		return compose.Contribution{}, err
	}

	paints := []compose.Paint{
		{Rect: compose.Rect{X: 0.2, Y: sv.Value, W: 0.6, H: 0.16}, Color: panelColour, Opacity: 1},
		{Rect: compose.Rect{X: 0.2, Y: sv.Value, W: 0.6, H: 0.02}, Color: brandColour, Opacity: 1},
		{Rect: compose.Rect{X: 0.24, Y: sv.Value + 0.06, W: 0.38, H: 0.05}, Color: textColour, Opacity: 0.95},
	}
	if !sv.Settled && (frame/8)%2 == 0 {
		paints = append(paints, compose.Paint{
			Rect:    compose.Rect{X: 0.64, Y: sv.Value + 0.06, W: 0.015, H: 0.05},
			Color:   accentColour,
			Opacity: 1,
		})
	}

	return compose.Contribution{Paints: paints}, nil
}

// featureCard returns the generator for the slot-th feature card, which
// slides in from the right on a spring and brightens as it lands.
func featureCard(slot int) compose.Generator {
	targetX := 0.08 + float64(slot)*0.3
	return func(frame int, fps float64) (compose.Contribution, error) {
		sv, err := compose.SpringBetween(float64(frame), fps, compose.Bouncy(), 1.1, targetX)
		if err != nil {
			return compose.Contribution{}, err
		}
		settleGlow := ease.OutCubic(clamp01(float64(frame) / 30))

		return compose.Contribution{
			Paints: []compose.Paint{
				{Rect: compose.Rect{X: sv.Value, Y: 0.3, W: 0.26, H: 0.42}, Color: panelColour, Opacity: 1},
				{Rect: compose.Rect{X: sv.Value, Y: 0.3, W: 0.26, H: 0.03}, Color: accentColour, Opacity: 0.4 + 0.6*settleGlow},
				{Rect: compose.Rect{X: sv.Value + 0.03, Y: 0.4, W: 0.2, H: 0.025}, Color: textColour, Opacity: 0.9},
				{Rect: compose.Rect{X: sv.Value + 0.03, Y: 0.45, W: 0.16, H: 0.02}, Color: mutedColour, Opacity: 0.8},
				{Rect: compose.Rect{X: sv.Value + 0.03, Y: 0.49, W: 0.18, H: 0.02}, Color: mutedColour, Opacity: 0.8},
			},
		}, nil
	}
}

// chaosWash sweeps the chaos gradient across a banner while the scene is
// active.
func chaosWash(frame int, fps float64) (compose.Contribution, error) {
	t := float64(frame) / float64(chaosDuration-1)
	wash := chaosGradient.GetColor(t, 0.6, 0.35)

	return compose.Contribution{
		Paints: []compose.Paint{
			{Rect: compose.Rect{X: 0, Y: 0.1, W: 1, H: 0.12}, Color: wash, Opacity: 0.85},
			{Rect: compose.Rect{X: 0.08, Y: 0.13, W: 0.3, H: 0.05}, Color: textColour, Opacity: 0.95},
		},
	}, nil
}

// glitchBars draws tool-failure bars that jitter deterministically: every
// attribute derives from the frame index alone, so scrubbing backwards
// replays the same glitches.
func glitchBars(frame int, fps float64) (compose.Contribution, error) {
	const bars = 6
	paints := make([]compose.Paint, 0, bars)
	for i := 0; i < bars; i++ {
		seed := int64(frame/3)*31 + int64(i)
		x := 0.1 + 0.8*util.Hash01(seed)
		w := 0.04 + 0.1*util.Hash01(seed+7)
		on := util.Hash01(seed+13) > 0.35

		colour := alertColour
		if util.Hash01(seed+19) > 0.7 {
			colour = accentColour
		}
		opacity := 0.0
		if on {
			opacity = 0.35 + 0.55*util.Hash01(seed+23)
		}
		paints = append(paints, compose.Paint{
			Rect:    compose.Rect{X: x, Y: 0.35 + float64(i)*0.08, W: w, H: 0.05},
			Color:   colour,
			Opacity: opacity,
		})
	}
	return compose.Contribution{Paints: paints}, nil
}

// outroCard fades the logo block in and keeps an underline pulsing under
// it for the remainder of the video.
func outroCard(frame int, fps float64) (compose.Contribution, error) {
	fadeIn := ease.OutExpo(clamp01(float64(frame) / 30))
	pulse := pulseLut[frame%len(pulseLut)]

	return compose.Contribution{
		Paints: []compose.Paint{
			{Rect: compose.Rect{X: 0, Y: 0, W: 1, H: 1}, Color: inkColour, Opacity: 0.9 * fadeIn},
			{Rect: compose.Rect{X: 0.36, Y: 0.4, W: 0.28, H: 0.1}, Color: brandColour, Opacity: fadeIn},
			{Rect: compose.Rect{X: 0.4, Y: 0.43, W: 0.2, H: 0.04}, Color: textColour, Opacity: fadeIn},
			{Rect: compose.Rect{X: 0.42, Y: 0.54, W: 0.16, H: 0.008}, Color: accentColour, Opacity: fadeIn * (0.4 + 0.6*pulse)},
		},
	}, nil
}

// soundtrack plays the launch audio bed, fading out over the last three
// seconds of the clip.
func soundtrack(fade *compose.Envelope) compose.Generator {
	return func(frame int, fps float64) (compose.Contribution, error) {
		return compose.Contribution{
			Audio: []compose.AudioClip{
				{Asset: "soundtrack", AssetFrame: frame, Gain: fade.ValueAt(float64(frame))},
			},
		}, nil
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
