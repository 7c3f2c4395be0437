package promo

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Brand palette. Hex parsing cannot fail for these literals.
var (
	inkColour    = mustHex("#0d1117")
	panelColour  = mustHex("#161b27")
	brandColour  = mustHex("#7c5cff")
	accentColour = mustHex("#2dd4bf")
	alertColour  = mustHex("#f25555")
	textColour   = mustHex("#e6e9f0")
	mutedColour  = mustHex("#8a93a6")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
