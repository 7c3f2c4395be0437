/*
Package promo defines the product's marketing compositions in code, so
every rendered asset is reproducible from a git revision: the launch video
and the social share card.
*/
package promo

import (
	"github.com/arielshad/balagan-promo/compose"
)

// Register builds every promo composition and adds it to the registry.
func Register(reg *compose.Registry) error {
	launch, err := Launch()
	if err != nil {
		return err
	}
	if err := reg.Register(launch); err != nil {
		return err
	}

	card, err := SocialCard()
	if err != nil {
		return err
	}
	return reg.Register(card)
}
