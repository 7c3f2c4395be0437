// Package stream publishes rendered composition frames over MQTT so a
// preview device can play them back in real time while the promo is being
// authored.
package stream

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/arielshad/balagan-promo/compose"
)

// Streamer renders a composition frame by frame at its native rate and
// streams the frames as binary over MQTT.
type Streamer struct {
	client mqtt.Client
	comp   *compose.Composition
	topic  string
	width  int
	height int
	log    *slog.Logger
}

// NewStreamer creates a Streamer publishing comp on topic at the preview
// device's resolution.
func NewStreamer(client mqtt.Client, comp *compose.Composition, topic string, width, height int, log *slog.Logger) *Streamer {
	s := new(Streamer)
	s.client = client
	s.comp = comp
	s.topic = topic
	s.width = width
	s.height = height
	s.log = log

	return s
}

// SendFrame resolves global frame g, composites it at the preview
// resolution and publishes it as binary over MQTT.
func (s *Streamer) SendFrame(g int) error {
	fs, err := s.comp.ResolveFrame(g)
	if err != nil {
		return err
	}
	f := FromState(fs, s.width, s.height)
	b, err := f.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal frame %d: %w", g, err)
	}
	token := s.client.Publish(s.topic, 2, false, b)
	token.Wait()
	return token.Error()
}

// Run streams the composition in a loop at its declared frame rate until
// the context is cancelled or a frame fails to resolve.
func (s *Streamer) Run(ctx context.Context) error {
	interval := time.Duration(float64(time.Second) / s.comp.FPS())
	s.log.Info("preview streaming",
		"composition", s.comp.Name(), "topic", s.topic, "interval", interval)

	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()

	g := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
			if err := s.SendFrame(g); err != nil {
				return err
			}
			g = (g + 1) % s.comp.DurationFrames()
		}
	}
}
