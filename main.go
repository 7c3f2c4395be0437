// Command balagan-promo renders the product's promotional assets from
// their in-code composition definitions: still images, video frame sets
// with a mixed audio track, a live MQTT preview and a small HTTP preview
// API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arielshad/balagan-promo/api"
	"github.com/arielshad/balagan-promo/asset"
	"github.com/arielshad/balagan-promo/compose"
	"github.com/arielshad/balagan-promo/logging"
	"github.com/arielshad/balagan-promo/promo"
	"github.com/arielshad/balagan-promo/render"
	"github.com/arielshad/balagan-promo/stream"
)

type app struct {
	cfg Config
	log *slog.Logger
	reg *compose.Registry
}

// setup loads configuration, builds the logger and registers every promo
// composition.
func (a *app) setup(configPath string) error {
	cfg, err := readConfig(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	a.log = log

	a.reg = compose.NewRegistry()
	return promo.Register(a.reg)
}

func (a *app) lookup(name string) (*compose.Composition, error) {
	c, ok := a.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown composition %q (try \"balagan-promo list\")", name)
	}
	return c, nil
}

func (a *app) newRenderer() (*render.Renderer, error) {
	if err := os.MkdirAll(a.cfg.Output.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var loader asset.Loader
	if a.cfg.Assets.Dir != "" {
		dirLoader, err := asset.NewDirLoader(a.cfg.Assets.Dir)
		if err != nil {
			return nil, err
		}
		loader = dirLoader
	}

	return render.New(render.Options{
		OutDir:     a.cfg.Output.Dir,
		Workers:    a.cfg.Output.Workers,
		SampleRate: a.cfg.Output.SampleRate,
		Assets:     loader,
		Logger:     a.log,
	}), nil
}

func newRootCommand() *cobra.Command {
	var configFlag string
	a := new(app)

	rootCmd := &cobra.Command{
		Use:           "balagan-promo",
		Short:         "Render Balagan's promotional assets from code",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configFlag)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML config file")

	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newStillCommand(a))
	rootCmd.AddCommand(newRenderCommand(a))
	rootCmd.AddCommand(newPreviewCommand(a))
	rootCmd.AddCommand(newServeCommand(a))

	return rootCmd
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered compositions",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Name", "Size", "Frames", "FPS", "Kind"})
			for _, name := range a.reg.Names() {
				c, _ := a.reg.Lookup(name)
				kind := "video"
				if c.Still() {
					kind = "still"
				}
				t.AppendRow(table.Row{
					c.Name(),
					fmt.Sprintf("%dx%d", c.Width(), c.Height()),
					c.DurationFrames(),
					c.FPS(),
					kind,
				})
			}
			t.Render()
			return nil
		},
	}
}

func newStillCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "still <name>",
		Short: "Render frame 0 of a composition to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			r, err := a.newRenderer()
			if err != nil {
				return err
			}
			path, err := r.RenderStill(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newRenderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <name>",
		Short: "Render every frame of a composition plus its audio mix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			r, err := a.newRenderer()
			if err != nil {
				return err
			}
			return r.RenderVideo(cmd.Context(), c)
		},
	}
}

func newPreviewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <name>",
		Short: "Stream a composition over MQTT for a preview device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			if a.cfg.Mqtt.URL == "" {
				return fmt.Errorf("mqtt.url is not configured")
			}

			options := mqtt.NewClientOptions().
				AddBroker(a.cfg.Mqtt.URL).
				SetClientID("balagan-promo").
				SetUsername(a.cfg.Mqtt.Username).
				SetPassword(a.cfg.Mqtt.Password).
				SetKeepAlive(30 * time.Second).
				SetPingTimeout(5 * time.Second)
			client := mqtt.NewClient(options)
			if token := client.Connect(); token.Wait() && token.Error() != nil {
				return fmt.Errorf("mqtt connect: %w", token.Error())
			}
			defer client.Disconnect(250)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			s := stream.NewStreamer(client, c, a.cfg.Mqtt.Topic, a.cfg.Mqtt.Width, a.cfg.Mqtt.Height, a.log)
			err = s.Run(ctx)
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}
}

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve composition listings and frames over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.NewApi(a.cfg.API.Bind, a.reg, a.log).Serve()
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
