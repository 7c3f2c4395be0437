// Package api serves a small HTTP preview surface: composition listings
// and single rendered frames, for poking at a composition from a browser
// while authoring it.
package api

import (
	"encoding/json"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arielshad/balagan-promo/compose"
	"github.com/arielshad/balagan-promo/render"
)

// Api serves composition previews over HTTP.
type Api struct {
	bind string
	reg  *compose.Registry
	log  *slog.Logger
}

// CompositionInfo is the JSON shape of one registry entry.
type CompositionInfo struct {
	Name           string  `json:"name"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	DurationFrames int     `json:"durationFrames"`
	FPS            float64 `json:"fps"`
	Still          bool    `json:"still"`
}

// NewApi creates an Api over the given registry.
func NewApi(bind string, reg *compose.Registry, log *slog.Logger) *Api {
	a := new(Api)
	a.bind = bind
	a.reg = reg
	a.log = log
	return a
}

// Router builds the HTTP routes.
func (a *Api) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", a.handleHealth)
	r.Get("/compositions", a.handleList)
	r.Get("/compositions/{name}/frames/{frame}", a.handleFrame)
	return r
}

// Serve listens on the configured bind address until the server fails.
func (a *Api) Serve() error {
	a.log.Info("preview api listening", "bind", a.bind)
	return http.ListenAndServe(a.bind, a.Router())
}

func (a *Api) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *Api) handleList(w http.ResponseWriter, r *http.Request) {
	infos := make([]CompositionInfo, 0)
	for _, name := range a.reg.Names() {
		c, _ := a.reg.Lookup(name)
		infos = append(infos, CompositionInfo{
			Name:           c.Name(),
			Width:          c.Width(),
			Height:         c.Height(),
			DurationFrames: c.DurationFrames(),
			FPS:            c.FPS(),
			Still:          c.Still(),
		})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	c, ok := a.reg.Lookup(name)
	if !ok {
		http.Error(w, "unknown composition", http.StatusNotFound)
		return
	}
	frame, err := strconv.Atoi(chi.URLParam(r, "frame"))
	if err != nil || frame < 0 || frame >= c.DurationFrames() {
		http.Error(w, "frame out of range", http.StatusBadRequest)
		return
	}

	fs, err := c.ResolveFrame(frame)
	if err != nil {
		a.log.Error("frame resolution failed", "composition", name, "frame", frame, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, render.Rasterize(fs, c.Width(), c.Height())); err != nil {
		a.log.Error("frame encode failed", "composition", name, "frame", frame, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
