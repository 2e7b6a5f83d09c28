// Package launcher resolves how the kiosk view should be shown and starts
// the browser once the backend web server is reachable.
package launcher

import (
	"math"

	"pt-web-ui/internal/config"
)

// Options are the host's command-line choices. Zero values defer to the
// settings store and then to built-in defaults.
type Options struct {
	URL          string
	Title        string
	Windowed     bool
	WindowWidth  float64 // fraction of the screen width
	WindowHeight float64 // fraction of the screen height
	ScreenWidth  int
	ScreenHeight int
}

// View is the resolved presentation handed to the browser.
type View struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Fullscreen bool   `json:"fullscreen"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// ResolveView combines opts with the settings in store.
// Fullscreen views cover the whole screen; windowed views use the
// requested fraction of it.
func ResolveView(opts Options, store config.Store) View {
	view := View{
		Title:      firstNonEmpty(opts.Title, store.GetString(config.KeyTitle, config.DefaultTitle)),
		URL:        firstNonEmpty(opts.URL, store.GetString(config.KeyURL, config.DefaultURL)),
		Fullscreen: !opts.Windowed,
	}

	screenW := positiveOr(opts.ScreenWidth, store.GetInt(config.KeyScreenWidth, config.DefaultScreenWidth), config.DefaultScreenWidth)
	screenH := positiveOr(opts.ScreenHeight, store.GetInt(config.KeyScreenHeight, config.DefaultScreenHeight), config.DefaultScreenHeight)

	if view.Fullscreen {
		view.Width, view.Height = screenW, screenH
		return view
	}

	fw := fractionOr(opts.WindowWidth, config.GetFloat(store, config.KeyWindowWidth, config.DefaultWindowWidth), config.DefaultWindowWidth)
	fh := fractionOr(opts.WindowHeight, config.GetFloat(store, config.KeyWindowHeight, config.DefaultWindowHeight), config.DefaultWindowHeight)
	view.Width = int(math.Round(fw * float64(screenW)))
	view.Height = int(math.Round(fh * float64(screenH)))
	return view
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func positiveOr(flag, stored, fallback int) int {
	if flag > 0 {
		return flag
	}
	if stored > 0 {
		return stored
	}
	return fallback
}

func fractionOr(flag, stored, fallback float64) float64 {
	if config.ValidFraction(flag) {
		return flag
	}
	if config.ValidFraction(stored) {
		return stored
	}
	return fallback
}
