package cmd

import (
	"fmt"
	"strings"

	"pt-web-ui/internal/launcher"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override launch flags,
// e.g. PT_WEB_UI_WINDOW_WIDTH for --window-width.
const EnvPrefix = "PT_WEB_UI"

// addViewFlags registers the flags that shape the kiosk view. Zero values
// defer to the settings file.
func addViewFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("windowed", false, "Show the view in a window instead of fullscreen")
	f.Float64("window-width", 0, "Window width as a fraction of the screen width (0 < f <= 1)")
	f.Float64("window-height", 0, "Window height as a fraction of the screen height (0 < f <= 1)")
	f.Int("screen-width", 0, "Screen width in pixels")
	f.Int("screen-height", 0, "Screen height in pixels")
	f.String("url", "", "URL of the backend web server")
	f.String("title", "", "Window title")
}

// newOptionsViper binds flags and PT_WEB_UI_* environment variables so that
// a flag set on the command line wins over the environment.
func newOptionsViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return v, nil
}

// launchOptions reads the view flags, falling back to the environment.
// Settings-file values and defaults are applied later by the launcher.
func launchOptions(flags *pflag.FlagSet) (launcher.Options, error) {
	v, err := newOptionsViper(flags)
	if err != nil {
		return launcher.Options{}, err
	}
	return launcher.Options{
		URL:          v.GetString("url"),
		Title:        v.GetString("title"),
		Windowed:     v.GetBool("windowed"),
		WindowWidth:  v.GetFloat64("window-width"),
		WindowHeight: v.GetFloat64("window-height"),
		ScreenWidth:  v.GetInt("screen-width"),
		ScreenHeight: v.GetInt("screen-height"),
	}, nil
}
