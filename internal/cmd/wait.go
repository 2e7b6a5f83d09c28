package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"pt-web-ui/internal/config"
	"pt-web-ui/internal/launcher"
	"pt-web-ui/internal/readiness"

	"github.com/spf13/cobra"
)

// newWaiter returns the HTTP readiness waiter. Zero arguments keep the
// defaults.
func newWaiter(attempts uint, interval time.Duration) launcher.Waiter {
	w := readiness.NewWaiter()
	if attempts > 0 {
		w.Attempts = attempts
	}
	if interval > 0 {
		w.Interval = interval
	}
	return w
}

// newWaitCmd creates the "wait" command.
func newWaitCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait for the backend web server to respond",
		Long: `Poll the backend web server until it answers with a non-error status.

The URL comes from --url, PT_WEB_UI_URL or the "url" setting, in that
order. --attempts and --interval may also be set through PT_WEB_UI_ATTEMPTS
and PT_WEB_UI_INTERVAL. Exits non-zero if the server never responds.

Examples:
  pt-web-ui wait
  pt-web-ui wait --attempts 5 --interval 500ms
  pt-web-ui wait --url http://localhost:8020`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			v, err := newOptionsViper(cmd.Flags())
			if err != nil {
				return err
			}
			url := v.GetString("url")
			if url == "" {
				url = app.ConfigStore.GetString(config.KeyURL, config.DefaultURL)
			}

			waiter := app.Waiter
			if waiter == nil {
				waiter = newWaiter(v.GetUint("attempts"), v.GetDuration("interval"))
			}

			ctx, stop := launcher.NotifyContext(cmd.Context())
			defer stop()

			n, err := waiter.Wait(ctx, url)
			if err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"url":      url,
					"attempts": n,
				})
			}
			fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("Ready:"), url)
			return nil
		},
	}

	cmd.Flags().Uint("attempts", readiness.DefaultAttempts, "Number of attempts before giving up")
	cmd.Flags().Duration("interval", readiness.DefaultInterval, "Delay between attempts")
	cmd.Flags().String("url", "", "URL of the backend web server")

	return cmd
}
