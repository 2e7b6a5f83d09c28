package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pt-web-ui/internal/config"
	ptlog "pt-web-ui/internal/log"

	"github.com/rs/zerolog"
)

// ErrNoBrowserCommand is returned when the resolved browser command is empty.
var ErrNoBrowserCommand = errors.New("no browser command configured")

// ShutdownSignals end a running launch.
var ShutdownSignals = []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGTSTP}

// NotifyContext returns a context cancelled on any of ShutdownSignals.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, ShutdownSignals...)
}

// Waiter blocks until a URL is reachable.
type Waiter interface {
	Wait(ctx context.Context, url string) (int, error)
}

// Launcher shows the kiosk view once the backend answers.
type Launcher struct {
	Store  config.Store
	Waiter Waiter
	Runner Runner
	Logger zerolog.Logger
}

// New returns a Launcher using the given collaborators.
func New(store config.Store, waiter Waiter, runner Runner) *Launcher {
	return &Launcher{
		Store:  store,
		Waiter: waiter,
		Runner: runner,
		Logger: ptlog.WithComponent("launcher"),
	}
}

// Launch resolves the view, waits for the backend web server and runs the
// browser until it exits. A shutdown through ctx is not an error.
func (l *Launcher) Launch(ctx context.Context, opts Options) (View, error) {
	view := ResolveView(opts, l.Store)
	l.Logger.Info().
		Str("title", view.Title).
		Str("url", view.URL).
		Bool("fullscreen", view.Fullscreen).
		Int("width", view.Width).
		Int("height", view.Height).
		Msg("configuring view")

	l.Logger.Info().Msg("waiting for backend web server response")
	if _, err := l.Waiter.Wait(ctx, view.URL); err != nil {
		if ctx.Err() != nil {
			return view, nil
		}
		return view, err
	}

	argv := BrowserCommand(l.Store, view)
	if len(argv) == 0 || argv[0] == "" {
		return view, ErrNoBrowserCommand
	}

	l.Logger.Info().Strs("command", argv).Msg("starting browser")
	if err := l.Runner.Run(ctx, argv); err != nil {
		if ctx.Err() != nil {
			l.Logger.Info().Msg("shutting down")
			return view, nil
		}
		return view, fmt.Errorf("running browser: %w", err)
	}
	return view, nil
}
