// Package readiness waits for the backend web server to answer HTTP
// requests before the kiosk browser is shown.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	ptlog "pt-web-ui/internal/log"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"
)

// ErrServerUnreachable is returned when every attempt failed.
var ErrServerUnreachable = errors.New("unable to contact web server")

const (
	DefaultAttempts       = 30
	DefaultInterval       = time.Second
	DefaultAttemptTimeout = time.Second
)

// Waiter polls a URL at a fixed interval until it answers or the attempt
// budget runs out.
type Waiter struct {
	Client         *http.Client
	Attempts       uint
	Interval       time.Duration
	AttemptTimeout time.Duration
	Logger         zerolog.Logger
}

// NewWaiter returns a Waiter with the launcher's defaults: 30 attempts one
// second apart, each limited to one second.
func NewWaiter() *Waiter {
	return &Waiter{
		Client:         &http.Client{},
		Attempts:       DefaultAttempts,
		Interval:       DefaultInterval,
		AttemptTimeout: DefaultAttemptTimeout,
		Logger:         ptlog.WithComponent("readiness"),
	}
}

// Wait blocks until url answers with a non-error status, ctx is done, or
// all attempts have failed. It returns the number of attempts made.
func (w *Waiter) Wait(ctx context.Context, url string) (int, error) {
	attempts := 0
	probe := func() (struct{}, error) {
		attempts++
		w.Logger.Debug().Int("attempt", attempts).Str("url", url).Msg("probing backend web server")
		return struct{}{}, w.probe(ctx, url)
	}
	notify := func(err error, next time.Duration) {
		w.Logger.Info().Err(err).Dur("retry_in", next).
			Msg("backend web server did not respond")
	}

	_, err := backoff.Retry(ctx, probe,
		backoff.WithBackOff(backoff.NewConstantBackOff(w.interval())),
		backoff.WithMaxTries(w.attempts()),
		backoff.WithNotify(notify),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return attempts, ctxErr
		}
		return attempts, fmt.Errorf("%w after %d attempts: %w", ErrServerUnreachable, attempts, err)
	}

	w.Logger.Info().Int("attempts", attempts).Msg("backend web server responded")
	return attempts, nil
}

// probe performs one GET. Like curl --fail, any status >= 400 counts as a
// failure.
func (w *Waiter) probe(ctx context.Context, url string) error {
	if w.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.AttemptTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("building request: %w", err))
	}

	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

func (w *Waiter) attempts() uint {
	if w.Attempts == 0 {
		return DefaultAttempts
	}
	return w.Attempts
}

func (w *Waiter) interval() time.Duration {
	if w.Interval <= 0 {
		return DefaultInterval
	}
	return w.Interval
}
