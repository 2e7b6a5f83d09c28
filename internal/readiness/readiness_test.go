package readiness

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestWaiter(attempts uint) *Waiter {
	return &Waiter{
		Client:         &http.Client{},
		Attempts:       attempts,
		Interval:       time.Millisecond,
		AttemptTimeout: time.Second,
		Logger:         zerolog.Nop(),
	}
}

// flakyServer fails the first n requests with 503, then answers 200.
func flakyServer(t *testing.T, n int32) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= n {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestWait_Immediate(t *testing.T) {
	srv, _ := flakyServer(t, 0)

	attempts, err := newTestWaiter(3).Wait(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestWait_RecoversBeforeLimit(t *testing.T) {
	srv, hits := flakyServer(t, 2)

	attempts, err := newTestWaiter(5).Wait(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("server saw %d requests, want 3", got)
	}
}

func TestWait_Redirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	t.Cleanup(srv.Close)

	if _, err := newTestWaiter(1).Wait(context.Background(), srv.URL); err != nil {
		t.Errorf("Wait with 304 response: %v", err)
	}
}

func TestWait_GivesUp(t *testing.T) {
	srv, hits := flakyServer(t, 100)

	attempts, err := newTestWaiter(4).Wait(context.Background(), srv.URL)
	if !errors.Is(err, ErrServerUnreachable) {
		t.Fatalf("Wait error = %v, want ErrServerUnreachable", err)
	}
	if attempts != 4 {
		t.Errorf("attempts = %d, want 4", attempts)
	}
	if got := hits.Load(); got != 4 {
		t.Errorf("server saw %d requests, want 4", got)
	}
}

func TestWait_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestWaiter(2).Wait(context.Background(), url)
	if !errors.Is(err, ErrServerUnreachable) {
		t.Errorf("Wait error = %v, want ErrServerUnreachable", err)
	}
}

func TestWait_InvalidURL(t *testing.T) {
	attempts, err := newTestWaiter(5).Wait(context.Background(), "://bad")
	if err == nil {
		t.Fatal("Wait with invalid URL should fail")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (invalid URLs are not retried)", attempts)
	}
}

func TestWait_Cancelled(t *testing.T) {
	srv, _ := flakyServer(t, 100)

	w := newTestWaiter(1000)
	w.Interval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := w.Wait(ctx, srv.URL)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait error = %v, want context.DeadlineExceeded", err)
	}
}
