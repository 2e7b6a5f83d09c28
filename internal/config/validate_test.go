package config

import (
	"strings"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	s := newMemStore(map[string]any{
		KeyLogOutputLevel: 7.0,
		KeyURL:            "http://localhost:80",
		KeyTitle:          "Setup",
		KeyBrowserCommand: []any{"chromium-browser", "--kiosk"},
		KeyScreenWidth:    800.0,
		KeyWindowWidth:    1.0,
		"custom":          map[string]any{"anything": true},
	})

	if err := Validate(s); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Empty(t *testing.T) {
	if err := Validate(newMemStore(nil)); err != nil {
		t.Errorf("Validate(empty) = %v, want nil", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	s := newMemStore(map[string]any{
		KeyLogOutputLevel: "debug",
		KeyURL:            "localhost",
		KeyTitle:          5.0,
		KeyBrowserCommand: []any{"chromium", 1.0},
		KeyScreenHeight:   0.0,
		KeyWindowHeight:   1.5,
	})

	problems := Problems(s)
	want := []string{
		"browserCommand: element 1 must be a string, got 1",
		"logOutputLevel: must be an integer syslog priority 0-7, got \"debug\"",
		"screenHeight: must be a positive integer, got 0",
		"title: must be a string, got 5",
		"url: must be an absolute URL, got \"localhost\"",
		"windowHeight: must be a number in (0, 1], got 1.5",
	}
	if len(problems) != len(want) {
		t.Fatalf("Problems() = %d entries, want %d:\n%s", len(problems), len(want), strings.Join(problems, "\n"))
	}
	for i := range want {
		if problems[i] != want[i] {
			t.Errorf("Problems()[%d] = %q, want %q", i, problems[i], want[i])
		}
	}

	err := Validate(s)
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("Validate() error = %q, want it to mention validation failure", err)
	}
}

func TestValidate_LogLevelRange(t *testing.T) {
	for _, level := range []float64{-1, 8, 6.5} {
		s := newMemStore(map[string]any{KeyLogOutputLevel: level})
		if err := Validate(s); err == nil {
			t.Errorf("Validate(logOutputLevel=%v) = nil, want error", level)
		}
	}
}

func TestValidFraction(t *testing.T) {
	tests := []struct {
		in   float64
		want bool
	}{
		{0, false},
		{-0.5, false},
		{0.01, true},
		{1, true},
		{1.01, false},
	}
	for _, tt := range tests {
		if got := ValidFraction(tt.in); got != tt.want {
			t.Errorf("ValidFraction(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
