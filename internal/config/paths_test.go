package config

import "testing"

func TestResolvePath_Explicit(t *testing.T) {
	t.Setenv(EnvConfigPath, "/from/env.json")

	if got := ResolvePath("/explicit.json"); got != "/explicit.json" {
		t.Errorf("ResolvePath(explicit) = %q, want %q", got, "/explicit.json")
	}
}

func TestResolvePath_Env(t *testing.T) {
	t.Setenv(EnvConfigPath, "/from/env.json")

	if got := ResolvePath(""); got != "/from/env.json" {
		t.Errorf("ResolvePath(\"\") = %q, want %q", got, "/from/env.json")
	}
}

func TestResolvePath_PlatformDefault(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	orig := isDevice
	t.Cleanup(func() { isDevice = orig })

	isDevice = func() bool { return true }
	if got := ResolvePath(""); got != DeviceConfigPath {
		t.Errorf("on device ResolvePath(\"\") = %q, want %q", got, DeviceConfigPath)
	}

	isDevice = func() bool { return false }
	if got := ResolvePath(""); got != LocalConfigPath {
		t.Errorf("off device ResolvePath(\"\") = %q, want %q", got, LocalConfigPath)
	}
}
