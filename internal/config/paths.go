package config

import (
	"os"
	"runtime"
)

// EnvConfigPath overrides the settings file location.
const EnvConfigPath = "PT_WEB_UI_CONFIG"

const (
	// DeviceConfigPath is where the packaged launcher keeps its settings on
	// the device.
	DeviceConfigPath = "/usr/lib/pt-web-ui/pt-web-ui.json"
	// LocalConfigPath is used when running from a development checkout.
	LocalConfigPath = "pt-web-ui.json"
)

// isDevice reports whether we are running on the target hardware.
var isDevice = func() bool {
	return runtime.GOARCH == "arm" || runtime.GOARCH == "arm64"
}

// ResolvePath picks the settings file path.
// Resolution order: explicit path > PT_WEB_UI_CONFIG > platform default.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultPath()
}

// DefaultPath returns the platform default settings file path.
func DefaultPath() string {
	if isDevice() {
		return DeviceConfigPath
	}
	return LocalConfigPath
}
