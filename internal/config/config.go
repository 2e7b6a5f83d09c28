// Package config defines the launcher's settings store, its well-known
// properties and their defaults.
package config

import (
	ptlog "pt-web-ui/internal/log"
)

// Well-known property names.
const (
	KeyLogOutputLevel = "logOutputLevel"
	KeyURL            = "url"
	KeyTitle          = "title"
	KeyBrowserCommand = "browserCommand"
	KeyScreenWidth    = "screenWidth"
	KeyScreenHeight   = "screenHeight"
	KeyWindowWidth    = "windowWidth"
	KeyWindowHeight   = "windowHeight"
)

const (
	DefaultURL          = "http://localhost:80"
	DefaultTitle        = "pi-topOS First Time Setup"
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080
	DefaultWindowWidth  = 0.65
	DefaultWindowHeight = 0.55
)

// DefaultLogOutputLevel is the syslog priority used when the settings file
// does not name one.
var DefaultLogOutputLevel = ptlog.SyslogInfo

// DefaultValues returns the built-in value of every well-known property,
// keyed by property name.
func DefaultValues() map[string]any {
	return map[string]any{
		KeyLogOutputLevel: DefaultLogOutputLevel,
		KeyURL:            DefaultURL,
		KeyTitle:          DefaultTitle,
		KeyBrowserCommand: []string{},
		KeyScreenWidth:    DefaultScreenWidth,
		KeyScreenHeight:   DefaultScreenHeight,
		KeyWindowWidth:    DefaultWindowWidth,
		KeyWindowHeight:   DefaultWindowHeight,
	}
}

// GetFloat returns the numeric value of property, or defaultValue when the
// property is absent or not a number.
func GetFloat(s Store, property string, defaultValue float64) float64 {
	v, ok := s.GetValue(property)
	if !ok {
		return defaultValue
	}
	if f, ok := Float(v); ok {
		return f
	}
	return defaultValue
}
