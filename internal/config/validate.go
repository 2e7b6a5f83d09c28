package config

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// validators maps well-known properties to a check of their stored value.
// Each returns a description of the problem, or "" if the value is valid.
var validators = map[string]func(any) string{
	KeyLogOutputLevel: func(v any) string {
		n, ok := Int(v)
		if !ok || n < 0 || n > 7 {
			return fmt.Sprintf("must be an integer syslog priority 0-7, got %s", describe(v))
		}
		return ""
	},
	KeyURL: func(v any) string {
		s, ok := v.(string)
		if !ok {
			return fmt.Sprintf("must be a string, got %s", describe(v))
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Sprintf("must be an absolute URL, got %q", s)
		}
		return ""
	},
	KeyTitle: func(v any) string {
		if _, ok := v.(string); !ok {
			return fmt.Sprintf("must be a string, got %s", describe(v))
		}
		return ""
	},
	KeyBrowserCommand: func(v any) string {
		switch items := v.(type) {
		case []string:
			return ""
		case []any:
			for i, item := range items {
				if _, ok := item.(string); !ok {
					return fmt.Sprintf("element %d must be a string, got %s", i, describe(item))
				}
			}
			return ""
		}
		return fmt.Sprintf("must be an array of strings, got %s", describe(v))
	},
	KeyScreenWidth:  positiveInt,
	KeyScreenHeight: positiveInt,
	KeyWindowWidth:  fraction,
	KeyWindowHeight: fraction,
}

func positiveInt(v any) string {
	n, ok := Int(v)
	if !ok || n < 1 {
		return fmt.Sprintf("must be a positive integer, got %s", describe(v))
	}
	return ""
}

func fraction(v any) string {
	f, ok := Float(v)
	if !ok || !ValidFraction(f) {
		return fmt.Sprintf("must be a number in (0, 1], got %s", describe(v))
	}
	return ""
}

// ValidFraction reports whether f is usable as a share of the screen.
func ValidFraction(f float64) bool {
	return f > 0 && f <= 1
}

// Validate checks every well-known property present in s. It returns an
// error describing every invalid value found, or nil if all are valid.
// Unknown properties are always accepted.
func Validate(s Store) error {
	problems := Problems(s)
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

// Problems returns one "key: message" line per invalid well-known property,
// sorted by key.
func Problems(s Store) []string {
	var problems []string
	for key, check := range validators {
		v, ok := s.GetValue(key)
		if !ok {
			continue
		}
		if msg := check(v); msg != "" {
			problems = append(problems, key+": "+msg)
		}
	}
	sort.Strings(problems)
	return problems
}

func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", t)
	case bool:
		return fmt.Sprintf("%t", t)
	case []any, []string:
		return "array"
	}
	if f, ok := Float(v); ok {
		return fmt.Sprintf("%v", f)
	}
	return "object"
}
