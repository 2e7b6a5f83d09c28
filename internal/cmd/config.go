package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"pt-web-ui/internal/config"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command with subcommands.
func newConfigCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage pt-web-ui settings.

Settings are stored as a flat JSON object. Well-known keys (logOutputLevel,
url, title, browserCommand, screenWidth, screenHeight, windowWidth,
windowHeight) are validated; any other key is kept as-is.

Subcommands:
  get       Get a configuration value
  set       Set a configuration value
  list      List all configuration values
  unset     Remove a configuration value
  validate  Validate configuration
  path      Print the settings file path`,
	}

	cmd.AddCommand(newConfigGetCmd(provider))
	cmd.AddCommand(newConfigSetCmd(provider))
	cmd.AddCommand(newConfigListCmd(provider))
	cmd.AddCommand(newConfigUnsetCmd(provider))
	cmd.AddCommand(newConfigValidateCmd(provider))
	cmd.AddCommand(newConfigPathCmd(provider))

	return cmd
}

// newConfigGetCmd creates the "config get" subcommand.
func newConfigGetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get the value of a configuration key.

Prints strings bare and any other value as JSON, or "key (not set)" if
missing. Well-known keys that are not set also show their default.

Examples:
  pt-web-ui config get url
  pt-web-ui config get browserCommand`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			value, ok := app.ConfigStore.GetValue(key)

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"key":   key,
					"value": value,
					"set":   ok,
				})
			}

			if ok {
				fmt.Fprintln(app.Out, formatValue(value))
				return nil
			}
			if def, known := config.DefaultValues()[key]; known {
				fmt.Fprintf(app.Out, "%s (not set, default: %s)\n", key, formatValue(def))
				return nil
			}
			fmt.Fprintf(app.Out, "%s (not set)\n", key)
			return nil
		},
	}

	return cmd
}

// newConfigSetCmd creates the "config set" subcommand.
func newConfigSetCmd(provider *AppProvider) *cobra.Command {
	var asString bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration key to a value.

The value is parsed as JSON when it is valid JSON, so numbers, booleans,
null, arrays and objects keep their type. Anything else is stored as a
string. Use --string to store the argument verbatim.

Examples:
  pt-web-ui config set logOutputLevel 7
  pt-web-ui config set url http://localhost:8020
  pt-web-ui config set browserCommand '["chromium", "--kiosk", "{url}"]'
  pt-web-ui config set title 2024 --string`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			value := parseValue(args[1], asString)

			if err := app.ConfigStore.SetValue(key, value); err != nil {
				return fmt.Errorf("setting config: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"key":   key,
					"value": value,
				})
			}

			fmt.Fprintf(app.Out, "%s %s = %s\n", app.SuccessColor("Set"), key, formatValue(value))
			for _, p := range keyProblems(app.ConfigStore, key) {
				fmt.Fprintf(app.Out, "%s %s\n", app.WarnColor("Warning:"), p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asString, "string", false, "Store the value as a string without parsing it as JSON")

	return cmd
}

// newConfigListCmd creates the "config list" subcommand.
func newConfigListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long: `List all configuration key-value pairs.

Stored entries are listed in file order, followed by the defaults of
well-known keys that are not set.

Examples:
  pt-web-ui config list
  pt-web-ui config list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			store := app.ConfigStore
			all := orderedmap.New()
			all.SetEscapeHTML(false)
			for _, k := range store.Keys() {
				v, _ := store.GetValue(k)
				all.Set(k, v)
			}
			stored := len(all.Keys())

			defaults := config.DefaultValues()
			for _, k := range sortedKeys(defaults) {
				if _, exists := all.Get(k); !exists {
					all.Set(k, defaults[k])
				}
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(all)
			}

			fmt.Fprintf(app.Out, "Configuration (%s):\n", store.Path())
			for i, k := range all.Keys() {
				v, _ := all.Get(k)
				suffix := ""
				if i >= stored {
					suffix = " (default)"
				}
				fmt.Fprintf(app.Out, "  %s = %s%s\n", k, formatValue(v), suffix)
			}
			return nil
		},
	}

	return cmd
}

// newConfigUnsetCmd creates the "config unset" subcommand.
func newConfigUnsetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Long: `Remove a configuration key.

Removing a key that is not set does nothing.

Examples:
  pt-web-ui config unset browserCommand`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]

			if err := app.ConfigStore.RemoveValue(key); err != nil {
				return fmt.Errorf("unsetting config: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"key": key,
				})
			}

			fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("Unset"), key)
			return nil
		},
	}

	return cmd
}

// newConfigValidateCmd creates the "config validate" subcommand.
func newConfigValidateCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Long: `Validate the current configuration.

Checks that well-known keys have values of the right type and range.
Unknown keys are always accepted.

Examples:
  pt-web-ui config validate
  pt-web-ui config validate --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			issues := config.Problems(app.ConfigStore)
			if issues == nil {
				issues = []string{}
			}

			if app.JSON {
				if err := json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"valid":  len(issues) == 0,
					"issues": issues,
				}); err != nil {
					return err
				}
			} else if len(issues) == 0 {
				fmt.Fprintln(app.Out, app.SuccessColor("Configuration is valid."))
			} else {
				fmt.Fprintln(app.Out, app.WarnColor("Configuration errors:"))
				for _, e := range issues {
					fmt.Fprintf(app.Out, "  %s\n", e)
				}
			}

			if len(issues) > 0 {
				return fmt.Errorf("configuration has %d error(s)", len(issues))
			}
			return nil
		},
	}

	return cmd
}

// newConfigPathCmd creates the "config path" subcommand.
func newConfigPathCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"path": app.ConfigStore.Path(),
				})
			}
			fmt.Fprintln(app.Out, app.ConfigStore.Path())
			return nil
		},
	}

	return cmd
}

// parseValue interprets a command-line value. Valid JSON keeps its type
// (objects keep their key order); anything else is a plain string.
func parseValue(raw string, asString bool) any {
	if asString || !json.Valid([]byte(raw)) {
		return raw
	}

	if trimmed := bytes.TrimSpace([]byte(raw)); len(trimmed) > 0 && trimmed[0] == '{' {
		obj := orderedmap.New()
		obj.SetEscapeHTML(false)
		if err := json.Unmarshal(trimmed, obj); err == nil {
			return obj
		}
		return raw
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

// formatValue renders a value for text output: strings bare, everything
// else as compact JSON.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// keyProblems returns the validation problems reported for key.
func keyProblems(store config.Store, key string) []string {
	var out []string
	prefix := key + ": "
	for _, p := range config.Problems(store) {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	return out
}

// sortedKeys returns the sorted keys of a map.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
