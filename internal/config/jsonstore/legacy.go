package jsonstore

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"pt-web-ui/internal/config"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"
)

// legacyAliases renames legacy keys whose current name is not simply the
// camelCase form. Lookups are case-insensitive.
var legacyAliases = map[string]string{
	"log_level":  config.KeyLogOutputLevel,
	"loglevel":   config.KeyLogOutputLevel,
	"log-level":  config.KeyLogOutputLevel,
	"server_url": config.KeyURL,
	"browser":    config.KeyBrowserCommand,
}

// MigrateLegacy converts a legacy settings file into a current document.
//
// The legacy format is flat "key: value" lines. Keys are converted from
// snake_case to camelCase (or renamed through legacyAliases). Integers and
// floats become JSON numbers, true/false become booleans, "~"/null become
// JSON null and everything else is kept as a string. A value may also be a
// list of scalars. Nested mappings and nested lists cannot be written in the
// legacy format; such entries are dropped.
//
// MigrateLegacy does no I/O and is deterministic, so migrating the same
// bytes twice yields equal documents.
func MigrateLegacy(raw []byte) (*orderedmap.OrderedMap, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLegacyFormat, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrLegacyFormat)
	}

	m := root.Content[0]
	if m.Kind != yaml.MappingNode || len(m.Content) == 0 {
		return nil, fmt.Errorf("%w: expected \"key: value\" lines", ErrLegacyFormat)
	}

	doc := newDocument()
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind != yaml.ScalarNode || strings.TrimSpace(k.Value) == "" {
			return nil, fmt.Errorf("%w: line %d: invalid key", ErrLegacyFormat, k.Line)
		}
		val, ok := legacyValue(v)
		if !ok {
			continue
		}
		doc.Set(legacyKey(k.Value), val)
	}
	return doc, nil
}

func legacyValue(n *yaml.Node) (any, bool) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.ScalarNode:
		return legacyScalar(n), true
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return nil, false
			}
			items = append(items, legacyScalar(item))
		}
		return items, true
	}
	return nil, false
}

func legacyScalar(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f
		}
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case "!!null":
		return nil
	}
	return n.Value
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

func legacyKey(key string) string {
	key = strings.TrimSpace(key)
	if alias, ok := legacyAliases[strings.ToLower(key)]; ok {
		return alias
	}
	return snakeToCamel(key)
}

// snakeToCamel turns "log_output_level" into "logOutputLevel". Keys without
// underscores are returned unchanged.
func snakeToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		runes := []rune(strings.ToLower(part))
		if b.Len() > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		b.WriteString(string(runes))
	}
	if b.Len() == 0 {
		return s
	}
	return b.String()
}
