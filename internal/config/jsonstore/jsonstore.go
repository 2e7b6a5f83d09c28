// Package jsonstore implements config.Store backed by a JSON file.
//
// The document keeps the key order found on disk and appends new keys, so a
// hand-edited settings file stays diff-friendly across rewrites. Every
// mutation rewrites the whole file. Content that is not valid JSON is run
// through the legacy migration (see MigrateLegacy) and, when recognised,
// written back in the current format.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strconv"

	"pt-web-ui/internal/config"
	ptlog "pt-web-ui/internal/log"

	"github.com/iancoleman/orderedmap"
	"github.com/rs/zerolog"
)

// JSONStore implements config.Store using a JSON file on disk.
// It is not safe for concurrent use.
type JSONStore struct {
	fio    FileIO
	path   string
	doc    *orderedmap.OrderedMap
	logger zerolog.Logger
}

// Option configures a JSONStore.
type Option func(*JSONStore)

// WithLogger sets the logger used to report load and migration problems.
func WithLogger(l zerolog.Logger) Option {
	return func(s *JSONStore) {
		s.logger = l
	}
}

// New creates a JSONStore that reads from and writes to path through fio.
// The file is loaded immediately. New never fails: a missing, unreadable or
// unrecognisable file leaves the store with an empty document, and the file
// is only created on the first mutation.
func New(fio FileIO, path string, opts ...Option) *JSONStore {
	s := &JSONStore{
		fio:    fio,
		path:   path,
		logger: ptlog.WithComponent("configstore"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("path", path).Logger()
	s.load()
	return s
}

// Path returns the file the store persists to.
func (s *JSONStore) Path() string {
	return s.path
}

// Keys returns the property names in document order.
func (s *JSONStore) Keys() []string {
	return slices.Clone(s.doc.Keys())
}

// GetValue returns a copy of the value for property and whether it was found.
func (s *JSONStore) GetValue(property string) (any, bool) {
	v, ok := s.doc.Get(property)
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// GetInt returns the integer value of property, or defaultValue if the
// property is absent or is not an integral number.
func (s *JSONStore) GetInt(property string, defaultValue int) int {
	v, ok := s.doc.Get(property)
	if !ok {
		return defaultValue
	}
	n, ok := config.Int(v)
	if !ok {
		s.logger.Debug().Str("property", property).Msg("not an integer, using default")
		return defaultValue
	}
	return n
}

// GetString returns the string value of property, or defaultValue if the
// property is absent or is not a string.
func (s *JSONStore) GetString(property, defaultValue string) string {
	v, ok := s.doc.Get(property)
	if !ok {
		return defaultValue
	}
	str, ok := v.(string)
	if !ok {
		s.logger.Debug().Str("property", property).Msg("not a string, using default")
		return defaultValue
	}
	return str
}

// ArrayValueToStringList returns the elements of an array property as
// strings. Numbers and booleans are formatted; nulls, arrays and objects
// are skipped. Absent or non-array properties yield an empty slice.
func (s *JSONStore) ArrayValueToStringList(property string) []string {
	out := []string{}
	v, ok := s.doc.Get(property)
	if !ok {
		return out
	}

	if items, ok := v.([]any); ok {
		for i, item := range items {
			str, ok := scalarString(item)
			if !ok {
				s.logger.Debug().Str("property", property).Int("index", i).Msg("skipping non-scalar array element")
				continue
			}
			out = append(out, str)
		}
	}
	return out
}

// SetValue stores value under property and rewrites the file. The value is
// normalised through its JSON encoding, so later reads see the same shapes a
// reload would produce (numbers as float64, objects in document form). If the
// write fails the in-memory document still holds value and the error wraps
// ErrWrite; Save may be used to retry.
func (s *JSONStore) SetValue(property string, value any) error {
	v, err := normalizeValue(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnsupportedValue, property, err)
	}
	s.doc.Set(property, v)
	return s.Save()
}

// RemoveValue deletes property and rewrites the file. Removing an absent
// property does nothing.
func (s *JSONStore) RemoveValue(property string) error {
	if _, ok := s.doc.Get(property); !ok {
		return nil
	}
	s.doc.Delete(property)
	return s.Save()
}

// Save writes the in-memory document to disk, replacing the file.
func (s *JSONStore) Save() error {
	raw, err := encodeDocument(s.doc)
	if err != nil {
		return fmt.Errorf("%w: encoding config: %w", ErrWrite, err)
	}
	if err := s.fio.WriteFile(s.path, raw); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, s.path, err)
	}
	return nil
}

// load populates s.doc from disk. Every failure degrades to an empty
// document; a migrated legacy file is written back in the current format.
func (s *JSONStore) load() {
	s.doc = newDocument()

	raw, err := s.fio.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info().Msg("config file not found, using defaults")
			return
		}
		s.logger.Error().Err(err).Msg("reading config file, using defaults")
		return
	}

	raw = bytes.TrimPrefix(raw, utf8BOM)
	if len(bytes.TrimSpace(raw)) == 0 {
		return
	}

	doc, err := ParseDocument(raw)
	if err == nil {
		s.doc = doc
		return
	}
	if errors.Is(err, ErrNotObject) || errors.Is(err, ErrUnrepresentable) {
		s.logger.Warn().Err(err).Msg("config file cannot be used, using defaults")
		return
	}

	s.logger.Warn().Err(err).Msg("config file is not valid JSON, trying legacy format")
	migrated, err := MigrateLegacy(raw)
	if err != nil {
		s.logger.Error().Err(err).Msg("config file unreadable, using defaults")
		return
	}

	s.doc = migrated
	s.logger.Info().Int("properties", len(migrated.Keys())).Msg("migrated legacy config file")
	if err := s.Save(); err != nil {
		s.logger.Error().Err(err).Msg("persisting migrated config")
	}
}

var utf8BOM = []byte("\xef\xbb\xbf")

// ParseDocument decodes current-format content. It fails with ErrInvalidJSON
// for malformed input, ErrNotObject for well-formed JSON whose top level is
// an array, scalar or null, and ErrUnrepresentable for an object that does
// not decode.
func ParseDocument(raw []byte) (*orderedmap.OrderedMap, error) {
	if !json.Valid(raw) {
		return nil, ErrInvalidJSON
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotObject
	}

	doc := newDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnrepresentable, err)
	}
	return doc, nil
}

// normalizeValue re-decodes value from its JSON encoding.
func normalizeValue(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	if raw[0] == '{' {
		obj := newDocument()
		if err := json.Unmarshal(raw, obj); err != nil {
			return nil, err
		}
		return obj, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func newDocument() *orderedmap.OrderedMap {
	doc := orderedmap.New()
	doc.SetEscapeHTML(false)
	return doc
}

// encodeDocument renders doc as two-space indented JSON with a trailing
// newline.
func encodeDocument(doc *orderedmap.OrderedMap) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// scalarString formats a JSON scalar for ArrayValueToStringList.
func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case json.Number:
		return t.String(), true
	}
	if n, ok := config.Int(v); ok {
		return strconv.Itoa(n), true
	}
	return "", false
}

// cloneValue deep-copies the container types a decoded document can hold
// so callers cannot mutate the store through GetValue results.
func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	case orderedmap.OrderedMap:
		return *cloneMap(&t)
	case *orderedmap.OrderedMap:
		return cloneMap(t)
	}
	return v
}

func cloneMap(m *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	out := newDocument()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		out.Set(k, cloneValue(v))
	}
	return out
}

// Compile-time check that JSONStore implements config.Store.
var _ config.Store = (*JSONStore)(nil)
