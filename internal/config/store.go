package config

// Store provides typed access to the launcher's JSON settings document.
// Property names are top-level object keys; there is no nested path syntax.
// Implementations are not safe for concurrent use.
type Store interface {
	// GetValue returns a copy of the raw value for property and whether it
	// was present. A present JSON null is reported as (nil, true).
	GetValue(property string) (any, bool)

	// GetInt returns the integer value of property, or defaultValue when the
	// property is absent or not an integral number.
	GetInt(property string, defaultValue int) int

	// GetString returns the string value of property, or defaultValue when
	// the property is absent or not a string.
	GetString(property, defaultValue string) string

	// ArrayValueToStringList returns the elements of an array property as
	// strings, in order. Absent or non-array properties yield an empty slice.
	ArrayValueToStringList(property string) []string

	// SetValue inserts or overwrites property and rewrites the file.
	SetValue(property string, value any) error

	// RemoveValue deletes property and rewrites the file. Removing an absent
	// property is a no-op.
	RemoveValue(property string) error

	// Keys returns the property names in document order.
	Keys() []string

	// Path returns the file the store persists to.
	Path() string
}
