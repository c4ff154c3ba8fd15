package store

// Key selects what a listener or binding observes: one named field, or All.
type Key struct {
	name  string
	field bool
}

// All observes every accepted change. It is the zero Key.
var All = Key{}

// Field observes the named field only. Any string is a valid field name,
// including the empty string.
func Field(name string) Key {
	return Key{name: name, field: true}
}

// Name returns the field name, or "" for All.
func (k Key) Name() string {
	return k.name
}

// IsAll reports whether k observes the whole record.
func (k Key) IsAll() bool {
	return !k.field
}

// String returns the field name, or "*" for All.
func (k Key) String() string {
	if !k.field {
		return "*"
	}
	return k.name
}
