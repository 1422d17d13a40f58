package magicenv

// Value is the result of a guarded lookup. It holds either a string or one of
// the two absence sentinels, Null and Undefined, which stay distinguishable.
// The zero Value is Undefined.
type Value struct {
	kind valueKind
	str  string
}

type valueKind uint8

const (
	kindUndefined valueKind = iota
	kindNull
	kindString
)

var (
	// Undefined is returned by the undefined and warn actions, and for optional
	// variables that are absent.
	Undefined = Value{}
	// Null is returned by the null action.
	Null = Value{kind: kindNull}
)

// StringValue wraps s as a present Value.
func StringValue(s string) Value {
	return Value{kind: kindString, str: s}
}

// IsPresent reports whether v holds a string.
func (v Value) IsPresent() bool { return v.kind == kindString }

// IsNull reports whether v is the Null sentinel.
func (v Value) IsNull() bool { return v.kind == kindNull }

// IsUndefined reports whether v is the Undefined sentinel.
func (v Value) IsUndefined() bool { return v.kind == kindUndefined }

// Get returns the string and whether one is held.
func (v Value) Get() (string, bool) {
	return v.str, v.kind == kindString
}

// Or returns the held string, or fallback for either sentinel.
func (v Value) Or(fallback string) string {
	if v.kind == kindString {
		return v.str
	}
	return fallback
}

// String returns the held string, or "" for either sentinel.
func (v Value) String() string {
	return v.str
}

// GoString renders sentinels as null and undefined, which keeps test failure
// output readable.
func (v Value) GoString() string {
	switch v.kind {
	case kindNull:
		return "null"
	case kindUndefined:
		return "undefined"
	default:
		return `"` + v.str + `"`
	}
}
