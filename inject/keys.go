package inject

import "strings"

// ArgsSuffix is the marker that tags a bundle key as "constructor arguments
// for dependency <name>": the bundle for "cylinder" is keyed "cylinder_args".
const ArgsSuffix = "_args"

// Args holds the constructor arguments for one dependency instance.
//
// A bundle does not persist beyond the construction call that consumes it.
type Args map[string]any

// Bundles maps tagged keys ("<name>_args") to argument bundles, one bundle
// per dependency being instantiated at a construction call site.
type Bundles map[string]Args

// Constructor builds one dependency instance from an argument bundle.
//
// Constructors are the constructible-type descriptors stored in a wired
// component's registry; any function or closure of this shape qualifies.
type Constructor func(args Args) (any, error)

// Bindings maps dependency names to the constructors that satisfy them.
// Names are case-insensitive; Wire normalizes them to lower case.
type Bindings map[string]Constructor

// normalize maps a dependency name to its canonical form.
func normalize(name string) string { return strings.ToLower(name) }

// TagKey returns the bundle key for a dependency name, normalized.
//
//	TagKey("Cylinder") == "cylinder_args"
func TagKey(name string) string { return normalize(name) + ArgsSuffix }

// SplitKey decomposes a tagged bundle key into the bare dependency name.
//
// It returns a NamingError if the key does not carry the ArgsSuffix marker
// or if nothing precedes it.
func SplitKey(key string) (string, error) {
	bare, ok := strings.CutSuffix(normalize(key), ArgsSuffix)
	if !ok || bare == "" {
		return "", NamingError{Key: key}
	}
	return bare, nil
}

// Arg returns the bundle argument under key typed as V.
//
// ok is false if the key is absent or the stored value is not a V.
func Arg[V any](args Args, key string) (V, bool) {
	var zero V
	raw, ok := args[key]
	if !ok {
		return zero, false
	}
	v, ok := raw.(V)
	if !ok {
		return zero, false
	}
	return v, true
}

// ArgOr returns the bundle argument under key typed as V, or def when the
// key is absent or holds a different type.
func ArgOr[V any](args Args, key string, def V) V {
	if v, ok := Arg[V](args, key); ok {
		return v
	}
	return def
}
