package inject

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNilBlueprint is returned when Wire is called with a nil blueprint.
	ErrNilBlueprint = errors.New("inject: nil blueprint")
)

// quoteNames renders a name list for error messages.
//
// Callers pass sorted slices so messages are deterministic.
func quoteNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return strings.Join(quoted, ", ")
}

// ConfigurationError reports a component whose registry does not cover its
// required dependency names.
//
// It is returned when constructing an unwired (or incompletely wired)
// component, and by Wire when the supplied bindings leave required names
// unbound.
type ConfigurationError struct {
	// Component is the name of the component class.
	Component string

	// Missing holds the required names with no registry entry, sorted.
	Missing []string
}

// Error implements the error interface.
func (e ConfigurationError) Error() string {
	// Example: inject: component "car" is not fully wired, missing: "bumper", "engine"
	return "inject: component " + strconv.Quote(e.Component) +
		" is not fully wired, missing: " + quoteNames(e.Missing)
}

// NamingError reports an argument-bundle key that does not follow the
// "<name>_args" convention.
//
// A malformed key is a programming mistake at the construction call site,
// never a transient condition.
type NamingError struct {
	// Key is the malformed bundle key as supplied.
	Key string
}

// Error implements the error interface.
func (e NamingError) Error() string {
	// Example: inject: bundle key "cylinder" does not match "<name>_args"
	return "inject: bundle key " + strconv.Quote(e.Key) +
		" does not match " + strconv.Quote("<name>"+ArgsSuffix)
}

// UnresolvedDependencyError reports a bundle naming a dependency that has no
// entry in the component's registry. It signals a wiring omission or a typo
// in the bundle key.
type UnresolvedDependencyError struct {
	// Component is the name of the owning component class.
	Component string

	// Name is the unresolved dependency name.
	Name string
}

// Error implements the error interface.
func (e UnresolvedDependencyError) Error() string {
	// Example: inject: dependency "cylinder" is not registered for component "engine"
	return "inject: dependency " + strconv.Quote(e.Name) +
		" is not registered for component " + strconv.Quote(e.Component)
}

// MissingArgumentsError reports required dependency names that had no
// argument bundle at construction time.
//
// All omissions are reported at once so the caller can fix them in a single
// correction cycle.
type MissingArgumentsError struct {
	// Component is the name of the component being constructed.
	Component string

	// Missing holds the required names with no bundle, sorted.
	Missing []string
}

// Error implements the error interface.
func (e MissingArgumentsError) Error() string {
	// Example: inject: constructing "car": no argument bundle for: "bumper", "engine"
	return "inject: constructing " + strconv.Quote(e.Component) +
		": no argument bundle for: " + quoteNames(e.Missing)
}

// NilConstructorError reports a wiring binding whose constructor is nil.
type NilConstructorError struct {
	// Name is the dependency name the nil constructor was bound to.
	Name string
}

// Error implements the error interface.
func (e NilConstructorError) Error() string {
	// Example: inject: nil constructor bound to "cylinder"
	return "inject: nil constructor bound to " + strconv.Quote(e.Name)
}

// DuplicateBindingError reports two wiring bindings that collapse to the
// same dependency name after case normalization.
type DuplicateBindingError struct {
	// Name is the normalized dependency name.
	Name string
}

// Error implements the error interface.
func (e DuplicateBindingError) Error() string {
	// Example: inject: duplicate binding for "cylinder"
	return "inject: duplicate binding for " + strconv.Quote(e.Name)
}

// ConstructionError wraps a failure from a dependency constructor, adding
// the owning component and the dependency name.
type ConstructionError struct {
	// Component is the name of the component being constructed.
	Component string

	// Name is the dependency whose constructor failed.
	Name string

	// Err is the constructor's error.
	Err error
}

// Error implements the error interface.
func (e ConstructionError) Error() string {
	// Example: inject: constructing dependency "cylinder" of "engine": boom
	return "inject: constructing dependency " + strconv.Quote(e.Name) +
		" of " + strconv.Quote(e.Component) + ": " + e.Err.Error()
}

// Unwrap exposes the constructor's error to errors.Is / errors.As.
func (e ConstructionError) Unwrap() error { return e.Err }

// MissingAttachmentError is returned when an instance has no attachment
// under the requested name.
//
// It is used by TryDepAs to distinguish "missing" from "wrong type".
type MissingAttachmentError struct {
	// Name is the dependency name requested.
	Name string
}

// Error implements the error interface.
func (e MissingAttachmentError) Error() string {
	// Example: inject: no dependency attached under "cylinder"
	return "inject: no dependency attached under " + strconv.Quote(e.Name)
}

// WrongTypeAttachmentError is returned when an attachment exists but is of a
// different type than requested.
type WrongTypeAttachmentError struct {
	// Name is the dependency name requested.
	Name string

	// GotType is reflect.TypeOf(attached).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeAttachmentError) Error() string {
	// Example: inject: dependency "cylinder" has wrong type (*carparts.Bumper)
	return "inject: dependency " + strconv.Quote(e.Name) +
		" has wrong type (" + e.GotType + ")"
}
