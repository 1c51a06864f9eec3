package inject

import (
	"reflect"
	"sort"
)

// Instance is a constructed component: the owner's name plus one freshly
// built dependency per bundle, attached under its bare name.
//
// Attachments are simple composition. The instance exclusively owns each
// dependency; nothing is shared between instances, and the attachment map
// is not mutated after construction.
type Instance struct {
	owner string
	deps  map[string]any
}

// Owner returns the name of the component the instance was built from.
func (i *Instance) Owner() string { return i.owner }

// Names returns the attached dependency names, sorted.
func (i *Instance) Names() []string {
	names := make([]string, 0, len(i.deps))
	for n := range i.deps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a dependency is attached under name.
func (i *Instance) Has(name string) bool {
	if i == nil || i.deps == nil {
		return false
	}
	_, ok := i.deps[normalize(name)]
	return ok
}

// Dep returns the raw attached dependency without type assertions.
func (i *Instance) Dep(name string) (any, bool) {
	if i == nil || i.deps == nil {
		return nil, false
	}
	v, ok := i.deps[normalize(name)]
	return v, ok
}

// attach stores a dependency under its bare name, overwriting any prior
// attachment of that name.
func (i *Instance) attach(name string, dep any) {
	i.deps[name] = dep
}

// DepAs returns the dependency attached under name, typed as D.
//
// ok is false if nothing is attached under name or the attachment is not a D.
func DepAs[D any](i *Instance, name string) (D, bool) {
	var zero D
	raw, ok := i.Dep(name)
	if !ok || raw == nil {
		return zero, false
	}
	d, ok := raw.(D)
	if !ok {
		return zero, false
	}
	return d, true
}

// TryDepAs returns the dependency attached under name, typed as D.
//
// It returns:
//   - MissingAttachmentError if nothing is attached under name
//   - WrongTypeAttachmentError if the attachment is not a D
func TryDepAs[D any](i *Instance, name string) (D, error) {
	var zero D
	raw, ok := i.Dep(name)
	if !ok || raw == nil {
		return zero, MissingAttachmentError{Name: normalize(name)}
	}
	d, ok := raw.(D)
	if !ok {
		return zero, WrongTypeAttachmentError{
			Name:    normalize(name),
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return d, nil
}

// MustDepAs returns the dependency attached under name, typed as D, or
// panics.
func MustDepAs[D any](i *Instance, name string) D {
	d, err := TryDepAs[D](i, name)
	if err != nil {
		panic(err)
	}
	return d
}
