package inject

import "sort"

// Body is a component's own constructor logic. It runs after every
// dependency named by the construction bundles has been attached to self.
//
// A Body must not rely on the attachment order of sibling dependencies; by
// the time it runs, all of them are present.
type Body func(self *Instance) error

// Blueprint describes an abstract component: a component name plus the set
// of dependency names that must be wired before instances can be built.
//
// A Blueprint with a non-empty required set is not instantiable by itself;
// Wire it first. A Blueprint with no required names behaves as a plain
// constructible type.
type Blueprint struct {
	name     string
	required map[string]struct{}
	body     Body
}

// NewBlueprint declares an abstract component. Required names are
// case-insensitive and deduplicated.
func NewBlueprint(name string, required ...string) *Blueprint {
	bp := &Blueprint{
		name:     name,
		required: make(map[string]struct{}, len(required)),
	}
	for _, n := range required {
		bp.required[normalize(n)] = struct{}{}
	}
	return bp
}

// OnBuild sets the constructor body and returns the blueprint for chaining.
//
// Set the body before wiring: Wire snapshots it, so components wired earlier
// keep the body they were wired with.
func (b *Blueprint) OnBuild(body Body) *Blueprint {
	b.body = body
	return b
}

// Name returns the component name.
func (b *Blueprint) Name() string { return b.name }

// Required returns the declared dependency names, sorted.
func (b *Blueprint) Required() []string {
	names := make([]string, 0, len(b.required))
	for n := range b.required {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Requires reports whether name is in the declared required set.
func (b *Blueprint) Requires(name string) bool {
	_, ok := b.required[normalize(name)]
	return ok
}

// Wired reports whether the blueprint is instantiable as-is. An unwired
// blueprint is fully wired only in the trivial case of an empty required set.
func (b *Blueprint) Wired() bool { return len(b.required) == 0 }

// New attempts to construct an instance directly from the blueprint, i.e.
// with an empty registry.
//
// It fails with a ConfigurationError whenever the required set is non-empty;
// a blueprint with no required names constructs like a plain type.
func (b *Blueprint) New(bundles Bundles) (*Instance, error) {
	if b == nil {
		return nil, ErrNilBlueprint
	}
	return construct(b.name, b.required, nil, b.body, bundles)
}
