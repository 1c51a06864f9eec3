package inject

import "sort"

// Component is a wired, instantiable variant of a Blueprint.
//
// A Component owns a private copy of the blueprint's required set and body
// plus an immutable registry mapping dependency names to constructors.
// Sibling wirings of the same blueprint never share state: each Wire call
// returns an independent Component.
type Component struct {
	name     string
	required map[string]struct{}
	body     Body
	registry map[string]Constructor
}

// Wire produces a Component from a blueprint and a set of name to
// constructor bindings.
//
// Names are normalized to lower case. Wiring is atomic: if the bindings are
// invalid (nil constructor, duplicate name after normalization) or leave any
// required name unbound, Wire returns an error and no component.
//
// Supplying bindings beyond the required set is allowed; they become
// optional dependencies the construction bundles may or may not name.
func Wire(bp *Blueprint, bindings Bindings) (*Component, error) {
	if bp == nil {
		return nil, ErrNilBlueprint
	}

	registry := make(map[string]Constructor, len(bindings))
	for name, ctor := range bindings {
		key := normalize(name)
		if ctor == nil {
			return nil, NilConstructorError{Name: key}
		}
		if _, exists := registry[key]; exists {
			return nil, DuplicateBindingError{Name: key}
		}
		registry[key] = ctor
	}

	required := make(map[string]struct{}, len(bp.required))
	for n := range bp.required {
		required[n] = struct{}{}
	}

	c := &Component{
		name:     bp.name,
		required: required,
		body:     bp.body,
		registry: registry,
	}
	if missing := c.Missing(); len(missing) > 0 {
		return nil, ConfigurationError{Component: bp.name, Missing: missing}
	}
	return c, nil
}

// MustWire is Wire, panicking on invalid wiring.
//
// Useful in composition roots and tests where a wiring mistake should fail
// fast.
func MustWire(bp *Blueprint, bindings Bindings) *Component {
	c, err := Wire(bp, bindings)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the component name, inherited from the blueprint.
func (c *Component) Name() string { return c.name }

// Required returns the required dependency names, sorted.
func (c *Component) Required() []string {
	names := make([]string, 0, len(c.required))
	for n := range c.required {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Names returns every registered dependency name, sorted.
func (c *Component) Names() []string {
	names := make([]string, 0, len(c.registry))
	for n := range c.registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Registered reports whether a constructor is bound to name.
func (c *Component) Registered(name string) bool {
	_, ok := c.registry[normalize(name)]
	return ok
}

// Missing returns the required names with no registry entry, sorted.
//
// For any component returned by Wire this is empty; the method exists for
// the construction guard and for tests.
func (c *Component) Missing() []string {
	var missing []string
	for n := range c.required {
		if _, ok := c.registry[n]; !ok {
			missing = append(missing, n)
		}
	}
	sort.Strings(missing)
	return missing
}

// Wired reports whether every required name has a registry entry.
func (c *Component) Wired() bool { return len(c.Missing()) == 0 }

// New constructs an instance of the component.
//
// The guard runs first: an incompletely wired component fails with a
// ConfigurationError before any constructor logic executes. Then every
// required name must have a tagged bundle, or New fails with a
// MissingArgumentsError listing all omissions at once. Each bundle is then
// processed (in no particular order): its key is decomposed into the bare
// dependency name, the registered constructor is invoked with the bundle,
// and the result is attached to the instance under the bare name. The body,
// if any, runs last.
func (c *Component) New(bundles Bundles) (*Instance, error) {
	return construct(c.name, c.required, c.registry, c.body, bundles)
}

// Provide adapts the wired component for use as a binding in an outer
// wiring, composing wirings transitively.
//
// The returned constructor builds one fresh instance per call from the
// fixed bundles and ignores the outer argument bundle. When the outer
// arguments need to influence construction, write a plain closure over New
// instead.
func (c *Component) Provide(bundles Bundles) Constructor {
	return func(Args) (any, error) { return c.New(bundles) }
}

// construct is the shared guarded-construction path for Blueprint.New and
// Component.New. registry may be nil (the unwired case).
func construct(
	owner string,
	required map[string]struct{},
	registry map[string]Constructor,
	body Body,
	bundles Bundles,
) (*Instance, error) {
	// Guard: never run constructor logic against an incomplete registry.
	var unwired []string
	for n := range required {
		if _, ok := registry[n]; !ok {
			unwired = append(unwired, n)
		}
	}
	if len(unwired) > 0 {
		sort.Strings(unwired)
		return nil, ConfigurationError{Component: owner, Missing: unwired}
	}

	// Every required name needs a tagged bundle; report all omissions at
	// once. Malformed keys are skipped here and reported per-key below.
	supplied := make(map[string]struct{}, len(bundles))
	for key := range bundles {
		if name, err := SplitKey(key); err == nil {
			supplied[name] = struct{}{}
		}
	}
	var lacking []string
	for n := range required {
		if _, ok := supplied[n]; !ok {
			lacking = append(lacking, n)
		}
	}
	if len(lacking) > 0 {
		sort.Strings(lacking)
		return nil, MissingArgumentsError{Component: owner, Missing: lacking}
	}

	inst := &Instance{
		owner: owner,
		deps:  make(map[string]any, len(bundles)),
	}
	for key, args := range bundles {
		name, err := SplitKey(key)
		if err != nil {
			return nil, err
		}
		ctor, ok := registry[name]
		if !ok {
			return nil, UnresolvedDependencyError{Component: owner, Name: name}
		}
		dep, err := ctor(args)
		if err != nil {
			return nil, ConstructionError{Component: owner, Name: name, Err: err}
		}
		inst.attach(name, dep)
	}

	if body != nil {
		if err := body(inst); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
