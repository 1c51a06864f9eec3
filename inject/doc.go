// Package inject implements named-dependency declaration, wiring, and
// guarded construction.
//
// A Blueprint declares an abstract component: a component name plus the set
// of dependency names it requires. Wire binds each name to a Constructor for
// a concrete type and returns a Component, an independent, fully validated,
// instantiable variant of the blueprint. Component.New then builds an
// Instance: each dependency named by an argument bundle is constructed with
// that bundle and attached to the instance under its bare name.
//
// Design goals:
//   - Lightweight: small API surface, no container graph, no reflection.
//   - Explicit wiring: bindings are supplied intentionally, per component.
//   - Safe defaults: an incompletely wired component can never produce a
//     live instance; bad wiring fails atomically at Wire time.
//   - Test-friendly: typed errors for every failure mode, query methods for
//     wiring state, typed attachment retrieval via DepAs and friends.
//
// Naming convention
//
// Dependency names are case-insensitive and normalized to lower case. At
// construction time, argument bundles are tagged: the bundle carrying the
// constructor arguments for dependency "cylinder" lives under the key
// "cylinder_args". TagKey and SplitKey convert between the two forms.
//
// Concurrency
//
// Wiring and construction are expected to happen at process startup, ahead
// of concurrent access. Wire never mutates the blueprint or any shared
// state; it returns a fresh Component whose registry is immutable from then
// on, so reading or constructing from a wired Component needs no
// synchronization.
package inject
