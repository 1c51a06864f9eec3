// Package mdi provides a small named-dependency wiring convention for Go.
//
// The idea is deliberately modest: an abstract component declares, by name,
// the dependencies it needs filled; a separate wiring step binds each name
// to a constructor for a concrete type; instances are then built by
// constructing every declared dependency from caller-supplied argument
// bundles and attaching it to the owner under its bare name.
//
// There is no container graph, no reflection-based auto-wiring, no lifecycle
// management, and no scoping. Wiring stays explicit in your composition root,
// and every mistake (constructing an unwired component, a malformed bundle
// key, a bundle for a name nobody registered, a required name with no
// bundle) fails immediately with a typed error.
//
// Layout:
//   - inject: the library (blueprints, wiring, guarded construction)
//   - examples/carparts, examples/showcase: the car/engine/bumper demo
//   - cmd/mdicar: a small CLI that drives the demo end to end
//
// Start with the inject package documentation for the API and the wiring
// conventions.
package mdi
