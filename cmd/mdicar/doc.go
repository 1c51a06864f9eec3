// Command mdicar drives the car/engine/bumper demo from the command line.
//
// It wires the demo components with the standard parts, constructs a car
// from flag- or config-supplied parameters, and logs every step:
//
//	mdicar --bumper-hp 80 --engine-type 8 --producer Katagames
//
// Configuration
//
// Flags can also come from a YAML config file (--config) or from the
// environment (MDICAR_ prefix, e.g. MDICAR_BUMPER_HP=80). Precedence is the
// usual viper order: explicit flag, then environment, then config file, then
// defaults.
//
// With --show-errors the command additionally walks the library's failure
// modes (constructing the abstract car, wiring with missing bindings,
// constructing with missing bundles) and logs each typed error.
package main
