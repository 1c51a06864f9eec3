package inject_test

import (
	"errors"

	"github.com/katagames/mdi/inject"
)

/*
   Shared fixtures for the external tests: a couple of trivially
   constructible part types plus their Constructor adapters.
*/

type cylinder struct {
	Bore int
}

func newCylinder(args inject.Args) (any, error) {
	return &cylinder{Bore: inject.ArgOr(args, "bore", 80)}, nil
}

// chromeCylinder is a second concrete type for the same "cylinder" role,
// used to prove registry isolation between sibling wirings.
type chromeCylinder struct{}

func newChromeCylinder(inject.Args) (any, error) {
	return &chromeCylinder{}, nil
}

type sparkPlug struct{}

func newSparkPlug(inject.Args) (any, error) {
	return &sparkPlug{}, nil
}

var errBadPart = errors.New("bad part")

func newBrokenPart(inject.Args) (any, error) {
	return nil, errBadPart
}
