package vehicle

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/rayvehicle/parameter"
)

// ErrInvalidAxes is returned for axis selectors that are not a permutation of 0, 1, 2
var ErrInvalidAxes = errors.New("vehicle: axis selectors must be a permutation of 0, 1, 2")

// CoordinateSystem selects which chassis basis columns are right, up and forward
type CoordinateSystem struct {
	Right   int
	Up      int
	Forward int
}

// DefaultCoordinateSystem returns right=0, up=2, forward=1
func DefaultCoordinateSystem() CoordinateSystem {
	return CoordinateSystem{
		Right:   parameter.DefaultRightAxis,
		Up:      parameter.DefaultUpAxis,
		Forward: parameter.DefaultForwardAxis,
	}
}

// Validate checks the selectors form a permutation of {0,1,2}
func (c CoordinateSystem) Validate() error {
	var seen [3]bool
	for _, axis := range [3]int{c.Right, c.Up, c.Forward} {
		if axis < 0 || axis > 2 || seen[axis] {
			return fmt.Errorf("%w: got right=%d up=%d forward=%d", ErrInvalidAxes, c.Right, c.Up, c.Forward)
		}
		seen[axis] = true
	}
	return nil
}
