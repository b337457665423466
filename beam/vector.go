package beam

import (
	"github.com/fogleman/pt/pt"
)

// V is a shorthand constructor for pt.Vector. The simulation lives in the XY
// plane, so Z is always zero.
func V(X, Y float64) pt.Vector {
	return pt.Vector{X: X, Y: Y, Z: 0}
}
