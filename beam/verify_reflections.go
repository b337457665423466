//go:build verify_reflections
// +build verify_reflections

package beam

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
)

const (
	lengthEpsilon = 1e-5
	angleEpsilon  = 1e-5
)

func init() {
	fmt.Println("Reflection verification enabled.")
}

// verifyReflection checks the reflection law on every kernel evaluation.
// Compiled in only with -tags verify_reflections.
func verifyReflection(inx, iny, nx, ny, outx, outy float32) {
	incident := pt.Ray{Direction: V(float64(inx), float64(iny))}
	normal := V(float64(nx), float64(ny))
	reflected := pt.Ray{Direction: V(float64(outx), float64(outy))}

	// Reflection preserves length.
	if math.Abs(reflected.Direction.Length()-1.0) > lengthEpsilon {
		panic("reflected direction is not unit length")
	}

	// Angle of incidence should equal angle of reflection. The incident
	// direction points into the surface, so it is negated against the outward
	// normal.
	incidentAngle := math.Acos(-incident.Direction.Dot(normal))
	reflectedAngle := math.Acos(reflected.Direction.Dot(normal))
	if math.Abs(incidentAngle-reflectedAngle) > angleEpsilon {
		panic("angle of incidence does not equal angle of reflection")
	}
}
