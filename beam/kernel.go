package beam

import "math"

// Outcome classifies a single trial.
type Outcome int

const (
	// OutcomeMiss means the beam never strikes the mirror in front of the
	// source.
	OutcomeMiss Outcome = iota
	// OutcomeHit means the reflected beam reaches the plate at a non-negative
	// parametric distance.
	OutcomeHit
	// OutcomeEscape means the reflected beam travels away from the plate
	// forever.
	OutcomeEscape
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeEscape:
		return "escape"
	}
	return "unknown"
}

// Slope converts a beam angle in degrees to the slope of the beam line
// y = x*tan(angle). The angle must lie strictly inside (-90, 90).
func Slope(angleDeg float64) float32 {
	return float32(math.Tan(angleDeg * math.Pi / 180))
}

// Classify solves a single trial: a beam along y = x*tn fired from the origin
// against the mirror disk centered at (xc, yc) with radius r, reflected toward
// the plate at y = 0. Pure function of its arguments.
func Classify(xc, yc, r, tn float32) Outcome {
	out, _, _ := trace(xc, yc, r, tn)
	return out
}

// trace returns the classification together with the first intersection
// parameter along the beam and the plate parameter along the reflected ray.
// All arithmetic is single precision to match the sampled trial parameters.
func trace(xc, yc, r, tn float32) (Outcome, float32, float32) {
	// Substituting y = x*tn into the circle equation yields a quadratic in the
	// beam parameter.
	a := 1 + tn*tn
	b := -2 * (xc + yc*tn)
	c := xc*xc + yc*yc - r*r
	d := b*b - 4*a*c
	if d < 0 {
		return OutcomeMiss, 0, 0
	}

	// A tangent beam (d == 0) still counts as an intersection.
	sd := float32(math.Sqrt(float64(d)))
	t1 := (-b + sd) / (2 * a)
	t2 := (-b - sd) / (2 * a)
	tmin := t1
	if t2 < t1 {
		tmin = t2
	}
	if tmin < 0 {
		// The intersection lies behind the source.
		return OutcomeMiss, tmin, 0
	}

	xcir := tmin
	ycir := tmin * tn

	// Unit outward normal at the intersection point.
	nx := xcir - xc
	ny := ycir - yc
	ni := float32(math.Sqrt(float64(nx*nx + ny*ny)))
	nx /= ni
	ny /= ni

	// Unit incoming direction.
	inx := xcir
	iny := ycir
	inLen := float32(math.Sqrt(float64(inx*inx + iny*iny)))
	inx /= inLen
	iny /= inLen

	// Angle of reflection equals angle of incidence.
	dot := inx*nx + iny*ny
	outx := inx - 2*nx*dot
	outy := iny - 2*ny*dot

	verifyReflection(inx, iny, nx, ny, outx, outy)

	// Extend the reflected beam to the plate. A zero outy divides to Inf or
	// NaN, both of which compare false against < 0 and classify as a hit;
	// this mirrors the reference arithmetic.
	tPlate := (0 - ycir) / outy
	if tPlate < 0 {
		return OutcomeEscape, tmin, tPlate
	}
	return OutcomeHit, tmin, tPlate
}
