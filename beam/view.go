package beam

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// View renders a sample of the simulated geometry: the plate, the incoming
// beam and the mirror disks colored by their classification.
type View struct {
	XSize int
	YSize int

	// These cache the values needed to scale and translate from the scene to
	// the requested image size.
	scale      float64
	xTranslate float64
	yTranslate float64
	xMax       float64
}

func (v *View) boundingBox(ts *TrialSet, limit int) (xMin, xMax, yMin, yMax float64) {
	// The laser source at the origin is always in frame.
	for i := 0; i < limit; i++ {
		x := float64(ts.XC[i])
		y := float64(ts.YC[i])
		r := float64(ts.R[i])
		xMin = math.Min(xMin, x-r)
		xMax = math.Max(xMax, x+r)
		yMin = math.Min(yMin, y-r)
		yMax = math.Max(yMax, y+r)
	}
	return
}

func (v *View) computeScaleAndTranslation(ts *TrialSet, limit int) {
	xMin, xMax, yMin, yMax := v.boundingBox(ts, limit)
	v.xTranslate = -xMin
	v.yTranslate = -yMin
	v.xMax = xMax
	xScale := float64(v.XSize) / (xMax - xMin)
	yScale := float64(v.YSize) / (yMax - yMin)
	v.scale = math.Min(xScale, yScale)
}

// project maps a scene point to image coordinates, flipping Y so the plate
// sits at the bottom of the frame.
func (v *View) project(x, y float64) (float64, float64) {
	px := (x + v.xTranslate) * v.scale
	py := float64(v.YSize) - (y+v.yTranslate)*v.scale
	return px, py
}

// RenderTrials draws up to limit sampled mirrors, filled by outcome: green
// for hits, gray for misses, red for upward escapes.
func (v *View) RenderTrials(ts *TrialSet, tn float32, limit int) image.Image {
	if limit <= 0 || limit > ts.Len() {
		limit = ts.Len()
	}

	c := gg.NewContext(v.XSize, v.YSize)
	if limit == 0 {
		c.SetRGB(1, 1, 1)
		c.Clear()
		return c.Image()
	}
	v.computeScaleAndTranslation(ts, limit)
	c.SetRGB(1, 1, 1)
	c.Clear()

	for i := 0; i < limit; i++ {
		switch Classify(ts.XC[i], ts.YC[i], ts.R[i], tn) {
		case OutcomeHit:
			c.SetRGBA(0.2, 0.7, 0.3, 0.4)
		case OutcomeEscape:
			c.SetRGBA(0.8, 0.2, 0.2, 0.4)
		default:
			c.SetRGBA(0.5, 0.5, 0.5, 0.2)
		}
		cx, cy := v.project(float64(ts.XC[i]), float64(ts.YC[i]))
		c.DrawCircle(cx, cy, float64(ts.R[i])*v.scale)
		c.Fill()
	}

	// The plate along y = 0.
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(2)
	_, plateY := v.project(0, 0)
	c.DrawLine(0, plateY, float64(v.XSize), plateY)
	c.Stroke()

	// The beam from the origin out to the edge of the frame.
	c.SetRGB(0.9, 0.5, 0.1)
	c.SetLineWidth(1.5)
	x0, y0 := v.project(0, 0)
	x1, y1 := v.project(v.xMax, v.xMax*float64(tn))
	c.DrawLine(x0, y0, x1, y1)
	c.Stroke()

	return c.Image()
}
