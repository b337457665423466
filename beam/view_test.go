package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTrialsImageSize(t *testing.T) {
	assert := assert.New(t)

	ts := makeTrials(t, 8, 50)
	view := View{XSize: 120, YSize: 80}
	img := view.RenderTrials(ts, Slope(30), 50)

	bounds := img.Bounds()
	assert.Equal(120, bounds.Dx())
	assert.Equal(80, bounds.Dy())
}

func TestRenderTrialsLimitClamped(t *testing.T) {
	assert := assert.New(t)

	ts := makeTrials(t, 9, 10)
	view := View{XSize: 64, YSize: 64}
	// Asking for more mirrors than exist draws them all.
	img := view.RenderTrials(ts, Slope(30), 1000)
	assert.Equal(64, img.Bounds().Dx())
}
