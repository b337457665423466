package beam

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReportTruncatesHits(t *testing.T) {
	assert := assert.New(t)

	r := NewReport(Result{Trials: 10, Probability: 0.35})
	assert.Equal(3, r.Hits)

	r = NewReport(Result{Trials: 0, Probability: 0})
	assert.Equal(0, r.Hits)
}

func TestWriteText(t *testing.T) {
	assert := assert.New(t)

	r := Report{
		Peak:        123.456789,
		Probability: 0.25,
		Trials:      1000,
		Hits:        250,
		Avg:         100.5,
	}
	var buf bytes.Buffer
	assert.NoError(r.WriteText(&buf))

	out := buf.String()
	assert.Contains(out, "Peak performance")
	assert.Contains(out, "0.250000")
	assert.Contains(out, "1000")
	assert.Contains(out, "Average performance")
	assert.Equal(5, strings.Count(out, "\n"))
}

func TestWriteTextAbortNote(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(Report{Aborted: true}.WriteText(&buf))
	assert.Contains(buf.String(), "escaped upward")
}

func TestWriteJSONRoundTrip(t *testing.T) {
	assert := assert.New(t)

	want := Report{
		Peak:        50.25,
		Probability: 0.125,
		Trials:      4000,
		Hits:        500,
		Avg:         42.0,
		Aborted:     true,
	}
	var buf bytes.Buffer
	assert.NoError(want.WriteJSON(&buf))

	var got Report
	assert.NoError(json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(want, got)
}
