package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Validate())
}

func TestValidateCatchesBadValues(t *testing.T) {
	assert := assert.New(t)

	hasField := func(errs []ValidationError, field string) bool {
		for _, e := range errs {
			if e.Field == field {
				return true
			}
		}
		return false
	}

	cfg := Default()
	cfg.Threads = 0
	cfg.Tries = 0
	cfg.Trials = -1
	cfg.BeamAngle = 90
	cfg.Ranges.Radius = Range{Min: 2.0, Max: 0.5}

	errs := cfg.Validate()
	assert.True(hasField(errs, "threads"))
	assert.True(hasField(errs, "tries"))
	assert.True(hasField(errs, "trials"))
	assert.True(hasField(errs, "beam_angle"))
	assert.True(hasField(errs, "ranges.radius"))
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := []byte("threads: 2\ntrials: 5000\nbeam_angle: 15\n")
	assert.NoError(os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	assert.NoError(err)
	assert.Equal(2, cfg.Threads)
	assert.Equal(5000, cfg.Trials)
	assert.Equal(15.0, cfg.BeamAngle)
	// Untouched fields keep their defaults.
	assert.Equal(10, cfg.Tries)
	assert.Equal(float32(0.5), cfg.Ranges.Radius.Min)
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "sim.yaml")
	assert.NoError(os.WriteFile(path, []byte("beam_angle: 120\n"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(err)
}

func TestSaveToFileRoundTrip(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "sim.yaml")
	want := Default()
	want.Threads = 3
	assert.NoError(SaveToFile(&want, path))

	got, err := LoadFromFile(path)
	assert.NoError(err)
	assert.Equal(want, *got)
}
