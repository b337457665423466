package config

// SimulationConfig represents the complete configuration for a benchmark run.
type SimulationConfig struct {
	Threads   int     `yaml:"threads"`
	Trials    int     `yaml:"trials"`
	Tries     int     `yaml:"tries"`
	BeamAngle float64 `yaml:"beam_angle"` // degrees from vertical
	Ranges    Ranges  `yaml:"ranges"`
}

// Ranges holds the sampling intervals for mirror placement and size.
type Ranges struct {
	CenterX Range `yaml:"center_x"`
	CenterY Range `yaml:"center_y"`
	Radius  Range `yaml:"radius"`
}

type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// Default returns the reference configuration: 8 workers, one million trials,
// ten timed tries, a 30 degree beam and the standard mirror intervals.
func Default() SimulationConfig {
	return SimulationConfig{
		Threads:   8,
		Trials:    1_000_000,
		Tries:     10,
		BeamAngle: 30,
		Ranges: Ranges{
			CenterX: Range{Min: -1.0, Max: 1.0},
			CenterY: Range{Min: 0.0, Max: 2.0},
			Radius:  Range{Min: 0.5, Max: 2.0},
		},
	}
}
