package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/BrandonW24/CS475spring2020/beam"
	"github.com/BrandonW24/CS475spring2020/beam/config"
)

var CLI struct {
	Config  string `help:"YAML config file with simulation settings." type:"path"`
	Seed    uint32 `help:"Fixed sampler seed for reproducible runs; 0 seeds from the wall clock."`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Run    RunCmd    `cmd:"" default:"withargs" help:"Run the benchmark and print the summary."`
	Sweep  SweepCmd  `cmd:"" help:"Estimate hit probability across a range of beam angles."`
	Render RenderCmd `cmd:"" help:"Render a sample of the simulated geometry to a PNG."`
}

func init() {
	formatter := &logrus.TextFormatter{}
	formatter.FullTimestamp = true
	formatter.TimestampFormat = time.RFC3339
	logrus.SetFormatter(formatter)
}

func loadConfig() (config.SimulationConfig, error) {
	cfg := config.Default()
	if CLI.Config != "" {
		loaded, err := config.LoadFromFile(CLI.Config)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	return cfg, nil
}

func newSampler() *beam.Sampler {
	seed := CLI.Seed
	if seed == 0 {
		seed = beam.TimeOfDaySeed()
	}
	logrus.Debugf("sampler seed: %d", seed)
	return beam.NewSampler(seed)
}

func sampleRanges(cfg config.SimulationConfig) beam.SampleRanges {
	return beam.SampleRanges{
		CenterX: beam.Range{Low: cfg.Ranges.CenterX.Min, High: cfg.Ranges.CenterX.Max},
		CenterY: beam.Range{Low: cfg.Ranges.CenterY.Min, High: cfg.Ranges.CenterY.Max},
		Radius:  beam.Range{Low: cfg.Ranges.Radius.Min, High: cfg.Ranges.Radius.Max},
	}
}

func saveImage(filename string, i image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, i)
}

type RunCmd struct {
	Threads *int     `help:"Worker pool size; overrides the config file."`
	Trials  *int     `help:"Trials per try; overrides the config file."`
	Tries   *int     `help:"Number of timed tries; overrides the config file."`
	Angle   *float64 `help:"Beam angle in degrees; overrides the config file."`
	JSON    bool     `help:"Emit the summary as JSON."`
	Plot    string   `help:"Write a per-try throughput bar chart to this PNG path." type:"path"`
}

func (c RunCmd) Run() error {
	if err := beam.CheckParallel(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if c.Threads != nil {
		cfg.Threads = *c.Threads
	}
	if c.Trials != nil {
		cfg.Trials = *c.Trials
	}
	if c.Tries != nil {
		cfg.Tries = *c.Tries
	}
	if c.Angle != nil {
		cfg.BeamAngle = *c.Angle
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %v", errs)
	}

	logrus.WithFields(logrus.Fields{
		"threads": cfg.Threads,
		"trials":  cfg.Trials,
		"tries":   cfg.Tries,
		"angle":   cfg.BeamAngle,
	}).Info("Starting Monte Carlo benchmark")

	start := time.Now()
	trials, err := beam.GenerateTrials(newSampler(), cfg.Trials, sampleRanges(cfg))
	if err != nil {
		return err
	}
	logrus.Debugf("trial generation took %v", time.Since(start))

	driver := beam.Driver{Threads: cfg.Threads, Tries: cfg.Tries}
	res := driver.Run(trials, beam.Slope(cfg.BeamAngle))
	if res.Aborted {
		logrus.Warn("a reflection escaped upward; tries after the abort were skipped")
	}

	if c.Plot != "" {
		if err := beam.PlotRates(res.Rates, cfg.Tries, c.Plot); err != nil {
			return fmt.Errorf("plotting rates: %w", err)
		}
		logrus.Infof("throughput chart written to %s", c.Plot)
	}

	report := beam.NewReport(res)
	if c.JSON {
		return report.WriteJSON(os.Stdout)
	}
	return report.WriteText(os.Stdout)
}

type SweepCmd struct {
	Min   float64  `default:"-60" help:"Lowest beam angle in degrees."`
	Max   float64  `default:"60" help:"Highest beam angle in degrees."`
	Steps int      `default:"13" help:"Number of evenly spaced angles to sample."`
	At    *float64 `help:"Also print the interpolated probability at this angle."`
}

func (c SweepCmd) Run() error {
	if err := beam.CheckParallel(); err != nil {
		return err
	}
	if c.Min <= -90 || c.Max >= 90 || c.Min > c.Max {
		return fmt.Errorf("sweep angles must satisfy -90 < min <= max < 90")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trials, err := beam.GenerateTrials(newSampler(), cfg.Trials, sampleRanges(cfg))
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"min":   c.Min,
		"max":   c.Max,
		"steps": c.Steps,
	}).Info("Sweeping beam angle")

	driver := beam.Driver{Threads: cfg.Threads, Tries: 1}
	sr := driver.Sweep(trials, c.Min, c.Max, c.Steps)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ANGLE\tPROBABILITY")
	for i := range sr.Angles {
		fmt.Fprintf(tw, "%.2f\t%.6f\n", sr.Angles[i], sr.Probs[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if c.At != nil {
		fmt.Printf("Interpolated probability at %.2f degrees: %.6f\n", *c.At, sr.ProbabilityAt(*c.At))
	}
	return nil
}

type RenderCmd struct {
	Out     string `default:"scene.png" help:"Output PNG path." type:"path"`
	Samples int    `default:"200" help:"Number of mirrors to draw."`
	Size    int    `default:"800" help:"Image width and height in pixels."`
}

func (c RenderCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trials, err := beam.GenerateTrials(newSampler(), c.Samples, sampleRanges(cfg))
	if err != nil {
		return err
	}

	view := beam.View{XSize: c.Size, YSize: c.Size}
	img := view.RenderTrials(trials, beam.Slope(cfg.BeamAngle), c.Samples)
	if err := saveImage(c.Out, img); err != nil {
		return err
	}
	logrus.Infof("scene written to %s", c.Out)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)
	if CLI.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if err := ctx.Run(); err != nil {
		logrus.Fatal(err)
	}
}
