package beam

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotRates saves a bar chart of the throughput observed in each try. Tries
// skipped after an abort plot as zero bars.
func PlotRates(rates []float64, tries int, path string) error {
	p := plot.New()
	p.Title.Text = "Throughput per try"
	p.X.Label.Text = "Try"
	p.Y.Label.Text = "Megatrials/sec"

	vals := make(plotter.Values, tries)
	copy(vals, rates)

	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)

	return p.Save(font.Length(400), font.Length(300), path)
}
