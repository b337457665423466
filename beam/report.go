package beam

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report holds the summary numbers printed after a run.
type Report struct {
	Peak        float64 `json:"peak_megatrials_per_sec"`
	Probability float32 `json:"probability"`
	Trials      int     `json:"trials"`
	Hits        int     `json:"hits"`
	Avg         float64 `json:"avg_megatrials_per_sec"`
	Aborted     bool    `json:"aborted"`
}

// NewReport derives the printable summary from a driver result. The hit count
// is re-derived from the probability and truncated toward zero.
func NewReport(res Result) Report {
	return Report{
		Peak:        res.Peak,
		Probability: res.Probability,
		Trials:      res.Trials,
		Hits:        int(float32(res.Trials) * res.Probability),
		Avg:         res.Avg,
		Aborted:     res.Aborted,
	}
}

// WriteText prints the summary as human-readable lines: peak rate, hit
// probability, trial count, hit count, average rate.
func (r Report) WriteText(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("Peak performance    : %.6f megatrials/sec", r.Peak),
		fmt.Sprintf("Hit probability     : %.6f", r.Probability),
		fmt.Sprintf("Trials              : %d", r.Trials),
		fmt.Sprintf("Hits                : %d", r.Hits),
		fmt.Sprintf("Average performance : %.6f megatrials/sec", r.Avg),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if r.Aborted {
		if _, err := fmt.Fprintln(w, "Note: a reflection escaped upward; remaining tries were skipped"); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the summary as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
