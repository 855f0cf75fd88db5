// Package report renders the inputs and outputs of a kriging run as
// fixed-width console tables.
package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"

	"simplekrige/internal/models"
	"simplekrige/pkg/kernel"
	"simplekrige/pkg/spatial"
)

// Reporter writes tables to an output stream.
type Reporter struct {
	w io.Writer
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Parameters prints the covariance parameters and the process mean.
func (r *Reporter) Parameters(mean float64, p kernel.Parameters) {
	fmt.Fprintf(r.w, "Covariance parameters:\n")
	fmt.Fprintf(r.w, "======================\n")
	fmt.Fprintf(r.w, "Mean:       %10.4f\n", mean)
	fmt.Fprintf(r.w, "Sill:       %10.4f\n", p.Sill)
	fmt.Fprintf(r.w, "Range:      %10.4f\n", p.Range)
	fmt.Fprintf(r.w, "Smoothness: %10.4f\n", p.Smoothness)
	fmt.Fprintf(r.w, "Nugget:     %10.4f\n\n", p.Nugget)
}

// Observations prints the observation table followed by summary
// statistics of the values and the closest pair of locations.
func (r *Reporter) Observations(obs []spatial.Observation) {
	fmt.Fprintf(r.w, "Observations (%d):\n", len(obs))
	fmt.Fprintf(r.w, "%5s %12s %12s %12s\n", "#", "x", "y", "value")
	locs, values := spatial.Split(obs)
	for i, o := range obs {
		fmt.Fprintf(r.w, "%5d %12.4f %12.4f %12.4f\n", i, o.Loc.X, o.Loc.Y, o.Value)
	}
	if len(obs) > 1 {
		fmt.Fprintf(r.w, "Sample mean: %.4f  stddev: %.4f  min separation: %.4f\n",
			stat.Mean(values, nil), stat.StdDev(values, nil), spatial.MinSeparation(locs))
	}
	fmt.Fprintln(r.w)
}

// Result prints a single prediction.
func (r *Reporter) Result(target spatial.Location, res models.Result) {
	fmt.Fprintf(r.w, "Target (%.4f, %.4f): prediction %.6f  MSPE %.6f%s\n",
		target.X, target.Y, res.Prediction, res.MSPE, unstableNote(res))
}

// Results prints a table of grid predictions.
func (r *Reporter) Results(preds []models.GridPrediction) {
	fmt.Fprintf(r.w, "Predictions (%d):\n", len(preds))
	fmt.Fprintf(r.w, "%12s %12s %14s %14s\n", "x", "y", "prediction", "mspe")
	for _, p := range preds {
		fmt.Fprintf(r.w, "%12.4f %12.4f %14.6f %14.6f%s\n",
			p.Target.X, p.Target.Y, p.Result.Prediction, p.Result.MSPE, unstableNote(p.Result))
	}
	fmt.Fprintln(r.w)
}

func unstableNote(res models.Result) string {
	if res.Unstable {
		return "  [unstable solve]"
	}
	return ""
}
