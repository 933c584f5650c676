// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when a chart is requested for an empty trace.
var ErrNoData = errors.New("report: no convergence data")

// Trace records the per-iteration Rayleigh estimates of a power iteration.
// Pass t.Observe to matrix.WithObserver.
type Trace struct {
	Estimates []float32
}

// Observe appends est. iter is 1-based and only used for ordering checks.
func (t *Trace) Observe(iter int, est float32) {
	if iter != len(t.Estimates)+1 {
		// a fresh run restarted the count
		t.Estimates = t.Estimates[:0]
	}
	t.Estimates = append(t.Estimates, est)
}

func (t *Trace) float64s() []float64 {
	out := make([]float64, len(t.Estimates))
	for i, v := range t.Estimates {
		out[i] = float64(v)
	}

	return out
}

// Chart renders the trace as an ASCII line chart.
func (t *Trace) Chart(caption string) (string, error) {
	if len(t.Estimates) == 0 {
		return "", ErrNoData
	}

	return asciigraph.Plot(t.float64s(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	), nil
}

// SavePNG writes the trace as a line plot. The format follows the file
// extension accepted by gonum/plot (png, svg, pdf, ...).
func (t *Trace) SavePNG(path, title string) error {
	if len(t.Estimates) == 0 {
		return ErrNoData
	}
	pts := make(plotter.XYs, len(t.Estimates))
	for i, v := range t.Estimates {
		pts[i].X = float64(i + 1)
		pts[i].Y = float64(v)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "Rayleigh estimate"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: line: %w", err)
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}
