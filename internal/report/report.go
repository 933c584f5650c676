// SPDX-License-Identifier: MIT

// Package report renders spectra results for humans: matrices through gonum's
// formatter, key/value lines through lipgloss styles, and power-iteration
// convergence as an ASCII chart or a PNG line plot.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectra/matrix"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Summary is the result of one eigen run.
type Summary struct {
	Name          string
	Iterations    int
	Dominant      float32
	Trace         float32
	EigenValues   []float32
	InverseScale  float32
	ScaledInverse *matrix.Dense
}

// ToMat widens d into a float64 gonum matrix.
func ToMat(d *matrix.Dense) *mat.Dense {
	r, c := d.Shape()
	buf := make([]float64, 0, r*c)
	for _, v := range d.Data() {
		buf = append(buf, float64(v))
	}

	return mat.NewDense(r, c, buf)
}

// FormatMatrix renders d with every line after the first prefixed.
func FormatMatrix(d *matrix.Dense, prefix string) string {
	return fmt.Sprintf("%.4g", mat.Formatted(ToMat(d), mat.Prefix(prefix), mat.Squeeze()))
}

// KV renders one styled "label value" line.
func KV(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// Header renders a styled section title.
func Header(title string) string {
	return headerStyle.Render(title)
}

func formatValues(vs []float32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%.5g", v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Write prints s to w.
func Write(w io.Writer, s Summary) error {
	lines := []string{
		Header(fmt.Sprintf("spectra: %s (%d iterations)", s.Name, s.Iterations)),
		KV("dominant eigenvalue", fmt.Sprintf("%.5g", s.Dominant)),
		KV("trace", fmt.Sprintf("%.5g", s.Trace)),
		KV("eigenvalues", formatValues(s.EigenValues)),
	}
	if s.ScaledInverse != nil {
		label := fmt.Sprintf("inverse × %g", s.InverseScale)
		lines = append(lines, KV(label, FormatMatrix(s.ScaledInverse, strings.Repeat(" ", 22))))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))

	return err
}
