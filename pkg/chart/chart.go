// Package chart renders sweep results to image files. The output
// format follows the file extension; gonum/plot handles png, svg and
// pdf.
package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/voltlab/dcsim/pkg/analysis"
	"github.com/voltlab/dcsim/pkg/circuit"
)

// SweepCurrent plots total current against the swept voltage.
func SweepCurrent(points []analysis.Point, title, path string) error {
	return linePlot(points, title, "Total current (A)", "I total", path,
		func(r *circuit.Result) float64 { return r.TotalCurrent })
}

// SweepPower plots total power against the swept voltage.
func SweepPower(points []analysis.Point, title, path string) error {
	return linePlot(points, title, "Total power (W)", "P total", path,
		func(r *circuit.Result) float64 { return r.TotalPower })
}

func linePlot(points []analysis.Point, title, ylabel, series, path string, pick func(*circuit.Result) float64) error {
	if len(points) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Source voltage (V)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		xys = append(xys, plotter.XY{X: pt.Value, Y: pick(pt.Result)})
	}

	if err := plotutil.AddLinePoints(p, series, xys); err != nil {
		return fmt.Errorf("adding series: %w", err)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
