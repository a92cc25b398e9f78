// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// series is one labelled point cloud on a factor map.
type series struct {
	name   string
	coords matrix.Reader[float64]
	prefix string // point labels are prefix+index
	shape  draw.GlyphDrawer
}

// factorMap scatters the first two columns of every series. A single-axis
// series is drawn on y = 0.
func factorMap(title string, ss ...series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "axis 1"
	p.Y.Label.Text = "axis 2"
	p.Add(plotter.NewGrid())

	for _, s := range ss {
		n := s.coords.Rows()
		xys := make(plotter.XYs, n)
		labels := make([]string, n)
		for i := 0; i < n; i++ {
			x, err := s.coords.At(i, 0)
			if err != nil {
				return nil, err
			}
			xys[i].X = x
			if s.coords.Cols() > 1 {
				if xys[i].Y, err = s.coords.At(i, 1); err != nil {
					return nil, err
				}
			}
			labels[i] = s.prefix + strconv.Itoa(i)
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("scatter %s: %w", s.name, err)
		}
		if s.shape != nil {
			sc.GlyphStyle.Shape = s.shape
		}
		lb, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return nil, fmt.Errorf("labels %s: %w", s.name, err)
		}
		p.Add(sc, lb)
		p.Legend.Add(s.name, sc)
	}

	return p, nil
}

// savePlot renders p to path; the format follows the file extension.
func (a *app) savePlot(p *plot.Plot, path string) error {
	w := vg.Length(a.cfg.Plot.Width) * vg.Centimeter
	h := vg.Length(a.cfg.Plot.Height) * vg.Centimeter
	if err := p.Save(w, h, path); err != nil {
		return err
	}
	a.log.Info("plot written", "path", path)

	return nil
}
