package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"
)

type Scale int

const (
	ScaleLinear Scale = iota
	ScaleLog
)

func (s Scale) String() string {
	if s == ScaleLog {
		return "log"
	}
	return "value"
}

// Plot is a single labeled 2D curve.
type Plot struct {
	X, Y   []float64
	Title  string
	XLabel string
	YLabel string
	XScale Scale
	Grid   bool
}

type Presenter interface {
	Render(p *Plot) error
	Close() error
}

// chartPresenter collects every plot as a line chart on one echarts page and
// writes the page when closed.
type chartPresenter struct {
	w    io.Writer
	page *components.Page
	n    int
}

func newChartPresenter(w io.Writer, pageTitle string) *chartPresenter {
	page := components.NewPage()
	page.PageTitle = pageTitle
	return &chartPresenter{w: w, page: page}
}

func checkPlot(p *Plot) error {
	if len(p.X) != len(p.Y) {
		return fmt.Errorf("plot %q: %d x values for %d y values", p.Title, len(p.X), len(p.Y))
	}
	return nil
}

func (c *chartPresenter) Render(p *Plot) error {
	if err := checkPlot(p); err != nil {
		return err
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: p.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      p.XLabel,
			Type:      p.XScale.String(),
			SplitLine: &opts.SplitLine{Show: p.Grid},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      p.YLabel,
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: p.Grid},
		}),
	)

	data := make([]opts.LineData, 0, len(p.X))
	for i := 0; i < len(p.X); i++ {
		// A log axis has no place for x <= 0, the DC bin is dropped.
		if p.XScale == ScaleLog && p.X[i] <= 0 {
			continue
		}
		data = append(data, opts.LineData{Value: []interface{}{p.X[i], p.Y[i]}})
	}
	line.AddSeries(p.Title, data)
	c.page.AddCharts(line)
	c.n++
	log.Debugf("Chart %q: %d points", p.Title, len(data))
	return nil
}

func (c *chartPresenter) Close() error {
	log.Tracef("Rendering page with %d charts", c.n)
	return c.page.Render(c.w)
}

type multiPresenter []Presenter

func (m multiPresenter) Render(p *Plot) error {
	for _, presenter := range m {
		if err := presenter.Render(p); err != nil {
			return err
		}
	}
	return nil
}

func (m multiPresenter) Close() error {
	var errs []error
	for _, presenter := range m {
		if err := presenter.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
