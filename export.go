package main

import (
	"io"

	"github.com/parquet-go/parquet-go"
	log "github.com/sirupsen/logrus"
)

// PlotPoint is one exported point of a rendered plot.
type PlotPoint struct {
	Plot  string  `parquet:"plot,dict"`
	Index int64   `parquet:"index"`
	X     float64 `parquet:"x"`
	Y     float64 `parquet:"y"`
}

// parquetPresenter writes every point it is given as a parquet row.
type parquetPresenter struct {
	w    *parquet.GenericWriter[PlotPoint]
	rows int
}

func newParquetPresenter(w io.Writer) *parquetPresenter {
	return &parquetPresenter{
		w: parquet.NewGenericWriter[PlotPoint](w, parquet.Compression(&parquet.Snappy)),
	}
}

func (p *parquetPresenter) Render(plot *Plot) error {
	if err := checkPlot(plot); err != nil {
		return err
	}
	rows := make([]PlotPoint, len(plot.X))
	for i := range rows {
		rows[i] = PlotPoint{Plot: plot.Title, Index: int64(i), X: plot.X[i], Y: plot.Y[i]}
	}
	n, err := p.w.Write(rows)
	p.rows += n
	return err
}

func (p *parquetPresenter) Close() error {
	log.Debugf("Exported %d rows", p.rows)
	return p.w.Close()
}
