// Public domain.

package vpprog

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/soniakeys/varphot/internal/series"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(w io.Writer, title string, headers []string, rows [][]string, aligns []columnAlignment) {
	columns := len(headers)
	if columns == 0 {
		return
	}
	if title != "" {
		fmt.Fprintln(w, title)
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)
	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}
	configs := make([]table.ColumnConfig, columns)
	for i := range configs {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft}
	}
	tw.SetColumnConfigs(configs)
	fmt.Fprintln(w, tw.Render())
}

func num(v float64) string { return fmt.Sprintf("%.4f", v) }

// magStats prints max and min of raw and smoothed magnitudes, and the
// deviation of raw from smoothed.
func magStats(w io.Writer, title string, mags, smoothed []float64) {
	raw := series.Summarize(mags)
	sm := series.Summarize(smoothed)
	dev := series.Deviations(mags, smoothed)
	renderTable(w, title,
		[]string{"Statistic", "Magnitude"},
		[][]string{
			{"Max", num(raw.Max)},
			{"Min", num(raw.Min)},
			{"Smoothed max", num(sm.Max)},
			{"Smoothed min", num(sm.Min)},
			{"Smoothed median", num(sm.Median)},
			{"Average deviation", num(dev.Mean)},
			{"Standard deviation", num(dev.StdDev)},
		},
		[]columnAlignment{alignLeft, alignRight})
}

// summaryStats prints the median and mean of a series and their
// difference.
func summaryStats(w io.Writer, title, unit string, x []float64) series.Summary {
	s := series.Summarize(x)
	renderTable(w, title,
		[]string{"Statistic", unit},
		[][]string{
			{"Points", fmt.Sprint(s.N)},
			{"Median", num(s.Median)},
			{"Average", num(s.Mean)},
			{"Average - median", num(s.MeanMedianDiff)},
			{"Max", num(s.Max)},
			{"Min", num(s.Min)},
		},
		[]columnAlignment{alignLeft, alignRight})
	return s
}
