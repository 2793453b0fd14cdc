package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-manager/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var chartBorderStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawUsageTable renders the current-month usage ranking
func DrawUsageTable(rows []model.UsageRow, highlight string) {
	tw := table.Table{}
	tw.SetTitle("%s", HighlightColor(highlight).Sprint("Top Usage by Service (Current Month)"))
	tw.AppendHeader(table.Row{"Service", "Amount", "Unit"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.Service, fmt.Sprintf("%.2f", row.Amount), row.Unit})
	}
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}

// DrawUsageChart renders the same ranking as a bar chart, one bar per service
func DrawUsageChart(rows []model.UsageRow) {
	if len(rows) == 0 {
		return
	}

	bc := barchart.New(130, 20)
	indexedColors := assignRankedColors(rows)

	for idx, row := range rows {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %.2f %s", row.Service, row.Amount, row.Unit),
			Values: []barchart.BarValue{
				{
					Value: row.Amount,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, chartBorderStyle.Render(bc.View())))
}

func assignRankedColors(rows []model.UsageRow) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type amountWithIndex struct {
		index int
		value float64
	}

	toSort := make([]amountWithIndex, len(rows))
	for i, row := range rows {
		toSort[i] = amountWithIndex{index: i, value: row.Amount}
	}

	sort.Slice(toSort, func(i, j int) bool {
		return toSort[i].value > toSort[j].value
	})

	resultColors := make([]string, len(rows))
	for rank, sorted := range toSort {
		if rank < len(palette) {
			resultColors[sorted.index] = palette[rank]
		} else {
			resultColors[sorted.index] = palette[len(palette)-1]
		}
	}

	return resultColors
}
