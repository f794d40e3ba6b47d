package services

import (
	"fmt"
	"io"

	"budgetbuddy/internal/models"

	"github.com/wcharczuk/go-chart/v2"
)

const uncategorizedLabel = "Uncategorized"

type chartRenderer struct {
	width  int
	height int
}

func NewChartRenderer() ChartRendererInterface {
	return &chartRenderer{
		width:  800,
		height: 800,
	}
}

// RenderCategorySpending writes a PNG pie chart of expense totals. An empty
// report renders a single placeholder slice.
func (r *chartRenderer) RenderCategorySpending(w io.Writer, rows []models.CategorySpending) error {
	values := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		if !row.Total.IsPositive() {
			continue
		}

		label := uncategorizedLabel
		if row.CategoryName != nil {
			label = *row.CategoryName
		}

		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s", label, row.Total.StringFixed(models.AmountScale)),
			Value: row.Total.InexactFloat64(),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}

	if len(values) == 0 {
		values = append(values, chart.Value{Label: "No spending", Value: 1})
	}

	pie := chart.PieChart{
		Title:  "Spending by category",
		Width:  r.width,
		Height: r.height,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render category spending chart: %w", err)
	}
	return nil
}
