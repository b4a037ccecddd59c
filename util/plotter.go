package util

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lindseystead/kelowna-resource-finder-sub001/hours"
	"github.com/lindseystead/kelowna-resource-finder-sub001/models"
)

// PlotOpenHoursHistogram generates an HTML bar chart of how many listings
// are open at each hour of the given weekday, based on their parsed hours
// text. Listings whose text cannot be parsed are left out of every bucket.
func PlotOpenHoursHistogram(resources []models.Resource, day time.Weekday) {
	counts := make([]opts.BarData, 24)
	labels := make([]string, 24)
	for h := 0; h < 24; h++ {
		labels[h] = fmt.Sprintf("%02d:00", h)
		open := 0
		for _, r := range resources {
			parsed := hours.Parse(r.Hours)
			now := hours.CivilTime{Weekday: day, Minutes: h * 60}
			if status := hours.EvaluateAt(parsed, now); status != nil && status.IsOpen {
				open++
			}
		}
		counts[h] = opts.BarData{Value: open}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Open Listings By Hour",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Open listings by hour",
			Subtitle: day.String(),
		}),
	)
	bar.SetXAxis(labels).AddSeries("open listings", counts)

	// Create an HTML file to render the chart.
	f, err := os.Create("open_hours_histogram.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Open hours histogram generated: open_hours_histogram.html")
}
