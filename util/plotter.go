package util

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"restaurant-hours/schedule"
)

const hoursPerDay = 24

// 2019-04-01 is a Monday; every weekday of that week is sampled.
var referenceMonday = time.Date(2019, time.April, 1, 0, 0, 0, 0, time.UTC)

// WeeklyOpenCounts samples every schedule at the top of each hour of a
// reference week and counts how many are open.
func WeeklyOpenCounts(schedules []*schedule.WeeklySchedule) [schedule.DaysPerWeek][hoursPerDay]int {
	var counts [schedule.DaysPerWeek][hoursPerDay]int
	for d := 0; d < schedule.DaysPerWeek; d++ {
		for h := 0; h < hoursPerDay; h++ {
			when := referenceMonday.AddDate(0, 0, d).Add(time.Duration(h) * time.Hour)
			for _, ws := range schedules {
				if schedule.IsOpenAt(ws, when) {
					counts[d][h]++
				}
			}
		}
	}
	return counts
}

// RenderWeeklyOpenChart renders one line per weekday with the number of open
// restaurants for each hour.
func RenderWeeklyOpenChart(w io.Writer, schedules []*schedule.WeeklySchedule) error {
	counts := WeeklyOpenCounts(schedules)

	hours := make([]string, hoursPerDay)
	for h := range hours {
		hours[h] = fmt.Sprintf("%02d:00", h)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Open Restaurants",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Open restaurants per hour",
			Subtitle: fmt.Sprintf("%d restaurants", len(schedules)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(hours)

	for d := 0; d < schedule.DaysPerWeek; d++ {
		data := make([]opts.LineData, hoursPerDay)
		for h := 0; h < hoursPerDay; h++ {
			data[h] = opts.LineData{Value: counts[d][h]}
		}
		line.AddSeries(schedule.Weekday(d).String(), data)
	}

	return line.Render(w)
}

// PlotWeeklyOpenChart writes the weekly chart to an HTML file.
func PlotWeeklyOpenChart(path string, schedules []*schedule.WeeklySchedule) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file %q: %w", path, err)
	}
	defer f.Close()

	if err := RenderWeeklyOpenChart(f, schedules); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
