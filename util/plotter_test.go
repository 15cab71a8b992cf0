package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-hours/schedule"
)

func mustParse(t *testing.T, raw string) *schedule.WeeklySchedule {
	t.Helper()
	ws, err := schedule.ParseSchedule(raw)
	require.NoError(t, err)
	return ws
}

func TestWeeklyOpenCounts(t *testing.T) {
	schedules := []*schedule.WeeklySchedule{
		mustParse(t, "Mon-Fri 9 am - 5 pm"),
		mustParse(t, "Mon 10 pm - 2 am"),
	}

	counts := WeeklyOpenCounts(schedules)

	assert.Equal(t, 1, counts[schedule.Monday][1])
	assert.Equal(t, 0, counts[schedule.Monday][3])
	assert.Equal(t, 1, counts[schedule.Monday][9])
	assert.Equal(t, 1, counts[schedule.Friday][17])
	assert.Equal(t, 0, counts[schedule.Friday][18])
	assert.Equal(t, 1, counts[schedule.Monday][23])
	assert.Equal(t, 0, counts[schedule.Tuesday][1])
	assert.Equal(t, 0, counts[schedule.Sunday][12])
}

func TestRenderWeeklyOpenChart(t *testing.T) {
	var buf bytes.Buffer

	err := RenderWeeklyOpenChart(&buf, []*schedule.WeeklySchedule{mustParse(t, "Mon-Sun 11 am - 10 pm")})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Open restaurants per hour")
	assert.Contains(t, buf.String(), "echarts")
}

func TestPlotWeeklyOpenChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")

	require.NoError(t, PlotWeeklyOpenChart(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
