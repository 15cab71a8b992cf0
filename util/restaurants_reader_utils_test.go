package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-hours/apperrors"
	"restaurant-hours/models/restaurant"
)

func createTempFile(t *testing.T, pattern, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp(t.TempDir(), pattern)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tempFile.WriteString(content); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadRestaurantsFromCSV(t *testing.T) {
	// Arrange
	content := `"Kushi Tsuru","Mon-Sun 11:30 am - 9 pm"
"Naan 'N' Curry","Mon-Sun 11 am - 4 am"
Plain Name,Mon 9 am - 5 pm
`
	tempFile := createTempFile(t, "rest_hours*.csv", content)

	// Act
	records, err := ReadRestaurantsFromCSV(tempFile)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []restaurant.Record{
		{Name: "Kushi Tsuru", RawSchedule: "Mon-Sun 11:30 am - 9 pm"},
		{Name: "Naan 'N' Curry", RawSchedule: "Mon-Sun 11 am - 4 am"},
		{Name: "Plain Name", RawSchedule: "Mon 9 am - 5 pm"},
	}, records)
}

func TestReadRestaurantsFromCSV_Fixture(t *testing.T) {
	records, err := ReadRestaurantsFromCSV(filepath.Join("..", "resources", "rest_hours.csv"))

	require.NoError(t, err)
	assert.Len(t, records, 51)
	assert.Equal(t, "Kushi Tsuru", records[0].Name)
	assert.Equal(t, "Marrakech Moroccan Restaurant", records[len(records)-1].Name)
}

func TestReadRestaurantsFromCSV_FileNotFound(t *testing.T) {
	records, err := ReadRestaurantsFromCSV(filepath.Join(t.TempDir(), "unknown_file.csv"))

	assert.Nil(t, records)
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
}

func TestParseRestaurantsCSV_MalformedRow(t *testing.T) {
	records, err := ParseRestaurantsCSV(strings.NewReader("\"Good\",\"Mon 9 am - 5 pm\"\nOnlyAName\n"))

	assert.Nil(t, records)
	assert.ErrorIs(t, err, apperrors.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseRestaurantsCSV_ExtraColumnsIgnored(t *testing.T) {
	records, err := ParseRestaurantsCSV(strings.NewReader("A,Mon 9 am - 5 pm,ignored\n"))

	require.NoError(t, err)
	assert.Equal(t, []restaurant.Record{{Name: "A", RawSchedule: "Mon 9 am - 5 pm"}}, records)
}

func TestReadRestaurantsFromJSON(t *testing.T) {
	content := `[
		{"name": "Tres", "schedule": "Mon-Sun 11:30 am - 10 pm"},
		{"name": "Hanuri", "schedule": "Mon-Sun 11 am - 12 am"}
	]`
	tempFile := createTempFile(t, "restaurants*.json", content)

	records, err := ReadRestaurantsFromJSON(tempFile)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Hanuri", records[1].Name)
	assert.Equal(t, "Mon-Sun 11 am - 12 am", records[1].RawSchedule)
}

func TestReadRestaurantsFromJSON_Malformed(t *testing.T) {
	tempFile := createTempFile(t, "restaurants*.json", `{"invalid_json`)

	_, err := ReadRestaurantsFromJSON(tempFile)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrSourceUnavailable)
}

func TestPrintOpenRestaurants(t *testing.T) {
	var buf bytes.Buffer
	PrintOpenRestaurants(&buf, []string{"Tres", "Hanuri"})
	assert.Equal(t, bannerLine+"\nFollowing restaurants are open:\nTres\nHanuri\n"+bannerLine+"\n", buf.String())

	buf.Reset()
	PrintOpenRestaurants(&buf, nil)
	assert.Equal(t, bannerLine+"\nNo restaurant open.\n\n"+bannerLine+"\n", buf.String())
}
