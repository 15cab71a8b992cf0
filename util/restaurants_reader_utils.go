package util

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"restaurant-hours/apperrors"
	"restaurant-hours/models/restaurant"
)

const bannerLine = "**********************************************************"

// ReadRestaurantsFromCSV loads restaurant records from a headerless
// "name,schedule" CSV file on disk.
func ReadRestaurantsFromCSV(filePath string) ([]restaurant.Record, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file %q: %v", apperrors.ErrSourceUnavailable, filePath, err)
	}
	defer f.Close()

	records, err := ParseRestaurantsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read restaurants from %q: %w", filePath, err)
	}
	return records, nil
}

// ParseRestaurantsCSV decodes "name,schedule" rows in input order. Extra
// columns are ignored; rows with fewer than two fields are rejected.
func ParseRestaurantsCSV(r io.Reader) ([]restaurant.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []restaurant.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
		}
		if len(row) < 2 {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d field(s)", apperrors.ErrMalformedRecord, line, len(row))
		}
		records = append(records, restaurant.Record{Name: row[0], RawSchedule: row[1]})
	}
	return records, nil
}

// ReadRestaurantsFromJSON loads a JSON array of restaurant records from disk.
func ReadRestaurantsFromJSON(filePath string) ([]restaurant.Record, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read file %q: %v", apperrors.ErrSourceUnavailable, filePath, err)
	}
	var records []restaurant.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant records: %w", err)
	}
	return records, nil
}

// PrintOpenRestaurants writes the open-restaurants banner.
func PrintOpenRestaurants(w io.Writer, names []string) {
	fmt.Fprintln(w, bannerLine)
	if len(names) > 0 {
		fmt.Fprintln(w, "Following restaurants are open:")
	} else {
		fmt.Fprintln(w, "No restaurant open.")
	}
	fmt.Fprintln(w, strings.Join(names, "\n"))
	fmt.Fprintln(w, bannerLine)
}
