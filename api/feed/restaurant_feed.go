package feed

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"restaurant-hours/api"
	"restaurant-hours/apperrors"
	"restaurant-hours/models/restaurant"
	"restaurant-hours/util"
)

// RestaurantFeed supplies the ordered restaurant records.
type RestaurantFeed interface {
	FetchRestaurants(ctx context.Context) ([]restaurant.Record, error)
	Describe() string
}

func isJSON(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}

// FileRestaurantFeed reads records from a CSV (or .json) file on disk.
type FileRestaurantFeed struct {
	Path string
}

func NewFileRestaurantFeed(path string) *FileRestaurantFeed {
	return &FileRestaurantFeed{Path: path}
}

func (f *FileRestaurantFeed) FetchRestaurants(ctx context.Context) ([]restaurant.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if isJSON(f.Path) {
		return util.ReadRestaurantsFromJSON(f.Path)
	}
	return util.ReadRestaurantsFromCSV(f.Path)
}

func (f *FileRestaurantFeed) Describe() string {
	return "file:" + f.Path
}

// HTTPRestaurantFeed downloads the same formats through api.HTTPClient.
type HTTPRestaurantFeed struct {
	client   *api.HTTPClient
	endpoint string
}

func NewHTTPRestaurantFeed(client *api.HTTPClient, endpoint string) *HTTPRestaurantFeed {
	return &HTTPRestaurantFeed{client: client, endpoint: endpoint}
}

func (f *HTTPRestaurantFeed) FetchRestaurants(ctx context.Context) ([]restaurant.Record, error) {
	if isJSON(f.endpoint) {
		var records []restaurant.Record
		if err := f.client.Request(ctx, "GET", f.endpoint, nil, nil, &records); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrSourceUnavailable, f.Describe(), err)
		}
		return records, nil
	}

	body, err := f.client.Fetch(ctx, f.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrSourceUnavailable, f.Describe(), err)
	}
	return util.ParseRestaurantsCSV(bytes.NewReader(body))
}

func (f *HTTPRestaurantFeed) Describe() string {
	return f.client.BaseURL + f.endpoint
}
