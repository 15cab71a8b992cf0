package apperrors

import "errors"

var (
	// ErrSourceUnavailable means the restaurant record source could not be read.
	ErrSourceUnavailable = errors.New("restaurant source unavailable")
	// ErrMalformedRecord means a source row lacked the name or schedule field.
	ErrMalformedRecord = errors.New("malformed restaurant record")
	// ErrRestaurantNotFound means no catalog entry matched the requested name.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrCatalogEmpty means the catalog has not been loaded yet.
	ErrCatalogEmpty = errors.New("restaurant catalog not loaded")
)
