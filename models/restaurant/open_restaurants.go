package restaurant

import "restaurant-hours/schedule"

// Result is the outcome of evaluating a single record.
type Result struct {
	Name string
	Open bool
	Err  error
}

// OpenRestaurantsResponse is returned by GET /v1/restaurants/open.
type OpenRestaurantsResponse struct {
	At     string   `json:"at"`
	Open   []string `json:"open"`
	Errors []string `json:"errors,omitempty"`
}

// ScheduleResponse is returned by GET /v1/restaurants/{name}/schedule.
type ScheduleResponse struct {
	Name        string                   `json:"name"`
	RawSchedule string                   `json:"raw_schedule"`
	Schedule    *schedule.WeeklySchedule `json:"schedule"`
}

// RestaurantStatus is the verbose per-restaurant form of the open query.
type RestaurantStatus struct {
	Name   string `json:"name"`
	IsOpen bool   `json:"is_open"`
	Error  string `json:"error,omitempty"`
}

// VerboseOpenRestaurantsResponse is returned by GET /v1/restaurants/open?verbose=true.
type VerboseOpenRestaurantsResponse struct {
	At          string             `json:"at"`
	Restaurants []RestaurantStatus `json:"restaurants"`
}
