package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"restaurant-hours/api/feed"
	"restaurant-hours/config"
	"restaurant-hours/dao/redis"
	"restaurant-hours/models/restaurant"
	"restaurant-hours/schedule"
)

// BatchError collects the records skipped under the partial batch policy.
type BatchError struct {
	Failures []restaurant.Result
}

func (e *BatchError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = fmt.Sprintf("%q: %v", f.Name, f.Err)
	}
	return fmt.Sprintf("%d restaurant(s) skipped: %s", len(e.Failures), strings.Join(msgs, "; "))
}

func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

// RestaurantService answers open-restaurant queries.
type RestaurantService struct {
	parser        schedule.Parser
	batchPolicy   string
	feed          feed.RestaurantFeed
	restaurantDao *redis.RedisRestaurantDAO
	logger        *zap.Logger
}

// NewRestaurantService constructs a RestaurantService. restaurantDao may be
// nil when only feed-backed queries are needed.
func NewRestaurantService(
	parser schedule.Parser,
	batchPolicy string,
	restaurantFeed feed.RestaurantFeed,
	restaurantDao *redis.RedisRestaurantDAO,
	logger *zap.Logger) *RestaurantService {

	return &RestaurantService{
		parser:        parser,
		batchPolicy:   batchPolicy,
		feed:          restaurantFeed,
		restaurantDao: restaurantDao,
		logger:        logger.Named("RestaurantService"),
	}
}

func (rs *RestaurantService) failFast() bool {
	return rs.batchPolicy != config.BATCH_POLICY_PARTIAL
}

// ParseSchedule parses raw with the configured day-range policy.
func (rs *RestaurantService) ParseSchedule(raw string) (*schedule.WeeklySchedule, error) {
	return rs.parser.Parse(raw)
}

// EvaluateRestaurants parses and evaluates every record, in order, without
// stopping at failures.
func (rs *RestaurantService) EvaluateRestaurants(records []restaurant.Record, when time.Time) []restaurant.Result {
	results := make([]restaurant.Result, len(records))
	for i, r := range records {
		results[i] = restaurant.Result{Name: r.Name}
		ws, err := rs.parser.Parse(r.RawSchedule)
		if err != nil {
			results[i].Err = fmt.Errorf("failed to parse schedule of %q: %w", r.Name, err)
			continue
		}
		results[i].Open = schedule.IsOpenAt(ws, when)
	}
	return results
}

// OpenRestaurants returns the names of the records open at when, in input
// order. Under the fail-fast policy the first malformed schedule aborts the
// query; under the partial policy the open names are returned together with a
// *BatchError listing the skipped records.
func (rs *RestaurantService) OpenRestaurants(records []restaurant.Record, when time.Time) ([]string, error) {
	open := []string{}
	var failures []restaurant.Result

	for _, r := range records {
		ws, err := rs.parser.Parse(r.RawSchedule)
		if err != nil {
			err = fmt.Errorf("failed to parse schedule of %q: %w", r.Name, err)
			if rs.failFast() {
				rs.logger.Error("aborting open restaurants query", zap.String("restaurant", r.Name), zap.Error(err))
				return nil, err
			}
			rs.logger.Warn("skipping restaurant", zap.String("restaurant", r.Name), zap.Error(err))
			failures = append(failures, restaurant.Result{Name: r.Name, Err: err})
			continue
		}
		if schedule.IsOpenAt(ws, when) {
			open = append(open, r.Name)
		}
	}

	rs.logger.Debug("open restaurants evaluated",
		zap.Time("at", when), zap.Int("records", len(records)), zap.Int("open", len(open)))

	if len(failures) > 0 {
		return open, &BatchError{Failures: failures}
	}
	return open, nil
}

// OpenRestaurantsFromFeed loads the records from the configured feed first.
func (rs *RestaurantService) OpenRestaurantsFromFeed(ctx context.Context, when time.Time) ([]string, error) {
	records, err := rs.feed.FetchRestaurants(ctx)
	if err != nil {
		rs.logger.Error("failed to fetch restaurants", zap.String("feed", rs.feed.Describe()), zap.Error(err))
		return nil, err
	}
	return rs.OpenRestaurants(records, when)
}

// OpenRestaurantsFromCatalog evaluates the records stored in Redis.
func (rs *RestaurantService) OpenRestaurantsFromCatalog(when time.Time) ([]string, error) {
	records, err := rs.ListRestaurants()
	if err != nil {
		return nil, err
	}
	return rs.OpenRestaurants(records, when)
}

// ListRestaurants returns the stored catalog.
func (rs *RestaurantService) ListRestaurants() ([]restaurant.Record, error) {
	if rs.restaurantDao == nil {
		return nil, errors.New("restaurant catalog is not configured")
	}
	return rs.restaurantDao.ListRestaurants()
}

// GetSchedule parses the stored schedule of the named restaurant.
func (rs *RestaurantService) GetSchedule(name string) (*restaurant.ScheduleResponse, error) {
	if rs.restaurantDao == nil {
		return nil, errors.New("restaurant catalog is not configured")
	}
	r, err := rs.restaurantDao.GetRestaurant(name)
	if err != nil {
		return nil, err
	}
	ws, err := rs.parser.Parse(r.RawSchedule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule of %q: %w", r.Name, err)
	}
	return &restaurant.ScheduleResponse{Name: r.Name, RawSchedule: r.RawSchedule, Schedule: ws}, nil
}

// ParseSchedules parses every record honouring the batch policy.
func (rs *RestaurantService) ParseSchedules(records []restaurant.Record) ([]*schedule.WeeklySchedule, error) {
	out := make([]*schedule.WeeklySchedule, 0, len(records))
	var failures []restaurant.Result
	for _, r := range records {
		ws, err := rs.parser.Parse(r.RawSchedule)
		if err != nil {
			err = fmt.Errorf("failed to parse schedule of %q: %w", r.Name, err)
			if rs.failFast() {
				return nil, err
			}
			failures = append(failures, restaurant.Result{Name: r.Name, Err: err})
			continue
		}
		out = append(out, ws)
	}
	if len(failures) > 0 {
		return out, &BatchError{Failures: failures}
	}
	return out, nil
}
