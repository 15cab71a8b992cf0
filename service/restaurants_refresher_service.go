package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"restaurant-hours/api/feed"
	"restaurant-hours/dao/redis"
)

// RestaurantsRefresherService periodically reloads the feed into the catalog.
type RestaurantsRefresherService struct {
	restaurantDao *redis.RedisRestaurantDAO
	feed          feed.RestaurantFeed
	logger        *zap.Logger
}

// NewRestaurantsRefresherService constructs a new refresher with dependencies.
func NewRestaurantsRefresherService(
	restaurantDao *redis.RedisRestaurantDAO,
	restaurantFeed feed.RestaurantFeed,
	logger *zap.Logger,
) *RestaurantsRefresherService {
	return &RestaurantsRefresherService{
		restaurantDao: restaurantDao,
		feed:          restaurantFeed,
		logger:        logger.Named("RestaurantsRefresherService"),
	}
}

// StartPeriodicJob launches the background loop at the given interval. The
// loop exits when ctx is cancelled.
func (rr *RestaurantsRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go rr.startPeriodicJob(ctx, interval)
}

func (rr *RestaurantsRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			rr.logger.Info("periodic job stopped")
			return
		case <-ticker.C:
			rr.logger.Info("running periodic restaurants refresher job")
			if err := rr.RefreshRestaurants(ctx); err != nil {
				rr.logger.Error("refresh failed", zap.Error(err))
			}
		}
	}
}

// RefreshRestaurants fetches the feed and replaces the stored catalog. A
// failed fetch leaves the previous catalog in place.
func (rr *RestaurantsRefresherService) RefreshRestaurants(ctx context.Context) error {
	records, err := rr.feed.FetchRestaurants(ctx)
	if err != nil {
		return err
	}
	if err := rr.restaurantDao.ReplaceCatalog(records); err != nil {
		return err
	}
	rr.logger.Info("restaurants refreshed", zap.String("feed", rr.feed.Describe()), zap.Int("restaurants", len(records)))
	return nil
}
