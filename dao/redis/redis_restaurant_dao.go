package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"restaurant-hours/apperrors"
	"restaurant-hours/db"
	"restaurant-hours/models/restaurant"
)

// RESTAURANTS_CATALOG_KEY_V1 holds the whole catalog as an ordered JSON array.
const RESTAURANTS_CATALOG_KEY_V1 = "restaurants_catalog_v1"

// RESTAURANT_KEY_FORMAT_V1 indexes single records by lower-cased name.
const RESTAURANT_KEY_FORMAT_V1 = "restaurant_v1:%s"

// RedisRestaurantDAO stores the restaurant catalog in Redis.
type RedisRestaurantDAO struct {
	client db.RedisClient
	logger *zap.Logger
}

// NewRedisRestaurantDAO initializes a RedisRestaurantDAO with the Redis client.
func NewRedisRestaurantDAO(client db.RedisClient, logger *zap.Logger) *RedisRestaurantDAO {
	return &RedisRestaurantDAO{client: client, logger: logger.Named("RedisRestaurantDAO")}
}

func restaurantKey(name string) string {
	return fmt.Sprintf(RESTAURANT_KEY_FORMAT_V1, strings.ToLower(strings.TrimSpace(name)))
}

// ReplaceCatalog swaps the stored catalog for records, keeping their order.
// The catalog key is written first and is authoritative; per-name keys are an
// index that the next successful replace brings back in line.
func (dao *RedisRestaurantDAO) ReplaceCatalog(records []restaurant.Record) error {
	stale, err := dao.client.Keys(fmt.Sprintf(RESTAURANT_KEY_FORMAT_V1, "*"))
	if err != nil {
		return fmt.Errorf("failed to list restaurant keys: %w", err)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal restaurant catalog: %w", err)
	}
	if err := dao.client.Set(RESTAURANTS_CATALOG_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set restaurant catalog in redis: %w", err)
	}

	for _, r := range records {
		if err := dao.setRecord(r); err != nil {
			return err
		}
	}

	current := make(map[string]struct{}, len(records))
	for _, r := range records {
		current[restaurantKey(r.Name)] = struct{}{}
	}
	var removed []string
	for _, k := range stale {
		if _, ok := current[k]; !ok {
			removed = append(removed, k)
		}
	}
	if err := dao.client.Del(removed...); err != nil {
		return fmt.Errorf("failed to delete stale restaurants: %w", err)
	}

	dao.logger.Info("catalog replaced", zap.Int("restaurants", len(records)), zap.Int("removed", len(removed)))
	return nil
}

func (dao *RedisRestaurantDAO) setRecord(r restaurant.Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal restaurant %q: %w", r.Name, err)
	}
	if err := dao.client.Set(restaurantKey(r.Name), string(data)); err != nil {
		return fmt.Errorf("failed to set restaurant %q in redis: %w", r.Name, err)
	}
	dao.logger.Debug("restaurant stored", zap.String("restaurant", r.ToString()))
	return nil
}

// ListRestaurants returns the catalog in the order it was stored.
func (dao *RedisRestaurantDAO) ListRestaurants() ([]restaurant.Record, error) {
	str, err := dao.client.Get(RESTAURANTS_CATALOG_KEY_V1)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, apperrors.ErrCatalogEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant catalog from redis: %w", err)
	}

	var records []restaurant.Record
	if err := json.Unmarshal([]byte(str), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant catalog JSON: %w", err)
	}
	return records, nil
}

// GetRestaurant looks a record up by name, ignoring case.
func (dao *RedisRestaurantDAO) GetRestaurant(name string) (*restaurant.Record, error) {
	str, err := dao.client.Get(restaurantKey(name))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrRestaurantNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant from redis: %w", err)
	}

	var r restaurant.Record
	if err := json.Unmarshal([]byte(str), &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant JSON: %w", err)
	}
	return &r, nil
}
