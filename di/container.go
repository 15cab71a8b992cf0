package di

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"restaurant-hours/api"
	"restaurant-hours/api/feed"
	"restaurant-hours/config"
	"restaurant-hours/dao/redis"
	"restaurant-hours/db"
	"restaurant-hours/schedule"
	"restaurant-hours/server"
	"restaurant-hours/server/handlers"
	services "restaurant-hours/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                      *config.Config
	Logger                      *zap.Logger
	Parser                      schedule.Parser
	RedisClient                 db.RedisClient
	RedisRestaurantDao          *redis.RedisRestaurantDAO
	RestaurantFeed              feed.RestaurantFeed
	RestaurantService           *services.RestaurantService
	RestaurantHandler           *handlers.RestaurantHandler
	MuxRouter                   *mux.Router
	Router                      *server.Router
	RestaurantHoursHttpServer   *server.RestaurantHoursHttpServer
	RestaurantsRefresherService *services.RestaurantsRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	logger.Info("initializing container", zap.String("env", cfg.App.Env))
	ctx := context.Background()

	// Initialize Redis client: a real server in prod, in-memory otherwise
	var redisClient db.RedisClient
	if cfg.App.Env == config.ENV_PROD {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisClient = db.NewGoRedisClient(ctx, redisInternalClient, logger)
		if err := redisClient.Ping(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
		}
	} else {
		logger.Info("using in-memory redis client")
		redisClient = db.NewMockRedisClient(ctx)
	}

	// Initialize Redis Restaurant DAO
	redisRestaurantDao := redis.NewRedisRestaurantDAO(redisClient, logger)

	// Initialize the record source
	var restaurantFeed feed.RestaurantFeed
	if cfg.Source.URL != "" {
		restaurantFeed = feed.NewHTTPRestaurantFeed(api.NewHTTPClient(""), cfg.Source.URL)
	} else {
		restaurantFeed = feed.NewFileRestaurantFeed(cfg.Source.Path)
	}
	logger.Info("restaurant feed selected", zap.String("feed", restaurantFeed.Describe()))

	parser := schedule.Parser{WrapDayRanges: cfg.Schedule.WrapDayRanges}

	// Initialize service layer
	restaurantService := services.NewRestaurantService(parser, cfg.Query.BatchPolicy, restaurantFeed, redisRestaurantDao, logger)

	// Initialize restaurant handler
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, time.Now, logger)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(restaurantHandler, muxRouter)

	// Initialize http server
	restaurantHoursHttpServer := server.NewRestaurantHoursHttpServer(router, muxRouter, cfg.Server.Addr(), logger)

	restaurantsRefresherService := services.NewRestaurantsRefresherService(redisRestaurantDao, restaurantFeed, logger)

	return &Container{
		Config:                      cfg,
		Logger:                      logger,
		Parser:                      parser,
		RedisClient:                 redisClient,
		RedisRestaurantDao:          redisRestaurantDao,
		RestaurantFeed:              restaurantFeed,
		RestaurantService:           restaurantService,
		RestaurantHandler:           restaurantHandler,
		MuxRouter:                   muxRouter,
		Router:                      router,
		RestaurantHoursHttpServer:   restaurantHoursHttpServer,
		RestaurantsRefresherService: restaurantsRefresherService,
	}, nil
}

// FileQueryService returns a service that reads records from path instead of
// the configured source.
func (c *Container) FileQueryService(path string) *services.RestaurantService {
	return services.NewRestaurantService(c.Parser, c.Config.Query.BatchPolicy, feed.NewFileRestaurantFeed(path), c.RedisRestaurantDao, c.Logger)
}
