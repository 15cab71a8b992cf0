package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"restaurant-hours/cli"
	"restaurant-hours/config"
	"restaurant-hours/di"
	applog "restaurant-hours/logger"
	services "restaurant-hours/service"
	"restaurant-hours/util"
)

func main() {
	flags := pflag.NewFlagSet("restaurant-hours", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	file := flags.String("file", "", "CSV (or .json) file with restaurant records")
	at := flags.String("at", "", "query time as YYYY-MM-DD hh:mm:ss (default now)")
	serve := flags.Bool("serve", false, "run the HTTP API")
	chart := flags.Bool("chart", false, "render the weekly open-restaurants chart")
	flags.String("env", "", "environment: dev or prod")
	flags.String("chart-output", "", "chart HTML output path")
	flags.String("log-level", "", "log level")
	flags.Bool("wrap-day-ranges", false, "let day ranges such as Sat-Mon wrap around the week")
	flags.String("batch-policy", "", "fail_fast or partial")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	bindFlag(v, flags, "app.env", "env")
	bindFlag(v, flags, "source.path", "file")
	bindFlag(v, flags, "chart.output", "chart-output")
	bindFlag(v, flags, "log.level", "log-level")
	bindFlag(v, flags, "schedule.wrap_day_ranges", "wrap-day-ranges")
	bindFlag(v, flags, "query.batch_policy", "batch-policy")

	cfg, err := config.LoadWithViper(v, *configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := applog.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	container, err := di.NewContainer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize container", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *serve:
		err = runServer(ctx, container)
	case *chart:
		err = runChart(ctx, container)
	case *file != "" || *at != "":
		svc := container.RestaurantService
		if *file != "" {
			svc = container.FileQueryService(*file)
		}
		err = runQuery(ctx, svc, *at)
	default:
		err = runPrompt(ctx, container)
	}
	if err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}

// bindFlag binds a flag only when it was set, so unset flags do not shadow
// file or environment values.
func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	if flags.Changed(name) {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func runServer(ctx context.Context, container *di.Container) error {
	if err := container.RestaurantsRefresherService.RefreshRestaurants(ctx); err != nil {
		container.Logger.Warn("initial catalog refresh failed", zap.Error(err))
	}
	container.RestaurantsRefresherService.StartPeriodicJob(ctx, container.Config.Refresher.Interval)
	return container.RestaurantHoursHttpServer.Start(ctx)
}

func runChart(ctx context.Context, container *di.Container) error {
	records, err := container.RestaurantFeed.FetchRestaurants(ctx)
	if err != nil {
		return err
	}
	schedules, err := container.RestaurantService.ParseSchedules(records)
	var batchErr *services.BatchError
	if errors.As(err, &batchErr) {
		container.Logger.Warn("some schedules were skipped", zap.Error(err))
	} else if err != nil {
		return err
	}
	if err := util.PlotWeeklyOpenChart(container.Config.Chart.Output, schedules); err != nil {
		return err
	}
	container.Logger.Info("chart written", zap.String("path", container.Config.Chart.Output))
	return nil
}

func runQuery(ctx context.Context, svc *services.RestaurantService, at string) error {
	when := time.Now()
	if at != "" {
		parsed, err := time.ParseInLocation(config.QUERY_TIME_LAYOUT, at, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --at %q: %w", at, err)
		}
		when = parsed
	}
	return printOpen(ctx, svc, when)
}

func runPrompt(ctx context.Context, container *di.Container) error {
	prompt := cli.NewPrompt(os.Stdin, os.Stdout, time.Now)
	path, when, err := prompt.Run()
	if err != nil {
		return err
	}
	return printOpen(ctx, container.FileQueryService(path), when)
}

func printOpen(ctx context.Context, svc *services.RestaurantService, when time.Time) error {
	open, err := svc.OpenRestaurantsFromFeed(ctx, when)
	var batchErr *services.BatchError
	if err != nil && !errors.As(err, &batchErr) {
		return err
	}
	util.PrintOpenRestaurants(os.Stdout, open)
	if batchErr != nil {
		fmt.Fprintln(os.Stderr, batchErr)
	}
	return nil
}
