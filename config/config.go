package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ENV_PROD = "prod"
	ENV_DEV  = "dev"

	BATCH_POLICY_FAIL_FAST = "fail_fast"
	BATCH_POLICY_PARTIAL   = "partial"
)

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const REST_HOURS_RESOURCE = "rest_hours.csv"
const REST_HOURS_TESTS_RESOURCE = "rest_hours_tests.csv"

// QUERY_TIME_LAYOUT is the datetime format accepted from users.
const QUERY_TIME_LAYOUT = "2006-01-02 15:04:05"

// Config is the application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Source    SourceConfig    `mapstructure:"source"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Server    ServerConfig    `mapstructure:"server"`
	Refresher RefresherConfig `mapstructure:"refresher"`
	Schedule  ScheduleConfig  `mapstructure:"schedule"`
	Query     QueryConfig     `mapstructure:"query"`
	Chart     ChartConfig     `mapstructure:"chart"`
	Log       LogConfig       `mapstructure:"log"`
}

type AppConfig struct {
	Env string `mapstructure:"env" validate:"oneof=prod dev"`
}

// SourceConfig selects the restaurant record source. A non-empty URL wins
// over the file path.
type SourceConfig struct {
	Path string `mapstructure:"path" validate:"required_without=URL"`
	URL  string `mapstructure:"url" validate:"omitempty,url"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

type RefresherConfig struct {
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`
}

type ScheduleConfig struct {
	WrapDayRanges bool `mapstructure:"wrap_day_ranges"`
}

type QueryConfig struct {
	BatchPolicy string `mapstructure:"batch_policy" validate:"oneof=fail_fast partial"`
}

type ChartConfig struct {
	Output string `mapstructure:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Addr is the listen address of the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.env", ENV_DEV)

	v.SetDefault("source.path", GetResourcePath(REST_HOURS_RESOURCE))
	v.SetDefault("source.url", "")

	v.SetDefault("redis.addr", "redis:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("server.port", 8080)

	v.SetDefault("refresher.interval", "60m")

	v.SetDefault("schedule.wrap_day_ranges", false)

	v.SetDefault("query.batch_policy", BATCH_POLICY_FAIL_FAST)

	v.SetDefault("chart.output", "open_restaurants_chart.html")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads configuration from defaults, an optional YAML file and RH_*
// environment variables, in increasing order of precedence.
func Load(path string) (*Config, error) {
	return LoadWithViper(viper.New(), path)
}

// LoadWithViper is Load on a caller-supplied viper instance, so command-line
// flags bound to v take precedence over everything else.
func LoadWithViper(v *viper.Viper, path string) (*Config, error) {
	// A local .env file, when present, feeds the RH_* variables.
	godotenv.Load()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("RH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks the settings that cannot be defaulted sensibly.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// GetResourcePath returns the path of a file shipped under resources/.
func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
