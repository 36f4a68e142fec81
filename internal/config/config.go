package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderMapbox = "mapbox"
	ProviderGoogle = "google"
)

type Config struct {
	Server   ServerConfig
	Provider string
	Mapbox   MapboxConfig
	Google   GoogleConfig
	Search   SearchConfig
	Report   ReportConfig
	Redis    RedisConfig
	History  HistoryConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type MapboxConfig struct {
	AccessToken    string
	BaseURL        string
	RequestTimeout int // seconds
}

type GoogleConfig struct {
	APIKey         string
	RateLimit      int
	RequestTimeout int // seconds
}

type SearchConfig struct {
	EnableRouting      bool
	DefaultLimit       int
	MaxLimit           int
	RoutingConcurrency int
}

type ReportConfig struct {
	StaticDir     string
	Layout        string
	Title         string
	NameMaxChars  int
	FixedFilename string
	// Retention of zero keeps reports forever.
	Retention       time.Duration
	CleanupInterval time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type HistoryConfig struct {
	MaxEntries       int
	GeohashPrecision uint
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type CORSConfig struct {
	AllowOrigins string
}

type LogConfig struct {
	Level string
}

// Load reads .env (if present) and the process environment. A missing .env
// is not an error; every key has a default except the upstream credential.
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Provider: strings.ToLower(strings.TrimSpace(v.GetString("PROVIDER"))),
		Mapbox: MapboxConfig{
			AccessToken:    strings.TrimSpace(v.GetString("MAPBOX_ACCESS_TOKEN")),
			BaseURL:        strings.TrimRight(v.GetString("MAPBOX_BASE_URL"), "/"),
			RequestTimeout: v.GetInt("MAPBOX_REQUEST_TIMEOUT"),
		},
		Google: GoogleConfig{
			APIKey:         strings.TrimSpace(v.GetString("GOOGLE_MAPS_API_KEY")),
			RateLimit:      v.GetInt("GOOGLE_MAPS_RATE_LIMIT"),
			RequestTimeout: v.GetInt("GOOGLE_MAPS_REQUEST_TIMEOUT"),
		},
		Search: SearchConfig{
			EnableRouting:      v.GetBool("SEARCH_ENABLE_ROUTING"),
			DefaultLimit:       v.GetInt("SEARCH_DEFAULT_LIMIT"),
			MaxLimit:           v.GetInt("SEARCH_MAX_LIMIT"),
			RoutingConcurrency: v.GetInt("SEARCH_ROUTING_CONCURRENCY"),
		},
		Report: ReportConfig{
			StaticDir:       v.GetString("REPORT_STATIC_DIR"),
			Layout:          strings.ToLower(v.GetString("REPORT_LAYOUT")),
			Title:           v.GetString("REPORT_TITLE"),
			NameMaxChars:    v.GetInt("REPORT_NAME_MAX_CHARS"),
			FixedFilename:   v.GetString("REPORT_FIXED_FILENAME"),
			Retention:       time.Duration(v.GetInt("REPORT_RETENTION_HOURS")) * time.Hour,
			CleanupInterval: time.Duration(v.GetInt("REPORT_CLEANUP_INTERVAL_MINUTES")) * time.Minute,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		History: HistoryConfig{
			MaxEntries:       v.GetInt("HISTORY_MAX_ENTRIES"),
			GeohashPrecision: v.GetUint("HISTORY_GEOHASH_PRECISION"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 5000)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("PROVIDER", ProviderMapbox)
	v.SetDefault("MAPBOX_BASE_URL", "https://api.mapbox.com")
	v.SetDefault("MAPBOX_REQUEST_TIMEOUT", 10)
	v.SetDefault("GOOGLE_MAPS_RATE_LIMIT", 10)
	v.SetDefault("GOOGLE_MAPS_REQUEST_TIMEOUT", 10)
	v.SetDefault("SEARCH_ENABLE_ROUTING", true)
	v.SetDefault("SEARCH_DEFAULT_LIMIT", 5)
	v.SetDefault("SEARCH_MAX_LIMIT", 10)
	v.SetDefault("SEARCH_ROUTING_CONCURRENCY", 1)
	v.SetDefault("REPORT_STATIC_DIR", "./static")
	v.SetDefault("REPORT_LAYOUT", "list")
	v.SetDefault("REPORT_TITLE", "Search results")
	v.SetDefault("REPORT_NAME_MAX_CHARS", 25)
	v.SetDefault("REPORT_RETENTION_HOURS", 24)
	v.SetDefault("REPORT_CLEANUP_INTERVAL_MINUTES", 30)
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("HISTORY_MAX_ENTRIES", 50)
	v.SetDefault("HISTORY_GEOHASH_PRECISION", 6)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderMapbox, ProviderGoogle:
	default:
		return fmt.Errorf("unknown PROVIDER %q (expected %s or %s)", c.Provider, ProviderMapbox, ProviderGoogle)
	}
	switch c.Report.Layout {
	case "list", "table":
	default:
		return fmt.Errorf("unknown REPORT_LAYOUT %q (expected list or table)", c.Report.Layout)
	}
	if c.Search.DefaultLimit < 1 || c.Search.MaxLimit < c.Search.DefaultLimit {
		return fmt.Errorf("invalid search limits: default=%d max=%d", c.Search.DefaultLimit, c.Search.MaxLimit)
	}
	if c.Search.RoutingConcurrency < 1 {
		c.Search.RoutingConcurrency = 1
	}
	if c.Report.Retention < 0 {
		c.Report.Retention = 0
	}
	if c.Report.CleanupInterval <= 0 {
		c.Report.CleanupInterval = 30 * time.Minute
	}
	if c.Mapbox.RequestTimeout <= 0 {
		c.Mapbox.RequestTimeout = 10
	}
	if c.Google.RequestTimeout <= 0 {
		c.Google.RequestTimeout = 10
	}
	return nil
}

// CredentialConfigured reports whether the active provider has its API credential.
func (c *Config) CredentialConfigured() bool {
	if c.Provider == ProviderGoogle {
		return c.Google.APIKey != ""
	}
	return c.Mapbox.AccessToken != ""
}

func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

func (c *Config) DatabaseEnabled() bool {
	return c.Database.Host != ""
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
