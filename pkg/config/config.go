package config

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/user/seo-monitor/internal/analysis"
	"github.com/user/seo-monitor/internal/entity"
)

// Config holds the application configuration.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	SiteDomain          string `mapstructure:"SITE_DOMAIN"`
	SiteDefaultLanguage string `mapstructure:"SITE_DEFAULT_LANGUAGE"`
	SiteLanguages       string `mapstructure:"SITE_LANGUAGES"`

	ReportStore string `mapstructure:"REPORT_STORE"` // "postgres" or "bolt"
	PostgresURL string `mapstructure:"POSTGRES_URL"`
	BoltPath    string `mapstructure:"BOLT_PATH"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"` // empty disables the analysis cache
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	CacheTTLHours int    `mapstructure:"CACHE_TTL_HOURS"`

	FetchMode      string  `mapstructure:"FETCH_MODE"` // "chromedp" or "http"
	FetchTimeout   int     `mapstructure:"FETCH_TIMEOUT"`
	FetchUserAgent string  `mapstructure:"FETCH_USER_AGENT"`
	FetchRate      float64 `mapstructure:"FETCH_RATE"` // requests per second and host, 0 disables
	FetchBurst     int     `mapstructure:"FETCH_BURST"`

	BatchWorkers int `mapstructure:"BATCH_WORKERS"`
	MaxBatchSize int `mapstructure:"MAX_BATCH_SIZE"`
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// A missing .env file is fine; production config comes from the environment.
	_ = v.ReadInConfig()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SITE_DOMAIN", "ristorantestoria.de")
	v.SetDefault("SITE_DEFAULT_LANGUAGE", "de")
	v.SetDefault("SITE_LANGUAGES", "en,it,fr")
	v.SetDefault("REPORT_STORE", "bolt")
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("BOLT_PATH", "seo-reports.db")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL_HOURS", 24)
	v.SetDefault("FETCH_MODE", "http")
	v.SetDefault("FETCH_TIMEOUT", 30) // in seconds
	v.SetDefault("FETCH_USER_AGENT", "Mozilla/5.0 (compatible; seo-monitor/1.0)")
	v.SetDefault("FETCH_RATE", 1.0)
	v.SetDefault("FETCH_BURST", 2)
	v.SetDefault("BATCH_WORKERS", 8)
	v.SetDefault("MAX_BATCH_SIZE", 10000)
}

// Site converts the site settings into the analysis engine configuration.
func (c *Config) Site() analysis.Site {
	site := analysis.Site{
		Domain:          strings.TrimSpace(c.SiteDomain),
		DefaultLanguage: entity.Language(strings.ToLower(strings.TrimSpace(c.SiteDefaultLanguage))),
	}
	for _, code := range strings.Split(c.SiteLanguages, ",") {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		site.Languages = append(site.Languages, entity.Language(code))
	}
	return site
}
