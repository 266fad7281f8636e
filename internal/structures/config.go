package structures

import (
	"fmt"
	"regexp"
	"time"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

// Selectors are the CSS selectors used to pull now-playing fields out of a
// station page. Empty fields fall back to package scraper defaults.
type Selectors struct {
	Now             string `yaml:"now"`
	Artist          string `yaml:"artist"`
	Title           string `yaml:"title"`
	Artwork         string `yaml:"artwork"`
	ArtworkFallback string `yaml:"artworkFallback"`
}

type Station struct {
	ID        string    `yaml:"id" validate:"required"`
	Name      string    `yaml:"name" validate:"required"`
	URL       string    `yaml:"url" validate:"required|fullUrl"`
	Selectors Selectors `yaml:"selectors"`
}

type ScraperConfig struct {
	Interval      time.Duration `yaml:"interval" validate:"required|min:1"`
	Timeout       time.Duration `yaml:"timeout" validate:"required|min:1"`
	UserAgent     string        `yaml:"userAgent"`
	PromoPatterns []string      `yaml:"promoPatterns"`
}

type ResolverConfig struct {
	ItunesURL  string        `yaml:"itunesUrl" validate:"required|fullUrl"`
	YoutubeURL string        `yaml:"youtubeUrl" validate:"required|fullUrl"`
	Timeout    time.Duration `yaml:"timeout" validate:"required|min:1"`
}

type Persistence struct {
	DataDir       string        `yaml:"dataDir" validate:"required|unixPath"`
	ArchiveDir    string        `yaml:"archiveDir" validate:"required|unixPath"`
	RetentionDays int           `yaml:"retentionDays"`
	SweepInterval time.Duration `yaml:"sweepInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Stations    []Station      `yaml:"stations" validate:"required"`
	Scraper     ScraperConfig  `yaml:"scraper"`
	Resolver    ResolverConfig `yaml:"resolver"`
	WebServer   Server         `yaml:"webServer"`
	Persistence Persistence    `yaml:"persistence"`
	Logger      LoggerConfig   `yaml:"logger"`
	Cache       CacheConfig    `yaml:"cache"`
	Metrics     MetricsConfig  `yaml:"metrics"`
}

// StationByID returns the configured station with the given id.
func (c *Config) StationByID(id string) (Station, bool) {
	for _, s := range c.Stations {
		if s.ID == id {
			return s, true
		}
	}
	return Station{}, false
}

// CompilePromoPatterns compiles the configured promo/boilerplate denylist.
// Patterns are matched case-insensitively against raw now-playing text.
func (s *ScraperConfig) CompilePromoPatterns() ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(s.PromoPatterns))
	for _, p := range s.PromoPatterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("invalid promo pattern %q: %w", p, err)
		}
		res = append(res, re)
	}
	return res, nil
}
