package providers

import (
	"npd/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		Stations: []structures.Station{
			{ID: "kfm", Name: "KFM", URL: "https://example.org/kfm"},
		},
		Scraper: structures.ScraperConfig{
			Interval: 120 * time.Second,
			Timeout:  20 * time.Second,
		},
		Resolver: structures.ResolverConfig{
			ItunesURL:  "https://itunes.apple.com/search",
			YoutubeURL: "https://www.youtube.com/results",
			Timeout:    10 * time.Second,
		},
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8090,
		},
		Persistence: structures.Persistence{
			DataDir:       "/tmp/npd/data",
			ArchiveDir:    "/tmp/npd/archive",
			RetentionDays: 30,
			SweepInterval: 6 * time.Hour,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_NoStations(t *testing.T) {
	c := validConfig()
	c.Stations = nil
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_StationMissingURL(t *testing.T) {
	c := validConfig()
	c.Stations[0].URL = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_StationBadURL(t *testing.T) {
	c := validConfig()
	c.Stations[0].URL = "not a url"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_DuplicateStationID(t *testing.T) {
	c := validConfig()
	c.Stations = append(c.Stations, structures.Station{
		ID: "kfm", Name: "KFM Again", URL: "https://example.org/kfm2",
	})
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_BadResolverURL(t *testing.T) {
	c := validConfig()
	c.Resolver.ItunesURL = "itunes"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
