package providers

import (
	"fmt"
	"npd/internal/structures"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "NPD_LOG_LEVEL")
	viper.BindEnv("scraper.interval", "NPD_SCRAPE_INTERVAL")
	viper.BindEnv("scraper.timeout", "NPD_SCRAPE_TIMEOUT")
	viper.BindEnv("persistence.dataDir", "NPD_DATA_DIR")
	viper.BindEnv("cache.enabled", "NPD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "NPD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	// Denylist syntax errors should surface at startup, not mid-run.
	if _, err := conf.Scraper.CompilePromoPatterns(); err != nil {
		return nil, err
	}

	conf.AppName = "NowPlayingDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
