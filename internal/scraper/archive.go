package scraper

import (
	"npd/internal/models"
	"npd/internal/providers"
	"npd/internal/scraper/interfaces"
	"npd/internal/structures"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const archiveSuffix = ".json.zst"

var dailyLogFilePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.json$`)

// ArchiveStorage is the cold tier for finished daily logs. Logs older than
// the retention window are compressed into the archive directory and
// removed from the hot data directory; reads for archived dates restore
// them transparently. Archives are never deleted.
type ArchiveStorage struct {
	dataDir    string
	archiveDir string
	retention  int
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewArchiveStorage(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *ArchiveStorage {
	return &ArchiveStorage{
		dataDir:    conf.Persistence.DataDir,
		archiveDir: conf.Persistence.ArchiveDir,
		retention:  conf.Persistence.RetentionDays,
		compressor: compressor,
		logger:     logger,
	}
}

// Sweep moves every daily log older than the retention window into the
// archive. today is the current calendar-day key; retention <= 0 disables
// sweeping entirely.
func (a *ArchiveStorage) Sweep(today string) error {
	if a.retention <= 0 {
		return nil
	}

	cutoffDay, err := time.Parse(DateLayout, today)
	if err != nil {
		return err
	}
	cutoff := cutoffDay.AddDate(0, 0, -a.retention)

	entries, err := os.ReadDir(a.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !dailyLogFilePattern.MatchString(entry.Name()) {
			continue
		}
		date := strings.TrimSuffix(entry.Name(), ".json")
		day, err := time.Parse(DateLayout, date)
		if err != nil || !day.Before(cutoff) {
			continue
		}
		if err := a.archiveOne(date); err != nil {
			a.logger.Errorf(providers.TypeApp, "Failed to archive daily log %s: %s", date, err)
			continue
		}
		a.logger.Infof(providers.TypeApp, "Archived daily log %s", date)
	}
	return nil
}

// Load restores an archived daily log. Returns nil when the date was never
// archived or the archive cannot be read.
func (a *ArchiveStorage) Load(date string) *models.DailyLog {
	data, err := os.ReadFile(a.archivePath(date))
	if err != nil {
		if !os.IsNotExist(err) {
			a.logger.Errorf(providers.TypeApp, "Failed to read archive for %s: %s", date, err)
		}
		return nil
	}

	decompressed, err := a.compressor.Decompress(data)
	if err != nil {
		a.logger.Errorf(providers.TypeApp, "Failed to decompress archive for %s: %s", date, err)
		return nil
	}

	var log models.DailyLog
	if err := json.Unmarshal(decompressed, &log); err != nil {
		a.logger.Errorf(providers.TypeApp, "Corrupt archive for %s: %s", date, err)
		return nil
	}
	return &log
}

func (a *ArchiveStorage) Close() {
	a.compressor.Close()
}

func (a *ArchiveStorage) archiveOne(date string) error {
	hotPath := filepath.Join(a.dataDir, date+".json")
	data, err := os.ReadFile(hotPath)
	if err != nil {
		return err
	}

	compressed, err := a.compressor.Compress(data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.archiveDir, 0755); err != nil {
		return err
	}

	path := a.archivePath(date)
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, compressed, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		return err
	}

	return os.Remove(hotPath)
}

func (a *ArchiveStorage) archivePath(date string) string {
	return filepath.Join(a.archiveDir, date+archiveSuffix)
}
