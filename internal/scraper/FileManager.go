package scraper

import (
	"fmt"
	"npd/internal/models"
	"npd/internal/providers"
	"npd/internal/structures"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// DateLayout is the calendar-day key used for daily log files.
const DateLayout = "2006-01-02"

// FileManager persists the consumption contract for the display
// collaborator: latest.json, one file per station id and one daily log per
// calendar date, all written atomically under the data directory.
type FileManager struct {
	dir    string
	logger providers.Logger
}

func NewFileManager(conf *structures.Config, logger providers.Logger) *FileManager {
	return &FileManager{
		dir:    conf.Persistence.DataDir,
		logger: logger,
	}
}

func (f *FileManager) SaveLatest(latest *models.LatestSnapshot) error {
	return f.writeJSON(filepath.Join(f.dir, "latest.json"), latest)
}

func (f *FileManager) SaveStation(snap *models.StationSnapshot) error {
	return f.writeJSON(filepath.Join(f.dir, snap.StationID+".json"), snap)
}

func (f *FileManager) SaveDailyLog(log *models.DailyLog) error {
	return f.writeJSON(f.DailyLogPath(log.Date), log)
}

func (f *FileManager) DailyLogPath(date string) string {
	return filepath.Join(f.dir, date+".json")
}

// LoadDailyLog reads the persisted log for a date. A missing or
// unparseable file yields a fresh empty log for that date, never an error.
func (f *FileManager) LoadDailyLog(date string) *models.DailyLog {
	data, err := os.ReadFile(f.DailyLogPath(date))
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warnf(providers.TypeApp, "Failed to read daily log for %s, starting empty: %s", date, err)
		}
		return models.NewDailyLog(date)
	}

	var log models.DailyLog
	if err := json.Unmarshal(data, &log); err != nil {
		f.logger.Warnf(providers.TypeApp, "Corrupt daily log for %s, starting empty: %s", date, err)
		return models.NewDailyLog(date)
	}
	if log.Date == "" {
		log.Date = date
	}
	if log.Items == nil {
		log.Items = make([]*models.DailyLogEntry, 0)
	}
	return &log
}

func (f *FileManager) writeJSON(path string, v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(jsonData)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
