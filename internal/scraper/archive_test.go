package scraper

import (
	"npd/internal/models"
	"npd/internal/structures"
	"npd/internal/testutil"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archiveConfig(dataDir, archiveDir string, retention int) *structures.Config {
	return &structures.Config{
		Persistence: structures.Persistence{
			DataDir:       dataDir,
			ArchiveDir:    archiveDir,
			RetentionDays: retention,
		},
	}
}

func writeDayLog(t *testing.T, dir, date string) {
	t.Helper()
	log := models.NewDailyLog(date)
	log.AppendIfNew(&models.StationSnapshot{
		StationID: "kfm", StationName: "KFM",
		Artist: "Queen", Title: "Bohemian Rhapsody",
		CapturedAt: date + "T08:00:00Z",
	}, nil)
	data, err := json.Marshal(log)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, date+".json"), data, 0644))
}

func TestArchive_SweepMovesOldLogs(t *testing.T) {
	dataDir := t.TempDir()
	archiveDir := t.TempDir()
	writeDayLog(t, dataDir, "2026-08-01")
	writeDayLog(t, dataDir, "2026-08-29")

	a := NewArchiveStorage(archiveConfig(dataDir, archiveDir, 7), &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, a.Sweep("2026-08-30"))

	// The old log moved to the archive, the recent one stayed hot.
	_, err := os.Stat(filepath.Join(dataDir, "2026-08-01.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(archiveDir, "2026-08-01.json.zst"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dataDir, "2026-08-29.json"))
	assert.NoError(t, err)
}

func TestArchive_LoadRestoresArchivedDay(t *testing.T) {
	dataDir := t.TempDir()
	archiveDir := t.TempDir()
	writeDayLog(t, dataDir, "2026-08-01")

	a := NewArchiveStorage(archiveConfig(dataDir, archiveDir, 7), &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, a.Sweep("2026-08-30"))

	log := a.Load("2026-08-01")
	require.NotNil(t, log)
	assert.Equal(t, "2026-08-01", log.Date)
	require.Equal(t, 1, log.Len())
	assert.Equal(t, "Queen", log.Items[0].Artist)
}

func TestArchive_LoadUnknownDate(t *testing.T) {
	a := NewArchiveStorage(archiveConfig(t.TempDir(), t.TempDir(), 7), &testutil.MockCompressor{}, &testutil.MockLogger{})
	assert.Nil(t, a.Load("1999-01-01"))
}

func TestArchive_RetentionDisabled(t *testing.T) {
	dataDir := t.TempDir()
	writeDayLog(t, dataDir, "2020-01-01")

	a := NewArchiveStorage(archiveConfig(dataDir, t.TempDir(), 0), &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, a.Sweep("2026-08-30"))

	_, err := os.Stat(filepath.Join(dataDir, "2020-01-01.json"))
	assert.NoError(t, err)
}

func TestArchive_SweepIgnoresForeignFiles(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "latest.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "kfm.json"), []byte("{}"), 0644))

	a := NewArchiveStorage(archiveConfig(dataDir, t.TempDir(), 1), &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, a.Sweep("2026-08-30"))

	_, err := os.Stat(filepath.Join(dataDir, "latest.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dataDir, "kfm.json"))
	assert.NoError(t, err)
}

func TestArchive_RoundTripWithZstd(t *testing.T) {
	dataDir := t.TempDir()
	archiveDir := t.TempDir()
	writeDayLog(t, dataDir, "2026-08-01")

	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	defer comp.Close()

	a := NewArchiveStorage(archiveConfig(dataDir, archiveDir, 7), comp, &testutil.MockLogger{})
	require.NoError(t, a.Sweep("2026-08-30"))

	log := a.Load("2026-08-01")
	require.NotNil(t, log)
	assert.Equal(t, 1, log.Len())
}
