package scraper

import (
	"context"
	"npd/internal/models"
	"npd/internal/providers"
	"npd/internal/scraper/interfaces"
	"npd/internal/services"
	"npd/internal/structures"
	"time"
)

// Runner drives one scrape run across the configured stations and owns
// everything the pipeline touches on disk: the hot data files and the
// archive tier. It also serves history reads, falling back from memory to
// disk to the archive.
type Runner struct {
	config      *structures.Config
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
	reader      interfaces.PageReaderInterface
	assembler   *Assembler
	fileManager *FileManager
	archive     *ArchiveStorage
	service     services.StationServiceInterface
	now         func() time.Time
}

func NewRunner(
	conf *structures.Config,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	reader interfaces.PageReaderInterface,
	assembler *Assembler,
	fileManager *FileManager,
	archive *ArchiveStorage,
	service services.StationServiceInterface,
) *Runner {
	return &Runner{
		config:      conf,
		logger:      logger,
		metrics:     metrics,
		reader:      reader,
		assembler:   assembler,
		fileManager: fileManager,
		archive:     archive,
		service:     service,
		now:         time.Now,
	}
}

// RunOnce executes the pipeline for every station sequentially and writes
// the outputs once at the end. Per-station failures produce the failure
// snapshot variant and never abort the run.
func (r *Runner) RunOnce(ctx context.Context) {
	r.rotateDay()

	for _, station := range r.config.Stations {
		start := r.now()

		page, err := r.reader.Read(ctx, station)
		snap := r.assembler.Assemble(ctx, station, page, err)

		if err != nil {
			r.logger.Errorf(providers.TypeScrape, "Scrape failed for %s: %s", station.ID, err)
			r.metrics.IncScrapes(station.ID, "error")
		} else {
			r.metrics.IncScrapes(station.ID, "ok")
		}

		r.service.PutSnapshot(snap)
		if r.service.AppendIfNew(snap) {
			if snap.HasTrack() {
				r.logger.Infof(providers.TypeScrape, "New entry for %s: %s - %s", station.ID, snap.Artist, snap.Title)
			} else {
				r.logger.Infof(providers.TypeScrape, "New entry for %s: %q", station.ID, snap.RawNow)
			}
		}

		r.metrics.ObserveScrapeDuration(station.ID, time.Since(start))
	}

	if err := r.Persist(); err != nil {
		r.logger.Errorf(providers.TypeApp, "Error while persisting run output: %s", err)
	}
}

// rotateDay swaps in a fresh log when the calendar day changed, persisting
// the finished day first. The new day's log is loaded from disk so repeated
// process restarts within one day keep extending the same log.
func (r *Runner) rotateDay() {
	date := r.now().Format(DateLayout)
	if r.service.TodayDate() == date {
		return
	}

	if old := r.service.GetToday(); old != nil {
		if err := r.fileManager.SaveDailyLog(old); err != nil {
			r.logger.Errorf(providers.TypeApp, "Error while persisting finished day %s: %s", old.Date, err)
		}
	}
	r.service.SetToday(r.fileManager.LoadDailyLog(date))
}

// ArchiveSweep moves daily logs past the retention window into the archive.
func (r *Runner) ArchiveSweep() {
	today := r.now().Format(DateLayout)
	if err := r.archive.Sweep(today); err != nil {
		r.logger.Errorf(providers.TypeApp, "Archive sweep failed: %s", err)
	}
}

// Restore loads today's persisted log into memory. Called once at startup.
func (r *Runner) Restore() error {
	date := r.now().Format(DateLayout)
	r.service.SetToday(r.fileManager.LoadDailyLog(date))
	return nil
}

// Persist writes the latest aggregate, the per-station files and today's
// log to the data directory.
func (r *Runner) Persist() error {
	start := r.now()
	defer func() {
		r.metrics.ObservePersistenceDuration(time.Since(start))
	}()

	latest := r.service.GetLatest()
	today := r.service.GetToday()
	if today != nil {
		latest.Date = today.Date
	}

	if err := r.fileManager.SaveLatest(latest); err != nil {
		return err
	}
	for _, snap := range latest.Stations {
		if err := r.fileManager.SaveStation(snap); err != nil {
			return err
		}
	}
	if today != nil {
		if err := r.fileManager.SaveDailyLog(today); err != nil {
			return err
		}
	}
	return nil
}

// History serves the dedup log for a calendar date: today from memory,
// past days from the hot directory, then the archive. An unknown date
// yields an empty log of that date.
func (r *Runner) History(date string) *models.DailyLog {
	if date == r.service.TodayDate() {
		if today := r.service.GetToday(); today != nil {
			return today
		}
	}

	log := r.fileManager.LoadDailyLog(date)
	if log.Len() == 0 {
		if archived := r.archive.Load(date); archived != nil {
			return archived
		}
	}
	return log
}
