package services

import (
	"npd/internal/models"
	"npd/internal/structures"
	"regexp"
	"sort"
	"sync"
)

type StationServiceInterface interface {
	GetStations() []structures.Station
	PutSnapshot(snap *models.StationSnapshot)
	GetSnapshot(id string) *models.StationSnapshot
	GetLatest() *models.LatestSnapshot
	SetToday(log *models.DailyLog)
	GetToday() *models.DailyLog
	TodayDate() string
	AppendIfNew(snap *models.StationSnapshot) bool
	GetTodayCount() int
	IsPromo(raw string) bool
}

// StationService holds the in-memory run state: the latest snapshot per
// station and the current day's dedup log. It is the only component that
// mutates the daily log.
type StationService struct {
	mu       sync.RWMutex
	config   *structures.Config
	latest   map[string]*models.StationSnapshot
	today    *models.DailyLog
	denylist []*regexp.Regexp
}

func NewStationService(conf *structures.Config) (StationServiceInterface, error) {
	denylist, err := conf.Scraper.CompilePromoPatterns()
	if err != nil {
		return nil, err
	}
	return &StationService{
		config:   conf,
		latest:   make(map[string]*models.StationSnapshot),
		denylist: denylist,
	}, nil
}

func (ss *StationService) GetStations() []structures.Station {
	return ss.config.Stations
}

func (ss *StationService) PutSnapshot(snap *models.StationSnapshot) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.latest[snap.StationID] = snap
}

func (ss *StationService) GetSnapshot(id string) *models.StationSnapshot {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.latest[id]
}

// GetLatest aggregates the most recent snapshots, ordered by station id so
// the output is deterministic regardless of scrape order.
func (ss *StationService) GetLatest() *models.LatestSnapshot {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	stations := make([]*models.StationSnapshot, 0, len(ss.latest))
	for _, snap := range ss.latest {
		stations = append(stations, snap)
	}
	sort.Slice(stations, func(i, j int) bool {
		return stations[i].StationID < stations[j].StationID
	})

	date := ""
	if ss.today != nil {
		date = ss.today.Date
	}
	return &models.LatestSnapshot{Date: date, Stations: stations}
}

func (ss *StationService) SetToday(log *models.DailyLog) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.today = log
}

// GetToday returns a copy of the current day's log. Entries are shared but
// write-once, so readers can serialize them safely.
func (ss *StationService) GetToday() *models.DailyLog {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	if ss.today == nil {
		return nil
	}
	items := make([]*models.DailyLogEntry, len(ss.today.Items))
	copy(items, ss.today.Items)
	return &models.DailyLog{Date: ss.today.Date, Items: items}
}

func (ss *StationService) TodayDate() string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	if ss.today == nil {
		return ""
	}
	return ss.today.Date
}

func (ss *StationService) AppendIfNew(snap *models.StationSnapshot) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.today == nil {
		return false
	}
	return ss.today.AppendIfNew(snap, ss.isPromo)
}

func (ss *StationService) GetTodayCount() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	if ss.today == nil {
		return 0
	}
	return ss.today.Len()
}

func (ss *StationService) IsPromo(raw string) bool {
	return ss.isPromo(raw)
}

func (ss *StationService) isPromo(raw string) bool {
	for _, re := range ss.denylist {
		if re.MatchString(raw) {
			return true
		}
	}
	return false
}
