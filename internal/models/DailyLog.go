package models

// PromoFilter reports whether a raw now-playing string is station
// boilerplate (advert/ID announcement) rather than a song.
type PromoFilter func(raw string) bool

// DailyLogEntry records the first sighting of a distinct song (or raw
// announcement) on one station during one calendar day.
type DailyLogEntry struct {
	StationID   string     `json:"stationId"`
	StationName string     `json:"stationName"`
	Artist      string     `json:"artist,omitempty"`
	Title       string     `json:"title,omitempty"`
	RawNow      string     `json:"now,omitempty"`
	Links       LinkBundle `json:"links,omitempty"`
	ArtworkURL  string     `json:"artwork,omitempty"`
	FirstSeen   string     `json:"firstSeen"`
}

func (e *DailyLogEntry) identityKey() string {
	if e.Artist != "" && e.Title != "" {
		return e.StationID + "\x00" + e.Artist + "\x00" + e.Title
	}
	return e.StationID + "\x00" + e.RawNow
}

// DailyLog is the append-only record of distinct observations for one
// calendar day. Items keep discovery order; no two items share an
// identity key. Only AppendIfNew mutates it.
type DailyLog struct {
	Date  string           `json:"date"`
	Items []*DailyLogEntry `json:"items"`
}

func NewDailyLog(date string) *DailyLog {
	return &DailyLog{Date: date, Items: make([]*DailyLogEntry, 0)}
}

func (l *DailyLog) Len() int {
	return len(l.Items)
}

// Has reports whether an entry with the snapshot's identity key exists.
func (l *DailyLog) Has(snap *StationSnapshot) bool {
	key := snap.IdentityKey()
	for _, item := range l.Items {
		if item.identityKey() == key {
			return true
		}
	}
	return false
}

// AppendIfNew inserts the snapshot as a new entry unless an entry with the
// same identity key already exists. Failure-variant snapshots, snapshots
// with neither a track nor raw text, and promo boilerplate without a
// resolved track are never inserted. Returns whether an entry was added.
func (l *DailyLog) AppendIfNew(snap *StationSnapshot, isPromo PromoFilter) bool {
	if snap.IsFailure() {
		return false
	}
	if !snap.HasTrack() {
		if snap.RawNow == "" {
			return false
		}
		if isPromo != nil && isPromo(snap.RawNow) {
			return false
		}
	}
	if l.Has(snap) {
		return false
	}

	entry := &DailyLogEntry{
		StationID:   snap.StationID,
		StationName: snap.StationName,
		Links:       snap.Links.Clone(),
		ArtworkURL:  snap.ArtworkURL,
		FirstSeen:   snap.CapturedAt,
	}
	if snap.HasTrack() {
		entry.Artist = snap.Artist
		entry.Title = snap.Title
	} else {
		entry.RawNow = snap.RawNow
	}

	l.Items = append(l.Items, entry)
	return true
}
