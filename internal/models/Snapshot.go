package models

// LinkKind identifies one slot in a snapshot's link bundle. Search-style
// kinds carry a generic query URL; exact kinds point at a matched resource.
// Both may be present for the same provider family and are never collapsed.
type LinkKind string

const (
	LinkYoutubeSearch    LinkKind = "youtubeSearch"
	LinkYoutubeExact     LinkKind = "youtubeExact"
	LinkSpotifySearch    LinkKind = "spotifySearch"
	LinkAppleMusicSearch LinkKind = "appleMusicSearch"
	LinkApple            LinkKind = "apple"
)

type LinkBundle map[LinkKind]string

// Clone returns a shallow copy so callers can overlay keys without
// mutating the original bundle.
func (lb LinkBundle) Clone() LinkBundle {
	if lb == nil {
		return nil
	}
	cp := make(LinkBundle, len(lb))
	for k, v := range lb {
		cp[k] = v
	}
	return cp
}

// StationSnapshot is one station's now-playing state at capture time.
// Exactly one of (Artist & Title) or RawNow is authoritative for identity.
// A non-empty Error marks the failure variant: only identity fields and
// CapturedAt are meaningful then.
type StationSnapshot struct {
	StationID   string     `json:"stationId"`
	StationName string     `json:"stationName"`
	SourceURL   string     `json:"url"`
	RawNow      string     `json:"now,omitempty"`
	Artist      string     `json:"artist,omitempty"`
	Title       string     `json:"title,omitempty"`
	ArtworkURL  string     `json:"artwork,omitempty"`
	Links       LinkBundle `json:"links,omitempty"`
	CapturedAt  string     `json:"scrapedAt"`
	Error       string     `json:"error,omitempty"`
}

// IsFailure reports whether this is the error variant of the snapshot.
func (s *StationSnapshot) IsFailure() bool {
	return s.Error != ""
}

// HasTrack reports whether both artist and title were recovered.
func (s *StationSnapshot) HasTrack() bool {
	return s.Artist != "" && s.Title != ""
}

// IdentityKey is the tuple used to decide whether two observations are the
// same song: (station, artist, title) when both are present, else
// (station, raw now text).
func (s *StationSnapshot) IdentityKey() string {
	if s.HasTrack() {
		return s.StationID + "\x00" + s.Artist + "\x00" + s.Title
	}
	return s.StationID + "\x00" + s.RawNow
}

// LatestSnapshot aggregates all stations from the most recent run.
type LatestSnapshot struct {
	Date     string             `json:"date"`
	Stations []*StationSnapshot `json:"stations"`
}
