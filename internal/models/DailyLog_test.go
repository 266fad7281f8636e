package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackSnapshot(station, artist, title string) *StationSnapshot {
	return &StationSnapshot{
		StationID:   station,
		StationName: station,
		Artist:      artist,
		Title:       title,
		CapturedAt:  "2026-08-30T12:00:00Z",
	}
}

func promoFilter(patterns ...string) PromoFilter {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile("(?i)"+p))
	}
	return func(raw string) bool {
		for _, re := range res {
			if re.MatchString(raw) {
				return true
			}
		}
		return false
	}
}

func TestDailyLog_AppendIfNew_Inserts(t *testing.T) {
	log := NewDailyLog("2026-08-30")

	assert.True(t, log.AppendIfNew(trackSnapshot("kfm", "Queen", "Bohemian Rhapsody"), nil))
	require.Equal(t, 1, log.Len())

	entry := log.Items[0]
	assert.Equal(t, "kfm", entry.StationID)
	assert.Equal(t, "Queen", entry.Artist)
	assert.Equal(t, "Bohemian Rhapsody", entry.Title)
	assert.Equal(t, "2026-08-30T12:00:00Z", entry.FirstSeen)
	assert.Empty(t, entry.RawNow)
}

func TestDailyLog_AppendIfNew_DuplicateIgnored(t *testing.T) {
	log := NewDailyLog("2026-08-30")

	require.True(t, log.AppendIfNew(trackSnapshot("kfm", "Queen", "Bohemian Rhapsody"), nil))
	assert.False(t, log.AppendIfNew(trackSnapshot("kfm", "Queen", "Bohemian Rhapsody"), nil))
	assert.Equal(t, 1, log.Len())

	// Same song on another station is a distinct entry.
	assert.True(t, log.AppendIfNew(trackSnapshot("goodhope", "Queen", "Bohemian Rhapsody"), nil))
	assert.Equal(t, 2, log.Len())
}

func TestDailyLog_AppendIfNew_FirstSeenKept(t *testing.T) {
	log := NewDailyLog("2026-08-30")

	first := trackSnapshot("kfm", "Queen", "Bohemian Rhapsody")
	require.True(t, log.AppendIfNew(first, nil))

	later := trackSnapshot("kfm", "Queen", "Bohemian Rhapsody")
	later.CapturedAt = "2026-08-30T18:00:00Z"
	assert.False(t, log.AppendIfNew(later, nil))
	assert.Equal(t, "2026-08-30T12:00:00Z", log.Items[0].FirstSeen)
}

func TestDailyLog_AppendIfNew_FailureRejected(t *testing.T) {
	log := NewDailyLog("2026-08-30")

	snap := trackSnapshot("kfm", "Queen", "Bohemian Rhapsody")
	snap.Error = "navigation timeout"
	assert.False(t, log.AppendIfNew(snap, nil))
	assert.Equal(t, 0, log.Len())
}

func TestDailyLog_AppendIfNew_EmptyRejected(t *testing.T) {
	log := NewDailyLog("2026-08-30")

	assert.False(t, log.AppendIfNew(&StationSnapshot{StationID: "kfm"}, nil))
	assert.Equal(t, 0, log.Len())
}

func TestDailyLog_AppendIfNew_RawWithoutTrack(t *testing.T) {
	log := NewDailyLog("2026-08-30")

	snap := &StationSnapshot{
		StationID:  "kfm",
		RawNow:     "Morning drive show",
		CapturedAt: "2026-08-30T07:00:00Z",
	}
	require.True(t, log.AppendIfNew(snap, nil))
	assert.Equal(t, "Morning drive show", log.Items[0].RawNow)
	assert.Empty(t, log.Items[0].Artist)
}

func TestDailyLog_AppendIfNew_PromoRejected(t *testing.T) {
	log := NewDailyLog("2026-08-30")
	filter := promoFilter("listen to .*live")

	snap := &StationSnapshot{
		StationID:  "kfm",
		RawNow:     "Listen to KFM live",
		CapturedAt: "2026-08-30T07:00:00Z",
	}
	assert.False(t, log.AppendIfNew(snap, filter))
	assert.Equal(t, 0, log.Len())
}

func TestDailyLog_AppendIfNew_PromoWithTrackAccepted(t *testing.T) {
	log := NewDailyLog("2026-08-30")
	filter := promoFilter("listen to .*live")

	// The filter only guards raw entries; a parsed track always passes.
	snap := trackSnapshot("kfm", "Queen", "Bohemian Rhapsody")
	snap.RawNow = "Listen to KFM live"
	assert.True(t, log.AppendIfNew(snap, filter))
}

func TestDailyLog_AppendIfNew_CopiesLinks(t *testing.T) {
	log := NewDailyLog("2026-08-30")

	snap := trackSnapshot("kfm", "Queen", "Bohemian Rhapsody")
	snap.Links = LinkBundle{LinkYoutubeSearch: "https://youtube.example/search"}
	require.True(t, log.AppendIfNew(snap, nil))

	snap.Links[LinkApple] = "https://music.apple.example/track"
	assert.Len(t, log.Items[0].Links, 1)
}

func TestDailyLog_Has(t *testing.T) {
	log := NewDailyLog("2026-08-30")
	require.True(t, log.AppendIfNew(trackSnapshot("kfm", "Queen", "Bohemian Rhapsody"), nil))

	assert.True(t, log.Has(trackSnapshot("kfm", "Queen", "Bohemian Rhapsody")))
	assert.False(t, log.Has(trackSnapshot("kfm", "Toto", "Africa")))
}

func TestDailyLog_LenNeverShrinks(t *testing.T) {
	log := NewDailyLog("2026-08-30")

	inputs := []*StationSnapshot{
		trackSnapshot("kfm", "Queen", "Bohemian Rhapsody"),
		trackSnapshot("kfm", "Queen", "Bohemian Rhapsody"),
		{StationID: "kfm", Error: "timeout"},
		trackSnapshot("kfm", "Toto", "Africa"),
		{StationID: "kfm"},
	}

	prev := 0
	for _, snap := range inputs {
		log.AppendIfNew(snap, nil)
		assert.GreaterOrEqual(t, log.Len(), prev)
		prev = log.Len()
	}
	assert.Equal(t, 2, log.Len())
}
