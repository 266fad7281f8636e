package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStationSnapshot_IdentityKey_TrackWins(t *testing.T) {
	snap := &StationSnapshot{
		StationID: "kfm",
		RawNow:    "Queen - Bohemian Rhapsody",
		Artist:    "Queen",
		Title:     "Bohemian Rhapsody",
	}
	assert.Equal(t, "kfm\x00Queen\x00Bohemian Rhapsody", snap.IdentityKey())
}

func TestStationSnapshot_IdentityKey_RawFallback(t *testing.T) {
	snap := &StationSnapshot{StationID: "kfm", RawNow: "Morning drive show"}
	assert.Equal(t, "kfm\x00Morning drive show", snap.IdentityKey())

	// A lone artist without a title is not a track.
	snap.Artist = "Queen"
	assert.Equal(t, "kfm\x00Morning drive show", snap.IdentityKey())
}

func TestStationSnapshot_IdentityKey_DiffersPerStation(t *testing.T) {
	a := &StationSnapshot{StationID: "kfm", Artist: "Queen", Title: "Bohemian Rhapsody"}
	b := &StationSnapshot{StationID: "goodhope", Artist: "Queen", Title: "Bohemian Rhapsody"}
	assert.NotEqual(t, a.IdentityKey(), b.IdentityKey())
}

func TestStationSnapshot_IsFailure(t *testing.T) {
	assert.False(t, (&StationSnapshot{}).IsFailure())
	assert.True(t, (&StationSnapshot{Error: "navigation timeout"}).IsFailure())
}

func TestStationSnapshot_HasTrack(t *testing.T) {
	assert.True(t, (&StationSnapshot{Artist: "Queen", Title: "Bohemian Rhapsody"}).HasTrack())
	assert.False(t, (&StationSnapshot{Artist: "Queen"}).HasTrack())
	assert.False(t, (&StationSnapshot{Title: "Bohemian Rhapsody"}).HasTrack())
	assert.False(t, (&StationSnapshot{}).HasTrack())
}

func TestLinkBundle_Clone(t *testing.T) {
	orig := LinkBundle{LinkYoutubeSearch: "https://youtube.example/search"}
	cp := orig.Clone()
	cp[LinkApple] = "https://music.apple.example/track"

	assert.Len(t, orig, 1)
	assert.Len(t, cp, 2)
	assert.Equal(t, orig[LinkYoutubeSearch], cp[LinkYoutubeSearch])
}

func TestLinkBundle_CloneNil(t *testing.T) {
	var lb LinkBundle
	assert.Nil(t, lb.Clone())
}
