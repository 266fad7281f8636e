package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTrack_DashSeparator(t *testing.T) {
	artist, title := ParseTrack("Artist - Song Title", "", "")
	assert.Equal(t, "Artist", artist)
	assert.Equal(t, "Song Title", title)
}

func TestParseTrack_DashSeparator_FirstOccurrenceOnly(t *testing.T) {
	artist, title := ParseTrack("AC - DC - Back in Black", "", "")
	assert.Equal(t, "AC", artist)
	assert.Equal(t, "DC - Back in Black", title)
}

func TestParseTrack_ByInfix(t *testing.T) {
	artist, title := ParseTrack("Song Title by Artist", "", "")
	assert.Equal(t, "Artist", artist)
	assert.Equal(t, "Song Title", title)
}

func TestParseTrack_ByInfix_CaseInsensitive(t *testing.T) {
	artist, title := ParseTrack("Bohemian Rhapsody BY Queen", "", "")
	assert.Equal(t, "Queen", artist)
	assert.Equal(t, "Bohemian Rhapsody", title)
}

func TestParseTrack_ByInfix_LastOccurrence(t *testing.T) {
	// Titles can contain " by " themselves; the artist follows the last one.
	artist, title := ParseTrack("Stand by Me by Ben E. King", "", "")
	assert.Equal(t, "Ben E. King", artist)
	assert.Equal(t, "Stand by Me", title)
}

func TestParseTrack_ByInfix_NonASCII(t *testing.T) {
	// Runes whose case variants differ in byte length must not skew the split.
	artist, title := ParseTrack("ȺȺȺȺȺȺ by X", "", "")
	assert.Equal(t, "X", artist)
	assert.Equal(t, "ȺȺȺȺȺȺ", title)

	artist, title = ParseTrack("İİİİİİ by X", "", "")
	assert.Equal(t, "X", artist)
	assert.Equal(t, "İİİİİİ", title)
}

func TestParseTrack_StructuredFieldsWin(t *testing.T) {
	artist, title := ParseTrack("x - y", "A", "T")
	assert.Equal(t, "A", artist)
	assert.Equal(t, "T", title)
}

func TestParseTrack_StructuredArtistOnly(t *testing.T) {
	// The dash rule fills only the still-missing title.
	artist, title := ParseTrack("Queen - Bohemian Rhapsody", "Freddie", "")
	assert.Equal(t, "Freddie", artist)
	assert.Equal(t, "Bohemian Rhapsody", title)
}

func TestParseTrack_DashBeforeBy(t *testing.T) {
	artist, title := ParseTrack("Left - Middle by Right", "", "")
	assert.Equal(t, "Left", artist)
	assert.Equal(t, "Middle by Right", title)
}

func TestParseTrack_Empty(t *testing.T) {
	artist, title := ParseTrack("", "", "")
	assert.Equal(t, "", artist)
	assert.Equal(t, "", title)
}

func TestParseTrack_NoSeparator(t *testing.T) {
	artist, title := ParseTrack("Just some announcement", "", "")
	assert.Equal(t, "", artist)
	assert.Equal(t, "", title)
}

func TestParseTrack_NormalizesStructuredFields(t *testing.T) {
	artist, title := ParseTrack("", "  The\n Beatles ", " Hey \t Jude ")
	assert.Equal(t, "The Beatles", artist)
	assert.Equal(t, "Hey Jude", title)
}
