package scraper

import (
	"regexp"
	"strings"
)

// parseRule tries to fill artist/title from the raw now-playing text.
// Rules only set fields that are still empty; they never overwrite.
type parseRule func(raw, artist, title string) (string, string)

// parseRules are applied in order. The dash split runs before the "by"
// pattern, so a string containing both separators resolves to the dash form.
var parseRules = []parseRule{
	parseDashSeparator,
	parseByInfix,
}

// ParseTrack recovers artist and title from a raw now-playing string,
// starting from whatever structured fields the page exposed. Fields that
// no rule can fill stay empty.
func ParseTrack(rawNow, structuredArtist, structuredTitle string) (artist, title string) {
	artist = Normalize(structuredArtist)
	title = Normalize(structuredTitle)
	raw := Normalize(rawNow)

	for _, rule := range parseRules {
		if artist != "" && title != "" {
			break
		}
		artist, title = rule(raw, artist, title)
	}
	return artist, title
}

// parseDashSeparator splits on the first " - ": left segment is the artist,
// the remainder (re-joined if it contained further separators) is the title.
func parseDashSeparator(raw, artist, title string) (string, string) {
	left, rest, ok := strings.Cut(raw, " - ")
	if !ok {
		return artist, title
	}
	if artist == "" {
		artist = Normalize(left)
	}
	if title == "" {
		title = Normalize(rest)
	}
	return artist, title
}

// byInfixPattern matches "<title> by <artist>" with a case-insensitive
// " by ". The greedy first group makes the last occurrence the separator,
// so titles that themselves contain " by " stay intact.
var byInfixPattern = regexp.MustCompile(`(?i)^(.+) by (.+)$`)

func parseByInfix(raw, artist, title string) (string, string) {
	m := byInfixPattern.FindStringSubmatch(raw)
	if m == nil {
		return artist, title
	}
	if title == "" {
		title = Normalize(m[1])
	}
	if artist == "" {
		artist = Normalize(m[2])
	}
	return artist, title
}
