package streaming

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/dtnitsch/tweet-mapreduce/models"
	"github.com/dtnitsch/tweet-mapreduce/pkg/hashtag"
	"github.com/dtnitsch/tweet-mapreduce/pkg/sentiment"
)

// Analysis modes accepted by the streaming stages. Unrecognized modes
// fall back to hashtags.
const (
	ModeHashtags  = "hashtags"
	ModeSentiment = "sentiment"
	ModeGeography = "geography"
)

// Record type tags in the 4-field tab-separated protocol.
const (
	TypeHashtag     = "HASHTAG"
	TypeSentiment   = "SENTIMENT"
	TypeLocation    = "LOCATION"
	TypeCoordinates = "COORDINATES"
)

// DefaultFallbackMonth buckets records whose date is missing or
// unparseable when no other fallback is configured.
const DefaultFallbackMonth = "2024-01"

const maxCityLen = 50

var textHashtagPattern = regexp.MustCompile(`#\w+`)

// normalizeMode lowercases a mode string and maps anything unknown to
// the hashtags default.
func normalizeMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeSentiment:
		return ModeSentiment
	case ModeGeography:
		return ModeGeography
	default:
		return ModeHashtags
	}
}

// Mapper emits one protocol line per fact extracted from each record:
// <TYPE>\t<period>\t<item>\t1. Malformed records produce no output and
// no error.
type Mapper struct {
	mode          string
	fallbackMonth string
}

// NewMapper builds a mapper for the given analysis mode. An empty
// fallbackMonth uses DefaultFallbackMonth.
func NewMapper(mode, fallbackMonth string) *Mapper {
	if fallbackMonth == "" {
		fallbackMonth = DefaultFallbackMonth
	}
	return &Mapper{mode: normalizeMode(mode), fallbackMonth: fallbackMonth}
}

// Run reads one input partition from r and writes protocol lines to w.
func (m *Mapper) Run(r io.Reader, w io.Writer) error {
	tweets, err := ParseRecords(r)
	if err != nil {
		return err
	}
	for _, tweet := range tweets {
		m.mapTweet(tweet, w)
	}
	return nil
}

func (m *Mapper) mapTweet(t models.Tweet, w io.Writer) {
	text := t.Content()
	if text == "" {
		return
	}
	month := m.monthKey(t.Stamp())

	switch m.mode {
	case ModeSentiment:
		label := sentiment.Label(sentiment.Score(text))
		emit(w, TypeSentiment, month, label)

	case ModeGeography:
		loc := t.Location
		if loc == nil {
			return
		}
		if city := strings.TrimSpace(loc.City); city != "" {
			if runes := []rune(city); len(runes) > maxCityLen {
				city = string(runes[:maxCityLen])
			}
			emit(w, TypeLocation, month, city)
		}
		if len(loc.Coordinates) >= 2 {
			item := strconv.FormatFloat(loc.Coordinates[0], 'f', -1, 64) +
				"," + strconv.FormatFloat(loc.Coordinates[1], 'f', -1, 64)
			emit(w, TypeCoordinates, month, item)
		}

	default: // hashtags
		if len(t.Hashtags) > 0 {
			for _, raw := range t.Hashtags {
				if tag := hashtag.Normalize(string(raw)); tag != "" {
					emit(w, TypeHashtag, month, "#"+tag)
				}
			}
			return
		}
		for _, tag := range textHashtagPattern.FindAllString(strings.ToLower(text), -1) {
			emit(w, TypeHashtag, month, tag)
		}
	}
}

func (m *Mapper) monthKey(stamp string) string {
	if stamp == "" {
		return m.fallbackMonth
	}
	ts, err := models.ParseTimestamp(stamp)
	if err != nil {
		return m.fallbackMonth
	}
	return models.MonthKey(ts)
}

func emit(w io.Writer, recordType, period, item string) {
	fmt.Fprintf(w, "%s\t%s\t%s\t1\n", recordType, period, item)
}
