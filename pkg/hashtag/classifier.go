// Package hashtag counts hashtag usage per calendar month.
package hashtag

import (
	"strings"

	"github.com/dtnitsch/tweet-mapreduce/models"
	"github.com/dtnitsch/tweet-mapreduce/pkg/mapreduce"
)

// Normalize canonicalizes a raw hashtag: trim, lowercase, strip one
// leading '#'. Normalizing is idempotent; an empty result means the
// tag carried no content.
func Normalize(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	return strings.TrimPrefix(tag, "#")
}

// Classify extracts one (month, hashtag) fact per tag on the tweet.
// Tweets without a timestamp or hashtags, or with an unparseable
// timestamp, yield nothing.
func Classify(t models.Tweet) ([]mapreduce.Entry[string], error) {
	stamp := t.Stamp()
	if stamp == "" || len(t.Hashtags) == 0 {
		return nil, nil
	}

	ts, err := models.ParseTimestamp(stamp)
	if err != nil {
		return nil, nil
	}
	month := models.MonthKey(ts)

	entries := make([]mapreduce.Entry[string], 0, len(t.Hashtags))
	for _, raw := range t.Hashtags {
		tag := Normalize(string(raw))
		if tag == "" {
			continue
		}
		entries = append(entries, mapreduce.Entry[string]{Key: month, Value: tag})
	}
	return entries, nil
}
