package sentiment

import (
	"github.com/dtnitsch/tweet-mapreduce/models"
	"github.com/dtnitsch/tweet-mapreduce/pkg/mapreduce"
)

// Mapped is the per-tweet sentiment fact, keyed by calendar day.
type Mapped struct {
	Score       float64 `json:"score"`
	Label       string  `json:"label"`
	TextPreview string  `json:"text_preview"`
}

const previewLen = 50

// Classify extracts a (day, sentiment) fact from one tweet. Tweets
// missing a timestamp or body, or carrying an unparseable timestamp,
// yield nothing.
func Classify(t models.Tweet) ([]mapreduce.Entry[Mapped], error) {
	stamp := t.Stamp()
	text := t.Content()
	if stamp == "" || text == "" {
		return nil, nil
	}

	ts, err := models.ParseTimestamp(stamp)
	if err != nil {
		// Dropped, not surfaced: the corpus carries legacy rows with
		// junk timestamps and the analysis excludes them.
		return nil, nil
	}

	score := Score(text)
	return []mapreduce.Entry[Mapped]{{
		Key: models.DayKey(ts),
		Value: Mapped{
			Score:       score,
			Label:       Label(score),
			TextPreview: models.Preview(text, previewLen),
		},
	}}, nil
}
