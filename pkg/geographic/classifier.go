package geographic

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/dtnitsch/tweet-mapreduce/models"
	"github.com/dtnitsch/tweet-mapreduce/pkg/mapreduce"
)

// Mapped is the geographic fact extracted from one tweet, keyed by
// calendar month.
type Mapped struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Coordinates []float64 `json:"coordinates,omitempty"`
	Themes      []string  `json:"themes"`
	Language    string    `json:"language,omitempty"`
	TextPreview string    `json:"tweet_text"`
}

// UnknownMonth is the sentinel month key for unparseable timestamps.
// Unlike the sentiment and hashtag analyses, a bad timestamp does not
// drop the record here.
const UnknownMonth = "unknown"

const previewLen = 100

// Classifier extracts geographic facts. With language detection
// enabled, each fact also carries the tweet's detected language.
type Classifier struct {
	detector lingua.LanguageDetector
}

// NewClassifier builds a classifier. detectLanguage enables per-tweet
// language identification via lingua.
func NewClassifier(detectLanguage bool) *Classifier {
	c := &Classifier{}
	if detectLanguage {
		c.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English, lingua.French, lingua.German, lingua.Spanish,
				lingua.Italian, lingua.Dutch, lingua.Portuguese, lingua.Japanese,
			).
			Build()
	}
	return c
}

// Classify extracts a (month, geographic) fact from one tweet. Tweets
// without a non-empty location.city yield nothing.
func (c *Classifier) Classify(t models.Tweet) ([]mapreduce.Entry[Mapped], error) {
	if t.Location == nil {
		return nil, nil
	}
	city := strings.ToLower(strings.TrimSpace(t.Location.City))
	if city == "" {
		return nil, nil
	}

	country, ok := cityToCountry[city]
	if !ok {
		country = "Unknown"
	}

	month := UnknownMonth
	if stamp := t.Stamp(); stamp != "" {
		if ts, err := models.ParseTimestamp(stamp); err == nil {
			month = models.MonthKey(ts)
		}
	}

	fact := Mapped{
		City:        titleCase(city),
		Country:     country,
		Coordinates: t.Location.Coordinates,
		Themes:      Themes(t),
		TextPreview: models.Preview(t.Content(), previewLen),
	}

	if c.detector != nil {
		if lang, ok := c.detector.DetectLanguageOf(t.Content()); ok {
			fact.Language = strings.ToLower(lang.IsoCode639_1().String())
		}
	}

	return []mapreduce.Entry[Mapped]{{Key: month, Value: fact}}, nil
}

// Themes derives the tweet's themes from its text and hashtags. A theme
// matches when any of its keywords appears as a substring; no match
// assigns the general sentinel.
func Themes(t models.Tweet) []string {
	parts := []string{strings.ToLower(t.Content())}
	for _, h := range t.Hashtags {
		parts = append(parts, strings.ReplaceAll(strings.ToLower(string(h)), "#", ""))
	}
	content := strings.Join(parts, " ")

	var themes []string
	for _, theme := range themeKeywords {
		for _, keyword := range theme.Keywords {
			if strings.Contains(content, keyword) {
				themes = append(themes, theme.Name)
				break
			}
		}
	}
	if len(themes) == 0 {
		return []string{GeneralTheme}
	}
	return themes
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
