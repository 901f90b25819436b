// Package models defines the shared data structures for the tweet corpus
// and analysis configuration.
package models

import "encoding/json"

// Location is the optional geo attachment of a tweet.
type Location struct {
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"` // [latitude, longitude]
}

// Hashtag accepts both corpus shapes: a bare string ("#AI") and the
// platform export object ({"text": "AI"}).
type Hashtag string

func (h *Hashtag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*h = Hashtag(s)
		return nil
	}

	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*h = Hashtag(obj.Text)
	return nil
}

// Tweet is one corpus record. No field is guaranteed present; consumers
// must tolerate any combination of missing fields.
type Tweet struct {
	Timestamp string    `json:"timestamp,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
	TweetText string    `json:"tweet_text,omitempty"`
	Text      string    `json:"text,omitempty"`
	FullText  string    `json:"full_text,omitempty"`
	Hashtags  []Hashtag `json:"hashtags,omitempty"`
	Location  *Location `json:"location,omitempty"`
}

// Content returns the tweet body, preferring tweet_text over the
// alternate export field names.
func (t Tweet) Content() string {
	if t.TweetText != "" {
		return t.TweetText
	}
	if t.Text != "" {
		return t.Text
	}
	return t.FullText
}

// Stamp returns the record timestamp, falling back to created_at.
func (t Tweet) Stamp() string {
	if t.Timestamp != "" {
		return t.Timestamp
	}
	return t.CreatedAt
}

// Preview truncates text to max characters, appending a truncation
// marker when anything was cut.
func Preview(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
