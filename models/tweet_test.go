package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHashtagUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Hashtag
	}{
		{
			name:  "bare strings",
			input: `{"hashtags": ["#AI", "ml"]}`,
			want:  []Hashtag{"#AI", "ml"},
		},
		{
			name:  "platform export objects",
			input: `{"hashtags": [{"text": "BigData"}, {"text": "hadoop"}]}`,
			want:  []Hashtag{"BigData", "hadoop"},
		},
		{
			name:  "mixed shapes",
			input: `{"hashtags": ["#spark", {"text": "cloud"}]}`,
			want:  []Hashtag{"#spark", "cloud"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tweet Tweet
			if err := json.Unmarshal([]byte(tt.input), &tweet); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if len(tweet.Hashtags) != len(tt.want) {
				t.Fatalf("got %d hashtags, want %d", len(tweet.Hashtags), len(tt.want))
			}
			for i, h := range tweet.Hashtags {
				if h != tt.want[i] {
					t.Errorf("hashtag[%d] = %q, want %q", i, h, tt.want[i])
				}
			}
		})
	}
}

func TestTweetContentFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		tweet Tweet
		want  string
	}{
		{"tweet_text preferred", Tweet{TweetText: "a", Text: "b", FullText: "c"}, "a"},
		{"text fallback", Tweet{Text: "b", FullText: "c"}, "b"},
		{"full_text fallback", Tweet{FullText: "c"}, "c"},
		{"all missing", Tweet{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tweet.Content(); got != tt.want {
				t.Errorf("Content() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTweetStampFallback(t *testing.T) {
	tw := Tweet{CreatedAt: "2024-03-05 10:00:00"}
	if got := tw.Stamp(); got != "2024-03-05 10:00:00" {
		t.Errorf("Stamp() = %q, want created_at fallback", got)
	}

	tw.Timestamp = "2024-01-01 00:00:00"
	if got := tw.Stamp(); got != "2024-01-01 00:00:00" {
		t.Errorf("Stamp() = %q, want timestamp", got)
	}
}

func TestPreview(t *testing.T) {
	short := "short text"
	if got := Preview(short, 50); got != short {
		t.Errorf("Preview() = %q, want unchanged text", got)
	}

	long := strings.Repeat("x", 60)
	got := Preview(long, 50)
	if len(got) != 53 {
		t.Errorf("Preview() length = %d, want 53", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Preview() = %q, want truncation marker", got)
	}
}
