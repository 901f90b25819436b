package sentiment

import (
	"strings"
	"testing"

	"github.com/dtnitsch/tweet-mapreduce/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		tweet     models.Tweet
		wantKey   string
		wantLabel string
		wantNone  bool
	}{
		{
			name:      "positive example",
			tweet:     models.Tweet{Timestamp: "2024-03-05 10:00:00", TweetText: "this is a great and amazing day"},
			wantKey:   "2024-03-05",
			wantLabel: "positive",
		},
		{
			name:     "missing timestamp",
			tweet:    models.Tweet{TweetText: "great day"},
			wantNone: true,
		},
		{
			name:     "missing text",
			tweet:    models.Tweet{Timestamp: "2024-03-05 10:00:00"},
			wantNone: true,
		},
		{
			name:     "unparseable timestamp dropped",
			tweet:    models.Tweet{Timestamp: "yesterday-ish", TweetText: "great day"},
			wantNone: true,
		},
		{
			name:      "created_at fallback",
			tweet:     models.Tweet{CreatedAt: "2024-03-05T10:00:00Z", TweetText: "awful broken mess"},
			wantKey:   "2024-03-05",
			wantLabel: "negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Classify(tt.tweet)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if tt.wantNone {
				if len(entries) != 0 {
					t.Fatalf("Classify() = %+v, want no entries", entries)
				}
				return
			}
			if len(entries) != 1 {
				t.Fatalf("Classify() returned %d entries, want 1", len(entries))
			}
			if entries[0].Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", entries[0].Key, tt.wantKey)
			}
			if entries[0].Value.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", entries[0].Value.Label, tt.wantLabel)
			}
		})
	}
}

func TestClassifyPreviewTruncation(t *testing.T) {
	long := strings.Repeat("a", 80)
	entries, err := Classify(models.Tweet{Timestamp: "2024-03-05 10:00:00", TweetText: long})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	preview := entries[0].Value.TextPreview
	if len(preview) != 53 || !strings.HasSuffix(preview, "...") {
		t.Errorf("TextPreview = %q, want first 50 chars plus marker", preview)
	}

	entries, _ = Classify(models.Tweet{Timestamp: "2024-03-05 10:00:00", TweetText: "short"})
	if entries[0].Value.TextPreview != "short" {
		t.Errorf("TextPreview = %q, want untruncated text", entries[0].Value.TextPreview)
	}
}
