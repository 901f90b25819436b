package sentiment

import (
	"math"
	"strings"
	"testing"
)

func TestScoreBounds(t *testing.T) {
	texts := []string{
		"",
		"neutral words only",
		"great great great great",
		"terrible awful horrible bad worst",
		"very amazing extremely wonderful absolutely perfect",
		strings.Repeat("love ", 200),
		strings.Repeat("hate ", 200),
	}
	for _, text := range texts {
		score := Score(text)
		if score < -1.0 || score > 1.0 {
			t.Errorf("Score(%q) = %v, outside [-1, 1]", text, score)
		}
	}
}

func TestScoreEmptyText(t *testing.T) {
	if got := Score(""); got != 0.0 {
		t.Errorf("Score(\"\") = %v, want exactly 0.0", got)
	}
	// Punctuation only: no word tokens.
	if got := Score("!!! ... ???"); got != 0.0 {
		t.Errorf("Score(punctuation) = %v, want exactly 0.0", got)
	}
}

func TestScoreIntensifierAdjacency(t *testing.T) {
	// "very good": good weighted 1.5 over 2 tokens.
	got := Score("very good")
	want := 1.5 / 2.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score(\"very good\") = %v, want %v", got, want)
	}

	// A positive word two tokens after the intensifier keeps weight 1.0.
	got = Score("very plain good")
	want = 1.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score(\"very plain good\") = %v, want %v", got, want)
	}
}

func TestScoreIntensifierAppliesToNegative(t *testing.T) {
	got := Score("extremely bad")
	want := -1.5 / 2.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score(\"extremely bad\") = %v, want %v", got, want)
	}
}

func TestScoreMixedLexicon(t *testing.T) {
	// One positive, one negative, four tokens: contributions cancel.
	got := Score("good day bad day")
	if math.Abs(got) > 1e-9 {
		t.Errorf("Score(\"good day bad day\") = %v, want 0", got)
	}
}

func TestScoreExampleScenario(t *testing.T) {
	got := Score("this is a great and amazing day")
	if got <= 0.1 {
		t.Errorf("Score() = %v, want > 0.1", got)
	}
	if Label(got) != "positive" {
		t.Errorf("Label(%v) = %q, want %q", got, Label(got), "positive")
	}
}

func TestLabelStrictThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.1, "neutral"},
		{0.1000001, "positive"},
		{-0.1, "neutral"},
		{-0.1000001, "negative"},
		{0.0, "neutral"},
		{1.0, "positive"},
		{-1.0, "negative"},
	}
	for _, tt := range tests {
		if got := Label(tt.score); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	if Score("GREAT DAY") != Score("great day") {
		t.Error("Score() should be case-insensitive")
	}
}
