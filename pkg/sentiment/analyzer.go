// Package sentiment scores tweet text against fixed keyword lexicons
// and aggregates daily sentiment statistics.
package sentiment

import (
	"math"
	"regexp"
	"strings"
)

// positiveWords and negativeWords are the scoring lexicons; membership
// of a token contributes to the corresponding side of the score.
var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "amazing": {}, "awesome": {},
	"fantastic": {}, "wonderful": {}, "brilliant": {}, "perfect": {},
	"love": {}, "best": {}, "incredible": {}, "outstanding": {},
	"remarkable": {}, "superb": {}, "marvelous": {}, "exciting": {},
	"revolutionizing": {}, "successful": {}, "future": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "terrible": {}, "awful": {}, "horrible": {}, "worst": {},
	"hate": {}, "disgusting": {}, "pathetic": {}, "useless": {},
	"boring": {}, "disappointing": {}, "frustrating": {}, "annoying": {},
	"broken": {}, "failed": {}, "error": {}, "problem": {}, "issue": {},
}

// intensifiers boost the weight of the token immediately after them.
var intensifiers = map[string]struct{}{
	"very": {}, "extremely": {}, "really": {}, "totally": {},
	"completely": {}, "absolutely": {}, "quite": {}, "rather": {},
	"pretty": {}, "so": {}, "too": {},
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

const (
	intensifierWeight = 1.5
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Score rates text between -1 (very negative) and 1 (very positive).
// Empty text, or text with no word tokens, scores exactly 0.
func Score(text string) float64 {
	if text == "" {
		return 0.0
	}

	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return 0.0
	}

	var positive, negative float64
	for i, word := range words {
		weight := 1.0
		if i > 0 {
			if _, ok := intensifiers[words[i-1]]; ok {
				weight = intensifierWeight
			}
		}

		if _, ok := positiveWords[word]; ok {
			positive += weight
		} else if _, ok := negativeWords[word]; ok {
			negative += weight
		}
	}

	total := float64(len(words))
	score := positive/total - negative/total
	return math.Max(-1.0, math.Min(1.0, score))
}

// Label classifies a score. The thresholds are strict: exactly 0.1 is
// still neutral.
func Label(score float64) string {
	switch {
	case score > positiveThreshold:
		return "positive"
	case score < negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}
