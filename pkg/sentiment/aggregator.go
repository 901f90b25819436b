package sentiment

import (
	"math"
	"time"

	"github.com/dtnitsch/tweet-mapreduce/pkg/mapreduce"
)

// DayStats summarizes one day of mapped sentiment facts.
type DayStats struct {
	AverageSentiment float64            `json:"average_sentiment"`
	TotalTweets      int                `json:"total_tweets"`
	Distribution     map[string]int     `json:"sentiment_distribution"`
	Percentages      map[string]float64 `json:"sentiment_percentages"`
}

// Result is the day-keyed sentiment aggregate with its run envelope.
type Result struct {
	AnalysisType    string              `json:"analysis_type"`
	GeneratedAt     string              `json:"generated_at"`
	TotalDays       int                 `json:"total_days"`
	Methodology     string              `json:"methodology"`
	SentimentScale  string              `json:"sentiment_scale"`
	OverallAverage  float64             `json:"overall_average"`
	MostPositiveDay string              `json:"most_positive_day,omitempty"`
	MostNegativeDay string              `json:"most_negative_day,omitempty"`
	Days            map[string]DayStats `json:"results"`
}

// Reduce groups mapped facts by day and computes daily statistics:
// average score, label counts and label percentages. Every day present
// in any fact appears exactly once; percentages for a day sum to 100
// within rounding tolerance.
func Reduce(entries []mapreduce.Entry[Mapped]) *Result {
	byDay := make(map[string][]Mapped)
	for _, e := range entries {
		byDay[e.Key] = append(byDay[e.Key], e.Value)
	}

	days := make(map[string]DayStats, len(byDay))
	for day, facts := range byDay {
		total := len(facts)
		sum := 0.0
		dist := map[string]int{"positive": 0, "negative": 0, "neutral": 0}
		for _, f := range facts {
			sum += f.Score
			dist[f.Label]++
		}

		pct := make(map[string]float64, len(dist))
		for label, count := range dist {
			pct[label] = round(float64(count)/float64(total)*100, 2)
		}

		days[day] = DayStats{
			AverageSentiment: round(sum/float64(total), 4),
			TotalTweets:      total,
			Distribution:     dist,
			Percentages:      pct,
		}
	}

	result := &Result{
		AnalysisType:   "daily_sentiment_analysis",
		GeneratedAt:    time.Now().Format(time.RFC3339),
		TotalDays:      len(days),
		Methodology:    "MapReduce - Daily average sentiment scores",
		SentimentScale: "Score between -1 (very negative) and 1 (very positive)",
		Days:           days,
	}

	if len(days) > 0 {
		sum := 0.0
		bestDay, worstDay := "", ""
		best, worst := math.Inf(-1), math.Inf(1)
		for day, stats := range days {
			sum += stats.AverageSentiment
			if stats.AverageSentiment > best || (stats.AverageSentiment == best && day < bestDay) {
				best, bestDay = stats.AverageSentiment, day
			}
			if stats.AverageSentiment < worst || (stats.AverageSentiment == worst && day < worstDay) {
				worst, worstDay = stats.AverageSentiment, day
			}
		}
		result.OverallAverage = round(sum/float64(len(days)), 4)
		result.MostPositiveDay = bestDay
		result.MostNegativeDay = worstDay
	}

	return result
}

func round(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
