package hashtag

import (
	"time"

	"github.com/dtnitsch/tweet-mapreduce/pkg/mapreduce"
)

// TagCount is one ranked hashtag within a month.
type TagCount struct {
	Tag   string `json:"hashtag"`
	Count int    `json:"count"`
}

// Result is the month-keyed hashtag aggregate with its run envelope.
type Result struct {
	AnalysisType string                `json:"analysis_type"`
	GeneratedAt  string                `json:"generated_at"`
	TotalMonths  int                   `json:"total_months"`
	Methodology  string                `json:"methodology"`
	Months       map[string][]TagCount `json:"results"`
}

// TopPerMonth is how many hashtags each month retains.
const TopPerMonth = 10

// Reduce counts hashtags per month and keeps the ten most frequent,
// ties ranked in first-encountered order.
func Reduce(entries []mapreduce.Entry[string]) *Result {
	byMonth := make(map[string]*mapreduce.Counter)
	for _, e := range entries {
		counter, ok := byMonth[e.Key]
		if !ok {
			counter = mapreduce.NewCounter()
			byMonth[e.Key] = counter
		}
		counter.Add(e.Value, 1)
	}

	months := make(map[string][]TagCount, len(byMonth))
	for month, counter := range byMonth {
		top := counter.MostCommon(TopPerMonth)
		ranked := make([]TagCount, len(top))
		for i, c := range top {
			ranked[i] = TagCount{Tag: c.Item, Count: c.Count}
		}
		months[month] = ranked
	}

	return &Result{
		AnalysisType: "hashtag_trends",
		GeneratedAt:  time.Now().Format(time.RFC3339),
		TotalMonths:  len(months),
		Methodology:  "MapReduce - Top 10 hashtags per month",
		Months:       months,
	}
}
