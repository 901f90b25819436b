// Package trends post-processes aggregated analysis results, flagging
// significant day-over-day sentiment swings and hashtags that persist
// across months.
package trends

import (
	"math"
	"sort"

	"github.com/dtnitsch/tweet-mapreduce/pkg/hashtag"
	"github.com/dtnitsch/tweet-mapreduce/pkg/sentiment"
)

const (
	// DefaultThreshold is the minimum absolute day-over-day score
	// delta considered significant.
	DefaultThreshold = 0.2

	// DefaultPersistMonths is how many monthly top lists a hashtag
	// must appear in to count as persistent.
	DefaultPersistMonths = 3

	// minDays below which event detection reports insufficient data.
	minDays = 3
)

// Change is one day-over-day sentiment swing.
type Change struct {
	Date  string  `json:"date"`
	Delta float64 `json:"delta"`
	Score float64 `json:"score"`
}

// EventReport is the outcome of sentiment event detection.
type EventReport struct {
	Threshold        float64  `json:"threshold"`
	DaysAnalyzed     int      `json:"days_analyzed"`
	InsufficientData bool     `json:"insufficient_data"`
	Changes          []Change `json:"significant_changes"`
}

// DetectEvents scans the day-keyed sentiment result in chronological
// order and flags deltas whose absolute value exceeds the threshold,
// ranked by magnitude descending. Fewer than three days is reported as
// insufficient data, not an error.
func DetectEvents(days map[string]sentiment.DayStats, threshold float64) *EventReport {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	report := &EventReport{Threshold: threshold, DaysAnalyzed: len(days)}

	if len(days) < minDays {
		report.InsufficientData = true
		return report
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for i := 1; i < len(dates); i++ {
		prev := days[dates[i-1]].AverageSentiment
		curr := days[dates[i]].AverageSentiment
		delta := curr - prev
		if math.Abs(delta) > threshold {
			report.Changes = append(report.Changes, Change{
				Date:  dates[i],
				Delta: delta,
				Score: curr,
			})
		}
	}

	sort.SliceStable(report.Changes, func(i, j int) bool {
		return math.Abs(report.Changes[i].Delta) > math.Abs(report.Changes[j].Delta)
	})
	return report
}

// PersistentTag is a hashtag present in several monthly top lists.
type PersistentTag struct {
	Tag           string `json:"hashtag"`
	Months        int    `json:"months"`
	TotalMentions int    `json:"total_mentions"`
}

// PersistentHashtags returns tags appearing in at least minMonths of
// the monthly top lists, ranked by month count then total mentions.
func PersistentHashtags(months map[string][]hashtag.TagCount, minMonths int) []PersistentTag {
	if minMonths <= 0 {
		minMonths = DefaultPersistMonths
	}

	monthCount := make(map[string]int)
	mentions := make(map[string]int)
	firstSeen := make(map[string]int)
	next := 0

	monthKeys := make([]string, 0, len(months))
	for month := range months {
		monthKeys = append(monthKeys, month)
	}
	sort.Strings(monthKeys)

	for _, month := range monthKeys {
		for _, tc := range months[month] {
			if _, ok := firstSeen[tc.Tag]; !ok {
				firstSeen[tc.Tag] = next
				next++
			}
			monthCount[tc.Tag]++
			mentions[tc.Tag] += tc.Count
		}
	}

	var persistent []PersistentTag
	for tag, count := range monthCount {
		if count >= minMonths {
			persistent = append(persistent, PersistentTag{
				Tag:           tag,
				Months:        count,
				TotalMentions: mentions[tag],
			})
		}
	}

	sort.Slice(persistent, func(i, j int) bool {
		if persistent[i].Months != persistent[j].Months {
			return persistent[i].Months > persistent[j].Months
		}
		if persistent[i].TotalMentions != persistent[j].TotalMentions {
			return persistent[i].TotalMentions > persistent[j].TotalMentions
		}
		return firstSeen[persistent[i].Tag] < firstSeen[persistent[j].Tag]
	})
	return persistent
}
