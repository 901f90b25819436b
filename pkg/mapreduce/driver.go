// Package mapreduce implements the shared extraction/aggregation pattern
// behind the corpus analyses: a map phase that classifies every record
// into (key, value) facts, and analysis-specific reduce phases that
// aggregate facts grouped by key.
package mapreduce

import "github.com/dtnitsch/tweet-mapreduce/models"

// Entry is one mapped (grouping key, payload) fact.
type Entry[V any] struct {
	Key   string
	Value V
}

// Classifier extracts zero or more facts from a single tweet. Records
// missing required fields return no facts; a non-nil error marks a
// record the driver should skip and count, never abort on.
type Classifier[V any] func(models.Tweet) ([]Entry[V], error)

// Batches is the corpus iterator contract: it invokes fn once per
// partition file with that file's decoded records.
type Batches interface {
	Walk(fn func(path string, tweets []models.Tweet) error) error
}

// Stats reports what a map phase saw.
type Stats struct {
	Records int // records classified
	Mapped  int // facts extracted
	Skipped int // records rejected by the classifier with an error
}

// Run executes the map phase: classify every record of every batch and
// collect the extracted facts. Map fully completes before any reduce
// begins; per-record failures are skipped.
func Run[V any](source Batches, classify Classifier[V]) ([]Entry[V], Stats, error) {
	var entries []Entry[V]
	var stats Stats

	err := source.Walk(func(path string, tweets []models.Tweet) error {
		for _, tweet := range tweets {
			stats.Records++
			facts, err := classify(tweet)
			if err != nil {
				stats.Skipped++
				continue
			}
			stats.Mapped += len(facts)
			entries = append(entries, facts...)
		}
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	return entries, stats, nil
}
