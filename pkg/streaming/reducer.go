package streaming

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dtnitsch/tweet-mapreduce/pkg/mapreduce"
)

const (
	topHashtagResults   = 10
	topGeographyResults = 20
)

// Reducer accumulates mapper output lines keyed by (period, item) and
// emits analysis-specific result lines at end of input. Malformed
// lines (wrong field count, non-integer count) are skipped without
// aborting the run.
type Reducer struct {
	mode string
}

// NewReducer builds a reducer for the given analysis mode.
func NewReducer(mode string) *Reducer {
	return &Reducer{mode: normalizeMode(mode)}
}

// Run consumes protocol lines from r until EOF, then writes
// <TYPE>_RESULT\t<period>\t<item>\t<count> lines to w: the top 10 for
// hashtags, every entry for sentiment, the top 20 for geography.
func (rd *Reducer) Run(r io.Reader, w io.Writer) error {
	counter := mapreduce.NewCounter()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 4 {
			continue
		}
		count, err := strconv.Atoi(parts[3])
		if err != nil {
			continue
		}
		counter.Add(parts[1]+"\t"+parts[2], count)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading mapper output: %w", err)
	}

	var resultType string
	var limit int
	switch rd.mode {
	case ModeSentiment:
		resultType = TypeSentiment + "_RESULT"
		limit = 0 // all entries
	case ModeGeography:
		resultType = "GEOGRAPHY_RESULT"
		limit = topGeographyResults
	default:
		resultType = TypeHashtag + "_RESULT"
		limit = topHashtagResults
	}

	for _, c := range counter.MostCommon(limit) {
		period, item, _ := strings.Cut(c.Item, "\t")
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", resultType, period, item, c.Count); err != nil {
			return fmt.Errorf("writing result line: %w", err)
		}
	}
	return nil
}
