// Package streaming re-expresses the corpus analyses as a two-stage,
// line-oriented text protocol for an external distributed streaming
// engine. Mapper and reducer instances run as independent processes;
// all shuffling between them belongs to that engine.
package streaming

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dtnitsch/tweet-mapreduce/models"
)

// ParseRecords decodes a mapper input batch. It first tries the whole
// input as a JSON array (or single object); when that fails it falls
// back to newline-delimited JSON, dropping lines that do not parse.
func ParseRecords(r io.Reader) ([]models.Tweet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading batch input: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var batch []models.Tweet
	if err := json.Unmarshal(trimmed, &batch); err == nil {
		return batch, nil
	}
	var single models.Tweet
	if err := json.Unmarshal(trimmed, &single); err == nil {
		return []models.Tweet{single}, nil
	}

	var tweets []models.Tweet
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var tweet models.Tweet
		if err := json.Unmarshal(line, &tweet); err != nil {
			continue
		}
		tweets = append(tweets, tweet)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch input: %w", err)
	}
	return tweets, nil
}
