// Package corpus walks the partitioned tweet corpus produced by the
// organizer: a directory tree whose leaves are tweets.json files, each
// holding one JSON array of records.
package corpus

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dtnitsch/tweet-mapreduce/models"
)

// PartitionName is the file name every corpus partition uses.
const PartitionName = "tweets.json"

// ErrEmptyCorpus is returned when a walk finds no readable partition.
var ErrEmptyCorpus = errors.New("no readable partition files found")

// Walker streams partition batches out of a corpus directory. A failed
// partition (unreadable file, malformed JSON) is logged and skipped;
// the walk keeps going.
type Walker struct {
	root   string
	logger *slog.Logger

	// Counters from the most recent Walk.
	Files  int
	Failed int
}

// NewWalker returns a walker rooted at dir.
func NewWalker(dir string, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{root: dir, logger: logger}
}

// Walk invokes fn once per readable partition with its decoded records.
// An error from fn aborts the walk; partition failures do not.
func (w *Walker) Walk(fn func(path string, tweets []models.Tweet) error) error {
	w.Files = 0
	w.Failed = 0

	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("corpus path unreadable, skipping", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || d.Name() != PartitionName {
			return nil
		}

		tweets, err := w.readPartition(path)
		if err != nil {
			w.Failed++
			w.logger.Warn("skipping partition", "path", path, "error", err)
			return nil
		}

		w.Files++
		w.logger.Info("processed partition", "path", path, "records", len(tweets))
		return fn(path, tweets)
	})
	if err != nil {
		return err
	}

	if w.Files == 0 {
		return ErrEmptyCorpus
	}
	return nil
}

func (w *Walker) readPartition(path string) ([]models.Tweet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tweets []models.Tweet
	if err := json.Unmarshal(data, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}
