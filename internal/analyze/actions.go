package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dtnitsch/tweet-mapreduce/models"
	"github.com/dtnitsch/tweet-mapreduce/pkg/corpus"
	"github.com/dtnitsch/tweet-mapreduce/pkg/geographic"
	"github.com/dtnitsch/tweet-mapreduce/pkg/hashtag"
	"github.com/dtnitsch/tweet-mapreduce/pkg/mapreduce"
	"github.com/dtnitsch/tweet-mapreduce/pkg/resultstore"
	"github.com/dtnitsch/tweet-mapreduce/pkg/sentiment"
	"github.com/dtnitsch/tweet-mapreduce/pkg/storage"
	"github.com/dtnitsch/tweet-mapreduce/pkg/trends"
	"github.com/urfave/cli/v2"
)

// sentimentReport is the sentiment result plus detected events.
type sentimentReport struct {
	*sentiment.Result
	Events *trends.EventReport `json:"significant_events"`
}

// hashtagReport is the hashtag result plus cross-month persistence.
type hashtagReport struct {
	*hashtag.Result
	Persistent []trends.PersistentTag `json:"persistent_hashtags"`
}

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// loadConfig resolves the run configuration: defaults, then the optional
// YAML file, then any flags the caller set explicitly.
func loadConfig(c *cli.Context, logger *slog.Logger) models.AnalyzeConfig {
	cfg := models.DefaultAnalyzeConfig()

	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			os.Exit(2)
		}
		cfg = loaded
	}

	if c.IsSet("input-dir") || cfg.InputDir == "" {
		cfg.InputDir = c.String("input-dir")
	}
	if c.IsSet("output-dir") || cfg.OutputDir == "" {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("format") || cfg.Format == "" {
		cfg.Format = c.String("format")
	}
	if c.IsSet("history-db") {
		cfg.HistoryDB = c.String("history-db")
	}
	if c.IsSet("event-threshold") {
		cfg.EventThreshold = c.Float64("event-threshold")
	}
	if c.IsSet("persist-months") {
		cfg.PersistMonths = c.Int("persist-months")
	}
	if c.IsSet("detect-languages") {
		cfg.DetectLanguages = c.Bool("detect-languages")
	}
	if cfg.HistoryDB == "" {
		cfg.HistoryDB = filepath.Join(cfg.OutputDir, resultstore.DefaultDBName)
	}

	return cfg
}

// recordRun appends the run to the history database. History failures
// are logged, never fatal: the result file is already on disk.
func recordRun(logger *slog.Logger, cfg models.AnalyzeConfig, run resultstore.Run) {
	db, err := resultstore.Open(cfg.HistoryDB)
	if err != nil {
		logger.Warn("failed to open run history", "path", cfg.HistoryDB, "error", err)
		return
	}
	defer db.Close()

	if _, err := db.RecordRun(run); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}

// SentimentAction runs the daily sentiment analysis over the corpus.
func SentimentAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg := loadConfig(c, logger)
	return runSentiment(logger, cfg)
}

func runSentiment(logger *slog.Logger, cfg models.AnalyzeConfig) error {
	start := time.Now()
	walker := corpus.NewWalker(cfg.InputDir, logger)

	entries, stats, err := mapreduce.Run(walker, sentiment.Classify)
	if err != nil {
		return fmt.Errorf("sentiment map phase failed: %w", err)
	}
	logger.Info("map phase complete", "analysis", "sentiment",
		"records", stats.Records, "mapped", stats.Mapped, "skipped", stats.Skipped)

	result := sentiment.Reduce(entries)
	events := trends.DetectEvents(result.Days, cfg.EventThreshold)
	report := sentimentReport{Result: result, Events: events}

	s := &storage.Storage{}
	outPath, err := s.WriteResult(cfg.OutputDir, "sentiment_analysis", cfg.Format, report)
	if err != nil {
		return fmt.Errorf("failed to write sentiment result: %w", err)
	}
	logger.Info("analysis complete", "analysis", "sentiment",
		"days", result.TotalDays, "events", len(events.Changes), "output", outPath)

	recordRun(logger, cfg, resultstore.Run{
		AnalysisType:  "sentiment",
		Duration:      time.Since(start),
		FilesWalked:   walker.Files,
		FilesFailed:   walker.Failed,
		RecordsSeen:   stats.Records,
		RecordsMapped: stats.Mapped,
		OutputPath:    outPath,
		Summary:       fmt.Sprintf("%d days analyzed, %d significant changes", result.TotalDays, len(events.Changes)),
	})
	return nil
}

// HashtagsAction runs the monthly hashtag trend analysis.
func HashtagsAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg := loadConfig(c, logger)
	return runHashtags(logger, cfg)
}

func runHashtags(logger *slog.Logger, cfg models.AnalyzeConfig) error {
	start := time.Now()
	walker := corpus.NewWalker(cfg.InputDir, logger)

	entries, stats, err := mapreduce.Run(walker, hashtag.Classify)
	if err != nil {
		return fmt.Errorf("hashtag map phase failed: %w", err)
	}
	logger.Info("map phase complete", "analysis", "hashtags",
		"records", stats.Records, "mapped", stats.Mapped, "skipped", stats.Skipped)

	result := hashtag.Reduce(entries)
	persistent := trends.PersistentHashtags(result.Months, cfg.PersistMonths)
	report := hashtagReport{Result: result, Persistent: persistent}

	s := &storage.Storage{}
	outPath, err := s.WriteResult(cfg.OutputDir, "hashtag_trends", cfg.Format, report)
	if err != nil {
		return fmt.Errorf("failed to write hashtag result: %w", err)
	}
	logger.Info("analysis complete", "analysis", "hashtags",
		"months", result.TotalMonths, "persistent", len(persistent), "output", outPath)

	recordRun(logger, cfg, resultstore.Run{
		AnalysisType:  "hashtags",
		Duration:      time.Since(start),
		FilesWalked:   walker.Files,
		FilesFailed:   walker.Failed,
		RecordsSeen:   stats.Records,
		RecordsMapped: stats.Mapped,
		OutputPath:    outPath,
		Summary:       fmt.Sprintf("%d months analyzed, %d persistent hashtags", result.TotalMonths, len(persistent)),
	})
	return nil
}

// GeographyAction runs the geographic distribution analysis.
func GeographyAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg := loadConfig(c, logger)
	return runGeography(logger, cfg)
}

func runGeography(logger *slog.Logger, cfg models.AnalyzeConfig) error {
	start := time.Now()
	walker := corpus.NewWalker(cfg.InputDir, logger)
	classifier := geographic.NewClassifier(cfg.DetectLanguages)

	entries, stats, err := mapreduce.Run(walker, classifier.Classify)
	if err != nil {
		return fmt.Errorf("geographic map phase failed: %w", err)
	}
	logger.Info("map phase complete", "analysis", "geography",
		"records", stats.Records, "mapped", stats.Mapped, "skipped", stats.Skipped)

	result := geographic.Reduce(entries)

	s := &storage.Storage{}
	outPath, err := s.WriteResult(cfg.OutputDir, "geographic_distribution", cfg.Format, result)
	if err != nil {
		return fmt.Errorf("failed to write geographic result: %w", err)
	}
	logger.Info("analysis complete", "analysis", "geography",
		"countries", result.TotalCountries, "cities", result.TotalCities, "output", outPath)

	recordRun(logger, cfg, resultstore.Run{
		AnalysisType:  "geography",
		Duration:      time.Since(start),
		FilesWalked:   walker.Files,
		FilesFailed:   walker.Failed,
		RecordsSeen:   stats.Records,
		RecordsMapped: stats.Mapped,
		OutputPath:    outPath,
		Summary:       fmt.Sprintf("%d countries, %d cities", result.TotalCountries, result.TotalCities),
	})
	return nil
}

// AllAction runs every analysis in sequence over the same corpus.
func AllAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg := loadConfig(c, logger)

	if err := runSentiment(logger, cfg); err != nil {
		return err
	}
	if err := runHashtags(logger, cfg); err != nil {
		return err
	}
	return runGeography(logger, cfg)
}
