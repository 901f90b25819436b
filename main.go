package main

import (
	"log"
	"os"

	"github.com/dtnitsch/tweet-mapreduce/internal/analyze"
	"github.com/dtnitsch/tweet-mapreduce/internal/history"
	"github.com/dtnitsch/tweet-mapreduce/internal/stream"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Optional .env for ANALYSIS_TYPE / STREAM_FALLBACK_MONTH
	_ = godotenv.Load()

	analyzeFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to a YAML config file",
		},
		&cli.StringFlag{
			Name:  "input-dir",
			Value: "tweets_organized",
			Usage: "root of the partitioned tweet corpus",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Value: "analysis_results",
			Usage: "directory for result files",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "json",
			Usage: "result format: json or yaml",
		},
		&cli.StringFlag{
			Name:  "history-db",
			Usage: "path to the run history database (default: <output-dir>/run-history.db)",
		},
		&cli.Float64Flag{
			Name:  "event-threshold",
			Value: 0.2,
			Usage: "minimum day-over-day sentiment delta flagged as significant",
		},
		&cli.IntFlag{
			Name:  "persist-months",
			Value: 3,
			Usage: "months a hashtag must stay in the top list to count as persistent",
		},
		&cli.BoolFlag{
			Name:  "detect-languages",
			Value: true,
			Usage: "detect tweet languages in the geographic analysis",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
	}

	streamFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "analysis-type",
			Value:   "hashtags",
			Usage:   "streaming analysis: hashtags, sentiment or geography",
			EnvVars: []string{"ANALYSIS_TYPE"},
		},
		&cli.StringFlag{
			Name:    "fallback-month",
			Value:   "2024-01",
			Usage:   "month bucket for records without a parseable timestamp",
			EnvVars: []string{"STREAM_FALLBACK_MONTH"},
		},
	}

	historyFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "history-db",
			Usage: "path to the run history database",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Value: "analysis_results",
			Usage: "directory holding the default run history database",
		},
	}

	app := &cli.App{
		Name:  "tweet-mapreduce",
		Usage: "MapReduce analytics over a partitioned tweet corpus",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "Run corpus analyses",
				Subcommands: []*cli.Command{
					{
						Name:   "sentiment",
						Usage:  "Daily sentiment averages with event detection",
						Flags:  analyzeFlags,
						Action: analyze.SentimentAction,
					},
					{
						Name:   "hashtags",
						Usage:  "Monthly top hashtags with persistence tracking",
						Flags:  analyzeFlags,
						Action: analyze.HashtagsAction,
					},
					{
						Name:   "geography",
						Usage:  "Geographic distribution with themes and languages",
						Flags:  analyzeFlags,
						Action: analyze.GeographyAction,
					},
					{
						Name:   "all",
						Usage:  "Run every analysis in sequence",
						Flags:  analyzeFlags,
						Action: analyze.AllAction,
					},
				},
			},
			{
				Name:   "mapper",
				Usage:  "Read tweet JSON on stdin, emit TSV map records on stdout",
				Flags:  streamFlags,
				Action: stream.MapperAction,
			},
			{
				Name:   "reducer",
				Usage:  "Read TSV map records on stdin, emit aggregated results on stdout",
				Flags:  streamFlags,
				Action: stream.ReducerAction,
			},
			{
				Name:  "history",
				Usage: "Inspect past analysis runs",
				Subcommands: []*cli.Command{
					{
						Name:  "runs",
						Usage: "List recorded runs",
						Flags: append([]cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Usage: "maximum number of runs to list",
							},
						}, historyFlags...),
						Action: history.RunsAction,
					},
					{
						Name:      "run",
						Usage:     "Show one run (latest when no id given)",
						ArgsUsage: "[id]",
						Flags: append([]cli.Flag{
							&cli.IntFlag{
								Name:  "id",
								Usage: "run id to show",
							},
						}, historyFlags...),
						Action: history.RunAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
