package history

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/tweet-mapreduce/pkg/resultstore"
	"github.com/urfave/cli/v2"
)

func openStore(c *cli.Context) (*resultstore.DB, error) {
	path := c.String("history-db")
	if path == "" {
		path = filepath.Join(c.String("output-dir"), resultstore.DefaultDBName)
	}
	db, err := resultstore.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run history: %w", err)
	}
	return db, nil
}

// RunsAction lists past analysis runs, most recent first.
func RunsAction(c *cli.Context) error {
	db, err := openStore(c)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-12s %-10s %-8s %-8s %-10s %-40s\n",
		"ID", "Started", "Analysis", "Duration", "Files", "Records", "Mapped", "Output")
	fmt.Println(strings.Repeat("-", 120))

	// Print each run
	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-12s %-10s %-8d %-8d %-10d %-40s\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.AnalysisType,
			r.Duration,
			r.FilesWalked,
			r.RecordsSeen,
			r.RecordsMapped,
			r.OutputPath,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'tweet-mapreduce history run <id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run.
func RunAction(c *cli.Context) error {
	db, err := openStore(c)
	if err != nil {
		return err
	}
	defer db.Close()

	runID := int64(c.Int("id"))
	if c.Args().Len() > 0 {
		if _, err := fmt.Sscanf(c.Args().First(), "%d", &runID); err != nil {
			return fmt.Errorf("invalid run id %q", c.Args().First())
		}
	}
	if runID == 0 {
		runs, err := db.ListRuns(1)
		if err != nil {
			return fmt.Errorf("failed to find latest run: %w", err)
		}
		if len(runs) == 0 {
			return fmt.Errorf("no runs recorded")
		}
		runID = runs[0].RunID
	}

	run, err := db.GetRun(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Started:    %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Analysis:   %s\n", run.AnalysisType)
	fmt.Printf("Duration:   %s\n", run.Duration)
	fmt.Printf("Partitions: %d walked (%d failed)\n", run.FilesWalked, run.FilesFailed)
	fmt.Printf("Records:    %d seen, %d facts mapped\n", run.RecordsSeen, run.RecordsMapped)
	fmt.Printf("Output:     %s\n", run.OutputPath)
	if run.Summary != "" {
		fmt.Printf("Summary:    %s\n", run.Summary)
	}

	return nil
}
