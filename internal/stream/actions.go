package stream

import (
	"fmt"
	"os"

	"github.com/dtnitsch/tweet-mapreduce/pkg/streaming"
	"github.com/urfave/cli/v2"
)

// MapperAction reads tweet JSON from stdin and emits TSV map records.
func MapperAction(c *cli.Context) error {
	m := streaming.NewMapper(c.String("analysis-type"), c.String("fallback-month"))
	if err := m.Run(os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("mapper failed: %w", err)
	}
	return nil
}

// ReducerAction reads TSV map records from stdin and emits result lines.
func ReducerAction(c *cli.Context) error {
	r := streaming.NewReducer(c.String("analysis-type"))
	if err := r.Run(os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("reducer failed: %w", err)
	}
	return nil
}
