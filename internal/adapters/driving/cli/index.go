package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/logger"
)

var indexWatch bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the search index from the configured corpus",
	Long: `Loads every supported document under docs.dir, chunks and embeds the
text, and rebuilds the sparse and dense indices wholesale.

With --watch, stays running and rebuilds whenever a file changes.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVarP(&indexWatch, "watch", "w", false, "rebuild on file changes")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	source, err := app.newSource()
	if err != nil {
		return err
	}
	defer source.Close()

	sparse, dense, err := app.newIndexes()
	if err != nil {
		return err
	}

	indexer, err := app.newIndexer(source, sparse, dense)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := indexer.Build(ctx)
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}
	printReport(cmd, report)

	if !indexWatch {
		return nil
	}

	changes, err := source.Watch(ctx)
	if err != nil {
		return fmt.Errorf("starting watch: %w", err)
	}
	cmd.Println("Watching for changes (Ctrl-C to stop)...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			report, err := indexer.Build(ctx)
			if err != nil {
				// Prior indices keep serving; report and keep watching.
				logger.Warn("rebuild failed: %v", err)
				cmd.PrintErrf("rebuild failed: %v\n", err)
				continue
			}
			printReport(cmd, report)
		}
	}
}

func printReport(cmd *cobra.Command, report *domain.IndexBuildReport) {
	cmd.Printf("Indexed %d documents into %d chunks (%s, %d dims) in %s\n",
		report.Documents, report.Chunks, report.EmbeddingModel,
		report.Dimensions, report.Duration.Round(time.Millisecond))
}
