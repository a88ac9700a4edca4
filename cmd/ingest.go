package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teamlens/teamlens/internal/chunker"
	"github.com/teamlens/teamlens/internal/progress"
	"github.com/teamlens/teamlens/internal/vectordb"
)

var ingestReset bool

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load snapshots, build profiles, and index them for retrieval",
	Long: `Loads the configured snapshot files, correlates them into task and
employee profiles, embeds the profile text, and persists the vector
index to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		snap, tasks, employees, _, err := correlateSnapshot(cfg)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "loaded %d tickets, %d commits, %d emails\n",
				len(snap.Tickets), len(snap.Commits), len(snap.Emails))
		}
		fmt.Printf("Correlated %d task profiles and %d employee profiles\n",
			len(tasks), len(employees))

		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return err
		}
		store, err := vectordb.NewChromemStore(embedder)
		if err != nil {
			return fmt.Errorf("creating vector store: %w", err)
		}
		if !ingestReset {
			// Best effort. A fresh output directory has nothing to load.
			_ = store.Load(ctx, cfg.OutputDir)
		}

		opts := chunker.Options{ChunkSize: cfg.ChunkSize, ChunkOverlap: cfg.ChunkOverlap}
		docs := chunker.TaskDocuments(tasks, opts)
		docs = append(docs, chunker.EmployeeDocuments(employees, opts)...)

		reporter := progress.NewReporter()
		reporter.Start("Indexing profiles", len(docs))
		batchSize := 20
		for i := 0; i < len(docs); i += batchSize {
			end := i + batchSize
			if end > len(docs) {
				end = len(docs)
			}
			if err := store.AddDocuments(ctx, docs[i:end]); err != nil {
				reporter.Finish()
				return fmt.Errorf("indexing documents: %w", err)
			}
			reporter.Update(end, fmt.Sprintf("embedded %d/%d chunks", end, len(docs)))
		}
		reporter.Finish()

		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := store.Persist(ctx, cfg.OutputDir); err != nil {
			return fmt.Errorf("persisting index: %w", err)
		}

		fmt.Printf("Indexed %d chunks into %s\n", store.Count(), cfg.OutputDir)
		return nil
	},
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestReset, "reset", false, "discard the existing index before ingesting")
	rootCmd.AddCommand(ingestCmd)
}
