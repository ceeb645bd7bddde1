package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [directory]",
	Short: "Index a directory of documents",
	Long: `Loads every .md and .txt file under the directory, splits them into
overlapping chunks, embeds each chunk and rebuilds the index.

The index is replaced wholesale: running ingest twice over the same
directory never duplicates content, and documents removed from the
directory disappear from the index.

With no argument the configured corpus directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	dir := cfg.Corpus.Dir
	if len(args) > 0 {
		dir = args[0]
	}

	if err := ensureIngest(); err != nil {
		return err
	}

	cmd.Printf("Indexing documents from %s ...\n", dir)
	start := time.Now()

	stats, err := ingestService.Ingest(cmd.Context(), dir)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Indexed %d chunk(s) from %d document(s) in %s\n",
		stats.Chunks, stats.Documents, time.Since(start).Round(time.Millisecond))
	if stats.Documents == 0 {
		cmd.Println("No documents found. Supported extensions: .md, .txt")
	}
	return nil
}
