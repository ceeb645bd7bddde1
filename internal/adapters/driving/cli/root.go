// Package cli implements the askdoc command line interface.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/ai"
	configfile "github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/config/file"
	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/storage/sqlite"
	"github.com/askdoc-labs/askdoc-cli/internal/chunker"
	"github.com/askdoc-labs/askdoc-cli/internal/connectors/filesystem"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/core/services"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

var (
	verboseFlag bool
	configDir   string
)

// cfg is the loaded configuration, populated before any command runs.
var cfg configfile.Config

// Service singletons, wired on first use. Tests inject mocks here.
var (
	ingestService    driving.IngestService
	retrievalService driving.RetrievalService
	askService       driving.AskService
)

// store is kept so commands can close it on exit.
var store *sqlite.Store

var rootCmd = &cobra.Command{
	Use:   "askdoc",
	Short: "Ask questions answered from your own documents",
	Long: `askdoc indexes a directory of documents and answers questions
grounded in their content. Answers come only from the indexed documents;
when they do not contain the answer, askdoc says so instead of guessing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)

		// A .env file is optional; environment variables win either way.
		if err := godotenv.Load(); err == nil {
			logger.Debug("Loaded environment from .env")
		}

		loaded, err := configfile.Load(configDir)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.askdoc)")
}

// Execute runs the root command. v is the build version string.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	defer closeStore()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

// openStore opens the SQLite-backed vector store once per process.
func openStore() (*sqlite.Store, error) {
	if store != nil {
		return store, nil
	}
	s, err := sqlite.NewStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	logger.Debug("Index database: %s", s.Path())
	store = s
	return store, nil
}

func closeStore() {
	if store != nil {
		store.Close()
		store = nil
	}
}

// ensureRetrieval wires the retrieval service unless a test injected one.
func ensureRetrieval() error {
	if retrievalService != nil {
		return nil
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	embedder, err := openEmbedder()
	if err != nil {
		return err
	}

	svc, err := services.NewRetrievalService(embedder, s)
	if err != nil {
		return err
	}
	retrievalService = svc
	return nil
}

// openEmbedder returns the shared embedding service, checking
// connectivity so misconfiguration surfaces before any work begins.
func openEmbedder() (driven.EmbeddingService, error) {
	embedder, err := ai.SharedEmbeddingService(ai.EmbeddingSettings{
		Provider:   cfg.Embedding.Provider,
		Model:      cfg.Embedding.Model,
		BaseURL:    cfg.Embedding.BaseURL,
		Dimensions: cfg.Embedding.Dimensions,
	})
	if err != nil {
		return nil, err
	}
	if err := ai.ValidateEmbeddingService(embedder); err != nil {
		return nil, err
	}
	return embedder, nil
}

// ensureAsk wires the answer pipeline unless a test injected one.
// Fails fast when GROQ_API_KEY is missing.
func ensureAsk() error {
	if askService != nil {
		return nil
	}
	if err := ensureRetrieval(); err != nil {
		return err
	}

	llm, err := ai.CreateLLMService(ai.LLMSettings{
		Model:   cfg.LLM.Model,
		BaseURL: cfg.LLM.BaseURL,
	})
	if err != nil {
		return err
	}
	if err := ai.ValidateLLMService(llm); err != nil {
		llm.Close()
		return err
	}

	svc, err := services.NewAskService(retrievalService, llm, cfg.Retrieval.TopK)
	if err != nil {
		return err
	}
	askService = svc
	return nil
}

// ensureIngest wires the ingestion pipeline unless a test injected one.
func ensureIngest() error {
	if ingestService != nil {
		return nil
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	embedder, err := openEmbedder()
	if err != nil {
		return err
	}

	splitter, err := chunker.New(cfg.Chunking.Size, cfg.Chunking.Overlap)
	if err != nil {
		return fmt.Errorf("invalid chunking configuration: %w", err)
	}

	svc, err := services.NewIngestService(filesystem.New(), splitter, embedder, s)
	if err != nil {
		return err
	}
	ingestService = svc
	return nil
}
