// Package file loads and persists the askdoc configuration as a TOML
// file in the user's config directory. API keys never live in the
// file; they are read from the environment (optionally via a .env
// file) so the config can be committed or shared safely.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the config file name inside the config directory.
const DefaultFileName = "config.toml"

// Config is the full askdoc configuration.
type Config struct {
	Corpus    CorpusConfig    `toml:"corpus"`
	Chunking  ChunkingConfig  `toml:"chunking"`
	Embedding EmbeddingConfig `toml:"embedding"`
	LLM       LLMConfig       `toml:"llm"`
	Retrieval RetrievalConfig `toml:"retrieval"`
	Storage   StorageConfig   `toml:"storage"`
}

// CorpusConfig describes where the source documents live.
type CorpusConfig struct {
	// Dir is the directory scanned for documents during ingestion.
	Dir string `toml:"dir"`
}

// ChunkingConfig controls how documents are split before embedding.
type ChunkingConfig struct {
	Size    int `toml:"size"`
	Overlap int `toml:"overlap"`
}

// EmbeddingConfig selects the embedding provider and model.
type EmbeddingConfig struct {
	// Provider is "ollama" (default, local) or "openai".
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	BaseURL  string `toml:"base_url"`
	// Dimensions overrides the model's default vector size.
	Dimensions int `toml:"dimensions"`
}

// LLMConfig selects the chat model used to answer questions.
type LLMConfig struct {
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
}

// RetrievalConfig controls how many chunks back each answer.
type RetrievalConfig struct {
	TopK int `toml:"top_k"`
}

// StorageConfig describes where the chunk index is persisted.
type StorageConfig struct {
	// DataDir holds the SQLite index. Empty means ~/.askdoc/data.
	DataDir string `toml:"data_dir"`
}

// Default returns a config with all defaults filled in.
func Default() Config {
	return Config{
		Corpus:    CorpusConfig{Dir: "./documents"},
		Chunking:  ChunkingConfig{Size: 800, Overlap: 200},
		Embedding: EmbeddingConfig{Provider: "ollama"},
		Retrieval: RetrievalConfig{TopK: 5},
	}
}

// DefaultDir returns the askdoc config directory (~/.askdoc).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".askdoc"), nil
}

// Load reads the config file from configDir, filling defaults for
// anything the file omits. A missing file yields pure defaults; the
// file is only written by Save, never implicitly.
func Load(configDir string) (Config, error) {
	cfg := Default()

	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return cfg, err
		}
		configDir = dir
	}

	path := filepath.Join(configDir, DefaultFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to configDir, creating the directory if needed.
func Save(configDir string, cfg Config) error {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return err
		}
		configDir = dir
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	path := filepath.Join(configDir, DefaultFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Corpus.Dir == "" {
		c.Corpus.Dir = def.Corpus.Dir
	}
	if c.Chunking.Size == 0 {
		c.Chunking.Size = def.Chunking.Size
		// An explicit size with no overlap means overlap zero; only a
		// wholly absent chunking section gets the default overlap.
		if c.Chunking.Overlap == 0 {
			c.Chunking.Overlap = def.Chunking.Overlap
		}
	}
	if c.Embedding.Provider == "" {
		c.Embedding.Provider = def.Embedding.Provider
	}
	if c.Retrieval.TopK == 0 {
		c.Retrieval.TopK = def.Retrieval.TopK
	}
}
