// Package filesystem loads a local directory of text and markdown
// files into documents for ingestion.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// Ensure Connector implements the port.
var _ driven.Loader = (*Connector)(nil)

// Extensions recognised as corpus files.
var textExtensions = map[string]bool{
	".md":  true,
	".txt": true,
}

// Connector reads UTF-8 text/markdown files from a directory tree.
type Connector struct{}

// New creates a filesystem connector.
func New() *Connector {
	return &Connector{}
}

// Load walks dir recursively and reads every .md and .txt file into a
// document. Hidden directories are skipped. Files are returned in
// deterministic path order.
func (c *Connector) Load(ctx context.Context, dir string) ([]domain.Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus path %s is not a directory: %w", dir, domain.ErrInvalidInput)
	}

	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if textExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking corpus directory: %w", err)
	}
	sort.Strings(paths)

	documents := make([]domain.Document, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		logger.Debug("Loaded %s (%d bytes)", path, len(data))
		documents = append(documents, domain.Document{
			Source:  path,
			Content: string(data),
		})
	}

	logger.Info("Loaded %d document(s) from %s", len(documents), dir)
	return documents, nil
}
