package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultExtensions lists the source file types scanned when none are configured.
var DefaultExtensions = []string{".ts", ".tsx"}

// Walker traverses directories and selects files by extension.
type Walker struct {
	extensions map[string]bool
}

// NewWalker creates a Walker for the given extensions, e.g. ".tsx".
// Matching is case-insensitive. With no extensions, DefaultExtensions is used.
func NewWalker(extensions ...string) *Walker {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	w := &Walker{extensions: make(map[string]bool, len(extensions))}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		w.extensions[ext] = true
	}
	return w
}

// FileEntry represents a discovered candidate file.
type FileEntry struct {
	Path string
	Ext  string
}

// Supports reports whether path has one of the walker's extensions.
func (w *Walker) Supports(path string) bool {
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}

// Walk discovers all candidate files under the given root directory, in lexical order.
// Paths are joined onto root as given, so a relative root yields relative paths.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []FileEntry

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() || !w.Supports(path) {
			return nil
		}

		entries = append(entries, FileEntry{
			Path: path,
			Ext:  strings.ToLower(filepath.Ext(path)),
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered files")
	return entries, nil
}

// Paths walks root and returns only the file paths.
func (w *Walker) Paths(root string) ([]string, error) {
	entries, err := w.Walk(root)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths, nil
}
