// Package statfile writes game stat snapshots to JSON files.
package statfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retro-maze/maze-api/game"
)

// JSONSink writes stats snapshots as indented JSON under a base directory.
type JSONSink struct {
	baseDir string
}

// NewJSONSink creates a sink rooted at baseDir, creating it if needed.
func NewJSONSink(baseDir string) (*JSONSink, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating stats directory: %w", err)
	}
	return &JSONSink{baseDir: baseDir}, nil
}

// Write serializes the snapshot to the named file. The snapshot is written
// whole, so the file always reflects one consistent call to Stats.
func (s *JSONSink) Write(path string, stats game.Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}

	target := filepath.Join(s.baseDir, filepath.Base(path))
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("writing stats file: %w", err)
	}
	return nil
}
