package report

import (
	"fmt"
	"os"
)

// Writer puts the rendered document on disk. The report path is
// overwritten on every run; dry-run mode renders everything but
// leaves the filesystem alone.
type Writer struct {
	dryRun bool
}

func NewWriter(dryRun bool) *Writer {
	return &Writer{dryRun: dryRun}
}

func (w *Writer) Write(path string, content []byte) error {
	if w.dryRun {
		reportLogger.Info("Dry run: would write %d bytes to %s", len(content), path)
		return nil
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	reportLogger.Success("✓ Created: %s", path)
	return nil
}
