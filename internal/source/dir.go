// Package source provides statistics payload sources. The canonical one
// is a world's stats/ directory of per-player JSON files named by UUID.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/statboard/statboard/internal/mcuuid"
	"github.com/statboard/statboard/internal/model"
)

// Entry is one player's raw stats payload with its owning UUID
type Entry struct {
	UUID string // canonical 32-char lowercase hex
	Raw  string
}

// Dir reads stats payloads from a directory of <uuid>.json files
type Dir struct {
	path   string
	logger *slog.Logger
}

// NewDir creates a source over the given stats directory
func NewDir(path string, logger *slog.Logger) *Dir {
	return &Dir{
		path:   path,
		logger: logger,
	}
}

// Entries lists every readable stats payload in the directory. Files
// whose names do not contain a valid UUID are skipped, as are files that
// fail to read: a bad file costs one player, never the whole listing.
func (d *Dir) Entries(ctx context.Context) ([]Entry, error) {
	files, err := os.ReadDir(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", model.ErrSourceNotFound, d.path)
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f.IsDir() {
			continue
		}

		uuid, ok := mcuuid.FromFilename(f.Name())
		if !ok {
			d.logger.Debug("skipping non-stats file", slog.String("file", f.Name()))
			continue
		}

		raw, err := os.ReadFile(filepath.Join(d.path, f.Name()))
		if err != nil {
			d.logger.Warn("skipping unreadable stats file",
				slog.String("file", f.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}

		entries = append(entries, Entry{UUID: uuid, Raw: string(raw)})
	}

	return entries, nil
}
