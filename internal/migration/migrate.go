package migration

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"foodorders/internal/models"
)

// SnapshotReader reads the full relational dataset.
type SnapshotReader interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// DocumentImporter replaces the document store's working collections with the
// given set and records the migration marker.
type DocumentImporter interface {
	ImportSnapshot(ctx context.Context, docs *DocumentSet) (*models.MigrationMarker, error)
}

// Runner wires the relational reader to the document importer. Not
// incremental and not dual-write: each run fully overwrites the document
// store, including any document-mode writes made since the last run.
type Runner struct {
	source SnapshotReader
	target DocumentImporter
	log    zerolog.Logger
}

func NewRunner(source SnapshotReader, target DocumentImporter, log zerolog.Logger) *Runner {
	return &Runner{source: source, target: target, log: log}
}

func (r *Runner) Run(ctx context.Context) (*models.MigrationMarker, error) {
	snap, err := r.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("read relational snapshot: %w", err)
	}

	docs, err := BuildDocuments(snap)
	if err != nil {
		return nil, fmt.Errorf("transform snapshot: %w", err)
	}

	marker, err := r.target.ImportSnapshot(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("import documents: %w", err)
	}

	r.log.Info().
		Int64("restaurants", marker.Migrated.Restaurants).
		Int64("people", marker.Migrated.People).
		Int64("orders", marker.Migrated.Orders).
		Time("at", marker.LastMigrationAt).
		Msg("migration completed")
	return marker, nil
}
