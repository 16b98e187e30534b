package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodorders/internal/migration"
	"foodorders/internal/models"
)

const migrationKey = "migration"

// ImportSnapshot replaces the three working collections with the transformed
// set and upserts the migration marker. Clear-then-insert: a failure between
// the clear and the inserts leaves the document store incomplete, which the
// next run repairs; this is a demo-scale maintenance tool, not a staged swap.
func (s *Store) ImportSnapshot(ctx context.Context, docs *migration.DocumentSet) (*models.MigrationMarker, error) {
	for _, col := range []string{colRestaurants, colPeople, colOrders} {
		if _, err := s.db.Collection(col).DeleteMany(ctx, bson.M{}); err != nil {
			return nil, err
		}
	}

	if len(docs.Restaurants) > 0 {
		batch := make([]interface{}, len(docs.Restaurants))
		for i, d := range docs.Restaurants {
			batch[i] = d
		}
		if _, err := s.db.Collection(colRestaurants).InsertMany(ctx, batch); err != nil {
			return nil, err
		}
	}
	if len(docs.People) > 0 {
		batch := make([]interface{}, len(docs.People))
		for i, d := range docs.People {
			batch[i] = d
		}
		if _, err := s.db.Collection(colPeople).InsertMany(ctx, batch); err != nil {
			return nil, err
		}
	}
	if len(docs.Orders) > 0 {
		batch := make([]interface{}, len(docs.Orders))
		for i, d := range docs.Orders {
			batch[i] = d
		}
		if _, err := s.db.Collection(colOrders).InsertMany(ctx, batch); err != nil {
			return nil, err
		}
	}

	marker := &models.MigrationMarker{
		Key:             migrationKey,
		Source:          "sql",
		LastMigrationAt: time.Now().UTC().Truncate(time.Millisecond),
		Migrated:        docs.Counts(),
	}
	_, err := s.db.Collection(colMeta).ReplaceOne(ctx,
		bson.M{"_id": migrationKey}, marker, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return marker, nil
}

// ClearAll empties the working collections and the meta marker, so a stale
// "migrated" signal cannot outlive a relational reset.
func (s *Store) ClearAll(ctx context.Context) error {
	for _, col := range []string{colRestaurants, colPeople, colOrders, colMeta} {
		if _, err := s.db.Collection(col).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	s.log.Info().Msg("document collections cleared")
	return nil
}

// MigrationMarker returns the marker, or nil when no migration has occurred
// since the last reset.
func (s *Store) MigrationMarker(ctx context.Context) (*models.MigrationMarker, error) {
	var marker models.MigrationMarker
	err := s.db.Collection(colMeta).FindOne(ctx, bson.M{"_id": migrationKey}).Decode(&marker)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &marker, nil
}

// OrderCount reports how many order documents exist.
func (s *Store) OrderCount(ctx context.Context) (int64, error) {
	return s.db.Collection(colOrders).CountDocuments(ctx, bson.M{})
}
