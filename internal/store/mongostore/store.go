// Package mongostore is the document Store adapter. Every logical operation
// is one single-document atomic update; the unique index on orderId is the
// collision guard for numeric id allocation.
package mongostore

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	colRestaurants = "restaurants"
	colPeople      = "people"
	colOrders      = "orders"
	colMeta        = "meta"
)

type Store struct {
	db  *mongo.Database
	log zerolog.Logger
}

func New(db *mongo.Database, log zerolog.Logger) *Store {
	return &Store{db: db, log: log.With().Str("store", "mongo").Logger()}
}

func (s *Store) Name() string { return "mongo" }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}
