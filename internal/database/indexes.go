package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const indexTimeout = 5 * time.Second

func EnsureRestaurantIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	_, err := db.Collection("restaurants").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("name_unique").SetUnique(true),
	})
	return err
}

func EnsurePeopleIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	_, err := db.Collection("people").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_unique").SetUnique(true),
	})
	return err
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	// orderId_unique backs the numeric id allocation retry loop.
	_, err := indexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().SetName("orderId_unique").SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = indexes.CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "restaurant.name", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("restaurant_createdAt"),
		},
		{
			Keys: bson.D{
				{Key: "delivery.rider.email", Value: 1},
				{Key: "delivery.deliveryStatus", Value: 1},
				{Key: "createdAt", Value: 1},
			},
			Options: options.Index().SetName("rider_status_createdAt"),
		},
	})
	return err
}
