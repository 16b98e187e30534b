package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"foodorders/internal/models"
	"foodorders/internal/store"
)

func (s *Store) findCustomerByEmail(ctx context.Context, email string) (*models.Person, error) {
	var p models.Person
	err := s.db.Collection(colPeople).
		FindOne(ctx, bson.M{"email": email, "type": models.PersonCustomer}).
		Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.NotFoundf("customer %s not found", email)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) findRiderByEmail(ctx context.Context, email string) (*models.Person, error) {
	var p models.Person
	err := s.db.Collection(colPeople).
		FindOne(ctx, bson.M{"email": email, "type": models.PersonRider}).
		Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.NotFoundf("rider %s not found", email)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) findRestaurantByName(ctx context.Context, name string) (*models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.Collection(colRestaurants).FindOne(ctx, bson.M{"name": name}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.NotFoundf("restaurant %s not found", name)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}
