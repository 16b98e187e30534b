package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"foodorders/internal/models"
	"foodorders/internal/store"
)

func findCustomerByEmail(ctx context.Context, q querier, email string) (*models.CustomerRef, error) {
	var ref models.CustomerRef
	err := q.QueryRow(ctx, `
		SELECT p.id, p.name, p.email
		FROM person p
		JOIN customer c ON c.person_id = p.id
		WHERE p.email = $1`, email).Scan(&ref.ID, &ref.Name, &ref.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.NotFoundf("customer %s not found", email)
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func findRiderByEmail(ctx context.Context, q querier, email string) (*models.RiderRef, error) {
	var ref models.RiderRef
	err := q.QueryRow(ctx, `
		SELECT p.id, p.name, p.email, r.vehicle_type
		FROM person p
		JOIN rider r ON r.person_id = p.id
		WHERE p.email = $1`, email).Scan(&ref.ID, &ref.Name, &ref.Email, &ref.VehicleType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.NotFoundf("rider %s not found", email)
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func findRestaurantByName(ctx context.Context, q querier, name string) (*models.RestaurantRef, error) {
	var ref models.RestaurantRef
	err := q.QueryRow(ctx, `
		SELECT id, name, address FROM restaurant WHERE name = $1`, name).
		Scan(&ref.ID, &ref.Name, &ref.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.NotFoundf("restaurant %s not found", name)
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
