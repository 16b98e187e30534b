package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodorders/internal/models"
	"foodorders/internal/store"
)

// idAllocationAttempts bounds the read-max/insert retry loop when concurrent
// writers race for the same numeric order id.
const idAllocationAttempts = 5

func (s *Store) PlaceOrder(ctx context.Context, in store.PlaceOrderInput) (*models.Order, error) {
	customer, err := s.findCustomerByEmail(ctx, in.CustomerEmail)
	if err != nil {
		return nil, err
	}
	restaurant, err := s.findRestaurantByName(ctx, in.RestaurantName)
	if err != nil {
		return nil, err
	}

	lines := make([]models.OrderLine, 0, len(in.Items))
	var total models.Cents
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, store.BadRequestf("quantity must be a positive integer")
		}
		// There is no menu collection on this side; the caller supplies
		// the name/price snapshot and we trust it.
		if item.Name == "" || item.UnitPrice == nil {
			return nil, store.BadRequestf("document mode needs name and price for every item")
		}
		if *item.UnitPrice < 0 {
			return nil, store.BadRequestf("price must not be negative")
		}
		lines = append(lines, models.OrderLine{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  *item.UnitPrice,
		})
		total += *item.UnitPrice * models.Cents(item.Quantity)
	}

	order := &models.Order{
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Status:    models.OrderCreated,
		Total:     total,
		Restaurant: models.RestaurantRef{
			ID:      restaurant.ID,
			Name:    restaurant.Name,
			Address: restaurant.Address,
		},
		Customer: models.CustomerRef{
			ID:    customer.ID,
			Name:  customer.Name,
			Email: customer.Email,
		},
		Items: lines,
	}

	if err := s.insertOrder(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info().Int64("order_id", order.ID).Str("restaurant", order.Restaurant.Name).
		Stringer("total", order.Total).Msg("order placed")
	return order, nil
}

// insertOrder allocates the next numeric id and inserts, retrying on a
// duplicate-key collision. A failed attempt leaves nothing behind.
func (s *Store) insertOrder(ctx context.Context, order *models.Order) error {
	for attempt := 0; attempt < idAllocationAttempts; attempt++ {
		id, err := s.nextOrderID(ctx)
		if err != nil {
			return err
		}
		order.ID = id

		_, err = s.db.Collection(colOrders).InsertOne(ctx, order)
		if err == nil {
			return nil
		}
		if mongo.IsDuplicateKeyError(err) {
			s.log.Debug().Int64("order_id", id).Int("attempt", attempt+1).
				Msg("order id collision, retrying")
			continue
		}
		return err
	}
	return fmt.Errorf("could not allocate an order id after %d attempts", idAllocationAttempts)
}

func (s *Store) nextOrderID(ctx context.Context) (int64, error) {
	var doc struct {
		OrderID int64 `bson:"orderId"`
	}
	opts := options.FindOne().
		SetSort(bson.D{{Key: "orderId", Value: -1}}).
		SetProjection(bson.M{"orderId": 1})
	err := s.db.Collection(colOrders).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.OrderID + 1, nil
}

func (s *Store) Pay(ctx context.Context, orderID int64, method string) (*models.Order, error) {
	var existing models.Order
	err := s.db.Collection(colOrders).FindOne(ctx, bson.M{"orderId": orderID}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.NotFoundf("order %d not found", orderID)
	}
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		Amount: existing.Total,
		Method: method,
		PaidAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	// The payment-is-null filter makes the write first-writer-wins; a
	// losing second call maps to Conflict, same as the relational mode.
	res, err := s.db.Collection(colOrders).UpdateOne(ctx,
		bson.M{"orderId": orderID, "payment": nil},
		payUpdate(payment))
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, store.Conflictf("order %d is already paid", orderID)
	}

	s.log.Info().Int64("order_id", orderID).Str("method", method).Msg("order paid")
	return s.getOrder(ctx, orderID)
}

// payUpdate sets the payment and advances created → preparing in the same
// single-document update.
func payUpdate(payment models.Payment) bson.A {
	return bson.A{bson.M{"$set": bson.M{
		"payment": payment,
		"status": bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{"$status", string(models.OrderCreated)}},
			string(models.OrderPreparing),
			"$status",
		}},
	}}}
}

func (s *Store) AssignDelivery(ctx context.Context, in store.AssignDeliveryInput) (*models.Order, error) {
	rider, err := s.findRiderByEmail(ctx, in.RiderEmail)
	if err != nil {
		return nil, err
	}

	ref := models.RiderRef{ID: rider.ID, Name: rider.Name, Email: rider.Email}
	if rider.Rider != nil {
		ref.VehicleType = rider.Rider.VehicleType
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	res, err := s.db.Collection(colOrders).UpdateOne(ctx,
		bson.M{"orderId": in.OrderID},
		assignDeliveryUpdate(ref, in.DeliveryStatus, now))
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, store.NotFoundf("order %d not found", in.OrderID)
	}

	s.log.Info().Int64("order_id", in.OrderID).Str("rider", in.RiderEmail).
		Str("delivery_status", string(in.DeliveryStatus)).Msg("delivery assigned")
	return s.getOrder(ctx, in.OrderID)
}

// assignDeliveryUpdate replaces rider and status but keeps the first
// assignedAt: $ifNull falls back to now only when no assignment happened yet.
// One pipeline update, so concurrent re-assignments cannot double-set it.
func assignDeliveryUpdate(rider models.RiderRef, status models.DeliveryStatus, now time.Time) bson.A {
	return bson.A{bson.M{"$set": bson.M{
		"delivery": bson.M{
			"deliveryStatus": string(status),
			"rider":          rider,
			"assignedAt":     bson.M{"$ifNull": bson.A{"$delivery.assignedAt", now}},
		},
	}}}
}

func (s *Store) getOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	var order models.Order
	err := s.db.Collection(colOrders).FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.NotFoundf("order %d not found", orderID)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
