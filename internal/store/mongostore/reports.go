package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"foodorders/internal/models"
	"foodorders/internal/reports"
	"foodorders/internal/store"
)

// The pipelines below mirror the relational GROUP BY queries: same match
// window (From inclusive, To exclusive), same UTC calendar-day grouping via
// $dateToString, and all derived metrics left to the shared reports builder.

func (s *Store) RestaurantReport(ctx context.Context, f store.RestaurantReportFilter) (*reports.RestaurantReport, error) {
	restaurant, err := s.findRestaurantByName(ctx, f.RestaurantName)
	if err != nil {
		return nil, err
	}

	match := bson.M{"restaurant.name": restaurant.Name}
	addCreatedAtRange(match, f.From, f.To)

	data := reports.RestaurantData{Restaurant: restaurant.Name}

	var summary []struct {
		Orders  int          `bson:"orders"`
		Revenue models.Cents `bson:"revenue"`
		Paid    int          `bson:"paid"`
	}
	err = s.aggregate(ctx, colOrders, bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{
			"_id":     nil,
			"orders":  bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalAmount"},
			"paid": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$ne": bson.A{"$payment", nil}}, 1, 0,
			}}},
		}},
	}, &summary)
	if err != nil {
		return nil, err
	}
	if len(summary) > 0 {
		data.Orders = summary[0].Orders
		data.Revenue = summary[0].Revenue
		data.Paid = summary[0].Paid
	}

	var byStatus []struct {
		Status  string       `bson:"_id"`
		Orders  int          `bson:"orders"`
		Revenue models.Cents `bson:"revenue"`
	}
	err = s.aggregate(ctx, colOrders, bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{
			"_id":     "$status",
			"orders":  bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalAmount"},
		}},
	}, &byStatus)
	if err != nil {
		return nil, err
	}
	for _, b := range byStatus {
		data.ByStatus = append(data.ByStatus, reports.StatusBucket{
			Status: b.Status, Orders: b.Orders, Revenue: b.Revenue,
		})
	}

	var byDay []struct {
		Day     string       `bson:"_id"`
		Orders  int          `bson:"orders"`
		Revenue models.Cents `bson:"revenue"`
	}
	err = s.aggregate(ctx, colOrders, bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d", "date": "$createdAt",
			}},
			"orders":  bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalAmount"},
		}},
	}, &byDay)
	if err != nil {
		return nil, err
	}
	for _, b := range byDay {
		data.ByDay = append(data.ByDay, reports.DayBucket{
			Day: b.Day, Orders: b.Orders, Revenue: b.Revenue,
		})
	}

	paidMatch := bson.M{"restaurant.name": restaurant.Name, "payment": bson.M{"$ne": nil}}
	addCreatedAtRange(paidMatch, f.From, f.To)
	var byMethod []struct {
		Method  string       `bson:"_id"`
		Orders  int          `bson:"orders"`
		Revenue models.Cents `bson:"revenue"`
	}
	err = s.aggregate(ctx, colOrders, bson.A{
		bson.M{"$match": paidMatch},
		bson.M{"$group": bson.M{
			"_id":     "$payment.method",
			"orders":  bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalAmount"},
		}},
	}, &byMethod)
	if err != nil {
		return nil, err
	}
	for _, b := range byMethod {
		data.ByMethod = append(data.ByMethod, reports.MethodBucket{
			Method: b.Method, Orders: b.Orders, Revenue: b.Revenue,
		})
	}

	var items []struct {
		ID struct {
			MenuItemID int64  `bson:"menuItemId"`
			Name       string `bson:"name"`
		} `bson:"_id"`
		Quantity int          `bson:"quantity"`
		Revenue  models.Cents `bson:"revenue"`
	}
	err = s.aggregate(ctx, colOrders, bson.A{
		bson.M{"$match": match},
		bson.M{"$unwind": "$orderItems"},
		bson.M{"$group": bson.M{
			"_id": bson.M{
				"menuItemId": "$orderItems.menuItemId",
				"name":       "$orderItems.name",
			},
			"quantity": bson.M{"$sum": "$orderItems.quantity"},
			"revenue": bson.M{"$sum": bson.M{"$multiply": bson.A{
				"$orderItems.quantity", "$orderItems.unitPrice",
			}}},
		}},
	}, &items)
	if err != nil {
		return nil, err
	}
	for _, b := range items {
		data.Items = append(data.Items, reports.ItemBucket{
			MenuItemID: b.ID.MenuItemID,
			Name:       b.ID.Name,
			Quantity:   b.Quantity,
			Revenue:    b.Revenue,
		})
	}

	return reports.BuildRestaurantReport(data), nil
}

func (s *Store) RiderReport(ctx context.Context, f store.RiderReportFilter) (*reports.RiderReport, error) {
	rider, err := s.findRiderByEmail(ctx, f.RiderEmail)
	if err != nil {
		return nil, err
	}

	match := bson.M{"delivery.rider.email": rider.Email}
	if f.DeliveryStatus != "" {
		match["delivery.deliveryStatus"] = string(f.DeliveryStatus)
	}
	addCreatedAtRange(match, f.From, f.To)

	data := reports.RiderData{Rider: rider.Email, StatusCounts: map[string]int{}}

	var summary []struct {
		Deliveries int          `bson:"deliveries"`
		Revenue    models.Cents `bson:"revenue"`
	}
	err = s.aggregate(ctx, colOrders, bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{
			"_id":        nil,
			"deliveries": bson.M{"$sum": 1},
			"revenue":    bson.M{"$sum": "$totalAmount"},
		}},
	}, &summary)
	if err != nil {
		return nil, err
	}
	if len(summary) > 0 {
		data.Deliveries = summary[0].Deliveries
		data.Revenue = summary[0].Revenue
	}

	var byStatus []struct {
		Status string `bson:"_id"`
		Count  int    `bson:"count"`
	}
	err = s.aggregate(ctx, colOrders, bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{
			"_id":   "$delivery.deliveryStatus",
			"count": bson.M{"$sum": 1},
		}},
	}, &byStatus)
	if err != nil {
		return nil, err
	}
	for _, b := range byStatus {
		data.StatusCounts[b.Status] = b.Count
	}

	var byDay []struct {
		Day     string       `bson:"_id"`
		Orders  int          `bson:"orders"`
		Revenue models.Cents `bson:"revenue"`
	}
	err = s.aggregate(ctx, colOrders, bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d", "date": "$createdAt",
			}},
			"orders":  bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalAmount"},
		}},
	}, &byDay)
	if err != nil {
		return nil, err
	}
	for _, b := range byDay {
		data.ByDay = append(data.ByDay, reports.DayBucket{
			Day: b.Day, Orders: b.Orders, Revenue: b.Revenue,
		})
	}

	var byRestaurant []struct {
		Restaurant string       `bson:"_id"`
		Deliveries int          `bson:"deliveries"`
		Revenue    models.Cents `bson:"revenue"`
	}
	err = s.aggregate(ctx, colOrders, bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{
			"_id":        "$restaurant.name",
			"deliveries": bson.M{"$sum": 1},
			"revenue":    bson.M{"$sum": "$totalAmount"},
		}},
	}, &byRestaurant)
	if err != nil {
		return nil, err
	}
	for _, b := range byRestaurant {
		data.Restaurants = append(data.Restaurants, reports.RestaurantBucket{
			Restaurant: b.Restaurant, Deliveries: b.Deliveries, Revenue: b.Revenue,
		})
	}

	return reports.BuildRiderReport(data), nil
}

func addCreatedAtRange(match bson.M, from, to *time.Time) {
	window := bson.M{}
	if from != nil {
		window["$gte"] = *from
	}
	if to != nil {
		window["$lt"] = *to
	}
	if len(window) > 0 {
		match["createdAt"] = window
	}
}

// aggregate runs a pipeline and decodes all result documents into dest.
func (s *Store) aggregate(ctx context.Context, collection string, pipeline bson.A, dest interface{}) error {
	cursor, err := s.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, dest)
}
