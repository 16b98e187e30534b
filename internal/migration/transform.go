// Package migration reshapes a relational snapshot into the three document
// collections. The transform is a pure function of the snapshot: the same
// input always yields the same documents, so re-running a migration without
// intervening writes is a no-op in content.
package migration

import (
	"fmt"
	"sort"

	"foodorders/internal/models"
)

// DocumentSet is the transformed output ready for bulk insertion.
type DocumentSet struct {
	Restaurants []models.Restaurant
	People      []models.Person
	Orders      []models.Order
}

// Counts reports the document totals of a set.
func (d *DocumentSet) Counts() models.MigratedCounts {
	return models.MigratedCounts{
		Restaurants: int64(len(d.Restaurants)),
		People:      int64(len(d.People)),
		Orders:      int64(len(d.Orders)),
	}
}

// BuildDocuments joins the snapshot's row sets into nested documents.
// Output slices are sorted by id. A reference that cannot be resolved
// (possible only if the snapshot was read without FK enforcement) fails the
// whole transform; a half-shaped document set must never reach the importer.
func BuildDocuments(snap *Snapshot) (*DocumentSet, error) {
	customers := make(map[int64]CustomerRow, len(snap.Customers))
	for _, c := range snap.Customers {
		customers[c.PersonID] = c
	}
	riders := make(map[int64]RiderRow, len(snap.Riders))
	for _, r := range snap.Riders {
		riders[r.PersonID] = r
	}

	people := make([]models.Person, 0, len(snap.People))
	peopleByID := make(map[int64]models.Person, len(snap.People))
	for _, p := range snap.People {
		doc := models.Person{
			ID:    p.ID,
			Type:  models.PersonPlain,
			Name:  p.Name,
			Email: p.Email,
			Phone: p.Phone,
		}
		if c, ok := customers[p.ID]; ok {
			doc.Type = models.PersonCustomer
			doc.Customer = &models.CustomerProfile{
				DefaultAddress:         c.DefaultAddress,
				PreferredPaymentMethod: c.PreferredPaymentMethod,
			}
		} else if r, ok := riders[p.ID]; ok {
			doc.Type = models.PersonRider
			doc.Rider = &models.RiderProfile{
				VehicleType: r.VehicleType,
				Rating:      r.Rating,
			}
		}
		people = append(people, doc)
		peopleByID[p.ID] = doc
	}

	restaurants := make([]models.Restaurant, 0, len(snap.Restaurants))
	restaurantsByID := make(map[int64]models.Restaurant, len(snap.Restaurants))
	for _, r := range snap.Restaurants {
		doc := models.Restaurant{ID: r.ID, Name: r.Name, Address: r.Address}
		restaurants = append(restaurants, doc)
		restaurantsByID[r.ID] = doc
	}

	menuItems := make(map[int64]MenuItemRow, len(snap.MenuItems))
	for _, m := range snap.MenuItems {
		menuItems[m.ID] = m
	}
	itemsByOrder := make(map[int64][]OrderItemRow)
	for _, it := range snap.OrderItems {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
	}
	paymentsByOrder := make(map[int64]PaymentRow, len(snap.Payments))
	for _, p := range snap.Payments {
		paymentsByOrder[p.OrderID] = p
	}
	deliveriesByOrder := make(map[int64]DeliveryRow, len(snap.Deliveries))
	for _, d := range snap.Deliveries {
		deliveriesByOrder[d.OrderID] = d
	}

	orders := make([]models.Order, 0, len(snap.Orders))
	for _, o := range snap.Orders {
		restaurant, ok := restaurantsByID[o.RestaurantID]
		if !ok {
			return nil, fmt.Errorf("order %d references unknown restaurant %d", o.ID, o.RestaurantID)
		}
		customer, ok := peopleByID[o.CustomerID]
		if !ok {
			return nil, fmt.Errorf("order %d references unknown customer %d", o.ID, o.CustomerID)
		}

		doc := models.Order{
			ID:        o.ID,
			CreatedAt: o.CreatedAt.UTC(),
			Status:    models.OrderStatus(o.Status),
			Total:     models.Cents(o.TotalCents),
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
			Items: make([]models.OrderLine, 0, len(itemsByOrder[o.ID])),
		}

		for _, it := range itemsByOrder[o.ID] {
			mi, ok := menuItems[it.MenuItemID]
			if !ok {
				return nil, fmt.Errorf("order %d references unknown menu item %d", o.ID, it.MenuItemID)
			}
			doc.Items = append(doc.Items, models.OrderLine{
				MenuItemID: it.MenuItemID,
				Name:       mi.Name,
				Quantity:   it.Quantity,
				UnitPrice:  models.Cents(it.UnitPriceCents),
			})
		}

		if p, ok := paymentsByOrder[o.ID]; ok {
			doc.Payment = &models.Payment{
				Amount: models.Cents(p.AmountCents),
				Method: p.Method,
				PaidAt: p.PaidAt.UTC(),
			}
		}

		if d, ok := deliveriesByOrder[o.ID]; ok {
			delivery := &models.Delivery{Status: models.DeliveryStatus(d.Status)}
			if d.AssignedAt != nil {
				at := d.AssignedAt.UTC()
				delivery.AssignedAt = &at
			}
			if d.RiderID != nil {
				rp, ok := peopleByID[*d.RiderID]
				if !ok {
					return nil, fmt.Errorf("order %d references unknown rider %d", o.ID, *d.RiderID)
				}
				ref := &models.RiderRef{ID: rp.ID, Name: rp.Name, Email: rp.Email}
				if rp.Rider != nil {
					ref.VehicleType = rp.Rider.VehicleType
				}
				delivery.Rider = ref
			}
			doc.Delivery = delivery
		}

		orders = append(orders, doc)
	}

	sort.Slice(restaurants, func(i, j int) bool { return restaurants[i].ID < restaurants[j].ID })
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })

	return &DocumentSet{Restaurants: restaurants, People: people, Orders: orders}, nil
}
