package models

import "time"

// OrderStatus values follow the order lifecycle.
type OrderStatus string

const (
	OrderCreated   OrderStatus = "created"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
)

// DeliveryStatus values; monotonic by convention only, callers may set any of
// them in any order.
type DeliveryStatus string

const (
	DeliveryCreated  DeliveryStatus = "created"
	DeliveryAssigned DeliveryStatus = "assigned"
	DeliveryPickedUp DeliveryStatus = "picked_up"
	DeliveryDone     DeliveryStatus = "delivered"
)

// ValidDeliveryStatus reports whether s is one of the known delivery states.
func ValidDeliveryStatus(s string) bool {
	switch DeliveryStatus(s) {
	case DeliveryCreated, DeliveryAssigned, DeliveryPickedUp, DeliveryDone:
		return true
	}
	return false
}

// PaymentMethods accepted by Pay.
var PaymentMethods = []string{"cash", "card", "online"}

func ValidPaymentMethod(m string) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

// RestaurantRef is the restaurant snapshot embedded in an order at creation
// time; later edits to the restaurant do not propagate.
type RestaurantRef struct {
	ID      int64  `bson:"restaurantId" json:"restaurantId"`
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

// CustomerRef is the customer snapshot embedded in an order.
type CustomerRef struct {
	ID    int64  `bson:"personId" json:"personId"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// RiderRef is the rider snapshot embedded in a delivery at assignment time.
type RiderRef struct {
	ID          int64  `bson:"personId" json:"personId"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	VehicleType string `bson:"vehicleType,omitempty" json:"vehicleType,omitempty"`
}

// OrderLine is a weak entity: it only exists inside its order. UnitPrice is
// the menu price at order time and is never re-read afterwards.
type OrderLine struct {
	MenuItemID int64  `bson:"menuItemId" json:"menuItemId"`
	Name       string `bson:"name" json:"name"`
	Quantity   int    `bson:"quantity" json:"quantity"`
	UnitPrice  Cents  `bson:"unitPrice" json:"unitPrice"`
}

// Payment is immutable once made; PaidAt is set at most once.
type Payment struct {
	Amount Cents     `bson:"amount" json:"amount"`
	Method string    `bson:"method" json:"method"`
	PaidAt time.Time `bson:"paidAt" json:"paidAt"`
}

// Delivery tracks rider assignment for an order. AssignedAt is set on first
// assignment and never overwritten.
type Delivery struct {
	Status     DeliveryStatus `bson:"deliveryStatus" json:"deliveryStatus"`
	AssignedAt *time.Time     `bson:"assignedAt" json:"assignedAt"`
	Rider      *RiderRef      `bson:"rider" json:"rider"`
}

// Order is both the API response shape and the self-contained `orders`
// document: restaurant, customer and rider fields are snapshots.
type Order struct {
	ID         int64         `bson:"orderId" json:"orderId"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	Status     OrderStatus   `bson:"status" json:"status"`
	Total      Cents         `bson:"totalAmount" json:"totalAmount"`
	Restaurant RestaurantRef `bson:"restaurant" json:"restaurant"`
	Customer   CustomerRef   `bson:"customer" json:"customer"`
	Items      []OrderLine   `bson:"orderItems" json:"orderItems"`
	Payment    *Payment      `bson:"payment" json:"payment"`
	Delivery   *Delivery     `bson:"delivery" json:"delivery"`
}

// MigratedCounts records how many documents the last migration wrote.
type MigratedCounts struct {
	Restaurants int64 `bson:"restaurants" json:"restaurants"`
	People      int64 `bson:"people" json:"people"`
	Orders      int64 `bson:"orders" json:"orders"`
}

// MigrationMarker is the single `meta` document keyed "migration". Its
// absence means no migration has occurred since the last reset.
type MigrationMarker struct {
	Key             string         `bson:"_id" json:"-"`
	Source          string         `bson:"source" json:"source"`
	LastMigrationAt time.Time      `bson:"lastMigrationAt" json:"lastMigrationAt"`
	Migrated        MigratedCounts `bson:"migrated" json:"migrated"`
}
