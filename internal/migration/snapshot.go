package migration

import "time"

// Snapshot is the full relational dataset as flat row sets, exactly as read
// from the source tables. The transform joins these into the three document
// collections. Category rows are not read; documents carry no categories.
type Snapshot struct {
	People      []PersonRow
	Customers   []CustomerRow
	Riders      []RiderRow
	Restaurants []RestaurantRow
	MenuItems   []MenuItemRow
	Orders      []OrderRow
	OrderItems  []OrderItemRow
	Payments    []PaymentRow
	Deliveries  []DeliveryRow
}

type PersonRow struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

type CustomerRow struct {
	PersonID               int64
	DefaultAddress         string
	PreferredPaymentMethod string
}

type RiderRow struct {
	PersonID    int64
	VehicleType string
	Rating      float64
}

type RestaurantRow struct {
	ID      int64
	Name    string
	Address string
}

type MenuItemRow struct {
	ID           int64
	RestaurantID int64
	Name         string
	PriceCents   int64
}

type OrderRow struct {
	ID           int64
	CustomerID   int64
	RestaurantID int64
	CreatedAt    time.Time
	Status       string
	TotalCents   int64
}

type OrderItemRow struct {
	OrderID        int64
	MenuItemID     int64
	Quantity       int
	UnitPriceCents int64
}

type PaymentRow struct {
	OrderID     int64
	AmountCents int64
	Method      string
	PaidAt      time.Time
}

type DeliveryRow struct {
	OrderID    int64
	RiderID    *int64
	AssignedAt *time.Time
	Status     string
}
