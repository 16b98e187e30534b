// Package store defines the one domain-level contract both storage engines
// implement, so lifecycle and report semantics are specified once and every
// invariant can be tested against either backend through the same interface.
package store

import (
	"context"
	"time"

	"foodorders/internal/models"
	"foodorders/internal/reports"
)

// OrderItemInput identifies one order line. The relational adapter resolves
// it through the menu (by id, or by unique name within the restaurant); the
// document adapter has no menu collection and requires Name and UnitPrice to
// be supplied when MenuItemID alone cannot be trusted.
type OrderItemInput struct {
	MenuItemID int64
	Name       string
	Quantity   int
	UnitPrice  *models.Cents
}

type PlaceOrderInput struct {
	CustomerEmail  string
	RestaurantName string
	Items          []OrderItemInput
}

type AssignDeliveryInput struct {
	RiderEmail     string
	OrderID        int64
	DeliveryStatus models.DeliveryStatus
}

// RestaurantReportFilter selects orders for the customer-facing report.
// RestaurantName is required; From is inclusive, To exclusive.
type RestaurantReportFilter struct {
	RestaurantName string
	From           *time.Time
	To             *time.Time
}

// RiderReportFilter selects deliveries for the rider-facing report.
type RiderReportFilter struct {
	RiderEmail     string
	From           *time.Time
	To             *time.Time
	DeliveryStatus models.DeliveryStatus
}

// Store is implemented once per storage engine. Both implementations must
// produce equivalent results for the same underlying data.
type Store interface {
	// Name reports the mode identifier, "sql" or "mongo".
	Name() string

	// PlaceOrder creates exactly one order with its items in one atomic
	// unit and returns it with resolved names and prices. No partial state
	// survives a failure.
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, error)

	// Pay records the payment for an order and advances its status from
	// created to preparing. A second call returns Conflict; the original
	// paidAt is preserved.
	Pay(ctx context.Context, orderID int64, method string) (*models.Order, error)

	// AssignDelivery creates or updates the order's delivery. assignedAt
	// is set exactly once, on first assignment, via a single atomic
	// conditional update.
	AssignDelivery(ctx context.Context, in AssignDeliveryInput) (*models.Order, error)

	RestaurantReport(ctx context.Context, f RestaurantReportFilter) (*reports.RestaurantReport, error)
	RiderReport(ctx context.Context, f RiderReportFilter) (*reports.RiderReport, error)
}
