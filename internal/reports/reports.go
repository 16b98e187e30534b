// Package reports holds the report output shapes and the derived-metric
// semantics shared by both storage adapters. Adapters only return raw grouped
// rows (counts and cent sums); everything computed from those rows — averages,
// rates, sort order, trims — lives here so the two modes cannot drift.
package reports

import (
	"sort"

	"foodorders/internal/models"
)

const (
	maxDayBuckets  = 30
	topListLimit   = 5
	completedState = string(models.DeliveryDone)
)

type StatusBucket struct {
	Status  string       `json:"status"`
	Orders  int          `json:"orders"`
	Revenue models.Cents `json:"revenue"`
}

type DayBucket struct {
	Day     string       `json:"day"` // UTC calendar date, YYYY-MM-DD
	Orders  int          `json:"orders"`
	Revenue models.Cents `json:"revenue"`
}

type MethodBucket struct {
	Method  string       `json:"method"`
	Orders  int          `json:"orders"`
	Revenue models.Cents `json:"revenue"`
}

type ItemBucket struct {
	MenuItemID int64        `json:"menuItemId,omitempty"`
	Name       string       `json:"name"`
	Quantity   int          `json:"quantity"`
	Revenue    models.Cents `json:"revenue"`
}

type RestaurantBucket struct {
	Restaurant string       `json:"restaurant"`
	Deliveries int          `json:"deliveries"`
	Revenue    models.Cents `json:"revenue"`
}

type RestaurantSummary struct {
	Orders            int          `json:"orders"`
	Revenue           models.Cents `json:"revenue"`
	AverageOrderValue models.Cents `json:"averageOrderValue"`
	Paid              int          `json:"paid"`
	Unpaid            int          `json:"unpaid"`
	PaymentRate       string       `json:"paymentRate"` // percent, fixed 2 decimals
}

type RestaurantReport struct {
	Restaurant      string            `json:"restaurant"`
	Summary         RestaurantSummary `json:"summary"`
	ByStatus        []StatusBucket    `json:"byStatus"`
	ByDay           []DayBucket       `json:"byDay"`
	ByPaymentMethod []MethodBucket    `json:"byPaymentMethod"`
	TopItems        []ItemBucket      `json:"topItems"`
}

type RiderSummary struct {
	Deliveries        int            `json:"deliveries"`
	Revenue           models.Cents   `json:"revenue"`
	AverageOrderValue models.Cents   `json:"averageOrderValue"`
	ByStatus          map[string]int `json:"byStatus"`
	CompletionRate    string         `json:"completionRate"` // percent, fixed 2 decimals
}

type RiderReport struct {
	Rider          string             `json:"rider"`
	Summary        RiderSummary       `json:"summary"`
	ByDay          []DayBucket        `json:"byDay"`
	TopRestaurants []RestaurantBucket `json:"topRestaurants"`
}

// RestaurantData is what an adapter aggregates out of its engine: totals plus
// unordered group rows.
type RestaurantData struct {
	Restaurant string
	Orders     int
	Revenue    models.Cents
	Paid       int
	ByStatus   []StatusBucket
	ByDay      []DayBucket
	ByMethod   []MethodBucket
	Items      []ItemBucket
}

// RiderData mirrors RestaurantData for the rider report. StatusCounts counts
// deliveries per delivery-status bucket over the filtered set.
type RiderData struct {
	Rider        string
	Deliveries   int
	Revenue      models.Cents
	StatusCounts map[string]int
	ByDay        []DayBucket
	Restaurants  []RestaurantBucket
}

// BuildRestaurantReport derives the customer/restaurant report from raw rows.
func BuildRestaurantReport(d RestaurantData) *RestaurantReport {
	r := &RestaurantReport{
		Restaurant: d.Restaurant,
		Summary: RestaurantSummary{
			Orders:            d.Orders,
			Revenue:           d.Revenue,
			AverageOrderValue: average(d.Revenue, d.Orders),
			Paid:              d.Paid,
			Unpaid:            d.Orders - d.Paid,
			PaymentRate:       models.Percent(d.Paid, d.Orders),
		},
		ByStatus:        append([]StatusBucket(nil), d.ByStatus...),
		ByDay:           append([]DayBucket(nil), d.ByDay...),
		ByPaymentMethod: append([]MethodBucket(nil), d.ByMethod...),
		TopItems:        append([]ItemBucket(nil), d.Items...),
	}

	sort.Slice(r.ByStatus, func(i, j int) bool { return r.ByStatus[i].Status < r.ByStatus[j].Status })
	sort.Slice(r.ByPaymentMethod, func(i, j int) bool { return r.ByPaymentMethod[i].Method < r.ByPaymentMethod[j].Method })
	r.ByDay = trimDays(r.ByDay)
	r.TopItems = topItems(r.TopItems)
	return r
}

// BuildRiderReport derives the rider/delivery report from raw rows.
func BuildRiderReport(d RiderData) *RiderReport {
	statuses := d.StatusCounts
	if statuses == nil {
		statuses = map[string]int{}
	}
	r := &RiderReport{
		Rider: d.Rider,
		Summary: RiderSummary{
			Deliveries:        d.Deliveries,
			Revenue:           d.Revenue,
			AverageOrderValue: average(d.Revenue, d.Deliveries),
			ByStatus:          statuses,
			CompletionRate:    models.Percent(statuses[completedState], d.Deliveries),
		},
		ByDay:          append([]DayBucket(nil), d.ByDay...),
		TopRestaurants: append([]RestaurantBucket(nil), d.Restaurants...),
	}

	r.ByDay = trimDays(r.ByDay)
	sort.SliceStable(r.TopRestaurants, func(i, j int) bool {
		a, b := r.TopRestaurants[i], r.TopRestaurants[j]
		if a.Deliveries != b.Deliveries {
			return a.Deliveries > b.Deliveries
		}
		return a.Restaurant < b.Restaurant
	})
	if len(r.TopRestaurants) > topListLimit {
		r.TopRestaurants = r.TopRestaurants[:topListLimit]
	}
	return r
}

// average rounds to the nearest cent.
func average(total models.Cents, n int) models.Cents {
	if n == 0 {
		return 0
	}
	half := models.Cents(n) / 2
	return (total + half) / models.Cents(n)
}

// trimDays keeps the most recent 30 distinct days, newest first.
func trimDays(days []DayBucket) []DayBucket {
	sort.Slice(days, func(i, j int) bool { return days[i].Day > days[j].Day })
	if len(days) > maxDayBuckets {
		days = days[:maxDayBuckets]
	}
	return days
}

// topItems keeps the five best-selling items by quantity; ties break on name
// so both storage modes return the same order.
func topItems(items []ItemBucket) []ItemBucket {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > topListLimit {
		items = items[:topListLimit]
	}
	return items
}
