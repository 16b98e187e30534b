package reports

import (
	"fmt"
	"testing"

	"foodorders/internal/models"
)

func TestBuildRestaurantReportSummary(t *testing.T) {
	r := BuildRestaurantReport(RestaurantData{
		Restaurant: "Plachutta",
		Orders:     3,
		Revenue:    5700, // 57.00
		Paid:       2,
	})

	if r.Summary.AverageOrderValue != 1900 {
		t.Fatalf("average = %s, want 19.00", r.Summary.AverageOrderValue)
	}
	if r.Summary.Unpaid != 1 {
		t.Fatalf("unpaid = %d, want 1", r.Summary.Unpaid)
	}
	if r.Summary.PaymentRate != "66.67" {
		t.Fatalf("payment rate = %s, want 66.67", r.Summary.PaymentRate)
	}
}

func TestBuildRestaurantReportEmpty(t *testing.T) {
	r := BuildRestaurantReport(RestaurantData{Restaurant: "Plachutta"})
	if r.Summary.AverageOrderValue != 0 || r.Summary.PaymentRate != "0.00" {
		t.Fatalf("empty report summary off: %+v", r.Summary)
	}
}

func TestTopItemsTrimAndTieBreak(t *testing.T) {
	items := []ItemBucket{
		{Name: "Gulasch", Quantity: 2},
		{Name: "Apfelstrudel", Quantity: 2},
		{Name: "Tafelspitz", Quantity: 9},
		{Name: "Schnitzel", Quantity: 5},
		{Name: "Knödel", Quantity: 4},
		{Name: "Melange", Quantity: 3},
	}
	r := BuildRestaurantReport(RestaurantData{Items: items})

	if len(r.TopItems) != 5 {
		t.Fatalf("expected 5 items, got %d", len(r.TopItems))
	}
	if r.TopItems[0].Name != "Tafelspitz" {
		t.Fatalf("expected Tafelspitz first, got %s", r.TopItems[0].Name)
	}
	// tied on quantity 2: alphabetical, so Apfelstrudel survives the trim
	if r.TopItems[4].Name != "Apfelstrudel" {
		t.Fatalf("expected Apfelstrudel last, got %s", r.TopItems[4].Name)
	}
}

func TestDayBucketsNewestFirstCappedAt30(t *testing.T) {
	var days []DayBucket
	for i := 1; i <= 40; i++ {
		days = append(days, DayBucket{Day: fmt.Sprintf("2026-07-%02d", i%31+1), Orders: 1})
	}
	r := BuildRestaurantReport(RestaurantData{ByDay: days})

	if len(r.ByDay) != 30 {
		t.Fatalf("expected 30 day buckets, got %d", len(r.ByDay))
	}
	for i := 1; i < len(r.ByDay); i++ {
		if r.ByDay[i-1].Day < r.ByDay[i].Day {
			t.Fatalf("days not descending at %d: %s before %s", i, r.ByDay[i-1].Day, r.ByDay[i].Day)
		}
	}
}

func TestBuildRiderReportCompletionRate(t *testing.T) {
	r := BuildRiderReport(RiderData{
		Rider:      "rider1@example.com",
		Deliveries: 4,
		Revenue:    models.Cents(8000),
		StatusCounts: map[string]int{
			"assigned":  1,
			"picked_up": 1,
			"delivered": 2,
		},
	})

	if r.Summary.CompletionRate != "50.00" {
		t.Fatalf("completion rate = %s, want 50.00", r.Summary.CompletionRate)
	}
	if r.Summary.AverageOrderValue != 2000 {
		t.Fatalf("average = %s, want 20.00", r.Summary.AverageOrderValue)
	}
}

func TestBuildRiderReportTopRestaurants(t *testing.T) {
	r := BuildRiderReport(RiderData{
		Deliveries: 6,
		Restaurants: []RestaurantBucket{
			{Restaurant: "Figlmüller", Deliveries: 2},
			{Restaurant: "Plachutta", Deliveries: 3},
			{Restaurant: "Café Central", Deliveries: 2},
		},
	})
	if r.TopRestaurants[0].Restaurant != "Plachutta" {
		t.Fatalf("expected Plachutta first, got %s", r.TopRestaurants[0].Restaurant)
	}
	if r.TopRestaurants[1].Restaurant != "Café Central" {
		t.Fatalf("expected Café Central second on tie-break, got %s", r.TopRestaurants[1].Restaurant)
	}
}
