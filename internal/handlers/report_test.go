package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"foodorders/internal/models"
	"foodorders/internal/reports"
)

func TestRestaurantReportParsesWindow(t *testing.T) {
	sql := &fakeStore{name: "sql", restaurantReport: &reports.RestaurantReport{Restaurant: "Plachutta"}}
	r := testRouter(sql, &fakeStore{name: "mongo"})

	w := do(t, r, http.MethodGet,
		"/student1/sql/report?restaurantName=Plachutta&from=2026-08-01&to=2026-08-28", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	f := sql.restaurantFilter
	if f == nil || f.RestaurantName != "Plachutta" {
		t.Fatalf("filter = %+v", f)
	}
	wantFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if f.From == nil || !f.From.Equal(wantFrom) {
		t.Fatalf("from = %v, want %v", f.From, wantFrom)
	}
	// A bare date as upper bound covers the whole day.
	wantTo := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	if f.To == nil || !f.To.Equal(wantTo) {
		t.Fatalf("to = %v, want %v", f.To, wantTo)
	}
}

func TestRestaurantReportRequiresName(t *testing.T) {
	sql := &fakeStore{name: "sql"}
	r := testRouter(sql, &fakeStore{name: "mongo"})

	w := do(t, r, http.MethodGet, "/student1/sql/report", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if sql.restaurantFilter != nil {
		t.Fatal("request without a name reached the store")
	}
}

func TestRestaurantReportRejectsBadDates(t *testing.T) {
	sql := &fakeStore{name: "sql"}
	r := testRouter(sql, &fakeStore{name: "mongo"})

	w := do(t, r, http.MethodGet, "/student1/sql/report?restaurantName=Plachutta&from=yesterday", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid time") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestRiderReportFilters(t *testing.T) {
	mongo := &fakeStore{name: "mongo", riderReport: &reports.RiderReport{Rider: "rider1@example.com"}}
	r := testRouter(&fakeStore{name: "sql"}, mongo)

	w := do(t, r, http.MethodGet,
		"/student2/mongo/report?riderEmail=rider1@example.com&deliveryStatus=delivered", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	f := mongo.riderFilter
	if f == nil || f.RiderEmail != "rider1@example.com" {
		t.Fatalf("filter = %+v", f)
	}
	if f.DeliveryStatus != models.DeliveryDone {
		t.Fatalf("deliveryStatus = %q", f.DeliveryStatus)
	}
}

func TestRiderReportRejectsUnknownStatus(t *testing.T) {
	mongo := &fakeStore{name: "mongo"}
	r := testRouter(&fakeStore{name: "sql"}, mongo)

	w := do(t, r, http.MethodGet,
		"/student2/mongo/report?riderEmail=rider1@example.com&deliveryStatus=lost", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if mongo.riderFilter != nil {
		t.Fatal("invalid status reached the store")
	}
}

func TestRiderReportAcceptsRFC3339Bounds(t *testing.T) {
	mongo := &fakeStore{name: "mongo", riderReport: &reports.RiderReport{}}
	r := testRouter(&fakeStore{name: "sql"}, mongo)

	w := do(t, r, http.MethodGet,
		"/student2/mongo/report?riderEmail=rider1@example.com&to=2026-08-28T12:30:00%2B02:00", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	want := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	if mongo.riderFilter.To == nil || !mongo.riderFilter.To.Equal(want) {
		t.Fatalf("to = %v, want %v", mongo.riderFilter.To, want)
	}
}
