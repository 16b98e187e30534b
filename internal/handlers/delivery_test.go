package handlers

import (
	"net/http"
	"testing"
	"time"

	"foodorders/internal/models"
)

func TestAssignDeliveryHappyPath(t *testing.T) {
	order := sampleOrder()
	at := order.CreatedAt.Add(10 * time.Minute)
	order.Delivery = &models.Delivery{
		Status:     models.DeliveryAssigned,
		AssignedAt: &at,
		Rider:      &models.RiderRef{ID: 9, Name: "Rider One", Email: "rider1@example.com"},
	}
	mongo := &fakeStore{name: "mongo", order: order}
	r := testRouter(&fakeStore{name: "sql"}, mongo)

	w := do(t, r, http.MethodPost, "/student2/mongo/assign_delivery", `{
		"riderEmail": "rider1@example.com",
		"orderId": 7,
		"deliveryStatus": "assigned"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if mongo.assigned == nil {
		t.Fatal("store never called")
	}
	if mongo.assigned.OrderID != 7 || mongo.assigned.DeliveryStatus != models.DeliveryAssigned {
		t.Fatalf("unexpected input %+v", mongo.assigned)
	}
}

func TestAssignDeliveryValidation(t *testing.T) {
	bodies := []string{
		`{"orderId": 7, "deliveryStatus": "assigned"}`,
		`{"riderEmail": "rider1@example.com", "deliveryStatus": "assigned"}`,
		`{"riderEmail": "rider1@example.com", "orderId": 7, "deliveryStatus": "teleported"}`,
		`{"riderEmail": "rider1@example.com", "orderId": -1, "deliveryStatus": "assigned"}`,
	}
	for _, body := range bodies {
		sql := &fakeStore{name: "sql", order: sampleOrder()}
		r := testRouter(sql, &fakeStore{name: "mongo"})
		w := do(t, r, http.MethodPost, "/student2/sql/assign_delivery", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}
		if sql.assigned != nil {
			t.Fatalf("body %s: invalid request reached the store", body)
		}
	}
}
