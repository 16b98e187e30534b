package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"foodorders/internal/models"
)

func sampleOrder() *models.Order {
	return &models.Order{
		ID:        7,
		CreatedAt: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
		Status:    models.OrderCreated,
		Total:     3800,
		Restaurant: models.RestaurantRef{
			ID: 1, Name: "Plachutta", Address: "Wollzeile 38, Vienna",
		},
		Customer: models.CustomerRef{ID: 2, Name: "Customer One", Email: "customer1@example.com"},
		Items: []models.OrderLine{
			{MenuItemID: 3, Name: "Tafelspitz", Quantity: 2, UnitPrice: 1900},
		},
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	sql := &fakeStore{name: "sql", order: sampleOrder()}
	r := testRouter(sql, &fakeStore{name: "mongo"})

	w := do(t, r, http.MethodPost, "/student1/sql/place_order", `{
		"customerEmail": "customer1@example.com",
		"restaurantName": "Plachutta",
		"items": [{"menuItemId": 3, "quantity": 2}]
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if sql.placed == nil {
		t.Fatal("store never saw the order")
	}
	if sql.placed.RestaurantName != "Plachutta" || len(sql.placed.Items) != 1 {
		t.Fatalf("unexpected input %+v", sql.placed)
	}

	var body struct {
		OK    bool `json:"ok"`
		Order struct {
			OrderID     int64  `json:"orderId"`
			TotalAmount string `json:"totalAmount"`
		} `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.OK || body.Order.OrderID != 7 {
		t.Fatalf("body = %s", w.Body.String())
	}
	if body.Order.TotalAmount != "38.00" {
		t.Fatalf("totalAmount = %q, want a fixed two-decimal string", body.Order.TotalAmount)
	}
}

func TestPlaceOrderRoutesByMode(t *testing.T) {
	sql := &fakeStore{name: "sql", order: sampleOrder()}
	mongo := &fakeStore{name: "mongo", order: sampleOrder()}
	r := testRouter(sql, mongo)

	do(t, r, http.MethodPost, "/student1/mongo/place_order", `{
		"customerEmail": "customer1@example.com",
		"restaurantName": "Plachutta",
		"items": [{"name": "Tafelspitz", "quantity": 1, "price": "19.00"}]
	}`)
	if sql.placed != nil {
		t.Fatal("sql store used for a mongo request")
	}
	if mongo.placed == nil {
		t.Fatal("mongo store never called")
	}
	it := mongo.placed.Items[0]
	if it.UnitPrice == nil || *it.UnitPrice != 1900 {
		t.Fatalf("price not parsed into cents: %+v", it)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	bodies := []string{
		`{"restaurantName": "Plachutta", "items": [{"menuItemId": 1, "quantity": 1}]}`,
		`{"customerEmail": "not-an-email", "restaurantName": "Plachutta", "items": [{"menuItemId": 1, "quantity": 1}]}`,
		`{"customerEmail": "c@example.com", "restaurantName": "Plachutta", "items": []}`,
		`{"customerEmail": "c@example.com", "restaurantName": "Plachutta", "items": [{"menuItemId": 1, "quantity": 0}]}`,
		`{"customerEmail": "c@example.com", "restaurantName": "Plachutta", "items": [{"quantity": 1}]}`,
		`{"customerEmail": "c@example.com", "restaurantName": "Plachutta", "items": [{"name": "X", "quantity": 1, "price": "-1.00"}]}`,
		`not json`,
	}
	for _, body := range bodies {
		sql := &fakeStore{name: "sql", order: sampleOrder()}
		r := testRouter(sql, &fakeStore{name: "mongo"})
		w := do(t, r, http.MethodPost, "/student1/sql/place_order", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}
		if sql.placed != nil {
			t.Fatalf("body %s: invalid request reached the store", body)
		}
	}
}

func TestPayHappyPath(t *testing.T) {
	paid := sampleOrder()
	paid.Status = models.OrderPreparing
	paid.Payment = &models.Payment{Amount: 3800, Method: "card", PaidAt: paid.CreatedAt.Add(time.Minute)}
	sql := &fakeStore{name: "sql", order: paid}
	r := testRouter(sql, &fakeStore{name: "mongo"})

	w := do(t, r, http.MethodPost, "/student1/sql/pay", `{"orderId": 7, "paymentMethod": "card"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if sql.paidID != 7 || sql.paidWith != "card" {
		t.Fatalf("store saw id=%d method=%q", sql.paidID, sql.paidWith)
	}
}

func TestPayRejectsUnknownMethod(t *testing.T) {
	sql := &fakeStore{name: "sql", order: sampleOrder()}
	r := testRouter(sql, &fakeStore{name: "mongo"})

	w := do(t, r, http.MethodPost, "/student1/sql/pay", `{"orderId": 7, "paymentMethod": "barter"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if sql.paidID != 0 {
		t.Fatal("invalid method reached the store")
	}
}
