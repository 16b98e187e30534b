package mongostore

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"foodorders/internal/models"
)

func TestAssignDeliveryUpdateKeepsFirstAssignedAt(t *testing.T) {
	rider := models.RiderRef{ID: 3, Name: "Jakob Leitner", Email: "rider1@example.com"}
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	pipeline := assignDeliveryUpdate(rider, models.DeliveryAssigned, now)

	set := pipeline[0].(bson.M)["$set"].(bson.M)
	delivery := set["delivery"].(bson.M)

	assignedAt, ok := delivery["assignedAt"].(bson.M)
	if !ok {
		t.Fatalf("assignedAt is not an expression: %#v", delivery["assignedAt"])
	}
	ifNull, ok := assignedAt["$ifNull"].(bson.A)
	if !ok {
		t.Fatalf("assignedAt must be guarded by $ifNull, got %#v", assignedAt)
	}
	if ifNull[0] != "$delivery.assignedAt" {
		t.Fatalf("$ifNull must read the existing value first, got %#v", ifNull[0])
	}
	if ifNull[1] != now {
		t.Fatalf("$ifNull fallback must be the assignment time, got %#v", ifNull[1])
	}
	if delivery["deliveryStatus"] != string(models.DeliveryAssigned) {
		t.Fatalf("delivery status not set: %#v", delivery["deliveryStatus"])
	}
}

func TestPayUpdateAdvancesOnlyCreatedStatus(t *testing.T) {
	payment := models.Payment{Amount: 1900, Method: "card", PaidAt: time.Now().UTC()}

	pipeline := payUpdate(payment)

	set := pipeline[0].(bson.M)["$set"].(bson.M)
	if set["payment"] != payment {
		t.Fatalf("payment not set: %#v", set["payment"])
	}

	cond := set["status"].(bson.M)["$cond"].(bson.A)
	eq := cond[0].(bson.M)["$eq"].(bson.A)
	if eq[0] != "$status" || eq[1] != string(models.OrderCreated) {
		t.Fatalf("status condition must test for created, got %#v", eq)
	}
	if cond[1] != string(models.OrderPreparing) {
		t.Fatalf("status must advance to preparing, got %#v", cond[1])
	}
	if cond[2] != "$status" {
		t.Fatalf("non-created status must be left alone, got %#v", cond[2])
	}
}
