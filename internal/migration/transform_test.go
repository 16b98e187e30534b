package migration

import (
	"reflect"
	"testing"
	"time"

	"foodorders/internal/models"
)

func sampleSnapshot() *Snapshot {
	created := time.Date(2026, 8, 20, 12, 30, 0, 0, time.UTC)
	paid := created.Add(10 * time.Minute)
	assigned := created.Add(20 * time.Minute)
	riderID := int64(3)

	return &Snapshot{
		People: []PersonRow{
			{ID: 1, Name: "Anna Gruber", Email: "customer1@example.com", Phone: "+43 660 1111111"},
			{ID: 3, Name: "Jakob Leitner", Email: "rider1@example.com"},
			{ID: 5, Name: "Eva Maier", Email: "eva@example.com"},
		},
		Customers: []CustomerRow{
			{PersonID: 1, DefaultAddress: "Wollzeile 1, Wien", PreferredPaymentMethod: "card"},
		},
		Riders: []RiderRow{
			{PersonID: 3, VehicleType: "bike", Rating: 4.8},
		},
		Restaurants: []RestaurantRow{
			{ID: 1, Name: "Plachutta", Address: "Wollzeile 38, Wien"},
		},
		MenuItems: []MenuItemRow{
			{ID: 10, RestaurantID: 1, Name: "Tafelspitz", PriceCents: 2450},
			{ID: 11, RestaurantID: 1, Name: "Apfelstrudel", PriceCents: 950},
		},
		Orders: []OrderRow{
			{ID: 100, CustomerID: 1, RestaurantID: 1, CreatedAt: created, Status: "preparing", TotalCents: 3400},
		},
		OrderItems: []OrderItemRow{
			{OrderID: 100, MenuItemID: 10, Quantity: 1, UnitPriceCents: 2450},
			{OrderID: 100, MenuItemID: 11, Quantity: 1, UnitPriceCents: 950},
		},
		Payments: []PaymentRow{
			{OrderID: 100, AmountCents: 3400, Method: "card", PaidAt: paid},
		},
		Deliveries: []DeliveryRow{
			{OrderID: 100, RiderID: &riderID, AssignedAt: &assigned, Status: "assigned"},
		},
	}
}

func TestBuildDocumentsShapesPeople(t *testing.T) {
	docs, err := BuildDocuments(sampleSnapshot())
	if err != nil {
		t.Fatalf("BuildDocuments failed: %v", err)
	}

	if len(docs.People) != 3 {
		t.Fatalf("expected 3 people, got %d", len(docs.People))
	}

	byEmail := map[string]models.Person{}
	for _, p := range docs.People {
		byEmail[p.Email] = p
	}

	cust := byEmail["customer1@example.com"]
	if cust.Type != models.PersonCustomer || cust.Customer == nil || cust.Rider != nil {
		t.Fatalf("customer not discriminated correctly: %+v", cust)
	}
	if cust.Customer.PreferredPaymentMethod != "card" {
		t.Fatalf("customer profile lost: %+v", cust.Customer)
	}

	rider := byEmail["rider1@example.com"]
	if rider.Type != models.PersonRider || rider.Rider == nil || rider.Customer != nil {
		t.Fatalf("rider not discriminated correctly: %+v", rider)
	}

	plain := byEmail["eva@example.com"]
	if plain.Type != models.PersonPlain || plain.Customer != nil || plain.Rider != nil {
		t.Fatalf("untyped person not discriminated correctly: %+v", plain)
	}
}

func TestBuildDocumentsEmbedsOrder(t *testing.T) {
	docs, err := BuildDocuments(sampleSnapshot())
	if err != nil {
		t.Fatalf("BuildDocuments failed: %v", err)
	}
	if len(docs.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(docs.Orders))
	}

	o := docs.Orders[0]
	if o.Restaurant.Name != "Plachutta" || o.Customer.Email != "customer1@example.com" {
		t.Fatalf("order snapshots wrong: %+v", o)
	}
	if len(o.Items) != 2 || o.Items[0].Name != "Tafelspitz" || o.Items[0].UnitPrice != 2450 {
		t.Fatalf("order items not resolved: %+v", o.Items)
	}
	if o.Total != 3400 {
		t.Fatalf("total = %s, want 34.00", o.Total)
	}
	if o.Payment == nil || o.Payment.Method != "card" {
		t.Fatalf("payment not embedded: %+v", o.Payment)
	}
	if o.Delivery == nil || o.Delivery.Rider == nil || o.Delivery.Rider.Email != "rider1@example.com" {
		t.Fatalf("delivery/rider not embedded: %+v", o.Delivery)
	}
	if o.Delivery.AssignedAt == nil {
		t.Fatal("assignedAt dropped")
	}
	if o.Delivery.Rider.VehicleType != "bike" {
		t.Fatalf("rider snapshot missing vehicle type: %+v", o.Delivery.Rider)
	}
}

func TestBuildDocumentsIsDeterministic(t *testing.T) {
	a, err := BuildDocuments(sampleSnapshot())
	if err != nil {
		t.Fatalf("first transform failed: %v", err)
	}
	b, err := BuildDocuments(sampleSnapshot())
	if err != nil {
		t.Fatalf("second transform failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two transforms of the same snapshot differ")
	}
}

func TestBuildDocumentsCounts(t *testing.T) {
	docs, err := BuildDocuments(sampleSnapshot())
	if err != nil {
		t.Fatalf("BuildDocuments failed: %v", err)
	}
	counts := docs.Counts()
	want := models.MigratedCounts{Restaurants: 1, People: 3, Orders: 1}
	if counts != want {
		t.Fatalf("counts = %+v, want %+v", counts, want)
	}
}

func TestBuildDocumentsRejectsDanglingReference(t *testing.T) {
	snap := sampleSnapshot()
	snap.Restaurants = nil
	if _, err := BuildDocuments(snap); err == nil {
		t.Fatal("expected error for order referencing missing restaurant")
	}
}

func TestBuildDocumentsOrderWithoutPaymentOrDelivery(t *testing.T) {
	snap := sampleSnapshot()
	snap.Payments = nil
	snap.Deliveries = nil
	docs, err := BuildDocuments(snap)
	if err != nil {
		t.Fatalf("BuildDocuments failed: %v", err)
	}
	o := docs.Orders[0]
	if o.Payment != nil || o.Delivery != nil {
		t.Fatalf("expected nil payment and delivery, got %+v / %+v", o.Payment, o.Delivery)
	}
}
