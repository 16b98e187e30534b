package models

// PersonType discriminates the role of a person record.
type PersonType string

const (
	PersonCustomer PersonType = "customer"
	PersonRider    PersonType = "rider"
	PersonPlain    PersonType = "person"
)

// CustomerProfile holds the customer specialization fields.
type CustomerProfile struct {
	DefaultAddress         string `bson:"defaultAddress" json:"defaultAddress"`
	PreferredPaymentMethod string `bson:"preferredPaymentMethod" json:"preferredPaymentMethod"`
}

// RiderProfile holds the rider specialization fields.
type RiderProfile struct {
	VehicleType string  `bson:"vehicleType" json:"vehicleType"`
	Rating      float64 `bson:"rating" json:"rating"`
}

// Person is the discriminated union over the relational person/customer/rider
// IS-A split. Exactly one of Customer/Rider is non-nil for typed people; both
// are nil for Type "person". The struct doubles as the `people` document.
type Person struct {
	ID       int64            `bson:"personId" json:"personId"`
	Type     PersonType       `bson:"type" json:"type"`
	Name     string           `bson:"name" json:"name"`
	Email    string           `bson:"email" json:"email"`
	Phone    string           `bson:"phone,omitempty" json:"phone,omitempty"`
	Customer *CustomerProfile `bson:"customer" json:"customer"`
	Rider    *RiderProfile    `bson:"rider" json:"rider"`
}
