// Package seed populates the relational schema with a demo dataset. The
// dataset is a pure function of the random source and the reference time, so
// a fixed seed reproduces the exact same demo.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"foodorders/internal/models"
)

const (
	numCustomers = 8
	numRiders    = 4
	numOrders    = 30

	paidShare     = 0.7
	deliveryShare = 0.6
)

type MenuItemSeed struct {
	Name        string
	Description string
	Price       models.Cents
	Categories  []string
}

type RestaurantSeed struct {
	Name    string
	Address string
	Menu    []MenuItemSeed
}

type CustomerSeed struct {
	Name                   string
	Email                  string
	Phone                  string
	DefaultAddress         string
	PreferredPaymentMethod string
}

type RiderSeed struct {
	Name        string
	Email       string
	Phone       string
	VehicleType string
	Rating      float64
}

type OrderItemSeed struct {
	Restaurant int // index into Restaurants
	MenuIndex  int // index into that restaurant's menu
	Quantity   int
	UnitPrice  models.Cents // snapshot of the menu price
}

type PaymentSeed struct {
	Method string
	PaidAt time.Time
}

type DeliverySeed struct {
	Rider      int // index into Riders
	Status     models.DeliveryStatus
	AssignedAt time.Time
}

type OrderSeed struct {
	Customer   int // index into Customers
	Restaurant int // index into Restaurants
	CreatedAt  time.Time
	Status     models.OrderStatus
	Items      []OrderItemSeed
	Payment    *PaymentSeed
	Delivery   *DeliverySeed
}

// Total is Σ(quantity × unitPrice) over the order's items.
func (o OrderSeed) Total() models.Cents {
	var total models.Cents
	for _, it := range o.Items {
		total += it.UnitPrice * models.Cents(it.Quantity)
	}
	return total
}

type Dataset struct {
	Restaurants []RestaurantSeed
	Customers   []CustomerSeed
	Riders      []RiderSeed
	Orders      []OrderSeed
}

// Counts summarizes a dataset for logging and the reset response.
type Counts struct {
	Restaurants int `json:"restaurants"`
	MenuItems   int `json:"menuItems"`
	Customers   int `json:"customers"`
	Riders      int `json:"riders"`
	Orders      int `json:"orders"`
	Payments    int `json:"payments"`
	Deliveries  int `json:"deliveries"`
}

func (d *Dataset) Counts() Counts {
	c := Counts{
		Restaurants: len(d.Restaurants),
		Customers:   len(d.Customers),
		Riders:      len(d.Riders),
		Orders:      len(d.Orders),
	}
	for _, r := range d.Restaurants {
		c.MenuItems += len(r.Menu)
	}
	for _, o := range d.Orders {
		if o.Payment != nil {
			c.Payments++
		}
		if o.Delivery != nil {
			c.Deliveries++
		}
	}
	return c
}

// Restaurants and their menus are fixed so demos always have the same
// natural keys to point at; only customers, riders and orders are random.
var restaurants = []RestaurantSeed{
	{
		Name:    "Plachutta",
		Address: "Wollzeile 38, 1010 Wien",
		Menu: []MenuItemSeed{
			{Name: "Tafelspitz", Description: "Boiled beef in broth", Price: 2450, Categories: []string{"main", "beef"}},
			{Name: "Wiener Schnitzel", Description: "Veal, breaded", Price: 2190, Categories: []string{"main"}},
			{Name: "Rindsgulasch", Description: "Beef goulash", Price: 1680, Categories: []string{"main", "beef"}},
			{Name: "Frittatensuppe", Description: "Pancake-strip soup", Price: 590, Categories: []string{"soup"}},
			{Name: "Apfelstrudel", Description: "Apple strudel", Price: 950, Categories: []string{"dessert"}},
			{Name: "Erdäpfelschmarrn", Description: "Crispy potatoes", Price: 520, Categories: []string{"side"}},
		},
	},
	{
		Name:    "Figlmüller",
		Address: "Bäckerstraße 6, 1010 Wien",
		Menu: []MenuItemSeed{
			{Name: "Figlmüller-Schnitzel", Description: "Pork, plate-sized", Price: 1890, Categories: []string{"main"}},
			{Name: "Backhendl", Description: "Fried chicken", Price: 1750, Categories: []string{"main"}},
			{Name: "Kartoffelsalat", Description: "Potato salad", Price: 480, Categories: []string{"side"}},
			{Name: "Gurkensalat", Description: "Cucumber salad", Price: 450, Categories: []string{"side"}},
			{Name: "Topfenstrudel", Description: "Curd strudel", Price: 890, Categories: []string{"dessert"}},
			{Name: "Grießnockerlsuppe", Description: "Semolina dumpling soup", Price: 560, Categories: []string{"soup"}},
		},
	},
	{
		Name:    "Café Central",
		Address: "Herrengasse 14, 1010 Wien",
		Menu: []MenuItemSeed{
			{Name: "Wiener Melange", Description: "Coffee with milk foam", Price: 620, Categories: []string{"drink"}},
			{Name: "Sachertorte", Description: "Chocolate cake", Price: 850, Categories: []string{"dessert"}},
			{Name: "Kaiserschmarrn", Description: "Shredded pancake", Price: 1290, Categories: []string{"dessert"}},
			{Name: "Altwiener Suppentopf", Description: "Beef soup pot", Price: 980, Categories: []string{"soup"}},
			{Name: "Tagesteller", Description: "Dish of the day", Price: 1450, Categories: []string{"main"}},
			{Name: "Apfelsaft gespritzt", Description: "Sparkling apple juice", Price: 390, Categories: []string{"drink"}},
		},
	},
	{
		Name:    "Zum Schwarzen Kameel",
		Address: "Bognergasse 5, 1010 Wien",
		Menu: []MenuItemSeed{
			{Name: "Beinschinken-Brötchen", Description: "Ham open sandwich", Price: 290, Categories: []string{"snack"}},
			{Name: "Eiaufstrich-Brötchen", Description: "Egg spread sandwich", Price: 260, Categories: []string{"snack"}},
			{Name: "Tafelspitzsulz", Description: "Beef aspic", Price: 1150, Categories: []string{"starter"}},
			{Name: "Zander im Ganzen", Description: "Whole pike-perch", Price: 2850, Categories: []string{"main", "fish"}},
			{Name: "Marillenknödel", Description: "Apricot dumplings", Price: 980, Categories: []string{"dessert"}},
			{Name: "Grüner Veltliner", Description: "Glass of white wine", Price: 540, Categories: []string{"drink"}},
		},
	},
}

var firstNames = []string{"Anna", "Lukas", "Sophie", "David", "Laura", "Felix", "Lena", "Paul", "Marie", "Jonas", "Julia", "Tobias"}
var lastNames = []string{"Gruber", "Huber", "Bauer", "Wagner", "Müller", "Pichler", "Steiner", "Moser", "Mayer", "Hofer", "Leitner", "Berger"}
var vehicleTypes = []string{"bike", "scooter", "car"}
var paymentMethods = models.PaymentMethods
var deliveryStatuses = []models.DeliveryStatus{models.DeliveryAssigned, models.DeliveryPickedUp, models.DeliveryDone}

// BuildDataset produces the demo dataset. Same rnd state and now → same
// dataset, field for field.
func BuildDataset(rnd *rand.Rand, now time.Time) *Dataset {
	d := &Dataset{Restaurants: restaurants}
	now = now.UTC()

	for i := 0; i < numCustomers; i++ {
		name := firstNames[rnd.Intn(len(firstNames))] + " " + lastNames[rnd.Intn(len(lastNames))]
		d.Customers = append(d.Customers, CustomerSeed{
			Name:                   name,
			Email:                  customerEmail(i),
			Phone:                  randomPhone(rnd),
			DefaultAddress:         randomAddress(rnd),
			PreferredPaymentMethod: paymentMethods[rnd.Intn(len(paymentMethods))],
		})
	}

	for i := 0; i < numRiders; i++ {
		name := firstNames[rnd.Intn(len(firstNames))] + " " + lastNames[rnd.Intn(len(lastNames))]
		d.Riders = append(d.Riders, RiderSeed{
			Name:        name,
			Email:       riderEmail(i),
			Phone:       randomPhone(rnd),
			VehicleType: vehicleTypes[rnd.Intn(len(vehicleTypes))],
			Rating:      3.5 + float64(rnd.Intn(16))/10, // 3.5 .. 5.0
		})
	}

	for i := 0; i < numOrders; i++ {
		restaurantIdx := rnd.Intn(len(d.Restaurants))
		menu := d.Restaurants[restaurantIdx].Menu
		createdAt := now.
			AddDate(0, 0, -rnd.Intn(30)).
			Add(-time.Duration(rnd.Intn(12*60)) * time.Minute).
			Truncate(time.Second)

		order := OrderSeed{
			Customer:   rnd.Intn(len(d.Customers)),
			Restaurant: restaurantIdx,
			CreatedAt:  createdAt,
			Status:     models.OrderCreated,
		}

		numItems := 1 + rnd.Intn(3)
		picked := rnd.Perm(len(menu))[:numItems]
		for _, menuIdx := range picked {
			order.Items = append(order.Items, OrderItemSeed{
				Restaurant: restaurantIdx,
				MenuIndex:  menuIdx,
				Quantity:   1 + rnd.Intn(3),
				UnitPrice:  menu[menuIdx].Price,
			})
		}

		if rnd.Float64() < paidShare {
			order.Payment = &PaymentSeed{
				Method: d.Customers[order.Customer].PreferredPaymentMethod,
				PaidAt: createdAt.Add(time.Duration(1+rnd.Intn(15)) * time.Minute),
			}
			paidStatuses := []models.OrderStatus{models.OrderPreparing, models.OrderReady, models.OrderDelivered}
			order.Status = paidStatuses[rnd.Intn(len(paidStatuses))]
		}

		// Leave ~40% of orders without a delivery row so the assignment
		// flow has live data to act on.
		if rnd.Float64() < deliveryShare {
			order.Delivery = &DeliverySeed{
				Rider:      rnd.Intn(len(d.Riders)),
				Status:     deliveryStatuses[rnd.Intn(len(deliveryStatuses))],
				AssignedAt: createdAt.Add(time.Duration(5+rnd.Intn(30)) * time.Minute),
			}
		}

		d.Orders = append(d.Orders, order)
	}

	return d
}

func customerEmail(i int) string {
	return fmt.Sprintf("customer%d@example.com", i+1)
}

func riderEmail(i int) string {
	return fmt.Sprintf("rider%d@example.com", i+1)
}

func randomPhone(rnd *rand.Rand) string {
	return fmt.Sprintf("+43 660 %07d", rnd.Intn(10000000))
}

var streets = []string{"Wollzeile", "Praterstraße", "Mariahilfer Straße", "Landstraßer Hauptstraße", "Favoritenstraße", "Währinger Straße"}

func randomAddress(rnd *rand.Rand) string {
	return fmt.Sprintf("%s %d, Wien", streets[rnd.Intn(len(streets))], 1+rnd.Intn(120))
}
