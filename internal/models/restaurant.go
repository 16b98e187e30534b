package models

// Restaurant doubles as the `restaurants` document.
type Restaurant struct {
	ID      int64  `bson:"restaurantId" json:"restaurantId"`
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
}

// MenuItem exists only relationally; document-mode orders carry name/price
// snapshots instead of referencing a menu collection.
type MenuItem struct {
	ID           int64    `json:"menuItemId"`
	RestaurantID int64    `json:"restaurantId"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        Cents    `json:"price"`
	Categories   []string `json:"categories,omitempty"`
}
