package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodorders/internal/models"
	"foodorders/internal/store"
)

type placeOrderItem struct {
	MenuItemID int64         `json:"menuItemId"`
	Name       string        `json:"name"`
	Quantity   int           `json:"quantity" binding:"required,gt=0"`
	Price      *models.Cents `json:"price"`
}

type placeOrderRequest struct {
	CustomerEmail  string           `json:"customerEmail" binding:"required,email"`
	RestaurantName string           `json:"restaurantName" binding:"required"`
	Items          []placeOrderItem `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrder creates an order in the mode named by the route. Items are
// resolved by the adapter; here we only reject shapes no adapter can use.
func PlaceOrder(stores Stores, debugResponses bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := stores.byMode(c.Param("mode"))
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}

		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, debugResponses, store.BadRequestf("invalid request: %v", err))
			return
		}

		in := store.PlaceOrderInput{
			CustomerEmail:  req.CustomerEmail,
			RestaurantName: req.RestaurantName,
		}
		for _, it := range req.Items {
			if it.MenuItemID <= 0 && it.Name == "" {
				respondError(c, debugResponses, store.BadRequestf("each item needs a menuItemId or a name"))
				return
			}
			if it.Price != nil && *it.Price < 0 {
				respondError(c, debugResponses, store.BadRequestf("item price must not be negative"))
				return
			}
			in.Items = append(in.Items, store.OrderItemInput{
				MenuItemID: it.MenuItemID,
				Name:       it.Name,
				Quantity:   it.Quantity,
				UnitPrice:  it.Price,
			})
		}

		order, err := st.PlaceOrder(c.Request.Context(), in)
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "order": order})
	}
}

type payRequest struct {
	OrderID int64  `json:"orderId" binding:"required,gt=0"`
	Method  string `json:"paymentMethod" binding:"required,paymentmethod"`
}

// Pay records the payment for an order. Paying twice is a conflict, never a
// silent overwrite.
func Pay(stores Stores, debugResponses bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := stores.byMode(c.Param("mode"))
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}

		var req payRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, debugResponses, store.BadRequestf("invalid request: %v", err))
			return
		}

		order, err := st.Pay(c.Request.Context(), req.OrderID, req.Method)
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "order": order})
	}
}
