package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodorders/internal/models"
	"foodorders/internal/store"
)

type assignDeliveryRequest struct {
	RiderEmail     string `json:"riderEmail" binding:"required,email"`
	OrderID        int64  `json:"orderId" binding:"required,gt=0"`
	DeliveryStatus string `json:"deliveryStatus" binding:"required,deliverystatus"`
}

// AssignDelivery creates or updates the delivery of an order. Repeating the
// call may change the rider and the status, but never assignedAt.
func AssignDelivery(stores Stores, debugResponses bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := stores.byMode(c.Param("mode"))
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}

		var req assignDeliveryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, debugResponses, store.BadRequestf("invalid request: %v", err))
			return
		}

		order, err := st.AssignDelivery(c.Request.Context(), store.AssignDeliveryInput{
			RiderEmail:     req.RiderEmail,
			OrderID:        req.OrderID,
			DeliveryStatus: models.DeliveryStatus(req.DeliveryStatus),
		})
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "order": order})
	}
}
