package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"foodorders/internal/models"
	"foodorders/internal/store"
)

// RestaurantReport aggregates the orders of one restaurant, optionally
// limited to a creation-time window.
func RestaurantReport(stores Stores, debugResponses bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := stores.byMode(c.Param("mode"))
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}

		name := strings.TrimSpace(c.Query("restaurantName"))
		if name == "" {
			respondError(c, debugResponses, store.BadRequestf("restaurantName is required"))
			return
		}
		from, err := parseTimeParam(c.Query("from"), false)
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}
		to, err := parseTimeParam(c.Query("to"), true)
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}

		report, err := st.RestaurantReport(c.Request.Context(), store.RestaurantReportFilter{
			RestaurantName: name,
			From:           from,
			To:             to,
		})
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "report": report})
	}
}

// RiderReport aggregates the deliveries of one rider, optionally limited to
// a creation-time window and a delivery status.
func RiderReport(stores Stores, debugResponses bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := stores.byMode(c.Param("mode"))
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}

		email := strings.TrimSpace(c.Query("riderEmail"))
		if email == "" {
			respondError(c, debugResponses, store.BadRequestf("riderEmail is required"))
			return
		}
		from, err := parseTimeParam(c.Query("from"), false)
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}
		to, err := parseTimeParam(c.Query("to"), true)
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}
		status := strings.TrimSpace(c.Query("deliveryStatus"))
		if status != "" && !models.ValidDeliveryStatus(status) {
			respondError(c, debugResponses, store.BadRequestf("unknown delivery status %q", status))
			return
		}

		report, err := st.RiderReport(c.Request.Context(), store.RiderReportFilter{
			RiderEmail:     email,
			From:           from,
			To:             to,
			DeliveryStatus: models.DeliveryStatus(status),
		})
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "report": report})
	}
}

// parseTimeParam accepts a bare date (2006-01-02) or an RFC 3339 timestamp.
// A bare date used as the upper bound covers the whole day, so from=to=today
// selects today's orders.
func parseTimeParam(value string, upperBound bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		t = t.UTC()
		if upperBound {
			t = t.Add(24 * time.Hour)
		}
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, store.BadRequestf("invalid time %q, want YYYY-MM-DD or RFC 3339", value)
}
