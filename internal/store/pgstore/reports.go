package pgstore

import (
	"context"

	"foodorders/internal/models"
	"foodorders/internal/reports"
	"foodorders/internal/store"
)

// Both report queries filter on the order creation time: From inclusive, To
// exclusive, either may be NULL. Day buckets group on the UTC calendar date
// so the document adapter's $dateToString groups identically.

func (s *Store) RestaurantReport(ctx context.Context, f store.RestaurantReportFilter) (*reports.RestaurantReport, error) {
	restaurant, err := findRestaurantByName(ctx, s.pool, f.RestaurantName)
	if err != nil {
		return nil, err
	}

	data := reports.RestaurantData{Restaurant: restaurant.Name}

	var revenue int64
	err = s.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(o.total_cents), 0), COUNT(p.id)
		FROM customer_order o
		LEFT JOIN payment p ON p.order_id = o.id
		WHERE o.restaurant_id = $1
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at < $3)`,
		restaurant.ID, f.From, f.To).
		Scan(&data.Orders, &revenue, &data.Paid)
	if err != nil {
		return nil, err
	}
	data.Revenue = models.Cents(revenue)

	rows, err := s.pool.Query(ctx, `
		SELECT o.status, COUNT(*), SUM(o.total_cents)
		FROM customer_order o
		WHERE o.restaurant_id = $1
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at < $3)
		GROUP BY o.status`,
		restaurant.ID, f.From, f.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b reports.StatusBucket
		if err := rows.Scan(&b.Status, &b.Orders, &b.Revenue); err != nil {
			return nil, err
		}
		data.ByStatus = append(data.ByStatus, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `
		SELECT to_char(o.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*), SUM(o.total_cents)
		FROM customer_order o
		WHERE o.restaurant_id = $1
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at < $3)
		GROUP BY day`,
		restaurant.ID, f.From, f.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b reports.DayBucket
		if err := rows.Scan(&b.Day, &b.Orders, &b.Revenue); err != nil {
			return nil, err
		}
		data.ByDay = append(data.ByDay, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `
		SELECT p.method, COUNT(*), SUM(o.total_cents)
		FROM customer_order o
		JOIN payment p ON p.order_id = o.id
		WHERE o.restaurant_id = $1
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at < $3)
		GROUP BY p.method`,
		restaurant.ID, f.From, f.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b reports.MethodBucket
		if err := rows.Scan(&b.Method, &b.Orders, &b.Revenue); err != nil {
			return nil, err
		}
		data.ByMethod = append(data.ByMethod, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `
		SELECT oi.menu_item_id, mi.name, SUM(oi.quantity), SUM(oi.quantity * oi.unit_price_cents)
		FROM order_item oi
		JOIN menu_item mi ON mi.id = oi.menu_item_id
		JOIN customer_order o ON o.id = oi.order_id
		WHERE o.restaurant_id = $1
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at < $3)
		GROUP BY oi.menu_item_id, mi.name`,
		restaurant.ID, f.From, f.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b reports.ItemBucket
		if err := rows.Scan(&b.MenuItemID, &b.Name, &b.Quantity, &b.Revenue); err != nil {
			return nil, err
		}
		data.Items = append(data.Items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports.BuildRestaurantReport(data), nil
}

func (s *Store) RiderReport(ctx context.Context, f store.RiderReportFilter) (*reports.RiderReport, error) {
	rider, err := findRiderByEmail(ctx, s.pool, f.RiderEmail)
	if err != nil {
		return nil, err
	}

	var status *string
	if f.DeliveryStatus != "" {
		v := string(f.DeliveryStatus)
		status = &v
	}

	data := reports.RiderData{
		Rider:        rider.Email,
		StatusCounts: map[string]int{},
	}

	var revenue int64
	err = s.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(o.total_cents), 0)
		FROM delivery d
		JOIN customer_order o ON o.id = d.order_id
		WHERE d.rider_id = $1
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at < $3)
		  AND ($4::text IS NULL OR d.delivery_status = $4)`,
		rider.ID, f.From, f.To, status).
		Scan(&data.Deliveries, &revenue)
	if err != nil {
		return nil, err
	}
	data.Revenue = models.Cents(revenue)

	rows, err := s.pool.Query(ctx, `
		SELECT d.delivery_status, COUNT(*)
		FROM delivery d
		JOIN customer_order o ON o.id = d.order_id
		WHERE d.rider_id = $1
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at < $3)
		  AND ($4::text IS NULL OR d.delivery_status = $4)
		GROUP BY d.delivery_status`,
		rider.ID, f.From, f.To, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var st string
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, err
		}
		data.StatusCounts[st] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `
		SELECT to_char(o.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*), SUM(o.total_cents)
		FROM delivery d
		JOIN customer_order o ON o.id = d.order_id
		WHERE d.rider_id = $1
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at < $3)
		  AND ($4::text IS NULL OR d.delivery_status = $4)
		GROUP BY day`,
		rider.ID, f.From, f.To, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b reports.DayBucket
		if err := rows.Scan(&b.Day, &b.Orders, &b.Revenue); err != nil {
			return nil, err
		}
		data.ByDay = append(data.ByDay, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `
		SELECT r.name, COUNT(*), SUM(o.total_cents)
		FROM delivery d
		JOIN customer_order o ON o.id = d.order_id
		JOIN restaurant r ON r.id = o.restaurant_id
		WHERE d.rider_id = $1
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at < $3)
		  AND ($4::text IS NULL OR d.delivery_status = $4)
		GROUP BY r.name`,
		rider.ID, f.From, f.To, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b reports.RestaurantBucket
		if err := rows.Scan(&b.Restaurant, &b.Deliveries, &b.Revenue); err != nil {
			return nil, err
		}
		data.Restaurants = append(data.Restaurants, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports.BuildRiderReport(data), nil
}
