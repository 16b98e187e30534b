package pgstore

import (
	"context"

	"foodorders/internal/migration"
)

// Snapshot reads the full relational dataset in stable id order for the
// migration transformer. Reads run outside a transaction; the migration is a
// maintenance operation and the dataset is tens of rows.
func (s *Store) Snapshot(ctx context.Context) (*migration.Snapshot, error) {
	snap := &migration.Snapshot{}

	rows, err := s.pool.Query(ctx, `SELECT id, name, email, phone FROM person ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r migration.PersonRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Phone); err != nil {
			return nil, err
		}
		snap.People = append(snap.People, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `SELECT person_id, default_address, preferred_payment_method FROM customer ORDER BY person_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r migration.CustomerRow
		if err := rows.Scan(&r.PersonID, &r.DefaultAddress, &r.PreferredPaymentMethod); err != nil {
			return nil, err
		}
		snap.Customers = append(snap.Customers, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `SELECT person_id, vehicle_type, rating FROM rider ORDER BY person_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r migration.RiderRow
		if err := rows.Scan(&r.PersonID, &r.VehicleType, &r.Rating); err != nil {
			return nil, err
		}
		snap.Riders = append(snap.Riders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `SELECT id, name, address FROM restaurant ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r migration.RestaurantRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Address); err != nil {
			return nil, err
		}
		snap.Restaurants = append(snap.Restaurants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `SELECT id, restaurant_id, name, price_cents FROM menu_item ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r migration.MenuItemRow
		if err := rows.Scan(&r.ID, &r.RestaurantID, &r.Name, &r.PriceCents); err != nil {
			return nil, err
		}
		snap.MenuItems = append(snap.MenuItems, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `SELECT id, customer_id, restaurant_id, created_at, status, total_cents FROM customer_order ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r migration.OrderRow
		if err := rows.Scan(&r.ID, &r.CustomerID, &r.RestaurantID, &r.CreatedAt, &r.Status, &r.TotalCents); err != nil {
			return nil, err
		}
		snap.Orders = append(snap.Orders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `SELECT order_id, menu_item_id, quantity, unit_price_cents FROM order_item ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r migration.OrderItemRow
		if err := rows.Scan(&r.OrderID, &r.MenuItemID, &r.Quantity, &r.UnitPriceCents); err != nil {
			return nil, err
		}
		snap.OrderItems = append(snap.OrderItems, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `SELECT order_id, amount_cents, method, paid_at FROM payment ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r migration.PaymentRow
		if err := rows.Scan(&r.OrderID, &r.AmountCents, &r.Method, &r.PaidAt); err != nil {
			return nil, err
		}
		snap.Payments = append(snap.Payments, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `SELECT order_id, rider_id, assigned_at, delivery_status FROM delivery ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var r migration.DeliveryRow
		if err := rows.Scan(&r.OrderID, &r.RiderID, &r.AssignedAt, &r.Status); err != nil {
			return nil, err
		}
		snap.Deliveries = append(snap.Deliveries, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snap, nil
}
