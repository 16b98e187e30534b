package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"foodorders/internal/models"
	"foodorders/internal/store"
)

func (s *Store) PlaceOrder(ctx context.Context, in store.PlaceOrderInput) (*models.Order, error) {
	var order *models.Order

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		customer, err := findCustomerByEmail(ctx, tx, in.CustomerEmail)
		if err != nil {
			return err
		}
		restaurant, err := findRestaurantByName(ctx, tx, in.RestaurantName)
		if err != nil {
			return err
		}

		lines := make([]models.OrderLine, 0, len(in.Items))
		var total models.Cents
		for _, item := range in.Items {
			if item.Quantity <= 0 {
				return store.BadRequestf("quantity must be a positive integer")
			}
			resolved, err := resolveMenuItem(ctx, tx, restaurant.ID, item)
			if err != nil {
				return err
			}
			resolved.Quantity = item.Quantity
			total += resolved.UnitPrice * models.Cents(item.Quantity)
			lines = append(lines, *resolved)
		}

		o := &models.Order{
			Status:     models.OrderCreated,
			Total:      total,
			Restaurant: *restaurant,
			Customer:   *customer,
			Items:      lines,
		}
		err = tx.QueryRow(ctx, `
			INSERT INTO customer_order (customer_id, restaurant_id, status, total_cents)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`,
			customer.ID, restaurant.ID, o.Status, int64(total)).
			Scan(&o.ID, &o.CreatedAt)
		if err != nil {
			return err
		}

		for _, line := range lines {
			_, err = tx.Exec(ctx, `
				INSERT INTO order_item (order_id, menu_item_id, quantity, unit_price_cents)
				VALUES ($1, $2, $3, $4)`,
				o.ID, line.MenuItemID, line.Quantity, int64(line.UnitPrice))
			if err != nil {
				return err
			}
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("order_id", order.ID).Str("restaurant", order.Restaurant.Name).
		Stringer("total", order.Total).Msg("order placed")
	return order, nil
}

// resolveMenuItem looks the line up by id when given, otherwise by name
// within the restaurant. An ambiguous name is the caller's problem, not a
// pick-the-first-row situation.
func resolveMenuItem(ctx context.Context, q querier, restaurantID int64, item store.OrderItemInput) (*models.OrderLine, error) {
	if item.MenuItemID > 0 {
		line := &models.OrderLine{MenuItemID: item.MenuItemID}
		err := q.QueryRow(ctx, `
			SELECT id, name, price_cents FROM menu_item
			WHERE id = $1 AND restaurant_id = $2`,
			item.MenuItemID, restaurantID).
			Scan(&line.MenuItemID, &line.Name, &line.UnitPrice)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.NotFoundf("menu item %d not found", item.MenuItemID)
		}
		if err != nil {
			return nil, err
		}
		return line, nil
	}

	if item.Name == "" {
		return nil, store.BadRequestf("order item needs menuItemId or name")
	}

	rows, err := q.Query(ctx, `
		SELECT id, name, price_cents FROM menu_item
		WHERE restaurant_id = $1 AND name = $2`, restaurantID, item.Name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.OrderLine
	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.MenuItemID, &line.Name, &line.UnitPrice); err != nil {
			return nil, err
		}
		matches = append(matches, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, store.NotFoundf("menu item %q not found", item.Name)
	case 1:
		return &matches[0], nil
	default:
		return nil, store.BadRequestf("menu item name %q is ambiguous", item.Name)
	}
}

func (s *Store) Pay(ctx context.Context, orderID int64, method string) (*models.Order, error) {
	var order *models.Order

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var total int64
		err := tx.QueryRow(ctx, `
			SELECT total_cents FROM customer_order WHERE id = $1`, orderID).Scan(&total)
		if errors.Is(err, pgx.ErrNoRows) {
			return store.NotFoundf("order %d not found", orderID)
		}
		if err != nil {
			return err
		}

		var alreadyPaid bool
		err = tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM payment WHERE order_id = $1)`, orderID).Scan(&alreadyPaid)
		if err != nil {
			return err
		}
		if alreadyPaid {
			return store.Conflictf("order %d is already paid", orderID)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO payment (order_id, amount_cents, method) VALUES ($1, $2, $3)`,
			orderID, total, method)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE customer_order SET status = $1 WHERE id = $2 AND status = $3`,
			models.OrderPreparing, orderID, models.OrderCreated)
		if err != nil {
			return err
		}

		order, err = loadOrder(ctx, tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("order_id", orderID).Str("method", method).Msg("order paid")
	return order, nil
}

func (s *Store) AssignDelivery(ctx context.Context, in store.AssignDeliveryInput) (*models.Order, error) {
	var order *models.Order

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		rider, err := findRiderByEmail(ctx, tx, in.RiderEmail)
		if err != nil {
			return err
		}

		var exists bool
		err = tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM customer_order WHERE id = $1)`, in.OrderID).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return store.NotFoundf("order %d not found", in.OrderID)
		}

		// Single statement so a re-assignment can never reset assigned_at.
		_, err = tx.Exec(ctx, `
			INSERT INTO delivery (order_id, rider_id, assigned_at, delivery_status)
			VALUES ($1, $2, now(), $3)
			ON CONFLICT (order_id) DO UPDATE SET
				rider_id = EXCLUDED.rider_id,
				delivery_status = EXCLUDED.delivery_status,
				assigned_at = COALESCE(delivery.assigned_at, EXCLUDED.assigned_at)`,
			in.OrderID, rider.ID, in.DeliveryStatus)
		if err != nil {
			return err
		}

		order, err = loadOrder(ctx, tx, in.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("order_id", in.OrderID).Str("rider", in.RiderEmail).
		Str("delivery_status", string(in.DeliveryStatus)).Msg("delivery assigned")
	return order, nil
}

// loadOrder assembles the full order view from its five tables.
func loadOrder(ctx context.Context, q querier, orderID int64) (*models.Order, error) {
	o := &models.Order{}
	err := q.QueryRow(ctx, `
		SELECT o.id, o.created_at, o.status, o.total_cents,
		       r.id, r.name, r.address,
		       p.id, p.name, p.email
		FROM customer_order o
		JOIN restaurant r ON r.id = o.restaurant_id
		JOIN person p ON p.id = o.customer_id
		WHERE o.id = $1`, orderID).
		Scan(&o.ID, &o.CreatedAt, &o.Status, &o.Total,
			&o.Restaurant.ID, &o.Restaurant.Name, &o.Restaurant.Address,
			&o.Customer.ID, &o.Customer.Name, &o.Customer.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.NotFoundf("order %d not found", orderID)
	}
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, `
		SELECT oi.menu_item_id, mi.name, oi.quantity, oi.unit_price_cents
		FROM order_item oi
		JOIN menu_item mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.MenuItemID, &line.Name, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var payment models.Payment
	err = q.QueryRow(ctx, `
		SELECT amount_cents, method, paid_at FROM payment WHERE order_id = $1`, orderID).
		Scan(&payment.Amount, &payment.Method, &payment.PaidAt)
	if err == nil {
		o.Payment = &payment
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	var (
		delivery  models.Delivery
		riderID   *int64
		riderName *string
		riderMail *string
		vehicle   *string
	)
	err = q.QueryRow(ctx, `
		SELECT d.delivery_status, d.assigned_at, d.rider_id, p.name, p.email, r.vehicle_type
		FROM delivery d
		LEFT JOIN person p ON p.id = d.rider_id
		LEFT JOIN rider r ON r.person_id = d.rider_id
		WHERE d.order_id = $1`, orderID).
		Scan(&delivery.Status, &delivery.AssignedAt, &riderID, &riderName, &riderMail, &vehicle)
	if err == nil {
		if riderID != nil {
			delivery.Rider = &models.RiderRef{ID: *riderID}
			if riderName != nil {
				delivery.Rider.Name = *riderName
			}
			if riderMail != nil {
				delivery.Rider.Email = *riderMail
			}
			if vehicle != nil {
				delivery.Rider.VehicleType = *vehicle
			}
		}
		o.Delivery = &delivery
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	return o, nil
}
