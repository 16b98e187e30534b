package seed

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Seeder writes a dataset into the relational schema. It expects empty
// tables; reset first.
type Seeder struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewSeeder(pool *pgxpool.Pool, log zerolog.Logger) *Seeder {
	return &Seeder{pool: pool, log: log}
}

func (s *Seeder) Apply(ctx context.Context, d *Dataset) (Counts, error) {
	counts := d.Counts()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Counts{}, err
	}
	defer tx.Rollback(ctx)

	categoryIDs := map[string]int64{}
	for _, name := range categoryNames(d) {
		var id int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO category (name) VALUES ($1) RETURNING id`, name).Scan(&id); err != nil {
			return Counts{}, err
		}
		categoryIDs[name] = id
	}

	// menuItemIDs[restaurant][menu index] -> menu_item.id
	menuItemIDs := make([][]int64, len(d.Restaurants))
	restaurantIDs := make([]int64, len(d.Restaurants))
	for ri, r := range d.Restaurants {
		var restaurantID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO restaurant (name, address) VALUES ($1, $2) RETURNING id`,
			r.Name, r.Address).Scan(&restaurantID)
		if err != nil {
			return Counts{}, err
		}
		restaurantIDs[ri] = restaurantID

		menuItemIDs[ri] = make([]int64, len(r.Menu))
		for mi, item := range r.Menu {
			var itemID int64
			err := tx.QueryRow(ctx, `
				INSERT INTO menu_item (restaurant_id, name, description, price_cents)
				VALUES ($1, $2, $3, $4) RETURNING id`,
				restaurantID, item.Name, item.Description, int64(item.Price)).Scan(&itemID)
			if err != nil {
				return Counts{}, err
			}
			menuItemIDs[ri][mi] = itemID

			for _, cat := range item.Categories {
				_, err := tx.Exec(ctx, `
					INSERT INTO menu_item_category (menu_item_id, category_id)
					VALUES ($1, $2)`, itemID, categoryIDs[cat])
				if err != nil {
					return Counts{}, err
				}
			}
		}
	}

	customerIDs := make([]int64, len(d.Customers))
	for i, c := range d.Customers {
		id, err := insertPerson(ctx, tx, c.Name, c.Email, c.Phone)
		if err != nil {
			return Counts{}, err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO customer (person_id, default_address, preferred_payment_method)
			VALUES ($1, $2, $3)`, id, c.DefaultAddress, c.PreferredPaymentMethod)
		if err != nil {
			return Counts{}, err
		}
		customerIDs[i] = id
	}

	riderIDs := make([]int64, len(d.Riders))
	for i, r := range d.Riders {
		id, err := insertPerson(ctx, tx, r.Name, r.Email, r.Phone)
		if err != nil {
			return Counts{}, err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO rider (person_id, vehicle_type, rating)
			VALUES ($1, $2, $3)`, id, r.VehicleType, r.Rating)
		if err != nil {
			return Counts{}, err
		}
		riderIDs[i] = id
	}

	for _, o := range d.Orders {
		var orderID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO customer_order (customer_id, restaurant_id, created_at, status, total_cents)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			customerIDs[o.Customer], restaurantIDs[o.Restaurant], o.CreatedAt, o.Status, int64(o.Total())).
			Scan(&orderID)
		if err != nil {
			return Counts{}, err
		}

		for _, it := range o.Items {
			_, err := tx.Exec(ctx, `
				INSERT INTO order_item (order_id, menu_item_id, quantity, unit_price_cents)
				VALUES ($1, $2, $3, $4)`,
				orderID, menuItemIDs[it.Restaurant][it.MenuIndex], it.Quantity, int64(it.UnitPrice))
			if err != nil {
				return Counts{}, err
			}
		}

		if o.Payment != nil {
			_, err := tx.Exec(ctx, `
				INSERT INTO payment (order_id, amount_cents, method, paid_at)
				VALUES ($1, $2, $3, $4)`,
				orderID, int64(o.Total()), o.Payment.Method, o.Payment.PaidAt)
			if err != nil {
				return Counts{}, err
			}
		}

		if o.Delivery != nil {
			_, err := tx.Exec(ctx, `
				INSERT INTO delivery (order_id, rider_id, assigned_at, delivery_status)
				VALUES ($1, $2, $3, $4)`,
				orderID, riderIDs[o.Delivery.Rider], o.Delivery.AssignedAt, o.Delivery.Status)
			if err != nil {
				return Counts{}, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Counts{}, err
	}

	s.log.Info().
		Int("restaurants", counts.Restaurants).
		Int("customers", counts.Customers).
		Int("riders", counts.Riders).
		Int("orders", counts.Orders).
		Msg("demo data seeded")
	return counts, nil
}

func insertPerson(ctx context.Context, tx pgx.Tx, name, email, phone string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO person (name, email, phone) VALUES ($1, $2, $3) RETURNING id`,
		name, email, phone).Scan(&id)
	return id, err
}

func categoryNames(d *Dataset) []string {
	seen := map[string]bool{}
	var names []string
	for _, r := range d.Restaurants {
		for _, item := range r.Menu {
			for _, cat := range item.Categories {
				if !seen[cat] {
					seen[cat] = true
					names = append(names, cat)
				}
			}
		}
	}
	sort.Strings(names)
	return names
}
