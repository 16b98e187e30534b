package database

// Normalized schema: person/customer/rider IS-A sharing the person primary
// key, weak order_item rows dying with their order, 1:1 payment and delivery.
// Money columns are integer cents.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS person (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS customer (
	person_id                BIGINT PRIMARY KEY REFERENCES person(id) ON DELETE CASCADE,
	default_address          TEXT NOT NULL DEFAULT '',
	preferred_payment_method TEXT NOT NULL DEFAULT 'cash'
);

CREATE TABLE IF NOT EXISTS rider (
	person_id    BIGINT PRIMARY KEY REFERENCES person(id) ON DELETE CASCADE,
	vehicle_type TEXT NOT NULL DEFAULT 'bike',
	rating       DOUBLE PRECISION NOT NULL DEFAULT 5.0
);

CREATE TABLE IF NOT EXISTS restaurant (
	id      BIGSERIAL PRIMARY KEY,
	name    TEXT NOT NULL UNIQUE,
	address TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS menu_item (
	id            BIGSERIAL PRIMARY KEY,
	restaurant_id BIGINT NOT NULL REFERENCES restaurant(id) ON DELETE CASCADE,
	name          TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	price_cents   BIGINT NOT NULL CHECK (price_cents >= 0)
);

CREATE TABLE IF NOT EXISTS category (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS menu_item_category (
	menu_item_id BIGINT NOT NULL REFERENCES menu_item(id) ON DELETE CASCADE,
	category_id  BIGINT NOT NULL REFERENCES category(id) ON DELETE CASCADE,
	PRIMARY KEY (menu_item_id, category_id)
);

CREATE TABLE IF NOT EXISTS customer_order (
	id            BIGSERIAL PRIMARY KEY,
	customer_id   BIGINT NOT NULL REFERENCES customer(person_id),
	restaurant_id BIGINT NOT NULL REFERENCES restaurant(id),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	status        TEXT NOT NULL DEFAULT 'created',
	total_cents   BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS order_item (
	id               BIGSERIAL PRIMARY KEY,
	order_id         BIGINT NOT NULL REFERENCES customer_order(id) ON DELETE CASCADE,
	menu_item_id     BIGINT NOT NULL REFERENCES menu_item(id),
	quantity         INT NOT NULL CHECK (quantity > 0),
	unit_price_cents BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS payment (
	id           BIGSERIAL PRIMARY KEY,
	order_id     BIGINT NOT NULL UNIQUE REFERENCES customer_order(id) ON DELETE CASCADE,
	amount_cents BIGINT NOT NULL,
	method       TEXT NOT NULL,
	paid_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS delivery (
	id              BIGSERIAL PRIMARY KEY,
	order_id        BIGINT NOT NULL UNIQUE REFERENCES customer_order(id) ON DELETE CASCADE,
	rider_id        BIGINT REFERENCES rider(person_id),
	assigned_at     TIMESTAMPTZ,
	delivery_status TEXT NOT NULL DEFAULT 'created'
);

CREATE INDEX IF NOT EXISTS idx_order_restaurant_created ON customer_order (restaurant_id, created_at);
CREATE INDEX IF NOT EXISTS idx_delivery_rider_status ON delivery (rider_id, delivery_status);
`
