package order

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 5 * time.Second
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Append(ctx context.Context, o Order) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, subtotal, tax, shipping_fee, total, status,
			ship_full_name, ship_line1, ship_line2, ship_city, ship_state,
			ship_postal_code, ship_country, ship_phone,
			created_at, estimated_delivery
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, o.ID, o.UserID, o.Subtotal, o.Tax, o.ShippingFee, o.Total, string(o.Status),
		o.ShippingAddress.FullName, o.ShippingAddress.AddressLine1, o.ShippingAddress.AddressLine2,
		o.ShippingAddress.City, o.ShippingAddress.State, o.ShippingAddress.PostalCode,
		o.ShippingAddress.Country, o.ShippingAddress.PhoneNumber,
		o.CreatedAt, o.EstimatedDelivery)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO order_items (order_id, product_id, name, price, quantity, item_total)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range o.Items {
		if _, err := stmt.ExecContext(ctx, o.ID, it.ProductID, it.Name, it.Price, it.Quantity, it.ItemTotal); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `
	id, user_id, subtotal, tax, shipping_fee, total, status,
	ship_full_name, ship_line1, ship_line2, ship_city, ship_state,
	ship_postal_code, ship_country, ship_phone,
	created_at, estimated_delivery
`

func scanOrder(row interface{ Scan(...any) error }) (Order, error) {
	var o Order
	var st string
	err := row.Scan(
		&o.ID, &o.UserID, &o.Subtotal, &o.Tax, &o.ShippingFee, &o.Total, &st,
		&o.ShippingAddress.FullName, &o.ShippingAddress.AddressLine1, &o.ShippingAddress.AddressLine2,
		&o.ShippingAddress.City, &o.ShippingAddress.State, &o.ShippingAddress.PostalCode,
		&o.ShippingAddress.Country, &o.ShippingAddress.PhoneNumber,
		&o.CreatedAt, &o.EstimatedDelivery,
	)
	o.Status = Status(st)
	return o, err
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0, 8)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := s.loadItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}

	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Order, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	o, err := scanOrder(s.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return Order{}, false, nil
	}
	if err != nil {
		return Order{}, false, err
	}

	items, err := s.loadItems(ctx, id)
	if err != nil {
		return Order{}, false, err
	}
	o.Items = items

	return o, true, nil
}

func (s *PostgresStore) loadItems(ctx context.Context, orderID string) ([]LineSnapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, name, price, quantity, item_total
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_id ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LineSnapshot, 0, 8)
	for rows.Next() {
		var it LineSnapshot
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Price, &it.Quantity, &it.ItemTotal); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *PostgresStore) SetStatus(ctx context.Context, id string, st Status) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `
		UPDATE orders SET status = $2 WHERE id = $1
	`, id, string(st))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
