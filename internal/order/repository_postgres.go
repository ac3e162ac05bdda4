package order

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `INSERT INTO shop_orders ("orderId", "referenceId", amount, currency, status, description, "customerName", "customerEmail", "tableNumber", "createdAt")
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	getOrderQuery = `SELECT "orderId", "referenceId", amount, currency, status, description, "customerName", "customerEmail", "tableNumber", "createdAt"
        FROM shop_orders
        WHERE "orderId" = $1`
	listByRefsQuery = `SELECT "orderId", "referenceId", amount, currency, status, description, "customerName", "customerEmail", "tableNumber", "createdAt"
        FROM shop_orders
        WHERE "referenceId" = ANY($1::text[])
        ORDER BY array_position($1::text[], "referenceId")`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	_, err := r.db.Exec(insertOrderQuery,
		ord.OrderID, ord.ReferenceID, ord.Amount, ord.Currency, ord.Status,
		ord.Description, ord.CustomerName, ord.CustomerEmail, ord.TableNumber, ord.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByOrderID(orderID string) (Order, error) {
	var ord Order
	err := r.db.QueryRow(getOrderQuery, orderID).Scan(
		&ord.OrderID, &ord.ReferenceID, &ord.Amount, &ord.Currency, &ord.Status,
		&ord.Description, &ord.CustomerName, &ord.CustomerEmail, &ord.TableNumber, &ord.CreatedAt)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

// ListByReferenceIDs returns records matching the given payment references.
// The results are ordered according to the sequence of refs in the slice. An
// empty slice leads to an immediate empty result.
func (r *PostgresRepository) ListByReferenceIDs(refs []string) ([]Order, error) {
	if len(refs) == 0 {
		return []Order{}, nil
	}

	rows, err := r.db.Query(listByRefsQuery, pq.Array(refs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var ord Order
		if err := rows.Scan(&ord.OrderID, &ord.ReferenceID, &ord.Amount, &ord.Currency, &ord.Status,
			&ord.Description, &ord.CustomerName, &ord.CustomerEmail, &ord.TableNumber, &ord.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}
