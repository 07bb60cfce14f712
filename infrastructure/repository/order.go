package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/database/postgres"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
)

const (
	ordersTable     = "orders o"
	orderItemsTable = "order_items oi"
)

// OrderRepository is the read-only adapter over the shop's order store.
// Line items and their product references come back eagerly loaded.
type OrderRepository interface {
	FindCompletedOrders(startDate, endDate time.Time) ([]*domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) FindCompletedOrders(startDate, endDate time.Time) ([]*domain.Order, error) {
	query, args, err := squirrel.
		Select("o.id, o.order_date, o.total, o.status").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": domain.OrderStatusCompleted}).
		Where(squirrel.GtOrEq{"o.order_date": startDate.UTC()}).
		Where(squirrel.LtOrEq{"o.order_date": endDate.UTC()}).
		OrderBy("o.order_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building orders query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Order{}, nil
		}
		return nil, fmt.Errorf("querying completed orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	byID := make(map[string]*domain.Order)

	for rows.Next() {
		order := &domain.Order{Items: make([]*domain.OrderLineItem, 0)}
		if err := rows.Scan(&order.ID, &order.OrderDate, &order.Total, &order.Status); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		order.OrderDate = order.OrderDate.UTC()
		orders = append(orders, order)
		byID[order.ID] = order
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err := r.attachLineItems(byID); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachLineItems loads the line items (with product references) of the
// given orders in one query and appends them to their owners.
func (r *orderRepository) attachLineItems(orders map[string]*domain.Order) error {
	orderIDs := make([]string, 0, len(orders))
	for id := range orders {
		orderIDs = append(orderIDs, id)
	}

	query, args, err := squirrel.
		Select("oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, oi.subtotal, p.name, p.category").
		From(orderItemsTable).
		Join("products p ON p.id = oi.product_id").
		Where(squirrel.Eq{"oi.order_id": orderIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building order items query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item := &domain.OrderLineItem{Product: &domain.Product{}}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.Subtotal,
			&item.Product.Name,
			&item.Product.Category,
		)
		if err != nil {
			return fmt.Errorf("scanning order item: %w", err)
		}
		item.Product.ID = item.ProductID

		if order, ok := orders[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating order item rows: %w", err)
	}

	return nil
}
