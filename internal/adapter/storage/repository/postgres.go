package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/velstore/orderflow/internal/adapter/storage"
	"github.com/velstore/orderflow/internal/core/domain"
	"github.com/velstore/orderflow/internal/core/port"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// querier is satisfied by both pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var orderColumns = []string{
	"id", "number", "user_id", "status",
	"requires_owner_approval", "owner_approved", "owner_rejected",
	"owner_approval_notes", "owner_rejection_notes", "approval_notes",
	"payment_status", "owner_email",
	"shipping_address", "billing_address",
	"subtotal", "tax", "shipping", "total",
	"created_at", "updated_at",
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		if err := r.insertOrder(ctx, tx, order); err != nil {
			return err
		}
		return r.insertItems(ctx, tx, order.ID, order.Items)
	})
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return r.readOrder(ctx, r.db.Pool, orderID, false)
}

// UpdateOrder rereads the order under a row lock, applies updateFn to the
// current state and writes the result back. A guard failing inside updateFn
// aborts the transaction, so two racing decisions on the same stage cannot
// both succeed.
func (r *Repository) UpdateOrder(ctx context.Context, orderID uuid.UUID, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		var err error
		order, err = r.readOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}

		if err := updateFn(order); err != nil {
			return err
		}
		order.UpdatedAt = time.Now()

		if err := r.updateOrderRow(ctx, tx, order); err != nil {
			return err
		}

		deleteSt := r.db.QueryBuilder.Delete("order_items").Where(sq.Eq{"order_id": orderID})
		sql, args, err := deleteSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		return r.insertItems(ctx, tx, orderID, order.Items)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	statement := r.db.QueryBuilder.Delete("orders").Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": status}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range list {
		items, err := r.readItems(ctx, r.db.Pool, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return list, nil
}

func (r *Repository) readOrder(ctx context.Context, q querier, orderID uuid.UUID, forUpdate bool) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	items, err := r.readItems(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *Repository) readItems(ctx context.Context, q querier, orderID uuid.UUID) ([]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "product_id", "title", "image_url", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.Title,
			&item.ImageURL,
			&item.Quantity,
			&item.Price,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *Repository) insertOrder(ctx context.Context, q querier, order *domain.Order) error {
	shipping, billing, err := marshalAddresses(order)
	if err != nil {
		return err
	}

	statement := r.db.QueryBuilder.Insert("orders").
		Columns(orderColumns...).
		Values(order.ID, order.Number, order.UserID, order.Status,
			order.RequiresOwnerApproval, order.OwnerApproved, order.OwnerRejected,
			order.OwnerApprovalNotes, order.OwnerRejectionNotes, order.ApprovalNotes,
			order.PaymentStatus, order.OwnerEmail,
			shipping, billing,
			order.Subtotal, order.Tax, order.Shipping, order.Total,
			order.CreatedAt, order.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = q.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) updateOrderRow(ctx context.Context, q querier, order *domain.Order) error {
	shipping, billing, err := marshalAddresses(order)
	if err != nil {
		return err
	}

	statement := r.db.QueryBuilder.Update("orders").
		Set("status", order.Status).
		Set("owner_approved", order.OwnerApproved).
		Set("owner_rejected", order.OwnerRejected).
		Set("owner_approval_notes", order.OwnerApprovalNotes).
		Set("owner_rejection_notes", order.OwnerRejectionNotes).
		Set("approval_notes", order.ApprovalNotes).
		Set("payment_status", order.PaymentStatus).
		Set("shipping_address", shipping).
		Set("billing_address", billing).
		Set("subtotal", order.Subtotal).
		Set("tax", order.Tax).
		Set("shipping", order.Shipping).
		Set("total", order.Total).
		Set("updated_at", order.UpdatedAt).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = q.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) insertItems(ctx context.Context, q querier, orderID uuid.UUID, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	statement := r.db.QueryBuilder.Insert("order_items").
		Columns("id", "order_id", "product_id", "title", "image_url", "quantity", "price", "position")
	for position, item := range items {
		statement = statement.Values(item.ID, orderID, item.ProductID,
			item.Title, item.ImageURL, item.Quantity, item.Price, position)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = q.Exec(ctx, sql, args...)
	return err
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var shipping, billing []byte

	err := row.Scan(
		&order.ID,
		&order.Number,
		&order.UserID,
		&order.Status,
		&order.RequiresOwnerApproval,
		&order.OwnerApproved,
		&order.OwnerRejected,
		&order.OwnerApprovalNotes,
		&order.OwnerRejectionNotes,
		&order.ApprovalNotes,
		&order.PaymentStatus,
		&order.OwnerEmail,
		&shipping,
		&billing,
		&order.Subtotal,
		&order.Tax,
		&order.Shipping,
		&order.Total,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(shipping, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("decode shipping address: %w", err)
	}
	if err := json.Unmarshal(billing, &order.BillingAddress); err != nil {
		return nil, fmt.Errorf("decode billing address: %w", err)
	}

	return &order, nil
}

func marshalAddresses(order *domain.Order) ([]byte, []byte, error) {
	shipping, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("encode shipping address: %w", err)
	}
	billing, err := json.Marshal(order.BillingAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("encode billing address: %w", err)
	}
	return shipping, billing, nil
}
