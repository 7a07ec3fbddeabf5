package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dwikikusuma/naija-assistant/internal/cart/app"
	"github.com/dwikikusuma/naija-assistant/internal/cart/domain"
)

var _ app.CartRepo = (*CartRepo)(nil)

type CartRepo struct {
	db *sql.DB
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db}
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *CartRepo) execTX(ctx context.Context, fn func(q querier) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

func (r *CartRepo) Get(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return listItems(ctx, r.db, userID)
}

func (r *CartRepo) AddItem(ctx context.Context, userID string, item domain.CartItem) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := r.execTX(ctx, func(q querier) error {
		var current int32
		err := q.QueryRowContext(ctx,
			"SELECT quantity FROM cart_items WHERE user_id = ? AND product_id = ?", userID, item.ProductID).Scan(&current)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("read cart item: %w", err)
		}
		if _, err := domain.MergeQuantity(current, item.Quantity); err != nil {
			return err
		}

		_, err = q.ExecContext(ctx, `
			INSERT INTO cart_items (user_id, product_id, title, price, quantity, image, merchant)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = quantity + excluded.quantity`,
			userID, item.ProductID, item.Title, item.Price, item.Quantity, item.Image, item.Merchant)
		if err != nil {
			return fmt.Errorf("upsert cart item: %w", err)
		}
		out, err = listItems(ctx, q, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CartRepo) RemoveItem(ctx context.Context, userID string, productID int64) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := r.execTX(ctx, func(q querier) error {
		if _, err := q.ExecContext(ctx,
			"DELETE FROM cart_items WHERE user_id = ? AND product_id = ?", userID, productID); err != nil {
			return fmt.Errorf("remove cart item: %w", err)
		}
		var err error
		out, err = listItems(ctx, q, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CartRepo) SetItemQuantity(ctx context.Context, userID string, productID int64, quantity int32) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := r.execTX(ctx, func(q querier) error {
		var (
			res sql.Result
			err error
		)
		if quantity <= 0 {
			res, err = q.ExecContext(ctx,
				"DELETE FROM cart_items WHERE user_id = ? AND product_id = ?", userID, productID)
		} else {
			res, err = q.ExecContext(ctx,
				"UPDATE cart_items SET quantity = ? WHERE user_id = ? AND product_id = ?", quantity, userID, productID)
		}
		if err != nil {
			return fmt.Errorf("set item quantity: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		out, err = listItems(ctx, q, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func listItems(ctx context.Context, q querier, userID string) ([]domain.CartItem, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT product_id, title, price, quantity, image, merchant
		FROM cart_items WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		var it domain.CartItem
		if err := rows.Scan(&it.ProductID, &it.Title, &it.Price, &it.Quantity, &it.Image, &it.Merchant); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
