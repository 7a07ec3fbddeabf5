package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dwikikusuma/naija-assistant/internal/catalog/app"
	"github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

var _ app.ProductRepo = (*ProductRepo)(nil)

const productColumns = "id, title, price, image, categories, rating, merchant, badge, description"

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Seed inserts products when the catalog is empty. It returns the number of
// rows written.
func (r *ProductRepo) Seed(ctx context.Context, products []domain.Product) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	for _, p := range products {
		if _, err := insert(ctx, tx, p); err != nil {
			_ = tx.Rollback()
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(products), nil
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.ID = 0
	id, err := insert(ctx, r.db, p)
	if err != nil {
		return domain.Product{}, err
	}
	return r.Get(ctx, id)
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = ?", id)
	return scanProduct(row)
}

func (r *ProductRepo) GetByTitle(ctx context.Context, title string) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE title_key = ? ORDER BY id LIMIT 1", domain.TitleKey(title))
	return scanProduct(row)
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+productColumns+" FROM products ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insert(ctx context.Context, db execer, p domain.Product) (int64, error) {
	cats, err := json.Marshal(p.Categories)
	if err != nil {
		return 0, fmt.Errorf("marshalling categories: %w", err)
	}

	var id any
	if p.ID > 0 {
		id = p.ID
	}
	var rating sql.NullFloat64
	if p.Rating != nil {
		rating = sql.NullFloat64{Float64: *p.Rating, Valid: true}
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO products (id, title, title_key, price, image, categories, rating, merchant, badge, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Title, domain.TitleKey(p.Title), p.Price, p.Image, string(cats), rating, p.Merchant, p.Badge, p.Description)
	if err != nil {
		return 0, fmt.Errorf("inserting product %q: %w", p.Title, err)
	}
	return res.LastInsertId()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (domain.Product, error) {
	var (
		p      domain.Product
		cats   string
		rating sql.NullFloat64
	)
	err := s.Scan(&p.ID, &p.Title, &p.Price, &p.Image, &cats, &rating, &p.Merchant, &p.Badge, &p.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("scanning product: %w", err)
	}
	if err := json.Unmarshal([]byte(cats), &p.Categories); err != nil {
		return domain.Product{}, fmt.Errorf("unmarshalling categories: %w", err)
	}
	if rating.Valid {
		v := rating.Float64
		p.Rating = &v
	}
	return p, nil
}
