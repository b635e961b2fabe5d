package catalog

import (
	"context"
	"fmt"
	"time"

	"cart-service/internal/models"
	"cart-service/internal/util"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresFetcher loads the product catalog from Postgres.
type PostgresFetcher struct {
	db *sqlx.DB
}

// NewPostgresFetcher connects to the catalog database.
func NewPostgresFetcher(databaseURL string) (*PostgresFetcher, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresFetcher{db: db}, nil
}

// Close closes the database connection
func (f *PostgresFetcher) Close() error {
	return f.db.Close()
}

// FetchProducts retrieves the full catalog ordered by id.
func (f *PostgresFetcher) FetchProducts(ctx context.Context) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "PostgresFetcher.FetchProducts")
	defer span.End()

	var products []models.Product
	err := f.db.SelectContext(ctx, &products,
		"SELECT id, name, price, image FROM products ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}
