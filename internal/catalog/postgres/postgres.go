// Package postgres backs the catalog's product repository with PostgreSQL.
// Every lifecycle method is a single conditional UPDATE, so the transition
// check and the write are atomic at the database.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

// Repository implements catalog.ProductRepository on a PostgreSQL database
type Repository struct {
	db *sqlx.DB
}

// New connects to PostgreSQL and returns a repository bound to it
func New(databaseURL string) (*Repository, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return &Repository{db: db}, nil
}

// NewWithDB wraps an existing connection, mainly for tests
func NewWithDB(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Close releases the underlying connection pool
func (r *Repository) Close() error {
	return r.db.Close()
}

// productRow is the database shape of a product and its auction fields
type productRow struct {
	ProductID     string          `db:"product_id"`
	SellerID      string          `db:"seller_id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	StartingPrice decimal.Decimal `db:"starting_price"`
	CurrentPrice  decimal.Decimal `db:"current_price"`
	Status        string          `db:"status"`
	StartTime     *time.Time      `db:"start_time"`
	EndTime       *time.Time      `db:"end_time"`
	WinnerID      sql.NullString  `db:"winner_id"`
	TotalBids     int             `db:"total_bids"`
}

func (row productRow) toModel() model.Product {
	p := model.Product{
		ProductID:     row.ProductID,
		SellerID:      row.SellerID,
		Title:         row.Title,
		Description:   row.Description,
		StartingPrice: row.StartingPrice,
		CurrentPrice:  row.CurrentPrice,
		Auction: model.Auction{
			Status:    model.AuctionStatus(row.Status),
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			TotalBids: row.TotalBids,
		},
	}
	if row.WinnerID.Valid {
		p.Auction.WinnerID = row.WinnerID.String
	}
	return p
}

// Create stores a new product
func (r *Repository) Create(product model.Product) error {
	const query = `
		INSERT INTO products
			(product_id, seller_id, title, description, starting_price, current_price, status, total_bids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0)`

	_, err := r.db.Exec(query,
		product.ProductID, product.SellerID, product.Title, product.Description,
		product.StartingPrice, product.CurrentPrice, string(product.Auction.Status))
	if err != nil {
		return fmt.Errorf("create product %s: %w", product.ProductID, err)
	}
	return nil
}

// GetByID returns a product by its ID
func (r *Repository) GetByID(productID string) (model.Product, error) {
	const query = `
		SELECT product_id, seller_id, title, description, starting_price,
		       current_price, status, start_time, end_time, winner_id, total_bids
		FROM products WHERE product_id = $1`

	var row productRow
	if err := r.db.Get(&row, query, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
		}
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, err)
	}
	return row.toModel(), nil
}

// StartAuction transitions a draft auction to active
func (r *Repository) StartAuction(productID string, startTime, endTime time.Time) error {
	const query = `
		UPDATE products
		SET status = 'active', start_time = $2, end_time = $3
		WHERE product_id = $1 AND status = 'draft'`

	res, err := r.db.Exec(query, productID, startTime, endTime)
	if err != nil {
		return fmt.Errorf("start auction for product %s: %w", productID, err)
	}
	return r.transitionOutcome(res, productID, "start auction")
}

// EndAuction transitions an active auction to ended and records the outcome
func (r *Repository) EndAuction(productID string, winnerID *string, finalPrice decimal.Decimal) error {
	const query = `
		UPDATE products
		SET status = 'ended',
		    winner_id = COALESCE($2, winner_id),
		    current_price = GREATEST(current_price, $3)
		WHERE product_id = $1 AND status = 'active'`

	res, err := r.db.Exec(query, productID, winnerID, finalPrice)
	if err != nil {
		return fmt.Errorf("end auction for product %s: %w", productID, err)
	}
	return r.transitionOutcome(res, productID, "end auction")
}

// CancelAuction transitions an active auction to cancelled
func (r *Repository) CancelAuction(productID string) error {
	const query = `
		UPDATE products SET status = 'cancelled'
		WHERE product_id = $1 AND status = 'active'`

	res, err := r.db.Exec(query, productID)
	if err != nil {
		return fmt.Errorf("cancel auction for product %s: %w", productID, err)
	}
	return r.transitionOutcome(res, productID, "cancel auction")
}

// ApplyBid conditionally raises the current price from a bid.placed event.
// Stale or replayed events fail the WHERE clause and report applied=false.
func (r *Repository) ApplyBid(productID string, amount decimal.Decimal) (bool, error) {
	const query = `
		UPDATE products
		SET current_price = $2, total_bids = total_bids + 1
		WHERE product_id = $1 AND status = 'active' AND current_price < $2`

	res, err := r.db.Exec(query, productID, amount)
	if err != nil {
		return false, fmt.Errorf("apply bid to product %s: %w", productID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("apply bid to product %s: %w", productID, err)
	}
	if affected == 0 {
		if _, err := r.GetByID(productID); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// SetWinner reconciles the winner from the auction.winner event. The status
// is forced to ended in case the event outran the local end transition.
func (r *Repository) SetWinner(productID string, winnerID string) error {
	const query = `
		UPDATE products
		SET winner_id = $2,
		    status = CASE WHEN status = 'active' THEN 'ended' ELSE status END
		WHERE product_id = $1`

	res, err := r.db.Exec(query, productID, winnerID)
	if err != nil {
		return fmt.Errorf("set winner for product %s: %w", productID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set winner for product %s: %w", productID, err)
	}
	if affected == 0 {
		return fmt.Errorf("set winner for product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return nil
}

// transitionOutcome maps a zero-row conditional update to the right error:
// the product is missing, or it exists in a state the transition forbids.
func (r *Repository) transitionOutcome(res sql.Result, productID, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s for product %s: %w", op, productID, err)
	}
	if affected > 0 {
		return nil
	}
	current, err := r.GetByID(productID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%s for product %s: status is %s: %w",
		op, productID, current.Auction.Status, auctionerrors.ErrInvalidTransition)
}
