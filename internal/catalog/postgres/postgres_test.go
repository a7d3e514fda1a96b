package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

// newMockRepo creates a sqlmock-backed repository with automatic cleanup and
// expectation checking.
func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewWithDB(sqlx.NewDb(db, "sqlmock")), mock
}

func productRows(status string, price int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"product_id", "seller_id", "title", "description", "starting_price",
		"current_price", "status", "start_time", "end_time", "winner_id", "total_bids",
	}).AddRow("prod1", "seller1", "vintage camera", "", "100", decimal.NewFromInt(price).String(), status, nil, nil, nil, 0)
}

func TestRepository_Create(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO products").
		WithArgs("prod1", "seller1", "vintage camera", "", sqlmock.AnyArg(), sqlmock.AnyArg(), "draft").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(model.Product{
		ProductID:     "prod1",
		SellerID:      "seller1",
		Title:         "vintage camera",
		StartingPrice: decimal.NewFromInt(100),
		CurrentPrice:  decimal.NewFromInt(100),
		Auction:       model.Auction{Status: model.AuctionDraft},
	})
	require.NoError(t, err)
}

func TestRepository_GetByID(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT .+ FROM products WHERE product_id = \\$1").
		WithArgs("prod1").
		WillReturnRows(productRows("active", 150))

	p, err := repo.GetByID("prod1")
	require.NoError(t, err)
	require.Equal(t, "prod1", p.ProductID)
	require.Equal(t, model.AuctionActive, p.Auction.Status)
	require.True(t, p.CurrentPrice.Equal(decimal.NewFromInt(150)))
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT .+ FROM products WHERE product_id = \\$1").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

	_, err := repo.GetByID("ghost")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrProductNotFound))
}

func TestRepository_StartAuction(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	start := time.Now().UTC()
	end := start.Add(time.Hour)

	mock.ExpectExec("UPDATE products").
		WithArgs("prod1", start, end).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.StartAuction("prod1", start, end))
}

func TestRepository_StartAuction_WrongState(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	start := time.Now().UTC()
	end := start.Add(time.Hour)

	// The conditional UPDATE matches nothing, and the follow-up read shows
	// the auction is already active.
	mock.ExpectExec("UPDATE products").
		WithArgs("prod1", start, end).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .+ FROM products WHERE product_id = \\$1").
		WithArgs("prod1").
		WillReturnRows(productRows("active", 100))

	err := repo.StartAuction("prod1", start, end)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidTransition))
}

func TestRepository_StartAuction_ProductMissing(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	start := time.Now().UTC()
	end := start.Add(time.Hour)

	mock.ExpectExec("UPDATE products").
		WithArgs("ghost", start, end).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .+ FROM products WHERE product_id = \\$1").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

	err := repo.StartAuction("ghost", start, end)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrProductNotFound))
}

func TestRepository_EndAuction(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	winner := "userB"

	mock.ExpectExec("UPDATE products").
		WithArgs("prod1", &winner, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.EndAuction("prod1", &winner, decimal.NewFromInt(160)))
}

func TestRepository_ApplyBid(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE products").
		WithArgs("prod1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := repo.ApplyBid("prod1", decimal.NewFromInt(150))
	require.NoError(t, err)
	require.True(t, applied)
}

func TestRepository_ApplyBid_StaleIsNoop(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	// No row matches the conditional UPDATE but the product exists, so the
	// stale event is absorbed.
	mock.ExpectExec("UPDATE products").
		WithArgs("prod1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .+ FROM products WHERE product_id = \\$1").
		WithArgs("prod1").
		WillReturnRows(productRows("active", 200))

	applied, err := repo.ApplyBid("prod1", decimal.NewFromInt(150))
	require.NoError(t, err)
	require.False(t, applied)
}

func TestRepository_SetWinner(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE products").
		WithArgs("prod1", "userB").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetWinner("prod1", "userB"))
}
