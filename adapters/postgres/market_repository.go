package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"reeladmin/models"
	"reeladmin/ports"

	apperrors "reeladmin/internal/errors"

	"github.com/jmoiron/sqlx"
)

// MarketRepositoryImpl implements MarketRepository for PostgreSQL
type MarketRepositoryImpl struct {
	db *sqlx.DB
}

// NewMarketRepository creates a new PostgreSQL market repository
func NewMarketRepository(db *sqlx.DB) ports.MarketRepository {
	return &MarketRepositoryImpl{db: db}
}

const listingColumns = `
	market_id, user_id, seller_nickname, item_type, item_id, item_name,
	item_description, quantity, price, refine_level, is_anonymous,
	listed_at, expires_at
`

// buildFilterClause turns MarketFilters into a WHERE clause with
// positional args, shared by the listing and stats queries.
func buildFilterClause(filters models.MarketFilters) (string, []interface{}) {
	var conds []string
	var args []interface{}
	next := func() string { return "$" + strconv.Itoa(len(args)) }

	if filters.ItemType != nil {
		args = append(args, *filters.ItemType)
		conds = append(conds, "item_type = "+next())
	}
	if filters.MinPrice != nil {
		args = append(args, *filters.MinPrice)
		conds = append(conds, "price >= "+next())
	}
	if filters.MaxPrice != nil {
		args = append(args, *filters.MaxPrice)
		conds = append(conds, "price <= "+next())
	}
	if filters.Search != nil {
		args = append(args, "%"+*filters.Search+"%")
		p := next()
		conds = append(conds, "(item_name ILIKE "+p+" OR seller_nickname ILIKE "+p+")")
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *MarketRepositoryImpl) ListListings(ctx context.Context, page, perPage int, filters models.MarketFilters) ([]models.MarketListing, int, error) {
	where, args := buildFilterClause(filters)

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM market_listings `+where, args...); err != nil {
		return nil, 0, err
	}

	pagination := models.NewPagination(page, perPage, total)
	args = append(args, pagination.PerPage, pagination.Offset())
	limitPos := len(args) - 1

	var listings []models.MarketListing
	query := `SELECT ` + listingColumns + ` FROM market_listings ` + where +
		` ORDER BY listed_at DESC LIMIT $` + strconv.Itoa(limitPos) + ` OFFSET $` + strconv.Itoa(limitPos+1)
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *MarketRepositoryImpl) AllListings(ctx context.Context, filters models.MarketFilters) ([]models.MarketListing, error) {
	where, args := buildFilterClause(filters)
	var listings []models.MarketListing
	query := `SELECT ` + listingColumns + ` FROM market_listings ` + where + ` ORDER BY listed_at DESC`
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *MarketRepositoryImpl) GetListing(ctx context.Context, marketID int64) (*models.MarketListing, error) {
	var listing models.MarketListing
	err := r.db.GetContext(ctx, &listing, `
		SELECT `+listingColumns+` FROM market_listings WHERE market_id = $1
	`, marketID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("market listing")
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *MarketRepositoryImpl) UpdatePrice(ctx context.Context, marketID int64, price int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE market_listings SET price = $2 WHERE market_id = $1
	`, marketID, price)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "market listing")
}

func (r *MarketRepositoryImpl) DeleteListing(ctx context.Context, marketID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM market_listings WHERE market_id = $1`, marketID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "market listing")
}

func (r *MarketRepositoryImpl) Prices(ctx context.Context, filters models.MarketFilters) ([]int64, error) {
	where, args := buildFilterClause(filters)
	var prices []int64
	err := r.db.SelectContext(ctx, &prices, `SELECT price FROM market_listings `+where, args...)
	return prices, err
}
