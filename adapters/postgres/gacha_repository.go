package postgres

import (
	"context"
	"database/sql"
	"errors"

	"reeladmin/models"
	"reeladmin/ports"

	apperrors "reeladmin/internal/errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// GachaRepositoryImpl implements GachaRepository for PostgreSQL
type GachaRepositoryImpl struct {
	db *sqlx.DB
}

// NewGachaRepository creates a new PostgreSQL gacha repository
func NewGachaRepository(db *sqlx.DB) ports.GachaRepository {
	return &GachaRepositoryImpl{db: db}
}

const poolColumns = `
	gacha_pool_id, name, description, cost_coins, cost_premium_currency,
	is_limited_time, open_until
`

const poolItemColumns = `
	gacha_pool_item_id, gacha_pool_id, item_type, item_id, quantity, weight
`

func (r *GachaRepositoryImpl) ListPools(ctx context.Context) ([]models.GachaPool, error) {
	var pools []models.GachaPool
	err := r.db.SelectContext(ctx, &pools, `
		SELECT `+poolColumns+` FROM gacha_pools ORDER BY gacha_pool_id
	`)
	if err != nil {
		return nil, err
	}

	for i := range pools {
		items, err := r.poolItems(ctx, pools[i].PoolID)
		if err != nil {
			return nil, err
		}
		pools[i].Items = items
	}
	return pools, nil
}

func (r *GachaRepositoryImpl) GetPool(ctx context.Context, poolID int64) (*models.GachaPool, error) {
	var pool models.GachaPool
	err := r.db.GetContext(ctx, &pool, `
		SELECT `+poolColumns+` FROM gacha_pools WHERE gacha_pool_id = $1
	`, poolID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("gacha pool")
	}
	if err != nil {
		return nil, err
	}

	items, err := r.poolItems(ctx, poolID)
	if err != nil {
		return nil, err
	}
	pool.Items = items
	return &pool, nil
}

func (r *GachaRepositoryImpl) poolItems(ctx context.Context, poolID int64) ([]models.GachaPoolItem, error) {
	var items []models.GachaPoolItem
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+poolItemColumns+` FROM gacha_pool_items
		WHERE gacha_pool_id = $1
		ORDER BY gacha_pool_item_id
	`, poolID)
	return items, err
}

func (r *GachaRepositoryImpl) CreatePool(ctx context.Context, pool *models.GachaPool) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO gacha_pools (name, description, cost_coins, cost_premium_currency,
		                         is_limited_time, open_until)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING gacha_pool_id
	`, pool.Name, pool.Description, pool.CostCoins, pool.CostPremiumCurrency,
		pool.IsLimitedTime, pool.OpenUntil).Scan(&pool.PoolID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return apperrors.Conflict("a gacha pool with this name already exists")
		}
		return err
	}
	return nil
}

func (r *GachaRepositoryImpl) UpdatePool(ctx context.Context, pool *models.GachaPool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gacha_pools
		SET name = $2, description = $3, cost_coins = $4,
		    cost_premium_currency = $5, is_limited_time = $6, open_until = $7
		WHERE gacha_pool_id = $1
	`, pool.PoolID, pool.Name, pool.Description, pool.CostCoins,
		pool.CostPremiumCurrency, pool.IsLimitedTime, pool.OpenUntil)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return apperrors.Conflict("a gacha pool with this name already exists")
		}
		return err
	}
	return requireRowAffected(res, "gacha pool")
}

func (r *GachaRepositoryImpl) DeletePool(ctx context.Context, poolID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gacha_pools WHERE gacha_pool_id = $1`, poolID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "gacha pool")
}

// CopyPool duplicates the pool row and its items in one transaction.
func (r *GachaRepositoryImpl) CopyPool(ctx context.Context, poolID int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var newID int64
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO gacha_pools (name, description, cost_coins, cost_premium_currency,
		                         is_limited_time, open_until)
		SELECT name || ' (copy)', description, cost_coins, cost_premium_currency,
		       is_limited_time, open_until
		FROM gacha_pools WHERE gacha_pool_id = $1
		RETURNING gacha_pool_id
	`, poolID).Scan(&newID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.NotFound("gacha pool")
	}
	if err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO gacha_pool_items (gacha_pool_id, item_type, item_id, quantity, weight)
		SELECT $2, item_type, item_id, quantity, weight
		FROM gacha_pool_items WHERE gacha_pool_id = $1
	`, poolID, newID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return newID, nil
}

func (r *GachaRepositoryImpl) AddPoolItem(ctx context.Context, item *models.GachaPoolItem) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO gacha_pool_items (gacha_pool_id, item_type, item_id, quantity, weight)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING gacha_pool_item_id
	`, item.PoolID, item.ItemType, item.ItemID, item.Quantity, item.Weight).Scan(&item.PoolItemID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return apperrors.NotFound("gacha pool")
		}
		return err
	}
	return nil
}

func (r *GachaRepositoryImpl) GetPoolItem(ctx context.Context, poolItemID int64) (*models.GachaPoolItem, error) {
	var item models.GachaPoolItem
	err := r.db.GetContext(ctx, &item, `
		SELECT `+poolItemColumns+` FROM gacha_pool_items WHERE gacha_pool_item_id = $1
	`, poolItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("gacha pool item")
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GachaRepositoryImpl) UpdatePoolItem(ctx context.Context, item *models.GachaPoolItem) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gacha_pool_items
		SET item_type = $2, item_id = $3, quantity = $4, weight = $5
		WHERE gacha_pool_item_id = $1
	`, item.PoolItemID, item.ItemType, item.ItemID, item.Quantity, item.Weight)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "gacha pool item")
}

func (r *GachaRepositoryImpl) DeletePoolItem(ctx context.Context, poolItemID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gacha_pool_items WHERE gacha_pool_item_id = $1`, poolItemID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "gacha pool item")
}
