package postgres

import (
	"context"
	"database/sql"
	"errors"

	"reeladmin/models"
	"reeladmin/ports"

	apperrors "reeladmin/internal/errors"

	"github.com/jmoiron/sqlx"
)

// ShopRepositoryImpl implements ShopRepository for PostgreSQL
type ShopRepositoryImpl struct {
	db *sqlx.DB
}

// NewShopRepository creates a new PostgreSQL shop repository
func NewShopRepository(db *sqlx.DB) ports.ShopRepository {
	return &ShopRepositoryImpl{db: db}
}

func (r *ShopRepositoryImpl) ListShops(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	err := r.db.SelectContext(ctx, &shops, `
		SELECT shop_id, name, description, shop_type, is_active,
		       start_time, end_time, sort_order, created_at, updated_at
		FROM shops
		ORDER BY sort_order, shop_id
	`)
	return shops, err
}

func (r *ShopRepositoryImpl) GetShop(ctx context.Context, shopID int64) (*models.Shop, error) {
	var shop models.Shop
	err := r.db.GetContext(ctx, &shop, `
		SELECT shop_id, name, description, shop_type, is_active,
		       start_time, end_time, sort_order, created_at, updated_at
		FROM shops
		WHERE shop_id = $1
	`, shopID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("shop")
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *ShopRepositoryImpl) CreateShop(ctx context.Context, shop *models.Shop) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO shops (name, description, shop_type, is_active, start_time, end_time, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING shop_id
	`, shop.Name, shop.Description, shop.ShopType, shop.IsActive,
		shop.StartTime, shop.EndTime, shop.SortOrder).Scan(&shop.ShopID)
}

func (r *ShopRepositoryImpl) UpdateShop(ctx context.Context, shop *models.Shop) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE shops
		SET name = $2, description = $3, shop_type = $4, is_active = $5,
		    start_time = $6, end_time = $7, sort_order = $8, updated_at = NOW()
		WHERE shop_id = $1
	`, shop.ShopID, shop.Name, shop.Description, shop.ShopType, shop.IsActive,
		shop.StartTime, shop.EndTime, shop.SortOrder)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "shop")
}

func (r *ShopRepositoryImpl) DeleteShop(ctx context.Context, shopID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shops WHERE shop_id = $1`, shopID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "shop")
}

func (r *ShopRepositoryImpl) ListShopItems(ctx context.Context, shopID int64) ([]models.ShopItem, error) {
	var items []models.ShopItem
	err := r.db.SelectContext(ctx, &items, `
		SELECT item_id, shop_id, name, description, category, stock_total, stock_sold,
		       per_user_limit, per_user_daily_limit, is_active, start_time, end_time
		FROM shop_items
		WHERE shop_id = $1
		ORDER BY item_id
	`, shopID)
	return items, err
}

func (r *ShopRepositoryImpl) CreateShopItem(ctx context.Context, item *models.ShopItem) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO shop_items (shop_id, name, description, category, stock_total,
		                        per_user_limit, per_user_daily_limit, is_active,
		                        start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING item_id
	`, item.ShopID, item.Name, item.Description, item.Category, item.StockTotal,
		item.PerUserLimit, item.PerUserDailyLimit, item.IsActive,
		item.StartTime, item.EndTime).Scan(&item.ItemID)
}

func (r *ShopRepositoryImpl) UpdateShopItem(ctx context.Context, item *models.ShopItem) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE shop_items
		SET name = $2, description = $3, category = $4, stock_total = $5,
		    per_user_limit = $6, per_user_daily_limit = $7, is_active = $8,
		    start_time = $9, end_time = $10
		WHERE item_id = $1
	`, item.ItemID, item.Name, item.Description, item.Category, item.StockTotal,
		item.PerUserLimit, item.PerUserDailyLimit, item.IsActive,
		item.StartTime, item.EndTime)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "shop item")
}

func (r *ShopRepositoryImpl) DeleteShopItem(ctx context.Context, itemID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shop_items WHERE item_id = $1`, itemID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "shop item")
}
