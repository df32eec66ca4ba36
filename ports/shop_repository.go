package ports

import (
	"context"

	"reeladmin/models"
)

// ShopRepository provides access to shops and their items.
type ShopRepository interface {
	ListShops(ctx context.Context) ([]models.Shop, error)
	GetShop(ctx context.Context, shopID int64) (*models.Shop, error)
	CreateShop(ctx context.Context, shop *models.Shop) error
	UpdateShop(ctx context.Context, shop *models.Shop) error
	DeleteShop(ctx context.Context, shopID int64) error

	ListShopItems(ctx context.Context, shopID int64) ([]models.ShopItem, error)
	CreateShopItem(ctx context.Context, item *models.ShopItem) error
	UpdateShopItem(ctx context.Context, item *models.ShopItem) error
	DeleteShopItem(ctx context.Context, itemID int64) error
}
