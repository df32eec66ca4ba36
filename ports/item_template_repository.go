package ports

import (
	"context"

	"reeladmin/models"
)

// ItemTemplateRepository provides CRUD access to the catalog templates
// (fish, rods, baits, accessories, generic items).
type ItemTemplateRepository interface {
	// Fish
	ListFish(ctx context.Context) ([]models.Fish, error)
	GetFish(ctx context.Context, fishID int64) (*models.Fish, error)
	CreateFish(ctx context.Context, fish *models.Fish) error
	UpdateFish(ctx context.Context, fish *models.Fish) error
	DeleteFish(ctx context.Context, fishID int64) error

	// Rods
	ListRods(ctx context.Context) ([]models.Rod, error)
	GetRod(ctx context.Context, rodID int64) (*models.Rod, error)
	CreateRod(ctx context.Context, rod *models.Rod) error
	UpdateRod(ctx context.Context, rod *models.Rod) error
	DeleteRod(ctx context.Context, rodID int64) error

	// Baits
	ListBaits(ctx context.Context) ([]models.Bait, error)
	GetBait(ctx context.Context, baitID int64) (*models.Bait, error)
	CreateBait(ctx context.Context, bait *models.Bait) error
	UpdateBait(ctx context.Context, bait *models.Bait) error
	DeleteBait(ctx context.Context, baitID int64) error

	// Accessories
	ListAccessories(ctx context.Context) ([]models.Accessory, error)
	GetAccessory(ctx context.Context, accessoryID int64) (*models.Accessory, error)
	CreateAccessory(ctx context.Context, accessory *models.Accessory) error
	UpdateAccessory(ctx context.Context, accessory *models.Accessory) error
	DeleteAccessory(ctx context.Context, accessoryID int64) error

	// Generic items
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, itemID int64) (*models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, itemID int64) error
}
