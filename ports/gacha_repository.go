package ports

import (
	"context"

	"reeladmin/models"
)

// GachaRepository provides access to gacha prize pools and their
// weighted item entries.
type GachaRepository interface {
	ListPools(ctx context.Context) ([]models.GachaPool, error)
	GetPool(ctx context.Context, poolID int64) (*models.GachaPool, error)
	CreatePool(ctx context.Context, pool *models.GachaPool) error
	UpdatePool(ctx context.Context, pool *models.GachaPool) error
	DeletePool(ctx context.Context, poolID int64) error

	// CopyPool duplicates a pool together with its item entries and
	// returns the new pool id.
	CopyPool(ctx context.Context, poolID int64) (int64, error)

	AddPoolItem(ctx context.Context, item *models.GachaPoolItem) error
	GetPoolItem(ctx context.Context, poolItemID int64) (*models.GachaPoolItem, error)
	UpdatePoolItem(ctx context.Context, item *models.GachaPoolItem) error
	DeletePoolItem(ctx context.Context, poolItemID int64) error
}
