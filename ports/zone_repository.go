package ports

import (
	"context"

	"reeladmin/models"
)

// ZoneRepository provides access to fishing zones and their restricted
// fish pools.
type ZoneRepository interface {
	ListZones(ctx context.Context) ([]models.FishingZone, error)
	GetZone(ctx context.Context, zoneID int64) (*models.FishingZone, error)
	CreateZone(ctx context.Context, z *models.FishingZone) error
	UpdateZone(ctx context.Context, z *models.FishingZone) error
	DeleteZone(ctx context.Context, zoneID int64) error

	// Restricted fish pool (zone_fish). An empty pool means the zone
	// uses the global catalog.
	GetZoneFishIDs(ctx context.Context, zoneID int64) ([]int64, error)
	ReplaceZoneFish(ctx context.Context, zoneID int64, fishIDs []int64) error
}
