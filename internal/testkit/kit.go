// Package testkit provides in-memory repository implementations and
// pre-wired services for handler tests and local demos, so neither
// needs a running PostgreSQL instance.
package testkit

import (
	"time"

	"reeladmin/app"
	"reeladmin/internal/pooleditor"
	"reeladmin/models"
)

// Kit bundles in-memory repositories with the services wired on top.
type Kit struct {
	Zones     *MemoryZoneRepo
	Templates *MemoryTemplateRepo
	Users     *MemoryUserRepo
	Market    *MemoryMarketRepo
	Shops     *MemoryShopRepo
	Gacha     *MemoryGachaRepo

	ZoneService     *app.ZoneService
	TemplateService *app.ItemTemplateService
	UserService     *app.UserService
	MarketService   *app.MarketService
	ShopService     *app.ShopService
	GachaService    *app.GachaService
}

// NewKit creates an empty in-memory kit.
func NewKit() *Kit {
	k := &Kit{
		Zones:     NewMemoryZoneRepo(),
		Templates: NewMemoryTemplateRepo(),
		Users:     NewMemoryUserRepo(),
		Market:    NewMemoryMarketRepo(),
		Shops:     NewMemoryShopRepo(),
		Gacha:     NewMemoryGachaRepo(),
	}
	k.ZoneService = app.NewZoneService(k.Zones, k.Templates, pooleditor.NewRegistry(time.Minute))
	k.TemplateService = app.NewItemTemplateService(k.Templates)
	k.UserService = app.NewUserService(k.Users, k.Zones)
	k.MarketService = app.NewMarketService(k.Market)
	k.ShopService = app.NewShopService(k.Shops)
	k.GachaService = app.NewGachaService(k.Gacha, k.Templates)
	return k
}

// SeedDefaults loads a small consistent fixture: the three builtin
// zones, a handful of fish, and one test player.
func (k *Kit) SeedDefaults() {
	k.Zones.Put(models.FishingZone{ID: 1, Name: "Novice Harbor", DailyRareFishQuota: 50, FishingCost: 10, IsActive: true})
	k.Zones.Put(models.FishingZone{ID: 2, Name: "Deep Sea Canyon", DailyRareFishQuota: 20, FishingCost: 50, IsActive: true})
	k.Zones.Put(models.FishingZone{ID: 3, Name: "Legendary Sea", DailyRareFishQuota: 5, FishingCost: 200, IsActive: true})

	k.Templates.PutFish(models.Fish{FishID: 1, Name: "Crucian Carp", Rarity: 1, BaseValue: 10, MinWeight: 100, MaxWeight: 2000})
	k.Templates.PutFish(models.Fish{FishID: 2, Name: "Koi", Rarity: 2, BaseValue: 120, MinWeight: 500, MaxWeight: 8000})
	k.Templates.PutFish(models.Fish{FishID: 3, Name: "Tuna", Rarity: 3, BaseValue: 500, MinWeight: 1000, MaxWeight: 90000})
	k.Templates.PutFish(models.Fish{FishID: 4, Name: "Golden Koi", Rarity: 5, BaseValue: 25000, MinWeight: 500, MaxWeight: 8000})

	k.Users.Put(models.User{UserID: "u-1", Coins: 1000, FishPondCapacity: 50, FishingZoneID: 1, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})
}
