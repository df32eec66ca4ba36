package app

import (
	"context"
	"sort"

	"reeladmin/internal/errors"
	"reeladmin/models"
	"reeladmin/ports"
)

// fakeZoneRepo is an in-memory ZoneRepository for service tests.
type fakeZoneRepo struct {
	zones map[int64]models.FishingZone
	pools map[int64][]int64
}

func newFakeZoneRepo() *fakeZoneRepo {
	return &fakeZoneRepo{
		zones: make(map[int64]models.FishingZone),
		pools: make(map[int64][]int64),
	}
}

func (r *fakeZoneRepo) ListZones(ctx context.Context) ([]models.FishingZone, error) {
	ids := make([]int64, 0, len(r.zones))
	for id := range r.zones {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]models.FishingZone, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.zones[id])
	}
	return out, nil
}

func (r *fakeZoneRepo) GetZone(ctx context.Context, zoneID int64) (*models.FishingZone, error) {
	z, ok := r.zones[zoneID]
	if !ok {
		return nil, errors.NotFound("zone")
	}
	return &z, nil
}

func (r *fakeZoneRepo) CreateZone(ctx context.Context, z *models.FishingZone) error {
	if _, ok := r.zones[z.ID]; ok {
		return errors.Conflict("zone already exists")
	}
	r.zones[z.ID] = *z
	return nil
}

func (r *fakeZoneRepo) UpdateZone(ctx context.Context, z *models.FishingZone) error {
	if _, ok := r.zones[z.ID]; !ok {
		return errors.NotFound("zone")
	}
	r.zones[z.ID] = *z
	return nil
}

func (r *fakeZoneRepo) DeleteZone(ctx context.Context, zoneID int64) error {
	if _, ok := r.zones[zoneID]; !ok {
		return errors.NotFound("zone")
	}
	delete(r.zones, zoneID)
	delete(r.pools, zoneID)
	return nil
}

func (r *fakeZoneRepo) GetZoneFishIDs(ctx context.Context, zoneID int64) ([]int64, error) {
	return r.pools[zoneID], nil
}

func (r *fakeZoneRepo) ReplaceZoneFish(ctx context.Context, zoneID int64, fishIDs []int64) error {
	r.pools[zoneID] = append([]int64(nil), fishIDs...)
	return nil
}

// fakeTemplateRepo embeds the interface so tests only fill in what
// they touch.
type fakeTemplateRepo struct {
	ports.ItemTemplateRepository
	fish       map[int64]models.Fish
	nextFishID int64
	failCreate bool
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{fish: make(map[int64]models.Fish), nextFishID: 1}
}

func (r *fakeTemplateRepo) ListFish(ctx context.Context) ([]models.Fish, error) {
	ids := make([]int64, 0, len(r.fish))
	for id := range r.fish {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]models.Fish, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.fish[id])
	}
	return out, nil
}

func (r *fakeTemplateRepo) GetFish(ctx context.Context, fishID int64) (*models.Fish, error) {
	f, ok := r.fish[fishID]
	if !ok {
		return nil, errors.NotFound("fish")
	}
	return &f, nil
}

func (r *fakeTemplateRepo) CreateFish(ctx context.Context, fish *models.Fish) error {
	if r.failCreate {
		return errors.DatabaseError("insert failed")
	}
	fish.FishID = r.nextFishID
	r.nextFishID++
	r.fish[fish.FishID] = *fish
	return nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) ListUsers(ctx context.Context, page, perPage int, search string) (*models.UserPage, error) {
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, r.users[id])
	}
	return &models.UserPage{
		Users:      users,
		Pagination: models.NewPagination(page, perPage, len(users)),
	}, nil
}

func (r *fakeUserRepo) GetUser(ctx context.Context, userID string) (*models.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, errors.NotFound("user")
	}
	return &u, nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if _, ok := r.users[user.UserID]; ok {
		return errors.Conflict("user already exists")
	}
	r.users[user.UserID] = *user
	return nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	if _, ok := r.users[user.UserID]; !ok {
		return errors.NotFound("user")
	}
	r.users[user.UserID] = *user
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, userID string) error {
	if _, ok := r.users[userID]; !ok {
		return errors.NotFound("user")
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) SetUserZone(ctx context.Context, userID string, zoneID int64) error {
	u, ok := r.users[userID]
	if !ok {
		return errors.NotFound("user")
	}
	u.FishingZoneID = zoneID
	r.users[userID] = u
	return nil
}

// fakeMarketRepo is an in-memory MarketRepository.
type fakeMarketRepo struct {
	listings map[int64]models.MarketListing
}

func newFakeMarketRepo() *fakeMarketRepo {
	return &fakeMarketRepo{listings: make(map[int64]models.MarketListing)}
}

func (r *fakeMarketRepo) matching(filters models.MarketFilters) []models.MarketListing {
	ids := make([]int64, 0, len(r.listings))
	for id := range r.listings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []models.MarketListing
	for _, id := range ids {
		l := r.listings[id]
		if filters.ItemType != nil && l.ItemType != *filters.ItemType {
			continue
		}
		if filters.MinPrice != nil && l.Price < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && l.Price > *filters.MaxPrice {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (r *fakeMarketRepo) ListListings(ctx context.Context, page, perPage int, filters models.MarketFilters) ([]models.MarketListing, int, error) {
	all := r.matching(filters)
	pagination := models.NewPagination(page, perPage, len(all))
	start := pagination.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + pagination.PerPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all), nil
}

func (r *fakeMarketRepo) AllListings(ctx context.Context, filters models.MarketFilters) ([]models.MarketListing, error) {
	return r.matching(filters), nil
}

func (r *fakeMarketRepo) GetListing(ctx context.Context, marketID int64) (*models.MarketListing, error) {
	l, ok := r.listings[marketID]
	if !ok {
		return nil, errors.NotFound("market listing")
	}
	return &l, nil
}

func (r *fakeMarketRepo) UpdatePrice(ctx context.Context, marketID int64, price int64) error {
	l, ok := r.listings[marketID]
	if !ok {
		return errors.NotFound("market listing")
	}
	l.Price = price
	r.listings[marketID] = l
	return nil
}

func (r *fakeMarketRepo) DeleteListing(ctx context.Context, marketID int64) error {
	if _, ok := r.listings[marketID]; !ok {
		return errors.NotFound("market listing")
	}
	delete(r.listings, marketID)
	return nil
}

func (r *fakeMarketRepo) Prices(ctx context.Context, filters models.MarketFilters) ([]int64, error) {
	all := r.matching(filters)
	prices := make([]int64, len(all))
	for i, l := range all {
		prices[i] = l.Price
	}
	return prices, nil
}

// fakeShopRepo is an in-memory ShopRepository.
type fakeShopRepo struct {
	shops      map[int64]models.Shop
	items      map[int64]models.ShopItem
	nextShopID int64
	nextItemID int64
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{
		shops:      make(map[int64]models.Shop),
		items:      make(map[int64]models.ShopItem),
		nextShopID: 1,
		nextItemID: 1,
	}
}

func (r *fakeShopRepo) ListShops(ctx context.Context) ([]models.Shop, error) {
	out := make([]models.Shop, 0, len(r.shops))
	for _, shop := range r.shops {
		out = append(out, shop)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ShopID < out[j].ShopID
	})
	return out, nil
}

func (r *fakeShopRepo) GetShop(ctx context.Context, shopID int64) (*models.Shop, error) {
	shop, ok := r.shops[shopID]
	if !ok {
		return nil, errors.NotFound("shop")
	}
	return &shop, nil
}

func (r *fakeShopRepo) CreateShop(ctx context.Context, shop *models.Shop) error {
	shop.ShopID = r.nextShopID
	r.nextShopID++
	r.shops[shop.ShopID] = *shop
	return nil
}

func (r *fakeShopRepo) UpdateShop(ctx context.Context, shop *models.Shop) error {
	if _, ok := r.shops[shop.ShopID]; !ok {
		return errors.NotFound("shop")
	}
	r.shops[shop.ShopID] = *shop
	return nil
}

func (r *fakeShopRepo) DeleteShop(ctx context.Context, shopID int64) error {
	if _, ok := r.shops[shopID]; !ok {
		return errors.NotFound("shop")
	}
	delete(r.shops, shopID)
	return nil
}

func (r *fakeShopRepo) ListShopItems(ctx context.Context, shopID int64) ([]models.ShopItem, error) {
	var out []models.ShopItem
	for _, item := range r.items {
		if item.ShopID == shopID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *fakeShopRepo) CreateShopItem(ctx context.Context, item *models.ShopItem) error {
	item.ItemID = r.nextItemID
	r.nextItemID++
	r.items[item.ItemID] = *item
	return nil
}

func (r *fakeShopRepo) UpdateShopItem(ctx context.Context, item *models.ShopItem) error {
	if _, ok := r.items[item.ItemID]; !ok {
		return errors.NotFound("shop item")
	}
	r.items[item.ItemID] = *item
	return nil
}

func (r *fakeShopRepo) DeleteShopItem(ctx context.Context, itemID int64) error {
	if _, ok := r.items[itemID]; !ok {
		return errors.NotFound("shop item")
	}
	delete(r.items, itemID)
	return nil
}

type fakeGachaRepo struct {
	pools      map[int64]models.GachaPool
	items      map[int64]models.GachaPoolItem
	nextPoolID int64
	nextItemID int64
}

func newFakeGachaRepo() *fakeGachaRepo {
	return &fakeGachaRepo{
		pools:      make(map[int64]models.GachaPool),
		items:      make(map[int64]models.GachaPoolItem),
		nextPoolID: 1,
		nextItemID: 1,
	}
}

func (r *fakeGachaRepo) poolWithItems(poolID int64) models.GachaPool {
	pool := r.pools[poolID]
	pool.Items = nil
	for _, item := range r.items {
		if item.PoolID == poolID {
			pool.Items = append(pool.Items, item)
		}
	}
	sort.Slice(pool.Items, func(i, j int) bool { return pool.Items[i].PoolItemID < pool.Items[j].PoolItemID })
	return pool
}

func (r *fakeGachaRepo) ListPools(ctx context.Context) ([]models.GachaPool, error) {
	out := make([]models.GachaPool, 0, len(r.pools))
	for id := range r.pools {
		out = append(out, r.poolWithItems(id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PoolID < out[j].PoolID })
	return out, nil
}

func (r *fakeGachaRepo) GetPool(ctx context.Context, poolID int64) (*models.GachaPool, error) {
	if _, ok := r.pools[poolID]; !ok {
		return nil, errors.NotFound("gacha pool")
	}
	pool := r.poolWithItems(poolID)
	return &pool, nil
}

func (r *fakeGachaRepo) CreatePool(ctx context.Context, pool *models.GachaPool) error {
	for _, existing := range r.pools {
		if existing.Name == pool.Name {
			return errors.Conflict("a gacha pool with this name already exists")
		}
	}
	pool.PoolID = r.nextPoolID
	r.nextPoolID++
	r.pools[pool.PoolID] = *pool
	return nil
}

func (r *fakeGachaRepo) UpdatePool(ctx context.Context, pool *models.GachaPool) error {
	if _, ok := r.pools[pool.PoolID]; !ok {
		return errors.NotFound("gacha pool")
	}
	r.pools[pool.PoolID] = *pool
	return nil
}

func (r *fakeGachaRepo) DeletePool(ctx context.Context, poolID int64) error {
	if _, ok := r.pools[poolID]; !ok {
		return errors.NotFound("gacha pool")
	}
	delete(r.pools, poolID)
	for id, item := range r.items {
		if item.PoolID == poolID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeGachaRepo) CopyPool(ctx context.Context, poolID int64) (int64, error) {
	src, ok := r.pools[poolID]
	if !ok {
		return 0, errors.NotFound("gacha pool")
	}
	copied := src
	copied.PoolID = r.nextPoolID
	r.nextPoolID++
	copied.Name = src.Name + " (copy)"
	r.pools[copied.PoolID] = copied
	for _, item := range r.poolWithItems(poolID).Items {
		item.PoolItemID = r.nextItemID
		r.nextItemID++
		item.PoolID = copied.PoolID
		r.items[item.PoolItemID] = item
	}
	return copied.PoolID, nil
}

func (r *fakeGachaRepo) AddPoolItem(ctx context.Context, item *models.GachaPoolItem) error {
	if _, ok := r.pools[item.PoolID]; !ok {
		return errors.NotFound("gacha pool")
	}
	item.PoolItemID = r.nextItemID
	r.nextItemID++
	r.items[item.PoolItemID] = *item
	return nil
}

func (r *fakeGachaRepo) GetPoolItem(ctx context.Context, poolItemID int64) (*models.GachaPoolItem, error) {
	item, ok := r.items[poolItemID]
	if !ok {
		return nil, errors.NotFound("gacha pool item")
	}
	return &item, nil
}

func (r *fakeGachaRepo) UpdatePoolItem(ctx context.Context, item *models.GachaPoolItem) error {
	if _, ok := r.items[item.PoolItemID]; !ok {
		return errors.NotFound("gacha pool item")
	}
	r.items[item.PoolItemID] = *item
	return nil
}

func (r *fakeGachaRepo) DeletePoolItem(ctx context.Context, poolItemID int64) error {
	if _, ok := r.items[poolItemID]; !ok {
		return errors.NotFound("gacha pool item")
	}
	delete(r.items, poolItemID)
	return nil
}

var (
	_ ports.ZoneRepository   = (*fakeZoneRepo)(nil)
	_ ports.UserRepository   = (*fakeUserRepo)(nil)
	_ ports.MarketRepository = (*fakeMarketRepo)(nil)
	_ ports.ShopRepository   = (*fakeShopRepo)(nil)
	_ ports.GachaRepository  = (*fakeGachaRepo)(nil)
)
