package testkit

import (
	"context"
	"sort"
	"strings"
	"sync"

	"reeladmin/internal/errors"
	"reeladmin/models"
	"reeladmin/ports"
)

// MemoryZoneRepo is an in-memory ZoneRepository.
type MemoryZoneRepo struct {
	mu    sync.Mutex
	zones map[int64]models.FishingZone
	pools map[int64][]int64
}

func NewMemoryZoneRepo() *MemoryZoneRepo {
	return &MemoryZoneRepo{
		zones: make(map[int64]models.FishingZone),
		pools: make(map[int64][]int64),
	}
}

// Put inserts or replaces a zone without validation, for seeding.
func (r *MemoryZoneRepo) Put(z models.FishingZone) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zones[z.ID] = z
}

func (r *MemoryZoneRepo) ListZones(ctx context.Context) ([]models.FishingZone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.FishingZone, 0, len(r.zones))
	for _, z := range r.zones {
		out = append(out, z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryZoneRepo) GetZone(ctx context.Context, zoneID int64) (*models.FishingZone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	z, ok := r.zones[zoneID]
	if !ok {
		return nil, errors.NotFound("zone")
	}
	return &z, nil
}

func (r *MemoryZoneRepo) CreateZone(ctx context.Context, z *models.FishingZone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.zones[z.ID]; ok {
		return errors.Conflict("zone already exists")
	}
	r.zones[z.ID] = *z
	return nil
}

func (r *MemoryZoneRepo) UpdateZone(ctx context.Context, z *models.FishingZone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.zones[z.ID]; !ok {
		return errors.NotFound("zone")
	}
	r.zones[z.ID] = *z
	return nil
}

func (r *MemoryZoneRepo) DeleteZone(ctx context.Context, zoneID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.zones[zoneID]; !ok {
		return errors.NotFound("zone")
	}
	delete(r.zones, zoneID)
	delete(r.pools, zoneID)
	return nil
}

func (r *MemoryZoneRepo) GetZoneFishIDs(ctx context.Context, zoneID int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.pools[zoneID]...), nil
}

func (r *MemoryZoneRepo) ReplaceZoneFish(ctx context.Context, zoneID int64, fishIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools[zoneID] = append([]int64(nil), fishIDs...)
	return nil
}

// MemoryTemplateRepo is an in-memory ItemTemplateRepository.
type MemoryTemplateRepo struct {
	mu          sync.Mutex
	fish        map[int64]models.Fish
	rods        map[int64]models.Rod
	baits       map[int64]models.Bait
	accessories map[int64]models.Accessory
	items       map[int64]models.Item
	nextID      int64
}

func NewMemoryTemplateRepo() *MemoryTemplateRepo {
	return &MemoryTemplateRepo{
		fish:        make(map[int64]models.Fish),
		rods:        make(map[int64]models.Rod),
		baits:       make(map[int64]models.Bait),
		accessories: make(map[int64]models.Accessory),
		items:       make(map[int64]models.Item),
		nextID:      1000,
	}
}

// PutFish inserts or replaces a fish template, for seeding.
func (r *MemoryTemplateRepo) PutFish(f models.Fish) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fish[f.FishID] = f
}

func (r *MemoryTemplateRepo) allocID() int64 {
	r.nextID++
	return r.nextID
}

func (r *MemoryTemplateRepo) ListFish(ctx context.Context) ([]models.Fish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Fish, 0, len(r.fish))
	for _, f := range r.fish {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FishID < out[j].FishID })
	return out, nil
}

func (r *MemoryTemplateRepo) GetFish(ctx context.Context, fishID int64) (*models.Fish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fish[fishID]
	if !ok {
		return nil, errors.NotFound("fish")
	}
	return &f, nil
}

func (r *MemoryTemplateRepo) CreateFish(ctx context.Context, fish *models.Fish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fish.FishID = r.allocID()
	r.fish[fish.FishID] = *fish
	return nil
}

func (r *MemoryTemplateRepo) UpdateFish(ctx context.Context, fish *models.Fish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fish[fish.FishID]; !ok {
		return errors.NotFound("fish")
	}
	r.fish[fish.FishID] = *fish
	return nil
}

func (r *MemoryTemplateRepo) DeleteFish(ctx context.Context, fishID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fish[fishID]; !ok {
		return errors.NotFound("fish")
	}
	delete(r.fish, fishID)
	return nil
}

func (r *MemoryTemplateRepo) ListRods(ctx context.Context) ([]models.Rod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Rod, 0, len(r.rods))
	for _, rod := range r.rods {
		out = append(out, rod)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RodID < out[j].RodID })
	return out, nil
}

func (r *MemoryTemplateRepo) GetRod(ctx context.Context, rodID int64) (*models.Rod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rod, ok := r.rods[rodID]
	if !ok {
		return nil, errors.NotFound("rod")
	}
	return &rod, nil
}

func (r *MemoryTemplateRepo) CreateRod(ctx context.Context, rod *models.Rod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rod.RodID = r.allocID()
	r.rods[rod.RodID] = *rod
	return nil
}

func (r *MemoryTemplateRepo) UpdateRod(ctx context.Context, rod *models.Rod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rods[rod.RodID]; !ok {
		return errors.NotFound("rod")
	}
	r.rods[rod.RodID] = *rod
	return nil
}

func (r *MemoryTemplateRepo) DeleteRod(ctx context.Context, rodID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rods[rodID]; !ok {
		return errors.NotFound("rod")
	}
	delete(r.rods, rodID)
	return nil
}

func (r *MemoryTemplateRepo) ListBaits(ctx context.Context) ([]models.Bait, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Bait, 0, len(r.baits))
	for _, b := range r.baits {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BaitID < out[j].BaitID })
	return out, nil
}

func (r *MemoryTemplateRepo) GetBait(ctx context.Context, baitID int64) (*models.Bait, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.baits[baitID]
	if !ok {
		return nil, errors.NotFound("bait")
	}
	return &b, nil
}

func (r *MemoryTemplateRepo) CreateBait(ctx context.Context, bait *models.Bait) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bait.BaitID = r.allocID()
	r.baits[bait.BaitID] = *bait
	return nil
}

func (r *MemoryTemplateRepo) UpdateBait(ctx context.Context, bait *models.Bait) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.baits[bait.BaitID]; !ok {
		return errors.NotFound("bait")
	}
	r.baits[bait.BaitID] = *bait
	return nil
}

func (r *MemoryTemplateRepo) DeleteBait(ctx context.Context, baitID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.baits[baitID]; !ok {
		return errors.NotFound("bait")
	}
	delete(r.baits, baitID)
	return nil
}

func (r *MemoryTemplateRepo) ListAccessories(ctx context.Context) ([]models.Accessory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Accessory, 0, len(r.accessories))
	for _, a := range r.accessories {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccessoryID < out[j].AccessoryID })
	return out, nil
}

func (r *MemoryTemplateRepo) GetAccessory(ctx context.Context, accessoryID int64) (*models.Accessory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accessories[accessoryID]
	if !ok {
		return nil, errors.NotFound("accessory")
	}
	return &a, nil
}

func (r *MemoryTemplateRepo) CreateAccessory(ctx context.Context, accessory *models.Accessory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	accessory.AccessoryID = r.allocID()
	r.accessories[accessory.AccessoryID] = *accessory
	return nil
}

func (r *MemoryTemplateRepo) UpdateAccessory(ctx context.Context, accessory *models.Accessory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accessories[accessory.AccessoryID]; !ok {
		return errors.NotFound("accessory")
	}
	r.accessories[accessory.AccessoryID] = *accessory
	return nil
}

func (r *MemoryTemplateRepo) DeleteAccessory(ctx context.Context, accessoryID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accessories[accessoryID]; !ok {
		return errors.NotFound("accessory")
	}
	delete(r.accessories, accessoryID)
	return nil
}

func (r *MemoryTemplateRepo) ListItems(ctx context.Context) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Item, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *MemoryTemplateRepo) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.items[itemID]
	if !ok {
		return nil, errors.NotFound("item")
	}
	return &i, nil
}

func (r *MemoryTemplateRepo) CreateItem(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ItemID = r.allocID()
	r.items[item.ItemID] = *item
	return nil
}

func (r *MemoryTemplateRepo) UpdateItem(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ItemID]; !ok {
		return errors.NotFound("item")
	}
	r.items[item.ItemID] = *item
	return nil
}

func (r *MemoryTemplateRepo) DeleteItem(ctx context.Context, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[itemID]; !ok {
		return errors.NotFound("item")
	}
	delete(r.items, itemID)
	return nil
}

// MemoryUserRepo is an in-memory UserRepository.
type MemoryUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]models.User)}
}

// Put inserts or replaces a user, for seeding.
func (r *MemoryUserRepo) Put(u models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.UserID] = u
}

func (r *MemoryUserRepo) ListUsers(ctx context.Context, page, perPage int, search string) (*models.UserPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.users))
	for id, u := range r.users {
		if search != "" {
			nickname := ""
			if u.Nickname != nil {
				nickname = *u.Nickname
			}
			if !strings.Contains(strings.ToLower(id), strings.ToLower(search)) &&
				!strings.Contains(strings.ToLower(nickname), strings.ToLower(search)) {
				continue
			}
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	pagination := models.NewPagination(page, perPage, len(ids))
	start := pagination.Offset()
	if start > len(ids) {
		start = len(ids)
	}
	end := start + pagination.PerPage
	if end > len(ids) {
		end = len(ids)
	}

	users := make([]models.User, 0, end-start)
	for _, id := range ids[start:end] {
		users = append(users, r.users[id])
	}
	return &models.UserPage{Users: users, Pagination: pagination}, nil
}

func (r *MemoryUserRepo) GetUser(ctx context.Context, userID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, errors.NotFound("user")
	}
	return &u, nil
}

func (r *MemoryUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.UserID]; ok {
		return errors.Conflict("user already exists")
	}
	r.users[user.UserID] = *user
	return nil
}

func (r *MemoryUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.UserID]; !ok {
		return errors.NotFound("user")
	}
	r.users[user.UserID] = *user
	return nil
}

func (r *MemoryUserRepo) DeleteUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return errors.NotFound("user")
	}
	delete(r.users, userID)
	return nil
}

func (r *MemoryUserRepo) SetUserZone(ctx context.Context, userID string, zoneID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return errors.NotFound("user")
	}
	u.FishingZoneID = zoneID
	r.users[userID] = u
	return nil
}

// MemoryMarketRepo is an in-memory MarketRepository.
type MemoryMarketRepo struct {
	mu       sync.Mutex
	listings map[int64]models.MarketListing
}

func NewMemoryMarketRepo() *MemoryMarketRepo {
	return &MemoryMarketRepo{listings: make(map[int64]models.MarketListing)}
}

// Put inserts or replaces a listing, for seeding.
func (r *MemoryMarketRepo) Put(l models.MarketListing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[l.MarketID] = l
}

func (r *MemoryMarketRepo) matching(filters models.MarketFilters) []models.MarketListing {
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
		if filters.Search != nil && !strings.Contains(strings.ToLower(l.ItemName), strings.ToLower(*filters.Search)) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (r *MemoryMarketRepo) ListListings(ctx context.Context, page, perPage int, filters models.MarketFilters) ([]models.MarketListing, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

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

func (r *MemoryMarketRepo) AllListings(ctx context.Context, filters models.MarketFilters) ([]models.MarketListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matching(filters), nil
}

func (r *MemoryMarketRepo) GetListing(ctx context.Context, marketID int64) (*models.MarketListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[marketID]
	if !ok {
		return nil, errors.NotFound("market listing")
	}
	return &l, nil
}

func (r *MemoryMarketRepo) UpdatePrice(ctx context.Context, marketID int64, price int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[marketID]
	if !ok {
		return errors.NotFound("market listing")
	}
	l.Price = price
	r.listings[marketID] = l
	return nil
}

func (r *MemoryMarketRepo) DeleteListing(ctx context.Context, marketID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[marketID]; !ok {
		return errors.NotFound("market listing")
	}
	delete(r.listings, marketID)
	return nil
}

func (r *MemoryMarketRepo) Prices(ctx context.Context, filters models.MarketFilters) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.matching(filters)
	prices := make([]int64, len(all))
	for i, l := range all {
		prices[i] = l.Price
	}
	return prices, nil
}

// MemoryShopRepo is an in-memory ShopRepository.
type MemoryShopRepo struct {
	mu         sync.Mutex
	shops      map[int64]models.Shop
	items      map[int64]models.ShopItem
	nextShopID int64
	nextItemID int64
}

func NewMemoryShopRepo() *MemoryShopRepo {
	return &MemoryShopRepo{
		shops:      make(map[int64]models.Shop),
		items:      make(map[int64]models.ShopItem),
		nextShopID: 1,
		nextItemID: 1,
	}
}

func (r *MemoryShopRepo) ListShops(ctx context.Context) ([]models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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

func (r *MemoryShopRepo) GetShop(ctx context.Context, shopID int64) (*models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shop, ok := r.shops[shopID]
	if !ok {
		return nil, errors.NotFound("shop")
	}
	return &shop, nil
}

func (r *MemoryShopRepo) CreateShop(ctx context.Context, shop *models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	shop.ShopID = r.nextShopID
	r.nextShopID++
	r.shops[shop.ShopID] = *shop
	return nil
}

func (r *MemoryShopRepo) UpdateShop(ctx context.Context, shop *models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shops[shop.ShopID]; !ok {
		return errors.NotFound("shop")
	}
	r.shops[shop.ShopID] = *shop
	return nil
}

func (r *MemoryShopRepo) DeleteShop(ctx context.Context, shopID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shops[shopID]; !ok {
		return errors.NotFound("shop")
	}
	delete(r.shops, shopID)
	return nil
}

func (r *MemoryShopRepo) ListShopItems(ctx context.Context, shopID int64) ([]models.ShopItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ShopItem
	for _, item := range r.items {
		if item.ShopID == shopID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *MemoryShopRepo) CreateShopItem(ctx context.Context, item *models.ShopItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ItemID = r.nextItemID
	r.nextItemID++
	r.items[item.ItemID] = *item
	return nil
}

func (r *MemoryShopRepo) UpdateShopItem(ctx context.Context, item *models.ShopItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ItemID]; !ok {
		return errors.NotFound("shop item")
	}
	r.items[item.ItemID] = *item
	return nil
}

func (r *MemoryShopRepo) DeleteShopItem(ctx context.Context, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[itemID]; !ok {
		return errors.NotFound("shop item")
	}
	delete(r.items, itemID)
	return nil
}

type MemoryGachaRepo struct {
	mu         sync.Mutex
	pools      map[int64]models.GachaPool
	items      map[int64]models.GachaPoolItem
	nextPoolID int64
	nextItemID int64
}

func NewMemoryGachaRepo() *MemoryGachaRepo {
	return &MemoryGachaRepo{
		pools:      make(map[int64]models.GachaPool),
		items:      make(map[int64]models.GachaPoolItem),
		nextPoolID: 1,
		nextItemID: 1,
	}
}

// PutPool inserts or replaces a pool, for seeding.
func (r *MemoryGachaRepo) PutPool(p models.GachaPool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools[p.PoolID] = p
	if p.PoolID >= r.nextPoolID {
		r.nextPoolID = p.PoolID + 1
	}
}

func (r *MemoryGachaRepo) ListPools(ctx context.Context) ([]models.GachaPool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.GachaPool, 0, len(r.pools))
	for id := range r.pools {
		out = append(out, r.poolLocked(id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PoolID < out[j].PoolID })
	return out, nil
}

func (r *MemoryGachaRepo) GetPool(ctx context.Context, poolID int64) (*models.GachaPool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pools[poolID]; !ok {
		return nil, errors.NotFound("gacha pool")
	}
	p := r.poolLocked(poolID)
	return &p, nil
}

func (r *MemoryGachaRepo) CreatePool(ctx context.Context, pool *models.GachaPool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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

func (r *MemoryGachaRepo) UpdatePool(ctx context.Context, pool *models.GachaPool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pools[pool.PoolID]; !ok {
		return errors.NotFound("gacha pool")
	}
	for id, existing := range r.pools {
		if id != pool.PoolID && existing.Name == pool.Name {
			return errors.Conflict("a gacha pool with this name already exists")
		}
	}
	r.pools[pool.PoolID] = *pool
	return nil
}

func (r *MemoryGachaRepo) DeletePool(ctx context.Context, poolID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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

func (r *MemoryGachaRepo) CopyPool(ctx context.Context, poolID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	src, ok := r.pools[poolID]
	if !ok {
		return 0, errors.NotFound("gacha pool")
	}

	copied := src
	copied.PoolID = r.nextPoolID
	r.nextPoolID++
	copied.Name = src.Name + " (copy)"
	copied.Items = nil
	r.pools[copied.PoolID] = copied

	for _, item := range r.itemsOfLocked(poolID) {
		item.PoolItemID = r.nextItemID
		r.nextItemID++
		item.PoolID = copied.PoolID
		r.items[item.PoolItemID] = item
	}
	return copied.PoolID, nil
}

func (r *MemoryGachaRepo) AddPoolItem(ctx context.Context, item *models.GachaPoolItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pools[item.PoolID]; !ok {
		return errors.NotFound("gacha pool")
	}
	item.PoolItemID = r.nextItemID
	r.nextItemID++
	r.items[item.PoolItemID] = *item
	return nil
}

func (r *MemoryGachaRepo) GetPoolItem(ctx context.Context, poolItemID int64) (*models.GachaPoolItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[poolItemID]
	if !ok {
		return nil, errors.NotFound("gacha pool item")
	}
	return &item, nil
}

func (r *MemoryGachaRepo) UpdatePoolItem(ctx context.Context, item *models.GachaPoolItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.PoolItemID]; !ok {
		return errors.NotFound("gacha pool item")
	}
	r.items[item.PoolItemID] = *item
	return nil
}

func (r *MemoryGachaRepo) DeletePoolItem(ctx context.Context, poolItemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[poolItemID]; !ok {
		return errors.NotFound("gacha pool item")
	}
	delete(r.items, poolItemID)
	return nil
}

func (r *MemoryGachaRepo) poolLocked(poolID int64) models.GachaPool {
	p := r.pools[poolID]
	p.Items = r.itemsOfLocked(poolID)
	return p
}

func (r *MemoryGachaRepo) itemsOfLocked(poolID int64) []models.GachaPoolItem {
	out := make([]models.GachaPoolItem, 0)
	for _, item := range r.items {
		if item.PoolID == poolID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PoolItemID < out[j].PoolItemID })
	return out
}

var (
	_ ports.ZoneRepository         = (*MemoryZoneRepo)(nil)
	_ ports.ItemTemplateRepository = (*MemoryTemplateRepo)(nil)
	_ ports.UserRepository         = (*MemoryUserRepo)(nil)
	_ ports.MarketRepository       = (*MemoryMarketRepo)(nil)
	_ ports.ShopRepository         = (*MemoryShopRepo)(nil)
	_ ports.GachaRepository        = (*MemoryGachaRepo)(nil)
)
