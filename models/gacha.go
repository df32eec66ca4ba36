package models

import "time"

// GachaItemType values enumerate what a pool draw can pay out. The
// currency types carry their amount in Quantity and ignore ItemID.
const (
	GachaItemRod       = "rod"
	GachaItemAccessory = "accessory"
	GachaItemBait      = "bait"
	GachaItemFish      = "fish"
	GachaItemItem      = "item"
	GachaItemCoins     = "coins"
	GachaItemPremium   = "premium_currency"
)

// GachaPoolItem is one weighted prize entry in a gacha pool.
type GachaPoolItem struct {
	PoolItemID int64  `json:"pool_item_id" db:"gacha_pool_item_id"`
	PoolID     int64  `json:"pool_id" db:"gacha_pool_id"`
	ItemType   string `json:"item_type" db:"item_type"`
	ItemID     int64  `json:"item_id" db:"item_id"`
	Quantity   int    `json:"quantity" db:"quantity"`
	Weight     int    `json:"weight" db:"weight"`
}

// GachaPool is a configurable prize pool. A limited-time pool closes at
// OpenUntil; a permanent pool has IsLimitedTime false and no deadline.
type GachaPool struct {
	PoolID              int64      `json:"pool_id" db:"gacha_pool_id"`
	Name                string     `json:"name" db:"name"`
	Description         *string    `json:"description,omitempty" db:"description"`
	CostCoins           int64      `json:"cost_coins" db:"cost_coins"`
	CostPremiumCurrency int64      `json:"cost_premium_currency" db:"cost_premium_currency"`
	IsLimitedTime       bool       `json:"is_limited_time" db:"is_limited_time"`
	OpenUntil           *time.Time `json:"open_until,omitempty" db:"open_until"`

	// Populated from the gacha_pool_items table, not a column.
	Items []GachaPoolItem `json:"items,omitempty" db:"-"`
}

// ValidGachaItemType reports whether t is a known prize type.
func ValidGachaItemType(t string) bool {
	switch t {
	case GachaItemRod, GachaItemAccessory, GachaItemBait, GachaItemFish,
		GachaItemItem, GachaItemCoins, GachaItemPremium:
		return true
	}
	return false
}
