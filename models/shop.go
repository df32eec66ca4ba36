package models

import (
	"time"
)

// Shop types.
const (
	ShopTypeNormal  = "normal"
	ShopTypePremium = "premium"
	ShopTypeLimited = "limited"
)

// Shop is a configurable in-game store.
type Shop struct {
	ShopID      int64      `json:"shop_id" db:"shop_id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description,omitempty" db:"description"`
	ShopType    string     `json:"shop_type" db:"shop_type"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	StartTime   *time.Time `json:"start_time,omitempty" db:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty" db:"end_time"`
	SortOrder   int        `json:"sort_order" db:"sort_order"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// ShopItem is a purchasable entry inside a shop. A nil StockTotal means
// unlimited stock, nil limits mean no purchase cap.
type ShopItem struct {
	ItemID            int64      `json:"item_id" db:"item_id"`
	ShopID            int64      `json:"shop_id" db:"shop_id"`
	Name              string     `json:"name" db:"name"`
	Description       *string    `json:"description,omitempty" db:"description"`
	Category          string     `json:"category" db:"category"`
	StockTotal        *int       `json:"stock_total,omitempty" db:"stock_total"`
	StockSold         int        `json:"stock_sold" db:"stock_sold"`
	PerUserLimit      *int       `json:"per_user_limit,omitempty" db:"per_user_limit"`
	PerUserDailyLimit *int       `json:"per_user_daily_limit,omitempty" db:"per_user_daily_limit"`
	IsActive          bool       `json:"is_active" db:"is_active"`
	StartTime         *time.Time `json:"start_time,omitempty" db:"start_time"`
	EndTime           *time.Time `json:"end_time,omitempty" db:"end_time"`
}

// InStock reports whether the item can still be sold.
func (i *ShopItem) InStock() bool {
	if i.StockTotal == nil {
		return true
	}
	return i.StockSold < *i.StockTotal
}
