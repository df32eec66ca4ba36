package models

import (
	"time"
)

// Market item types.
const (
	MarketItemRod       = "rod"
	MarketItemAccessory = "accessory"
	MarketItemFish      = "fish"
	MarketItemItem      = "item"
)

// MarketListing is a player-to-player market entry.
type MarketListing struct {
	MarketID        int64      `json:"market_id" db:"market_id"`
	UserID          string     `json:"user_id" db:"user_id"`
	SellerNickname  string     `json:"seller_nickname" db:"seller_nickname"`
	ItemType        string     `json:"item_type" db:"item_type"`
	ItemID          int64      `json:"item_id" db:"item_id"`
	ItemName        string     `json:"item_name" db:"item_name"`
	ItemDescription *string    `json:"item_description,omitempty" db:"item_description"`
	Quantity        int        `json:"quantity" db:"quantity"`
	Price           int64      `json:"price" db:"price"`
	RefineLevel     int        `json:"refine_level" db:"refine_level"`
	IsAnonymous     bool       `json:"is_anonymous" db:"is_anonymous"`
	ListedAt        time.Time  `json:"listed_at" db:"listed_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty" db:"expires_at"`
}

// MarketFilters narrows the admin market listing.
type MarketFilters struct {
	ItemType *string
	MinPrice *int64
	MaxPrice *int64
	Search   *string
}

// MarketStats are aggregate price statistics over the filtered listings.
type MarketStats struct {
	ListingCount int     `json:"listing_count"`
	TotalValue   int64   `json:"total_value"`
	MeanPrice    float64 `json:"mean_price"`
	MedianPrice  float64 `json:"median_price"`
	MinPrice     int64   `json:"min_price"`
	MaxPrice     int64   `json:"max_price"`
}

// MarketPage is one page of the paginated admin market listing.
type MarketPage struct {
	Listings   []MarketListing `json:"listings"`
	Pagination Pagination      `json:"pagination"`
	Stats      MarketStats     `json:"stats"`
}
