package models

import (
	"time"
)

// User is a player account as seen by the admin panel.
type User struct {
	UserID               string     `json:"user_id" db:"user_id"`
	Nickname             *string    `json:"nickname" db:"nickname"`
	Coins                int64      `json:"coins" db:"coins"`
	PremiumCurrency      int64      `json:"premium_currency" db:"premium_currency"`
	TotalFishingCount    int        `json:"total_fishing_count" db:"total_fishing_count"`
	TotalWeightCaught    int64      `json:"total_weight_caught" db:"total_weight_caught"`
	TotalCoinsEarned     int64      `json:"total_coins_earned" db:"total_coins_earned"`
	ConsecutiveLoginDays int        `json:"consecutive_login_days" db:"consecutive_login_days"`
	FishPondCapacity     int        `json:"fish_pond_capacity" db:"fish_pond_capacity"`
	FishingZoneID        int64      `json:"fishing_zone_id" db:"fishing_zone_id"`
	AutoFishingEnabled   bool       `json:"auto_fishing_enabled" db:"auto_fishing_enabled"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
	LastLoginTime        *time.Time `json:"last_login_time,omitempty" db:"last_login_time"`
}

// CanAfford reports whether the user's coin balance covers cost.
func (u *User) CanAfford(cost int64) bool {
	return u.Coins >= cost
}

// UserPage is one page of the paginated admin user listing.
type UserPage struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes a page of a listing.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes page bounds for a listing of total rows.
func NewPagination(page, perPage, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	totalPages := (total + perPage - 1) / perPage
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Offset returns the row offset of the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}
