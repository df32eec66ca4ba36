package models

import (
	"time"

	"reeladmin/domain/zone"
)

// FishingZone is a configurable in-game fishing area. An empty
// SpecificFishIDs pool means the zone draws from the global catalog.
type FishingZone struct {
	ID                  int64                   `json:"id" db:"id"`
	Name                string                  `json:"name" db:"name"`
	Description         string                  `json:"description" db:"description"`
	DailyRareFishQuota  int                     `json:"daily_rare_fish_quota" db:"daily_rare_fish_quota"`
	RareFishCaughtToday int                     `json:"rare_fish_caught_today" db:"rare_fish_caught_today"`
	RarityDistribution  zone.RarityDistribution `json:"rarity_distribution" db:"rarity_distribution"`
	IsActive            bool                    `json:"is_active" db:"is_active"`
	AvailableFrom       *time.Time              `json:"available_from,omitempty" db:"available_from"`
	AvailableUntil      *time.Time              `json:"available_until,omitempty" db:"available_until"`
	RequiredItemID      *int64                  `json:"required_item_id,omitempty" db:"required_item_id"`
	RequiresPass        bool                    `json:"requires_pass" db:"requires_pass"`
	FishingCost         int64                   `json:"fishing_cost" db:"fishing_cost"`

	// Populated from the zone_fish table, not a column.
	SpecificFishIDs []int64 `json:"specific_fish_ids" db:"-"`
}

// EffectiveDistribution returns the zone's configured distribution, or
// the built-in default when no weights were stored.
func (z *FishingZone) EffectiveDistribution() zone.RarityDistribution {
	if z.RarityDistribution.IsZero() {
		return zone.DefaultDistribution(z.ID)
	}
	return z.RarityDistribution
}

// AvailableAt reports whether the zone is open at the given time.
func (z *FishingZone) AvailableAt(now time.Time) bool {
	if !z.IsActive {
		return false
	}
	if z.AvailableFrom != nil && now.Before(*z.AvailableFrom) {
		return false
	}
	if z.AvailableUntil != nil && now.After(*z.AvailableUntil) {
		return false
	}
	return true
}
