package models

// Fish is a catchable fish template.
type Fish struct {
	FishID      int64   `json:"fish_id" db:"fish_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	Rarity      int     `json:"rarity" db:"rarity"`
	BaseValue   int64   `json:"base_value" db:"base_value"`
	MinWeight   int     `json:"min_weight" db:"min_weight"`
	MaxWeight   int     `json:"max_weight" db:"max_weight"`
	IconURL     *string `json:"icon_url,omitempty" db:"icon_url"`
}

// RodSource values describe how a rod template can be obtained.
const (
	RodSourceShop  = "shop"
	RodSourceGacha = "gacha"
	RodSourceEvent = "event"
)

// Rod is a fishing rod template.
type Rod struct {
	RodID                     int64   `json:"rod_id" db:"rod_id"`
	Name                      string  `json:"name" db:"name"`
	Description               *string `json:"description,omitempty" db:"description"`
	Rarity                    int     `json:"rarity" db:"rarity"`
	Source                    string  `json:"source" db:"source"`
	PurchaseCost              *int64  `json:"purchase_cost,omitempty" db:"purchase_cost"`
	BonusFishQualityModifier  float64 `json:"bonus_fish_quality_modifier" db:"bonus_fish_quality_modifier"`
	BonusFishQuantityModifier float64 `json:"bonus_fish_quantity_modifier" db:"bonus_fish_quantity_modifier"`
	BonusRareFishChance       float64 `json:"bonus_rare_fish_chance" db:"bonus_rare_fish_chance"`
	Durability                *int    `json:"durability,omitempty" db:"durability"`
	IconURL                   *string `json:"icon_url,omitempty" db:"icon_url"`
}

// Bait is a bait template with its structured effect fields.
type Bait struct {
	BaitID                    int64   `json:"bait_id" db:"bait_id"`
	Name                      string  `json:"name" db:"name"`
	Description               *string `json:"description,omitempty" db:"description"`
	Rarity                    int     `json:"rarity" db:"rarity"`
	EffectDescription         *string `json:"effect_description,omitempty" db:"effect_description"`
	DurationMinutes           int     `json:"duration_minutes" db:"duration_minutes"`
	Cost                      int64   `json:"cost" db:"cost"`
	RequiredRodRarity         int     `json:"required_rod_rarity" db:"required_rod_rarity"`
	SuccessRateModifier       float64 `json:"success_rate_modifier" db:"success_rate_modifier"`
	RareChanceModifier        float64 `json:"rare_chance_modifier" db:"rare_chance_modifier"`
	GarbageReductionModifier  float64 `json:"garbage_reduction_modifier" db:"garbage_reduction_modifier"`
	ValueModifier             float64 `json:"value_modifier" db:"value_modifier"`
	QuantityModifier          float64 `json:"quantity_modifier" db:"quantity_modifier"`
	IsConsumable              bool    `json:"is_consumable" db:"is_consumable"`
}

// Accessory is an equippable accessory template.
type Accessory struct {
	AccessoryID               int64   `json:"accessory_id" db:"accessory_id"`
	Name                      string  `json:"name" db:"name"`
	Description               *string `json:"description,omitempty" db:"description"`
	Rarity                    int     `json:"rarity" db:"rarity"`
	SlotType                  string  `json:"slot_type" db:"slot_type"`
	BonusFishQualityModifier  float64 `json:"bonus_fish_quality_modifier" db:"bonus_fish_quality_modifier"`
	BonusFishQuantityModifier float64 `json:"bonus_fish_quantity_modifier" db:"bonus_fish_quantity_modifier"`
	BonusRareFishChance       float64 `json:"bonus_rare_fish_chance" db:"bonus_rare_fish_chance"`
	BonusCoinModifier         float64 `json:"bonus_coin_modifier" db:"bonus_coin_modifier"`
	OtherBonusDescription     *string `json:"other_bonus_description,omitempty" db:"other_bonus_description"`
	IconURL                   *string `json:"icon_url,omitempty" db:"icon_url"`
}

// Item is a generic inventory item template (passes, consumables, tools).
type Item struct {
	ItemID            int64   `json:"item_id" db:"item_id"`
	Name              string  `json:"name" db:"name"`
	Description       *string `json:"description,omitempty" db:"description"`
	Rarity            int     `json:"rarity" db:"rarity"`
	EffectDescription *string `json:"effect_description,omitempty" db:"effect_description"`
	ItemType          string  `json:"item_type" db:"item_type"`
	Cost              int64   `json:"cost" db:"cost"`
	IsConsumable      bool    `json:"is_consumable" db:"is_consumable"`
	IconURL           *string `json:"icon_url,omitempty" db:"icon_url"`
}
