package postgres

import (
	"context"
	"database/sql"
	"errors"

	"reeladmin/models"
	"reeladmin/ports"

	apperrors "reeladmin/internal/errors"

	"github.com/jmoiron/sqlx"
)

// ItemTemplateRepositoryImpl implements ItemTemplateRepository for PostgreSQL
type ItemTemplateRepositoryImpl struct {
	db *sqlx.DB
}

// NewItemTemplateRepository creates a new PostgreSQL item template repository
func NewItemTemplateRepository(db *sqlx.DB) ports.ItemTemplateRepository {
	return &ItemTemplateRepositoryImpl{db: db}
}

// --- Fish ---

func (r *ItemTemplateRepositoryImpl) ListFish(ctx context.Context) ([]models.Fish, error) {
	var fish []models.Fish
	err := r.db.SelectContext(ctx, &fish, `
		SELECT fish_id, name, description, rarity, base_value, min_weight, max_weight, icon_url
		FROM fish
		ORDER BY rarity, name, fish_id
	`)
	return fish, err
}

func (r *ItemTemplateRepositoryImpl) GetFish(ctx context.Context, fishID int64) (*models.Fish, error) {
	var f models.Fish
	err := r.db.GetContext(ctx, &f, `
		SELECT fish_id, name, description, rarity, base_value, min_weight, max_weight, icon_url
		FROM fish
		WHERE fish_id = $1
	`, fishID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("fish")
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *ItemTemplateRepositoryImpl) CreateFish(ctx context.Context, fish *models.Fish) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO fish (name, description, rarity, base_value, min_weight, max_weight, icon_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING fish_id
	`, fish.Name, fish.Description, fish.Rarity, fish.BaseValue, fish.MinWeight, fish.MaxWeight, fish.IconURL).Scan(&fish.FishID)
}

func (r *ItemTemplateRepositoryImpl) UpdateFish(ctx context.Context, fish *models.Fish) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE fish
		SET name = $2, description = $3, rarity = $4, base_value = $5,
		    min_weight = $6, max_weight = $7, icon_url = $8
		WHERE fish_id = $1
	`, fish.FishID, fish.Name, fish.Description, fish.Rarity, fish.BaseValue, fish.MinWeight, fish.MaxWeight, fish.IconURL)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "fish")
}

func (r *ItemTemplateRepositoryImpl) DeleteFish(ctx context.Context, fishID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fish WHERE fish_id = $1`, fishID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "fish")
}

// --- Rods ---

func (r *ItemTemplateRepositoryImpl) ListRods(ctx context.Context) ([]models.Rod, error) {
	var rods []models.Rod
	err := r.db.SelectContext(ctx, &rods, `
		SELECT rod_id, name, description, rarity, source, purchase_cost,
		       bonus_fish_quality_modifier, bonus_fish_quantity_modifier,
		       bonus_rare_fish_chance, durability, icon_url
		FROM rods
		ORDER BY rarity, name, rod_id
	`)
	return rods, err
}

func (r *ItemTemplateRepositoryImpl) GetRod(ctx context.Context, rodID int64) (*models.Rod, error) {
	var rod models.Rod
	err := r.db.GetContext(ctx, &rod, `
		SELECT rod_id, name, description, rarity, source, purchase_cost,
		       bonus_fish_quality_modifier, bonus_fish_quantity_modifier,
		       bonus_rare_fish_chance, durability, icon_url
		FROM rods
		WHERE rod_id = $1
	`, rodID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("rod")
	}
	if err != nil {
		return nil, err
	}
	return &rod, nil
}

func (r *ItemTemplateRepositoryImpl) CreateRod(ctx context.Context, rod *models.Rod) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO rods (name, description, rarity, source, purchase_cost,
		                  bonus_fish_quality_modifier, bonus_fish_quantity_modifier,
		                  bonus_rare_fish_chance, durability, icon_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING rod_id
	`, rod.Name, rod.Description, rod.Rarity, rod.Source, rod.PurchaseCost,
		rod.BonusFishQualityModifier, rod.BonusFishQuantityModifier,
		rod.BonusRareFishChance, rod.Durability, rod.IconURL).Scan(&rod.RodID)
}

func (r *ItemTemplateRepositoryImpl) UpdateRod(ctx context.Context, rod *models.Rod) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE rods
		SET name = $2, description = $3, rarity = $4, source = $5, purchase_cost = $6,
		    bonus_fish_quality_modifier = $7, bonus_fish_quantity_modifier = $8,
		    bonus_rare_fish_chance = $9, durability = $10, icon_url = $11
		WHERE rod_id = $1
	`, rod.RodID, rod.Name, rod.Description, rod.Rarity, rod.Source, rod.PurchaseCost,
		rod.BonusFishQualityModifier, rod.BonusFishQuantityModifier,
		rod.BonusRareFishChance, rod.Durability, rod.IconURL)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "rod")
}

func (r *ItemTemplateRepositoryImpl) DeleteRod(ctx context.Context, rodID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rods WHERE rod_id = $1`, rodID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "rod")
}

// --- Baits ---

func (r *ItemTemplateRepositoryImpl) ListBaits(ctx context.Context) ([]models.Bait, error) {
	var baits []models.Bait
	err := r.db.SelectContext(ctx, &baits, `
		SELECT bait_id, name, description, rarity, effect_description, duration_minutes,
		       cost, required_rod_rarity, success_rate_modifier, rare_chance_modifier,
		       garbage_reduction_modifier, value_modifier, quantity_modifier, is_consumable
		FROM baits
		ORDER BY rarity, name, bait_id
	`)
	return baits, err
}

func (r *ItemTemplateRepositoryImpl) GetBait(ctx context.Context, baitID int64) (*models.Bait, error) {
	var bait models.Bait
	err := r.db.GetContext(ctx, &bait, `
		SELECT bait_id, name, description, rarity, effect_description, duration_minutes,
		       cost, required_rod_rarity, success_rate_modifier, rare_chance_modifier,
		       garbage_reduction_modifier, value_modifier, quantity_modifier, is_consumable
		FROM baits
		WHERE bait_id = $1
	`, baitID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("bait")
	}
	if err != nil {
		return nil, err
	}
	return &bait, nil
}

func (r *ItemTemplateRepositoryImpl) CreateBait(ctx context.Context, bait *models.Bait) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO baits (name, description, rarity, effect_description, duration_minutes,
		                   cost, required_rod_rarity, success_rate_modifier, rare_chance_modifier,
		                   garbage_reduction_modifier, value_modifier, quantity_modifier, is_consumable)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING bait_id
	`, bait.Name, bait.Description, bait.Rarity, bait.EffectDescription, bait.DurationMinutes,
		bait.Cost, bait.RequiredRodRarity, bait.SuccessRateModifier, bait.RareChanceModifier,
		bait.GarbageReductionModifier, bait.ValueModifier, bait.QuantityModifier, bait.IsConsumable).Scan(&bait.BaitID)
}

func (r *ItemTemplateRepositoryImpl) UpdateBait(ctx context.Context, bait *models.Bait) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE baits
		SET name = $2, description = $3, rarity = $4, effect_description = $5,
		    duration_minutes = $6, cost = $7, required_rod_rarity = $8,
		    success_rate_modifier = $9, rare_chance_modifier = $10,
		    garbage_reduction_modifier = $11, value_modifier = $12,
		    quantity_modifier = $13, is_consumable = $14
		WHERE bait_id = $1
	`, bait.BaitID, bait.Name, bait.Description, bait.Rarity, bait.EffectDescription,
		bait.DurationMinutes, bait.Cost, bait.RequiredRodRarity,
		bait.SuccessRateModifier, bait.RareChanceModifier,
		bait.GarbageReductionModifier, bait.ValueModifier,
		bait.QuantityModifier, bait.IsConsumable)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "bait")
}

func (r *ItemTemplateRepositoryImpl) DeleteBait(ctx context.Context, baitID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM baits WHERE bait_id = $1`, baitID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "bait")
}

// --- Accessories ---

func (r *ItemTemplateRepositoryImpl) ListAccessories(ctx context.Context) ([]models.Accessory, error) {
	var accessories []models.Accessory
	err := r.db.SelectContext(ctx, &accessories, `
		SELECT accessory_id, name, description, rarity, slot_type,
		       bonus_fish_quality_modifier, bonus_fish_quantity_modifier,
		       bonus_rare_fish_chance, bonus_coin_modifier,
		       other_bonus_description, icon_url
		FROM accessories
		ORDER BY rarity, name, accessory_id
	`)
	return accessories, err
}

func (r *ItemTemplateRepositoryImpl) GetAccessory(ctx context.Context, accessoryID int64) (*models.Accessory, error) {
	var a models.Accessory
	err := r.db.GetContext(ctx, &a, `
		SELECT accessory_id, name, description, rarity, slot_type,
		       bonus_fish_quality_modifier, bonus_fish_quantity_modifier,
		       bonus_rare_fish_chance, bonus_coin_modifier,
		       other_bonus_description, icon_url
		FROM accessories
		WHERE accessory_id = $1
	`, accessoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("accessory")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ItemTemplateRepositoryImpl) CreateAccessory(ctx context.Context, a *models.Accessory) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO accessories (name, description, rarity, slot_type,
		                         bonus_fish_quality_modifier, bonus_fish_quantity_modifier,
		                         bonus_rare_fish_chance, bonus_coin_modifier,
		                         other_bonus_description, icon_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING accessory_id
	`, a.Name, a.Description, a.Rarity, a.SlotType,
		a.BonusFishQualityModifier, a.BonusFishQuantityModifier,
		a.BonusRareFishChance, a.BonusCoinModifier,
		a.OtherBonusDescription, a.IconURL).Scan(&a.AccessoryID)
}

func (r *ItemTemplateRepositoryImpl) UpdateAccessory(ctx context.Context, a *models.Accessory) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accessories
		SET name = $2, description = $3, rarity = $4, slot_type = $5,
		    bonus_fish_quality_modifier = $6, bonus_fish_quantity_modifier = $7,
		    bonus_rare_fish_chance = $8, bonus_coin_modifier = $9,
		    other_bonus_description = $10, icon_url = $11
		WHERE accessory_id = $1
	`, a.AccessoryID, a.Name, a.Description, a.Rarity, a.SlotType,
		a.BonusFishQualityModifier, a.BonusFishQuantityModifier,
		a.BonusRareFishChance, a.BonusCoinModifier,
		a.OtherBonusDescription, a.IconURL)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "accessory")
}

func (r *ItemTemplateRepositoryImpl) DeleteAccessory(ctx context.Context, accessoryID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accessories WHERE accessory_id = $1`, accessoryID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "accessory")
}

// --- Generic items ---

func (r *ItemTemplateRepositoryImpl) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.db.SelectContext(ctx, &items, `
		SELECT item_id, name, description, rarity, effect_description,
		       item_type, cost, is_consumable, icon_url
		FROM items
		ORDER BY rarity, name, item_id
	`)
	return items, err
}

func (r *ItemTemplateRepositoryImpl) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	var item models.Item
	err := r.db.GetContext(ctx, &item, `
		SELECT item_id, name, description, rarity, effect_description,
		       item_type, cost, is_consumable, icon_url
		FROM items
		WHERE item_id = $1
	`, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("item")
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemTemplateRepositoryImpl) CreateItem(ctx context.Context, item *models.Item) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO items (name, description, rarity, effect_description,
		                   item_type, cost, is_consumable, icon_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING item_id
	`, item.Name, item.Description, item.Rarity, item.EffectDescription,
		item.ItemType, item.Cost, item.IsConsumable, item.IconURL).Scan(&item.ItemID)
}

func (r *ItemTemplateRepositoryImpl) UpdateItem(ctx context.Context, item *models.Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE items
		SET name = $2, description = $3, rarity = $4, effect_description = $5,
		    item_type = $6, cost = $7, is_consumable = $8, icon_url = $9
		WHERE item_id = $1
	`, item.ItemID, item.Name, item.Description, item.Rarity, item.EffectDescription,
		item.ItemType, item.Cost, item.IsConsumable, item.IconURL)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "item")
}

func (r *ItemTemplateRepositoryImpl) DeleteItem(ctx context.Context, itemID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE item_id = $1`, itemID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "item")
}

func requireRowAffected(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound(resource)
	}
	return nil
}
