package migration

import (
	"context"
	"fmt"

	"reeladmin/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createTemplateTables(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create template tables")
	}

	if err := r.createFishingZonesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create fishing_zones table")
	}

	if err := r.addFishingZoneColumns(ctx, db); err != nil {
		return errors.Wrap(err, "failed to add fishing_zones columns")
	}

	if err := r.createZoneFishTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create zone_fish table")
	}

	if err := r.createUsersTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create users table")
	}

	if err := r.createMarketListingsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create market_listings table")
	}

	if err := r.createShopTables(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create shop tables")
	}

	if err := r.createGachaTables(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create gacha tables")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	if err := r.insertBuiltinZones(ctx, db); err != nil {
		return errors.Wrap(err, "failed to insert builtin zones")
	}

	return nil
}

func (r *MigrationRunner) createTemplateTables(ctx context.Context, db *sqlx.DB) error {
	tables := []string{
		`
		CREATE TABLE IF NOT EXISTS fish (
			fish_id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			rarity INTEGER NOT NULL DEFAULT 1,
			base_value BIGINT NOT NULL DEFAULT 0,
			min_weight INTEGER NOT NULL DEFAULT 1,
			max_weight INTEGER NOT NULL DEFAULT 1,
			icon_url TEXT
		)`,
		`
		CREATE TABLE IF NOT EXISTS rods (
			rod_id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			rarity INTEGER NOT NULL DEFAULT 1,
			source VARCHAR(50) NOT NULL DEFAULT 'shop',
			purchase_cost BIGINT,
			bonus_fish_quality_modifier DOUBLE PRECISION NOT NULL DEFAULT 0,
			bonus_fish_quantity_modifier DOUBLE PRECISION NOT NULL DEFAULT 0,
			bonus_rare_fish_chance DOUBLE PRECISION NOT NULL DEFAULT 0,
			durability INTEGER,
			icon_url TEXT
		)`,
		`
		CREATE TABLE IF NOT EXISTS baits (
			bait_id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			rarity INTEGER NOT NULL DEFAULT 1,
			effect_description TEXT,
			duration_minutes INTEGER NOT NULL DEFAULT 0,
			cost BIGINT NOT NULL DEFAULT 0,
			required_rod_rarity INTEGER NOT NULL DEFAULT 0,
			success_rate_modifier DOUBLE PRECISION NOT NULL DEFAULT 0,
			rare_chance_modifier DOUBLE PRECISION NOT NULL DEFAULT 0,
			garbage_reduction_modifier DOUBLE PRECISION NOT NULL DEFAULT 0,
			value_modifier DOUBLE PRECISION NOT NULL DEFAULT 0,
			quantity_modifier DOUBLE PRECISION NOT NULL DEFAULT 0,
			is_consumable BOOLEAN NOT NULL DEFAULT true
		)`,
		`
		CREATE TABLE IF NOT EXISTS accessories (
			accessory_id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			rarity INTEGER NOT NULL DEFAULT 1,
			slot_type VARCHAR(50) NOT NULL DEFAULT 'misc',
			bonus_fish_quality_modifier DOUBLE PRECISION NOT NULL DEFAULT 0,
			bonus_fish_quantity_modifier DOUBLE PRECISION NOT NULL DEFAULT 0,
			bonus_rare_fish_chance DOUBLE PRECISION NOT NULL DEFAULT 0,
			bonus_coin_modifier DOUBLE PRECISION NOT NULL DEFAULT 0,
			other_bonus_description TEXT,
			icon_url TEXT
		)`,
		`
		CREATE TABLE IF NOT EXISTS items (
			item_id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			rarity INTEGER NOT NULL DEFAULT 1,
			effect_description TEXT,
			item_type VARCHAR(50) NOT NULL DEFAULT 'consumable',
			cost BIGINT NOT NULL DEFAULT 0,
			is_consumable BOOLEAN NOT NULL DEFAULT true,
			icon_url TEXT
		)`,
	}

	for _, tableSQL := range tables {
		if _, err := db.ExecContext(ctx, tableSQL); err != nil {
			return err
		}
	}
	return nil
}

func (r *MigrationRunner) createFishingZonesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS fishing_zones (
			id BIGINT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			daily_rare_fish_quota INTEGER NOT NULL DEFAULT 0,
			rare_fish_caught_today INTEGER NOT NULL DEFAULT 0,
			rarity_distribution JSONB,
			is_active BOOLEAN NOT NULL DEFAULT true,
			available_from TIMESTAMP WITH TIME ZONE,
			available_until TIMESTAMP WITH TIME ZONE,
			required_item_id BIGINT,
			requires_pass BOOLEAN NOT NULL DEFAULT false,
			fishing_cost BIGINT NOT NULL DEFAULT 10
		)
	`)
	return err
}

// addFishingZoneColumns upgrades zone tables created before gating and
// cost columns existed.
func (r *MigrationRunner) addFishingZoneColumns(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM information_schema.columns
				WHERE table_name = 'fishing_zones' AND column_name = 'requires_pass'
			) THEN
				ALTER TABLE fishing_zones ADD COLUMN requires_pass BOOLEAN NOT NULL DEFAULT false;
			END IF;

			IF NOT EXISTS (
				SELECT 1 FROM information_schema.columns
				WHERE table_name = 'fishing_zones' AND column_name = 'required_item_id'
			) THEN
				ALTER TABLE fishing_zones ADD COLUMN required_item_id BIGINT;
			END IF;

			IF NOT EXISTS (
				SELECT 1 FROM information_schema.columns
				WHERE table_name = 'fishing_zones' AND column_name = 'fishing_cost'
			) THEN
				ALTER TABLE fishing_zones ADD COLUMN fishing_cost BIGINT NOT NULL DEFAULT 10;
			END IF;

			IF NOT EXISTS (
				SELECT 1 FROM information_schema.columns
				WHERE table_name = 'fishing_zones' AND column_name = 'rarity_distribution'
			) THEN
				ALTER TABLE fishing_zones ADD COLUMN rarity_distribution JSONB;
			END IF;
		END $$;
	`)
	return err
}

func (r *MigrationRunner) createZoneFishTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS zone_fish (
			zone_id BIGINT NOT NULL REFERENCES fishing_zones(id) ON DELETE CASCADE,
			fish_id BIGINT NOT NULL REFERENCES fish(fish_id) ON DELETE CASCADE,
			PRIMARY KEY (zone_id, fish_id)
		)
	`)
	return err
}

func (r *MigrationRunner) createUsersTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			user_id VARCHAR(64) PRIMARY KEY,
			nickname VARCHAR(255),
			coins BIGINT NOT NULL DEFAULT 0,
			premium_currency BIGINT NOT NULL DEFAULT 0,
			total_fishing_count INTEGER NOT NULL DEFAULT 0,
			total_weight_caught BIGINT NOT NULL DEFAULT 0,
			total_coins_earned BIGINT NOT NULL DEFAULT 0,
			consecutive_login_days INTEGER NOT NULL DEFAULT 0,
			fish_pond_capacity INTEGER NOT NULL DEFAULT 50,
			fishing_zone_id BIGINT NOT NULL DEFAULT 1,
			auto_fishing_enabled BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			last_login_time TIMESTAMP WITH TIME ZONE
		)
	`)
	return err
}

func (r *MigrationRunner) createMarketListingsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS market_listings (
			market_id BIGSERIAL PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
			seller_nickname VARCHAR(255) NOT NULL DEFAULT '',
			item_type VARCHAR(50) NOT NULL,
			item_id BIGINT NOT NULL,
			item_name VARCHAR(255) NOT NULL,
			item_description TEXT,
			quantity INTEGER NOT NULL DEFAULT 1,
			price BIGINT NOT NULL,
			refine_level INTEGER NOT NULL DEFAULT 0,
			is_anonymous BOOLEAN NOT NULL DEFAULT false,
			listed_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			expires_at TIMESTAMP WITH TIME ZONE
		)
	`)
	return err
}

func (r *MigrationRunner) createShopTables(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS shops (
			shop_id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			shop_type VARCHAR(50) NOT NULL DEFAULT 'normal',
			is_active BOOLEAN NOT NULL DEFAULT true,
			start_time TIMESTAMP WITH TIME ZONE,
			end_time TIMESTAMP WITH TIME ZONE,
			sort_order INTEGER NOT NULL DEFAULT 999,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE
		)
	`); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS shop_items (
			item_id BIGSERIAL PRIMARY KEY,
			shop_id BIGINT NOT NULL REFERENCES shops(shop_id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			category VARCHAR(50) NOT NULL DEFAULT 'general',
			stock_total INTEGER,
			stock_sold INTEGER NOT NULL DEFAULT 0,
			per_user_limit INTEGER,
			per_user_daily_limit INTEGER,
			is_active BOOLEAN NOT NULL DEFAULT true,
			start_time TIMESTAMP WITH TIME ZONE,
			end_time TIMESTAMP WITH TIME ZONE
		)
	`)
	return err
}

func (r *MigrationRunner) createGachaTables(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS gacha_pools (
			gacha_pool_id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			description TEXT,
			cost_coins BIGINT NOT NULL DEFAULT 0,
			cost_premium_currency BIGINT NOT NULL DEFAULT 0,
			is_limited_time BOOLEAN NOT NULL DEFAULT false,
			open_until TIMESTAMP WITH TIME ZONE
		)
	`); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS gacha_pool_items (
			gacha_pool_item_id BIGSERIAL PRIMARY KEY,
			gacha_pool_id BIGINT NOT NULL REFERENCES gacha_pools(gacha_pool_id) ON DELETE CASCADE,
			item_type VARCHAR(50) NOT NULL CHECK (item_type IN ('rod', 'accessory', 'bait', 'fish', 'coins', 'premium_currency', 'item')),
			item_id BIGINT NOT NULL DEFAULT 0,
			quantity INTEGER NOT NULL DEFAULT 1,
			weight INTEGER NOT NULL CHECK (weight > 0)
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		// Catalog indexes
		"CREATE INDEX IF NOT EXISTS idx_fish_rarity ON fish(rarity)",
		"CREATE INDEX IF NOT EXISTS idx_rods_rarity ON rods(rarity)",
		"CREATE INDEX IF NOT EXISTS idx_items_type ON items(item_type)",

		// Zone pool indexes
		"CREATE INDEX IF NOT EXISTS idx_zone_fish_zone_id ON zone_fish(zone_id)",
		"CREATE INDEX IF NOT EXISTS idx_zone_fish_fish_id ON zone_fish(fish_id)",

		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_nickname ON users(nickname)",
		"CREATE INDEX IF NOT EXISTS idx_users_zone_id ON users(fishing_zone_id)",

		// Market indexes
		"CREATE INDEX IF NOT EXISTS idx_market_user_id ON market_listings(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_market_item_type ON market_listings(item_type)",
		"CREATE INDEX IF NOT EXISTS idx_market_price ON market_listings(price)",
		"CREATE INDEX IF NOT EXISTS idx_market_listed_at ON market_listings(listed_at DESC)",

		// Shop indexes
		"CREATE INDEX IF NOT EXISTS idx_shops_sort_order ON shops(sort_order, shop_id)",
		"CREATE INDEX IF NOT EXISTS idx_shop_items_shop_id ON shop_items(shop_id)",

		// Gacha indexes
		"CREATE INDEX IF NOT EXISTS idx_gacha_pool_items_pool_type ON gacha_pool_items(gacha_pool_id, item_type)",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Log but don't fail on index creation errors
			fmt.Printf("Warning: failed to create index: %v\n", err)
		}
	}

	return nil
}

// insertBuiltinZones seeds the three always-present fishing zones.
// Admin-created zones take IDs outside this range.
func (r *MigrationRunner) insertBuiltinZones(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO fishing_zones (id, name, description, daily_rare_fish_quota, fishing_cost, is_active)
		VALUES
			(1, 'Novice Harbor',   'Calm waters for beginners.',       50, 10, true),
			(2, 'Deep Sea Canyon', 'Deeper waters with rarer catches.', 20, 50, true),
			(3, 'Legendary Sea',   'Home of the rarest fish.',          5, 200, true)
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		// Log but don't fail on seed insertion
		fmt.Printf("Warning: failed to insert builtin zones: %v\n", err)
	}
	return nil
}
