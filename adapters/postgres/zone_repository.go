package postgres

import (
	"context"
	"database/sql"
	"errors"

	"reeladmin/models"
	"reeladmin/ports"

	apperrors "reeladmin/internal/errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ZoneRepositoryImpl implements ZoneRepository for PostgreSQL
type ZoneRepositoryImpl struct {
	db *sqlx.DB
}

// NewZoneRepository creates a new PostgreSQL zone repository
func NewZoneRepository(db *sqlx.DB) ports.ZoneRepository {
	return &ZoneRepositoryImpl{db: db}
}

func (r *ZoneRepositoryImpl) ListZones(ctx context.Context) ([]models.FishingZone, error) {
	var zones []models.FishingZone
	err := r.db.SelectContext(ctx, &zones, `
		SELECT id, name, description, daily_rare_fish_quota, rare_fish_caught_today,
		       rarity_distribution, is_active, available_from, available_until,
		       required_item_id, requires_pass, fishing_cost
		FROM fishing_zones
		ORDER BY id
	`)
	return zones, err
}

func (r *ZoneRepositoryImpl) GetZone(ctx context.Context, zoneID int64) (*models.FishingZone, error) {
	var z models.FishingZone
	err := r.db.GetContext(ctx, &z, `
		SELECT id, name, description, daily_rare_fish_quota, rare_fish_caught_today,
		       rarity_distribution, is_active, available_from, available_until,
		       required_item_id, requires_pass, fishing_cost
		FROM fishing_zones
		WHERE id = $1
	`, zoneID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("fishing zone")
	}
	if err != nil {
		return nil, err
	}
	return &z, nil
}

// CreateZone inserts a zone with an admin-chosen id. A duplicate id
// surfaces as a CONFLICT error, matching the admin API contract.
func (r *ZoneRepositoryImpl) CreateZone(ctx context.Context, z *models.FishingZone) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO fishing_zones (id, name, description, daily_rare_fish_quota,
		                           rarity_distribution, is_active, available_from,
		                           available_until, required_item_id, requires_pass, fishing_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, z.ID, z.Name, z.Description, z.DailyRareFishQuota,
		z.RarityDistribution, z.IsActive, z.AvailableFrom,
		z.AvailableUntil, z.RequiredItemID, z.RequiresPass, z.FishingCost)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return apperrors.Conflict("a fishing zone with this id already exists")
		}
		return err
	}
	return nil
}

func (r *ZoneRepositoryImpl) UpdateZone(ctx context.Context, z *models.FishingZone) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE fishing_zones
		SET name = $2, description = $3, daily_rare_fish_quota = $4,
		    rarity_distribution = $5, is_active = $6, available_from = $7,
		    available_until = $8, required_item_id = $9, requires_pass = $10,
		    fishing_cost = $11
		WHERE id = $1
	`, z.ID, z.Name, z.Description, z.DailyRareFishQuota,
		z.RarityDistribution, z.IsActive, z.AvailableFrom,
		z.AvailableUntil, z.RequiredItemID, z.RequiresPass, z.FishingCost)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "fishing zone")
}

func (r *ZoneRepositoryImpl) DeleteZone(ctx context.Context, zoneID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fishing_zones WHERE id = $1`, zoneID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "fishing zone")
}

func (r *ZoneRepositoryImpl) GetZoneFishIDs(ctx context.Context, zoneID int64) ([]int64, error) {
	var ids []int64
	err := r.db.SelectContext(ctx, &ids, `
		SELECT fish_id FROM zone_fish WHERE zone_id = $1 ORDER BY fish_id
	`, zoneID)
	return ids, err
}

// ReplaceZoneFish swaps a zone's restricted pool in one transaction.
func (r *ZoneRepositoryImpl) ReplaceZoneFish(ctx context.Context, zoneID int64, fishIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM zone_fish WHERE zone_id = $1`, zoneID); err != nil {
		return err
	}
	for _, fishID := range fishIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO zone_fish (zone_id, fish_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, zoneID, fishID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
