package app

import (
	"context"
	"log"
	"strings"

	"reeladmin/domain/zone"
	"reeladmin/internal/errors"
	"reeladmin/internal/pooleditor"
	"reeladmin/models"
	"reeladmin/ports"

	"github.com/google/uuid"
)

// ZoneService manages fishing zone configuration, including the live
// fish pool editor sessions.
type ZoneService struct {
	zones     ports.ZoneRepository
	templates ports.ItemTemplateRepository
	editors   *pooleditor.Registry
}

// ZoneInput carries the editable zone fields from the admin form.
type ZoneInput struct {
	ID                 int64                    `json:"id"`
	Name               string                   `json:"name"`
	Description        string                   `json:"description"`
	DailyRareFishQuota int                      `json:"daily_rare_fish_quota"`
	RarityDistribution *zone.RarityDistribution `json:"rarity_distribution,omitempty"`
	IsActive           bool                     `json:"is_active"`
	RequiresPass       bool                     `json:"requires_pass"`
	RequiredItemID     *int64                   `json:"required_item_id,omitempty"`
	FishingCost        int64                    `json:"fishing_cost"`
	SpecificFishIDs    []int64                  `json:"specific_fish_ids,omitempty"`
}

// NewZoneService creates a zone service
func NewZoneService(zones ports.ZoneRepository, templates ports.ItemTemplateRepository, editors *pooleditor.Registry) *ZoneService {
	return &ZoneService{
		zones:     zones,
		templates: templates,
		editors:   editors,
	}
}

// ListZones returns all zones with their restricted fish pools loaded.
func (s *ZoneService) ListZones(ctx context.Context) ([]models.FishingZone, error) {
	zones, err := s.zones.ListZones(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list zones")
	}
	for i := range zones {
		ids, err := s.zones.GetZoneFishIDs(ctx, zones[i].ID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load fish pool for zone %d", zones[i].ID)
		}
		zones[i].SpecificFishIDs = ids
	}
	return zones, nil
}

// GetZone returns one zone with its fish pool loaded.
func (s *ZoneService) GetZone(ctx context.Context, zoneID int64) (*models.FishingZone, error) {
	z, err := s.zones.GetZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	ids, err := s.zones.GetZoneFishIDs(ctx, zoneID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load fish pool for zone %d", zoneID)
	}
	z.SpecificFishIDs = ids
	return z, nil
}

// CreateZone validates and persists a new admin-defined zone. The zone
// ID is chosen by the admin so game content can reference it stably.
func (s *ZoneService) CreateZone(ctx context.Context, input ZoneInput) (*models.FishingZone, error) {
	if err := validateZoneInput(input); err != nil {
		return nil, err
	}

	z := zoneFromInput(input)
	if err := s.zones.CreateZone(ctx, z); err != nil {
		return nil, err
	}
	if len(input.SpecificFishIDs) > 0 {
		if err := s.zones.ReplaceZoneFish(ctx, z.ID, input.SpecificFishIDs); err != nil {
			return nil, errors.Wrapf(err, "failed to set fish pool for zone %d", z.ID)
		}
		z.SpecificFishIDs = input.SpecificFishIDs
	}
	log.Printf("[ZoneService] Created zone %d (%s)", z.ID, z.Name)
	return z, nil
}

// UpdateZone validates and persists changes to an existing zone.
func (s *ZoneService) UpdateZone(ctx context.Context, zoneID int64, input ZoneInput) (*models.FishingZone, error) {
	input.ID = zoneID
	if err := validateZoneInput(input); err != nil {
		return nil, err
	}

	existing, err := s.zones.GetZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	z := zoneFromInput(input)
	z.RareFishCaughtToday = existing.RareFishCaughtToday
	z.AvailableFrom = existing.AvailableFrom
	z.AvailableUntil = existing.AvailableUntil
	if err := s.zones.UpdateZone(ctx, z); err != nil {
		return nil, err
	}
	if input.SpecificFishIDs != nil {
		if err := s.zones.ReplaceZoneFish(ctx, zoneID, input.SpecificFishIDs); err != nil {
			return nil, errors.Wrapf(err, "failed to replace fish pool for zone %d", zoneID)
		}
	}
	return s.GetZone(ctx, zoneID)
}

// DeleteZone removes an admin-created zone. The three builtin zones
// cannot be deleted, only deactivated.
func (s *ZoneService) DeleteZone(ctx context.Context, zoneID int64) error {
	if zoneID == zone.ZoneNoviceHarbor || zoneID == zone.ZoneDeepSeaCanyon || zoneID == zone.ZoneLegendarySea {
		return errors.InvalidInput("builtin zones cannot be deleted")
	}
	return s.zones.DeleteZone(ctx, zoneID)
}

// OpenPoolEditor starts a fish pool editing session for a zone, seeded
// with the zone's current pool and the full fish catalog.
func (s *ZoneService) OpenPoolEditor(ctx context.Context, zoneID int64) (*pooleditor.Session, error) {
	z, err := s.GetZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	fish, err := s.templates.ListFish(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load fish catalog")
	}
	refs := make([]pooleditor.FishRef, len(fish))
	for i, f := range fish {
		refs[i] = pooleditor.FishRef{
			ID:        f.FishID,
			Name:      f.Name,
			Rarity:    f.Rarity,
			BaseValue: f.BaseValue,
		}
	}

	sess := s.editors.Open(zoneID, pooleditor.NewCatalog(refs), z.SpecificFishIDs)
	log.Printf("[ZoneService] Opened pool editor %s for zone %d (%d fish selected)",
		sess.ID(), zoneID, len(z.SpecificFishIDs))
	return sess, nil
}

// EditorSession looks up a live editing session.
func (s *ZoneService) EditorSession(sessionID uuid.UUID) (*pooleditor.Session, error) {
	sess, ok := s.editors.Get(sessionID)
	if !ok {
		return nil, errors.NotFound("editor session")
	}
	return sess, nil
}

// SavePoolEditor persists the session's selection as the zone's fish
// pool and closes the session.
func (s *ZoneService) SavePoolEditor(ctx context.Context, sessionID uuid.UUID) (*models.FishingZone, error) {
	sess, err := s.EditorSession(sessionID)
	if err != nil {
		return nil, err
	}
	zoneID := sess.ZoneID()
	if err := s.zones.ReplaceZoneFish(ctx, zoneID, sess.SelectedIDs()); err != nil {
		return nil, errors.Wrapf(err, "failed to save fish pool for zone %d", zoneID)
	}
	s.editors.Close(sessionID)
	log.Printf("[ZoneService] Saved pool editor %s for zone %d", sessionID, zoneID)
	return s.GetZone(ctx, zoneID)
}

// ClosePoolEditor discards a session without saving.
func (s *ZoneService) ClosePoolEditor(sessionID uuid.UUID) {
	s.editors.Close(sessionID)
}

func validateZoneInput(input ZoneInput) error {
	fieldErrs := FieldErrors{}
	if input.ID <= 0 {
		fieldErrs["id"] = "zone id must be a positive integer"
	}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs["name"] = "zone name is required"
	}
	if input.DailyRareFishQuota < 0 {
		fieldErrs["daily_rare_fish_quota"] = "daily rare fish quota cannot be negative"
	}
	if input.FishingCost < 1 {
		fieldErrs["fishing_cost"] = "fishing cost must be at least 1"
	}
	if input.RarityDistribution != nil && !input.RarityDistribution.IsZero() {
		if err := input.RarityDistribution.Validate(); err != nil {
			fieldErrs["rarity_distribution"] = err.Error()
		}
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

func zoneFromInput(input ZoneInput) *models.FishingZone {
	z := &models.FishingZone{
		ID:                 input.ID,
		Name:               strings.TrimSpace(input.Name),
		Description:        input.Description,
		DailyRareFishQuota: input.DailyRareFishQuota,
		IsActive:           input.IsActive,
		RequiresPass:       input.RequiresPass,
		RequiredItemID:     input.RequiredItemID,
		FishingCost:        input.FishingCost,
	}
	if input.RarityDistribution != nil {
		z.RarityDistribution = *input.RarityDistribution
	} else {
		z.RarityDistribution = zone.DefaultDistribution(input.ID)
	}
	return z
}
