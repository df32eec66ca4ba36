package app

import (
	"context"
	"log"
	"strings"

	"reeladmin/models"
	"reeladmin/ports"
)

// ItemTemplateService manages the catalog templates the game draws
// from: fish, rods, baits, accessories, and generic items.
type ItemTemplateService struct {
	templates ports.ItemTemplateRepository
}

// ImportResult summarizes a bulk CSV import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// NewItemTemplateService creates an item template service
func NewItemTemplateService(templates ports.ItemTemplateRepository) *ItemTemplateService {
	return &ItemTemplateService{templates: templates}
}

// Fish

func (s *ItemTemplateService) ListFish(ctx context.Context) ([]models.Fish, error) {
	return s.templates.ListFish(ctx)
}

func (s *ItemTemplateService) GetFish(ctx context.Context, fishID int64) (*models.Fish, error) {
	return s.templates.GetFish(ctx, fishID)
}

func (s *ItemTemplateService) CreateFish(ctx context.Context, fish *models.Fish) error {
	if err := validateFish(fish); err != nil {
		return err
	}
	return s.templates.CreateFish(ctx, fish)
}

func (s *ItemTemplateService) UpdateFish(ctx context.Context, fish *models.Fish) error {
	if err := validateFish(fish); err != nil {
		return err
	}
	return s.templates.UpdateFish(ctx, fish)
}

func (s *ItemTemplateService) DeleteFish(ctx context.Context, fishID int64) error {
	return s.templates.DeleteFish(ctx, fishID)
}

// ImportFish persists parsed fish rows one by one so a failing row
// does not abort the rest of the batch.
func (s *ItemTemplateService) ImportFish(ctx context.Context, fish []models.Fish) ImportResult {
	result := ImportResult{}
	for i := range fish {
		if err := s.CreateFish(ctx, &fish[i]); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Imported++
	}
	log.Printf("[ItemTemplateService] Imported %d fish (%d skipped)", result.Imported, result.Skipped)
	return result
}

// Rods

func (s *ItemTemplateService) ListRods(ctx context.Context) ([]models.Rod, error) {
	return s.templates.ListRods(ctx)
}

func (s *ItemTemplateService) GetRod(ctx context.Context, rodID int64) (*models.Rod, error) {
	return s.templates.GetRod(ctx, rodID)
}

func (s *ItemTemplateService) CreateRod(ctx context.Context, rod *models.Rod) error {
	if err := validateRod(rod); err != nil {
		return err
	}
	return s.templates.CreateRod(ctx, rod)
}

func (s *ItemTemplateService) UpdateRod(ctx context.Context, rod *models.Rod) error {
	if err := validateRod(rod); err != nil {
		return err
	}
	return s.templates.UpdateRod(ctx, rod)
}

func (s *ItemTemplateService) DeleteRod(ctx context.Context, rodID int64) error {
	return s.templates.DeleteRod(ctx, rodID)
}

// ImportRods persists parsed rod rows with per-row error handling.
func (s *ItemTemplateService) ImportRods(ctx context.Context, rods []models.Rod) ImportResult {
	result := ImportResult{}
	for i := range rods {
		if err := s.CreateRod(ctx, &rods[i]); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Imported++
	}
	log.Printf("[ItemTemplateService] Imported %d rods (%d skipped)", result.Imported, result.Skipped)
	return result
}

// Baits

func (s *ItemTemplateService) ListBaits(ctx context.Context) ([]models.Bait, error) {
	return s.templates.ListBaits(ctx)
}

func (s *ItemTemplateService) GetBait(ctx context.Context, baitID int64) (*models.Bait, error) {
	return s.templates.GetBait(ctx, baitID)
}

func (s *ItemTemplateService) CreateBait(ctx context.Context, bait *models.Bait) error {
	if err := validateNameRarity(bait.Name, bait.Rarity); err != nil {
		return err
	}
	return s.templates.CreateBait(ctx, bait)
}

func (s *ItemTemplateService) UpdateBait(ctx context.Context, bait *models.Bait) error {
	if err := validateNameRarity(bait.Name, bait.Rarity); err != nil {
		return err
	}
	return s.templates.UpdateBait(ctx, bait)
}

func (s *ItemTemplateService) DeleteBait(ctx context.Context, baitID int64) error {
	return s.templates.DeleteBait(ctx, baitID)
}

// Accessories

func (s *ItemTemplateService) ListAccessories(ctx context.Context) ([]models.Accessory, error) {
	return s.templates.ListAccessories(ctx)
}

func (s *ItemTemplateService) GetAccessory(ctx context.Context, accessoryID int64) (*models.Accessory, error) {
	return s.templates.GetAccessory(ctx, accessoryID)
}

func (s *ItemTemplateService) CreateAccessory(ctx context.Context, accessory *models.Accessory) error {
	if err := validateNameRarity(accessory.Name, accessory.Rarity); err != nil {
		return err
	}
	return s.templates.CreateAccessory(ctx, accessory)
}

func (s *ItemTemplateService) UpdateAccessory(ctx context.Context, accessory *models.Accessory) error {
	if err := validateNameRarity(accessory.Name, accessory.Rarity); err != nil {
		return err
	}
	return s.templates.UpdateAccessory(ctx, accessory)
}

func (s *ItemTemplateService) DeleteAccessory(ctx context.Context, accessoryID int64) error {
	return s.templates.DeleteAccessory(ctx, accessoryID)
}

// ImportAccessories persists parsed accessory rows with per-row error
// handling.
func (s *ItemTemplateService) ImportAccessories(ctx context.Context, accessories []models.Accessory) ImportResult {
	result := ImportResult{}
	for i := range accessories {
		if err := s.CreateAccessory(ctx, &accessories[i]); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Imported++
	}
	log.Printf("[ItemTemplateService] Imported %d accessories (%d skipped)", result.Imported, result.Skipped)
	return result
}

// Generic items

func (s *ItemTemplateService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.templates.ListItems(ctx)
}

func (s *ItemTemplateService) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	return s.templates.GetItem(ctx, itemID)
}

func (s *ItemTemplateService) CreateItem(ctx context.Context, item *models.Item) error {
	if err := validateNameRarity(item.Name, item.Rarity); err != nil {
		return err
	}
	return s.templates.CreateItem(ctx, item)
}

func (s *ItemTemplateService) UpdateItem(ctx context.Context, item *models.Item) error {
	if err := validateNameRarity(item.Name, item.Rarity); err != nil {
		return err
	}
	return s.templates.UpdateItem(ctx, item)
}

func (s *ItemTemplateService) DeleteItem(ctx context.Context, itemID int64) error {
	return s.templates.DeleteItem(ctx, itemID)
}

func validateFish(fish *models.Fish) error {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(fish.Name) == "" {
		fieldErrs["name"] = "name is required"
	}
	if fish.Rarity < 1 || fish.Rarity > 6 {
		fieldErrs["rarity"] = "rarity must be between 1 and 6"
	}
	if fish.BaseValue < 0 {
		fieldErrs["base_value"] = "base value cannot be negative"
	}
	if fish.MinWeight < 1 {
		fieldErrs["min_weight"] = "min weight must be positive"
	}
	if fish.MaxWeight < fish.MinWeight {
		fieldErrs["max_weight"] = "max weight must be at least min weight"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

func validateRod(rod *models.Rod) error {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(rod.Name) == "" {
		fieldErrs["name"] = "name is required"
	}
	if rod.Rarity < 1 || rod.Rarity > 6 {
		fieldErrs["rarity"] = "rarity must be between 1 and 6"
	}
	switch rod.Source {
	case models.RodSourceShop, models.RodSourceGacha, models.RodSourceEvent:
	default:
		fieldErrs["source"] = "source must be one of shop, gacha, event"
	}
	if rod.PurchaseCost != nil && *rod.PurchaseCost < 0 {
		fieldErrs["purchase_cost"] = "purchase cost cannot be negative"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

func validateNameRarity(name string, rarity int) error {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(name) == "" {
		fieldErrs["name"] = "name is required"
	}
	if rarity < 1 || rarity > 6 {
		fieldErrs["rarity"] = "rarity must be between 1 and 6"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}
