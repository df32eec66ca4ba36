package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"reeladmin/models"
	"reeladmin/ports"
)

// GachaService manages gacha prize pools and their weighted entries.
type GachaService struct {
	pools     ports.GachaRepository
	templates ports.ItemTemplateRepository
}

// GachaPoolInput carries the admin-editable pool fields.
type GachaPoolInput struct {
	Name                string     `json:"name"`
	Description         *string    `json:"description,omitempty"`
	CostCoins           int64      `json:"cost_coins"`
	CostPremiumCurrency int64      `json:"cost_premium_currency"`
	IsLimitedTime       bool       `json:"is_limited_time"`
	OpenUntil           *time.Time `json:"open_until,omitempty"`
}

// GachaItemInput carries the admin-editable pool entry fields.
type GachaItemInput struct {
	ItemType string `json:"item_type"`
	ItemID   int64  `json:"item_id"`
	Quantity int    `json:"quantity"`
	Weight   int    `json:"weight"`
}

// GachaPoolItemView is a pool entry annotated with the prize's display
// name and rarity for the admin detail page.
type GachaPoolItemView struct {
	models.GachaPoolItem
	ItemName string `json:"item_name"`
	Rarity   *int   `json:"rarity,omitempty"`
}

// GachaPoolDetails is the admin detail view of one pool.
type GachaPoolDetails struct {
	Pool  models.GachaPool    `json:"pool"`
	Items []GachaPoolItemView `json:"items"`
}

// NewGachaService creates a gacha service
func NewGachaService(pools ports.GachaRepository, templates ports.ItemTemplateRepository) *GachaService {
	return &GachaService{pools: pools, templates: templates}
}

func (s *GachaService) ListPools(ctx context.Context) ([]models.GachaPool, error) {
	return s.pools.ListPools(ctx)
}

// GetPoolDetails returns a pool with every entry resolved to the
// prize's catalog name and rarity.
func (s *GachaService) GetPoolDetails(ctx context.Context, poolID int64) (*GachaPoolDetails, error) {
	pool, err := s.pools.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	details := &GachaPoolDetails{Pool: *pool, Items: make([]GachaPoolItemView, 0, len(pool.Items))}
	for _, item := range pool.Items {
		name, rarity := s.describePrize(ctx, item)
		details.Items = append(details.Items, GachaPoolItemView{
			GachaPoolItem: item,
			ItemName:      name,
			Rarity:        rarity,
		})
	}
	return details, nil
}

func (s *GachaService) CreatePool(ctx context.Context, input GachaPoolInput) (*models.GachaPool, error) {
	if err := validatePoolInput(&input); err != nil {
		return nil, err
	}
	pool := poolFromInput(input)
	if err := s.pools.CreatePool(ctx, pool); err != nil {
		return nil, err
	}
	log.Printf("[GachaService] Created pool %d (%s)", pool.PoolID, pool.Name)
	return pool, nil
}

func (s *GachaService) UpdatePool(ctx context.Context, poolID int64, input GachaPoolInput) (*models.GachaPool, error) {
	if err := validatePoolInput(&input); err != nil {
		return nil, err
	}
	pool := poolFromInput(input)
	pool.PoolID = poolID
	if err := s.pools.UpdatePool(ctx, pool); err != nil {
		return nil, err
	}
	return s.pools.GetPool(ctx, poolID)
}

func (s *GachaService) DeletePool(ctx context.Context, poolID int64) error {
	if err := s.pools.DeletePool(ctx, poolID); err != nil {
		return err
	}
	log.Printf("[GachaService] Deleted pool %d", poolID)
	return nil
}

// CopyPool duplicates a pool with all its entries and returns the copy.
func (s *GachaService) CopyPool(ctx context.Context, poolID int64) (*models.GachaPool, error) {
	newID, err := s.pools.CopyPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	log.Printf("[GachaService] Copied pool %d to %d", poolID, newID)
	return s.pools.GetPool(ctx, newID)
}

// AddItem appends a weighted prize entry to a pool.
func (s *GachaService) AddItem(ctx context.Context, poolID int64, input GachaItemInput) (*models.GachaPoolItem, error) {
	if _, err := s.pools.GetPool(ctx, poolID); err != nil {
		return nil, err
	}
	if err := validateItemInput(&input); err != nil {
		return nil, err
	}
	item := &models.GachaPoolItem{
		PoolID:   poolID,
		ItemType: input.ItemType,
		ItemID:   input.ItemID,
		Quantity: input.Quantity,
		Weight:   input.Weight,
	}
	if err := s.pools.AddPoolItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GachaService) UpdateItem(ctx context.Context, poolItemID int64, input GachaItemInput) (*models.GachaPoolItem, error) {
	item, err := s.pools.GetPoolItem(ctx, poolItemID)
	if err != nil {
		return nil, err
	}
	if err := validateItemInput(&input); err != nil {
		return nil, err
	}
	item.ItemType = input.ItemType
	item.ItemID = input.ItemID
	item.Quantity = input.Quantity
	item.Weight = input.Weight
	if err := s.pools.UpdatePoolItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemWeight adjusts a single entry's draw weight, the quick-edit
// path of the pool detail page.
func (s *GachaService) UpdateItemWeight(ctx context.Context, poolItemID int64, weight int) (*models.GachaPoolItem, error) {
	if weight < 1 {
		return nil, FieldErrors{"weight": "weight must be a positive integer"}
	}
	item, err := s.pools.GetPoolItem(ctx, poolItemID)
	if err != nil {
		return nil, err
	}
	item.Weight = weight
	if err := s.pools.UpdatePoolItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GachaService) DeleteItem(ctx context.Context, poolItemID int64) error {
	return s.pools.DeletePoolItem(ctx, poolItemID)
}

// describePrize resolves an entry to a display name and rarity. Prizes
// whose template has been deleted show as unknown rather than failing
// the whole page.
func (s *GachaService) describePrize(ctx context.Context, item models.GachaPoolItem) (string, *int) {
	switch item.ItemType {
	case models.GachaItemCoins:
		return fmt.Sprintf("%d Coins", item.Quantity), nil
	case models.GachaItemPremium:
		return fmt.Sprintf("%d Premium Currency", item.Quantity), nil
	case models.GachaItemRod:
		if rod, err := s.templates.GetRod(ctx, item.ItemID); err == nil {
			return rod.Name, &rod.Rarity
		}
	case models.GachaItemAccessory:
		if a, err := s.templates.GetAccessory(ctx, item.ItemID); err == nil {
			return a.Name, &a.Rarity
		}
	case models.GachaItemBait:
		if b, err := s.templates.GetBait(ctx, item.ItemID); err == nil {
			return b.Name, &b.Rarity
		}
	case models.GachaItemFish:
		if f, err := s.templates.GetFish(ctx, item.ItemID); err == nil {
			return f.Name, &f.Rarity
		}
	case models.GachaItemItem:
		if i, err := s.templates.GetItem(ctx, item.ItemID); err == nil {
			return i.Name, &i.Rarity
		}
	}
	return "Unknown Item", nil
}

func validatePoolInput(input *GachaPoolInput) error {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs["name"] = "name is required"
	}
	if input.CostCoins < 0 {
		fieldErrs["cost_coins"] = "coin cost cannot be negative"
	}
	if input.CostPremiumCurrency < 0 {
		fieldErrs["cost_premium_currency"] = "premium cost cannot be negative"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	// A pool that is not limited-time keeps no deadline.
	if !input.IsLimitedTime {
		input.OpenUntil = nil
	}
	return nil
}

func validateItemInput(input *GachaItemInput) error {
	fieldErrs := FieldErrors{}
	if !models.ValidGachaItemType(input.ItemType) {
		fieldErrs["item_type"] = "unknown prize type"
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 1 {
		fieldErrs["quantity"] = "quantity must be a positive integer"
	}
	if input.Weight < 1 {
		fieldErrs["weight"] = "weight must be a positive integer"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

func poolFromInput(input GachaPoolInput) *models.GachaPool {
	return &models.GachaPool{
		Name:                strings.TrimSpace(input.Name),
		Description:         input.Description,
		CostCoins:           input.CostCoins,
		CostPremiumCurrency: input.CostPremiumCurrency,
		IsLimitedTime:       input.IsLimitedTime,
		OpenUntil:           input.OpenUntil,
	}
}
