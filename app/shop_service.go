package app

import (
	"context"
	"log"
	"strings"
	"time"

	"reeladmin/models"
	"reeladmin/ports"
)

// ShopService manages configurable in-game shops and their stock.
type ShopService struct {
	shops ports.ShopRepository
}

// NewShopService creates a shop service
func NewShopService(shops ports.ShopRepository) *ShopService {
	return &ShopService{shops: shops}
}

func (s *ShopService) ListShops(ctx context.Context) ([]models.Shop, error) {
	return s.shops.ListShops(ctx)
}

func (s *ShopService) GetShop(ctx context.Context, shopID int64) (*models.Shop, error) {
	return s.shops.GetShop(ctx, shopID)
}

func (s *ShopService) CreateShop(ctx context.Context, shop *models.Shop) error {
	if err := validateShop(shop); err != nil {
		return err
	}
	if err := s.shops.CreateShop(ctx, shop); err != nil {
		return err
	}
	log.Printf("[ShopService] Created shop %d (%s)", shop.ShopID, shop.Name)
	return nil
}

func (s *ShopService) UpdateShop(ctx context.Context, shop *models.Shop) error {
	if err := validateShop(shop); err != nil {
		return err
	}
	return s.shops.UpdateShop(ctx, shop)
}

func (s *ShopService) DeleteShop(ctx context.Context, shopID int64) error {
	return s.shops.DeleteShop(ctx, shopID)
}

func (s *ShopService) ListShopItems(ctx context.Context, shopID int64) ([]models.ShopItem, error) {
	if _, err := s.shops.GetShop(ctx, shopID); err != nil {
		return nil, err
	}
	return s.shops.ListShopItems(ctx, shopID)
}

func (s *ShopService) CreateShopItem(ctx context.Context, item *models.ShopItem) error {
	if err := validateShopItem(item); err != nil {
		return err
	}
	if _, err := s.shops.GetShop(ctx, item.ShopID); err != nil {
		return err
	}
	return s.shops.CreateShopItem(ctx, item)
}

func (s *ShopService) UpdateShopItem(ctx context.Context, item *models.ShopItem) error {
	if err := validateShopItem(item); err != nil {
		return err
	}
	return s.shops.UpdateShopItem(ctx, item)
}

func (s *ShopService) DeleteShopItem(ctx context.Context, itemID int64) error {
	return s.shops.DeleteShopItem(ctx, itemID)
}

// ActiveShops returns only the shops a player should see right now:
// active ones inside their time window, in display order.
func (s *ShopService) ActiveShops(ctx context.Context, now time.Time) ([]models.Shop, error) {
	shops, err := s.shops.ListShops(ctx)
	if err != nil {
		return nil, err
	}
	visible := shops[:0]
	for _, shop := range shops {
		if !shop.IsActive {
			continue
		}
		if shop.StartTime != nil && now.Before(*shop.StartTime) {
			continue
		}
		if shop.EndTime != nil && now.After(*shop.EndTime) {
			continue
		}
		visible = append(visible, shop)
	}
	return visible, nil
}

func validateShop(shop *models.Shop) error {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(shop.Name) == "" {
		fieldErrs["name"] = "name is required"
	}
	switch shop.ShopType {
	case models.ShopTypeNormal, models.ShopTypePremium, models.ShopTypeLimited:
	default:
		fieldErrs["shop_type"] = "shop type must be one of normal, premium, limited"
	}
	if shop.StartTime != nil && shop.EndTime != nil && shop.EndTime.Before(*shop.StartTime) {
		fieldErrs["end_time"] = "end time must be after start time"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

func validateShopItem(item *models.ShopItem) error {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(item.Name) == "" {
		fieldErrs["name"] = "name is required"
	}
	if item.StockTotal != nil && *item.StockTotal < 0 {
		fieldErrs["stock_total"] = "stock total cannot be negative"
	}
	if item.PerUserLimit != nil && *item.PerUserLimit < 1 {
		fieldErrs["per_user_limit"] = "per user limit must be positive"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}
