package app

import (
	"context"
	"log"

	"reeladmin/models"
	"reeladmin/ports"

	"github.com/montanaflynn/stats"
)

// MarketService provides admin oversight of the player market.
type MarketService struct {
	market ports.MarketRepository
}

// NewMarketService creates a market service
func NewMarketService(market ports.MarketRepository) *MarketService {
	return &MarketService{market: market}
}

// ListMarket returns one page of listings plus aggregate price stats
// computed over everything matching the filters, not just the page.
func (s *MarketService) ListMarket(ctx context.Context, page, perPage int, filters models.MarketFilters) (*models.MarketPage, error) {
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	listings, total, err := s.market.ListListings(ctx, page, perPage, filters)
	if err != nil {
		return nil, err
	}

	marketStats, err := s.computeStats(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &models.MarketPage{
		Listings:   listings,
		Pagination: models.NewPagination(page, perPage, total),
		Stats:      marketStats,
	}, nil
}

// ExportListings returns every listing matching the filters together
// with the aggregate stats, without pagination, for the XLSX export.
func (s *MarketService) ExportListings(ctx context.Context, filters models.MarketFilters) ([]models.MarketListing, models.MarketStats, error) {
	listings, err := s.market.AllListings(ctx, filters)
	if err != nil {
		return nil, models.MarketStats{}, err
	}
	marketStats, err := s.computeStats(ctx, filters)
	if err != nil {
		return nil, models.MarketStats{}, err
	}
	return listings, marketStats, nil
}

func (s *MarketService) GetListing(ctx context.Context, marketID int64) (*models.MarketListing, error) {
	return s.market.GetListing(ctx, marketID)
}

// UpdatePrice lets an admin correct an abusive listing price.
func (s *MarketService) UpdatePrice(ctx context.Context, marketID int64, price int64) error {
	if price < 1 {
		return FieldErrors{"price": "price must be at least 1"}
	}
	if err := s.market.UpdatePrice(ctx, marketID, price); err != nil {
		return err
	}
	log.Printf("[MarketService] Updated price of listing %d to %d", marketID, price)
	return nil
}

// RemoveListing takes a listing off the market without a sale.
func (s *MarketService) RemoveListing(ctx context.Context, marketID int64) error {
	if err := s.market.DeleteListing(ctx, marketID); err != nil {
		return err
	}
	log.Printf("[MarketService] Removed listing %d", marketID)
	return nil
}

func (s *MarketService) computeStats(ctx context.Context, filters models.MarketFilters) (models.MarketStats, error) {
	prices, err := s.market.Prices(ctx, filters)
	if err != nil {
		return models.MarketStats{}, err
	}
	if len(prices) == 0 {
		return models.MarketStats{}, nil
	}

	data := make(stats.Float64Data, len(prices))
	var total int64
	for i, p := range prices {
		data[i] = float64(p)
		total += p
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return models.MarketStats{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return models.MarketStats{}, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return models.MarketStats{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return models.MarketStats{}, err
	}

	return models.MarketStats{
		ListingCount: len(prices),
		TotalValue:   total,
		MeanPrice:    mean,
		MedianPrice:  median,
		MinPrice:     int64(min),
		MaxPrice:     int64(max),
	}, nil
}
