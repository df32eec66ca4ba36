package ports

import (
	"context"

	"reeladmin/models"
)

// MarketRepository provides admin access to market listings.
type MarketRepository interface {
	ListListings(ctx context.Context, page, perPage int, filters models.MarketFilters) ([]models.MarketListing, int, error)

	// AllListings returns every listing matching the filters without
	// pagination, for exports.
	AllListings(ctx context.Context, filters models.MarketFilters) ([]models.MarketListing, error)
	GetListing(ctx context.Context, marketID int64) (*models.MarketListing, error)
	UpdatePrice(ctx context.Context, marketID int64, price int64) error
	DeleteListing(ctx context.Context, marketID int64) error

	// Prices returns every listing price matching the filters, for the
	// aggregate stats block of the admin market page.
	Prices(ctx context.Context, filters models.MarketFilters) ([]int64, error)
}
