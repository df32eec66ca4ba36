package ui

import (
	"net/http"
	"strconv"

	"reeladmin/adapters/export"
	"reeladmin/models"

	"github.com/gin-gonic/gin"
)

func marketFiltersFromQuery(c *gin.Context) models.MarketFilters {
	var filters models.MarketFilters
	if v := c.Query("item_type"); v != "" {
		filters.ItemType = &v
	}
	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.MinPrice = &p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.MaxPrice = &p
		}
	}
	if v := c.Query("search"); v != "" {
		filters.Search = &v
	}
	return filters
}

func (s *Server) handleListMarket(c *gin.Context) {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 20)

	marketPage, err := s.market.ListMarket(c.Request.Context(), page, perPage, marketFiltersFromQuery(c))
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{
		"listings":   marketPage.Listings,
		"pagination": marketPage.Pagination,
		"stats":      marketPage.Stats,
	})
}

type priceUpdateRequest struct {
	Price int64 `json:"price"`
}

func (s *Server) handleUpdateListingPrice(c *gin.Context) {
	marketID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var req priceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.market.UpdatePrice(c.Request.Context(), marketID, req.Price); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "listing price updated")
}

func (s *Server) handleRemoveListing(c *gin.Context) {
	marketID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.market.RemoveListing(c.Request.Context(), marketID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "listing removed")
}

// handleExportMarket streams the filtered market as an XLSX workbook.
// Pagination is ignored so the export covers every matching listing.
func (s *Server) handleExportMarket(c *gin.Context) {
	filters := marketFiltersFromQuery(c)

	listings, marketStats, err := s.market.ExportListings(c.Request.Context(), filters)
	if err != nil {
		respondAppError(c, err)
		return
	}

	wb, err := export.MarketWorkbook(listings, marketStats)
	if err != nil {
		respondAppError(c, err)
		return
	}
	defer wb.Close()

	c.Header("Content-Disposition", `attachment; filename="market.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := wb.Write(c.Writer); err != nil {
		respondAppError(c, err)
	}
}
