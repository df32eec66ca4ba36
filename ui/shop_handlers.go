package ui

import (
	"net/http"

	"reeladmin/models"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListShops(c *gin.Context) {
	shops, err := s.shops.ListShops(c.Request.Context())
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"shops": shops})
}

func (s *Server) handleGetShop(c *gin.Context) {
	shopID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	shop, err := s.shops.GetShop(c.Request.Context(), shopID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"shop": shop})
}

func (s *Server) handleCreateShop(c *gin.Context) {
	var shop models.Shop
	if err := c.ShouldBindJSON(&shop); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.shops.CreateShop(c.Request.Context(), &shop); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"shop": shop, "message": "shop created"})
}

func (s *Server) handleUpdateShop(c *gin.Context) {
	shopID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var shop models.Shop
	if err := c.ShouldBindJSON(&shop); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	shop.ShopID = shopID
	if err := s.shops.UpdateShop(c.Request.Context(), &shop); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"shop": shop, "message": "shop updated"})
}

func (s *Server) handleDeleteShop(c *gin.Context) {
	shopID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.shops.DeleteShop(c.Request.Context(), shopID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "shop deleted")
}

func (s *Server) handleListShopItems(c *gin.Context) {
	shopID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	items, err := s.shops.ListShopItems(c.Request.Context(), shopID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"items": items})
}

func (s *Server) handleCreateShopItem(c *gin.Context) {
	shopID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var item models.ShopItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	item.ShopID = shopID
	if err := s.shops.CreateShopItem(c.Request.Context(), &item); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"item": item, "message": "shop item created"})
}

func (s *Server) handleUpdateShopItem(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var item models.ShopItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	item.ItemID = itemID
	if err := s.shops.UpdateShopItem(c.Request.Context(), &item); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"item": item, "message": "shop item updated"})
}

func (s *Server) handleDeleteShopItem(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.shops.DeleteShopItem(c.Request.Context(), itemID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "shop item deleted")
}
