package ui

import (
	"net/http"

	"reeladmin/app"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListGachaPools(c *gin.Context) {
	pools, err := s.gacha.ListPools(c.Request.Context())
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"pools": pools})
}

func (s *Server) handleGetGachaPool(c *gin.Context) {
	poolID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	details, err := s.gacha.GetPoolDetails(c.Request.Context(), poolID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"pool": details.Pool, "items": details.Items})
}

func (s *Server) handleCreateGachaPool(c *gin.Context) {
	var input app.GachaPoolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	pool, err := s.gacha.CreatePool(c.Request.Context(), input)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"pool": pool, "message": "gacha pool created"})
}

func (s *Server) handleUpdateGachaPool(c *gin.Context) {
	poolID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var input app.GachaPoolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	pool, err := s.gacha.UpdatePool(c.Request.Context(), poolID, input)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"pool": pool, "message": "gacha pool updated"})
}

func (s *Server) handleDeleteGachaPool(c *gin.Context) {
	poolID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.gacha.DeletePool(c.Request.Context(), poolID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "gacha pool deleted")
}

func (s *Server) handleCopyGachaPool(c *gin.Context) {
	poolID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	pool, err := s.gacha.CopyPool(c.Request.Context(), poolID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"pool": pool, "message": "gacha pool copied"})
}

func (s *Server) handleAddGachaPoolItem(c *gin.Context) {
	poolID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var input app.GachaItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	item, err := s.gacha.AddItem(c.Request.Context(), poolID, input)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"item": item, "message": "gacha pool item added"})
}

func (s *Server) handleUpdateGachaPoolItem(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var input app.GachaItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	item, err := s.gacha.UpdateItem(c.Request.Context(), itemID, input)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"item": item, "message": "gacha pool item updated"})
}

func (s *Server) handleUpdateGachaItemWeight(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var body struct {
		Weight int `json:"weight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	item, err := s.gacha.UpdateItemWeight(c.Request.Context(), itemID, body.Weight)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"item": item, "message": "weight updated"})
}

func (s *Server) handleDeleteGachaPoolItem(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.gacha.DeleteItem(c.Request.Context(), itemID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "gacha pool item deleted")
}
