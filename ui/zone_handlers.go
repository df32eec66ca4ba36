package ui

import (
	"net/http"
	"strconv"

	"reeladmin/app"
	"reeladmin/internal/pooleditor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) handleListZones(c *gin.Context) {
	zones, err := s.zones.ListZones(c.Request.Context())
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"zones": zones})
}

func (s *Server) handleGetZone(c *gin.Context) {
	zoneID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	z, err := s.zones.GetZone(c.Request.Context(), zoneID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"zone": z})
}

func (s *Server) handleCreateZone(c *gin.Context) {
	var input app.ZoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	z, err := s.zones.CreateZone(c.Request.Context(), input)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"zone": z, "message": "zone created"})
}

func (s *Server) handleUpdateZone(c *gin.Context) {
	zoneID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var input app.ZoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	z, err := s.zones.UpdateZone(c.Request.Context(), zoneID, input)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"zone": z, "message": "zone updated"})
}

func (s *Server) handleDeleteZone(c *gin.Context) {
	zoneID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.zones.DeleteZone(c.Request.Context(), zoneID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "zone deleted")
}

// Pool editor endpoints. Every mutation responds with a fresh snapshot
// so the frontend re-renders from server state instead of patching its
// own copy.

func (s *Server) handleOpenPoolEditor(c *gin.Context) {
	zoneID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	sess, err := s.zones.OpenPoolEditor(c.Request.Context(), zoneID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"editor": sess.Snapshot()})
}

func (s *Server) editorSession(c *gin.Context) (*pooleditor.Session, bool) {
	sessionID, err := uuid.Parse(c.Param("session"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid session id")
		return nil, false
	}
	sess, err := s.zones.EditorSession(sessionID)
	if err != nil {
		respondAppError(c, err)
		return nil, false
	}
	return sess, true
}

type editorFishRequest struct {
	FishID int64 `json:"fish_id" binding:"required"`
}

type editorRarityRequest struct {
	Rarity int `json:"rarity" binding:"required"`
}

type editorFilterRequest struct {
	Query  string `json:"query"`
	Rarity int    `json:"rarity"`
}

func (s *Server) handleEditorSnapshot(c *gin.Context) {
	sess, ok := s.editorSession(c)
	if !ok {
		return
	}
	respondOK(c, gin.H{"editor": sess.Snapshot()})
}

func (s *Server) handleEditorSelect(c *gin.Context) {
	s.editorFishOp(c, func(sess *pooleditor.Session, fishID int64) {
		sess.Select(fishID)
	})
}

func (s *Server) handleEditorDeselect(c *gin.Context) {
	s.editorFishOp(c, func(sess *pooleditor.Session, fishID int64) {
		sess.Deselect(fishID)
	})
}

func (s *Server) handleEditorToggle(c *gin.Context) {
	s.editorFishOp(c, func(sess *pooleditor.Session, fishID int64) {
		sess.Toggle(fishID)
	})
}

func (s *Server) editorFishOp(c *gin.Context, op func(*pooleditor.Session, int64)) {
	sess, ok := s.editorSession(c)
	if !ok {
		return
	}
	var req editorFishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "fish_id is required")
		return
	}
	op(sess, req.FishID)
	respondOK(c, gin.H{"editor": sess.Snapshot()})
}

func (s *Server) handleEditorSelectRarity(c *gin.Context) {
	s.editorRarityOp(c, func(sess *pooleditor.Session, rarity int) {
		sess.SelectRarity(rarity)
	})
}

func (s *Server) handleEditorDeselectRarity(c *gin.Context) {
	s.editorRarityOp(c, func(sess *pooleditor.Session, rarity int) {
		sess.DeselectRarity(rarity)
	})
}

func (s *Server) editorRarityOp(c *gin.Context, op func(*pooleditor.Session, int)) {
	sess, ok := s.editorSession(c)
	if !ok {
		return
	}
	var req editorRarityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "rarity is required")
		return
	}
	op(sess, req.Rarity)
	respondOK(c, gin.H{"editor": sess.Snapshot()})
}

func (s *Server) handleEditorFilter(c *gin.Context) {
	sess, ok := s.editorSession(c)
	if !ok {
		return
	}
	var req editorFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	sess.SetFilter(pooleditor.Filter{Query: req.Query, Rarity: req.Rarity})
	respondOK(c, gin.H{"editor": sess.Snapshot()})
}

func (s *Server) handleEditorSave(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid session id")
		return
	}
	z, err := s.zones.SavePoolEditor(c.Request.Context(), sessionID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"zone": z, "message": "fish pool saved"})
}

func (s *Server) handleEditorClose(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid session id")
		return
	}
	s.zones.ClosePoolEditor(sessionID)
	respondMessage(c, "editor session closed")
}

// paramInt64 parses a numeric path parameter, responding 400 itself on
// bad input.
func paramInt64(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return v, true
}
