package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"reeladmin/app"
	"reeladmin/internal/errors"
)

// GameServer is the player-facing HTTP API. It exposes the read side
// of the admin-managed configuration plus the zone switch operation.
type GameServer struct {
	router *chi.Mux
	zones  *app.ZoneService
	users  *app.UserService
	shops  *app.ShopService
	now    func() time.Time
}

// NewGameServer creates the game API server and registers its routes.
func NewGameServer(zones *app.ZoneService, users *app.UserService, shops *app.ShopService) *GameServer {
	s := &GameServer{
		router: chi.NewRouter(),
		zones:  zones,
		users:  users,
		shops:  shops,
		now:    time.Now,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Router exposes the chi mux for tests.
func (s *GameServer) Router() *chi.Mux {
	return s.router
}

// ListenAndServe starts the game API on addr.
func (s *GameServer) ListenAndServe(addr string) error {
	log.Printf("[GameServer] Listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *GameServer) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *GameServer) setupRoutes() {
	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.Route("/game/api", func(r chi.Router) {
		r.Get("/zones", s.handleListZones)
		r.Get("/zones/{id}", s.handleGetZone)
		r.Post("/zones/switch", s.handleSwitchZone)
		r.Get("/shops", s.handleListShops)
		r.Get("/shops/{id}/items", s.handleShopItems)
		r.Get("/profile/{id}", s.handleProfile)
	})
}

// zoneView is the player-visible slice of a zone's configuration. The
// effective rarity distribution is always populated, falling back to
// the builtin defaults for zones saved without explicit weights.
type zoneView struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	FishingCost        int64     `json:"fishing_cost"`
	RequiresPass       bool      `json:"requires_pass"`
	RequiredItemID     *int64    `json:"required_item_id,omitempty"`
	RarityDistribution []float64 `json:"rarity_distribution"`
	RestrictedPool     bool      `json:"restricted_pool"`
	Available          bool      `json:"available"`
}

func (s *GameServer) handleListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := s.zones.ListZones(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	now := s.now()
	views := make([]zoneView, 0, len(zones))
	for _, z := range zones {
		dist := z.EffectiveDistribution()
		views = append(views, zoneView{
			ID:                 z.ID,
			Name:               z.Name,
			Description:        z.Description,
			FishingCost:        z.FishingCost,
			RequiresPass:       z.RequiresPass,
			RequiredItemID:     z.RequiredItemID,
			RarityDistribution: dist[:],
			RestrictedPool:     len(z.SpecificFishIDs) > 0,
			Available:          z.AvailableAt(now),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"zones": views})
}

func (s *GameServer) handleGetZone(w http.ResponseWriter, r *http.Request) {
	zoneID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "invalid zone id")
		return
	}
	z, err := s.zones.GetZone(r.Context(), zoneID)
	if err != nil {
		writeError(w, err)
		return
	}
	dist := z.EffectiveDistribution()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"zone": zoneView{
			ID:                 z.ID,
			Name:               z.Name,
			Description:        z.Description,
			FishingCost:        z.FishingCost,
			RequiresPass:       z.RequiresPass,
			RequiredItemID:     z.RequiredItemID,
			RarityDistribution: dist[:],
			RestrictedPool:     len(z.SpecificFishIDs) > 0,
			Available:          z.AvailableAt(s.now()),
		},
		"fish_pool": z.SpecificFishIDs,
	})
}

type switchZoneRequest struct {
	UserID string `json:"user_id"`
	ZoneID int64  `json:"zone_id"`
}

func (s *GameServer) handleSwitchZone(w http.ResponseWriter, r *http.Request) {
	var req switchZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.ZoneID == 0 {
		writeStatus(w, http.StatusBadRequest, "user_id and zone_id are required")
		return
	}
	if err := s.users.SwitchZone(r.Context(), req.UserID, req.ZoneID, s.now()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"zone_id": req.ZoneID,
	})
}

func (s *GameServer) handleListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := s.shops.ActiveShops(r.Context(), s.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"shops": shops})
}

func (s *GameServer) handleShopItems(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	items, err := s.shops.ListShopItems(r.Context(), shopID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (s *GameServer) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[GameServer] Failed to encode response: %v", err)
	}
}

func writeStatus(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "message": message})
}

func writeError(w http.ResponseWriter, err error) {
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		writeStatus(w, http.StatusNotFound, err.Error())
	case errors.CodeInvalidInput, errors.CodeValidationError:
		writeStatus(w, http.StatusBadRequest, err.Error())
	default:
		writeStatus(w, http.StatusInternalServerError, err.Error())
	}
}
