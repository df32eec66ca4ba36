package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reeladmin/internal/testkit"
	"reeladmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGameServer(t *testing.T) (*GameServer, *testkit.Kit) {
	t.Helper()
	kit := testkit.NewKit()
	kit.SeedDefaults()
	srv := NewGameServer(kit.ZoneService, kit.UserService, kit.ShopService)
	srv.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	return srv, kit
}

func get(t *testing.T, srv *GameServer, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestListZonesIncludesEffectiveDistribution(t *testing.T) {
	srv, _ := newGameServer(t)

	w := get(t, srv, "/game/api/zones")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Zones []struct {
			ID                 int64     `json:"id"`
			RarityDistribution []float64 `json:"rarity_distribution"`
			Available          bool      `json:"available"`
		} `json:"zones"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Zones, 3)

	// Zone 1 falls back to the builtin novice distribution.
	require.Len(t, body.Zones[0].RarityDistribution, 6)
	assert.InDelta(t, 0.6, body.Zones[0].RarityDistribution[0], 1e-9)
	assert.True(t, body.Zones[0].Available)
}

func TestSwitchZone(t *testing.T) {
	srv, kit := newGameServer(t)

	payload, _ := json.Marshal(map[string]interface{}{"user_id": "u-1", "zone_id": 2})
	req := httptest.NewRequest(http.MethodPost, "/game/api/zones/switch", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	user, err := kit.Users.GetUser(req.Context(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.FishingZoneID)
}

func TestSwitchZoneRejectsInactiveZone(t *testing.T) {
	srv, kit := newGameServer(t)
	kit.Zones.Put(models.FishingZone{ID: 9, Name: "Closed Cove", IsActive: false, FishingCost: 5})

	payload, _ := json.Marshal(map[string]interface{}{"user_id": "u-1", "zone_id": 9})
	req := httptest.NewRequest(http.MethodPost, "/game/api/zones/switch", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShopsOnlyShowActive(t *testing.T) {
	srv, kit := newGameServer(t)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	require.NoError(t, kit.ShopService.CreateShop(context.Background(), &models.Shop{
		Name: "General Store", ShopType: models.ShopTypeNormal, IsActive: true,
	}))
	require.NoError(t, kit.ShopService.CreateShop(context.Background(), &models.Shop{
		Name: "Expired Event", ShopType: models.ShopTypeLimited, IsActive: true, EndTime: &past,
	}))

	w := get(t, srv, "/game/api/shops")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Shops []models.Shop `json:"shops"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Shops, 1)
	assert.Equal(t, "General Store", body.Shops[0].Name)
}

func TestProfileNotFound(t *testing.T) {
	srv, _ := newGameServer(t)
	w := get(t, srv, "/game/api/profile/ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
