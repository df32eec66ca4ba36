package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reeladmin/adapters/export"
	"reeladmin/internal/config"
	"reeladmin/internal/testkit"
	"reeladmin/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testKey = "test-admin-key"

func newTestServer(t *testing.T) (*Server, *testkit.Kit) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kit := testkit.NewKit()
	kit.SeedDefaults()

	cfg := &config.Config{}
	cfg.Admin.SecretKey = testKey
	cfg.Admin.GinMode = gin.TestMode

	srv := NewServer(cfg, kit.ZoneService, kit.TemplateService, kit.UserService, kit.MarketService, kit.ShopService, kit.GachaService)
	return srv, kit
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Key", testKey)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequiresAdminKey(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/zones", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/api/zones", nil)
	req.Header.Set("Authorization", "Bearer "+testKey)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateZoneFieldErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/admin/api/zones", map[string]interface{}{
		"id":           0,
		"name":         "",
		"fishing_cost": 0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	errsObj, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errsObj, "id")
	assert.Contains(t, errsObj, "name")
	assert.Contains(t, errsObj, "fishing_cost")
}

func TestZoneCRUDFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/admin/api/zones", map[string]interface{}{
		"id":           10,
		"name":         "Starlight Lake",
		"fishing_cost": 5,
		"is_active":    true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/admin/api/zones/10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	zoneObj := body["zone"].(map[string]interface{})
	assert.Equal(t, "Starlight Lake", zoneObj["name"])

	// Duplicate id conflicts.
	w = doJSON(t, srv, http.MethodPost, "/admin/api/zones", map[string]interface{}{
		"id":           10,
		"name":         "Other",
		"fishing_cost": 5,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Builtin zones cannot be deleted.
	w = doJSON(t, srv, http.MethodDelete, "/admin/api/zones/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodDelete, "/admin/api/zones/10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPoolEditorEndpointFlow(t *testing.T) {
	srv, kit := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/admin/api/zones/2/pool-editor", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	editor := body["editor"].(map[string]interface{})
	sessionID := editor["session_id"].(string)
	require.NotEmpty(t, sessionID)

	base := "/admin/api/pool-editor/" + sessionID

	w = doJSON(t, srv, http.MethodPost, base+"/select", map[string]interface{}{"fish_id": 3})
	require.Equal(t, http.StatusOK, w.Code)
	editor = decodeBody(t, w)["editor"].(map[string]interface{})
	assert.Equal(t, float64(1), editor["selected_count"])
	assert.Equal(t, float64(500), editor["total_value"])

	// Selecting the same fish again is a no-op.
	w = doJSON(t, srv, http.MethodPost, base+"/select", map[string]interface{}{"fish_id": 3})
	editor = decodeBody(t, w)["editor"].(map[string]interface{})
	assert.Equal(t, float64(1), editor["selected_count"])

	w = doJSON(t, srv, http.MethodPost, base+"/save", nil)
	require.Equal(t, http.StatusOK, w.Code)
	saved := decodeBody(t, w)["zone"].(map[string]interface{})
	ids := saved["specific_fish_ids"].([]interface{})
	require.Len(t, ids, 1)
	assert.Equal(t, float64(3), ids[0])

	pool, err := kit.Zones.GetZoneFishIDs(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, pool)

	// The session is closed once saved.
	w = doJSON(t, srv, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTwoEditorSessionsAreIndependent(t *testing.T) {
	srv, _ := newTestServer(t)

	open := func() string {
		w := doJSON(t, srv, http.MethodPost, "/admin/api/zones/1/pool-editor", nil)
		require.Equal(t, http.StatusOK, w.Code)
		editor := decodeBody(t, w)["editor"].(map[string]interface{})
		return editor["session_id"].(string)
	}
	first := open()
	second := open()
	require.NotEqual(t, first, second)

	w := doJSON(t, srv, http.MethodPost, "/admin/api/pool-editor/"+first+"/select", map[string]interface{}{"fish_id": 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/admin/api/pool-editor/"+second, nil)
	editor := decodeBody(t, w)["editor"].(map[string]interface{})
	assert.Equal(t, float64(0), editor["selected_count"])
}

func TestFishTemplateDownload(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/admin/api/fish/template", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "fish_template.csv")
	assert.Contains(t, w.Body.String(), "name,description,rarity")
}

func TestAccessoryTemplateDownload(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/admin/api/accessories/template", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "accessory_template.csv")
	assert.Contains(t, w.Body.String(), "slot_type")
}

func TestAccessoryCSVImportEndpoint(t *testing.T) {
	srv, kit := newTestServer(t)

	var csvBuf bytes.Buffer
	require.NoError(t, export.WriteAccessoryTemplate(&csvBuf))

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "accessories.csv")
	require.NoError(t, err)
	_, err = fw.Write(csvBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/api/accessories/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Admin-Key", testKey)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	result := decodeBody(t, w)["result"].(map[string]interface{})
	assert.Equal(t, float64(1), result["imported"])

	accessories, err := kit.Templates.ListAccessories(context.Background())
	require.NoError(t, err)
	require.Len(t, accessories, 1)
	assert.Equal(t, "Lucky Pendant", accessories[0].Name)
}

func TestUserUpdateEndpoint(t *testing.T) {
	srv, kit := newTestServer(t)

	w := doJSON(t, srv, http.MethodPut, "/admin/api/users/u-1", map[string]interface{}{
		"coins": 5000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	user, err := kit.Users.GetUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), user.Coins)

	w = doJSON(t, srv, http.MethodPut, "/admin/api/users/u-1", map[string]interface{}{
		"coins": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/admin/api/users/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarketEndpoints(t *testing.T) {
	srv, kit := newTestServer(t)
	kit.Market.Put(marketListing(1, "Tuna", "fish", 100))
	kit.Market.Put(marketListing(2, "Koi", "fish", 300))
	kit.Market.Put(marketListing(3, "Bamboo Rod", "rod", 500))

	w := doJSON(t, srv, http.MethodGet, "/admin/api/market?item_type=fish", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	listings := body["listings"].([]interface{})
	assert.Len(t, listings, 2)
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["listing_count"])
	assert.Equal(t, float64(400), stats["total_value"])

	w = doJSON(t, srv, http.MethodPut, "/admin/api/market/3/price", map[string]interface{}{"price": 450})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodDelete, "/admin/api/market/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/admin/api/market", nil)
	body = decodeBody(t, w)
	assert.Len(t, body["listings"].([]interface{}), 2)
}

func TestMarketExportIncludesAllListings(t *testing.T) {
	srv, kit := newTestServer(t)
	for i := int64(1); i <= 120; i++ {
		kit.Market.Put(marketListing(i, "Tuna", "fish", 100+i))
	}

	w := doJSON(t, srv, http.MethodGet, "/admin/api/market/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	wb, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Listings")
	require.NoError(t, err)
	// Header row plus one row per listing, beyond any single page size.
	assert.Len(t, rows, 121)
}

func TestGachaPoolAdminFlow(t *testing.T) {
	srv, kit := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/admin/api/gacha", map[string]interface{}{
		"name":       "Golden Koi Banner",
		"cost_coins": 100,
	})
	require.Equal(t, http.StatusOK, w.Code)
	pool := decodeBody(t, w)["pool"].(map[string]interface{})
	assert.Equal(t, float64(1), pool["pool_id"])

	// Seeded fish 4 is the Golden Koi.
	w = doJSON(t, srv, http.MethodPost, "/admin/api/gacha/10/items", map[string]interface{}{
		"item_type": "fish", "item_id": 4, "weight": 5,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/admin/api/gacha/1/items", map[string]interface{}{
		"item_type": "fish", "item_id": 4, "weight": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	item := decodeBody(t, w)["item"].(map[string]interface{})
	assert.Equal(t, float64(1), item["pool_item_id"])

	w = doJSON(t, srv, http.MethodPost, "/admin/api/gacha/1/items", map[string]interface{}{
		"item_type": "coins", "quantity": 500, "weight": 60,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Weight quick-edit rejects non-positive values.
	w = doJSON(t, srv, http.MethodPut, "/admin/api/gacha-items/1/weight", map[string]interface{}{"weight": 0})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errsObj := decodeBody(t, w)["errors"].(map[string]interface{})
	assert.Contains(t, errsObj, "weight")

	w = doJSON(t, srv, http.MethodPut, "/admin/api/gacha-items/1/weight", map[string]interface{}{"weight": 30})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/admin/api/gacha/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["items"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Golden Koi", first["item_name"])
	assert.Equal(t, float64(30), first["weight"])
	second := items[1].(map[string]interface{})
	assert.Equal(t, "500 Coins", second["item_name"])

	w = doJSON(t, srv, http.MethodPost, "/admin/api/gacha/1/copy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	copied := decodeBody(t, w)["pool"].(map[string]interface{})
	assert.Equal(t, "Golden Koi Banner (copy)", copied["name"])
	assert.Len(t, copied["items"].([]interface{}), 2)

	w = doJSON(t, srv, http.MethodDelete, "/admin/api/gacha-items/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, srv, http.MethodDelete, "/admin/api/gacha/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, srv, http.MethodGet, "/admin/api/gacha/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// The copy survives deleting the original.
	pools, err := kit.Gacha.ListPools(context.Background())
	require.NoError(t, err)
	require.Len(t, pools, 1)
	assert.Equal(t, "Golden Koi Banner (copy)", pools[0].Name)
}

func TestMarkdownPreview(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/admin/api/preview/markdown", map[string]interface{}{
		"text": "**rare** fish",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["html"], "<strong>rare</strong>")
}

func marketListing(id int64, name, itemType string, price int64) models.MarketListing {
	return models.MarketListing{
		MarketID: id,
		UserID:   "u-1",
		ItemType: itemType,
		ItemName: name,
		Quantity: 1,
		Price:    price,
		ListedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}
