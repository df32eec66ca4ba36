package ui

import (
	"log"

	"reeladmin/app"
	"reeladmin/internal/config"

	"github.com/gin-gonic/gin"
)

// Server is the admin panel HTTP server.
type Server struct {
	router    *gin.Engine
	secretKey string

	zones     *app.ZoneService
	templates *app.ItemTemplateService
	users     *app.UserService
	market    *app.MarketService
	shops     *app.ShopService
	gacha     *app.GachaService
}

// NewServer creates the admin server and registers its routes.
func NewServer(
	cfg *config.Config,
	zones *app.ZoneService,
	templates *app.ItemTemplateService,
	users *app.UserService,
	market *app.MarketService,
	shops *app.ShopService,
	gacha *app.GachaService,
) *Server {
	if cfg.Admin.GinMode != "" {
		gin.SetMode(cfg.Admin.GinMode)
	}

	s := &Server{
		router:    gin.Default(),
		secretKey: cfg.Admin.SecretKey,
		zones:     zones,
		templates: templates,
		users:     users,
		market:    market,
		shops:     shops,
		gacha:     gacha,
	}
	s.setupRoutes()
	return s
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the admin server on addr, blocking until it exits.
func (s *Server) Run(addr string) error {
	log.Printf("[AdminServer] Listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := s.router.Group("/admin/api", s.requireSecretKey())

	zones := api.Group("/zones")
	{
		zones.GET("", s.handleListZones)
		zones.POST("", s.handleCreateZone)
		zones.GET("/:id", s.handleGetZone)
		zones.PUT("/:id", s.handleUpdateZone)
		zones.DELETE("/:id", s.handleDeleteZone)

		zones.POST("/:id/pool-editor", s.handleOpenPoolEditor)
	}

	editor := api.Group("/pool-editor/:session")
	{
		editor.GET("", s.handleEditorSnapshot)
		editor.POST("/select", s.handleEditorSelect)
		editor.POST("/deselect", s.handleEditorDeselect)
		editor.POST("/toggle", s.handleEditorToggle)
		editor.POST("/rarity/select", s.handleEditorSelectRarity)
		editor.POST("/rarity/deselect", s.handleEditorDeselectRarity)
		editor.POST("/filter", s.handleEditorFilter)
		editor.POST("/save", s.handleEditorSave)
		editor.DELETE("", s.handleEditorClose)
	}

	s.setupCatalogRoutes(api)

	users := api.Group("/users")
	{
		users.GET("", s.handleListUsers)
		users.POST("", s.handleCreateUser)
		users.GET("/:id", s.handleGetUser)
		users.PUT("/:id", s.handleUpdateUser)
		users.DELETE("/:id", s.handleDeleteUser)
	}

	market := api.Group("/market")
	{
		market.GET("", s.handleListMarket)
		market.GET("/export", s.handleExportMarket)
		market.PUT("/:id/price", s.handleUpdateListingPrice)
		market.DELETE("/:id", s.handleRemoveListing)
	}

	shops := api.Group("/shops")
	{
		shops.GET("", s.handleListShops)
		shops.POST("", s.handleCreateShop)
		shops.GET("/:id", s.handleGetShop)
		shops.PUT("/:id", s.handleUpdateShop)
		shops.DELETE("/:id", s.handleDeleteShop)

		shops.GET("/:id/items", s.handleListShopItems)
		shops.POST("/:id/items", s.handleCreateShopItem)
	}
	api.PUT("/shop-items/:id", s.handleUpdateShopItem)
	api.DELETE("/shop-items/:id", s.handleDeleteShopItem)

	gacha := api.Group("/gacha")
	{
		gacha.GET("", s.handleListGachaPools)
		gacha.POST("", s.handleCreateGachaPool)
		gacha.GET("/:id", s.handleGetGachaPool)
		gacha.PUT("/:id", s.handleUpdateGachaPool)
		gacha.DELETE("/:id", s.handleDeleteGachaPool)

		gacha.POST("/:id/copy", s.handleCopyGachaPool)
		gacha.POST("/:id/items", s.handleAddGachaPoolItem)
	}
	api.PUT("/gacha-items/:id", s.handleUpdateGachaPoolItem)
	api.PUT("/gacha-items/:id/weight", s.handleUpdateGachaItemWeight)
	api.DELETE("/gacha-items/:id", s.handleDeleteGachaPoolItem)

	api.POST("/preview/markdown", s.handleMarkdownPreview)
}

// requireSecretKey rejects requests without the configured admin key.
// The key is accepted from the X-Admin-Key header or a bearer token.
func (s *Server) requireSecretKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		if key == "" {
			const prefix = "Bearer "
			auth := c.GetHeader("Authorization")
			if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
				key = auth[len(prefix):]
			}
		}
		if key == "" || key != s.secretKey {
			c.AbortWithStatusJSON(401, gin.H{
				"success": false,
				"message": "invalid or missing admin key",
			})
			return
		}
		c.Next()
	}
}
