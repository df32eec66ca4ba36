package container

import (
	"fmt"
	"log"

	"reeladmin/adapters/postgres"
	"reeladmin/app"
	"reeladmin/internal/config"
	"reeladmin/internal/pooleditor"
	"reeladmin/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	TemplateRepo ports.ItemTemplateRepository
	ZoneRepo     ports.ZoneRepository
	UserRepo     ports.UserRepository
	MarketRepo   ports.MarketRepository
	ShopRepo     ports.ShopRepository
	GachaRepo    ports.GachaRepository

	// Live pool editor sessions
	EditorRegistry *pooleditor.Registry

	// Services
	ZoneService     *app.ZoneService
	TemplateService *app.ItemTemplateService
	UserService     *app.UserService
	MarketService   *app.MarketService
	ShopService     *app.ShopService
	GachaService    *app.GachaService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// InitWithDatabase initializes components that require database access
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	c.DB = db

	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.TemplateRepo = postgres.NewItemTemplateRepository(db)
	c.ZoneRepo = postgres.NewZoneRepository(db)
	c.UserRepo = postgres.NewUserRepository(db)
	c.MarketRepo = postgres.NewMarketRepository(db)
	c.ShopRepo = postgres.NewShopRepository(db)
	c.GachaRepo = postgres.NewGachaRepository(db)

	c.EditorRegistry = pooleditor.NewRegistry(c.Config.Editor.SessionTTL)

	c.ZoneService = app.NewZoneService(c.ZoneRepo, c.TemplateRepo, c.EditorRegistry)
	c.TemplateService = app.NewItemTemplateService(c.TemplateRepo)
	c.UserService = app.NewUserService(c.UserRepo, c.ZoneRepo)
	c.MarketService = app.NewMarketService(c.MarketRepo)
	c.ShopService = app.NewShopService(c.ShopRepo)
	c.GachaService = app.NewGachaService(c.GachaRepo, c.TemplateRepo)

	log.Printf("Container initialized successfully with database connection")
	return nil
}

// Shutdown releases container resources.
func (c *Container) Shutdown() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	}
}
