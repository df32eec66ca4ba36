package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"reeladmin/internal/api"
	"reeladmin/internal/config"
	"reeladmin/internal/container"
	"reeladmin/internal/errors"
	"reeladmin/internal/migration"
	"reeladmin/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

// initDatabase connects to PostgreSQL and brings the schema up to date.
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database migration failed")
	}
	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	appContainer, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown()

	if err := appContainer.InitWithDatabase(db); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	adminServer := ui.NewServer(
		cfg,
		appContainer.ZoneService,
		appContainer.TemplateService,
		appContainer.UserService,
		appContainer.MarketService,
		appContainer.ShopService,
		appContainer.GachaService,
	)
	gameServer := api.NewGameServer(
		appContainer.ZoneService,
		appContainer.UserService,
		appContainer.ShopService,
	)

	stop := make(chan struct{})
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs
		close(stop)
	}()

	// Expire abandoned pool editor sessions in the background.
	appContainer.EditorRegistry.StartSweeper(cfg.Editor.SweepInterval, stop)

	var g errgroup.Group
	g.Go(func() error {
		return adminServer.Run(":" + cfg.Admin.Port)
	})
	g.Go(func() error {
		return gameServer.ListenAndServe(":" + cfg.Game.Port)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
