package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ravindraogg/DUHACKS/internal/config"
	"github.com/ravindraogg/DUHACKS/internal/database"
	"github.com/ravindraogg/DUHACKS/internal/insight"
	"github.com/ravindraogg/DUHACKS/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure data directory exists
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// AI insights client (best effort; requests fail individually if the
	// endpoint is down or unconfigured)
	insights := insight.NewClient(cfg.AI)

	// setup router
	r := router.SetupRouter(cfg, db, insights)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
