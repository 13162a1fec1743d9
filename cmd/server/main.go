package main

import (
	"log"

	"ajltrack/adapters/jsonstore"
	"ajltrack/adapters/sheet"
	"ajltrack/app"
	"ajltrack/internal/config"
	"ajltrack/ui"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	source := sheet.NewDataReader(cfg.WorkbookPath(), cfg.CSVPath())
	statuses := jsonstore.NewStatusStore(cfg.StatusPath())
	creds := jsonstore.NewCredentialFile(cfg.CredentialsPath())

	service := app.NewService(source, statuses, creds)
	server := ui.NewServer(cfg, service)

	addr := ":" + cfg.Server.Port
	log.Printf("[Server] listening on %s (data dir: %s)", addr, cfg.Data.Dir)
	if err := server.Run(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
