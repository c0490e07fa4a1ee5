package main

import (
	"log"

	"jobdesk/internal/config"
	"jobdesk/internal/infra/db"
	httpinfra "jobdesk/internal/infra/http"
)

func main() {
	cfg := config.Load()

	store, err := db.NewStore(cfg)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	srv := httpinfra.NewServer(cfg, store)
	log.Printf("jobdesk listening on %s", cfg.HTTPAddr)
	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
