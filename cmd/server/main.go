package main

import (
	"errors"
	"io/fs"
	"log"
	"net/http"

	"github.com/soyticz12/HRIS/internal/config"
	"github.com/soyticz12/HRIS/internal/serverapp"
)

func main() {
	cfg, err := config.Load("hris_config.yml")
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("load config: %v", err)
		}
		cfg = config.Default()
	}
	cfg = config.FromEnv(cfg)

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("listening on http://localhost%s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
