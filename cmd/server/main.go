package main

import (
	"log"

	"github.com/sodiqit/signceremony.git/internal/server/config"
	"github.com/sodiqit/signceremony.git/internal/server/infra/http"
)

func main() {
	cfg := config.ParseConfig()

	if err := http.RunServer(cfg); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
