package main

import (
	"fmt"
	"log"
	"os"

	"github.com/andesco/studio-gateway/handlers"
	"github.com/andesco/studio-gateway/pkg/config"

	"github.com/akamensky/argparse"
	"golang.org/x/term"
)

func main() {
	parser := argparse.NewParser("studio-gateway", "Front-end gateway for the studio backend")

	cfg := config.FromEnv(os.LookupEnv)

	port := parser.String("p", "port", &argparse.Options{
		Required: false,
		Help:     "Port the webserver will listen on. Default: $PORT or 8080",
	})
	backendURL := parser.String("b", "backend", &argparse.Options{
		Required: false,
		Help:     "Backend origin proxy routes forward to. Default: $BACKEND_URL",
	})
	configPath := parser.String("c", "config", &argparse.Options{
		Required: false,
		Default:  os.Getenv("CONFIG"),
		Help:     "Path to a YAML config file. Default: $CONFIG",
	})
	prefork := parser.Flag("P", "prefork", &argparse.Options{
		Required: false,
		Help:     "Spawn multiple processes listening on the same port",
	})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	cfg, err = config.LoadFile(*configPath, cfg)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *backendURL != "" {
		cfg.BackendURL = *backendURL
	}
	if *prefork {
		cfg.Prefork = true
	}
	cfg.Quiet = !term.IsTerminal(int(os.Stdout.Fd()))

	if cfg.BackendURL == "" {
		log.Printf("WARN: BACKEND_URL not set, forwarding to fallback %s", cfg.FallbackBackendURL)
	}
	log.Printf("INFO: forwarding proxy routes to %s", cfg.Origin())

	app := handlers.NewApp(cfg)
	log.Fatal(app.Listen(":" + cfg.Port))
}
