// cmd/toast/main.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"toast/internal/config"
	"toast/internal/random"
	"toast/internal/services/simulator"
)

func main() {
	log.SetPrefix("[Main] ")
	log.SetFlags(log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal: failed to load configuration: %v", err)
	}

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		log.Fatalf("Fatal: failed to seed random source: %v", err)
	}

	out := io.Discard
	if cfg.Verbose {
		out = os.Stderr
		log.Printf("Configuration loaded: Trials=%d, Seed=%d", cfg.Trials, seed)
	}

	sim := simulator.New(random.New(seed), simulator.WithLogger(log.New(out, "", log.LstdFlags)))
	report := sim.Run(cfg.Trials)

	fmt.Println(report.Line())
}
