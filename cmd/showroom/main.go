package main

import (
	"fmt"
	"os"

	"furniture-lab/domain/furniture"
	"furniture-lab/internal"
	"furniture-lab/repositories"
	"furniture-lab/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so
// every defer (like the database close) executes before main decides
// the exit code.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Showroom wiring
	repository := repositories.NewDemonstrationRepository(db, log)
	showroom := services.NewShowroomService(log, repository)

	// 4. Walk the closed variant set, one demonstration per factory
	for _, variant := range furniture.Variants() {
		printHeader(config.Colours, fmt.Sprintf("====== %s furniture ======", variant))

		demonstration, err := showroom.Demonstrate(services.DemonstrateRequest{
			Variant: string(variant),
		})
		if err != nil {
			return fmt.Errorf("demonstrating %s: %w", variant, err)
		}

		fmt.Println(demonstration.SleepLine)
		fmt.Println(demonstration.SitLine)
		fmt.Println()
	}
	return nil
}

func printHeader(colours bool, header string) {
	if colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)
}
