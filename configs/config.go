package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the CLI's startup settings.
type Config struct {
	SeedDemoData bool
}

// LoadConfig reads a .env file when present, then the environment.
// SEED_DEMO_DATA controls whether the catalog starts with the three
// sample books; anything but "0" or "false" enables it.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	seed := true
	if val := os.Getenv("SEED_DEMO_DATA"); val == "0" || val == "false" {
		seed = false
	}

	return Config{SeedDemoData: seed}
}
