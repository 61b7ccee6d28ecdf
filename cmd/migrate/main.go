package main

import (
	"finledger/internal/config" // Configuration
	"finledger/internal/db"     // Database migration
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run schema migration
}
