package main

import (
	"github.com/Lmsantos89/boat-manager-app/internal/config" // Custom import path (Config)
	"github.com/Lmsantos89/boat-manager-app/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Apply the schema
}
