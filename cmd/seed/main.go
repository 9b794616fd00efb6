package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/coalition"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/coalition/seeds"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
)

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()
	coalition.Init()

	if err := seeds.SeedProfiles(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
