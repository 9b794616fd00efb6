package budget

import (
	"log"

	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "budget"); err != nil {
		log.Fatal("Failed to ensure schema budget: ", err)
	}

	if err := db.DB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatal("Failed to enable uuid-ossp extension:", err)
	}

	if err := db.DB.AutoMigrate(&Session{}, &Adjustment{}); err != nil {
		log.Fatal("Failed to auto-migrate budget tables: ", err)
	}
}
