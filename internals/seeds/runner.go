package seeds

import (
	"log"

	"gorm.io/gorm"

	catalog "relationnel_backend/internals/seeds/catalog"
)

func RunAllSeeds(db *gorm.DB) {
	if err := catalog.SeedCatalogFromJSON(db, "internals/seeds/catalog/data_catalog.json"); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}
	log.Println("✅ Database seeded successfully!")
}
