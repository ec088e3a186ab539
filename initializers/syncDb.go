package initializers

import (
	"log"

	"github.com/paatispantry/pantry-api/models"
	"gorm.io/gorm"
)

func SyncDatabase() {
	if err := DB.AutoMigrate(&models.Product{}, &models.Customer{}, &models.Order{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database synced successfully.")

	if err := SeedProducts(DB); err != nil {
		log.Println("Failed to seed default products:", err)
	}
}

// SeedProducts inserts the default catalog once, when the products table
// is still empty.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Product{
		{Name: "Organic Health Mix", Price: 299, Image: "product.jpg", Description: "Premium organic health mix"},
		{Name: "Organic Snacks Pack 1", Price: 199, Image: "product 1.jpg", Description: "Delicious organic snacks"},
		{Name: "Organic Snacks Pack 2", Price: 249, Image: "product 2.jpg", Description: "Premium organic snacks"},
	}

	if err := db.Create(&defaults).Error; err != nil {
		return err
	}
	log.Println("Default products inserted")
	return nil
}
