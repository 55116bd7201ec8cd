package migration

import (
	"FitnessPro-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NutritionLog{}); err != nil {
		log.Fatalf("Error migrating nutrition log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FitnessPlan{}); err != nil {
		log.Fatalf("Error migrating fitness plan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Workout{}); err != nil {
		log.Fatalf("Error migrating workout database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Exercise{}); err != nil {
		log.Fatalf("Error migrating exercise database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Subscription{}); err != nil {
		log.Fatalf("Error migrating subscription database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
