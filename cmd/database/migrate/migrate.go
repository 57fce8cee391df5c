package migration

import (
	"Fridgemate-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.UserFridgeMap{}); err != nil {
		log.Fatalf("Error migrating user fridge map database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		log.Fatalf("Error migrating item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SavedBarcode{}); err != nil {
		log.Fatalf("Error migrating saved barcode database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.EnvironmentReading{}); err != nil {
		log.Fatalf("Error migrating environment reading database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DoorState{}); err != nil {
		log.Fatalf("Error migrating door state database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
