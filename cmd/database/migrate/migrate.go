package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"fridgetofeast/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		log.Fatalf("Error migrating inventory item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingItem{}); err != nil {
		log.Fatalf("Error migrating shopping item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptScan{}); err != nil {
		log.Fatalf("Error migrating receipt scan database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
