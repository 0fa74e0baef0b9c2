package initializers

import (
	"log"

	"github.com/ytayachi/magasin-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Delivery{},
		&models.Reclamation{},
	)
	if err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}
