package controllers

import (
	"github.com/Murph-Dev/SimplePiBackend/config"
	"github.com/Murph-Dev/SimplePiBackend/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) {
	config.DB = db
	db.AutoMigrate(&models.SensorData{}, &models.WateringData{}, &models.WateringHistory{})
}
