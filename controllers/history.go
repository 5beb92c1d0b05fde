package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Murph-Dev/SimplePiBackend/config"
	"github.com/Murph-Dev/SimplePiBackend/models"

	"github.com/gin-gonic/gin"
)

// ListWateringHistory returns history entries ordered by start time
// descending, optionally filtered to one device. Unbounded unless ?limit
// is given.
func ListWateringHistory(c *gin.Context) {
	query := config.DB.Order("watering_started desc")
	if deviceID := c.Query("device_id"); deviceID != "" {
		query = query.Where("device_id = ?", deviceID)
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			query = query.Limit(n)
		}
	}

	entries := []models.WateringHistory{}
	if err := query.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watering history"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateWateringHistory inserts an entry directly. This path does not run
// the pump-edge logic, so callers can create a second open entry for a
// device; the PUT /watering flow only ever closes the latest one.
func CreateWateringHistory(c *gin.Context) {
	var input models.WateringHistoryCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if input.DeviceID == nil || *input.DeviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: device_id"})
		return
	}
	if input.WateringStarted == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: watering_started"})
		return
	}

	entry := models.WateringHistory{
		DeviceID:        *input.DeviceID,
		WateringStarted: *input.WateringStarted,
		WateringEnded:   input.WateringEnded,
		CreatedAt:       time.Now().UTC(),
	}
	if input.WateringDuration != nil {
		entry.WateringDuration = *input.WateringDuration
	}
	if input.AutoWatering != nil {
		entry.AutoWatering = *input.AutoWatering
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store watering history"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetWateringHistory returns a single history entry by id.
func GetWateringHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watering history not found"})
		return
	}

	var entry models.WateringHistory
	if err := config.DB.First(&entry, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watering history not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateWateringHistory applies a partial update to a history entry,
// bypassing the pump-edge logic.
func UpdateWateringHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watering history not found"})
		return
	}

	var entry models.WateringHistory
	if err := config.DB.First(&entry, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watering history not found"})
		return
	}

	var input models.WateringHistoryUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.DeviceID != nil {
		entry.DeviceID = *input.DeviceID
	}
	if input.WateringDuration != nil {
		entry.WateringDuration = *input.WateringDuration
	}
	if input.AutoWatering != nil {
		entry.AutoWatering = *input.AutoWatering
	}
	if input.WateringStarted != nil {
		entry.WateringStarted = *input.WateringStarted
	}
	if input.WateringEnded != nil {
		entry.WateringEnded = input.WateringEnded
	}

	if err := config.DB.Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watering history"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteWateringHistory removes a history entry by id.
func DeleteWateringHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watering history not found"})
		return
	}

	var entry models.WateringHistory
	if err := config.DB.First(&entry, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watering history not found"})
		return
	}
	if err := config.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete watering history"})
		return
	}
	c.Status(http.StatusNoContent)
}
