package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Murph-Dev/SimplePiBackend/config"
	"github.com/Murph-Dev/SimplePiBackend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// getOrCreateWatering returns the control row for a device, inserting the
// default row when the device has none yet. Creation is part of the
// contract: the first read of a device persists its row.
func getOrCreateWatering(db *gorm.DB, deviceID string) (*models.WateringData, error) {
	var data models.WateringData
	err := db.First(&data, "device_id = ?", deviceID).Error
	if err == nil {
		return &data, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	data = models.DefaultWateringData(deviceID)
	if err := db.Create(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

// GetWatering returns (creating if needed) the control row for a device.
func GetWatering(c *gin.Context) {
	data, err := getOrCreateWatering(config.DB, c.Param("device_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watering data"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// applyWateringUpdate copies the fields present in the payload onto the
// row. Absent fields keep their stored values.
func applyWateringUpdate(data *models.WateringData, input models.WateringDataUpdate) {
	if input.PumpActive != nil {
		data.PumpActive = *input.PumpActive
	}
	if input.LastWatering != nil {
		data.LastWatering = input.LastWatering
	}
	if input.WateringDuration != nil {
		data.WateringDuration = *input.WateringDuration
	}
	if input.AutoWatering != nil {
		data.AutoWatering = *input.AutoWatering
	}
	if input.Timestamp != nil {
		data.Timestamp = *input.Timestamp
	}
}

// UpdateWatering applies a partial update to a device's control row and
// derives the history log from pump edges:
//
//	false -> true  opens a new history entry
//	true  -> false closes the latest open entry, if any
//
// The control row and the history write commit as one transaction. The
// history log is never consulted to decide the current state; the control
// row alone is authoritative, so a falling edge with no open entry (e.g.
// after a restart mid-cycle) is a plain no-op.
func UpdateWatering(c *gin.Context) {
	var input models.WateringDataUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	deviceID := "default"
	if input.DeviceID != nil && *input.DeviceID != "" {
		deviceID = *input.DeviceID
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watering data"})
		return
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	data, err := getOrCreateWatering(tx, deviceID)
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watering data"})
		return
	}

	oldPumpActive := data.PumpActive
	applyWateringUpdate(data, input)

	now := time.Now().UTC()
	// The server stamps the update time; a timestamp in the payload does
	// not survive.
	data.Timestamp = float64(now.UnixNano()) / float64(time.Second)

	if input.PumpActive != nil && *input.PumpActive != oldPumpActive {
		if *input.PumpActive {
			entry := models.WateringHistory{
				DeviceID:         deviceID,
				WateringDuration: data.WateringDuration,
				AutoWatering:     data.AutoWatering,
				WateringStarted:  now,
			}
			if err := tx.Create(&entry).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record watering start"})
				return
			}
		} else {
			if err := closeOpenHistory(tx, deviceID, now); err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record watering end"})
				return
			}
		}
	}

	if err := tx.Save(data).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watering data"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watering data"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// closeOpenHistory stamps the end time on the device's latest open history
// entry. No open entry is not an error.
func closeOpenHistory(tx *gorm.DB, deviceID string, endedAt time.Time) error {
	var open models.WateringHistory
	err := tx.Where("device_id = ? AND watering_ended IS NULL", deviceID).
		Order("watering_started desc").
		First(&open).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	open.WateringEnded = &endedAt
	return tx.Save(&open).Error
}
