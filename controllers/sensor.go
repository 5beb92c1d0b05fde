package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Murph-Dev/SimplePiBackend/config"
	"github.com/Murph-Dev/SimplePiBackend/models"

	"github.com/gin-gonic/gin"
)

const defaultSensorLimit = 100

// toSensorData translates the firmware payload field names into a table
// row. Translation happens here at the boundary so the stored model never
// carries the wire names.
func toSensorData(payload models.ArduinoSensorData, deviceID *string) models.SensorData {
	return models.SensorData{
		Temperature:     *payload.Temperature,
		Humidity:        *payload.Humidity,
		Lux:             *payload.Lux,
		PumpActive:      *payload.PumpActive,
		Timestamp:       *payload.Timestamp,
		DeviceID:        deviceID,
		FirmwareVersion: payload.FirmwareVersion,
		SensorType:      payload.SensorType,
	}
}

// missingSensorField returns the name of the first required field absent
// from the payload, or "" when the payload is complete.
func missingSensorField(payload models.ArduinoSensorData) string {
	switch {
	case payload.Temperature == nil:
		return "temperature"
	case payload.Humidity == nil:
		return "humidity"
	case payload.Lux == nil:
		return "lux"
	case payload.PumpActive == nil:
		return "pumpActive"
	case payload.Timestamp == nil:
		return "timestamp"
	}
	return ""
}

// CreateSensorData stores one reading posted by a device.
func CreateSensorData(c *gin.Context) {
	var payload models.ArduinoSensorData
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if field := missingSensorField(payload); field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: " + field})
		return
	}

	// Device id from the payload, falling back to the header older
	// firmware sends.
	deviceID := payload.DeviceID
	if deviceID == nil || *deviceID == "" {
		if header := c.GetHeader("X-Device-ID"); header != "" {
			deviceID = &header
		}
	}

	data := toSensorData(payload, deviceID)
	data.CreatedAt = time.Now().UTC()
	if err := config.DB.Create(&data).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store sensor data"})
		return
	}

	c.JSON(http.StatusCreated, data)
}

// ListSensorData returns readings newest first, capped by ?limit (default 100).
func ListSensorData(c *gin.Context) {
	limit := defaultSensorLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	query := config.DB.Order("created_at desc, id desc").Limit(limit)
	if deviceID := c.Query("device_id"); deviceID != "" {
		query = query.Where("device_id = ?", deviceID)
	}

	records := []models.SensorData{}
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sensor data"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetSensorData returns a single reading by id.
func GetSensorData(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sensor data not found"})
		return
	}

	var record models.SensorData
	if err := config.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sensor data not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateSensorData applies a partial update to a reading. Absent fields
// keep their stored values.
func UpdateSensorData(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sensor data not found"})
		return
	}

	var record models.SensorData
	if err := config.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sensor data not found"})
		return
	}

	var input models.SensorDataUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.Temperature != nil {
		record.Temperature = *input.Temperature
	}
	if input.Humidity != nil {
		record.Humidity = *input.Humidity
	}
	if input.Lux != nil {
		record.Lux = *input.Lux
	}
	if input.PumpActive != nil {
		record.PumpActive = *input.PumpActive
	}
	if input.Timestamp != nil {
		record.Timestamp = *input.Timestamp
	}
	if input.DeviceID != nil {
		record.DeviceID = input.DeviceID
	}
	if input.FirmwareVersion != nil {
		record.FirmwareVersion = input.FirmwareVersion
	}
	if input.SensorType != nil {
		record.SensorType = input.SensorType
	}

	if err := config.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sensor data"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteSensorData removes a reading by id.
func DeleteSensorData(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sensor data not found"})
		return
	}

	var record models.SensorData
	if err := config.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sensor data not found"})
		return
	}
	if err := config.DB.Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sensor data"})
		return
	}
	c.Status(http.StatusNoContent)
}
