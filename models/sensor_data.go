package models

import "time"

// SensorData is one reading reported by a garden device.
type SensorData struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Temperature     float64   `json:"temperature"`
	Humidity        float64   `json:"humidity"`
	Lux             float64   `json:"lux"`
	PumpActive      bool      `json:"pump_active"`
	Timestamp       int64     `json:"timestamp"`
	DeviceID        *string   `json:"device_id" gorm:"size:50;index"`
	FirmwareVersion *string   `json:"firmware_version" gorm:"size:20"`
	SensorType      *string   `json:"sensor_type" gorm:"size:50"`
	CreatedAt       time.Time `json:"created_at"`
}

// ArduinoSensorData is the payload shape the firmware sends. Field names
// follow the sketch (pumpActive), not the table columns.
type ArduinoSensorData struct {
	Temperature     *float64 `json:"temperature"`
	Humidity        *float64 `json:"humidity"`
	Lux             *float64 `json:"lux"`
	PumpActive      *bool    `json:"pumpActive"`
	Timestamp       *int64   `json:"timestamp"`
	DeviceID        *string  `json:"device_id"`
	FirmwareVersion *string  `json:"firmware_version"`
	SensorType      *string  `json:"sensor_type"`
}

// SensorDataUpdate carries a partial update; nil fields are left untouched.
type SensorDataUpdate struct {
	Temperature     *float64 `json:"temperature"`
	Humidity        *float64 `json:"humidity"`
	Lux             *float64 `json:"lux"`
	PumpActive      *bool    `json:"pump_active"`
	Timestamp       *int64   `json:"timestamp"`
	DeviceID        *string  `json:"device_id"`
	FirmwareVersion *string  `json:"firmware_version"`
	SensorType      *string  `json:"sensor_type"`
}
