package models

import "time"

// WateringData is the control row for one device's pump. One row per
// device_id; it is the single source of the current pump state.
type WateringData struct {
	DeviceID         string     `json:"device_id" gorm:"primaryKey;size:50"`
	PumpActive       bool       `json:"pump_active" gorm:"default:false"`
	LastWatering     *time.Time `json:"last_watering"`
	WateringDuration int        `json:"watering_duration" gorm:"default:30"`
	AutoWatering     bool       `json:"auto_watering" gorm:"default:true"`
	Timestamp        float64    `json:"timestamp"`
}

// WateringDataUpdate carries a partial update; nil fields are left untouched.
type WateringDataUpdate struct {
	PumpActive       *bool      `json:"pump_active"`
	LastWatering     *time.Time `json:"last_watering"`
	WateringDuration *int       `json:"watering_duration"`
	AutoWatering     *bool      `json:"auto_watering"`
	DeviceID         *string    `json:"device_id"`
	Timestamp        *float64   `json:"timestamp"`
}

// DefaultWateringData returns the row created on first read of a device
// that has no control row yet.
func DefaultWateringData(deviceID string) WateringData {
	return WateringData{
		DeviceID:         deviceID,
		PumpActive:       false,
		WateringDuration: 30,
		AutoWatering:     true,
		Timestamp:        float64(time.Now().UTC().UnixNano()) / float64(time.Second),
	}
}
