package models

import "time"

// WateringHistory is one entry in the append-mostly watering log. A null
// WateringEnded marks an in-progress cycle.
type WateringHistory struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	DeviceID         string     `json:"device_id" gorm:"size:50;index"`
	WateringDuration int        `json:"watering_duration"`
	AutoWatering     bool       `json:"auto_watering"`
	WateringStarted  time.Time  `json:"watering_started"`
	WateringEnded    *time.Time `json:"watering_ended"`
	CreatedAt        time.Time  `json:"created_at"`
}

// WateringHistoryCreate is the payload for direct history creation.
type WateringHistoryCreate struct {
	DeviceID         *string    `json:"device_id"`
	WateringDuration *int       `json:"watering_duration"`
	AutoWatering     *bool      `json:"auto_watering"`
	WateringStarted  *time.Time `json:"watering_started"`
	WateringEnded    *time.Time `json:"watering_ended"`
}

// WateringHistoryUpdate carries a partial update; nil fields are left untouched.
type WateringHistoryUpdate struct {
	DeviceID         *string    `json:"device_id"`
	WateringDuration *int       `json:"watering_duration"`
	AutoWatering     *bool      `json:"auto_watering"`
	WateringStarted  *time.Time `json:"watering_started"`
	WateringEnded    *time.Time `json:"watering_ended"`
}
