package controllers

import (
	"net/http"
	"testing"

	"github.com/Murph-Dev/SimplePiBackend/config"
	"github.com/Murph-Dev/SimplePiBackend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyFor(t *testing.T, device string) []models.WateringHistory {
	t.Helper()
	var entries []models.WateringHistory
	require.NoError(t, config.DB.Where("device_id = ?", device).
		Order("watering_started desc").Find(&entries).Error)
	return entries
}

func TestGetWateringCreatesDefaultOnce(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/watering/plant_a", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeBody[models.WateringData](t, w)
	assert.Equal(t, "plant_a", first.DeviceID)
	assert.False(t, first.PumpActive)
	assert.Equal(t, 30, first.WateringDuration)
	assert.True(t, first.AutoWatering)
	assert.Nil(t, first.LastWatering)

	w = doRequest(t, r, http.MethodGet, "/api/v1/watering/plant_a", nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := decodeBody[models.WateringData](t, w)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, config.DB.Model(&models.WateringData{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWateringCycleRecordsHistory(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/v1/watering", gin.H{
		"device_id":         "plant_a",
		"pump_active":       true,
		"watering_duration": 45,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody[models.WateringData](t, w)
	assert.True(t, updated.PumpActive)
	assert.Equal(t, 45, updated.WateringDuration)

	entries := historyFor(t, "plant_a")
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].WateringEnded)
	assert.Equal(t, 45, entries[0].WateringDuration)
	assert.True(t, entries[0].AutoWatering)

	w = doRequest(t, r, http.MethodPut, "/api/v1/watering", gin.H{
		"device_id":   "plant_a",
		"pump_active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	entries = historyFor(t, "plant_a")
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].WateringEnded)
	assert.False(t, entries[0].WateringStarted.After(*entries[0].WateringEnded))
}

func TestWateringSameStateIsNoEdge(t *testing.T) {
	r := setupRouter(t)

	for i := 0; i < 2; i++ {
		w := doRequest(t, r, http.MethodPut, "/api/v1/watering", gin.H{
			"device_id":   "plant_a",
			"pump_active": true,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	// Only the first call is a rising edge
	assert.Len(t, historyFor(t, "plant_a"), 1)
}

func TestWateringFallingEdgeWithoutOpenEntry(t *testing.T) {
	r := setupRouter(t)

	// Control row says the pump is on, but no open history entry exists
	// (e.g. the server restarted mid-cycle).
	row := models.DefaultWateringData("plant_a")
	row.PumpActive = true
	require.NoError(t, config.DB.Create(&row).Error)

	w := doRequest(t, r, http.MethodPut, "/api/v1/watering", gin.H{
		"device_id":   "plant_a",
		"pump_active": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody[models.WateringData](t, w)
	assert.False(t, updated.PumpActive)

	assert.Empty(t, historyFor(t, "plant_a"))
}

func TestWateringFallingEdgeClosesLatestOpenEntry(t *testing.T) {
	r := setupRouter(t)

	// Two open entries created through the direct history endpoint; the
	// edge logic must close the one with the latest start time.
	older := doRequest(t, r, http.MethodPost, "/api/v1/watering-history", gin.H{
		"device_id":        "plant_a",
		"watering_started": "2024-01-15T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, older.Code)
	newer := doRequest(t, r, http.MethodPost, "/api/v1/watering-history", gin.H{
		"device_id":        "plant_a",
		"watering_started": "2024-01-15T11:00:00Z",
	})
	require.Equal(t, http.StatusCreated, newer.Code)

	row := models.DefaultWateringData("plant_a")
	row.PumpActive = true
	require.NoError(t, config.DB.Create(&row).Error)

	w := doRequest(t, r, http.MethodPut, "/api/v1/watering", gin.H{
		"device_id":   "plant_a",
		"pump_active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	entries := historyFor(t, "plant_a")
	require.Len(t, entries, 2)
	assert.NotNil(t, entries[0].WateringEnded)
	assert.Nil(t, entries[1].WateringEnded)
}

func TestWateringPartialUpdateKeepsOtherFields(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/watering/plant_a", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPut, "/api/v1/watering", gin.H{
		"device_id":         "plant_a",
		"watering_duration": 45,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[models.WateringData](t, w)
	assert.Equal(t, 45, updated.WateringDuration)
	assert.False(t, updated.PumpActive)
	assert.True(t, updated.AutoWatering)

	assert.Empty(t, historyFor(t, "plant_a"))
}

func TestWateringDefaultDevice(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/v1/watering", gin.H{
		"auto_watering": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[models.WateringData](t, w)
	assert.Equal(t, "default", updated.DeviceID)
	assert.False(t, updated.AutoWatering)
}
