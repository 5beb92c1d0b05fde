package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API. The versioned prefix is the current
// surface; /api/health stays for firmware still probing the old path.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/api/health", Health)

	api := r.Group("/api/v1")
	api.GET("/health", Health)

	api.POST("/sensor-data", CreateSensorData)
	api.GET("/sensor-data", ListSensorData)
	api.GET("/sensor-data/:id", GetSensorData)
	api.PUT("/sensor-data/:id", UpdateSensorData)
	api.DELETE("/sensor-data/:id", DeleteSensorData)

	api.GET("/watering/:device_id", GetWatering)
	api.PUT("/watering", UpdateWatering)

	api.GET("/watering-history", ListWateringHistory)
	api.POST("/watering-history", CreateWateringHistory)
	api.GET("/watering-history/:id", GetWateringHistory)
	api.PUT("/watering-history/:id", UpdateWateringHistory)
	api.DELETE("/watering-history/:id", DeleteWateringHistory)
}
