// Seed client: fills a running server with realistic dummy readings and a
// couple of watering cycles so the dashboard has something to show.
//
//	go run ./scripts/seed -url http://localhost:8080 -count 50
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"
)

var devices = []string{"autogrow_esp32", "arduino_001", "balcony_pi"}

func post(baseURL, path string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

func put(baseURL, path string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPut, baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the API server")
	count := flag.Int("count", 50, "number of sensor readings to create")
	flag.Parse()

	for i := 0; i < *count; i++ {
		device := devices[rand.Intn(len(devices))]
		reading := map[string]any{
			"temperature": 18.0 + rand.Float64()*12.0,
			"humidity":    40.0 + rand.Float64()*40.0,
			"lux":         rand.Float64() * 2000.0,
			"pumpActive":  false,
			"timestamp":   time.Now().Add(-time.Duration(*count-i) * time.Minute).Unix(),
			"device_id":   device,
		}
		if err := post(*baseURL, "/api/v1/sensor-data", reading); err != nil {
			log.Fatalf("seeding sensor data: %v", err)
		}
	}
	log.Printf("created %d sensor readings", *count)

	// A full watering cycle per device so the history table is populated
	for _, device := range devices {
		start := map[string]any{"device_id": device, "pump_active": true, "watering_duration": 30}
		if err := put(*baseURL, "/api/v1/watering", start); err != nil {
			log.Fatalf("starting watering for %s: %v", device, err)
		}
		time.Sleep(time.Second)
		stop := map[string]any{"device_id": device, "pump_active": false}
		if err := put(*baseURL, "/api/v1/watering", stop); err != nil {
			log.Fatalf("stopping watering for %s: %v", device, err)
		}
		log.Printf("watering cycle recorded for %s", device)
	}
}
