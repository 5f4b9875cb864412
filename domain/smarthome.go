package domain

// Sensor kinds exposed by the backend.
const (
	SensorTemperature = "temperature"
	SensorHumidity    = "humidity"
)

// Placeholder readings shown when a sensor cannot be read.
const (
	SensorUnknown     = "N/A"
	SensorUnavailable = "Unavailable"
)

// RoomClimate holds the last successfully fetched readings for one room.
// Values are display strings straight from the backend; there is no
// freshness tracking beyond last-fetch-wins.
type RoomClimate struct {
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
}
