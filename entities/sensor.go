package entities

// EnvironmentReading holds the latest temperature/humidity reported by a
// fridge's sensor unit. One row per fridge, upserted, no history.
type EnvironmentReading struct {
	FridgeID    string  `gorm:"primary_key" json:"fridge_id"`
	Temperature float64 `gorm:"not null" json:"temperature"`
	Humidity    float64 `gorm:"not null" json:"humidity"`

	Timestamp
}

// DoorState holds the latest open/closed state of a fridge door.
type DoorState struct {
	FridgeID string `gorm:"primary_key" json:"fridge_id"`
	Open     bool   `gorm:"not null" json:"open"`

	Timestamp
}
