package entities

// UserFridgeMap assigns a fridge to a user. Inserted once on first
// association and never updated, so a user can only ever have one fridge.
type UserFridgeMap struct {
	UserID   string `gorm:"primary_key" json:"user_id"`
	FridgeID string `gorm:"not null" json:"fridge_id"`

	Timestamp
}
