package entities

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single thing sitting in a fridge. An item is labeled when Name
// is non-nil and unlabeled when it is nil. Barcode and ImageURL stay nil for
// items added manually from the phone.
type Item struct {
	UUID           uuid.UUID `gorm:"type:uuid;primary_key" json:"uuid"`
	FridgeID       string    `gorm:"index;not null" json:"fridge_id"`
	ExpirationDate time.Time `gorm:"type:date;not null" json:"expiration_date"`
	Barcode        *string   `json:"barcode,omitempty"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Name           *string   `json:"name,omitempty"`

	Timestamp
}

func (i *Item) Labeled() bool {
	return i.Name != nil
}
