package entities

// SavedBarcode is a fridge's learned memory of what a barcode means. At most
// one name per (fridge_id, barcode); re-saving an already mapped barcode is a
// conflict, not an overwrite.
type SavedBarcode struct {
	FridgeID string `gorm:"primary_key" json:"fridge_id"`
	Barcode  string `gorm:"primary_key" json:"barcode"`
	Name     string `gorm:"not null" json:"name"`

	Timestamp
}
