package item

import (
	"Fridgemate-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ItemRepository interface {
		CreateItem(ctx context.Context, item *entities.Item) error
		CreateItems(ctx context.Context, items []*entities.Item) error
		GetItemByUUID(ctx context.Context, uuid string) (*entities.Item, error)
		GetLabeledItems(ctx context.Context, fridgeID string) ([]*entities.Item, error)
		GetUnlabeledItems(ctx context.Context, fridgeID string) ([]*entities.Item, error)
		DeleteItemByUUID(ctx context.Context, fridgeID, uuid string) (int64, error)
		GetOldestItemByBarcode(ctx context.Context, fridgeID, barcode string) (*entities.Item, error)

		// Barcode memory
		GetSavedName(ctx context.Context, fridgeID, barcode string) (string, error)
		GetSavedNames(ctx context.Context, fridgeID string) (map[string]string, error)
		LabelItem(ctx context.Context, item *entities.Item, name string, expirationDate time.Time) error
		RelabelItem(ctx context.Context, item *entities.Item, name string, expirationDate time.Time) error
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) CreateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) CreateItems(ctx context.Context, items []*entities.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *itemRepository) GetItemByUUID(ctx context.Context, uuid string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetLabeledItems(ctx context.Context, fridgeID string) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ? AND name IS NOT NULL", fridgeID).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetUnlabeledItems(ctx context.Context, fridgeID string) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ? AND name IS NULL", fridgeID).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) DeleteItemByUUID(ctx context.Context, fridgeID, uuid string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("uuid = ? AND fridge_id = ?", uuid, fridgeID).
		Delete(&entities.Item{})
	return res.RowsAffected, res.Error
}

// GetOldestItemByBarcode returns the item with the earliest expiration date
// among those matching fridge+barcode. Ties break on uuid so consuming
// inventory stays deterministic.
func (r *itemRepository) GetOldestItemByBarcode(ctx context.Context, fridgeID, barcode string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ? AND barcode = ?", fridgeID, barcode).
		Order("expiration_date asc, uuid asc").
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetSavedName(ctx context.Context, fridgeID, barcode string) (string, error) {
	var saved entities.SavedBarcode
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ? AND barcode = ?", fridgeID, barcode).
		First(&saved).Error; err != nil {
		return "", err
	}
	return saved.Name, nil
}

func (r *itemRepository) GetSavedNames(ctx context.Context, fridgeID string) (map[string]string, error) {
	var saved []*entities.SavedBarcode
	if err := r.db.WithContext(ctx).Where("fridge_id = ?", fridgeID).Find(&saved).Error; err != nil {
		return nil, err
	}

	names := make(map[string]string, len(saved))
	for _, s := range saved {
		names[s.Barcode] = s.Name
	}
	return names, nil
}

// LabelItem writes the name and expiration date onto the target item and, if
// the item carries a barcode, records the barcode in the fridge's memory and
// pushes the name onto every sibling item with the same barcode. All row
// changes commit together or not at all.
func (r *itemRepository) LabelItem(ctx context.Context, item *entities.Item, name string, expirationDate time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Item{}).
			Where("uuid = ?", item.UUID).
			Updates(map[string]interface{}{"name": name, "expiration_date": expirationDate}).Error; err != nil {
			return err
		}

		if item.Barcode == nil {
			return nil
		}

		saved := &entities.SavedBarcode{
			FridgeID: item.FridgeID,
			Barcode:  *item.Barcode,
			Name:     name,
		}
		if err := tx.Create(saved).Error; err != nil {
			return err
		}

		return tx.Model(&entities.Item{}).
			Where("fridge_id = ? AND barcode = ?", item.FridgeID, *item.Barcode).
			Update("name", name).Error
	})
}

// RelabelItem updates an already labeled item and, if it carries a barcode,
// overwrites the fridge's saved name for that barcode and re-propagates the
// new name to all sibling items, atomically.
func (r *itemRepository) RelabelItem(ctx context.Context, item *entities.Item, name string, expirationDate time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Item{}).
			Where("uuid = ?", item.UUID).
			Updates(map[string]interface{}{"name": name, "expiration_date": expirationDate}).Error; err != nil {
			return err
		}

		if item.Barcode == nil {
			return nil
		}

		saved := &entities.SavedBarcode{
			FridgeID: item.FridgeID,
			Barcode:  *item.Barcode,
			Name:     name,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fridge_id"}, {Name: "barcode"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
		}).Create(saved).Error; err != nil {
			return err
		}

		return tx.Model(&entities.Item{}).
			Where("fridge_id = ? AND barcode = ?", item.FridgeID, *item.Barcode).
			Update("name", name).Error
	})
}
