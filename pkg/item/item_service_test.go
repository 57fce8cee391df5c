package item

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/entities"
	"context"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Fridgemate-Backend/pkg/fridge"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.UserFridgeMap{},
		&entities.Item{},
		&entities.SavedBarcode{},
	))
	return db
}

type fakeS3 struct{}

func (fakeS3) UploadFile(string, *multipart.FileHeader, string, ...string) (string, error) {
	return "", nil
}

func (fakeS3) UploadBytes(objectKey string, _ []byte, _ string) (string, error) {
	return objectKey, nil
}

func (fakeS3) DeleteFile(string) error { return nil }

func (fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://fridgemate-images.s3.us-east-2.amazonaws.com/" + objectKey
}

func (fakeS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://fridgemate-images.s3.us-east-2.amazonaws.com/")
}

func newTestService(t *testing.T) (ItemService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewItemService(NewItemRepository(db), fridge.NewFridgeRepository(db), fakeS3{}), db
}

func associate(t *testing.T, db *gorm.DB, userID, fridgeID string) {
	t.Helper()
	require.NoError(t, db.Create(&entities.UserFridgeMap{UserID: userID, FridgeID: fridgeID}).Error)
}

func strptr(s string) *string { return &s }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("01/02/2006", s)
	require.NoError(t, err)
	return d
}

func TestItemService_AddManualItemAndGetInventory(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	associate(t, db, "u1", "f1")

	added, err := svc.AddManualItem(ctx, domain.AddItemRequest{
		UserID: "u1",
		Item:   domain.ManualItem{Name: "Milk", ExpirationDate: "12/31/2020"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Milk", added.Name)
	assert.Equal(t, "12/31/2020", added.ExpirationDate)

	inv, err := svc.GetInventory(ctx, domain.GetInventoryRequest{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, inv.LabeledItems, 1)
	assert.Empty(t, inv.UnlabeledItems)
	assert.Equal(t, "Milk", inv.LabeledItems[0].Name)
	assert.Equal(t, "12/31/2020", inv.LabeledItems[0].ExpirationDate)
	assert.Equal(t, added.UUID, inv.LabeledItems[0].UUID)
}

func TestItemService_AddManualItemErrors(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	_, err := svc.AddManualItem(ctx, domain.AddItemRequest{
		UserID: "nobody",
		Item:   domain.ManualItem{Name: "Milk", ExpirationDate: "12/31/2020"},
	})
	assert.ErrorIs(t, err, domain.ErrFridgeNotAssociated)

	associate(t, db, "u1", "f1")
	_, err = svc.AddManualItem(ctx, domain.AddItemRequest{
		UserID: "u1",
		Item:   domain.ManualItem{Name: "Milk", ExpirationDate: "2020-12-31"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
}

func TestItemService_GetInventoryPartitionsByLabel(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	associate(t, db, "u1", "f1")

	labeled := &entities.Item{
		UUID: uuid.New(), FridgeID: "f1",
		ExpirationDate: date(t, "01/15/2024"),
		Name:           strptr("Cheese"),
	}
	unlabeled := &entities.Item{
		UUID: uuid.New(), FridgeID: "f1",
		ExpirationDate: date(t, "02/01/2024"),
		Barcode:        strptr("123"),
		ImageURL:       strptr("https://example.com/img.jpg"),
	}
	require.NoError(t, db.Create(labeled).Error)
	require.NoError(t, db.Create(unlabeled).Error)

	inv, err := svc.GetInventory(ctx, domain.GetInventoryRequest{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, inv.LabeledItems, 1)
	require.Len(t, inv.UnlabeledItems, 1)
	assert.Equal(t, "Cheese", inv.LabeledItems[0].Name)
	assert.Equal(t, "123", *inv.UnlabeledItems[0].Barcode)
	assert.Equal(t, "02/01/2024", inv.UnlabeledItems[0].ExpirationDate)
}

func TestItemService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	associate(t, db, "u1", "f1")

	target := &entities.Item{UUID: uuid.New(), FridgeID: "f1", ExpirationDate: date(t, "03/01/2024"), Name: strptr("Milk")}
	require.NoError(t, db.Create(target).Error)

	err := svc.RemoveItem(ctx, domain.DeleteItemRequest{UserID: "u1", Item: domain.ItemRef{UUID: target.UUID.String()}})
	require.NoError(t, err)

	err = svc.RemoveItem(ctx, domain.DeleteItemRequest{UserID: "u1", Item: domain.ItemRef{UUID: target.UUID.String()}})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemService_RemoveItemScopedToOwnFridge(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	associate(t, db, "u1", "f1")
	associate(t, db, "u2", "f2")

	foreign := &entities.Item{UUID: uuid.New(), FridgeID: "f2", ExpirationDate: date(t, "03/01/2024"), Name: strptr("Juice")}
	require.NoError(t, db.Create(foreign).Error)

	err := svc.RemoveItem(ctx, domain.DeleteItemRequest{UserID: "u1", Item: domain.ItemRef{UUID: foreign.UUID.String()}})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	var count int64
	require.NoError(t, db.Model(&entities.Item{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestItemService_ConsumeItemDeletesOldestExpiring(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	older := &entities.Item{UUID: uuid.New(), FridgeID: "f1", ExpirationDate: date(t, "01/01/2024"), Barcode: strptr("B")}
	newer := &entities.Item{UUID: uuid.New(), FridgeID: "f1", ExpirationDate: date(t, "06/01/2024"), Barcode: strptr("B")}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	err := svc.ConsumeItem(ctx, domain.ConsumeItemRequest{FridgeID: "f1", Barcode: "B"})
	require.NoError(t, err)

	var remaining []*entities.Item
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, newer.UUID, remaining[0].UUID)
}

func TestItemService_ConsumeItemNoMatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	err := svc.ConsumeItem(ctx, domain.ConsumeItemRequest{FridgeID: "f1", Barcode: "missing"})
	assert.ErrorIs(t, err, domain.ErrNoItemForBarcode)
}

func TestItemService_IngestItemsPreLabelsFromMemory(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	require.NoError(t, db.Create(&entities.SavedBarcode{FridgeID: "f1", Barcode: "known", Name: "Milk"}).Error)

	err := svc.IngestItems(ctx, domain.IngestItemsRequest{
		FridgeID: "f1",
		Items: []domain.IngestItem{
			{Barcode: "known", ImageKey: "img-1", ExpirationDate: "01/01/2024"},
			{Barcode: "unknown", ImageKey: "img-2", ExpirationDate: "01/01/2024"},
		},
	})
	require.NoError(t, err)

	var items []*entities.Item
	require.NoError(t, db.Order("barcode asc").Find(&items).Error)
	require.Len(t, items, 2)

	known, unknown := items[0], items[1]
	require.NotNil(t, known.Name)
	assert.Equal(t, "Milk", *known.Name)
	assert.Nil(t, unknown.Name)

	require.NotNil(t, known.ImageURL)
	assert.Equal(t, "https://fridgemate-images.s3.us-east-2.amazonaws.com/img-1.jpg", *known.ImageURL)
}
