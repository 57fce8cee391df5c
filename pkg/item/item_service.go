package item

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/entities"
	"Fridgemate-Backend/internal/utils"
	"Fridgemate-Backend/internal/utils/storage"
	"Fridgemate-Backend/pkg/fridge"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ItemService interface {
		GetInventory(ctx context.Context, req domain.GetInventoryRequest) (domain.InventoryResponse, error)
		AddManualItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error)
		RemoveItem(ctx context.Context, req domain.DeleteItemRequest) error
		IngestItems(ctx context.Context, req domain.IngestItemsRequest) error
		ConsumeItem(ctx context.Context, req domain.ConsumeItemRequest) error
	}

	itemService struct {
		itemRepository   ItemRepository
		fridgeRepository fridge.FridgeRepository
		s3               storage.AwsS3
	}
)

func NewItemService(itemRepository ItemRepository, fridgeRepository fridge.FridgeRepository, s3 storage.AwsS3) ItemService {
	return &itemService{
		itemRepository:   itemRepository,
		fridgeRepository: fridgeRepository,
		s3:               s3,
	}
}

func (s *itemService) resolveFridge(ctx context.Context, userID string) (string, error) {
	fridgeID, err := s.fridgeRepository.GetFridgeIDByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrFridgeNotAssociated
		}
		return "", err
	}
	return fridgeID, nil
}

func (s *itemService) GetInventory(ctx context.Context, req domain.GetInventoryRequest) (domain.InventoryResponse, error) {
	fridgeID, err := s.resolveFridge(ctx, req.UserID)
	if err != nil {
		return domain.InventoryResponse{}, err
	}

	labeled, err := s.itemRepository.GetLabeledItems(ctx, fridgeID)
	if err != nil {
		return domain.InventoryResponse{}, err
	}

	unlabeled, err := s.itemRepository.GetUnlabeledItems(ctx, fridgeID)
	if err != nil {
		return domain.InventoryResponse{}, err
	}

	res := domain.InventoryResponse{
		LabeledItems:   make([]domain.LabeledItemResponse, 0, len(labeled)),
		UnlabeledItems: make([]domain.UnlabeledItemResponse, 0, len(unlabeled)),
	}
	for _, it := range labeled {
		res.LabeledItems = append(res.LabeledItems, domain.LabeledItemResponse{
			UUID:           it.UUID.String(),
			ExpirationDate: utils.FormatClientDate(it.ExpirationDate),
			Name:           *it.Name,
		})
	}
	for _, it := range unlabeled {
		res.UnlabeledItems = append(res.UnlabeledItems, domain.UnlabeledItemResponse{
			UUID:           it.UUID.String(),
			ExpirationDate: utils.FormatClientDate(it.ExpirationDate),
			Barcode:        it.Barcode,
			ImageURL:       it.ImageURL,
		})
	}

	return res, nil
}

// AddManualItem creates an item entered from the phone. Manual items are
// labeled from the start and never carry a barcode or photo.
func (s *itemService) AddManualItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error) {
	fridgeID, err := s.resolveFridge(ctx, req.UserID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	expirationDate, err := utils.ParseClientDate(req.Item.ExpirationDate)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidExpirationDate
	}

	name := req.Item.Name
	newItem := &entities.Item{
		UUID:           uuid.New(),
		FridgeID:       fridgeID,
		ExpirationDate: expirationDate,
		Name:           &name,
	}
	if err := s.itemRepository.CreateItem(ctx, newItem); err != nil {
		return domain.ItemResponse{}, err
	}

	return domain.ItemResponse{
		UUID:           newItem.UUID.String(),
		Name:           name,
		ExpirationDate: utils.FormatClientDate(expirationDate),
	}, nil
}

// RemoveItem deletes an item by uuid, scoped to the caller's fridge so one
// user cannot delete another fridge's items.
func (s *itemService) RemoveItem(ctx context.Context, req domain.DeleteItemRequest) error {
	fridgeID, err := s.resolveFridge(ctx, req.UserID)
	if err != nil {
		return err
	}

	rows, err := s.itemRepository.DeleteItemByUUID(ctx, fridgeID, req.Item.UUID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// IngestItems stores a batch of items reported by the hardware unit. Items
// whose barcode already has a saved name for the fridge are labeled on the
// way in; unknown barcodes stay unlabeled. Ingestion never fails on an
// unknown barcode.
func (s *itemService) IngestItems(ctx context.Context, req domain.IngestItemsRequest) error {
	savedNames, err := s.itemRepository.GetSavedNames(ctx, req.FridgeID)
	if err != nil {
		return err
	}

	items := make([]*entities.Item, 0, len(req.Items))
	for _, in := range req.Items {
		expirationDate, err := utils.ParseClientDate(in.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidExpirationDate
		}

		barcode := in.Barcode
		imageURL := s.s3.GetPublicLinkKey(fmt.Sprintf("%s.jpg", in.ImageKey))
		newItem := &entities.Item{
			UUID:           uuid.New(),
			FridgeID:       req.FridgeID,
			ExpirationDate: expirationDate,
			Barcode:        &barcode,
			ImageURL:       &imageURL,
		}
		if name, ok := savedNames[barcode]; ok {
			n := name
			newItem.Name = &n
		}
		items = append(items, newItem)
	}

	return s.itemRepository.CreateItems(ctx, items)
}

// ConsumeItem removes the oldest-expiring item matching fridge+barcode,
// deleting exactly one row.
func (s *itemService) ConsumeItem(ctx context.Context, req domain.ConsumeItemRequest) error {
	oldest, err := s.itemRepository.GetOldestItemByBarcode(ctx, req.FridgeID, req.Barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNoItemForBarcode
		}
		return err
	}

	rows, err := s.itemRepository.DeleteItemByUUID(ctx, req.FridgeID, oldest.UUID.String())
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNoItemForBarcode
	}
	return nil
}
