package label

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/internal/utils"
	"Fridgemate-Backend/pkg/fridge"
	"Fridgemate-Backend/pkg/item"
	"context"
	"errors"

	"gorm.io/gorm"
)

// LabelService keeps item records consistent with the fridge's barcode
// memory: within a fridge, every item sharing a barcode carries the same name
// once any one of them has been labeled.
type (
	LabelService interface {
		LabelItem(ctx context.Context, req domain.LabelItemRequest) (domain.ItemResponse, error)
		RelabelItem(ctx context.Context, req domain.RelabelItemRequest) (domain.ItemResponse, error)
	}

	labelService struct {
		itemRepository   item.ItemRepository
		fridgeRepository fridge.FridgeRepository
	}
)

func NewLabelService(itemRepository item.ItemRepository, fridgeRepository fridge.FridgeRepository) LabelService {
	return &labelService{
		itemRepository:   itemRepository,
		fridgeRepository: fridgeRepository,
	}
}

func (s *labelService) resolveFridge(ctx context.Context, userID string) (string, error) {
	fridgeID, err := s.fridgeRepository.GetFridgeIDByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrFridgeNotAssociated
		}
		return "", err
	}
	return fridgeID, nil
}

// LabelItem names an unlabeled item. If the item carries a barcode the name
// is learned into the fridge's barcode memory and propagated to every sibling
// item with that barcode; a barcode that already has a saved name is a
// conflict and nothing is written.
func (s *labelService) LabelItem(ctx context.Context, req domain.LabelItemRequest) (domain.ItemResponse, error) {
	fridgeID, err := s.resolveFridge(ctx, req.UserID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	target, err := s.itemRepository.GetItemByUUID(ctx, req.Item.UUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}
	if target.FridgeID != fridgeID {
		return domain.ItemResponse{}, domain.ErrItemNotFound
	}
	if target.Labeled() {
		return domain.ItemResponse{}, domain.ErrItemAlreadyLabeled
	}

	expirationDate, err := utils.ParseClientDate(req.Item.ExpirationDate)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidExpirationDate
	}

	if target.Barcode != nil {
		_, err := s.itemRepository.GetSavedName(ctx, fridgeID, *target.Barcode)
		if err == nil {
			return domain.ItemResponse{}, domain.ErrBarcodeConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, err
		}
	}

	if err := s.itemRepository.LabelItem(ctx, target, req.Item.Name, expirationDate); err != nil {
		return domain.ItemResponse{}, err
	}

	return domain.ItemResponse{
		UUID:           req.Item.UUID,
		Name:           req.Item.Name,
		ExpirationDate: req.Item.ExpirationDate,
	}, nil
}

// RelabelItem renames an already labeled item. The fridge's saved name for
// the item's barcode is overwritten and the new name re-propagated to all
// sibling items, so the barcode memory never goes stale after a correction.
func (s *labelService) RelabelItem(ctx context.Context, req domain.RelabelItemRequest) (domain.ItemResponse, error) {
	fridgeID, err := s.resolveFridge(ctx, req.UserID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	target, err := s.itemRepository.GetItemByUUID(ctx, req.Item.UUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}
	if target.FridgeID != fridgeID {
		return domain.ItemResponse{}, domain.ErrItemNotFound
	}
	if !target.Labeled() {
		return domain.ItemResponse{}, domain.ErrItemNotLabeled
	}

	expirationDate, err := utils.ParseClientDate(req.Item.ExpirationDate)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidExpirationDate
	}

	if err := s.itemRepository.RelabelItem(ctx, target, req.Item.Name, expirationDate); err != nil {
		return domain.ItemResponse{}, err
	}

	return domain.ItemResponse{
		UUID:           req.Item.UUID,
		Name:           req.Item.Name,
		ExpirationDate: req.Item.ExpirationDate,
	}, nil
}
