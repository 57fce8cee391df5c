package fridge

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	FridgeService interface {
		Resolve(ctx context.Context, req domain.ResolveFridgeRequest) (domain.FridgeMappingResponse, error)
		Associate(ctx context.Context, req domain.AssociateFridgeRequest) (domain.FridgeMappingResponse, error)
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
	}
)

func NewFridgeService(fridgeRepository FridgeRepository) FridgeService {
	return &fridgeService{fridgeRepository: fridgeRepository}
}

func (s *fridgeService) Resolve(ctx context.Context, req domain.ResolveFridgeRequest) (domain.FridgeMappingResponse, error) {
	fridgeID, err := s.fridgeRepository.GetFridgeIDByUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeMappingResponse{}, domain.ErrFridgeNotAssociated
		}
		return domain.FridgeMappingResponse{}, err
	}

	return domain.FridgeMappingResponse{
		UserID:   req.UserID,
		FridgeID: fridgeID,
	}, nil
}

// Associate inserts the mapping only if the user has none yet. An existing
// mapping is reported as a conflict and never overwritten.
func (s *fridgeService) Associate(ctx context.Context, req domain.AssociateFridgeRequest) (domain.FridgeMappingResponse, error) {
	_, err := s.fridgeRepository.GetFridgeIDByUser(ctx, req.UserID)
	if err == nil {
		return domain.FridgeMappingResponse{}, domain.ErrMappingAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FridgeMappingResponse{}, err
	}

	mapping := &entities.UserFridgeMap{
		UserID:   req.UserID,
		FridgeID: req.FridgeID,
	}
	if err := s.fridgeRepository.CreateUserMapping(ctx, mapping); err != nil {
		return domain.FridgeMappingResponse{}, err
	}

	return domain.FridgeMappingResponse{
		UserID:   req.UserID,
		FridgeID: req.FridgeID,
	}, nil
}
