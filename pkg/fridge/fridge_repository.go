package fridge

import (
	"Fridgemate-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FridgeRepository interface {
		GetFridgeIDByUser(ctx context.Context, userID string) (string, error)
		CreateUserMapping(ctx context.Context, mapping *entities.UserFridgeMap) error
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

func (r *fridgeRepository) GetFridgeIDByUser(ctx context.Context, userID string) (string, error) {
	var mapping entities.UserFridgeMap
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&mapping).Error; err != nil {
		return "", err
	}
	return mapping.FridgeID, nil
}

func (r *fridgeRepository) CreateUserMapping(ctx context.Context, mapping *entities.UserFridgeMap) error {
	return r.db.WithContext(ctx).Create(mapping).Error
}
