package sensor

import (
	"Fridgemate-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	SensorRepository interface {
		UpsertEnvironment(ctx context.Context, reading *entities.EnvironmentReading) error
		GetEnvironment(ctx context.Context, fridgeID string) (*entities.EnvironmentReading, error)
		UpsertDoorState(ctx context.Context, state *entities.DoorState) error
		GetDoorState(ctx context.Context, fridgeID string) (*entities.DoorState, error)
	}

	sensorRepository struct {
		db *gorm.DB
	}
)

func NewSensorRepository(db *gorm.DB) SensorRepository {
	return &sensorRepository{db: db}
}

func (r *sensorRepository) UpsertEnvironment(ctx context.Context, reading *entities.EnvironmentReading) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fridge_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"temperature", "humidity", "updated_at"}),
	}).Create(reading).Error
}

func (r *sensorRepository) GetEnvironment(ctx context.Context, fridgeID string) (*entities.EnvironmentReading, error) {
	var reading entities.EnvironmentReading
	if err := r.db.WithContext(ctx).Where("fridge_id = ?", fridgeID).First(&reading).Error; err != nil {
		return nil, err
	}
	return &reading, nil
}

func (r *sensorRepository) UpsertDoorState(ctx context.Context, state *entities.DoorState) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fridge_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "updated_at"}),
	}).Create(state).Error
}

func (r *sensorRepository) GetDoorState(ctx context.Context, fridgeID string) (*entities.DoorState, error) {
	var state entities.DoorState
	if err := r.db.WithContext(ctx).Where("fridge_id = ?", fridgeID).First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}
