package sensor

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/entities"
	"Fridgemate-Backend/pkg/fridge"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	SensorService interface {
		RecordEnvironment(ctx context.Context, req domain.RecordEnvironmentRequest) error
		RecordDoorState(ctx context.Context, req domain.RecordDoorStateRequest) error
		GetEnvironment(ctx context.Context, req domain.GetSensorDataRequest) (domain.EnvironmentResponse, error)
		GetDoorState(ctx context.Context, req domain.GetSensorDataRequest) (domain.DoorStateResponse, error)
	}

	sensorService struct {
		sensorRepository SensorRepository
		fridgeRepository fridge.FridgeRepository
	}
)

func NewSensorService(sensorRepository SensorRepository, fridgeRepository fridge.FridgeRepository) SensorService {
	return &sensorService{
		sensorRepository: sensorRepository,
		fridgeRepository: fridgeRepository,
	}
}

func (s *sensorService) resolveFridge(ctx context.Context, userID string) (string, error) {
	fridgeID, err := s.fridgeRepository.GetFridgeIDByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrFridgeNotAssociated
		}
		return "", err
	}
	return fridgeID, nil
}

func (s *sensorService) RecordEnvironment(ctx context.Context, req domain.RecordEnvironmentRequest) error {
	return s.sensorRepository.UpsertEnvironment(ctx, &entities.EnvironmentReading{
		FridgeID:    req.FridgeID,
		Temperature: *req.Temperature,
		Humidity:    *req.Humidity,
	})
}

func (s *sensorService) RecordDoorState(ctx context.Context, req domain.RecordDoorStateRequest) error {
	return s.sensorRepository.UpsertDoorState(ctx, &entities.DoorState{
		FridgeID: req.FridgeID,
		Open:     *req.Open,
	})
}

func (s *sensorService) GetEnvironment(ctx context.Context, req domain.GetSensorDataRequest) (domain.EnvironmentResponse, error) {
	fridgeID, err := s.resolveFridge(ctx, req.UserID)
	if err != nil {
		return domain.EnvironmentResponse{}, err
	}

	reading, err := s.sensorRepository.GetEnvironment(ctx, fridgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EnvironmentResponse{}, domain.ErrNoEnvironmentData
		}
		return domain.EnvironmentResponse{}, err
	}

	return domain.EnvironmentResponse{
		Temperature: reading.Temperature,
		Humidity:    reading.Humidity,
	}, nil
}

func (s *sensorService) GetDoorState(ctx context.Context, req domain.GetSensorDataRequest) (domain.DoorStateResponse, error) {
	fridgeID, err := s.resolveFridge(ctx, req.UserID)
	if err != nil {
		return domain.DoorStateResponse{}, err
	}

	state, err := s.sensorRepository.GetDoorState(ctx, fridgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DoorStateResponse{}, domain.ErrNoDoorState
		}
		return domain.DoorStateResponse{}, err
	}

	return domain.DoorStateResponse{Open: state.Open}, nil
}
