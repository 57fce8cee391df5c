package domain

import "errors"

var (
	MessageSuccessRecordEnvironment = "environment reading recorded successfully"
	MessageSuccessRecordDoorState   = "door state recorded successfully"
	MessageSuccessGetEnvironment    = "environment reading retrieved successfully"
	MessageSuccessGetDoorState      = "door state retrieved successfully"

	MessageFailedRecordEnvironment = "failed to record environment reading"
	MessageFailedRecordDoorState   = "failed to record door state"
	MessageFailedGetEnvironment    = "failed to retrieve environment reading"
	MessageFailedGetDoorState      = "failed to retrieve door state"

	ErrNoEnvironmentData = errors.New("no environment reading for fridge")
	ErrNoDoorState       = errors.New("no door state for fridge")
)

type (
	// Temperature and humidity are pointers so zero readings still pass
	// required validation.
	RecordEnvironmentRequest struct {
		FridgeID    string   `json:"fridge_id" validate:"required"`
		Temperature *float64 `json:"temperature" validate:"required"`
		Humidity    *float64 `json:"humidity" validate:"required"`
	}

	RecordDoorStateRequest struct {
		FridgeID string `json:"fridge_id" validate:"required"`
		Open     *bool  `json:"open" validate:"required"`
	}

	GetSensorDataRequest struct {
		UserID string `json:"user_id" validate:"required"`
	}

	EnvironmentResponse struct {
		Temperature float64 `json:"temperature"`
		Humidity    float64 `json:"humidity"`
	}

	DoorStateResponse struct {
		Open bool `json:"open"`
	}
)
