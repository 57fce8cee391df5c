package domain

import "errors"

var (
	MessageSuccessResolveFridge   = "fridge mapping retrieved successfully"
	MessageSuccessAssociateFridge = "fridge associated successfully"

	MessageFailedResolveFridge   = "failed to retrieve fridge mapping"
	MessageFailedAssociateFridge = "failed to associate fridge"

	ErrFridgeNotAssociated  = errors.New("user does not have a fridge associated")
	ErrMappingAlreadyExists = errors.New("mapping for user already exists")
)

type (
	ResolveFridgeRequest struct {
		UserID string `json:"user_id" validate:"required"`
	}

	AssociateFridgeRequest struct {
		UserID   string `json:"user_id" validate:"required"`
		FridgeID string `json:"fridge_id" validate:"required"`
	}

	FridgeMappingResponse struct {
		UserID   string `json:"user_id"`
		FridgeID string `json:"fridge_id"`
	}
)
