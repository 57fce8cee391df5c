package domain

import "errors"

var (
	MessageSuccessLabelItem   = "item labeled successfully"
	MessageSuccessRelabelItem = "item relabeled successfully"

	MessageFailedLabelItem   = "failed to label item"
	MessageFailedRelabelItem = "failed to relabel item"

	ErrItemAlreadyLabeled = errors.New("item with specified UUID is already labeled")
	ErrItemNotLabeled     = errors.New("item with specified UUID is not labeled")
	ErrBarcodeConflict    = errors.New("barcode already has a saved name for this fridge")
)

type (
	LabelItemPayload struct {
		UUID           string `json:"uuid" validate:"required,uuid"`
		Name           string `json:"name" validate:"required"`
		ExpirationDate string `json:"expiration_date" validate:"required"`
	}

	LabelItemRequest struct {
		UserID string           `json:"user_id" validate:"required"`
		Item   LabelItemPayload `json:"item" validate:"required"`
	}

	RelabelItemRequest struct {
		UserID string           `json:"user_id" validate:"required"`
		Item   LabelItemPayload `json:"item" validate:"required"`
	}
)
