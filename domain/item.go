package domain

import "errors"

var (
	MessageSuccessGetInventory = "inventory retrieved successfully"
	MessageSuccessAddItem      = "item added successfully"
	MessageSuccessDeleteItem   = "item deleted successfully"
	MessageSuccessIngestItems  = "items added successfully"
	MessageSuccessConsumeItem  = "item consumed successfully"

	MessageFailedGetInventory = "failed to retrieve inventory"
	MessageFailedAddItem      = "failed to add item"
	MessageFailedDeleteItem   = "failed to delete item"
	MessageFailedIngestItems  = "failed to add items"
	MessageFailedConsumeItem  = "failed to consume item"

	ErrItemNotFound          = errors.New("item with specified UUID does not exist")
	ErrNoItemForBarcode      = errors.New("no item found for the specified fridge and barcode")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
)

type (
	GetInventoryRequest struct {
		UserID string `json:"user_id" validate:"required"`
	}

	LabeledItemResponse struct {
		UUID           string `json:"uuid"`
		ExpirationDate string `json:"expiration_date"`
		Name           string `json:"name"`
	}

	UnlabeledItemResponse struct {
		UUID           string  `json:"uuid"`
		ExpirationDate string  `json:"expiration_date"`
		Barcode        *string `json:"barcode"`
		ImageURL       *string `json:"image_url"`
	}

	InventoryResponse struct {
		LabeledItems   []LabeledItemResponse   `json:"labeled_items"`
		UnlabeledItems []UnlabeledItemResponse `json:"unlabeled_items"`
	}

	ManualItem struct {
		Name           string `json:"name" validate:"required"`
		ExpirationDate string `json:"expiration_date" validate:"required"`
	}

	AddItemRequest struct {
		UserID string     `json:"user_id" validate:"required"`
		Item   ManualItem `json:"item" validate:"required"`
	}

	ItemResponse struct {
		UUID           string `json:"uuid"`
		Name           string `json:"name"`
		ExpirationDate string `json:"expiration_date"`
	}

	ItemRef struct {
		UUID string `json:"uuid" validate:"required,uuid"`
	}

	DeleteItemRequest struct {
		UserID string  `json:"user_id" validate:"required"`
		Item   ItemRef `json:"item" validate:"required"`
	}

	// IngestItem is one item reported by the hardware unit after a scan.
	// ImageKey carries the object-store key of the photo taken in the fridge,
	// not a full URL.
	IngestItem struct {
		Barcode        string `json:"barcode" validate:"required"`
		ImageKey       string `json:"image_url" validate:"required"`
		ExpirationDate string `json:"expiration_date" validate:"required"`
	}

	IngestItemsRequest struct {
		FridgeID string       `json:"fridge_id" validate:"required"`
		Items    []IngestItem `json:"items" validate:"required,dive"`
	}

	ConsumeItemRequest struct {
		FridgeID string `json:"fridge_id" validate:"required"`
		Barcode  string `json:"barcode" validate:"required"`
	}
)
