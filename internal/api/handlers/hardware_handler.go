package handlers

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/internal/api/presenters"
	"Fridgemate-Backend/pkg/item"
	"Fridgemate-Backend/pkg/upload"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	// HardwareHandler serves the fridge units: batch ingestion after a scan
	// cycle, consumption by barcode, and camera image upload.
	HardwareHandler interface {
		IngestItems(c *fiber.Ctx) error
		ConsumeItem(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
	}

	hardwareHandler struct {
		itemService   item.ItemService
		uploadService upload.UploadService
		validator     *validator.Validate
	}
)

func NewHardwareHandler(itemService item.ItemService, uploadService upload.UploadService, validator *validator.Validate) HardwareHandler {
	return &hardwareHandler{
		itemService:   itemService,
		uploadService: uploadService,
		validator:     validator,
	}
}

func (h *hardwareHandler) IngestItems(c *fiber.Ctx) error {
	req := new(domain.IngestItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngestItems, err)
	}

	if err := h.itemService.IngestItems(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngestItems, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessIngestItems)
}

func (h *hardwareHandler) ConsumeItem(c *fiber.Ctx) error {
	req := new(domain.ConsumeItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeItem, err)
	}

	if err := h.itemService.ConsumeItem(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrNoItemForBarcode) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedConsumeItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"barcode": req.Barcode}, fiber.StatusOK, domain.MessageSuccessConsumeItem)
}

func (h *hardwareHandler) UploadImage(c *fiber.Ctx) error {
	req := new(domain.UploadImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res, err := h.uploadService.UploadItemImage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}
