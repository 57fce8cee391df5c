package handlers

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/internal/api/presenters"
	"Fridgemate-Backend/pkg/label"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LabelHandler interface {
		LabelItem(c *fiber.Ctx) error
		RelabelItem(c *fiber.Ctx) error
	}

	labelHandler struct {
		labelService label.LabelService
		validator    *validator.Validate
	}
)

func NewLabelHandler(labelService label.LabelService, validator *validator.Validate) LabelHandler {
	return &labelHandler{
		labelService: labelService,
		validator:    validator,
	}
}

func (h *labelHandler) LabelItem(c *fiber.Ctx) error {
	req := new(domain.LabelItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLabelItem, err)
	}

	res, err := h.labelService.LabelItem(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFridgeNotAssociated), errors.Is(err, domain.ErrItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedLabelItem, err)
		case errors.Is(err, domain.ErrItemAlreadyLabeled), errors.Is(err, domain.ErrBarcodeConflict):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedLabelItem, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLabelItem, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLabelItem)
}

func (h *labelHandler) RelabelItem(c *fiber.Ctx) error {
	req := new(domain.RelabelItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRelabelItem, err)
	}

	res, err := h.labelService.RelabelItem(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFridgeNotAssociated), errors.Is(err, domain.ErrItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRelabelItem, err)
		case errors.Is(err, domain.ErrItemNotLabeled):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedRelabelItem, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRelabelItem, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRelabelItem)
}
