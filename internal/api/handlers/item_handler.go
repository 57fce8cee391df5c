package handlers

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/internal/api/presenters"
	"Fridgemate-Backend/pkg/item"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ItemHandler interface {
		GetInventory(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	itemHandler struct {
		itemService item.ItemService
		validator   *validator.Validate
	}
)

func NewItemHandler(itemService item.ItemService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		itemService: itemService,
		validator:   validator,
	}
}

func (h *itemHandler) GetInventory(c *fiber.Ctx) error {
	req := new(domain.GetInventoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetInventory, err)
	}

	res, err := h.itemService.GetInventory(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotAssociated) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetInventory, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetInventory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventory)
}

func (h *itemHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.itemService.AddManualItem(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotAssociated) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItem)
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	req := new(domain.DeleteItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	if err := h.itemService.RemoveItem(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrFridgeNotAssociated) || errors.Is(err, domain.ErrItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"uuid": req.Item.UUID}, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}
