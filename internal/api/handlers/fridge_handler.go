package handlers

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/internal/api/presenters"
	"Fridgemate-Backend/pkg/fridge"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FridgeHandler interface {
		Resolve(c *fiber.Ctx) error
		Associate(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService fridge.FridgeService
		validator     *validator.Validate
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService, validator *validator.Validate) FridgeHandler {
	return &fridgeHandler{
		fridgeService: fridgeService,
		validator:     validator,
	}
}

func (h *fridgeHandler) Resolve(c *fiber.Ctx) error {
	req := new(domain.ResolveFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveFridge, err)
	}

	res, err := h.fridgeService.Resolve(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotAssociated) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedResolveFridge, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveFridge)
}

func (h *fridgeHandler) Associate(c *fiber.Ctx) error {
	req := new(domain.AssociateFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssociateFridge, err)
	}

	res, err := h.fridgeService.Associate(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrMappingAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedAssociateFridge, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssociateFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAssociateFridge)
}
