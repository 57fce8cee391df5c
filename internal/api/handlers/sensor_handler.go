package handlers

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/internal/api/presenters"
	"Fridgemate-Backend/pkg/sensor"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SensorHandler interface {
		RecordEnvironment(c *fiber.Ctx) error
		RecordDoorState(c *fiber.Ctx) error
		GetEnvironment(c *fiber.Ctx) error
		GetDoorState(c *fiber.Ctx) error
	}

	sensorHandler struct {
		sensorService sensor.SensorService
		validator     *validator.Validate
	}
)

func NewSensorHandler(sensorService sensor.SensorService, validator *validator.Validate) SensorHandler {
	return &sensorHandler{
		sensorService: sensorService,
		validator:     validator,
	}
}

func (h *sensorHandler) RecordEnvironment(c *fiber.Ctx) error {
	req := new(domain.RecordEnvironmentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordEnvironment, err)
	}

	if err := h.sensorService.RecordEnvironment(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordEnvironment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRecordEnvironment)
}

func (h *sensorHandler) RecordDoorState(c *fiber.Ctx) error {
	req := new(domain.RecordDoorStateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordDoorState, err)
	}

	if err := h.sensorService.RecordDoorState(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordDoorState, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRecordDoorState)
}

func (h *sensorHandler) GetEnvironment(c *fiber.Ctx) error {
	req := new(domain.GetSensorDataRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEnvironment, err)
	}

	res, err := h.sensorService.GetEnvironment(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotAssociated) || errors.Is(err, domain.ErrNoEnvironmentData) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetEnvironment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEnvironment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEnvironment)
}

func (h *sensorHandler) GetDoorState(c *fiber.Ctx) error {
	req := new(domain.GetSensorDataRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDoorState, err)
	}

	res, err := h.sensorService.GetDoorState(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotAssociated) || errors.Is(err, domain.ErrNoDoorState) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetDoorState, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDoorState, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDoorState)
}
