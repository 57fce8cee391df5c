package handlers

import (
	"Fridgemate-Backend/domain"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFridgeService struct {
	resolveRes   domain.FridgeMappingResponse
	resolveErr   error
	associateRes domain.FridgeMappingResponse
	associateErr error
}

func (s *stubFridgeService) Resolve(context.Context, domain.ResolveFridgeRequest) (domain.FridgeMappingResponse, error) {
	return s.resolveRes, s.resolveErr
}

func (s *stubFridgeService) Associate(context.Context, domain.AssociateFridgeRequest) (domain.FridgeMappingResponse, error) {
	return s.associateRes, s.associateErr
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T, svc *stubFridgeService) *fiber.App {
	t.Helper()
	app := fiber.New()
	handler := NewFridgeHandler(svc, validator.New())
	app.Post("/get_user_mapping", handler.Resolve)
	app.Post("/add_user_mapping", handler.Associate)
	return app
}

func doJSON(t *testing.T, app *fiber.App, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestFridgeHandler_ResolveSuccess(t *testing.T) {
	app := newTestApp(t, &stubFridgeService{
		resolveRes: domain.FridgeMappingResponse{UserID: "u1", FridgeID: "f1"},
	})

	status, env := doJSON(t, app, "/get_user_mapping", `{"user_id":"u1"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, domain.MessageSuccessResolveFridge, env.Message)

	var res domain.FridgeMappingResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "f1", res.FridgeID)
}

func TestFridgeHandler_ResolveNotAssociated(t *testing.T) {
	app := newTestApp(t, &stubFridgeService{resolveErr: domain.ErrFridgeNotAssociated})

	status, env := doJSON(t, app, "/get_user_mapping", `{"user_id":"ghost"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, domain.ErrFridgeNotAssociated.Error(), env.Error)
}

func TestFridgeHandler_ResolveMissingField(t *testing.T) {
	app := newTestApp(t, &stubFridgeService{})

	status, env := doJSON(t, app, "/get_user_mapping", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestFridgeHandler_AssociateConflict(t *testing.T) {
	app := newTestApp(t, &stubFridgeService{associateErr: domain.ErrMappingAlreadyExists})

	status, env := doJSON(t, app, "/add_user_mapping", `{"user_id":"u1","fridge_id":"f2"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.False(t, env.Success)
}

func TestFridgeHandler_AssociateCreated(t *testing.T) {
	app := newTestApp(t, &stubFridgeService{
		associateRes: domain.FridgeMappingResponse{UserID: "u1", FridgeID: "f1"},
	})

	status, env := doJSON(t, app, "/add_user_mapping", `{"user_id":"u1","fridge_id":"f1"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, env.Success)
	assert.Equal(t, domain.MessageSuccessAssociateFridge, env.Message)
}
