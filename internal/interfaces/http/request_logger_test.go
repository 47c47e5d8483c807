package http

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_RegistraMetodoRutaEstadoYDuracion(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestLogger(zerolog.New(&buf)))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	logged := buf.String()
	assert.Contains(t, logged, `"method":"GET"`)
	assert.Contains(t, logged, `"path":"/ping"`)
	assert.Contains(t, logged, `"status":200`)
	assert.Contains(t, logged, `"duration"`)
	assert.Contains(t, logged, `"message":"request"`)
}

func TestRequestLogger_RegistraEstadoDeError(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestLogger(zerolog.New(&buf)))
	app.Get("/roto", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"code": "CONFLICT"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/roto", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, buf.String(), `"status":409`)
}
