package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerUser(t, app, "Ana", "ana@example.com", "patient")
	assert.NotEmpty(t, token)

	// Duplicate email
	resp := request(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Login
	resp = request(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	decode(t, resp, &result)
	assert.NotEmpty(t, result["token"])
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "patient", user["role"])

	// Wrong password
	resp = request(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "ana@example.com",
		"password": "wrongpass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name":     "A",
		"email":    "a@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = request(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = request(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secret123",
		"role":     "admin",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMe(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "Luis", "luis@example.com", "therapist")

	resp := request(t, app, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		User struct {
			Name string `json:"name"`
			Role string `json:"role"`
		} `json:"user"`
	}
	decode(t, resp, &result)
	assert.Equal(t, "Luis", result.User.Name)
	assert.Equal(t, "therapist", result.User.Role)

	resp = request(t, app, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
