package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"medihome/backend/config"
	"medihome/backend/routes"
	"medihome/backend/utils"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, or every pooled connection gets its own :memory: db.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, utils.Migrate(db))

	cfg := &config.Config{JWTSecret: "testsecret"}
	app := fiber.New()
	routes.SetupRoutes(app, db, cfg)
	return app, db
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func registerUser(t *testing.T, app *fiber.App, name, email, role string) string {
	t.Helper()

	resp := request(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result struct {
		Token string `json:"token"`
	}
	decode(t, resp, &result)
	require.NotEmpty(t, result.Token)
	return result.Token
}
