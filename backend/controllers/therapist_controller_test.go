package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medihome/backend/models"
)

func TestTherapistMine(t *testing.T) {
	app, _ := newTestApp(t)
	therapist := registerUser(t, app, "Luis", "luis@example.com", "therapist")
	other := registerUser(t, app, "Marta", "marta@example.com", "therapist")

	createRoutine(t, app, therapist, map[string]interface{}{
		"name": "Cadera — Movilidad",
		"days": []map[string]interface{}{{"name": "Círculos de cadera"}},
	})
	createRoutine(t, app, other, map[string]interface{}{
		"name": "Codo — Extensión",
		"days": []map[string]interface{}{{"name": "Extensión asistida"}},
	})

	resp := request(t, app, "GET", "/api/routines/therapist/mine", therapist, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Data []models.Routine `json:"data"`
	}
	decode(t, resp, &result)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Cadera — Movilidad", result.Data[0].Name)
}

func TestTherapistEndpointsRequireRole(t *testing.T) {
	app, _ := newTestApp(t)
	patient := registerUser(t, app, "Ana", "ana@example.com", "patient")

	resp := request(t, app, "GET", "/api/routines/therapist/mine", patient, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = request(t, app, "GET", "/api/routines/therapist/summary", patient, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestTherapistSummary(t *testing.T) {
	app, _ := newTestApp(t)
	therapist := registerUser(t, app, "Luis", "luis@example.com", "therapist")

	r1 := createRoutine(t, app, therapist, map[string]interface{}{
		"name": "Cadera — Movilidad",
		"days": []map[string]interface{}{{"name": "Círculos de cadera"}},
	})
	r2 := createRoutine(t, app, therapist, map[string]interface{}{
		"name": "Codo — Extensión",
		"days": []map[string]interface{}{{"name": "Extensión asistida"}},
	})

	p1 := registerUser(t, app, "Ana", "ana@example.com", "patient")
	p2 := registerUser(t, app, "Berta", "berta@example.com", "patient")
	p3 := registerUser(t, app, "Carla", "carla@example.com", "patient")

	// Two completed records, one in progress.
	assign(t, app, p1, r1.ID)
	markDay(t, app, p1, r1.ID, 0, 1, "Círculos de cadera")
	assign(t, app, p2, r2.ID)
	markDay(t, app, p2, r2.ID, 0, 1, "Extensión asistida")
	assign(t, app, p3, r1.ID)

	resp := request(t, app, "GET", "/api/routines/therapist/summary", therapist, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Data models.TherapistSummary `json:"data"`
	}
	decode(t, resp, &result)

	assert.Equal(t, 2, result.Data.TotalCreated)
	assert.Equal(t, 3, result.Data.ActivePatients)
	assert.Equal(t, 2, result.Data.CompletedRoutines)
	assert.Equal(t, 67, result.Data.SuccessRate)

	// Progress on other routines never leaks into the summary.
	assign(t, app, p1, "rtn-rodilla-control")
	resp = request(t, app, "GET", "/api/routines/therapist/summary", therapist, nil)
	decode(t, resp, &result)
	assert.Equal(t, 3, result.Data.ActivePatients)
}
