package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"medihome/backend/catalog"
	"medihome/backend/config"
	"medihome/backend/models"
	"medihome/backend/utils"
)

type RoutinesController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Catalog catalog.Repository
}

func NewRoutinesController(db *gorm.DB, cfg *config.Config, repo catalog.Repository) *RoutinesController {
	return &RoutinesController{DB: db, Cfg: cfg, Catalog: repo}
}

// GetRoutines lists the full catalog: base routines plus every custom one.
func (rc *RoutinesController) GetRoutines(c *fiber.Ctx) error {
	routines, err := rc.Catalog.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}
	return c.JSON(routines)
}

type routineInput struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Difficulty  string           `json:"difficulty"`
	Duration    int              `json:"duration"`
	Description string           `json:"description"`
	Days        []models.DayPlan `json:"days"`
}

// CreateRoutine persists a custom routine owned by the calling therapist.
func (rc *RoutinesController) CreateRoutine(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input routineInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	routine := models.Routine{
		ID:          "rtn-" + uuid.NewString(),
		Name:        input.Name,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
		Duration:    input.Duration,
		Description: input.Description,
		Days:        input.Days,
		OwnerID:     &userID,
	}

	if err := rc.DB.Create(&routine).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create routine",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Routine created",
		"routine": routine,
	})
}

// UpdateRoutine edits a custom routine. Base-catalog routines are not in the
// database, so they come back 404 here. Shrinking the day plan never shrinks
// existing progress records; padding only grows them.
func (rc *RoutinesController) UpdateRoutine(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input routineInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var routine models.Routine
	if err := rc.DB.Where("id = ?", c.Params("id")).First(&routine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Routine not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	if routine.OwnerID == nil || *routine.OwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to edit this routine",
		})
	}

	if input.Name != "" {
		routine.Name = input.Name
	}
	if input.Category != "" {
		routine.Category = input.Category
	}
	if input.Difficulty != "" {
		routine.Difficulty = input.Difficulty
	}
	if input.Duration != 0 {
		routine.Duration = input.Duration
	}
	if input.Description != "" {
		routine.Description = input.Description
	}
	if input.Days != nil {
		routine.Days = input.Days
	}

	if err := rc.DB.Save(&routine).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update routine",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Routine updated",
		"routine": routine,
	})
}

// DeleteRoutine removes a custom routine together with every assignment and
// progress record that references it, in a single transaction. No orphaned
// progress may survive a routine deletion.
func (rc *RoutinesController) DeleteRoutine(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	routineID := c.Params("id")

	var routine models.Routine
	if err := rc.DB.Where("id = ?", routineID).First(&routine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Routine not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	if routine.OwnerID == nil || *routine.OwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to delete this routine",
		})
	}

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&routine).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_id = ?", routineID).
			Delete(&models.AssignedRoutine{}).Error; err != nil {
			return err
		}
		return tx.Where("routine_id = ?", routineID).
			Delete(&models.RoutineProgress{}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete routine",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Routine deleted",
	})
}
