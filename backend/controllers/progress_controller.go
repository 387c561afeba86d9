package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medihome/backend/catalog"
	"medihome/backend/config"
	"medihome/backend/models"
	"medihome/backend/utils"
)

// Routines whose definition carries no day plans are assigned a 3-day
// schedule.
const fallbackTotalDays = 3

type ProgressController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Catalog catalog.Repository
}

func NewProgressController(db *gorm.DB, cfg *config.Config, repo catalog.Repository) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg, Catalog: repo}
}

// GetAssigned returns the distinct routine ids assigned to the caller. The
// assignment ledger is the source of truth here, not the progress records:
// progress kept on a never-assigned routine does not surface it.
func (pc *ProgressController) GetAssigned(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var assignments []models.AssignedRoutine
	if err := pc.DB.Where("user_id = ?", userID).Find(&assignments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	ids := make([]string, 0, len(assignments))
	seen := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		if _, ok := seen[a.RoutineID]; ok {
			continue
		}
		seen[a.RoutineID] = struct{}{}
		ids = append(ids, a.RoutineID)
	}

	return c.JSON(ids)
}

// AssignRoutine idempotently assigns a catalog routine to the caller and
// initializes its progress record. Re-assigning returns the existing state
// without touching daysDone or history.
func (pc *ProgressController) AssignRoutine(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input struct {
		RoutineID string `json:"routineId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.RoutineID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "routineId is required",
		})
	}

	routine, err := pc.Catalog.Resolve(input.RoutineID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Routine not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	totalDays := routine.DayCount()
	if totalDays == 0 {
		totalDays = fallbackTotalDays
	}

	var progress models.RoutineProgress
	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		var assignment models.AssignedRoutine
		err := tx.Where("user_id = ? AND routine_id = ?", userID, input.RoutineID).
			First(&assignment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			assignment = models.AssignedRoutine{
				UserID:     userID,
				RoutineID:  input.RoutineID,
				AssignedAt: time.Now(),
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		err = tx.Where("user_id = ? AND routine_id = ?", userID, input.RoutineID).
			First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = models.NewRoutineProgress(userID, input.RoutineID, totalDays)
			return tx.Create(&progress).Error
		}
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not assign routine",
		})
	}

	return c.JSON(fiber.Map{
		"ok":       true,
		"progress": progress,
	})
}

// GetProgress returns every progress record of the caller.
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	records := make([]models.RoutineProgress, 0)
	if err := pc.DB.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	return c.JSON(records)
}

// MarkDayDone records a completed day. The caller-supplied totalDays decides
// how far daysDone is padded; it is deliberately not cross-checked against
// the catalog so the recorded behavior matches what the front end already
// relies on. The operation upserts the record and is safe to retry.
func (pc *ProgressController) MarkDayDone(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var input struct {
		RoutineID    string `json:"routineId"`
		DayIndex     *int   `json:"dayIndex"`
		TotalDays    int    `json:"totalDays"`
		ExerciseName string `json:"exerciseName"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.RoutineID == "" || input.DayIndex == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "routineId and dayIndex are required",
		})
	}
	if *input.DayIndex < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "dayIndex must not be negative",
		})
	}
	if input.TotalDays < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "totalDays must not be negative",
		})
	}

	var progress models.RoutineProgress
	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("user_id = ? AND routine_id = ?", userID, input.RoutineID)
		// Row lock so two concurrent marks cannot lose an update. sqlite has
		// no FOR UPDATE; its writes are serialized anyway.
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		err := q.First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = models.NewRoutineProgress(userID, input.RoutineID, input.TotalDays)
		} else if err != nil {
			return err
		}

		progress.MarkDay(*input.DayIndex, input.TotalDays, input.ExerciseName, time.Now())
		return tx.Save(&progress).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save progress",
		})
	}

	return c.JSON(progress)
}

// GetStats returns the patient dashboard roll-up.
func (pc *ProgressController) GetStats(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var assignments []models.AssignedRoutine
	if err := pc.DB.Where("user_id = ?", userID).Find(&assignments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	var records []models.RoutineProgress
	if err := pc.DB.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}

	assignedIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		assignedIDs = append(assignedIDs, a.RoutineID)
	}

	return c.JSON(models.BuildPatientStats(assignedIDs, records, time.Now()))
}
