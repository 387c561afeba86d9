package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"medihome/backend/config"
	"medihome/backend/models"
	"medihome/backend/utils"
)

type TherapistController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewTherapistController(db *gorm.DB, cfg *config.Config) *TherapistController {
	return &TherapistController{DB: db, Cfg: cfg}
}

// Mine lists the routines authored by the calling therapist.
func (tc *TherapistController) Mine(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	routines := make([]models.Routine, 0)
	if err := tc.DB.Where("owner_id = ?", userID).Order("created_at").Find(&routines).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, routines)
}

// Summary rolls up, across all patients, the progress made on the calling
// therapist's routines.
func (tc *TherapistController) Summary(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var owned []models.Routine
	if err := tc.DB.Where("owner_id = ?", userID).Find(&owned).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	records := make([]models.RoutineProgress, 0)
	if len(owned) > 0 {
		ids := make([]string, len(owned))
		for i := range owned {
			ids[i] = owned[i].ID
		}
		if err := tc.DB.Where("routine_id IN ?", ids).Find(&records).Error; err != nil {
			return utils.InternalServerError(c, "Could not query database")
		}
	}

	return utils.Success(c, fiber.StatusOK, models.BuildTherapistSummary(owned, records))
}
