// file: internals/features/quizzes/attempts/controller/attempt_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "quizogram_backend/internals/features/quizzes/attempts/dto"
	service "quizogram_backend/internals/features/quizzes/attempts/service"
	helper "quizogram_backend/internals/helpers"
)

type AttemptController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /attempts/:quiz_id
func (ctrl *AttemptController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	quizID, err := uuid.Parse(strings.TrimSpace(c.Params("quiz_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.CreateAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	attempt, err := service.ScoreAttempt(ctrl.DB.WithContext(c.Context()), quizID, userID, body.Answers)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan attempt")
	}

	return helper.JsonCreated(c, "Attempt tersimpan", dto.FromModel(attempt))
}

// GET /attempts/my
func (ctrl *AttemptController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	attempts, err := service.ListUserAttempts(ctrl.DB.WithContext(c.Context()), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.FromModels(attempts))
}

// GET /attempts/leaderboard/:quiz_id (public)
func (ctrl *AttemptController) Leaderboard(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(strings.TrimSpace(c.Params("quiz_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rows, err := service.Leaderboard(ctrl.DB.WithContext(c.Context()), quizID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", rows)
}
