// file: internals/features/quizzes/quiz/controller/quiz_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "quizogram_backend/internals/features/quizzes/quiz/dto"
	model "quizogram_backend/internals/features/quizzes/quiz/model"
	helper "quizogram_backend/internals/helpers"
)

type QuizController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{
		DB:        db,
		Validator: validator.New(),
	}
}

func preloadQuizTree(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_question_position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_answer_option_position ASC")
		})
}

/* =======================
   Handlers
======================= */

// POST /quizzes
func (ctrl *QuizController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Validasi correct_option_index dalam rentang options masing-masing soal.
	// Semua dicek sebelum ada satu row pun ditulis.
	for i, q := range body.Questions {
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Soal #%d: correct_option_index di luar rentang", i+1))
		}
	}

	m := body.ToModel(userID)

	// Satu transaksi untuk seluruh pohon quiz → questions → options.
	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat quiz")
	}

	return helper.JsonCreated(c, "Quiz berhasil dibuat", dto.FromModel(m))
}

// GET /quizzes (public, paginated)
func (ctrl *QuizController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.QuizModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var quizzes []model.QuizModel
	if err := preloadQuizTree(ctrl.DB.WithContext(c.Context())).
		Order("quiz_created_at DESC, quiz_id DESC").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.FromModels(quizzes),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// GET /quizzes/mine
func (ctrl *QuizController) Mine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var quizzes []model.QuizModel
	if err := preloadQuizTree(ctrl.DB.WithContext(c.Context())).
		Where("quiz_owner_user_id = ?", userID).
		Order("quiz_created_at DESC, quiz_id DESC").
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.FromModels(quizzes))
}

// GET /quizzes/:id
func (ctrl *QuizController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.QuizModel
	if err := preloadQuizTree(ctrl.DB.WithContext(c.Context())).
		First(&m, "quiz_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}

// PATCH /quizzes/:id (owner only)
func (ctrl *QuizController) Patch(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "quiz_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.QuizOwnerUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan pemilik quiz ini")
	}

	var body dto.PatchQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromModel(&m))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&m).
		Where("quiz_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// reload
	if err := preloadQuizTree(ctrl.DB.WithContext(c.Context())).
		First(&m, "quiz_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Quiz diperbarui", dto.FromModel(&m))
}

// DELETE /quizzes/:id (owner only, cascade ke questions/options/attempts)
func (ctrl *QuizController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("quiz_id, quiz_owner_user_id").
		First(&m, "quiz_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.QuizOwnerUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan pemilik quiz ini")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Quiz dihapus", fiber.Map{
		"quiz_id": id,
	})
}
