// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "quizogram_backend/internals/features/users/user/dto"
	model "quizogram_backend/internals/features/users/user/model"
	helper "quizogram_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /users/me
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.FromModel(&user))
}

// GET /users/search?q=
func (ctrl *UserController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter q wajib diisi")
	}

	p := helper.ResolvePaging(c, 20, 50)

	pattern := "%" + strings.ToLower(q) + "%"

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Where("LOWER(user_name) LIKE ?", pattern).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("LOWER(user_name) LIKE ?", pattern).
		Order("user_name ASC").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.SummariesFromModels(users),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}
