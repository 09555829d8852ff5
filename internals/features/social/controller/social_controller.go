// file: internals/features/social/controller/social_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "quizogram_backend/internals/features/social/service"
	helper "quizogram_backend/internals/helpers"
)

type SocialController struct {
	DB *gorm.DB
}

func NewSocialController(db *gorm.DB) *SocialController {
	return &SocialController{DB: db}
}

func parseParamUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	return id, nil
}

/* =======================
   Follow / Unfollow
======================= */

// POST /social/follow/:user_id → 204
func (ctrl *SocialController) Follow(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	targetID, err := parseParamUUID(c, "user_id")
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := service.EnsureFollow(ctrl.DB.WithContext(c.Context()), userID, targetID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /social/follow/:user_id → 204 (idempotent)
func (ctrl *SocialController) Unfollow(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	targetID, err := parseParamUUID(c, "user_id")
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := service.RemoveFollow(ctrl.DB.WithContext(c.Context()), userID, targetID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

/* =======================
   Like / Unlike
======================= */

// POST /social/like/:quiz_id → 204
func (ctrl *SocialController) Like(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	quizID, err := parseParamUUID(c, "quiz_id")
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := service.EnsureLike(ctrl.DB.WithContext(c.Context()), userID, quizID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /social/like/:quiz_id → 204 (idempotent)
func (ctrl *SocialController) Unlike(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	quizID, err := parseParamUUID(c, "quiz_id")
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := service.RemoveLike(ctrl.DB.WithContext(c.Context()), userID, quizID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

/* =======================
   Feed
======================= */

// GET /social/feed
func (ctrl *SocialController) Feed(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	p := helper.ResolvePaging(c, 20, 100)

	items, total, err := service.GetFeed(ctrl.DB.WithContext(c.Context()), userID, p.Offset, p.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", items,
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}
