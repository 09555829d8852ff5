// file: internals/features/users/profile/controller/profile_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	quizDTO "quizogram_backend/internals/features/quizzes/quiz/dto"
	quizModel "quizogram_backend/internals/features/quizzes/quiz/model"
	socialModel "quizogram_backend/internals/features/social/model"
	dto "quizogram_backend/internals/features/users/profile/dto"
	model "quizogram_backend/internals/features/users/profile/model"
	userModel "quizogram_backend/internals/features/users/user/model"
	helper "quizogram_backend/internals/helpers"
)

type ProfileController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{
		DB:        db,
		Validator: validator.New(),
	}
}

// getOrCreateProfile: profile dibuat saat register, tapi user lama bisa saja belum punya.
func getOrCreateProfile(db *gorm.DB, userID uuid.UUID) (*model.UserProfileModel, error) {
	var profile model.UserProfileModel
	err := db.
		Where(model.UserProfileModel{UserID: userID}).
		Attrs(model.UserProfileModel{AvatarKey: model.DefaultAvatarKey}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (ctrl *ProfileController) buildProfileResponse(c *fiber.Ctx, user *userModel.UserModel, viewerID uuid.UUID) (*dto.ProfileResponse, error) {
	db := ctrl.DB.WithContext(c.Context())

	profile, err := getOrCreateProfile(db, user.ID)
	if err != nil {
		return nil, err
	}

	var quizCount, followerCount, followingCount int64
	if err := db.Model(&quizModel.QuizModel{}).
		Where("quiz_owner_user_id = ?", user.ID).
		Count(&quizCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&socialModel.FollowModel{}).
		Where("follow_following_user_id = ?", user.ID).
		Count(&followerCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&socialModel.FollowModel{}).
		Where("follow_follower_user_id = ?", user.ID).
		Count(&followingCount).Error; err != nil {
		return nil, err
	}

	isMe := viewerID == user.ID
	isFollowing := false
	if !isMe && viewerID != uuid.Nil {
		var n int64
		if err := db.Model(&socialModel.FollowModel{}).
			Where("follow_follower_user_id = ? AND follow_following_user_id = ?", viewerID, user.ID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		isFollowing = n > 0
	}

	var quizzes []quizModel.QuizModel
	if err := db.
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("quiz_question_position ASC")
		}).
		Preload("Questions.Options", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("quiz_answer_option_position ASC")
		}).
		Where("quiz_owner_user_id = ?", user.ID).
		Order("quiz_created_at DESC, quiz_id DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		UserID:         user.ID,
		UserName:       user.UserName,
		Bio:            profile.Bio,
		AvatarKey:      profile.AvatarKey,
		AvatarURL:      dto.AvatarURLFor(c.BaseURL(), profile.AvatarKey),
		ProfileLinks:   profile.ProfileLinks,
		QuizCount:      quizCount,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		IsMe:           isMe,
		IsFollowing:    isFollowing,
		Quizzes:        quizDTO.FromModels(quizzes),
	}, nil
}

/* =======================
   Handlers
======================= */

// GET /profile/me
func (ctrl *ProfileController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp, err := ctrl.buildProfileResponse(c, &user, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", resp)
}

// PATCH /profile/me
func (ctrl *ProfileController) PatchMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.PatchProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.AvatarKey != nil && !model.IsAllowedAvatar(*body.AvatarKey) {
		return helper.JsonError(c, fiber.StatusBadRequest, "avatar_key tidak dikenal")
	}

	db := ctrl.DB.WithContext(c.Context())

	profile, err := getOrCreateProfile(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := body.ToUpdates()
	if len(updates) > 0 {
		if err := db.Model(profile).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp, err := ctrl.buildProfileResponse(c, &user, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Profile diperbarui", resp)
}

// GET /profile/avatars (public)
func (ctrl *ProfileController) ListAvatars(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", dto.ListAvatarOptions(c.BaseURL()))
}

// GET /profile/user/:username
func (ctrl *ProfileController) PublicProfile(c *fiber.Ctx) error {
	userName := strings.TrimSpace(c.Params("username"))
	if userName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username tidak valid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_name = ?", userName).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	viewerID := uuid.Nil
	if id, err := helper.GetUserUUID(c); err == nil {
		viewerID = id
	}

	resp, err := ctrl.buildProfileResponse(c, &user, viewerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", resp)
}
