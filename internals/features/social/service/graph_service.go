// file: internals/features/social/service/graph_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	qmodel "quizogram_backend/internals/features/quizzes/quiz/model"
	smodel "quizogram_backend/internals/features/social/model"
	userModel "quizogram_backend/internals/features/users/user/model"
)

/* ==========================================================================================
   FOLLOW / LIKE — idempotent toggles.
   Insert-or-ignore lewat ON CONFLICT DO NOTHING di atas unique index,
   bukan cek-lalu-insert yang bisa race. Delete saat edge tidak ada = no-op.
========================================================================================== */

func EnsureFollow(db *gorm.DB, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak bisa follow diri sendiri")
	}

	var target userModel.UserModel
	if err := db.Select("id").First(&target, "id = ?", targetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return err
	}

	edge := smodel.FollowModel{
		FollowFollowerUserID:  followerID,
		FollowFollowingUserID: targetID,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "follow_follower_user_id"},
			{Name: "follow_following_user_id"},
		},
		DoNothing: true,
	}).Create(&edge).Error
}

func RemoveFollow(db *gorm.DB, followerID, targetID uuid.UUID) error {
	return db.
		Where("follow_follower_user_id = ? AND follow_following_user_id = ?", followerID, targetID).
		Delete(&smodel.FollowModel{}).Error
}

func EnsureLike(db *gorm.DB, userID, quizID uuid.UUID) error {
	var quiz qmodel.QuizModel
	if err := db.Select("quiz_id").First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return err
	}

	edge := smodel.LikeModel{
		LikeUserID: userID,
		LikeQuizID: quizID,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "like_user_id"},
			{Name: "like_quiz_id"},
		},
		DoNothing: true,
	}).Create(&edge).Error
}

func RemoveLike(db *gorm.DB, userID, quizID uuid.UUID) error {
	return db.
		Where("like_user_id = ? AND like_quiz_id = ?", userID, quizID).
		Delete(&smodel.LikeModel{}).Error
}
