package database

import (
	"log"

	attemptModel "quizogram_backend/internals/features/quizzes/attempts/model"
	quizModel "quizogram_backend/internals/features/quizzes/quiz/model"
	socialModel "quizogram_backend/internals/features/social/model"
	authModel "quizogram_backend/internals/features/users/auth/model"
	profileModel "quizogram_backend/internals/features/users/profile/model"
	userModel "quizogram_backend/internals/features/users/user/model"
)

// Migrate menjalankan AutoMigrate untuk semua model Quizogram.
// Urutan mengikuti FK: users dulu, baru tabel yang mereferensikannya.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&profileModel.UserProfileModel{},
		&quizModel.QuizModel{},
		&quizModel.QuizQuestionModel{},
		&quizModel.QuizAnswerOptionModel{},
		&attemptModel.AttemptModel{},
		&attemptModel.AttemptAnswerModel{},
		&socialModel.FollowModel{},
		&socialModel.LikeModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}
	log.Println("✅ Skema database siap.")
}
