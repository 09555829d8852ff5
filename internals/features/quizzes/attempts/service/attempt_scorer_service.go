// file: internals/features/quizzes/attempts/service/attempt_scorer_service.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizogram_backend/internals/features/quizzes/attempts/dto"
	amodel "quizogram_backend/internals/features/quizzes/attempts/model"
	qmodel "quizogram_backend/internals/features/quizzes/quiz/model"
	userModel "quizogram_backend/internals/features/users/user/model"
)

/* ==========================================================================================
   SCORING
   Urutan validasi (semuanya sebelum tulis apa pun, gagal = tidak ada row):
   1) quiz ada, 2) quiz punya soal, 3) per jawaban: soal milik quiz ini,
   indeks opsi dalam rentang, tidak ada soal dijawab dua kali.
   Soal yang tidak dijawab tetap dihitung di total (total = jumlah soal quiz).
========================================================================================== */

func ScoreAttempt(db *gorm.DB, quizID, userID uuid.UUID, answers []dto.AttemptAnswerIn) (*amodel.AttemptModel, error) {
	var quiz qmodel.QuizModel
	if err := db.Select("quiz_id").First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return nil, err
	}

	var questions []qmodel.QuizQuestionModel
	if err := db.Where("quiz_question_quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Quiz belum punya soal")
	}

	correctByQID := make(map[uuid.UUID]int, len(questions))
	questionIDs := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		correctByQID[q.QuizQuestionID] = q.QuizQuestionCorrectOptionIndex
		questionIDs = append(questionIDs, q.QuizQuestionID)
	}

	optionCountByQID, err := countOptionsPerQuestion(db, questionIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(answers))
	for _, a := range answers {
		if _, ok := correctByQID[a.QuestionID]; !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Soal %s bukan bagian dari quiz ini", a.QuestionID))
		}
		if a.SelectedOptionIndex < 0 || a.SelectedOptionIndex >= optionCountByQID[a.QuestionID] {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Soal %s: selected_option_index di luar rentang", a.QuestionID))
		}
		if seen[a.QuestionID] {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Jawaban duplikat untuk soal %s", a.QuestionID))
		}
		seen[a.QuestionID] = true
	}

	score := 0
	answerRows := make([]amodel.AttemptAnswerModel, 0, len(answers))
	for i, a := range answers {
		isCorrect := a.SelectedOptionIndex == correctByQID[a.QuestionID]
		if isCorrect {
			score++
		}
		answerRows = append(answerRows, amodel.AttemptAnswerModel{
			AttemptAnswerQuestionID:          a.QuestionID,
			AttemptAnswerSelectedOptionIndex: a.SelectedOptionIndex,
			AttemptAnswerIsCorrect:           isCorrect,
			AttemptAnswerPosition:            i,
		})
	}

	attempt := &amodel.AttemptModel{
		AttemptUserID: userID,
		AttemptQuizID: quizID,
		AttemptScore:  score,
		AttemptTotal:  len(questions),
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		if len(answerRows) == 0 {
			return nil
		}
		for i := range answerRows {
			answerRows[i].AttemptAnswerAttemptID = attempt.AttemptID
		}
		return tx.Create(&answerRows).Error
	}); err != nil {
		return nil, err
	}

	attempt.Answers = answerRows
	return attempt, nil
}

func countOptionsPerQuestion(db *gorm.DB, questionIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	type optCountRow struct {
		QuestionID uuid.UUID `gorm:"column:question_id"`
		Cnt        int       `gorm:"column:cnt"`
	}
	var rows []optCountRow
	if err := db.Model(&qmodel.QuizAnswerOptionModel{}).
		Select("quiz_answer_option_question_id AS question_id, COUNT(*) AS cnt").
		Where("quiz_answer_option_question_id IN ?", questionIDs).
		Group("quiz_answer_option_question_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		out[r.QuestionID] = r.Cnt
	}
	return out, nil
}

/* ==========================================================================================
   LISTING & LEADERBOARD
========================================================================================== */

// ListUserAttempts: attempt milik user, terbaru dulu, lengkap dengan jawabannya.
func ListUserAttempts(db *gorm.DB, userID uuid.UUID) ([]amodel.AttemptModel, error) {
	var attempts []amodel.AttemptModel
	err := db.
		Preload("Answers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("attempt_answer_position ASC")
		}).
		Where("attempt_user_id = ?", userID).
		Order("attempt_created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// Leaderboard: attempt terbaik per user untuk satu quiz, descending by score.
// Total diambil dari attempt yang sama dengan best score (tie → attempt terbaru),
// bukan max(total) terpisah, supaya score/total tidak berasal dari attempt berbeda.
func Leaderboard(db *gorm.DB, quizID uuid.UUID) ([]dto.LeaderboardRow, error) {
	var attempts []amodel.AttemptModel
	if err := db.
		Where("attempt_quiz_id = ?", quizID).
		Order("attempt_score DESC, attempt_created_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	rows := make([]dto.LeaderboardRow, 0)
	seen := make(map[uuid.UUID]bool)
	userIDs := make([]uuid.UUID, 0)
	for _, a := range attempts {
		if seen[a.AttemptUserID] {
			continue
		}
		seen[a.AttemptUserID] = true
		userIDs = append(userIDs, a.AttemptUserID)
		rows = append(rows, dto.LeaderboardRow{
			UserID:    a.AttemptUserID,
			BestScore: a.AttemptScore,
			Total:     a.AttemptTotal,
		})
	}
	if len(rows) == 0 {
		return rows, nil
	}

	var users []userModel.UserModel
	if err := db.Select("id, user_name").Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	nameByID := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		nameByID[u.ID] = u.UserName
	}
	for i := range rows {
		rows[i].UserName = nameByID[rows[i].UserID]
	}
	return rows, nil
}
