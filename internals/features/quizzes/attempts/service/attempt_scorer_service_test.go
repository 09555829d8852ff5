// file: internals/features/quizzes/attempts/service/attempt_scorer_service_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizogram_backend/internals/databases/testdb"
	"quizogram_backend/internals/features/quizzes/attempts/dto"
	amodel "quizogram_backend/internals/features/quizzes/attempts/model"
	qmodel "quizogram_backend/internals/features/quizzes/quiz/model"
	userModel "quizogram_backend/internals/features/users/user/model"
)

func seedUser(t *testing.T, db *gorm.DB, name string) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		UserName: name,
		Email:    name + "@example.com",
		Password: "x",
		IsActive: true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return u
}

// seedQuiz membuat quiz 2 soal: soal 1 benar di indeks 1, soal 2 benar di
// indeks 0, masing-masing 3 opsi.
func seedQuiz(t *testing.T, db *gorm.DB, ownerID uuid.UUID) *qmodel.QuizModel {
	t.Helper()
	quiz := &qmodel.QuizModel{
		QuizOwnerUserID: ownerID,
		QuizTitle:       "Ibukota Dunia",
		Questions: []qmodel.QuizQuestionModel{
			{
				QuizQuestionText:               "Ibukota Prancis?",
				QuizQuestionCorrectOptionIndex: 1,
				QuizQuestionPosition:           0,
				Options: []qmodel.QuizAnswerOptionModel{
					{QuizAnswerOptionText: "London", QuizAnswerOptionPosition: 0},
					{QuizAnswerOptionText: "Paris", QuizAnswerOptionPosition: 1},
					{QuizAnswerOptionText: "Berlin", QuizAnswerOptionPosition: 2},
				},
			},
			{
				QuizQuestionText:               "Ibukota Jepang?",
				QuizQuestionCorrectOptionIndex: 0,
				QuizQuestionPosition:           1,
				Options: []qmodel.QuizAnswerOptionModel{
					{QuizAnswerOptionText: "Tokyo", QuizAnswerOptionPosition: 0},
					{QuizAnswerOptionText: "Osaka", QuizAnswerOptionPosition: 1},
					{QuizAnswerOptionText: "Kyoto", QuizAnswerOptionPosition: 2},
				},
			},
		},
	}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	return quiz
}

func countAttempts(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&amodel.AttemptModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	return n
}

func TestScoreAttemptPartialCorrect(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "budi")
	quiz := seedQuiz(t, db, user.ID)

	q1 := quiz.Questions[0].QuizQuestionID
	q2 := quiz.Questions[1].QuizQuestionID

	attempt, err := ScoreAttempt(db, quiz.QuizID, user.ID, []dto.AttemptAnswerIn{
		{QuestionID: q1, SelectedOptionIndex: 1}, // benar
		{QuestionID: q2, SelectedOptionIndex: 1}, // salah
	})
	if err != nil {
		t.Fatalf("ScoreAttempt: %v", err)
	}
	if attempt.AttemptScore != 1 {
		t.Fatalf("score = %d, want 1", attempt.AttemptScore)
	}
	if attempt.AttemptTotal != 2 {
		t.Fatalf("total = %d, want 2", attempt.AttemptTotal)
	}
	if len(attempt.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(attempt.Answers))
	}
	if !attempt.Answers[0].AttemptAnswerIsCorrect {
		t.Fatalf("jawaban pertama harus dinilai benar")
	}
	if attempt.Answers[1].AttemptAnswerIsCorrect {
		t.Fatalf("jawaban kedua harus dinilai salah")
	}
}

func TestScoreAttemptUnderAnsweringCountsTotal(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "sari")
	quiz := seedQuiz(t, db, user.ID)

	attempt, err := ScoreAttempt(db, quiz.QuizID, user.ID, []dto.AttemptAnswerIn{
		{QuestionID: quiz.Questions[0].QuizQuestionID, SelectedOptionIndex: 1},
	})
	if err != nil {
		t.Fatalf("ScoreAttempt: %v", err)
	}
	if attempt.AttemptScore != 1 || attempt.AttemptTotal != 2 {
		t.Fatalf("score/total = %d/%d, want 1/2", attempt.AttemptScore, attempt.AttemptTotal)
	}
}

func TestScoreAttemptQuizNotFound(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "budi")

	_, err := ScoreAttempt(db, uuid.New(), user.ID, []dto.AttemptAnswerIn{
		{QuestionID: uuid.New(), SelectedOptionIndex: 0},
	})
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusNotFound {
		t.Fatalf("err = %v, want 404", err)
	}
	if countAttempts(t, db) != 0 {
		t.Fatalf("tidak boleh ada attempt tersimpan")
	}
}

func TestScoreAttemptValidationFailuresAtomic(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "budi")
	quiz := seedQuiz(t, db, user.ID)
	otherQuiz := seedQuiz(t, db, seedUser(t, db, "lain").ID)

	q1 := quiz.Questions[0].QuizQuestionID

	cases := []struct {
		name    string
		answers []dto.AttemptAnswerIn
	}{
		{
			name: "soal dari quiz lain",
			answers: []dto.AttemptAnswerIn{
				{QuestionID: otherQuiz.Questions[0].QuizQuestionID, SelectedOptionIndex: 0},
			},
		},
		{
			name: "indeks opsi di luar rentang",
			answers: []dto.AttemptAnswerIn{
				{QuestionID: q1, SelectedOptionIndex: 3},
			},
		},
		{
			name: "jawaban duplikat",
			answers: []dto.AttemptAnswerIn{
				{QuestionID: q1, SelectedOptionIndex: 0},
				{QuestionID: q1, SelectedOptionIndex: 1},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ScoreAttempt(db, quiz.QuizID, user.ID, tc.answers)
			fe, ok := err.(*fiber.Error)
			if !ok || fe.Code != fiber.StatusBadRequest {
				t.Fatalf("err = %v, want 400", err)
			}
		})
	}

	if countAttempts(t, db) != 0 {
		t.Fatalf("validasi gagal tidak boleh menyisakan attempt")
	}
}

func TestLeaderboardBestAttemptPerUser(t *testing.T) {
	db := testdb.Open(t)
	owner := seedUser(t, db, "owner")
	quiz := seedQuiz(t, db, owner.ID)

	u1 := seedUser(t, db, "u1")
	u2 := seedUser(t, db, "u2")

	q1 := quiz.Questions[0].QuizQuestionID
	q2 := quiz.Questions[1].QuizQuestionID

	// u1: attempt pertama 1/2, kedua 2/2 → best 2
	if _, err := ScoreAttempt(db, quiz.QuizID, u1.ID, []dto.AttemptAnswerIn{
		{QuestionID: q1, SelectedOptionIndex: 1},
		{QuestionID: q2, SelectedOptionIndex: 2},
	}); err != nil {
		t.Fatalf("attempt u1 #1: %v", err)
	}
	if _, err := ScoreAttempt(db, quiz.QuizID, u1.ID, []dto.AttemptAnswerIn{
		{QuestionID: q1, SelectedOptionIndex: 1},
		{QuestionID: q2, SelectedOptionIndex: 0},
	}); err != nil {
		t.Fatalf("attempt u1 #2: %v", err)
	}
	// u2: satu attempt 1/2
	if _, err := ScoreAttempt(db, quiz.QuizID, u2.ID, []dto.AttemptAnswerIn{
		{QuestionID: q1, SelectedOptionIndex: 1},
		{QuestionID: q2, SelectedOptionIndex: 1},
	}); err != nil {
		t.Fatalf("attempt u2: %v", err)
	}

	rows, err := Leaderboard(db, quiz.QuizID)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].UserID != u1.ID || rows[0].BestScore != 2 || rows[0].Total != 2 {
		t.Fatalf("rows[0] = %+v, want u1 best 2/2", rows[0])
	}
	if rows[0].UserName != "u1" {
		t.Fatalf("rows[0].UserName = %q, want u1", rows[0].UserName)
	}
	if rows[1].UserID != u2.ID || rows[1].BestScore != 1 {
		t.Fatalf("rows[1] = %+v, want u2 best 1", rows[1])
	}
}

func TestListUserAttemptsNewestFirst(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db, "budi")
	quiz := seedQuiz(t, db, user.ID)

	q1 := quiz.Questions[0].QuizQuestionID

	first, err := ScoreAttempt(db, quiz.QuizID, user.ID, []dto.AttemptAnswerIn{
		{QuestionID: q1, SelectedOptionIndex: 0},
	})
	if err != nil {
		t.Fatalf("attempt #1: %v", err)
	}
	second, err := ScoreAttempt(db, quiz.QuizID, user.ID, []dto.AttemptAnswerIn{
		{QuestionID: q1, SelectedOptionIndex: 1},
	})
	if err != nil {
		t.Fatalf("attempt #2: %v", err)
	}

	attempts, err := ListUserAttempts(db, user.ID)
	if err != nil {
		t.Fatalf("ListUserAttempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempts = %d, want 2", len(attempts))
	}
	got := map[uuid.UUID]bool{
		attempts[0].AttemptID: true,
		attempts[1].AttemptID: true,
	}
	if !got[first.AttemptID] || !got[second.AttemptID] {
		t.Fatalf("attempt id tidak lengkap: %+v", attempts)
	}
	if len(attempts[0].Answers) != 1 {
		t.Fatalf("answers harus ikut ter-preload")
	}
}
