// file: internals/features/quizzes/attempts/dto/attempt_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	amodel "quizogram_backend/internals/features/quizzes/attempts/model"
)

/* ==========================================================================================
   REQUEST — SUBMIT ATTEMPT
========================================================================================== */

type AttemptAnswerIn struct {
	QuestionID          uuid.UUID `json:"question_id" validate:"required"`
	SelectedOptionIndex int       `json:"selected_option_index" validate:"gte=0"`
}

type CreateAttemptRequest struct {
	Answers []AttemptAnswerIn `json:"answers" validate:"required,min=1,dive"`
}

/* ==========================================================================================
   RESPONSE
========================================================================================== */

type AttemptAnswerResponse struct {
	QuestionID          uuid.UUID `json:"question_id"`
	SelectedOptionIndex int       `json:"selected_option_index"`
	IsCorrect           bool      `json:"is_correct"`
}

type AttemptResponse struct {
	ID        uuid.UUID               `json:"id"`
	QuizID    uuid.UUID               `json:"quiz_id"`
	UserID    uuid.UUID               `json:"user_id"`
	Score     int                     `json:"score"`
	Total     int                     `json:"total"`
	CreatedAt time.Time               `json:"created_at"`
	Answers   []AttemptAnswerResponse `json:"answers"`
}

func FromModel(m *amodel.AttemptModel) AttemptResponse {
	resp := AttemptResponse{
		ID:        m.AttemptID,
		QuizID:    m.AttemptQuizID,
		UserID:    m.AttemptUserID,
		Score:     m.AttemptScore,
		Total:     m.AttemptTotal,
		CreatedAt: m.AttemptCreatedAt,
		Answers:   make([]AttemptAnswerResponse, 0, len(m.Answers)),
	}
	for _, a := range m.Answers {
		resp.Answers = append(resp.Answers, AttemptAnswerResponse{
			QuestionID:          a.AttemptAnswerQuestionID,
			SelectedOptionIndex: a.AttemptAnswerSelectedOptionIndex,
			IsCorrect:           a.AttemptAnswerIsCorrect,
		})
	}
	return resp
}

func FromModels(ms []amodel.AttemptModel) []AttemptResponse {
	out := make([]AttemptResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

/* ==========================================================================================
   LEADERBOARD
========================================================================================== */

type LeaderboardRow struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	BestScore int       `json:"best_score"`
	Total     int       `json:"total"`
}
