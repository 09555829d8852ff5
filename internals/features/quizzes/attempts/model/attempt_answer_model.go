package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptAnswerModel: jawaban per soal dalam satu attempt.
// is_correct dihitung sekali saat attempt dibuat dan tidak pernah dihitung
// ulang, jadi attempt lama tetap stabil walau quiz-nya diedit.
type AttemptAnswerModel struct {
	AttemptAnswerID        uuid.UUID `gorm:"column:attempt_answer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attempt_answer_id"`
	AttemptAnswerAttemptID uuid.UUID `gorm:"column:attempt_answer_attempt_id;type:uuid;not null;index:idx_attempt_answers_attempt" json:"attempt_answer_attempt_id"`

	AttemptAnswerQuestionID          uuid.UUID `gorm:"column:attempt_answer_question_id;type:uuid;not null" json:"attempt_answer_question_id"`
	AttemptAnswerSelectedOptionIndex int       `gorm:"column:attempt_answer_selected_option_index;not null" json:"attempt_answer_selected_option_index"`
	AttemptAnswerIsCorrect           bool      `gorm:"column:attempt_answer_is_correct;not null" json:"attempt_answer_is_correct"`

	AttemptAnswerPosition int `gorm:"column:attempt_answer_position;not null;default:0" json:"attempt_answer_position"`
}

func (AttemptAnswerModel) TableName() string { return "attempt_answers" }

func (m *AttemptAnswerModel) BeforeCreate(_ *gorm.DB) error {
	if m.AttemptAnswerID == uuid.Nil {
		m.AttemptAnswerID = uuid.New()
	}
	return nil
}
