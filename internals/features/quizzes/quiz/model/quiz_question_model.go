package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizQuestionModel struct {
	QuizQuestionID     uuid.UUID `gorm:"column:quiz_question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"quiz_question_id"`
	QuizQuestionQuizID uuid.UUID `gorm:"column:quiz_question_quiz_id;type:uuid;not null;index:idx_quiz_questions_quiz" json:"quiz_question_quiz_id"`

	QuizQuestionText string `gorm:"column:quiz_question_text;type:text;not null" json:"quiz_question_text"`

	// Indeks opsi yang benar (0..n-1). Divalidasi saat create quiz,
	// tidak divalidasi ulang setelahnya.
	QuizQuestionCorrectOptionIndex int `gorm:"column:quiz_question_correct_option_index;not null" json:"quiz_question_correct_option_index"`

	QuizQuestionPosition  int       `gorm:"column:quiz_question_position;not null;default:0" json:"quiz_question_position"`
	QuizQuestionCreatedAt time.Time `gorm:"column:quiz_question_created_at;not null;autoCreateTime" json:"quiz_question_created_at"`

	Options []QuizAnswerOptionModel `gorm:"foreignKey:QuizAnswerOptionQuestionID;references:QuizQuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

func (m *QuizQuestionModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizQuestionID == uuid.Nil {
		m.QuizQuestionID = uuid.New()
	}
	return nil
}
