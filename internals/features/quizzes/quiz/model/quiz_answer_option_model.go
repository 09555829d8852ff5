package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizAnswerOptionModel struct {
	QuizAnswerOptionID         uuid.UUID `gorm:"column:quiz_answer_option_id;type:uuid;default:gen_random_uuid();primaryKey" json:"quiz_answer_option_id"`
	QuizAnswerOptionQuestionID uuid.UUID `gorm:"column:quiz_answer_option_question_id;type:uuid;not null;index:idx_quiz_answer_options_question" json:"quiz_answer_option_question_id"`

	QuizAnswerOptionText string `gorm:"column:quiz_answer_option_text;type:text;not null" json:"quiz_answer_option_text"`

	// Urutan opsi dalam soal; selected_option_index menunjuk ke posisi ini.
	QuizAnswerOptionPosition int `gorm:"column:quiz_answer_option_position;not null;default:0" json:"quiz_answer_option_position"`
}

func (QuizAnswerOptionModel) TableName() string { return "quiz_answer_options" }

func (m *QuizAnswerOptionModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizAnswerOptionID == uuid.Nil {
		m.QuizAnswerOptionID = uuid.New()
	}
	return nil
}
