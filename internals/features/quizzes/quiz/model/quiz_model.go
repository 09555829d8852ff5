package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuizModel struct {
	QuizID          uuid.UUID `gorm:"column:quiz_id;type:uuid;default:gen_random_uuid();primaryKey" json:"quiz_id"`
	QuizOwnerUserID uuid.UUID `gorm:"column:quiz_owner_user_id;type:uuid;not null;index:idx_quizzes_owner" json:"quiz_owner_user_id"`

	QuizTitle       string         `gorm:"column:quiz_title;type:varchar(200);not null" json:"quiz_title"`
	QuizDescription *string        `gorm:"column:quiz_description;type:text" json:"quiz_description,omitempty"`
	QuizTags        pq.StringArray `gorm:"column:quiz_tags;type:text[]" json:"quiz_tags,omitempty"`

	QuizCreatedAt time.Time `gorm:"column:quiz_created_at;not null;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time `gorm:"column:quiz_updated_at;not null;autoUpdateTime" json:"quiz_updated_at"`

	Questions []QuizQuestionModel `gorm:"foreignKey:QuizQuestionQuizID;references:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// TableName overrides the table name used by GORM.
func (QuizModel) TableName() string {
	return "quizzes"
}

func (m *QuizModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizID == uuid.Nil {
		m.QuizID = uuid.New()
	}
	return nil
}
