package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptModel: satu event penilaian. Write-once, tidak ada endpoint update.
type AttemptModel struct {
	AttemptID     uuid.UUID `gorm:"column:attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attempt_id"`
	AttemptUserID uuid.UUID `gorm:"column:attempt_user_id;type:uuid;not null;index:idx_attempts_user" json:"attempt_user_id"`
	AttemptQuizID uuid.UUID `gorm:"column:attempt_quiz_id;type:uuid;not null;index:idx_attempts_quiz" json:"attempt_quiz_id"`

	AttemptScore int `gorm:"column:attempt_score;not null" json:"attempt_score"`
	// Total = jumlah soal quiz saat attempt dibuat, bukan jumlah jawaban.
	AttemptTotal int `gorm:"column:attempt_total;not null" json:"attempt_total"`

	AttemptCreatedAt time.Time `gorm:"column:attempt_created_at;not null;autoCreateTime" json:"attempt_created_at"`

	Answers []AttemptAnswerModel `gorm:"foreignKey:AttemptAnswerAttemptID;references:AttemptID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

func (AttemptModel) TableName() string { return "attempts" }

func (m *AttemptModel) BeforeCreate(_ *gorm.DB) error {
	if m.AttemptID == uuid.Nil {
		m.AttemptID = uuid.New()
	}
	return nil
}
