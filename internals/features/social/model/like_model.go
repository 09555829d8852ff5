package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel: edge user → quiz, unik per pasangan.
type LikeModel struct {
	LikeID uuid.UUID `gorm:"column:like_id;type:uuid;default:gen_random_uuid();primaryKey" json:"like_id"`

	LikeUserID uuid.UUID `gorm:"column:like_user_id;type:uuid;not null;uniqueIndex:uq_likes_user_quiz,priority:1;index:idx_likes_user" json:"like_user_id"`
	LikeQuizID uuid.UUID `gorm:"column:like_quiz_id;type:uuid;not null;uniqueIndex:uq_likes_user_quiz,priority:2;index:idx_likes_quiz" json:"like_quiz_id"`

	LikeCreatedAt time.Time `gorm:"column:like_created_at;not null;autoCreateTime" json:"like_created_at"`
}

func (LikeModel) TableName() string { return "likes" }

func (m *LikeModel) BeforeCreate(_ *gorm.DB) error {
	if m.LikeID == uuid.Nil {
		m.LikeID = uuid.New()
	}
	return nil
}
