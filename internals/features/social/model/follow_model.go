package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowModel: edge berarah follower → following, unik per pasangan.
// Unique index adalah backstop terakhir terhadap race insert ganda.
type FollowModel struct {
	FollowID uuid.UUID `gorm:"column:follow_id;type:uuid;default:gen_random_uuid();primaryKey" json:"follow_id"`

	FollowFollowerUserID  uuid.UUID `gorm:"column:follow_follower_user_id;type:uuid;not null;uniqueIndex:uq_follows_follower_following,priority:1;index:idx_follows_follower" json:"follow_follower_user_id"`
	FollowFollowingUserID uuid.UUID `gorm:"column:follow_following_user_id;type:uuid;not null;uniqueIndex:uq_follows_follower_following,priority:2;index:idx_follows_following" json:"follow_following_user_id"`

	FollowCreatedAt time.Time `gorm:"column:follow_created_at;not null;autoCreateTime" json:"follow_created_at"`
}

func (FollowModel) TableName() string { return "follows" }

func (m *FollowModel) BeforeCreate(_ *gorm.DB) error {
	if m.FollowID == uuid.Nil {
		m.FollowID = uuid.New()
	}
	return nil
}
