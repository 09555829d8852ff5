package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultAvatarKey = "8bit_default.png"

// AllowedAvatars: aset 8-bit bawaan (harus ada di public/avatars).
var AllowedAvatars = []string{
	"8bit_default.png",
	"8bit_knight.png",
	"8bit_mage.png",
	"8bit_archer.png",
	"8bit_robot.png",
	"8bit_alien.png",
}

func IsAllowedAvatar(key string) bool {
	for _, k := range AllowedAvatars {
		if k == key {
			return true
		}
	}
	return false
}

type UserProfileModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_profiles_user_id" json:"user_id"`

	Bio          *string        `gorm:"size:300;column:bio" json:"bio,omitempty"`
	AvatarKey    string         `gorm:"size:100;column:avatar_key;not null;default:'8bit_default.png'" json:"avatar_key"`
	ProfileLinks datatypes.JSON `gorm:"column:profile_links;type:jsonb" json:"profile_links,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }

func (p *UserProfileModel) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.AvatarKey == "" {
		p.AvatarKey = DefaultAvatarKey
	}
	return nil
}
