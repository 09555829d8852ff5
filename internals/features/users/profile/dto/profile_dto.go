// file: internals/features/users/profile/dto/profile_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	quizDTO "quizogram_backend/internals/features/quizzes/quiz/dto"
	model "quizogram_backend/internals/features/users/profile/model"
)

type PatchProfileRequest struct {
	Bio          *string         `json:"bio" validate:"omitempty,max=300"`
	AvatarKey    *string         `json:"avatar_key" validate:"omitempty,max=100"`
	ProfileLinks *datatypes.JSON `json:"profile_links"`
}

func (r *PatchProfileRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Bio != nil {
		updates["bio"] = *r.Bio
	}
	if r.AvatarKey != nil {
		updates["avatar_key"] = *r.AvatarKey
	}
	if r.ProfileLinks != nil {
		updates["profile_links"] = *r.ProfileLinks
	}
	return updates
}

type ProfileResponse struct {
	UserID       uuid.UUID      `json:"user_id"`
	UserName     string         `json:"user_name"`
	Bio          *string        `json:"bio,omitempty"`
	AvatarKey    string         `json:"avatar_key"`
	AvatarURL    string         `json:"avatar_url"`
	ProfileLinks datatypes.JSON `json:"profile_links,omitempty"`

	QuizCount      int64 `json:"quiz_count"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`

	IsMe        bool `json:"is_me"`
	IsFollowing bool `json:"is_following"`

	Quizzes []quizDTO.QuizResponse `json:"quizzes"`
}

type AvatarOption struct {
	Key       string `json:"key"`
	AvatarURL string `json:"avatar_url"`
}

func AvatarURLFor(baseURL, key string) string {
	return baseURL + "/static/avatars/" + key
}

func ListAvatarOptions(baseURL string) []AvatarOption {
	out := make([]AvatarOption, 0, len(model.AllowedAvatars))
	for _, key := range model.AllowedAvatars {
		out = append(out, AvatarOption{
			Key:       key,
			AvatarURL: AvatarURLFor(baseURL, key),
		})
	}
	return out
}
