// file: internals/features/social/dto/social_dto.go
package dto

import (
	"github.com/google/uuid"
)

// FeedItem: satu quiz di feed, sudah digabung dengan username pemilik,
// jumlah like, dan apakah viewer sudah like.
type FeedItem struct {
	QuizID        uuid.UUID `json:"quiz_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	LikeCount     int       `json:"like_count"`
	IsLikedByMe   bool      `json:"is_liked_by_me"`
}
