// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "quizogram_backend/internals/features/users/user/model"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummaryResponse dipakai untuk hasil pencarian (tanpa email).
type UserSummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		Email:     m.Email,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func SummariesFromModels(ms []model.UserModel) []UserSummaryResponse {
	out := make([]UserSummaryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, UserSummaryResponse{
			ID:       ms[i].ID,
			UserName: ms[i].UserName,
		})
	}
	return out
}
