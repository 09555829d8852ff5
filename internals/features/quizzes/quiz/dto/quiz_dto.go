// file: internals/features/quizzes/quiz/dto/quiz_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	qmodel "quizogram_backend/internals/features/quizzes/quiz/model"
)

/* ==========================================================================================
   REQUEST — CREATE
   Quiz + questions + options dibuat sekaligus sebagai satu pohon, satu transaksi.
========================================================================================== */

type CreateAnswerOptionRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

type CreateQuestionRequest struct {
	Text               string                      `json:"text" validate:"required,min=1"`
	Options            []CreateAnswerOptionRequest `json:"options" validate:"required,min=2,dive"`
	CorrectOptionIndex int                         `json:"correct_option_index" validate:"gte=0"`
}

type CreateQuizRequest struct {
	Title       string                  `json:"title" validate:"required,min=1,max=200"`
	Description *string                 `json:"description" validate:"omitempty,max=2000"`
	Tags        []string                `json:"tags" validate:"omitempty,max=10,dive,min=1,max=30"`
	Questions   []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

func (r *CreateQuizRequest) ToModel(ownerID uuid.UUID) *qmodel.QuizModel {
	m := &qmodel.QuizModel{
		QuizOwnerUserID: ownerID,
		QuizTitle:       r.Title,
		QuizDescription: r.Description,
	}
	if len(r.Tags) > 0 {
		m.QuizTags = pq.StringArray(r.Tags)
	}
	for qi, q := range r.Questions {
		question := qmodel.QuizQuestionModel{
			QuizQuestionText:               q.Text,
			QuizQuestionCorrectOptionIndex: q.CorrectOptionIndex,
			QuizQuestionPosition:           qi,
		}
		for oi, opt := range q.Options {
			question.Options = append(question.Options, qmodel.QuizAnswerOptionModel{
				QuizAnswerOptionText:     opt.Text,
				QuizAnswerOptionPosition: oi,
			})
		}
		m.Questions = append(m.Questions, question)
	}
	return m
}

/* ==========================================================================================
   REQUEST — PATCH (PARTIAL)
   Pointer supaya field yang tidak dikirim tidak diubah. Soal tidak bisa
   di-patch lewat endpoint ini (attempt lama memegang snapshot is_correct).
========================================================================================== */

type PatchQuizRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	Tags        *[]string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=30"`
}

func (r *PatchQuizRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Title != nil {
		updates["quiz_title"] = *r.Title
	}
	if r.Description != nil {
		updates["quiz_description"] = *r.Description
	}
	if r.Tags != nil {
		updates["quiz_tags"] = pq.StringArray(*r.Tags)
	}
	return updates
}

/* ==========================================================================================
   RESPONSE
========================================================================================== */

type AnswerOptionResponse struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type QuestionResponse struct {
	ID                 uuid.UUID              `json:"id"`
	Text               string                 `json:"text"`
	CorrectOptionIndex int                    `json:"correct_option_index"`
	Options            []AnswerOptionResponse `json:"options"`
}

type QuizResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	OwnerID     uuid.UUID          `json:"owner_id"`
	CreatedAt   time.Time          `json:"created_at"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
}

func FromModel(m *qmodel.QuizModel) QuizResponse {
	resp := QuizResponse{
		ID:          m.QuizID,
		Title:       m.QuizTitle,
		Description: m.QuizDescription,
		Tags:        []string(m.QuizTags),
		OwnerID:     m.QuizOwnerUserID,
		CreatedAt:   m.QuizCreatedAt,
	}
	for _, q := range m.Questions {
		qr := QuestionResponse{
			ID:                 q.QuizQuestionID,
			Text:               q.QuizQuestionText,
			CorrectOptionIndex: q.QuizQuestionCorrectOptionIndex,
		}
		for _, o := range q.Options {
			qr.Options = append(qr.Options, AnswerOptionResponse{
				ID:   o.QuizAnswerOptionID,
				Text: o.QuizAnswerOptionText,
			})
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return resp
}

func FromModels(ms []qmodel.QuizModel) []QuizResponse {
	out := make([]QuizResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
