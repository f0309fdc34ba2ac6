package response

import (
	"time"

	"sst_compliance/internal/domain/entities"
)

type QuestionResponse struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	Weight       int       `json:"weight"`
	Type         string    `json:"type"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromQuestion(q entities.Question) QuestionResponse {
	return QuestionResponse{
		ID:           q.ID,
		Text:         q.Text,
		Weight:       q.Weight,
		Type:         string(q.Type),
		DisplayOrder: q.DisplayOrder,
		Active:       q.Active,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func FromQuestions(qs []entities.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuestion(q))
	}
	return out
}
