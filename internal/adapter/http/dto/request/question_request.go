package request

import (
	"strings"

	"sst_compliance/internal/domain/entities"
)

type CreateQuestionRequest struct {
	Text   string `json:"text" binding:"required"`
	Weight int    `json:"weight" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

func (r CreateQuestionRequest) ResolveType() entities.EvaluationType {
	return entities.EvaluationType(strings.ToUpper(strings.TrimSpace(r.Type)))
}

type UpdateQuestionRequest struct {
	Text   string `json:"text" binding:"required"`
	Weight int    `json:"weight" binding:"required"`
}

// ReorderQuestionsRequest renumbers the display order of a type's active
// questions following the submitted id order.
type ReorderQuestionsRequest struct {
	Type        string   `json:"type" binding:"required"`
	QuestionIDs []string `json:"question_ids" binding:"required"`
}

func (r ReorderQuestionsRequest) ResolveType() entities.EvaluationType {
	return entities.EvaluationType(strings.ToUpper(strings.TrimSpace(r.Type)))
}
