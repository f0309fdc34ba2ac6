package entities

import "time"

// EvaluationType classifies checklist items and evaluations.
//
// Domain notes:
//   - SITE covers the construction site (obra) checklist.
//   - LODGING covers worker lodging (alojamento) facilities.
//   - A question only applies to evaluations of its own type.

type EvaluationType string

const (
	EvaluationTypeSite    EvaluationType = "SITE"
	EvaluationTypeLodging EvaluationType = "LODGING"
)

func (t EvaluationType) Valid() bool {
	return t == EvaluationTypeSite || t == EvaluationTypeLodging
}

// Question weights classify severity: 1 (lowest) through 4 (highest).
// The weight is the key into the penalty table alongside employee count.
const (
	QuestionWeightMin = 1
	QuestionWeightMax = 4
)

func ValidQuestionWeight(w int) bool {
	return w >= QuestionWeightMin && w <= QuestionWeightMax
}

// Question is a weighted checklist item from the safety question catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lifecycle:
//   - Administered independently (create/edit/reorder/deactivate).
//   - Never hard-deleted; deactivation flips Active so historical answers
//     keep a resolvable reference.

type Question struct {
	ID           string         `json:"id"`
	Text         string         `json:"text"`
	Weight       int            `json:"weight"`
	Type         EvaluationType `json:"type"`
	DisplayOrder int            `json:"display_order"`
	Active       bool           `json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
