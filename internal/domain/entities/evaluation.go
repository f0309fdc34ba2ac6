package entities

import "time"

// EvaluationStatus represents the evaluation lifecycle.
//
// Domain notes:
//   - DRAFT evaluations accept answer replacements.
//   - COMPLETED is terminal: the answer set and the computed penalty are
//     frozen and there is no transition back to DRAFT.

type EvaluationStatus string

const (
	EvaluationStatusDraft     EvaluationStatus = "DRAFT"
	EvaluationStatusCompleted EvaluationStatus = "COMPLETED"
)

// AnswerValue is the ternary outcome of a checklist item.
//
// Only NO (non-conforming) contributes to the penalty; YES and
// NOT_APPLICABLE never do.

type AnswerValue string

const (
	AnswerValueYes           AnswerValue = "YES"
	AnswerValueNo            AnswerValue = "NO"
	AnswerValueNotApplicable AnswerValue = "NOT_APPLICABLE"
)

func (v AnswerValue) Valid() bool {
	switch v {
	case AnswerValueYes, AnswerValueNo, AnswerValueNotApplicable:
		return true
	}
	return false
}

// Answer records the outcome of one question within an evaluation.
// Answers only exist inside their evaluation (composition): they are
// replaced in bulk while DRAFT and removed with the evaluation.

type Answer struct {
	ID           string      `json:"id"`
	QuestionID   string      `json:"question_id"`
	Value        AnswerValue `json:"value"`
	Observation  string      `json:"observation,omitempty"`
	EvidenceURLs []string    `json:"evidence_urls,omitempty"`
}

// Evaluation is a periodic safety evaluation of a work, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Answers are embedded in the item so replace-all and the
//     DRAFT -> COMPLETED transition are single conditional writes.
//
// Monetary representation:
//   - TotalPenalty is nil while DRAFT and set exactly once on completion.

type Evaluation struct {
	ID             string           `json:"id"`
	WorkID         string           `json:"work_id"`
	EvaluatorID    string           `json:"evaluator_id"`
	Type           EvaluationType   `json:"type"`
	Date           time.Time        `json:"date"`
	EmployeesCount int              `json:"employees_count"`
	Status         EvaluationStatus `json:"status"`
	TotalPenalty   *float64         `json:"total_penalty,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	Answers        []Answer         `json:"answers"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
