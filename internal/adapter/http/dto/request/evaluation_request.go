package request

import (
	"errors"
	"strings"
	"time"

	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/usecase"
)

var (
	ErrInvalidDate = errors.New("invalid evaluation date")
)

// CreateEvaluationRequest opens a new draft evaluation for a work.
type CreateEvaluationRequest struct {
	WorkID         string `json:"work_id" binding:"required"`
	EvaluatorID    string `json:"evaluator_id" binding:"required"`
	Type           string `json:"type" binding:"required"`
	Date           string `json:"date"`
	EmployeesCount int    `json:"employees_count" binding:"required"`
	Notes          string `json:"notes"`
}

func (r CreateEvaluationRequest) ResolveType() entities.EvaluationType {
	return entities.EvaluationType(strings.ToUpper(strings.TrimSpace(r.Type)))
}

// ResolveDate accepts an RFC3339 timestamp or a plain 2006-01-02 date.
// An empty date resolves to the zero time; the use case defaults it to now.
func (r CreateEvaluationRequest) ResolveDate() (time.Time, error) {
	v := strings.TrimSpace(r.Date)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

func (r CreateEvaluationRequest) ToCommand() (usecase.CreateEvaluationCommand, error) {
	date, err := r.ResolveDate()
	if err != nil {
		return usecase.CreateEvaluationCommand{}, err
	}
	return usecase.CreateEvaluationCommand{
		WorkID:         r.WorkID,
		EvaluatorID:    r.EvaluatorID,
		Type:           r.ResolveType(),
		Date:           date,
		EmployeesCount: r.EmployeesCount,
		Notes:          strings.TrimSpace(r.Notes),
	}, nil
}

// AnswerRequest is one checklist answer inside a replace-all submission.
type AnswerRequest struct {
	QuestionID   string   `json:"question_id" binding:"required"`
	Value        string   `json:"value" binding:"required"`
	Observation  string   `json:"observation"`
	EvidenceURLs []string `json:"evidence_urls"`
}

// ReplaceAnswersRequest replaces the full answer set of a draft evaluation.
type ReplaceAnswersRequest struct {
	Answers []AnswerRequest `json:"answers" binding:"required"`
}

func (r ReplaceAnswersRequest) ToInputs() []usecase.AnswerInput {
	inputs := make([]usecase.AnswerInput, 0, len(r.Answers))
	for _, a := range r.Answers {
		inputs = append(inputs, usecase.AnswerInput{
			QuestionID:   a.QuestionID,
			Value:        a.Value,
			Observation:  a.Observation,
			EvidenceURLs: a.EvidenceURLs,
		})
	}
	return inputs
}
