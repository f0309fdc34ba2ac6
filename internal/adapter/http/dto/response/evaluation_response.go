package response

import (
	"time"

	"sst_compliance/internal/domain/entities"
)

type AnswerResponse struct {
	ID           string   `json:"id"`
	QuestionID   string   `json:"question_id"`
	Value        string   `json:"value"`
	Observation  string   `json:"observation,omitempty"`
	EvidenceURLs []string `json:"evidence_urls,omitempty"`
}

type EvaluationResponse struct {
	ID             string           `json:"id"`
	WorkID         string           `json:"work_id"`
	EvaluatorID    string           `json:"evaluator_id"`
	Type           string           `json:"type"`
	Date           time.Time        `json:"date"`
	EmployeesCount int              `json:"employees_count"`
	Status         string           `json:"status"`
	TotalPenalty   *float64         `json:"total_penalty,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	Answers        []AnswerResponse `json:"answers"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromEvaluation(e entities.Evaluation) EvaluationResponse {
	answers := make([]AnswerResponse, 0, len(e.Answers))
	for _, a := range e.Answers {
		answers = append(answers, AnswerResponse{
			ID:           a.ID,
			QuestionID:   a.QuestionID,
			Value:        string(a.Value),
			Observation:  a.Observation,
			EvidenceURLs: a.EvidenceURLs,
		})
	}
	return EvaluationResponse{
		ID:             e.ID,
		WorkID:         e.WorkID,
		EvaluatorID:    e.EvaluatorID,
		Type:           string(e.Type),
		Date:           e.Date,
		EmployeesCount: e.EmployeesCount,
		Status:         string(e.Status),
		TotalPenalty:   e.TotalPenalty,
		Notes:          e.Notes,
		Answers:        answers,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
