package response

import (
	"encoding/json"
	"strings"
	"testing"

	"sst_compliance/internal/domain/entities"
)

func TestFromEvaluation(t *testing.T) {
	total := 9456.53
	e := entities.Evaluation{
		ID:             "ev-1",
		WorkID:         "work-1",
		EvaluatorID:    "user-1",
		Type:           entities.EvaluationTypeSite,
		EmployeesCount: 30,
		Status:         entities.EvaluationStatusCompleted,
		TotalPenalty:   &total,
		Answers: []entities.Answer{
			{ID: "a1", QuestionID: "q1", Value: entities.AnswerValueNo, Observation: "no guardrail"},
		},
	}

	res := FromEvaluation(e)
	if res.Status != "COMPLETED" || res.Type != "SITE" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.TotalPenalty == nil || *res.TotalPenalty != 9456.53 {
		t.Fatalf("unexpected total penalty: %v", res.TotalPenalty)
	}
	if len(res.Answers) != 1 || res.Answers[0].Value != "NO" {
		t.Fatalf("unexpected answers: %+v", res.Answers)
	}
}

func TestFromEvaluation_DraftOmitsPenalty(t *testing.T) {
	res := FromEvaluation(entities.Evaluation{
		ID:     "ev-1",
		Status: entities.EvaluationStatusDraft,
	})

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(raw), "total_penalty") {
		t.Fatalf("draft must omit total_penalty: %s", raw)
	}
	// Answers serialize as an empty array, never null.
	if !strings.Contains(string(raw), `"answers":[]`) {
		t.Fatalf("expected empty answers array: %s", raw)
	}
}
