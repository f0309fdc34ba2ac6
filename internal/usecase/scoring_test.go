package usecase

import (
	"context"
	"math"
	"testing"

	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/infrastructure/reference"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func question(id string, weight int) entities.Question {
	return entities.Question{ID: id, Weight: weight, Type: entities.EvaluationTypeSite, Active: true}
}

func answer(questionID string, value entities.AnswerValue) entities.Answer {
	return entities.Answer{ID: "a-" + questionID, QuestionID: questionID, Value: value}
}

func TestComputePenalty_BandAveraging(t *testing.T) {
	bands := []entities.PenaltyBand{
		{Weight: 1, EmployeesMin: 1, EmployeesMax: entities.EmployeesMaxSentinel, MinValue: 100, MaxValue: 200},
	}
	questions := []entities.Question{question("q1", 1), question("q2", 1), question("q3", 1)}
	answers := []entities.Answer{
		answer("q1", entities.AnswerValueNo),
		answer("q2", entities.AnswerValueNo),
		answer("q3", entities.AnswerValueNo),
	}

	total, unmatched := ComputePenalty(10, answers, questions, bands)
	if !almostEqual(total, 450.00) {
		t.Fatalf("expected 450.00, got %v", total)
	}
	if len(unmatched) != 0 {
		t.Fatalf("expected no unmatched weights, got %v", unmatched)
	}
}

func TestComputePenalty_OnlyNoContributes(t *testing.T) {
	bands := []entities.PenaltyBand{
		{Weight: 1, EmployeesMin: 1, EmployeesMax: entities.EmployeesMaxSentinel, MinValue: 100, MaxValue: 200},
		{Weight: 2, EmployeesMin: 1, EmployeesMax: entities.EmployeesMaxSentinel, MinValue: 300, MaxValue: 500},
	}
	questions := []entities.Question{question("q1", 1), question("q2", 2), question("q3", 2)}

	t.Run("all conforming", func(t *testing.T) {
		answers := []entities.Answer{
			answer("q1", entities.AnswerValueYes),
			answer("q2", entities.AnswerValueYes),
			answer("q3", entities.AnswerValueNotApplicable),
		}
		total, _ := ComputePenalty(10, answers, questions, bands)
		if total != 0 {
			t.Fatalf("expected 0, got %v", total)
		}
	})

	t.Run("mixed values", func(t *testing.T) {
		answers := []entities.Answer{
			answer("q1", entities.AnswerValueYes),
			answer("q2", entities.AnswerValueNo),
			answer("q3", entities.AnswerValueNotApplicable),
		}
		total, _ := ComputePenalty(10, answers, questions, bands)
		if !almostEqual(total, 400.00) {
			t.Fatalf("expected 400.00 (weight-2 midpoint), got %v", total)
		}
	})
}

func TestComputePenalty_MultiWeightAgainstSeededTable(t *testing.T) {
	bands, err := reference.NewPenaltyTable().ListBands(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// employees 30: weight-1 band 26-50 = [3782.62, 5673.91] (avg 4728.265),
	// weight-3 band 26-50 = [5673.92, 8321.74] (avg 6997.83).
	questions := []entities.Question{question("q1", 1), question("q2", 1), question("q3", 3), question("q4", 4)}
	answers := []entities.Answer{
		answer("q1", entities.AnswerValueNo),
		answer("q2", entities.AnswerValueNo),
		answer("q3", entities.AnswerValueNo),
		answer("q4", entities.AnswerValueYes),
	}

	total, unmatched := ComputePenalty(30, answers, questions, bands)
	if !almostEqual(total, 16454.36) {
		t.Fatalf("expected 16454.36, got %v", total)
	}
	if len(unmatched) != 0 {
		t.Fatalf("expected no unmatched weights, got %v", unmatched)
	}
}

func TestComputePenalty_UnmatchedWeightSkipped(t *testing.T) {
	bands := []entities.PenaltyBand{
		{Weight: 1, EmployeesMin: 1, EmployeesMax: entities.EmployeesMaxSentinel, MinValue: 100, MaxValue: 200},
	}
	questions := []entities.Question{question("q1", 1), question("q2", 3)}
	answers := []entities.Answer{
		answer("q1", entities.AnswerValueNo),
		answer("q2", entities.AnswerValueNo),
	}

	total, unmatched := ComputePenalty(10, answers, questions, bands)
	if !almostEqual(total, 150.00) {
		t.Fatalf("expected 150.00 (weight-3 group skipped), got %v", total)
	}
	if len(unmatched) != 1 || unmatched[0] != 3 {
		t.Fatalf("expected unmatched [3], got %v", unmatched)
	}
}

func TestComputePenalty_EmployeeCountOutsideAllBands(t *testing.T) {
	bands, err := reference.NewPenaltyTable().ListBands(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	questions := []entities.Question{question("q1", 1)}
	answers := []entities.Answer{answer("q1", entities.AnswerValueNo)}

	for _, count := range []int{0, -5} {
		total, unmatched := ComputePenalty(count, answers, questions, bands)
		if total != 0 {
			t.Fatalf("employees_count=%d: expected 0, got %v", count, total)
		}
		if len(unmatched) != 1 || unmatched[0] != 1 {
			t.Fatalf("employees_count=%d: expected unmatched [1], got %v", count, unmatched)
		}
	}
}

func TestComputePenalty_UnknownQuestionIgnored(t *testing.T) {
	bands := []entities.PenaltyBand{
		{Weight: 1, EmployeesMin: 1, EmployeesMax: entities.EmployeesMaxSentinel, MinValue: 100, MaxValue: 200},
	}
	questions := []entities.Question{question("q1", 1)}
	answers := []entities.Answer{
		answer("q1", entities.AnswerValueNo),
		answer("ghost", entities.AnswerValueNo),
	}

	total, _ := ComputePenalty(10, answers, questions, bands)
	if !almostEqual(total, 150.00) {
		t.Fatalf("expected 150.00, got %v", total)
	}
}

func TestComputePenalty_Idempotent(t *testing.T) {
	bands, err := reference.NewPenaltyTable().ListBands(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	questions := []entities.Question{question("q1", 2), question("q2", 4)}
	answers := []entities.Answer{
		answer("q1", entities.AnswerValueNo),
		answer("q2", entities.AnswerValueNo),
	}

	first, _ := ComputePenalty(120, answers, questions, bands)
	second, _ := ComputePenalty(120, answers, questions, bands)
	if first != second {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
	if first == 0 {
		t.Fatalf("expected a positive penalty")
	}
}
