package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEvaluationNotFound         = errors.New("evaluation not found")
	ErrWorkNotFound               = errors.New("work not found")
	ErrWorkInactive               = errors.New("work is not active")
	ErrInvalidEvaluationID        = errors.New("invalid evaluation id")
	ErrInvalidWorkID              = errors.New("invalid work id")
	ErrInvalidEvaluatorID         = errors.New("invalid evaluator id")
	ErrInvalidEvaluationType      = errors.New("invalid evaluation type")
	ErrInvalidEmployeesCount      = errors.New("employees count must be positive")
	ErrEvaluationAlreadyCompleted = errors.New("evaluation already completed")
	ErrUnknownQuestion            = errors.New("unknown or inactive question in answer set")
	ErrDuplicateAnswer            = errors.New("duplicate answer for question")
	ErrInvalidAnswerValue         = errors.New("invalid answer value")
	ErrIncompleteAnswers          = errors.New("incomplete answers")
)

// IncompleteAnswersError reports which active questions still lack an answer
// when completion is requested. It unwraps to ErrIncompleteAnswers so
// callers can match it with errors.Is.

type IncompleteAnswersError struct {
	MissingQuestionIDs []string
}

func (e *IncompleteAnswersError) Error() string {
	return fmt.Sprintf("incomplete answers: %d question(s) unanswered: %s",
		len(e.MissingQuestionIDs), strings.Join(e.MissingQuestionIDs, ", "))
}

func (e *IncompleteAnswersError) Unwrap() error {
	return ErrIncompleteAnswers
}

// CreateEvaluationCommand carries the header fields of a new draft evaluation.

type CreateEvaluationCommand struct {
	WorkID         string
	EvaluatorID    string
	Type           entities.EvaluationType
	Date           time.Time
	EmployeesCount int
	Notes          string
}

// AnswerInput is one submitted checklist answer inside a replace-all request.

type AnswerInput struct {
	QuestionID   string
	Value        string
	Observation  string
	EvidenceURLs []string
}

// IEvaluationUseCase exposes the evaluation lifecycle.
//
// State machine:
//   - Create        => new DRAFT with an empty answer set (work must be active)
//   - ReplaceAnswers => full answer-set replacement, DRAFT only
//   - Complete      => validates completeness, computes the penalty and flips
//     DRAFT -> COMPLETED exactly once (terminal)
//   - Delete        => DRAFT only; finalized evaluations are kept forever

type IEvaluationUseCase interface {
	Create(ctx context.Context, cmd CreateEvaluationCommand) (entities.Evaluation, error)
	ReplaceAnswers(ctx context.Context, evaluationID string, answers []AnswerInput) (entities.Evaluation, error)
	Complete(ctx context.Context, evaluationID string) (entities.Evaluation, error)
	GetByID(ctx context.Context, evaluationID string) (entities.Evaluation, error)
	Delete(ctx context.Context, evaluationID string) error
}

type EvaluationUseCase struct {
	repo         interfaces.IEvaluationRepository
	questionRepo interfaces.IQuestionRepository
	bandRepo     interfaces.IPenaltyBandRepository
	workRepo     interfaces.IWorkRepository
}

var _ IEvaluationUseCase = (*EvaluationUseCase)(nil)

func NewEvaluationUseCase(
	repo interfaces.IEvaluationRepository,
	questionRepo interfaces.IQuestionRepository,
	bandRepo interfaces.IPenaltyBandRepository,
	workRepo interfaces.IWorkRepository,
) *EvaluationUseCase {
	return &EvaluationUseCase{repo: repo, questionRepo: questionRepo, bandRepo: bandRepo, workRepo: workRepo}
}

func (u *EvaluationUseCase) Create(ctx context.Context, cmd CreateEvaluationCommand) (entities.Evaluation, error) {
	cmd.WorkID = strings.TrimSpace(cmd.WorkID)
	cmd.EvaluatorID = strings.TrimSpace(cmd.EvaluatorID)
	if cmd.WorkID == "" {
		return entities.Evaluation{}, ErrInvalidWorkID
	}
	if cmd.EvaluatorID == "" {
		return entities.Evaluation{}, ErrInvalidEvaluatorID
	}
	if !cmd.Type.Valid() {
		return entities.Evaluation{}, ErrInvalidEvaluationType
	}
	if cmd.EmployeesCount <= 0 {
		return entities.Evaluation{}, ErrInvalidEmployeesCount
	}

	work, err := u.workRepo.GetByID(ctx, cmd.WorkID)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if work.ID == "" {
		return entities.Evaluation{}, ErrWorkNotFound
	}
	if !work.Active {
		return entities.Evaluation{}, ErrWorkInactive
	}

	date := cmd.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	now := time.Now().UTC()
	e := entities.Evaluation{
		ID:             uuid.NewString(),
		WorkID:         cmd.WorkID,
		EvaluatorID:    cmd.EvaluatorID,
		Type:           cmd.Type,
		Date:           date,
		EmployeesCount: cmd.EmployeesCount,
		Status:         entities.EvaluationStatusDraft,
		Notes:          cmd.Notes,
		Answers:        []entities.Answer{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EvaluationUseCase) ReplaceAnswers(ctx context.Context, evaluationID string, answers []AnswerInput) (entities.Evaluation, error) {
	evaluationID = strings.TrimSpace(evaluationID)
	if evaluationID == "" {
		return entities.Evaluation{}, ErrInvalidEvaluationID
	}

	e, err := u.getDraft(ctx, evaluationID)
	if err != nil {
		return entities.Evaluation{}, err
	}

	active, err := u.questionRepo.ListActiveByType(ctx, e.Type)
	if err != nil {
		return entities.Evaluation{}, err
	}
	known := make(map[string]bool, len(active))
	for _, q := range active {
		known[q.ID] = true
	}

	newSet := make([]entities.Answer, 0, len(answers))
	seen := make(map[string]bool, len(answers))
	for _, in := range answers {
		qid := strings.TrimSpace(in.QuestionID)
		if !known[qid] {
			return entities.Evaluation{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, qid)
		}
		if seen[qid] {
			return entities.Evaluation{}, fmt.Errorf("%w: %s", ErrDuplicateAnswer, qid)
		}
		seen[qid] = true

		value := entities.AnswerValue(strings.ToUpper(strings.TrimSpace(in.Value)))
		if !value.Valid() {
			return entities.Evaluation{}, fmt.Errorf("%w: %q", ErrInvalidAnswerValue, in.Value)
		}

		newSet = append(newSet, entities.Answer{
			ID:           uuid.NewString(),
			QuestionID:   qid,
			Value:        value,
			Observation:  strings.TrimSpace(in.Observation),
			EvidenceURLs: in.EvidenceURLs,
		})
	}

	// Conditional single-item write: the previous set stays fully intact
	// unless the whole new set lands, and a concurrently completed
	// evaluation rejects the write.
	updated, err := u.repo.ReplaceAnswersIfDraft(ctx, evaluationID, newSet)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if updated.ID == "" {
		return entities.Evaluation{}, ErrEvaluationAlreadyCompleted
	}
	return updated, nil
}

func (u *EvaluationUseCase) Complete(ctx context.Context, evaluationID string) (entities.Evaluation, error) {
	evaluationID = strings.TrimSpace(evaluationID)
	if evaluationID == "" {
		return entities.Evaluation{}, ErrInvalidEvaluationID
	}

	e, err := u.getDraft(ctx, evaluationID)
	if err != nil {
		return entities.Evaluation{}, err
	}

	active, err := u.questionRepo.ListActiveByType(ctx, e.Type)
	if err != nil {
		return entities.Evaluation{}, err
	}

	answered := make(map[string]bool, len(e.Answers))
	for _, a := range e.Answers {
		answered[a.QuestionID] = true
	}
	var missing []string
	for _, q := range active {
		if !answered[q.ID] {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return entities.Evaluation{}, &IncompleteAnswersError{MissingQuestionIDs: missing}
	}

	bands, err := u.bandRepo.ListBands(ctx)
	if err != nil {
		return entities.Evaluation{}, err
	}

	total, unmatched := ComputePenalty(e.EmployeesCount, e.Answers, active, bands)
	for _, w := range unmatched {
		// Gap in the fine table: the weight group is skipped, not an error.
		log.Printf("[evaluation][usecase] no penalty band matched evaluation_id=%s weight=%d employees_count=%d", e.ID, w, e.EmployeesCount)
	}

	// CAS on status: if another request completed the evaluation between
	// the read above and this write, the repository rejects the update and
	// this caller loses with an invalid-state error.
	updated, err := u.repo.CompleteIfDraft(ctx, evaluationID, total)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if updated.ID == "" {
		return entities.Evaluation{}, ErrEvaluationAlreadyCompleted
	}
	log.Printf("[evaluation][usecase] completed evaluation_id=%s total_penalty=%.2f", updated.ID, total)
	return updated, nil
}

func (u *EvaluationUseCase) GetByID(ctx context.Context, evaluationID string) (entities.Evaluation, error) {
	evaluationID = strings.TrimSpace(evaluationID)
	if evaluationID == "" {
		return entities.Evaluation{}, ErrInvalidEvaluationID
	}

	e, err := u.repo.GetByID(ctx, evaluationID)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if e.ID == "" {
		return entities.Evaluation{}, ErrEvaluationNotFound
	}
	return e, nil
}

func (u *EvaluationUseCase) Delete(ctx context.Context, evaluationID string) error {
	evaluationID = strings.TrimSpace(evaluationID)
	if evaluationID == "" {
		return ErrInvalidEvaluationID
	}

	if _, err := u.getDraft(ctx, evaluationID); err != nil {
		return err
	}

	deleted, err := u.repo.DeleteIfDraft(ctx, evaluationID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEvaluationAlreadyCompleted
	}
	return nil
}

// getDraft loads the evaluation and rejects missing or finalized records.
func (u *EvaluationUseCase) getDraft(ctx context.Context, evaluationID string) (entities.Evaluation, error) {
	e, err := u.repo.GetByID(ctx, evaluationID)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if e.ID == "" {
		return entities.Evaluation{}, ErrEvaluationNotFound
	}
	if e.Status != entities.EvaluationStatusDraft {
		return entities.Evaluation{}, ErrEvaluationAlreadyCompleted
	}
	return e, nil
}
