package interfaces

import (
	"context"
	"sst_compliance/internal/domain/entities"
)

// IEvaluationRepository abstracts DynamoDB persistence for Evaluation.
//
// Conventions:
//   - Lookups return a zero-value Evaluation (no error) when nothing matches.
//   - The *IfDraft operations are conditional writes: they only apply while
//     the persisted status is still DRAFT and return a zero value when the
//     condition fails, so concurrent completion races lose cleanly instead
//     of overwriting a finalized record.

type IEvaluationRepository interface {
	Create(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error)
	GetByID(ctx context.Context, id string) (entities.Evaluation, error)
	ReplaceAnswersIfDraft(ctx context.Context, id string, answers []entities.Answer) (entities.Evaluation, error)
	CompleteIfDraft(ctx context.Context, id string, totalPenalty float64) (entities.Evaluation, error)
	DeleteIfDraft(ctx context.Context, id string) (bool, error)
}
