package interfaces

import (
	"context"
	"sst_compliance/internal/domain/entities"
)

// IQuestionRepository abstracts DynamoDB persistence for the question catalog.
//
// The catalog is administered independently (create/edit/reorder/deactivate)
// and consumed read-only by the evaluation core via ListActiveByType.

type IQuestionRepository interface {
	Create(ctx context.Context, q entities.Question) (entities.Question, error)
	GetByID(ctx context.Context, id string) (entities.Question, error)
	Update(ctx context.Context, q entities.Question) (entities.Question, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Question, error)
	SetDisplayOrder(ctx context.Context, id string, order int) (entities.Question, error)
	ListByType(ctx context.Context, t entities.EvaluationType) ([]entities.Question, error)
	ListActiveByType(ctx context.Context, t entities.EvaluationType) ([]entities.Question, error)
}
