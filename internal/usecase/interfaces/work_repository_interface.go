package interfaces

import (
	"context"
	"sst_compliance/internal/domain/entities"
)

// IWorkRepository abstracts DynamoDB persistence for Work.
//
// Lookups return a zero-value Work (no error) when nothing matches.

type IWorkRepository interface {
	Create(ctx context.Context, w entities.Work) (entities.Work, error)
	GetByID(ctx context.Context, id string) (entities.Work, error)
}
