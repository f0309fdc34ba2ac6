package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidWorkName = errors.New("invalid work name")
)

// IWorkUseCase is the minimal work-registry surface the evaluation core
// depends on: register a work and resolve it by id. Full work management
// (responsibles, documents, accident history) lives in another service.

type IWorkUseCase interface {
	Create(ctx context.Context, name, address string) (entities.Work, error)
	GetByID(ctx context.Context, id string) (entities.Work, error)
}

type WorkUseCase struct {
	repo interfaces.IWorkRepository
}

var _ IWorkUseCase = (*WorkUseCase)(nil)

func NewWorkUseCase(repo interfaces.IWorkRepository) *WorkUseCase {
	return &WorkUseCase{repo: repo}
}

func (u *WorkUseCase) Create(ctx context.Context, name, address string) (entities.Work, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Work{}, ErrInvalidWorkName
	}

	now := time.Now().UTC()
	w := entities.Work{
		ID:        uuid.NewString(),
		Name:      name,
		Address:   strings.TrimSpace(address),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, w)
}

func (u *WorkUseCase) GetByID(ctx context.Context, id string) (entities.Work, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Work{}, ErrInvalidWorkID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Work{}, err
	}
	if w.ID == "" {
		return entities.Work{}, ErrWorkNotFound
	}
	return w, nil
}
