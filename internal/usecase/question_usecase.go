package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuestionNotFound       = errors.New("question not found")
	ErrInvalidQuestionID      = errors.New("invalid question id")
	ErrInvalidQuestionText    = errors.New("invalid question text")
	ErrInvalidQuestionWeight  = errors.New("question weight must be between 1 and 4")
	ErrInvalidQuestionType    = errors.New("invalid question type")
	ErrUnknownReorderQuestion = errors.New("reorder references a question outside the catalog type")
)

// CreateQuestionCommand / UpdateQuestionCommand carry catalog edits.

type CreateQuestionCommand struct {
	Text   string
	Weight int
	Type   entities.EvaluationType
}

type UpdateQuestionCommand struct {
	Text   string
	Weight int
}

// IQuestionUseCase administers the safety question catalog.
//
// Questions are never hard-deleted: Deactivate flips the active flag so
// answers recorded against the question keep resolving. Reorder renumbers
// display_order 1..n for the type following the submitted id order;
// questions left out of the submission keep their relative order after the
// submitted ones.

type IQuestionUseCase interface {
	Create(ctx context.Context, cmd CreateQuestionCommand) (entities.Question, error)
	Update(ctx context.Context, id string, cmd UpdateQuestionCommand) (entities.Question, error)
	Deactivate(ctx context.Context, id string) (entities.Question, error)
	Reorder(ctx context.Context, t entities.EvaluationType, orderedIDs []string) ([]entities.Question, error)
	ListActiveByType(ctx context.Context, t entities.EvaluationType) ([]entities.Question, error)
	ListByType(ctx context.Context, t entities.EvaluationType) ([]entities.Question, error)
}

type QuestionUseCase struct {
	repo interfaces.IQuestionRepository
}

var _ IQuestionUseCase = (*QuestionUseCase)(nil)

func NewQuestionUseCase(repo interfaces.IQuestionRepository) *QuestionUseCase {
	return &QuestionUseCase{repo: repo}
}

func (u *QuestionUseCase) Create(ctx context.Context, cmd CreateQuestionCommand) (entities.Question, error) {
	cmd.Text = strings.TrimSpace(cmd.Text)
	if cmd.Text == "" {
		return entities.Question{}, ErrInvalidQuestionText
	}
	if !entities.ValidQuestionWeight(cmd.Weight) {
		return entities.Question{}, ErrInvalidQuestionWeight
	}
	if !cmd.Type.Valid() {
		return entities.Question{}, ErrInvalidQuestionType
	}

	// New questions go to the end of the active list for their type.
	existing, err := u.repo.ListActiveByType(ctx, cmd.Type)
	if err != nil {
		return entities.Question{}, err
	}
	nextOrder := 1
	for _, q := range existing {
		if q.DisplayOrder >= nextOrder {
			nextOrder = q.DisplayOrder + 1
		}
	}

	now := time.Now().UTC()
	q := entities.Question{
		ID:           uuid.NewString(),
		Text:         cmd.Text,
		Weight:       cmd.Weight,
		Type:         cmd.Type,
		DisplayOrder: nextOrder,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuestionUseCase) Update(ctx context.Context, id string, cmd UpdateQuestionCommand) (entities.Question, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Question{}, ErrInvalidQuestionID
	}
	cmd.Text = strings.TrimSpace(cmd.Text)
	if cmd.Text == "" {
		return entities.Question{}, ErrInvalidQuestionText
	}
	if !entities.ValidQuestionWeight(cmd.Weight) {
		return entities.Question{}, ErrInvalidQuestionWeight
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Question{}, err
	}
	if q.ID == "" {
		return entities.Question{}, ErrQuestionNotFound
	}

	q.Text = cmd.Text
	q.Weight = cmd.Weight
	q.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, q)
}

func (u *QuestionUseCase) Deactivate(ctx context.Context, id string) (entities.Question, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Question{}, ErrInvalidQuestionID
	}

	q, err := u.repo.SetActive(ctx, id, false)
	if err != nil {
		return entities.Question{}, err
	}
	if q.ID == "" {
		return entities.Question{}, ErrQuestionNotFound
	}
	return q, nil
}

func (u *QuestionUseCase) Reorder(ctx context.Context, t entities.EvaluationType, orderedIDs []string) ([]entities.Question, error) {
	if !t.Valid() {
		return nil, ErrInvalidQuestionType
	}

	active, err := u.repo.ListActiveByType(ctx, t)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Question, len(active))
	for _, q := range active {
		byID[q.ID] = q
	}

	sequenced := make([]entities.Question, 0, len(active))
	placed := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		id = strings.TrimSpace(id)
		q, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownReorderQuestion, id)
		}
		if placed[id] {
			continue
		}
		placed[id] = true
		sequenced = append(sequenced, q)
	}

	// Unmentioned questions keep their relative order after the
	// submitted ones; duplicated incoming orders are healed here because
	// everything gets renumbered 1..n.
	rest := make([]entities.Question, 0, len(active))
	for _, q := range active {
		if !placed[q.ID] {
			rest = append(rest, q)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].DisplayOrder < rest[j].DisplayOrder })
	sequenced = append(sequenced, rest...)

	out := make([]entities.Question, 0, len(sequenced))
	for i, q := range sequenced {
		updated, err := u.repo.SetDisplayOrder(ctx, q.ID, i+1)
		if err != nil {
			return nil, err
		}
		if updated.ID == "" {
			return nil, ErrQuestionNotFound
		}
		out = append(out, updated)
	}
	return out, nil
}

func (u *QuestionUseCase) ListActiveByType(ctx context.Context, t entities.EvaluationType) ([]entities.Question, error) {
	if !t.Valid() {
		return nil, ErrInvalidQuestionType
	}
	return u.repo.ListActiveByType(ctx, t)
}

// ListByType also includes deactivated questions, for catalog administration.
func (u *QuestionUseCase) ListByType(ctx context.Context, t entities.EvaluationType) ([]entities.Question, error) {
	if !t.Valid() {
		return nil, ErrInvalidQuestionType
	}
	return u.repo.ListByType(ctx, t)
}
