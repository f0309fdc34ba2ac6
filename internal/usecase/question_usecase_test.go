package usecase

import (
	"context"
	"errors"
	"testing"

	"sst_compliance/internal/domain/entities"
	mock_interfaces "sst_compliance/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newQuestionUseCaseWithMock(t *testing.T) (*QuestionUseCase, *mock_interfaces.MockIQuestionRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIQuestionRepository(ctrl)
	return NewQuestionUseCase(repo), repo
}

func catalogQuestion(id string, order int) entities.Question {
	return entities.Question{
		ID:           id,
		Text:         "Are collective protections installed?",
		Weight:       2,
		Type:         entities.EvaluationTypeSite,
		DisplayOrder: order,
		Active:       true,
	}
}

func TestQuestionUseCase_Create(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		uc, _ := newQuestionUseCaseWithMock(t)
		_, err := uc.Create(context.Background(), CreateQuestionCommand{Text: "  ", Weight: 2, Type: entities.EvaluationTypeSite})
		if !errors.Is(err, ErrInvalidQuestionText) {
			t.Fatalf("expected ErrInvalidQuestionText, got %v", err)
		}
	})

	t.Run("weight out of range", func(t *testing.T) {
		uc, _ := newQuestionUseCaseWithMock(t)
		for _, w := range []int{0, 5, -1} {
			_, err := uc.Create(context.Background(), CreateQuestionCommand{Text: "text", Weight: w, Type: entities.EvaluationTypeSite})
			if !errors.Is(err, ErrInvalidQuestionWeight) {
				t.Fatalf("weight=%d: expected ErrInvalidQuestionWeight, got %v", w, err)
			}
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc, _ := newQuestionUseCaseWithMock(t)
		_, err := uc.Create(context.Background(), CreateQuestionCommand{Text: "text", Weight: 2, Type: "OFFICE"})
		if !errors.Is(err, ErrInvalidQuestionType) {
			t.Fatalf("expected ErrInvalidQuestionType, got %v", err)
		}
	})

	t.Run("appends to the end of the catalog", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		repo.EXPECT().ListActiveByType(gomock.Any(), entities.EvaluationTypeSite).Return([]entities.Question{
			catalogQuestion("q1", 1),
			catalogQuestion("q2", 4),
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Question) (entities.Question, error) {
				if q.DisplayOrder != 5 {
					t.Fatalf("expected display_order 5, got %d", q.DisplayOrder)
				}
				if q.ID == "" || !q.Active {
					t.Fatalf("unexpected question: %+v", q)
				}
				return q, nil
			},
		)

		q, err := uc.Create(context.Background(), CreateQuestionCommand{
			Text:   " Are scaffolds inspected daily? ",
			Weight: 3,
			Type:   entities.EvaluationTypeSite,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Text != "Are scaffolds inspected daily?" {
			t.Fatalf("expected trimmed text, got %q", q.Text)
		}
	})

	t.Run("first question of a type gets order 1", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		repo.EXPECT().ListActiveByType(gomock.Any(), entities.EvaluationTypeLodging).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Question) (entities.Question, error) {
				if q.DisplayOrder != 1 {
					t.Fatalf("expected display_order 1, got %d", q.DisplayOrder)
				}
				return q, nil
			},
		)

		if _, err := uc.Create(context.Background(), CreateQuestionCommand{
			Text:   "Do dormitories have emergency lighting?",
			Weight: 2,
			Type:   entities.EvaluationTypeLodging,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuestionUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Question{}, nil)
		_, err := uc.Update(context.Background(), "q1", UpdateQuestionCommand{Text: "text", Weight: 2})
		if !errors.Is(err, ErrQuestionNotFound) {
			t.Fatalf("expected ErrQuestionNotFound, got %v", err)
		}
	})

	t.Run("success keeps type and order", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(catalogQuestion("q1", 3), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Question) (entities.Question, error) {
				if q.Text != "Updated text" || q.Weight != 4 {
					t.Fatalf("unexpected update: %+v", q)
				}
				if q.Type != entities.EvaluationTypeSite || q.DisplayOrder != 3 {
					t.Fatalf("type/order must not change: %+v", q)
				}
				return q, nil
			},
		)

		if _, err := uc.Update(context.Background(), " q1 ", UpdateQuestionCommand{Text: "Updated text", Weight: 4}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuestionUseCase_Deactivate(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newQuestionUseCaseWithMock(t)
		_, err := uc.Deactivate(context.Background(), "")
		if !errors.Is(err, ErrInvalidQuestionID) {
			t.Fatalf("expected ErrInvalidQuestionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		repo.EXPECT().SetActive(gomock.Any(), "q1", false).Return(entities.Question{}, nil)
		_, err := uc.Deactivate(context.Background(), "q1")
		if !errors.Is(err, ErrQuestionNotFound) {
			t.Fatalf("expected ErrQuestionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		q := catalogQuestion("q1", 1)
		q.Active = false
		repo.EXPECT().SetActive(gomock.Any(), "q1", false).Return(q, nil)

		res, err := uc.Deactivate(context.Background(), "q1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Active {
			t.Fatalf("expected inactive question")
		}
	})
}

func TestQuestionUseCase_Reorder(t *testing.T) {
	active := []entities.Question{
		catalogQuestion("q1", 1),
		catalogQuestion("q2", 2),
		catalogQuestion("q3", 3),
	}

	t.Run("unknown id rejected", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		repo.EXPECT().ListActiveByType(gomock.Any(), entities.EvaluationTypeSite).Return(active, nil)
		_, err := uc.Reorder(context.Background(), entities.EvaluationTypeSite, []string{"q2", "ghost"})
		if !errors.Is(err, ErrUnknownReorderQuestion) {
			t.Fatalf("expected ErrUnknownReorderQuestion, got %v", err)
		}
	})

	t.Run("renumbers submitted first then the rest", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		repo.EXPECT().ListActiveByType(gomock.Any(), entities.EvaluationTypeSite).Return(active, nil)

		setOrder := func(id string, order int) {
			repo.EXPECT().SetDisplayOrder(gomock.Any(), id, order).DoAndReturn(
				func(_ context.Context, qid string, o int) (entities.Question, error) {
					return catalogQuestion(qid, o), nil
				},
			)
		}
		// q3 submitted first, q1 second; q2 trails with its old relative order.
		setOrder("q3", 1)
		setOrder("q1", 2)
		setOrder("q2", 3)

		out, err := uc.Reorder(context.Background(), entities.EvaluationTypeSite, []string{"q3", "q1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("expected 3 questions, got %d", len(out))
		}
		for i, wantID := range []string{"q3", "q1", "q2"} {
			if out[i].ID != wantID || out[i].DisplayOrder != i+1 {
				t.Fatalf("position %d: got %s/%d", i, out[i].ID, out[i].DisplayOrder)
			}
		}
	})

	t.Run("duplicate ids collapse", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		repo.EXPECT().ListActiveByType(gomock.Any(), entities.EvaluationTypeSite).Return(active, nil)
		for i, id := range []string{"q2", "q1", "q3"} {
			order := i + 1
			repo.EXPECT().SetDisplayOrder(gomock.Any(), id, order).Return(catalogQuestion(id, order), nil)
		}

		out, err := uc.Reorder(context.Background(), entities.EvaluationTypeSite, []string{"q2", "q2", "q1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0].ID != "q2" || out[1].ID != "q1" || out[2].ID != "q3" {
			t.Fatalf("unexpected order: %v", []string{out[0].ID, out[1].ID, out[2].ID})
		}
	})
}

func TestQuestionUseCase_ListByType(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		uc, _ := newQuestionUseCaseWithMock(t)
		_, err := uc.ListByType(context.Background(), "")
		if !errors.Is(err, ErrInvalidQuestionType) {
			t.Fatalf("expected ErrInvalidQuestionType, got %v", err)
		}
	})

	t.Run("includes inactive questions", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		inactive := catalogQuestion("q2", 2)
		inactive.Active = false
		repo.EXPECT().ListByType(gomock.Any(), entities.EvaluationTypeSite).
			Return([]entities.Question{catalogQuestion("q1", 1), inactive}, nil)

		out, err := uc.ListByType(context.Background(), entities.EvaluationTypeSite)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(out))
		}
	})
}

func TestQuestionUseCase_ListActiveByType(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		uc, _ := newQuestionUseCaseWithMock(t)
		_, err := uc.ListActiveByType(context.Background(), "OFFICE")
		if !errors.Is(err, ErrInvalidQuestionType) {
			t.Fatalf("expected ErrInvalidQuestionType, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newQuestionUseCaseWithMock(t)
		repo.EXPECT().ListActiveByType(gomock.Any(), entities.EvaluationTypeSite).Return([]entities.Question{catalogQuestion("q1", 1)}, nil)
		out, err := uc.ListActiveByType(context.Background(), entities.EvaluationTypeSite)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 question, got %d", len(out))
		}
	})
}
