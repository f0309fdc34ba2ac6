package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sst_compliance/internal/adapter/http/handlers/mocks"
	"sst_compliance/internal/domain/entities"
	"sst_compliance/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEvaluationRouter(t *testing.T) (*gin.Engine, *mocks.MockIEvaluationUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEvaluationUseCase(ctrl)
	h := NewEvaluationHandler(uc)

	r := gin.New()
	r.POST("/v1/evaluations", h.CreateEvaluation)
	r.GET("/v1/evaluations/:id", h.GetEvaluation)
	r.PUT("/v1/evaluations/:id/answers", h.ReplaceAnswers)
	r.POST("/v1/evaluations/:id/complete", h.CompleteEvaluation)
	r.DELETE("/v1/evaluations/:id", h.DeleteEvaluation)
	return r, uc
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEvaluationHandler_CreateEvaluation(t *testing.T) {
	validBody := `{"work_id":"work-1","evaluator_id":"user-1","type":"SITE","date":"2025-05-10","employees_count":30}`

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newEvaluationRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/evaluations", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable date", func(t *testing.T) {
		r, _ := newEvaluationRouter(t)
		body := `{"work_id":"work-1","evaluator_id":"user-1","type":"SITE","date":"May 10th","employees_count":30}`
		w := doJSON(t, r, http.MethodPost, "/v1/evaluations", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("work not found", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Evaluation{}, usecase.ErrWorkNotFound)

		w := doJSON(t, r, http.MethodPost, "/v1/evaluations", validBody)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("inactive work maps to 404", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Evaluation{}, usecase.ErrWorkInactive)

		w := doJSON(t, r, http.MethodPost, "/v1/evaluations", validBody)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateEvaluationCommand) (entities.Evaluation, error) {
				if cmd.Type != entities.EvaluationTypeSite || cmd.EmployeesCount != 30 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Evaluation{
					ID:             "ev-1",
					WorkID:         cmd.WorkID,
					EvaluatorID:    cmd.EvaluatorID,
					Type:           cmd.Type,
					EmployeesCount: cmd.EmployeesCount,
					Status:         entities.EvaluationStatusDraft,
					Answers:        []entities.Answer{},
				}, nil
			},
		)

		w := doJSON(t, r, http.MethodPost, "/v1/evaluations", validBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["id"] != "ev-1" || got["status"] != "DRAFT" {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestEvaluationHandler_ReplaceAnswers(t *testing.T) {
	body := `{"answers":[{"question_id":"q1","value":"NO","observation":"no guardrail"}]}`

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newEvaluationRouter(t)
		w := doJSON(t, r, http.MethodPut, "/v1/evaluations/ev-1/answers", "not json")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown question maps to 400", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().ReplaceAnswers(gomock.Any(), "ev-1", gomock.Any()).Return(entities.Evaluation{}, usecase.ErrUnknownQuestion)

		w := doJSON(t, r, http.MethodPut, "/v1/evaluations/ev-1/answers", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("completed evaluation maps to 409", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().ReplaceAnswers(gomock.Any(), "ev-1", gomock.Any()).Return(entities.Evaluation{}, usecase.ErrEvaluationAlreadyCompleted)

		w := doJSON(t, r, http.MethodPut, "/v1/evaluations/ev-1/answers", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().ReplaceAnswers(gomock.Any(), "ev-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, inputs []usecase.AnswerInput) (entities.Evaluation, error) {
				if len(inputs) != 1 || inputs[0].QuestionID != "q1" || inputs[0].Value != "NO" {
					t.Fatalf("unexpected inputs: %+v", inputs)
				}
				return entities.Evaluation{
					ID:     id,
					Status: entities.EvaluationStatusDraft,
					Answers: []entities.Answer{
						{ID: "a1", QuestionID: "q1", Value: entities.AnswerValueNo, Observation: "no guardrail"},
					},
				}, nil
			},
		)

		w := doJSON(t, r, http.MethodPut, "/v1/evaluations/ev-1/answers", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestEvaluationHandler_CompleteEvaluation(t *testing.T) {
	t.Run("incomplete answers maps to 422", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().Complete(gomock.Any(), "ev-1").Return(entities.Evaluation{},
			&usecase.IncompleteAnswersError{MissingQuestionIDs: []string{"q2", "q5"}})

		w := doJSON(t, r, http.MethodPost, "/v1/evaluations/ev-1/complete", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["code"] != "INCOMPLETE_ANSWERS" {
			t.Fatalf("unexpected code: %v", got)
		}
	})

	t.Run("already completed maps to 409", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().Complete(gomock.Any(), "ev-1").Return(entities.Evaluation{}, usecase.ErrEvaluationAlreadyCompleted)

		w := doJSON(t, r, http.MethodPost, "/v1/evaluations/ev-1/complete", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns total penalty", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		total := 16454.36
		uc.EXPECT().Complete(gomock.Any(), "ev-1").Return(entities.Evaluation{
			ID:           "ev-1",
			Status:       entities.EvaluationStatusCompleted,
			TotalPenalty: &total,
		}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/evaluations/ev-1/complete", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["status"] != "COMPLETED" {
			t.Fatalf("unexpected status: %v", got["status"])
		}
		if got["total_penalty"] != 16454.36 {
			t.Fatalf("unexpected total penalty: %v", got["total_penalty"])
		}
	})
}

func TestEvaluationHandler_GetEvaluation(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Evaluation{}, usecase.ErrEvaluationNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/evaluations/ev-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Evaluation{}, errors.New("dynamo down"))

		w := doJSON(t, r, http.MethodGet, "/v1/evaluations/ev-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Evaluation{
			ID:     "ev-1",
			Status: entities.EvaluationStatusDraft,
		}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/evaluations/ev-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEvaluationHandler_DeleteEvaluation(t *testing.T) {
	t.Run("completed evaluation maps to 409", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "ev-1").Return(usecase.ErrEvaluationAlreadyCompleted)

		w := doJSON(t, r, http.MethodDelete, "/v1/evaluations/ev-1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newEvaluationRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "ev-1").Return(nil)

		w := doJSON(t, r, http.MethodDelete, "/v1/evaluations/ev-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
