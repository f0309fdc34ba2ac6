package handlers

import (
	"errors"
	"net/http"

	request "sst_compliance/internal/adapter/http/dto/request"
	response "sst_compliance/internal/adapter/http/dto/response"
	"sst_compliance/internal/usecase"
	"sst_compliance/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuestionPayload = pkg.NewDomainErrorSimple("INVALID_QUESTION_INPUT", "Invalid question payload", http.StatusBadRequest)
)

// QuestionHandler handles HTTP requests for the safety question catalog.

type QuestionHandler struct {
	usecase usecase.IQuestionUseCase
}

func NewQuestionHandler(uc usecase.IQuestionUseCase) *QuestionHandler {
	return &QuestionHandler{usecase: uc}
}

// CreateQuestion appends a new checklist question to its type's catalog.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var payload request.CreateQuestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuestionPayload.HTTPStatus, errInvalidQuestionPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), usecase.CreateQuestionCommand{
		Text:   payload.Text,
		Weight: payload.Weight,
		Type:   payload.ResolveType(),
	})
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuestion(q))
}

// UpdateQuestion edits text and weight of a catalog question.
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var payload request.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuestionPayload.HTTPStatus, errInvalidQuestionPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateQuestionCommand{
		Text:   payload.Text,
		Weight: payload.Weight,
	})
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuestion(q))
}

// DeactivateQuestion soft-disables a question; it stays resolvable for
// historical answers.
func (h *QuestionHandler) DeactivateQuestion(c *gin.Context) {
	q, err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuestion(q))
}

// ReorderQuestions renumbers the display order of a type's active questions.
func (h *QuestionHandler) ReorderQuestions(c *gin.Context) {
	var payload request.ReorderQuestionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuestionPayload.HTTPStatus, errInvalidQuestionPayload.ToHTTPError())
		return
	}

	qs, err := h.usecase.Reorder(c.Request.Context(), payload.ResolveType(), payload.QuestionIDs)
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuestions(qs))
}

// ListQuestions lists a type's questions in display order. Deactivated
// questions are included only with include_inactive=true.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	t := request.CreateQuestionRequest{Type: c.Query("type")}.ResolveType()

	list := h.usecase.ListActiveByType
	if c.Query("include_inactive") == "true" {
		list = h.usecase.ListByType
	}

	qs, err := list(c.Request.Context(), t)
	if err != nil {
		appErr := mapQuestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuestions(qs))
}

func mapQuestionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuestionID),
		errors.Is(err, usecase.ErrInvalidQuestionText),
		errors.Is(err, usecase.ErrInvalidQuestionWeight),
		errors.Is(err, usecase.ErrInvalidQuestionType),
		errors.Is(err, usecase.ErrUnknownReorderQuestion):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuestionNotFound):
		return pkg.NewDomainErrorSimple("QUESTION_NOT_FOUND", "Question not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
