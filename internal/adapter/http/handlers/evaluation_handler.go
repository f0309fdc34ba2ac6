package handlers

import (
	"errors"
	"log"
	"net/http"

	request "sst_compliance/internal/adapter/http/dto/request"
	response "sst_compliance/internal/adapter/http/dto/response"
	"sst_compliance/internal/usecase"
	"sst_compliance/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEvaluationPayload = pkg.NewDomainErrorSimple("INVALID_EVALUATION_INPUT", "Invalid evaluation payload", http.StatusBadRequest)
)

// EvaluationHandler handles HTTP requests for safety evaluations.
//
// The handler is a thin adapter: the state machine and the penalty
// computation live in the use case.

type EvaluationHandler struct {
	usecase usecase.IEvaluationUseCase
}

func NewEvaluationHandler(uc usecase.IEvaluationUseCase) *EvaluationHandler {
	return &EvaluationHandler{usecase: uc}
}

// CreateEvaluation opens a new DRAFT evaluation for an active work.
//
// @Summary  Create evaluation
// @Tags     evaluations
// @Accept   json
// @Produce  json
// @Param    evaluation body request.CreateEvaluationRequest true "Evaluation header"
// @Success  201 {object} response.EvaluationResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /evaluations [post]
func (h *EvaluationHandler) CreateEvaluation(c *gin.Context) {
	var payload request.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEvaluationPayload.HTTPStatus, errInvalidEvaluationPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidEvaluationPayload.HTTPStatus, errInvalidEvaluationPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEvaluation(e))
}

// ReplaceAnswers replaces the full answer set of a draft evaluation.
//
// @Summary  Replace answers
// @Tags     evaluations
// @Accept   json
// @Produce  json
// @Param    id      path string                        true "Evaluation id"
// @Param    answers body request.ReplaceAnswersRequest true "Full answer set"
// @Success  200 {object} response.EvaluationResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /evaluations/{id}/answers [put]
func (h *EvaluationHandler) ReplaceAnswers(c *gin.Context) {
	id := c.Param("id")

	var payload request.ReplaceAnswersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEvaluationPayload.HTTPStatus, errInvalidEvaluationPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.ReplaceAnswers(c.Request.Context(), id, payload.ToInputs())
	if err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvaluation(e))
}

// CompleteEvaluation validates completeness, computes the penalty and
// finalizes the evaluation.
//
// @Summary  Complete evaluation
// @Tags     evaluations
// @Produce  json
// @Param    id path string true "Evaluation id"
// @Success  200 {object} response.EvaluationResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /evaluations/{id}/complete [post]
func (h *EvaluationHandler) CompleteEvaluation(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[evaluation][handler] complete start evaluation_id=%s", id)

	e, err := h.usecase.Complete(c.Request.Context(), id)
	if err != nil {
		log.Printf("[evaluation][handler] complete failed evaluation_id=%s err=%v", id, err)
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[evaluation][handler] complete success evaluation_id=%s status=%s", e.ID, e.Status)

	c.JSON(http.StatusOK, response.FromEvaluation(e))
}

// GetEvaluation returns an evaluation with its nested answers.
//
// @Summary  Get evaluation
// @Tags     evaluations
// @Produce  json
// @Param    id path string true "Evaluation id"
// @Success  200 {object} response.EvaluationResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /evaluations/{id} [get]
func (h *EvaluationHandler) GetEvaluation(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvaluation(e))
}

// DeleteEvaluation removes a draft evaluation and its answers.
//
// @Summary  Delete evaluation
// @Tags     evaluations
// @Param    id path string true "Evaluation id"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /evaluations/{id} [delete]
func (h *EvaluationHandler) DeleteEvaluation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEvaluationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapEvaluationError(err error) *pkg.AppError {
	var incomplete *usecase.IncompleteAnswersError
	switch {
	case errors.As(err, &incomplete):
		return pkg.NewDomainErrorSimple("INCOMPLETE_ANSWERS", incomplete.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidEvaluationID),
		errors.Is(err, usecase.ErrInvalidWorkID),
		errors.Is(err, usecase.ErrInvalidEvaluatorID),
		errors.Is(err, usecase.ErrInvalidEvaluationType),
		errors.Is(err, usecase.ErrInvalidEmployeesCount),
		errors.Is(err, usecase.ErrInvalidAnswerValue),
		errors.Is(err, usecase.ErrUnknownQuestion),
		errors.Is(err, usecase.ErrDuplicateAnswer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkNotFound), errors.Is(err, usecase.ErrWorkInactive):
		return pkg.NewDomainErrorSimple("WORK_NOT_FOUND", "Active work not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEvaluationNotFound):
		return pkg.NewDomainErrorSimple("EVALUATION_NOT_FOUND", "Evaluation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEvaluationAlreadyCompleted):
		return pkg.NewDomainErrorSimple("EVALUATION_ALREADY_COMPLETED", "Evaluation is finalized and cannot be modified", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
