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

// WorkHandler exposes the minimal work-registry surface consumed by the
// evaluation flow.

type WorkHandler struct {
	usecase usecase.IWorkUseCase
}

func NewWorkHandler(uc usecase.IWorkUseCase) *WorkHandler {
	return &WorkHandler{usecase: uc}
}

func (h *WorkHandler) CreateWork(c *gin.Context) {
	var payload request.CreateWorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WORK_INPUT", "Invalid work payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	w, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Address)
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWork(w))
}

func (h *WorkHandler) GetWork(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWork(w))
}

func mapWorkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkID), errors.Is(err, usecase.ErrInvalidWorkName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkNotFound):
		return pkg.NewDomainErrorSimple("WORK_NOT_FOUND", "Work not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
