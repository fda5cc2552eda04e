package positionerrors

import (
	"go-hris-registry/internal/shared/apperror"
	"net/http"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)
	ErrPositionAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Position with the same id already exists",
		http.StatusConflict,
	)
	ErrInvalidSalaryRange = apperror.New(
		apperror.CodeInvalidInput,
		"Minimum salary must be non-negative and not greater than maximum salary",
		http.StatusBadRequest,
	)
	ErrInvalidPositionInput = apperror.New(
		apperror.CodeInvalidInput,
		"Position id and title are required",
		http.StatusBadRequest,
	)
)
