package employeeerrors

import (
	"go-hris-registry/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDuplicateEmployee = apperror.New(
		apperror.CodeConflict,
		"Employee with the same id already exists",
		http.StatusConflict,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidSalary,
		"Salary is outside the position salary band",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Employee is required",
		http.StatusBadRequest,
	)
	ErrSalaryTotalOverflow = apperror.New(
		apperror.CodeSalaryOverflow,
		"Salary total is too large to report",
		http.StatusUnprocessableEntity,
	)
)
