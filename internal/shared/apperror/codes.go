package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput   = "INVALID_INPUT"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInvalidSalary  = "INVALID_SALARY"
	CodeSalaryOverflow = "SALARY_OVERFLOW"
	CodeRateLimited    = "RATE_LIMITED"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
