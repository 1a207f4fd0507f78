package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeUnknownAction = "UNKNOWN_ACTION"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
