package policyerrors

import (
	"fmt"
	"net/http"
	"strings"

	"hr-leave-agent/internal/shared/apperror"
)

var ErrTopicRequired = apperror.New(
	apperror.CodeInvalidInput,
	"topic is required",
	http.StatusBadRequest,
)

// PolicyNotFound echoes the literal topic so the conversational layer can
// report "no policy found for X", plus the topics that do exist.
func PolicyNotFound(topic string, available []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("no policy found for %q, available topics: %s", topic, strings.Join(available, ", ")),
		http.StatusNotFound,
	)
}
