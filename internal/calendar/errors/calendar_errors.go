package calendarerrors

import (
	"net/http"

	"hr-leave-agent/internal/shared/apperror"
)

var (
	ErrTeamNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"team_name is required",
		http.StatusBadRequest,
	)
	ErrUnknownTeam = apperror.New(
		apperror.CodeInvalidInput,
		"unknown team, expected one of: engineering, marketing, sales",
		http.StatusBadRequest,
	)
	ErrMonthRequired = apperror.New(
		apperror.CodeInvalidInput,
		"month is required",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected e.g. 2026-03, March or March 2026",
		http.StatusBadRequest,
	)
)
