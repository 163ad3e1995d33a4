package http

import (
	"errors"
	"net/http"

	"github.com/gridline/crewhub/internal/team/service"
	"github.com/gridline/crewhub/pkg/httpx"
	"github.com/gridline/crewhub/pkg/slogx"
	"github.com/gridline/crewhub/pkg/teamsdk"
)

// writeServiceError maps a service error onto its HTTP status and error
// envelope. Callers are expected to branch on the code: an expired invitation
// and a permission denial need different corrective action.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteJSON(w, http.StatusBadRequest, teamsdk.ErrorResponse{
			Error:            teamsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "the request is malformed or missing required parameters",
		})
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteJSON(w, http.StatusForbidden, teamsdk.ErrorResponse{
			Error:            teamsdk.ErrorCodeForbidden,
			ErrorDescription: "the acting user is not permitted to perform this operation",
		})
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, teamsdk.ErrorResponse{
			Error:            teamsdk.ErrorCodeNotFound,
			ErrorDescription: "the target resource does not exist",
		})
	case errors.Is(err, service.ErrAlreadyUsed):
		httpx.WriteJSON(w, http.StatusConflict, teamsdk.ErrorResponse{
			Error:            teamsdk.ErrorCodeInviteAlreadyUsed,
			ErrorDescription: "the invitation has already been used",
		})
	case errors.Is(err, service.ErrConflict):
		httpx.WriteJSON(w, http.StatusConflict, teamsdk.ErrorResponse{
			Error:            teamsdk.ErrorCodeConflict,
			ErrorDescription: "the operation conflicts with current state",
		})
	case errors.Is(err, service.ErrExpired):
		httpx.WriteJSON(w, http.StatusGone, teamsdk.ErrorResponse{
			Error:            teamsdk.ErrorCodeInviteExpired,
			ErrorDescription: "the invitation has expired",
		})
	case errors.Is(err, service.ErrInvalidTransition):
		httpx.WriteJSON(w, http.StatusUnprocessableEntity, teamsdk.ErrorResponse{
			Error:            teamsdk.ErrorCodeInvalidTransition,
			ErrorDescription: "the operation is not a valid lifecycle transition",
		})
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, teamsdk.ErrorResponse{
			Error:            teamsdk.ErrorCodeServerError,
			ErrorDescription: "internal server error",
		})
	}
}

// writeInvalidBody reports a malformed or undecodable JSON body.
func writeInvalidBody(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, teamsdk.ErrorResponse{
		Error:            teamsdk.ErrorCodeInvalidRequest,
		ErrorDescription: "Invalid JSON body",
	})
}
