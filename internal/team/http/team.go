package http

import (
	"encoding/json"
	"net/http"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/service"
	"github.com/gridline/crewhub/pkg/httpx"
	"github.com/gridline/crewhub/pkg/teamsdk"
)

type TeamHandler struct {
	MembershipService *service.MembershipService
}

// HandleList godoc
//
//	@Summary		List Team Endpoint
//	@Description	List every membership of a project, all statuses. Read-only; listing never mutates state.
//	@Tags			Team
//	@Produce		json
//	@Param			X-Actor-ID	header		string					true	"Acting user ID"
//	@Param			id			path		string					true	"Project ID"
//	@Success		200			{object}	teamsdk.TeamResponse	"members"
//	@Failure		403			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id}/team [get].
func (h *TeamHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	team, err := h.MembershipService.ListTeam(ctx, r.PathValue("id"), httpx.ActorFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, teamsdk.TeamResponse{
		Members: membershipResponses(team),
	})
}

// HandleGet godoc
//
//	@Summary		Get Membership Endpoint
//	@Description	Fetch a single member's row, including the role they hold.
//	@Tags			Team
//	@Produce		json
//	@Param			X-Actor-ID	header		string						true	"Acting user ID"
//	@Param			id			path		string						true	"Project ID"
//	@Param			userID		path		string						true	"Member user ID"
//	@Success		200			{object}	teamsdk.MembershipResponse	"the membership"
//	@Failure		404			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/projects/{id}/team/{userID} [get].
func (h *TeamHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("id")

	// Listing permission doubles as read permission on a single row.
	team, err := h.MembershipService.ListTeam(ctx, projectID, httpx.ActorFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	userID := r.PathValue("userID")
	for _, m := range team {
		if m.UserID == userID {
			httpx.WriteJSON(w, http.StatusOK, membershipResponse(m))
			return
		}
	}
	writeServiceError(w, r, service.ErrNotFound)
}

// HandleChangeRole godoc
//
//	@Summary		Change Role Endpoint
//	@Description	Update a member's role in place. Owner memberships are unreachable through this path, in either direction.
//	@Tags			Team
//	@Accept			json
//	@Produce		json
//	@Param			X-Actor-ID	header		string						true	"Acting user ID"
//	@Param			id			path		string						true	"Project ID"
//	@Param			userID		path		string						true	"Member user ID"
//	@Param			request		body		teamsdk.ChangeRoleRequest	true	"New role"
//	@Success		200			{object}	teamsdk.MembershipResponse	"the updated membership"
//	@Failure		403			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Failure		422			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/projects/{id}/team/{userID} [patch].
func (h *TeamHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req teamsdk.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	membership, err := h.MembershipService.ChangeRole(
		ctx,
		r.PathValue("id"),
		r.PathValue("userID"),
		domain.Role(req.Role),
		httpx.ActorFromCtx(ctx),
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, membershipResponse(membership))
}

// HandleRemove godoc
//
//	@Summary		Remove Team Member Endpoint
//	@Description	Soft-remove a member: their status becomes inactive, the row and its crew history stay. Removing an already-inactive member succeeds quietly.
//	@Tags			Team
//	@Produce		json
//	@Param			X-Actor-ID	header	string	true	"Acting user ID"
//	@Param			id			path	string	true	"Project ID"
//	@Param			userID		path	string	true	"Member user ID"
//	@Success		204			"member removed"
//	@Failure		403			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		422			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id}/team/{userID} [delete].
func (h *TeamHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.MembershipService.Remove(ctx, r.PathValue("id"), r.PathValue("userID"), httpx.ActorFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
