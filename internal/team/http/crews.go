package http

import (
	"encoding/json"
	"net/http"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/service"
	"github.com/gridline/crewhub/pkg/httpx"
	"github.com/gridline/crewhub/pkg/teamsdk"
)

type CrewsHandler struct {
	CrewService *service.CrewService
}

// HandleCreate godoc
//
//	@Summary		Create Crew Endpoint
//	@Description	Create an active crew in a project under a designated lead. The lead must hold an active team membership and is tracked on the crew record, never as a member row.
//	@Tags			Crews
//	@Accept			json
//	@Produce		json
//	@Param			X-Actor-ID	header		string						true	"Acting user ID"
//	@Param			id			path		string						true	"Project ID"
//	@Param			request		body		teamsdk.CreateCrewRequest	true	"Crew details"
//	@Success		201			{object}	teamsdk.CrewResponse		"the created crew"
//	@Failure		403			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Failure		409			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/projects/{id}/crews [post].
func (h *CrewsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req teamsdk.CreateCrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	crew, err := h.CrewService.CreateCrew(
		ctx,
		r.PathValue("id"),
		req.LeadID,
		req.Name,
		domain.CrewType(req.Type),
		req.Description,
		httpx.ActorFromCtx(ctx),
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, crewResponse(crew))
}

// HandleList godoc
//
//	@Summary		List Crews Endpoint
//	@Description	List every crew of a project.
//	@Tags			Crews
//	@Produce		json
//	@Param			X-Actor-ID	header		string					true	"Acting user ID"
//	@Param			id			path		string					true	"Project ID"
//	@Success		200			{array}		teamsdk.CrewResponse	"crews"
//	@Failure		403			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id}/crews [get].
func (h *CrewsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	crews, err := h.CrewService.ListCrews(ctx, r.PathValue("id"), httpx.ActorFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]teamsdk.CrewResponse, 0, len(crews))
	for _, c := range crews {
		out = append(out, crewResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDeactivate godoc
//
//	@Summary		Deactivate Crew Endpoint
//	@Description	Soft-deactivate a crew, keeping its membership history. Deactivating an already-inactive crew succeeds quietly.
//	@Tags			Crews
//	@Produce		json
//	@Param			X-Actor-ID	header	string	true	"Acting user ID"
//	@Param			id			path	string	true	"Crew ID"
//	@Success		204			"crew deactivated"
//	@Failure		403			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/crews/{id} [delete].
func (h *CrewsHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.CrewService.DeactivateCrew(ctx, r.PathValue("id"), httpx.ActorFromCtx(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAddMember godoc
//
//	@Summary		Add Crew Member Endpoint
//	@Description	Assign an active project member to a crew. A user holds at most one active stint per crew, and the crew lead can never be added as a member.
//	@Tags			Crews
//	@Accept			json
//	@Produce		json
//	@Param			X-Actor-ID	header		string							true	"Acting user ID"
//	@Param			id			path		string							true	"Crew ID"
//	@Param			request		body		teamsdk.AddCrewMemberRequest	true	"Member details"
//	@Success		201			{object}	teamsdk.CrewMembershipResponse	"the created crew membership"
//	@Failure		403			{object}	teamsdk.ErrorResponse			"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse			"error, error_description"
//	@Failure		409			{object}	teamsdk.ErrorResponse			"error, error_description"
//	@Failure		422			{object}	teamsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/crews/{id}/members [post].
func (h *CrewsHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req teamsdk.AddCrewMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	membership, err := h.CrewService.AddMember(
		ctx,
		r.PathValue("id"),
		req.UserID,
		domain.CrewRole(req.Role),
		httpx.ActorFromCtx(ctx),
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, crewMembershipResponse(membership))
}

// HandleRemoveMember godoc
//
//	@Summary		Remove Crew Member Endpoint
//	@Description	End a member's active stint on a crew. The row keeps its history with end_date stamped.
//	@Tags			Crews
//	@Produce		json
//	@Param			X-Actor-ID	header	string	true	"Acting user ID"
//	@Param			id			path	string	true	"Crew ID"
//	@Param			userID		path	string	true	"Member user ID"
//	@Success		204			"crew member removed"
//	@Failure		403			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/crews/{id}/members/{userID} [delete].
func (h *CrewsHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.CrewService.RemoveMember(ctx, r.PathValue("id"), r.PathValue("userID"), httpx.ActorFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListMembers godoc
//
//	@Summary		List Crew Members Endpoint
//	@Description	List every membership row of a crew, active first.
//	@Tags			Crews
//	@Produce		json
//	@Param			X-Actor-ID	header		string						true	"Acting user ID"
//	@Param			id			path		string						true	"Crew ID"
//	@Success		200			{object}	teamsdk.CrewMembersResponse	"members"
//	@Failure		403			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/crews/{id}/members [get].
func (h *CrewsHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	members, err := h.CrewService.ListCrewMembers(ctx, r.PathValue("id"), httpx.ActorFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]teamsdk.CrewMembershipResponse, 0, len(members))
	for _, m := range members {
		out = append(out, crewMembershipResponse(m))
	}
	httpx.WriteJSON(w, http.StatusOK, teamsdk.CrewMembersResponse{Members: out})
}

// HandleCandidates godoc
//
//	@Summary		List Crew Candidates Endpoint
//	@Description	List active project members eligible to join the crew: everyone active minus current crew members and the lead.
//	@Tags			Crews
//	@Produce		json
//	@Param			X-Actor-ID	header		string						true	"Acting user ID"
//	@Param			id			path		string						true	"Crew ID"
//	@Success		200			{object}	teamsdk.CandidatesResponse	"candidates"
//	@Failure		403			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/crews/{id}/candidates [get].
func (h *CrewsHandler) HandleCandidates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	candidates, err := h.CrewService.AvailableCandidates(ctx, r.PathValue("id"), httpx.ActorFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, teamsdk.CandidatesResponse{
		Candidates: membershipResponses(candidates),
	})
}
