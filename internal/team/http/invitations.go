package http

import (
	"encoding/json"
	"net/http"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/service"
	"github.com/gridline/crewhub/pkg/httpx"
	"github.com/gridline/crewhub/pkg/teamsdk"
)

type InvitationsHandler struct {
	MembershipService *service.MembershipService
}

// HandleInvite godoc
//
//	@Summary		Invite Team Member Endpoint
//	@Description	Issue a single-use invitation for an email address to join the project at a role. The raw token in the response is its only reveal; a notification email is dispatched fire-and-forget.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			X-Actor-ID	header		string					true	"Acting user ID"
//	@Param			id			path		string					true	"Project ID"
//	@Param			request		body		teamsdk.InviteRequest	true	"Invitation details"
//	@Success		201			{object}	teamsdk.InviteResponse	"invitation_id, invite_token, expires_at"
//	@Failure		400			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		409			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		422			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id}/invitations [post].
func (h *InvitationsHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID := httpx.ActorFromCtx(ctx)

	var req teamsdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	inv, token, err := h.MembershipService.Invite(
		ctx,
		r.PathValue("id"),
		req.Email,
		domain.Role(req.Role),
		actorID,
		req.Message,
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, teamsdk.InviteResponse{
		InvitationID: inv.ID,
		Email:        inv.Email,
		Role:         string(inv.Role),
		InviteToken:  token,
		ExpiresAt:    inv.ExpiresAt,
	})
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation Endpoint
//	@Description	Redeem an invitation token for the acting user. Exactly one acceptance ever succeeds per token; losers observe invite_already_used.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			X-Actor-ID	header		string								true	"Acting user ID"
//	@Param			request		body		teamsdk.AcceptInvitationRequest		true	"Invitation token"
//	@Success		200			{object}	teamsdk.MembershipResponse			"the resulting membership"
//	@Failure		404			{object}	teamsdk.ErrorResponse				"error, error_description"
//	@Failure		409			{object}	teamsdk.ErrorResponse				"error, error_description"
//	@Failure		410			{object}	teamsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/invitations/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID := httpx.ActorFromCtx(ctx)

	var req teamsdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	membership, err := h.MembershipService.AcceptInvitation(ctx, req.InviteToken, actorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, membershipResponse(membership))
}

// HandleDecline godoc
//
//	@Summary		Decline Invitation Endpoint
//	@Description	Decline an invitation token. Holding the token is proof enough; no actor identity is required. Declining an already declined or lapsed invitation succeeds quietly.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body	teamsdk.DeclineInvitationRequest	true	"Invitation token"
//	@Success		204		"invitation declined"
//	@Failure		404		{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/invitations/decline [post].
func (h *InvitationsHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	var req teamsdk.DeclineInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	if err := h.MembershipService.DeclineInvitation(r.Context(), req.InviteToken); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
