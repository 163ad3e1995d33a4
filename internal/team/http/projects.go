package http

import (
	"encoding/json"
	"net/http"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/service"
	"github.com/gridline/crewhub/pkg/httpx"
	"github.com/gridline/crewhub/pkg/teamsdk"
)

type ProjectsHandler struct {
	ProjectService    *service.ProjectService
	MembershipService *service.MembershipService
}

// HandleCreate godoc
//
//	@Summary		Create Project Endpoint
//	@Description	Create a new project with the acting user as its founding owner. The owner membership is established atomically with the project.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			X-Actor-ID	header		string							true	"Acting user ID"
//	@Param			request		body		teamsdk.CreateProjectRequest	true	"Project details"
//	@Success		201			{object}	teamsdk.ProjectResponse			"the created project"
//	@Failure		400			{object}	teamsdk.ErrorResponse			"error, error_description"
//	@Failure		409			{object}	teamsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID := httpx.ActorFromCtx(ctx)

	var req teamsdk.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	project, err := h.ProjectService.CreateProject(
		ctx,
		req.CompanyID,
		req.Number,
		req.Name,
		req.Description,
		domain.ProjectStatus(req.Status),
		actorID,
		req.OwnerEmail,
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, projectResponse(project))
}

// HandleGet godoc
//
//	@Summary		Get Project Endpoint
//	@Description	Fetch a project by ID.
//	@Tags			Projects
//	@Produce		json
//	@Param			X-Actor-ID	header		string					true	"Acting user ID"
//	@Param			id			path		string					true	"Project ID"
//	@Success		200			{object}	teamsdk.ProjectResponse	"the project"
//	@Failure		404			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	project, err := h.ProjectService.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, projectResponse(project))
}

// HandleArchive godoc
//
//	@Summary		Archive Project Endpoint
//	@Description	Shelve a project. Every active or inactive membership cascades to archived in the same transaction, remembering its prior status.
//	@Tags			Projects
//	@Produce		json
//	@Param			X-Actor-ID	header	string	true	"Acting user ID"
//	@Param			id			path	string	true	"Project ID"
//	@Success		204			"project archived"
//	@Failure		403			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		422			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id}/archive [post].
func (h *ProjectsHandler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.MembershipService.ArchiveProject(ctx, r.PathValue("id"), httpx.ActorFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUnarchive godoc
//
//	@Summary		Unarchive Project Endpoint
//	@Description	Reverse a project archive. Every archived membership returns to the status it held before the cascade.
//	@Tags			Projects
//	@Produce		json
//	@Param			X-Actor-ID	header	string	true	"Acting user ID"
//	@Param			id			path	string	true	"Project ID"
//	@Success		204			"project unarchived"
//	@Failure		403			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Failure		422			{object}	teamsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/projects/{id}/unarchive [post].
func (h *ProjectsHandler) HandleUnarchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.MembershipService.UnarchiveProject(ctx, r.PathValue("id"), httpx.ActorFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
