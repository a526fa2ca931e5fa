package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/access"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
	"github.com/freelancehub/marketplace-api/internal/validation"
)

// ProjectHandler handles project endpoints. Mutations run through the
// validation engine; reads expose the ownership affordance.
type ProjectHandler struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
}

func NewProjectHandler(projects ports.ProjectRepository, users ports.UserRepository) *ProjectHandler {
	return &ProjectHandler{projects: projects, users: users}
}

// Create posts a new project on behalf of the authenticated company.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	actorID, actorRole, err := actor(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	payload := validation.Payload{
		"title":       req.Title,
		"description": req.Description,
		"budget":      req.Budget,
	}
	rules := []validation.Rule{
		validation.NewStructRule(&req),
		validation.DenialRule{
			Message: "Only companies can post projects",
			Permit: func(context.Context, validation.Payload) bool {
				return actorRole == domain.RoleCompany
			},
		},
	}

	proceed, err := runRules(c, payload, rules)
	if !proceed {
		return err
	}

	now := time.Now().UTC()
	created, err := h.projects.Create(c.Request().Context(), &domain.Project{
		CompanyID:   actorID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProjectResponse(created, actorID))
}

// Get returns a project with the caller's can_modify affordance.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projects.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	actorID, _ := c.Get("user_id").(string)
	return c.JSON(http.StatusOK, toProjectResponse(project, actorID))
}

// Invite invites a provider to the project. The actor must own the project;
// the invited user must exist and hold the provider role.
//
// @Summary      Invite a provider to a project
// @Tags         projects
// @Accept       json
// @Param        id    path  string                 true  "Project id"
// @Param        body  body  inviteProviderRequest  true  "Provider reference"
// @Success      204
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /projects/{id}/invite [post]
func (h *ProjectHandler) Invite(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}

	project, err := h.projects.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	// Authoritative ownership check; the can_modify affordance in responses
	// is derived from this same predicate.
	if !access.OwnedBy(actorID, project.CompanyID) {
		return domain.ErrForbidden
	}

	var req inviteProviderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	rules := []validation.Rule{
		validation.RequiredRule{Field: "provider_id"},
		validation.RoleRule{Field: "provider_id", Users: h.users, Satisfies: validation.IsProvider()},
	}
	proceed, err := runRules(c, validation.Payload{"provider_id": req.ProviderID}, rules)
	if !proceed {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func toProjectResponse(p *domain.Project, actorID string) projectResponse {
	return projectResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Title:       p.Title,
		Description: p.Description,
		Budget:      p.Budget,
		CreatedAt:   p.CreatedAt,
		CanModify:   access.OwnedBy(actorID, p.CompanyID),
	}
}
