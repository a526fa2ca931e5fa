package handler

import "time"

type createProjectRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Budget      float64 `json:"budget"      validate:"required,gt=0"`
}

type inviteProviderRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
}

// projectResponse carries the can_modify affordance computed from the same
// ownership predicate the server-side checks use.
type projectResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	CreatedAt   time.Time `json:"created_at"`
	CanModify   bool      `json:"can_modify"`
}
