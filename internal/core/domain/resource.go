package domain

import "time"

// Project is a company's posted job. Only the owning company may mutate it.
type Project struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Proposal is a provider's bid on a project. Owned by the provider.
type Proposal struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	ProviderID string    `json:"provider_id"`
	Amount     float64   `json:"amount"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// Transaction records a payment between a company and a provider.
type Transaction struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	CompanyID  string    `json:"company_id"`
	ProviderID string    `json:"provider_id"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification is addressed to a single user; only that user may mark it read.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
