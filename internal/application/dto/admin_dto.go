package dto

// CreditsUpdate fija el saldo de créditos de un usuario (superadmin).
type CreditsUpdate struct {
	Credits int `json:"credits" validate:"min=0"`
}

// StatusUpdate activa o desactiva un usuario (superadmin).
type StatusUpdate struct {
	IsActive bool `json:"is_active"`
}

// PlanAssign asigna un plan a un usuario (superadmin).
type PlanAssign struct {
	CurrentPlan string `json:"current_plan" validate:"required,oneof=Free Starter Pro Enterprise"`
}

// PlanCreateRequest alta de un plan de precios. Price en texto decimal.
type PlanCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Price    string `json:"price" validate:"required"`
	Credits  int    `json:"credits" validate:"min=0"`
	IsActive bool   `json:"is_active"`
}
