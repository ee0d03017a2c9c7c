package entity

import "time"

// Roles válidos para User.
const (
	RoleUser       = "user"
	RoleSuperadmin = "superadmin"
)

// Planes disponibles.
const (
	PlanFree       = "Free"
	PlanStarter    = "Starter"
	PlanPro        = "Pro"
	PlanEnterprise = "Enterprise"
)

// User representa la identidad autenticada. En el cliente el campo Credits es
// una caché del saldo; el valor del backend siempre gana ante divergencia.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"` // user, superadmin
	IsActive    bool       `json:"is_active"`
	Credits     int        `json:"credits"`
	CurrentPlan string     `json:"current_plan"` // Free, Starter, Pro, Enterprise
	CreatedAt   time.Time  `json:"created_at"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// ValidPlan indica si el nombre de plan es uno de los conocidos.
func ValidPlan(name string) bool {
	switch name {
	case PlanFree, PlanStarter, PlanPro, PlanEnterprise:
		return true
	}
	return false
}
