package dto

// CreateTokenRequest entrada para crear un token de API.
// ExpiresInDays cero significa sin expiración.
type CreateTokenRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Scopes        []string `json:"scopes,omitempty"`
	ExpiresInDays int      `json:"expires_in_days,omitempty" validate:"min=0"`
}
