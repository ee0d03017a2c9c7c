package dto

// ErrorResponse cuerpo de error HTTP. Detail se mantiene por compatibilidad
// con backends que devuelven {"detail": "..."} en lugar de code/message.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Reason devuelve la razón legible priorizando Detail sobre Message.
func (e ErrorResponse) Reason() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// MessageResponse respuesta genérica de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
