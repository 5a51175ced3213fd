package dto

// Machine-readable error kinds, stable across releases.
const (
	KindUnauthenticated = "UNAUTHENTICATED"
	KindForbidden       = "FORBIDDEN"
	KindValidation      = "VALIDATION"
	KindNotFound        = "NOT_FOUND"
	KindConflict        = "CONFLICT"
	KindUpstream        = "UPSTREAM"
)

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func Err(kind, message string) ErrorResponse {
	return ErrorResponse{Error: true, Kind: kind, Message: message}
}

type MessageResponse struct {
	Message string `json:"message"`
}
