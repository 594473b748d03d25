package models

// FieldError is a per-field validation complaint reported by the store,
// e.g. {"code": "validation_invalid_email", "message": "Must be a valid email address."}.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrorMap maps a field name to its validation complaint.
type FieldErrorMap map[string]FieldError
