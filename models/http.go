package models

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	// Error is a generic, user-displayable description of the failure.
	Error string `json:"error"`

	// Fields lists field-level validation problems, keyed by field name.
	Fields []FieldErrorResponse `json:"fields,omitempty"`
}

// FieldErrorResponse describes a single invalid input field.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
