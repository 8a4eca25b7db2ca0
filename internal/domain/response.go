package domain

// ErrorResponse is the envelope every failed request serializes to.
type ErrorResponse struct {
	Success   bool           `json:"success"`
	Error     string         `json:"error"`
	ErrorCode int            `json:"error_code,omitempty"`
	ErrorName string         `json:"error_name,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// DataResponse is the envelope for flat result sets.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Total   int  `json:"total,omitempty"`
}

// StructureResponse is the envelope for hierarchical results.
type StructureResponse struct {
	Success   bool `json:"success"`
	Structure any  `json:"structure"`
	Total     int  `json:"total"`
}
