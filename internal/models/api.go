package models

// APIError is the error payload shape shared by every endpoint.
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

// DataResponse is the success envelope the frontend expects on public
// endpoints: {success: true, data: ...}.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}
