package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// BatchItemResult is the outcome for one document of a batch upload.
type BatchItemResult struct {
	Filename string         `json:"filename"`
	Data     *CASData       `json:"data,omitempty"`
	Error    *ErrorResponse `json:"error,omitempty"`
}

type BatchResponse struct {
	Results     []BatchItemResult `json:"results"`
	ProcessedAt string            `json:"processed_at"`
}
