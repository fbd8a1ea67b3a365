package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string
}

// DocumentResponse is the wire shape of a stored document.
type DocumentResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// PutDocumentRequest is the body for create and update calls.
type PutDocumentRequest struct {
	Value string `json:"value"`
}
