package types

// MarkdownResponse is the success body for POST /process_file.
type MarkdownResponse struct {
	Markdown string `json:"markdown"`
}

// ErrorResponse is the failure body for every endpoint. A response carries
// either markdown or error, never both.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// Endpoints lists the paths advertised by the root endpoint.
type Endpoints struct {
	Health  string `json:"health"`
	Docs    string `json:"docs"`
	Process string `json:"process"`
}

// ServiceInfo is the GET / body.
type ServiceInfo struct {
	Service     string    `json:"service"`
	Description string    `json:"description"`
	Version     string    `json:"version"`
	Endpoints   Endpoints `json:"endpoints"`
}
