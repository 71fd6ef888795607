// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"
	"time"

	"github.com/pdiddy/markdown-server/internal/convert"
	"github.com/pdiddy/markdown-server/pkg/types"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.ServiceInfo{
		Service:     serviceName,
		Description: serviceDescription,
		Version:     s.version,
		Endpoints: types.Endpoints{
			Health:  "/health",
			Docs:    "/docs",
			Process: "/process_file",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
		Version:   s.version,
	})
}

// handleDocs serves a static API description for clients that follow the
// docs link advertised by the root endpoint.
func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"service": serviceName,
		"version": s.version,
		"paths": map[string]string{
			"GET /":              "service information",
			"GET /health":        "health status",
			"GET /docs":          "this API description",
			"POST /process_file": `multipart form upload (field "file"); returns {markdown} or {error}`,
		},
		"allowed_types":       convert.AllowedTypes(),
		"max_file_size_bytes": s.cfg.Upload.MaxFileSize,
	})
}
