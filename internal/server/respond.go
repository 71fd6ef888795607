// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"net/http"

	"github.com/pdiddy/markdown-server/pkg/types"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Errorf("writing response: %v", err)
	}
}

// writeError logs the message and sends it as the {error} body with the
// given status. A failure response never carries markdown.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.log.Errorln(msg)
	s.writeJSON(w, status, types.ErrorResponse{Error: msg})
}
