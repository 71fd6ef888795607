// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server implements the HTTP surface of markdown-server: service
// info, health, docs, and the document conversion endpoint.
package server

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/markdown-server/internal/convert"
	"github.com/pdiddy/markdown-server/pkg/types"
)

const (
	serviceName        = "MarkItDown Server"
	serviceDescription = "API for converting documents to Markdown"
)

// Server wires the conversion handler and the static endpoints into an
// http.Handler. Configuration, converter, and logger are injected once at
// construction.
type Server struct {
	cfg       *types.Config
	converter convert.Converter
	log       *logrus.Logger
	version   string
}

// New creates a Server. The converter is the only collaborator with
// per-request work; everything else responds from memory.
func New(cfg *types.Config, conv convert.Converter, log *logrus.Logger, version string) *Server {
	return &Server{
		cfg:       cfg,
		converter: conv,
		log:       log,
		version:   version,
	}
}

// Handler returns the root handler with the middleware chain applied:
// security headers and CORS outermost, then request logging, then the
// optional rate limiter, then routing.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /docs", s.handleDocs)
	mux.HandleFunc("POST /process_file", s.handleProcessFile)

	var h http.Handler = mux
	if s.cfg.RateLimit.Enabled {
		h = s.rateLimit(h)
	}
	h = s.logRequests(h)
	h = cors(h)
	h = securityHeaders(h)
	return h
}
