// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pdiddy/markdown-server/internal/convert"
	"github.com/pdiddy/markdown-server/internal/staging"
	"github.com/pdiddy/markdown-server/pkg/types"
)

const uploadField = "file"

// handleProcessFile turns one multipart upload into Markdown. The checks
// run in contract order: filename, extension, content size — nothing is
// staged until all of them pass, and a staged file is removed on every exit
// path afterwards.
func (s *Server) handleProcessFile(w http.ResponseWriter, r *http.Request) {
	part, err := uploadPart(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer part.Close()

	filename := part.FileName()
	if filename == "" {
		s.writeError(w, http.StatusBadRequest, "Filename is required")
		return
	}

	if !convert.Supported(filename) {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("File type not allowed. Allowed types: %s",
				strings.Join(convert.AllowedTypes(), ", ")))
		return
	}

	maxSize := s.cfg.Upload.MaxFileSize
	// One byte past the limit is enough to detect an oversized upload
	// without buffering the rest of it.
	content, err := io.ReadAll(io.LimitReader(part, maxSize+1))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(content) == 0 {
		s.writeError(w, http.StatusBadRequest, "File is empty")
		return
	}
	if int64(len(content)) > maxSize {
		s.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File too large. Maximum size: %dMB", maxSize/(1024*1024)))
		return
	}

	artifact, err := staging.Stage(s.cfg.Upload.TmpDir, filename, content)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer func() {
		if err := artifact.Remove(); err != nil {
			s.log.Errorf("cleanup: %v", err)
			return
		}
		s.log.Debugf("Temporary file deleted: %s", artifact.Path())
	}()

	s.log.Infof("Converting file: %s", artifact.Path())
	markdown, err := s.converter.Convert(artifact.Path())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, types.MarkdownResponse{Markdown: markdown})
}

// uploadPart walks the multipart stream and returns the "file" part. The
// stream is read directly so an upload whose filename is absent still
// reaches the filename check instead of being dropped by form parsing.
func uploadPart(r *http.Request) (*multipart.Part, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, errors.New("file field is required")
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return nil, errors.New("file field is required")
		}
		if err != nil {
			return nil, errors.New("malformed multipart request")
		}
		if part.FormName() == uploadField {
			return part, nil
		}
		part.Close()
	}
}
