package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/dgallion1/jsxtext/internal/catalog"
	"github.com/dgallion1/jsxtext/internal/pipeline"
	"github.com/dgallion1/jsxtext/internal/scan"
)

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	maxFiles := int64(s.cfg.MaxBatchFiles)
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*maxFiles+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("upload exceeds max size (%d bytes)", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}
	if len(headers) > s.cfg.MaxBatchFiles {
		jsonError(w, fmt.Sprintf("too many files (max %d)", s.cfg.MaxBatchFiles), http.StatusBadRequest)
		return
	}

	namespace := r.FormValue("namespace")
	if namespace != "" && s.store == nil {
		jsonError(w, "catalog storage unavailable", http.StatusServiceUnavailable)
		return
	}

	files := make([]pipeline.File, 0, len(headers))
	for _, fh := range headers {
		filename := sanitizeFilename(fh.Filename)
		if !scan.IsSupportedExtension(filename) {
			jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
			return
		}
		if fh.Size > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("%s exceeds max size (%d bytes)", filename, s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}

		f, err := fh.Open()
		if err != nil {
			jsonError(w, "failed to open file", http.StatusInternalServerError)
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil {
			jsonError(w, "failed to read file", http.StatusInternalServerError)
			return
		}
		if int64(len(data)) > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("%s exceeds max size (%d bytes)", filename, s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		files = append(files, pipeline.File{Name: filename, Data: data})
	}

	sectionKeys := false
	if v := r.FormValue("section_keys"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			jsonError(w, "section_keys must be a boolean", http.StatusBadRequest)
			return
		}
		sectionKeys = b
	}

	results := s.extractor.Run(r.Context(), files)
	cat := catalog.Build(pipeline.Messages(results), catalog.Options{
		KeyPrefix:    r.FormValue("key_prefix"),
		SectionKeys:  sectionKeys,
		KeySeparator: s.cfg.KeySeparator,
	})

	stored := 0
	if namespace != "" {
		n, err := s.store.UpsertEntries(r.Context(), namespace, cat.Entries)
		if err != nil {
			s.log.Error("store catalog failed", "namespace", namespace, "error", err)
			jsonError(w, "failed to store catalog", http.StatusInternalServerError)
			return
		}
		stored = n
	}

	s.log.Info("extracted catalog",
		"files", len(files),
		"entries", len(cat.Entries),
		"conflicts", len(cat.Conflicts),
		"namespace", namespace,
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"files":     results,
		"entries":   cat.Entries,
		"conflicts": cat.Conflicts,
		"namespace": namespace,
		"stored":    stored,
	})
}
