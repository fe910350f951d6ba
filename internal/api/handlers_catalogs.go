package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/dgallion1/jsxtext/internal/catalog"
	"github.com/dgallion1/jsxtext/internal/store"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListCatalogs(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		jsonError(w, "catalog storage unavailable", http.StatusServiceUnavailable)
		return
	}
	nss, err := s.store.Namespaces(r.Context())
	if err != nil {
		jsonError(w, "failed to list catalogs: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if nss == nil {
		nss = []store.NamespaceInfo{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"catalogs": nss})
}

// handleGetCatalog renders a stored namespace as an i18next resource.
func (s *Server) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		jsonError(w, "catalog storage unavailable", http.StatusServiceUnavailable)
		return
	}
	namespace := chi.URLParam(r, "namespace")

	format := strings.ToLower(r.URL.Query().Get("format"))
	var contentType string
	switch format {
	case "", "json":
		contentType = "application/json"
	case "yaml", "yml":
		contentType = "application/yaml"
	default:
		jsonError(w, fmt.Sprintf("unsupported format: %s", format), http.StatusBadRequest)
		return
	}

	sep := s.cfg.KeySeparator
	if q := r.URL.Query(); q.Has("sep") {
		sep = q.Get("sep")
	}

	cat, err := s.store.Catalog(r.Context(), namespace)
	if err != nil {
		jsonError(w, "failed to load catalog: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(cat.Entries) == 0 {
		jsonError(w, "catalog not found", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := catalog.Encode(&buf, cat.Resource(sep), format); err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(buf.Bytes())
}

func (s *Server) handleDeleteCatalog(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		jsonError(w, "catalog storage unavailable", http.StatusServiceUnavailable)
		return
	}
	namespace := chi.URLParam(r, "namespace")
	n, err := s.store.DeleteNamespace(r.Context(), namespace)
	if err != nil {
		jsonError(w, "failed to delete catalog: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("deleted catalog", "namespace", namespace, "entries", n)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": n})
}
