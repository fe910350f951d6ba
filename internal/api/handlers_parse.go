package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dgallion1/jsxtext/internal/jsx"
	"github.com/dgallion1/jsxtext/internal/metrics"
)

type convertRequest struct {
	Input  *string  `json:"input"`
	Inputs []string `json:"inputs"`
}

// decodeConvert reads a parse/text request body. It reports a client error
// message, or "" on success.
func (s *Server) decodeConvert(w http.ResponseWriter, r *http.Request) (convertRequest, string) {
	var req convertRequest
	// Leave room for JSON framing around a maximum-size input.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxInputBytes+64*1024)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, fmt.Sprintf("input exceeds max size (%d bytes)", s.cfg.MaxInputBytes)
		}
		return req, "invalid json body: " + err.Error()
	}
	if req.Input != nil && int64(len(*req.Input)) > s.cfg.MaxInputBytes {
		return req, fmt.Sprintf("input exceeds max size (%d bytes)", s.cfg.MaxInputBytes)
	}
	if len(req.Inputs) > s.cfg.MaxBatchInputs {
		return req, fmt.Sprintf("too many inputs (max %d)", s.cfg.MaxBatchInputs)
	}
	for _, in := range req.Inputs {
		if int64(len(in)) > s.cfg.MaxInputBytes {
			return req, fmt.Sprintf("input exceeds max size (%d bytes)", s.cfg.MaxInputBytes)
		}
	}
	return req, ""
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	req, msg := s.decodeConvert(w, r)
	if msg != "" {
		jsonError(w, msg, http.StatusBadRequest)
		return
	}
	if req.Input == nil {
		jsonError(w, "input is required", http.StatusBadRequest)
		return
	}

	start := time.Now()
	nodes := jsx.ParseJSX(*req.Input)
	metrics.ObserveConversion(s.stats, "parse", 1, time.Since(start))

	if nodes == nil {
		nodes = []*jsx.Node{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"nodes": nodes})
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	req, msg := s.decodeConvert(w, r)
	if msg != "" {
		jsonError(w, msg, http.StatusBadRequest)
		return
	}

	switch {
	case req.Input != nil:
		start := time.Now()
		text := jsx.JSXToText(*req.Input)
		metrics.ObserveConversion(s.stats, "text", 1, time.Since(start))
		writeJSON(w, http.StatusOK, map[string]string{"text": text})

	case req.Inputs != nil:
		start := time.Now()
		texts := make([]string, len(req.Inputs))
		for i, in := range req.Inputs {
			texts[i] = jsx.JSXToText(in)
		}
		metrics.ObserveConversion(s.stats, "text", len(texts), time.Since(start))
		writeJSON(w, http.StatusOK, map[string]any{"texts": texts})

	default:
		jsonError(w, "input or inputs is required", http.StatusBadRequest)
	}
}
