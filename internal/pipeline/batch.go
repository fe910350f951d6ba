package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgallion1/jsxtext/internal/catalog"
	"github.com/dgallion1/jsxtext/internal/metrics"
	"github.com/dgallion1/jsxtext/internal/scan"
)

// Status is the outcome of scanning one file in a batch.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusDupSkipped Status = "duplicate_skipped"
)

// File is one uploaded source file.
type File struct {
	Name string
	Data []byte
}

// Result describes what happened to one file of a batch.
type Result struct {
	Filename    string            `json:"filename"`
	ContentHash string            `json:"content_hash"`
	Status      Status            `json:"status"`
	Messages    []catalog.Message `json:"-"`
	Count       int               `json:"messages"`
	DuplicateOf string            `json:"duplicate_of,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// Extractor scans batches of files with bounded concurrency.
type Extractor struct {
	log           *slog.Logger
	maxConcurrent int
	scanOpts      scan.Options
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithScanOptions passes options through to the per-format scanners.
func WithScanOptions(opts scan.Options) Option {
	return func(e *Extractor) { e.scanOpts = opts }
}

func NewExtractor(maxConcurrent int, log *slog.Logger, opts ...Option) *Extractor {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	e := &Extractor{
		log:           log,
		maxConcurrent: maxConcurrent,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run scans every file and returns one result per file, in input order.
// A file with the same content and format as an earlier file of the batch
// is not scanned again: it is skipped when the earlier copy completed and
// inherits the failure otherwise.
func (e *Extractor) Run(ctx context.Context, files []File) []Result {
	type dedupKey struct{ hash, format string }

	results := make([]Result, len(files))
	firstOf := make(map[dedupKey]int)
	dupOf := make(map[int]int)

	sem := make(chan struct{}, e.maxConcurrent)
	var wg sync.WaitGroup

	for i, f := range files {
		hash := ContentHashHex(f.Data)
		results[i] = Result{Filename: f.Name, ContentHash: hash}

		key := dedupKey{hash, scan.Format(f.Name)}
		if first, ok := firstOf[key]; ok {
			dupOf[i] = first
			continue
		}
		firstOf[key] = i

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			e.fail(&results[i], ctx.Err())
			continue
		}
		wg.Add(1)
		go func(r *Result, f File) {
			defer wg.Done()
			defer func() { <-sem }()
			e.scanFile(ctx, r, f)
		}(&results[i], f)
	}

	wg.Wait()

	for i, first := range dupOf {
		r := &results[i]
		r.DuplicateOf = files[first].Name
		if results[first].Status != StatusCompleted {
			e.fail(r, fmt.Errorf("same content as %s: %s", files[first].Name, results[first].Error))
			continue
		}
		r.Status = StatusDupSkipped
		metrics.FilesScanned.WithLabelValues(scan.Format(r.Filename), string(StatusDupSkipped)).Inc()
		e.log.Info("duplicate file, skipping", "filename", r.Filename, "duplicate_of", r.DuplicateOf)
	}
	return results
}

func (e *Extractor) scanFile(ctx context.Context, r *Result, f File) {
	log := e.log.With("filename", f.Name, "content_hash", r.ContentHash[:16])

	if err := ctx.Err(); err != nil {
		e.fail(r, err)
		return
	}

	s, err := scan.ForFile(f.Name, e.scanOpts)
	if err != nil {
		log.Warn("unsupported format", "error", err)
		e.fail(r, err)
		return
	}

	msgs, err := s.Scan(bytes.NewReader(f.Data), f.Name)
	if err != nil {
		log.Error("scan failed", "error", err)
		e.fail(r, fmt.Errorf("scan: %w", err))
		return
	}

	r.Status = StatusCompleted
	r.Messages = msgs
	r.Count = len(msgs)
	format := scan.Format(f.Name)
	metrics.FilesScanned.WithLabelValues(format, string(StatusCompleted)).Inc()
	metrics.MessagesExtracted.WithLabelValues(format).Add(float64(len(msgs)))
	log.Info("scanned file", "messages", len(msgs))
}

func (e *Extractor) fail(r *Result, err error) {
	r.Status = StatusFailed
	r.Error = err.Error()
	metrics.FilesScanned.WithLabelValues(scan.Format(r.Filename), string(StatusFailed)).Inc()
}

// Messages concatenates the messages of completed results in order.
func Messages(results []Result) []catalog.Message {
	var out []catalog.Message
	for _, r := range results {
		if r.Status == StatusCompleted {
			out = append(out, r.Messages...)
		}
	}
	return out
}
