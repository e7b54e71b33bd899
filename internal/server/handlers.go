package server

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/matzehuels/jsontypings/pkg/buildinfo"
	"github.com/matzehuels/jsontypings/pkg/config"
	"github.com/matzehuels/jsontypings/pkg/errors"
	"github.com/matzehuels/jsontypings/pkg/pipeline"
	"github.com/matzehuels/jsontypings/pkg/render"
	"github.com/matzehuels/jsontypings/pkg/samples"
)

// =============================================================================
// Request and Response Types
// =============================================================================

// Request is the body of the POST endpoints.
type Request struct {
	// Name is the root interface name. Defaults to the server setting.
	Name string `json:"name,omitempty"`

	// Samples is a JSON array; every element is one sample.
	Samples json.RawMessage `json:"samples,omitempty"`

	// Documents are sample files. Each document is one sample, as in a
	// sample directory.
	Documents []Document `json:"documents,omitempty"`

	Query   string        `json:"query,omitempty"`
	PerFile bool          `json:"per_file,omitempty"`
	Refresh bool          `json:"refresh,omitempty"`
	Config  render.Config `json:"config"`

	// Format and Detailed apply to /v1/graph only.
	Format   string `json:"format,omitempty"`
	Detailed bool   `json:"detailed,omitempty"`
}

// Document is one sample file in a [Request].
type Document struct {
	Name    string `json:"name,omitempty"`
	Format  string `json:"format,omitempty"`
	Content string `json:"content"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleTypings(w http.ResponseWriter, r *http.Request) {
	req, opts, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.PerFile = req.PerFile

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	req, opts, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	gopts := pipeline.GraphOptions{Format: req.Format, Detailed: req.Detailed}
	if gopts.Format == "" {
		gopts.Format = pipeline.FormatDOT
	}
	data, cached, err := s.runner.RenderGraph(r.Context(), opts, gopts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	contentType := "text/vnd.graphviz; charset=utf-8"
	if gopts.Format == pipeline.FormatSVG {
		contentType = "image/svg+xml"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Cache", cacheStatus(cached))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// decodeRequest reads a bounded request body and turns it into pipeline
// options with the request config merged over the server settings.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (Request, pipeline.Options, error) {
	if limit := s.settings.Server.MaxBodyBytes; limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	var req Request
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return req, pipeline.Options{}, errTooLarge{limit: tooLarge.Limit}
		}
		return req, pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}

	in, err := req.input()
	if err != nil {
		return req, pipeline.Options{}, err
	}

	name := req.Name
	if name == "" {
		name = s.settings.Name
	}
	return req, pipeline.Options{
		Name:    name,
		Input:   in,
		Query:   req.Query,
		Config:  config.Merge(s.settings.Config, req.Config),
		Refresh: req.Refresh,
	}, nil
}

// input converts the request samples into a pipeline input.
func (req Request) input() (samples.Input, error) {
	switch {
	case len(req.Samples) > 0 && len(req.Documents) > 0:
		return samples.Input{}, errors.New(errors.ErrCodeInvalidInput, "give either samples or documents, not both")
	case len(req.Samples) > 0:
		return samples.Input{
			Path:      "samples",
			Documents: []samples.Document{{Name: "samples", Format: samples.FormatJSON, Data: req.Samples}},
		}, nil
	}

	in := samples.Input{Path: "documents", Dir: true}
	for i, d := range req.Documents {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("document%d", i+1)
		}
		format := samples.DetectFormat(name)
		if d.Format != "" {
			f, err := samples.ParseFormat(d.Format)
			if err != nil {
				return samples.Input{}, err
			}
			format = f
		}
		in.Documents = append(in.Documents, samples.Document{Name: name, Format: format, Data: []byte(d.Content)})
	}
	return in, nil
}

// =============================================================================
// Responses
// =============================================================================

// errTooLarge reports a request body over the configured limit.
type errTooLarge struct {
	limit int64
}

func (e errTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.limit)
}

// statusFor maps an error to its HTTP status and error code.
func statusFor(err error) (int, string) {
	if stderrors.As(err, new(errTooLarge)) {
		return http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE"
	}
	code := errors.GetCode(err)
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidName:
		return http.StatusBadRequest, string(code)
	case errors.ErrCodeFileNotFound:
		return http.StatusNotFound, string(code)
	case errors.ErrCodeNotImplemented:
		return http.StatusNotImplemented, string(code)
	default:
		return http.StatusInternalServerError, string(errors.ErrCodeInternal)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", RequestID(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, ErrorResponse{
		Error:     ErrorBody{Code: code, Message: msg},
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func cacheStatus(cached bool) string {
	if cached {
		return "hit"
	}
	return "miss"
}
