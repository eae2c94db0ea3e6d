package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/newsgroup-processor/internal/db"
	"github.com/jonathan/newsgroup-processor/internal/pipeline"
	"github.com/jonathan/newsgroup-processor/internal/schemas"
	"github.com/jonathan/newsgroup-processor/internal/types"
)

// ProcessRequest represents the request body for /process
type ProcessRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// decodeProcessRequest reads and validates the request body
func (s *Server) decodeProcessRequest(w http.ResponseWriter, r *http.Request) (*ProcessRequest, bool) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	if err := s.validate.Struct(&req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			verr := &ErrValidation{Field: verrs[0].Field(), Message: verrs[0].Tag()}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return nil, false
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return &req, true
}

// handleProcess runs the full pipeline synchronously and returns the
// finalized run. Gate rejections are not HTTP errors: the run itself is the
// resource and carries its terminal status.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeProcessRequest(w, r)
	if !ok {
		return
	}

	input := types.NewDiscussionInput(req.Text, types.SourceInline, "")
	controller := pipeline.NewController(s.client, pipeline.Options{})
	run := controller.Run(r.Context(), input)

	s.persistRun(r.Context(), run)
	s.jsonResponse(w, http.StatusOK, run)
}

// handleProcessStream runs the pipeline and streams stage transitions as
// Server-Sent Events, ending with the finalized run.
func (s *Server) handleProcessStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeProcessRequest(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	input := types.NewDiscussionInput(req.Text, types.SourceInline, "")
	controller := pipeline.NewController(s.client, pipeline.Options{
		OnProgress: sse.WriteProgress,
	})
	run := controller.Run(r.Context(), input)

	s.persistRun(r.Context(), run)
	sse.WriteEvent("result", run) //nolint:errcheck
	sse.WriteComplete(run.ID, string(run.Status))
}

// persistRun stores the run when a database is configured. Persistence
// failures are logged, not surfaced: the caller already has the result.
func (s *Server) persistRun(ctx context.Context, run *types.PipelineRun) {
	if s.db == nil {
		return
	}
	if _, err := s.db.PersistRun(ctx, run); err != nil {
		log.Printf("Failed to persist run %s: %v", run.ID, err)
	}
}

// handleSchema returns the JSON Schema of the run record
func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	out, err := schemas.GenerateRunSchema()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	w.Write(out) //nolint:errcheck
}

// requireDB rejects history requests when persistence is not configured
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		err := &ErrPersistenceDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return false
	}
	return true
}

// parseRunID parses the {id} path segment
func (s *Server) parseRunID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID: "+idStr)
		return uuid.Nil, false
	}
	return id, true
}

// handleListRuns returns recent runs, optionally filtered by ?status=
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	runs, err := s.db.ListRuns(r.Context(), db.RunFilters{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []db.Run{}
	}
	s.jsonResponse(w, http.StatusOK, runs)
}

// handleGetRun returns one run record
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	run, err := s.db.GetRun(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		nf := &ErrRunNotFound{RunID: id.String()}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleRunEvents returns the stage event trail of a run
func (s *Server) handleRunEvents(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	events, err := s.db.ListStageEvents(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if events == nil {
		events = []db.StageEventRecord{}
	}
	s.jsonResponse(w, http.StatusOK, events)
}

// handleRunArtifacts lists the artifacts recorded for a run
func (s *Server) handleRunArtifacts(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	artifacts, err := s.db.ListArtifacts(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if artifacts == nil {
		artifacts = []db.ArtifactSummary{}
	}
	s.jsonResponse(w, http.StatusOK, artifacts)
}

// handleRunDialogue returns the cleaned dialogue of a run as plain text
func (s *Server) handleRunDialogue(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	text, err := s.db.GetTextArtifact(r.Context(), id, db.StepDialogue)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if text == "" {
		nf := &ErrRunNotFound{RunID: id.String()}
		s.errorResponse(w, HTTPStatus(nf), "No dialogue recorded for run: "+id.String())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text)) //nolint:errcheck
}

// handleDeleteRun deletes a run and its artifacts
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	id, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteRun(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"deleted": id.String()})
}
