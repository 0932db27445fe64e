package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/neuradeck/slidekit/pkg/archive"
	"github.com/neuradeck/slidekit/pkg/deck"
	sliderrors "github.com/neuradeck/slidekit/pkg/errors"
	"github.com/neuradeck/slidekit/pkg/jobs"
	"github.com/neuradeck/slidekit/pkg/pipeline"
	"github.com/neuradeck/slidekit/pkg/tokens"
)

// jobTimeout bounds a background layout run. Runs hitting it fail the
// job rather than hanging it in running forever.
const jobTimeout = 5 * time.Minute

// layoutRequest is the body of layout submissions. Options may be
// omitted; the server defaults apply.
type layoutRequest struct {
	Deck    deck.Deck         `json:"deck"`
	Options *pipeline.Options `json:"options"`
}

// jobAccepted is the 202 response for asynchronous submissions.
type jobAccepted struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// syncResponse carries the result of a synchronous run. Artifact bytes
// are base64 in JSON.
type syncResponse struct {
	DeckHash  string            `json:"deck_hash"`
	Layout    pipeline.Layout   `json:"layout"`
	Artifacts map[string][]byte `json:"artifacts,omitempty"`
}

// themesResponse wraps the theme catalog listing.
type themesResponse struct {
	Themes []tokens.Theme `json:"themes"`
}

// archiveSaved is the 201 response for archive saves.
type archiveSaved struct {
	ID string `json:"id"`
}

// decodeLayoutRequest parses and validates a layout submission. The
// deck must pass structural validation and the resolved options must
// validate, so bad requests fail here instead of inside a job.
func (s *Server) decodeLayoutRequest(r *http.Request) (deck.Deck, pipeline.Options, error) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return deck.Deck{}, pipeline.Options{}, sliderrors.Wrap(sliderrors.ErrCodeInvalidInput, err, "decode request body")
	}
	if err := req.Deck.Validate(); err != nil {
		return deck.Deck{}, pipeline.Options{}, err
	}

	opts := s.opts
	if req.Options != nil {
		opts = *req.Options
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return deck.Deck{}, pipeline.Options{}, sliderrors.Wrap(sliderrors.ErrCodeInvalidInput, err, "invalid options")
	}
	return req.Deck, opts, nil
}

// handleCreateLayout accepts a deck for asynchronous processing and
// answers 202 with the job to poll.
func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	d, opts, err := s.decodeLayoutRequest(r)
	if err != nil {
		respondCodedError(w, err)
		return
	}

	job := jobs.New(d.Title, s.jobTTL)
	if err := s.jobs.Put(r.Context(), job); err != nil {
		respondCodedError(w, err)
		return
	}

	// Snapshot the response before the worker starts mutating the job.
	accepted := jobAccepted{JobID: job.ID, Status: string(job.Status)}
	go s.runJob(job, d, opts)

	w.Header().Set("Location", "/v1/jobs/"+accepted.JobID)
	respondJSON(w, http.StatusAccepted, accepted)
}

// runJob executes the pipeline for a submitted deck, updating the job
// record as stages start and when the run finishes.
func (s *Server) runJob(job *jobs.Job, d deck.Deck, opts pipeline.Options) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	res, err := s.runner.ExecuteStaged(ctx, d, opts, func(stage string) {
		job.MarkRunning(jobs.Stage(stage))
		if perr := s.jobs.Put(ctx, job); perr != nil {
			s.logger.Warn("job progress update failed", "job", job.ID, "error", perr)
		}
	})
	if err != nil {
		s.logger.Error("job failed", "job", job.ID, "error", err)
		job.MarkFailed(err)
	} else {
		job.MarkCompleted(&res.Layout)
	}

	if perr := s.jobs.Put(ctx, job); perr != nil {
		s.logger.Error("job result update failed", "job", job.ID, "error", perr)
	}
}

// handleGetJob returns the current job record, including the layout
// once the job has completed.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := sliderrors.ValidateJobID(id); err != nil {
		respondCodedError(w, err)
		return
	}

	job, err := s.jobs.Get(r.Context(), id)
	switch {
	case errors.Is(err, jobs.ErrNotFound):
		respondError(w, http.StatusNotFound, sliderrors.ErrCodeJobNotFound, "no job with id %s", id)
	case errors.Is(err, jobs.ErrExpired):
		respondError(w, http.StatusGone, sliderrors.ErrCodeJobNotFound, "job %s has expired", id)
	case err != nil:
		respondCodedError(w, err)
	default:
		respondJSON(w, http.StatusOK, job)
	}
}

// handleSyncLayout runs the pipeline inline and returns the layout,
// report, and rendered artifacts in one response.
func (s *Server) handleSyncLayout(w http.ResponseWriter, r *http.Request) {
	d, opts, err := s.decodeLayoutRequest(r)
	if err != nil {
		respondCodedError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), d, opts)
	if err != nil {
		respondCodedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, syncResponse{
		DeckHash:  res.DeckHash,
		Layout:    res.Layout,
		Artifacts: res.Artifacts,
	})
}

// handleListThemes returns every theme in the builtin catalog.
func (s *Server) handleListThemes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, themesResponse{Themes: tokens.Builtin().Themes()})
}

// handleGetTheme returns one theme by exact ID. Aliases are not
// resolved here; lookups are for canonical IDs.
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	theme, err := tokens.Builtin().Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, sliderrors.ErrCodeNotFound, "unknown theme %q", id)
		return
	}
	respondJSON(w, http.StatusOK, theme)
}

// handleSaveArchive stores a finished layout and returns its archive ID.
func (s *Server) handleSaveArchive(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		respondError(w, http.StatusNotImplemented, sliderrors.ErrCodeUnsupported, "archive storage is not configured")
		return
	}

	var l pipeline.Layout
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		respondError(w, http.StatusBadRequest, sliderrors.ErrCodeInvalidInput, "decode layout: %v", err)
		return
	}
	if l.DeckTitle == "" && len(l.Slides) == 0 {
		respondError(w, http.StatusBadRequest, sliderrors.ErrCodeInvalidInput, "layout is empty")
		return
	}

	rec := archive.NewRecord(l)
	if err := s.archive.Save(r.Context(), rec); err != nil {
		respondCodedError(w, err)
		return
	}

	w.Header().Set("Location", "/v1/archive/"+rec.ID)
	respondJSON(w, http.StatusCreated, archiveSaved{ID: rec.ID})
}

// handleGetArchive returns an archived layout record by ID.
func (s *Server) handleGetArchive(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		respondError(w, http.StatusNotImplemented, sliderrors.ErrCodeUnsupported, "archive storage is not configured")
		return
	}

	id := chi.URLParam(r, "id")
	rec, err := s.archive.Get(r.Context(), id)
	switch {
	case errors.Is(err, archive.ErrNotFound):
		respondError(w, http.StatusNotFound, sliderrors.ErrCodeArchiveNotFound, "no archived layout with id %s", id)
	case err != nil:
		respondCodedError(w, err)
	default:
		respondJSON(w, http.StatusOK, rec)
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
