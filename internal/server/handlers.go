package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/periodix/pkg/errors"
	"github.com/matzehuels/periodix/pkg/export"
	"github.com/matzehuels/periodix/pkg/layout"
)

type createRequest struct {
	Count  *int    `json:"count,omitempty"`
	Seed   *uint64 `json:"seed,omitempty"`
	Layout string  `json:"layout,omitempty"`
}

type transitionRequest struct {
	Layout     string `json:"layout"`
	DurationMS *int64 `json:"duration_ms,omitempty"`
}

// Status describes a live scene.
type Status struct {
	ID       string    `json:"id"`
	Layout   string    `json:"layout"`
	Elements int       `json:"elements"`
	Active   int       `json:"active_tweens"`
	Settled  bool      `json:"settled"`
	Elapsed  float64   `json:"elapsed_seconds"`
	Frames   int       `json:"frames"`
	Created  time.Time `json:"created"`
}

type errorBody struct {
	Error struct {
		Code    errors.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

func (s *Server) listLayouts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"layouts": layout.Names()})
}

func (s *Server) getLayout(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !layout.Valid(name) {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "layout %q not found", name))
		return
	}
	l, err := layout.Generate(s.records, name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	snap, err := export.FromLayout(s.records, l)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) listScenes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"scenes": s.ids()})
}

func (s *Server) createScene(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	e, err := s.newScene(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("Scene created", "scene", e.id, "elements", e.scene.Len())

	// The loop is already running, so read through it.
	st, err := s.status(r, e)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) getScene(w http.ResponseWriter, r *http.Request) {
	e, err := s.lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	st, err := s.status(r, e)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) getElements(w http.ResponseWriter, r *http.Request) {
	e, err := s.lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	var snap export.Snapshot
	if err := e.loop.Do(r.Context(), func() { snap = export.FromScene(e.scene) }); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) transition(w http.ResponseWriter, r *http.Request) {
	e, err := s.lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req transitionRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if !e.limiter.Allow() {
		s.writeError(w, errors.New(errors.ErrCodeRateLimited, "too many transitions for scene %s", e.id))
		return
	}

	base := s.cfg.Transition.Duration
	if req.DurationMS != nil {
		base = time.Duration(*req.DurationMS) * time.Millisecond
	}

	var terr error
	var st Status
	if err := e.loop.Do(r.Context(), func() {
		if terr = e.scene.TransitionTo(req.Layout, base); terr == nil {
			st = statusOf(e)
		}
	}); err != nil {
		s.writeError(w, err)
		return
	}
	if terr != nil {
		s.writeError(w, terr)
		return
	}
	writeJSON(w, http.StatusAccepted, st)
}

func (s *Server) deleteScene(w http.ResponseWriter, r *http.Request) {
	e, err := s.remove(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("Scene stopped", "scene", e.id, "frames", e.loop.Frames())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) status(r *http.Request, e *entry) (Status, error) {
	var st Status
	err := e.loop.Do(r.Context(), func() { st = statusOf(e) })
	return st, err
}

// statusOf must run on the scene's loop goroutine.
func statusOf(e *entry) Status {
	return Status{
		ID:       e.id,
		Layout:   e.scene.Current(),
		Elements: e.scene.Len(),
		Active:   e.scene.Active(),
		Settled:  e.scene.Settled(),
		Elapsed:  e.scene.Elapsed().Seconds(),
		Frames:   e.loop.Frames(),
		Created:  e.created,
	}
}

// decodeBody reads an optional JSON body into v. An empty body leaves v
// unchanged.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && err != io.EOF {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request body")
	}
	return nil
}

func statusCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeConfiguration:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidArgument, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusCode(code)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "error", err)
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
