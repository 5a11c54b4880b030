// Package server exposes periodix scenes over HTTP.
//
// Every scene created through the API is owned by its own frame loop
// goroutine, which ticks it at the configured rate. Handlers never touch a
// scene directly: they hand a closure to the loop with [frame.Loop.Do] and
// wait for it, so the single-threaded scene needs no locking.
//
// Routes:
//
//	GET    /layouts                     layout names
//	GET    /layouts/{name}              targets of one layout for the server dataset
//	GET    /scenes                      live scene ids
//	POST   /scenes                      create a scene
//	GET    /scenes/{id}                 scene status
//	GET    /scenes/{id}/elements        live transforms
//	POST   /scenes/{id}/transition      start a transition
//	DELETE /scenes/{id}                 stop and remove a scene
//	GET    /metrics                     Prometheus metrics
//	GET    /healthz                     liveness
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/matzehuels/periodix/internal/config"
	"github.com/matzehuels/periodix/pkg/buildinfo"
	"github.com/matzehuels/periodix/pkg/dataset"
	"github.com/matzehuels/periodix/pkg/errors"
	"github.com/matzehuels/periodix/pkg/frame"
	"github.com/matzehuels/periodix/pkg/observability"
	"github.com/matzehuels/periodix/pkg/scene"
)

// Server owns the live scenes and serves the HTTP API.
type Server struct {
	cfg     *config.Config
	logger  *log.Logger
	metrics *Metrics
	records dataset.Dataset

	// base outlives every scene loop; Close cancels it.
	base   context.Context
	cancel context.CancelFunc
	loops  errgroup.Group

	mu     sync.Mutex
	scenes map[string]*entry
	closed bool
}

type entry struct {
	id      string
	scene   *scene.Scene
	loop    *frame.Loop
	limiter *rate.Limiter
	created time.Time
	stop    context.CancelFunc
	done    chan struct{}
}

// New loads the configured dataset and returns a server with no scenes.
func New(cfg *config.Config, logger *log.Logger) (*Server, error) {
	records, err := cfg.Records()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	base, cancel := context.WithCancel(context.Background())
	return &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetrics(),
		records: records,
		base:    base,
		cancel:  cancel,
		scenes:  make(map[string]*entry),
	}, nil
}

// Metrics returns the server's Prometheus collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Status string         `json:"status"`
			Build  buildinfo.Info `json:"build"`
		}{"ok", buildinfo.Get()})
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/layouts", func(r chi.Router) {
		r.Get("/", s.listLayouts)
		r.Get("/{name}", s.getLayout)
	})
	r.Route("/scenes", func(r chi.Router) {
		r.Get("/", s.listScenes)
		r.Post("/", s.createScene)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getScene)
			r.Delete("/", s.deleteScene)
			r.Get("/elements", s.getElements)
			r.Post("/transition", s.transition)
		})
	})
	return r
}

// Run listens on the configured address until ctx is done, then shuts the
// HTTP server down within the configured timeout and stops every scene.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", srv.Addr)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down", "timeout", s.cfg.Server.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if cerr := s.Close(); err == nil {
			err = cerr
		}
		return err
	})
	return g.Wait()
}

// Close stops every scene loop and waits for them to exit. The server
// refuses new scenes afterwards.
func (s *Server) Close() error {
	s.mu.Lock()
	s.closed = true
	ids := make([]string, 0, len(s.scenes))
	for id := range s.scenes {
		ids = append(ids, id)
		delete(s.scenes, id)
	}
	s.mu.Unlock()

	s.cancel()
	err := s.loops.Wait()
	// Gauges are dropped once no loop can tick them again.
	for _, id := range ids {
		s.metrics.sceneRemoved(id)
	}
	return err
}

// newScene builds a scene, starts its first transition and launches its
// loop. The scene is only touched by the loop goroutine once Run starts.
func (s *Server) newScene(req createRequest) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, frame.ErrStopped
	}
	if len(s.scenes) >= s.cfg.Server.MaxScenes {
		return nil, errors.New(errors.ErrCodeRateLimited,
			"scene limit reached (%d)", s.cfg.Server.MaxScenes)
	}

	id := uuid.NewString()
	opts := append(s.cfg.SceneOptions(),
		scene.WithHooks(observability.MultiTransitionHooks{
			s.metrics.ForScene(id),
			sceneLog{logger: s.logger, id: id},
		}),
	)
	if req.Count != nil {
		opts = append(opts, scene.WithCount(*req.Count))
	}
	if req.Seed != nil {
		opts = append(opts, scene.WithSeed(*req.Seed))
	}
	sc, err := scene.New(s.records, opts...)
	if err != nil {
		return nil, err
	}

	initial := s.cfg.Transition.Initial
	if req.Layout != "" {
		initial = req.Layout
	}
	if err := sc.TransitionTo(initial, s.cfg.Transition.Duration); err != nil {
		return nil, err
	}

	loop := frame.NewLoop(frame.WithHooks(s.metrics))
	loop.Subscribe("scene", sc.Tick)

	ctx, stop := context.WithCancel(s.base)
	e := &entry{
		id:      id,
		scene:   sc,
		loop:    loop,
		limiter: rate.NewLimiter(rate.Limit(s.cfg.Server.RateLimit), s.cfg.Server.Burst),
		created: time.Now(),
		stop:    stop,
		done:    make(chan struct{}),
	}
	interval := s.cfg.Frame.Interval()
	s.loops.Go(func() error {
		defer close(e.done)
		err := loop.Run(ctx, interval)
		if stderrors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	s.scenes[id] = e
	s.metrics.sceneAdded()
	return e, nil
}

func (s *Server) lookup(id string) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.scenes[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "scene %q not found", id)
	}
	return e, nil
}

func (s *Server) remove(id string) (*entry, error) {
	s.mu.Lock()
	e, ok := s.scenes[id]
	if ok {
		delete(s.scenes, id)
	}
	s.mu.Unlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "scene %q not found", id)
	}
	e.stop()
	<-e.done
	s.metrics.sceneRemoved(id)
	return e, nil
}

func (s *Server) ids() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.scenes))
	for id := range s.scenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// sceneLog writes transition events of one scene to the server logger.
type sceneLog struct {
	logger *log.Logger
	id     string
}

func (l sceneLog) OnTransitionStart(layout string, elements int, base time.Duration) {
	l.logger.Debug("Transition started", "scene", l.id, "layout", layout, "elements", elements, "base", base)
}

func (l sceneLog) OnTransitionCancel(previous string, cancelled int) {
	l.logger.Debug("Transition redirected", "scene", l.id, "previous", previous, "cancelled", cancelled)
}

func (l sceneLog) OnTransitionSettled(layout string, elapsed time.Duration) {
	l.logger.Info("Transition settled", "scene", l.id, "layout", layout, "elapsed", elapsed)
}

func (sceneLog) OnTick(time.Duration, int) {}
