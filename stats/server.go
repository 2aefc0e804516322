package stats

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/marathon/internal/models"
	"github.com/ayoisaiah/marathon/internal/timeutil"
)

const shutdownTimeout = 5 * time.Second

// StateReader provides the persisted countdown state.
type StateReader interface {
	GetState() ([]byte, error)
}

// TemplateData is passed to the index page.
type TemplateData struct {
	Generated string
	Stats     Stats
}

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err != nil {
		slog.Error(
			"stats request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

//go:embed web/*
var web embed.FS

var tpl = template.Must(
	template.New("index.html").Funcs(template.FuncMap{
		"hoursMins": timeutil.HoursMins,
		"clock":     timeutil.Clock,
	}).ParseFS(web, "web/index.html"),
)

// Server serves the statistics page for the persisted countdown.
type Server struct {
	db    StateReader
	now   func() time.Time
	total int
}

// NewServer creates a statistics server for a countdown of total seconds.
func NewServer(db StateReader, total int) *Server {
	return &Server{
		db:    db,
		total: total,
		now:   time.Now,
	}
}

func (s *Server) current() (Stats, error) {
	b, err := s.db.GetState()
	if err != nil {
		return Stats{}, err
	}

	if b == nil {
		return FromSnapshot(models.Default(s.total), s.total), nil
	}

	return FromSnapshot(models.DecodeSnapshot(b, s.total), s.total), nil
}

// Index renders the HTML page.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) error {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return nil
	}

	st, err := s.current()
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = tpl.Execute(&buf, &TemplateData{
		Stats:     st,
		Generated: s.now().Format(time.RFC1123),
	})
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err = w.Write(buf.Bytes())

	return err
}

// API writes the statistics as JSON.
func (s *Server) API(w http.ResponseWriter, _ *http.Request) error {
	st, err := s.current()
	if err != nil {
		return err
	}

	b, err := st.ToJSON()
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")

	_, err = w.Write(b)

	return err
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/api/stats", errorHandler(s.API))
	mux.Handle("/", errorHandler(s.Index))

	return mux
}

// ListenAndServe serves the statistics on the given port until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, port uint) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	pterm.Info.Printfln("starting server on port: %d", port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			shutdownTimeout,
		)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}
