// Package api exposes the control surface over HTTP.
//
//	GET  /status                      current status (503 until the first status is known)
//	GET  /events                      server-sent events, one per status change
//	POST /pause?minutes=N             suspend alarms for N minutes
//	POST /resume                      cancel the suspension
//	POST /window?start=S&end=E        set the active window
//	POST /sound?enabled=true|false    enable or disable the alarm sound
//	POST /test?kind=halfpast|bell     play an alarm now
//	POST /exit                        stop workbell
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/clambin/workbell/internal/control"
	"github.com/clambin/workbell/internal/status"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
)

type Publisher interface {
	Subscribe() chan status.Mode
	Unsubscribe(ch chan status.Mode)
	LastMode() (status.Mode, bool)
	Refresh()
}

type Server struct {
	Controller control.Controller
	Publisher  Publisher
	logger     *slog.Logger
	mux        *http.ServeMux
	done       chan struct{}
	lock       sync.RWMutex
	mode       status.Mode
	updated    bool
}

func New(c control.Controller, p Publisher, logger *slog.Logger) *Server {
	s := Server{
		Controller: c,
		Publisher:  p,
		logger:     logger,
		mux:        http.NewServeMux(),
		done:       make(chan struct{}),
	}
	s.mux.HandleFunc("GET /status", s.handleStatus)
	s.mux.HandleFunc("GET /events", s.handleEvents)
	s.mux.HandleFunc("POST /pause", s.handlePause)
	s.mux.HandleFunc("POST /resume", s.handleResume)
	s.mux.HandleFunc("POST /window", s.handleWindow)
	s.mux.HandleFunc("POST /sound", s.handleSound)
	s.mux.HandleFunc("POST /test", s.handleTest)
	s.mux.HandleFunc("POST /exit", s.handleExit)
	return &s
}

// Run tracks the published status until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Debug("started")
	defer s.logger.Debug("stopped")
	defer close(s.done)

	ch := s.Publisher.Subscribe()
	defer s.Publisher.Unsubscribe(ch)

	// the first mode may have been published before we subscribed
	if mode, ok := s.Publisher.LastMode(); ok {
		s.setMode(mode)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case mode := <-ch:
			s.setMode(mode)
		}
	}
}

func (s *Server) setMode(mode status.Mode) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.mode = mode
	s.updated = true
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) lastMode() (status.Mode, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.mode, s.updated
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	if _, ok := s.lastMode(); !ok {
		http.Error(w, "no status yet", http.StatusServiceUnavailable)
		s.Publisher.Refresh()
		return
	}
	s.writeStatus(w)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	ch := s.Publisher.Subscribe()
	defer s.Publisher.Unsubscribe(ch)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if mode, ok := s.lastMode(); ok {
		writeEvent(w, mode)
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-s.done:
			return
		case mode := <-ch:
			writeEvent(w, mode)
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, mode status.Mode) {
	_, _ = fmt.Fprintf(w, "event: mode\ndata: %s\n\n", mode)
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	minutes, err := strconv.Atoi(r.URL.Query().Get("minutes"))
	if err != nil {
		http.Error(w, "invalid minutes: "+strconv.Quote(r.URL.Query().Get("minutes")), http.StatusBadRequest)
		return
	}
	if err = s.Controller.Pause(minutes); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeStatus(w)
}

func (s *Server) handleResume(w http.ResponseWriter, _ *http.Request) {
	s.Controller.Resume()
	s.writeStatus(w)
}

func (s *Server) handleWindow(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err == nil {
		err = s.Controller.SetActiveWindow(window)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeStatus(w)
}

func parseWindow(r *http.Request) (alarm.Window, error) {
	var window alarm.Window
	var err error
	if window.Start, err = strconv.Atoi(r.URL.Query().Get("start")); err != nil {
		return window, fmt.Errorf("%w: start=%q", alarm.ErrInvalidRange, r.URL.Query().Get("start"))
	}
	if window.End, err = strconv.Atoi(r.URL.Query().Get("end")); err != nil {
		return window, fmt.Errorf("%w: end=%q", alarm.ErrInvalidRange, r.URL.Query().Get("end"))
	}
	return window, nil
}

func (s *Server) handleSound(w http.ResponseWriter, r *http.Request) {
	enabled, err := strconv.ParseBool(r.URL.Query().Get("enabled"))
	if err != nil {
		http.Error(w, "invalid enabled: "+strconv.Quote(r.URL.Query().Get("enabled")), http.StatusBadRequest)
		return
	}
	s.Controller.SetSound(enabled)
	s.writeStatus(w)
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	kind, err := alarm.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err = s.Controller.TestSound(r.Context(), kind); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, alarm.ErrUnknownKind) {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExit(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusAccepted)
	s.Controller.Exit()
}

func (s *Server) writeStatus(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.Controller.Status()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
