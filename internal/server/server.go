// Backend API server receiving scheduler value reports from the editor
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"scheduler-node-editor/internal/events"
	"scheduler-node-editor/internal/remote"
)

// Server is the backend counterpart of the sync protocol: it asks nodes
// for their widget values over the bus and receives the reports on the
// scheduler_values endpoint.
type Server struct {
	addr     string
	bus      *events.Bus
	messages *Messages
	logger   *logrus.Logger
}

// New creates a server listening on addr.
func New(addr string, bus *events.Bus, logger *logrus.Logger) *Server {
	return &Server{
		addr:     addr,
		bus:      bus,
		messages: NewMessages(),
		logger:   logger,
	}
}

// Router builds the chi router for the editor API.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route(remote.APIPrefix, func(r chi.Router) {
		r.Post(remote.SchedulerValuesPath, s.handleSchedulerValues)
	})

	return router
}

func (s *Server) handleSchedulerValues(w http.ResponseWriter, r *http.Request) {
	var report remote.ValuesReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		s.logger.WithError(err).Warn("Rejecting malformed scheduler values report")
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"node":    report.NodeID,
		"outputs": len(report.Outputs),
	}).Debug("Received scheduler values")

	s.messages.Deliver(report)
	w.WriteHeader(http.StatusNoContent)
}

// RequestValues publishes a values request for the node and waits for
// the matching report to arrive on the endpoint.
func (s *Server) RequestValues(ctx context.Context, nodeID int, names []string) (remote.ValuesReport, error) {
	ch := s.messages.Expect(nodeID)
	defer s.messages.Forget(nodeID)

	s.bus.Publish(remote.EventValuesRequested, remote.ValuesRequest{
		ID:            nodeID,
		WidgetsNeeded: names,
	})

	select {
	case report := <-ch:
		return report, nil
	case <-ctx.Done():
		return remote.ValuesReport{}, ctx.Err()
	}
}

// ListenAndServe runs the HTTP server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	s.logger.WithField("addr", s.addr).Info("Backend API listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
