package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/orchestrator"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

// GenerateResponse is the response for POST /api/generate.
type GenerateResponse struct {
	SubmissionID string `json:"submission_id"`
	Status       string `json:"status"`
}

// handleGenerate starts a submission and returns immediately; progress is
// observable via GET /api/state or the stream endpoint.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var data types.PropertyData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := s.controller.Submit(data)
	if err != nil {
		var incomplete *orchestrator.ErrIncompleteSubmission
		if errors.As(err, &incomplete) {
			s.errorResponse(w, http.StatusUnprocessableEntity, orchestrator.MsgMissingFields)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusAccepted, GenerateResponse{
		SubmissionID: id.String(),
		Status:       "accepted",
	})
}

// handleState returns the current observable state snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

// handleGenerateStream starts a submission and streams state transitions as
// SSE events until the submission settles.
func (s *Server) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	var data types.PropertyData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Subscribe before submitting so no transition is missed.
	updates, unsubscribe := s.controller.Subscribe()
	defer unsubscribe()

	id, err := s.controller.Submit(data)
	if err != nil {
		sse.WriteError(orchestrator.MsgMissingFields)
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case state := <-updates:
			if state.SubmissionID != id.String() {
				// A newer submission took over; this stream is stale.
				sse.WriteComplete(id.String(), "superseded")
				return
			}
			sse.WriteEvent("state", state) //nolint:errcheck

			if state.LoadingState == types.StateError {
				sse.WriteComplete(id.String(), string(types.StateError))
				return
			}
			if state.LoadingState == types.StateSuccess && !state.HFLoading {
				sse.WriteComplete(id.String(), string(types.StateSuccess))
				return
			}
		}
	}
}

// handleHealth reports liveness and, when a pinger is configured, whether the
// inference service is reachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]string{"status": "ok"}

	if s.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := s.pinger.Ping(ctx, "ping"); err != nil {
			health["inference"] = "unreachable"
		} else {
			health["inference"] = "ok"
		}
	}

	s.jsonResponse(w, http.StatusOK, health)
}

// jsonResponse writes a JSON body with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorResponse writes a JSON error object with the given status.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
