package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/winedash/internal/models"
	"github.com/thenoetrevino/winedash/internal/services/dashboard"
)

// Error codes returned in JSON error bodies
const (
	CodeInvalidSelection = "INVALID_SELECTION"
	CodeInternal         = "INTERNAL_ERROR"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, envelope{Error: &errorBody{Code: code, Message: message}})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderIndex(w, newPageData()); err != nil {
		s.logger.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// handleFigures is the selection callback: every change of the selector
// rebuilds all three figures.
func (s *Server) handleFigures(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("wine")
	if value == "" {
		value = string(models.DefaultSelection)
	}

	sel, err := s.svc.ParseSelection(value)
	if err != nil {
		s.metrics.IncInvalidSelections()
		writeError(w, http.StatusBadRequest, CodeInvalidSelection, err.Error())
		return
	}

	figs, err := s.svc.Figures(r.Context(), sel)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidSelection) {
			s.metrics.IncInvalidSelections()
			writeError(w, http.StatusBadRequest, CodeInvalidSelection, err.Error())
			return
		}
		s.logger.Error("failed to build figures", "selection", sel, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "failed to build figures")
		return
	}

	s.metrics.RecordSelection(sel)
	writeData(w, figs)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeData(w, s.svc.Summary())
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeData(w, s.metrics.GetSnapshot())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeData(w, map[string]string{"status": "ok"})
}
