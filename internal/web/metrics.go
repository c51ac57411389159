package web

import (
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/winedash/internal/models"
)

// Metrics tracks request statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal     atomic.Int64
	FigureRequests    atomic.Int64
	InvalidSelections atomic.Int64
	RedSelections     atomic.Int64
	WhiteSelections   atomic.Int64
	BothSelections    atomic.Int64
	StartTime         time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the total request counter
func (m *Metrics) IncRequests() {
	m.RequestsTotal.Add(1)
}

// IncInvalidSelections increments the rejected selection counter
func (m *Metrics) IncInvalidSelections() {
	m.InvalidSelections.Add(1)
}

// RecordSelection counts one figure rebuild for a selection
func (m *Metrics) RecordSelection(sel models.Selection) {
	m.FigureRequests.Add(1)
	switch sel {
	case models.SelectRed:
		m.RedSelections.Add(1)
	case models.SelectWhite:
		m.WhiteSelections.Add(1)
	case models.SelectBoth:
		m.BothSelections.Add(1)
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal     int64                      `json:"requests_total"`
	FigureRequests    int64                      `json:"figure_requests"`
	InvalidSelections int64                      `json:"invalid_selections"`
	Selections        map[models.Selection]int64 `json:"selections"`
	StartTime         time.Time                  `json:"start_time"`
	Uptime            string                     `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:     m.RequestsTotal.Load(),
		FigureRequests:    m.FigureRequests.Load(),
		InvalidSelections: m.InvalidSelections.Load(),
		Selections: map[models.Selection]int64{
			models.SelectRed:   m.RedSelections.Load(),
			models.SelectWhite: m.WhiteSelections.Load(),
			models.SelectBoth:  m.BothSelections.Load(),
		},
		StartTime: m.StartTime,
		Uptime:    time.Since(m.StartTime).String(),
	}
}
