// Package dashboard holds the analysis shared by the web and terminal
// dashboards: the summary tables computed once at startup and the
// per-selection figures.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/thenoetrevino/winedash/internal/analysis"
	"github.com/thenoetrevino/winedash/internal/dataset"
	"github.com/thenoetrevino/winedash/internal/figures"
	"github.com/thenoetrevino/winedash/internal/models"
)

// Service defines all dashboard operations
type Service interface {
	// Read-only summary computed at construction
	Summary() *models.Summary
	Features() []string

	// Selection operations
	Select(ctx context.Context, sel models.Selection) (*dataset.Frame, error)
	Figures(ctx context.Context, sel models.Selection) (*figures.Figures, error)
	ParseSelection(value string) (models.Selection, error)

	// Counts returns the row count for every selection
	Counts() map[models.Selection]int
}

// service implements Service interface
type service struct {
	pair        *dataset.Pair
	summary     *models.Summary
	treemap     *figures.TreemapOption
	correlation *figures.LineOption
	logger      *slog.Logger
}

// Option configures the service
type Option func(*service)

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// NewService computes the summary tables for the pair. The pair must not be
// modified afterwards.
func NewService(pair *dataset.Pair, opts ...Option) (Service, error) {
	if pair == nil || pair.Red == nil || pair.White == nil {
		return nil, ErrNoData
	}

	summary, err := analysis.Summarize(pair)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize datasets: %w", err)
	}

	s := &service{
		pair:        pair,
		summary:     summary,
		treemap:     figures.Treemap(summary),
		correlation: figures.Correlation(summary),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Info("summary computed",
		"features", len(summary.Features),
		"red_rows", summary.RedCount,
		"white_rows", summary.WhiteCount)

	return s, nil
}

// Summary returns the summary tables. Callers must treat them as read-only.
func (s *service) Summary() *models.Summary {
	return s.summary
}

// Features returns the summarized feature names in header order
func (s *service) Features() []string {
	return slices.Clone(s.summary.Features)
}

// ParseSelection validates a selector value
func (s *service) ParseSelection(value string) (models.Selection, error) {
	sel, err := models.ParseSelection(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSelection, value)
	}
	return sel, nil
}

// Select returns the dataset for a selection
func (s *service) Select(ctx context.Context, sel models.Selection) (*dataset.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frame, err := s.pair.Select(sel)
	if err != nil {
		if errors.Is(err, models.ErrInvalidSelection) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, sel)
		}
		return nil, err
	}
	return frame, nil
}

// Figures builds all three charts for a selection. Only the scatter depends
// on the selection; the treemap and correlation chart are shared.
func (s *service) Figures(ctx context.Context, sel models.Selection) (*figures.Figures, error) {
	frame, err := s.Select(ctx, sel)
	if err != nil {
		return nil, err
	}

	scatter, err := figures.Scatter(frame, sel)
	if err != nil {
		return nil, fmt.Errorf("failed to build scatter: %w", err)
	}

	s.logger.Debug("figures built", "selection", sel, "rows", frame.Len())

	return &figures.Figures{
		Selection:   sel,
		Treemap:     s.treemap,
		Correlation: s.correlation,
		Scatter:     scatter,
	}, nil
}

// Counts returns the row count for every selection
func (s *service) Counts() map[models.Selection]int {
	return map[models.Selection]int{
		models.SelectRed:   s.pair.Red.Len(),
		models.SelectWhite: s.pair.White.Len(),
		models.SelectBoth:  s.pair.Combined.Len(),
	}
}
