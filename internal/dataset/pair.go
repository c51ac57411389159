package dataset

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/winedash/internal/models"
)

// Pair holds the red and white frames and their concatenation
type Pair struct {
	Red      *Frame
	White    *Frame
	Combined *Frame
}

// NewPair validates both frames and builds the combined frame
func NewPair(red, white *Frame) (*Pair, error) {
	if err := red.Require(models.RequiredColumns...); err != nil {
		return nil, fmt.Errorf("red dataset: %w", err)
	}
	if err := white.Require(models.RequiredColumns...); err != nil {
		return nil, fmt.Errorf("white dataset: %w", err)
	}

	combined, err := Concat(red, white)
	if err != nil {
		return nil, err
	}

	return &Pair{Red: red, White: white, Combined: combined}, nil
}

// LoadPair reads both files concurrently
func LoadPair(ctx context.Context, redPath, whitePath string) (*Pair, error) {
	var red, white *Frame

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		f, err := LoadCSV(redPath, models.RedWine)
		red = f
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		f, err := LoadCSV(whitePath, models.WhiteWine)
		white = f
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewPair(red, white)
}

// Select returns the frame for a selection: red, white, or both combined
func (p *Pair) Select(sel models.Selection) (*Frame, error) {
	switch sel {
	case models.SelectRed:
		return p.Red, nil
	case models.SelectWhite:
		return p.White, nil
	case models.SelectBoth:
		return p.Combined, nil
	}
	return nil, fmt.Errorf("%w: %q", models.ErrInvalidSelection, sel)
}
