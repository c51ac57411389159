package models

import (
	"fmt"
	"strings"
)

// WineType labels the dataset a sample came from
type WineType string

const (
	RedWine   WineType = "Red Wine"
	WhiteWine WineType = "White Wine"
)

// WineTypes lists wine types in display order
var WineTypes = []WineType{RedWine, WhiteWine}

// Color returns the chart color for the wine type
func (w WineType) Color() string {
	if w == WhiteWine {
		return ColorWhiteWine
	}
	return ColorRedWine
}

// ParseWineType maps "red"/"white" (or the full label) to a WineType
func ParseWineType(s string) (WineType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "red wine":
		return RedWine, nil
	case "white", "white wine":
		return WhiteWine, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWineType, s)
}

// Selection is the value of the wine type selector
type Selection string

const (
	SelectRed   Selection = "Red Wine"
	SelectWhite Selection = "White Wine"
	SelectBoth  Selection = "Both"
)

// DefaultSelection is the selector value on first render
const DefaultSelection = SelectBoth

// SelectionOption is one entry in the wine type selector
type SelectionOption struct {
	Label string    `json:"label"`
	Value Selection `json:"value"`
}

// SelectionOptions returns the selector entries in display order
func SelectionOptions() []SelectionOption {
	return []SelectionOption{
		{Label: "Red Wine", Value: SelectRed},
		{Label: "White Wine", Value: SelectWhite},
		{Label: "Both Wines", Value: SelectBoth},
	}
}

// ParseSelection accepts the selector values as well as the short forms
// red, white and both, case-insensitively.
func ParseSelection(s string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "red wine":
		return SelectRed, nil
	case "white", "white wine":
		return SelectWhite, nil
	case "both", "both wines":
		return SelectBoth, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSelection, s)
}

// Next cycles Red Wine -> White Wine -> Both -> Red Wine
func (s Selection) Next() Selection {
	switch s {
	case SelectRed:
		return SelectWhite
	case SelectWhite:
		return SelectBoth
	default:
		return SelectRed
	}
}

// Includes reports whether samples of the wine type are part of the selection
func (s Selection) Includes(w WineType) bool {
	switch s {
	case SelectRed:
		return w == RedWine
	case SelectWhite:
		return w == WhiteWine
	case SelectBoth:
		return true
	}
	return false
}
