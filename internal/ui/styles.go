// Package ui holds the lipgloss styles. Styles come in two palettes selected
// by the theme toggle; everything else in the app asks the active Theme for a
// style instead of hardcoding colors.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme is one resolved palette of styles.
type Theme struct {
	Name string

	Title       lipgloss.Style
	Header      lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	ErrorText   lipgloss.Style
	Dim         lipgloss.Style
	Divider     lipgloss.Style
	Timestamp   lipgloss.Style
	FooterKey   lipgloss.Style
	FooterDesc  lipgloss.Style
	PanelTitle  lipgloss.Style
	PanelActive lipgloss.Style
	Selected    lipgloss.Style

	PlayingBadge lipgloss.Style
	PausedBadge  lipgloss.Style
	SyncBadge    lipgloss.Style
	ScrubBadge   lipgloss.Style

	StepMarker lipgloss.Style
	HalfMarker lipgloss.Style
	SegmentBar lipgloss.Style
	Cursor     lipgloss.Style
}

// Dark is the default palette.
func Dark() Theme {
	var (
		red    = lipgloss.Color("#FF5555")
		green  = lipgloss.Color("#50FA7B")
		yellow = lipgloss.Color("#F1FA8C")
		cyan   = lipgloss.Color("#8BE9FD")
		gray   = lipgloss.Color("#666666")
		dim    = lipgloss.Color("#444444")
		white  = lipgloss.Color("#F8F8F2")
		purple = lipgloss.Color("#BD93F9")
	)
	return Theme{
		Name:        "dark",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(cyan),
		Header:      lipgloss.NewStyle().Foreground(cyan),
		Status:      lipgloss.NewStyle().Foreground(gray),
		Error:       lipgloss.NewStyle().Foreground(red).Bold(true),
		ErrorText:   lipgloss.NewStyle().Foreground(red),
		Dim:         lipgloss.NewStyle().Foreground(gray),
		Divider:     lipgloss.NewStyle().Foreground(dim),
		Timestamp:   lipgloss.NewStyle().Foreground(gray),
		FooterKey:   lipgloss.NewStyle().Foreground(yellow).Bold(true),
		FooterDesc:  lipgloss.NewStyle().Foreground(gray),
		PanelTitle:  lipgloss.NewStyle().Bold(true).Foreground(white),
		PanelActive: lipgloss.NewStyle().Bold(true).Foreground(cyan),
		Selected:    lipgloss.NewStyle().Foreground(cyan).Bold(true),

		PlayingBadge: lipgloss.NewStyle().Foreground(green).Bold(true),
		PausedBadge:  lipgloss.NewStyle().Foreground(gray),
		SyncBadge:    lipgloss.NewStyle().Foreground(purple).Bold(true),
		ScrubBadge:   lipgloss.NewStyle().Foreground(yellow).Bold(true),

		StepMarker: lipgloss.NewStyle().Foreground(green),
		HalfMarker: lipgloss.NewStyle().Foreground(yellow),
		SegmentBar: lipgloss.NewStyle().Foreground(purple),
		Cursor:     lipgloss.NewStyle().Foreground(white).Bold(true),
	}
}

// Light is the alternate palette for bright terminals.
func Light() Theme {
	var (
		red    = lipgloss.Color("#C0392B")
		green  = lipgloss.Color("#1E8449")
		yellow = lipgloss.Color("#B7950B")
		blue   = lipgloss.Color("#1F618D")
		gray   = lipgloss.Color("#707070")
		dim    = lipgloss.Color("#AAAAAA")
		black  = lipgloss.Color("#202020")
		purple = lipgloss.Color("#6C3483")
	)
	return Theme{
		Name:        "light",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(blue),
		Header:      lipgloss.NewStyle().Foreground(blue),
		Status:      lipgloss.NewStyle().Foreground(gray),
		Error:       lipgloss.NewStyle().Foreground(red).Bold(true),
		ErrorText:   lipgloss.NewStyle().Foreground(red),
		Dim:         lipgloss.NewStyle().Foreground(gray),
		Divider:     lipgloss.NewStyle().Foreground(dim),
		Timestamp:   lipgloss.NewStyle().Foreground(gray),
		FooterKey:   lipgloss.NewStyle().Foreground(yellow).Bold(true),
		FooterDesc:  lipgloss.NewStyle().Foreground(gray),
		PanelTitle:  lipgloss.NewStyle().Bold(true).Foreground(black),
		PanelActive: lipgloss.NewStyle().Bold(true).Foreground(blue),
		Selected:    lipgloss.NewStyle().Foreground(blue).Bold(true),

		PlayingBadge: lipgloss.NewStyle().Foreground(green).Bold(true),
		PausedBadge:  lipgloss.NewStyle().Foreground(gray),
		SyncBadge:    lipgloss.NewStyle().Foreground(purple).Bold(true),
		ScrubBadge:   lipgloss.NewStyle().Foreground(yellow).Bold(true),

		StepMarker: lipgloss.NewStyle().Foreground(green),
		HalfMarker: lipgloss.NewStyle().Foreground(yellow),
		SegmentBar: lipgloss.NewStyle().Foreground(purple),
		Cursor:     lipgloss.NewStyle().Foreground(black).Bold(true),
	}
}

// ByName resolves a persisted theme name, defaulting to dark.
func ByName(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}
