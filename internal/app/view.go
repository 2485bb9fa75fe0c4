package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gaitsync/internal/marker"
	"gaitsync/internal/segment"
	"gaitsync/internal/syncpoint"
	"gaitsync/internal/timeseries"
)

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTransportBar())
	sections = append(sections, m.theme.Divider.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderFootPanels())
	sections = append(sections, m.theme.Divider.Render(strings.Repeat("─", m.width)))

	if m.errorMessage != "" {
		sections = append(sections, m.theme.Error.Render("Error: ")+m.theme.ErrorText.Render(m.errorMessage))
	} else if m.statusText != "" {
		sections = append(sections, m.theme.Status.Render(m.statusText))
	}

	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("GAITSYNC")
	folder := m.theme.Dim.Render(" — " + filepath.Base(m.folder.Path))

	var last string
	if m.lastExport != nil {
		last = m.theme.Dim.Render("  last export " + m.lastExport.CreatedAt.Format("2006-01-02 15:04"))
	}
	return title + folder + last
}

func (m Model) renderTransportBar() string {
	var badge string
	switch {
	case m.clock.Playing():
		badge = m.theme.PlayingBadge.Render("▶ PLAY")
	case m.clock.Finished():
		badge = m.theme.PausedBadge.Render("■ END")
	default:
		badge = m.theme.PausedBadge.Render("❚❚ PAUSE")
	}

	videoTime := m.clock.CurrentVideoTime()
	pos := fmt.Sprintf("  frame %d/%d  video %s  data %s",
		m.clock.Frame()+1, m.clock.Total(),
		formatSeconds(videoTime), formatSeconds(m.engine.ToDataTime(videoTime)))

	speed := fmt.Sprintf("  %gx", m.clock.Speed())
	offset := fmt.Sprintf("  offset %+.3f s", m.engine.Offset())

	var flags string
	if m.scrub {
		flags += "  " + m.theme.ScrubBadge.Render("SCRUB")
	}
	if m.engine.State() != syncpoint.Idle {
		flags += "  " + m.theme.SyncBadge.Render("SYNC: "+m.engine.State().String())
	}

	return badge + m.theme.Status.Render(pos+speed+offset) + flags
}

func (m Model) renderFootPanels() string {
	panelW := (m.width - 1) / 2
	rightPanel := m.renderFootPanel(marker.FootRight, m.right, m.stepRight, m.halfRight, m.cursorRight, panelW)
	leftPanel := m.renderFootPanel(marker.FootLeft, m.left, m.stepLeft, m.halfLeft, m.cursorLeft, panelW)

	divider := m.theme.Divider.Render("│")
	rl := strings.Split(rightPanel, "\n")
	ll := strings.Split(leftPanel, "\n")
	for len(rl) < len(ll) {
		rl = append(rl, "")
	}
	for len(ll) < len(rl) {
		ll = append(ll, "")
	}

	var rows []string
	for i := range rl {
		rows = append(rows, padRight(rl[i], panelW)+divider+ll[i])
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderFootPanel(foot marker.Foot, s *timeseries.Series,
	steps, halves *marker.Set, cursor int, width int) string {

	var lines []string

	title := fmt.Sprintf("%s FOOT", strings.ToUpper(foot.String()))
	if m.focused == foot {
		lines = append(lines, m.theme.PanelActive.Render("> "+title))
	} else {
		lines = append(lines, m.theme.PanelTitle.Render("  "+title))
	}

	csv := m.folder.RightCSV
	if foot == marker.FootLeft {
		csv = m.folder.LeftCSV
	}
	label := filepath.Base(csv)
	if s.SampleRate > 0 {
		label += fmt.Sprintf("  %d Hz", s.SampleRate)
	}
	lines = append(lines, m.theme.Dim.Render("  "+label))

	if s.Len() == 0 {
		lines = append(lines, m.theme.ErrorText.Render("  no samples"))
		return strings.Join(lines, "\n")
	}

	dataTime := m.playheadDataTime()
	idx := s.NearestIndex(dataTime)
	lines = append(lines, m.theme.Status.Render(fmt.Sprintf("  sample %d/%d at %s",
		idx+1, s.Len(), formatSeconds(s.Times[idx]))))

	for _, line := range m.renderChannels(s, idx, width) {
		lines = append(lines, line)
	}

	lines = append(lines, m.theme.StepMarker.Render(fmt.Sprintf("  steps: %d", steps.Len()))+
		m.theme.HalfMarker.Render(fmt.Sprintf("  halves: %d", halves.Len())))

	if m.focused == foot {
		lines = append(lines, m.theme.Cursor.Render(fmt.Sprintf("  cursor %d at %s",
			cursor+1, formatSeconds(s.Times[clampIndex(cursor, s.Len())]))))
	}

	if m.showSteps {
		segs := segment.Derive(steps.Sorted(), s.End())
		line := fmt.Sprintf("  segments: %d", len(segs))
		if active := segment.Active(segs, dataTime); active != nil {
			line += fmt.Sprintf("  in step %d [%s, %s)", active.Ordinal,
				formatSeconds(active.Start), formatSeconds(active.End))
		}
		lines = append(lines, m.theme.SegmentBar.Render(line))
	}

	return strings.Join(lines, "\n")
}

// renderChannels shows the selected channels' values at the display sample.
// Without an explicit selection the first three channels are shown.
func (m Model) renderChannels(s *timeseries.Series, idx, width int) []string {
	cols := m.selectedCols
	if len(cols) == 0 {
		n := 3
		if n > len(s.Columns) {
			n = len(s.Columns)
		}
		cols = s.Columns[:n]
	}

	var lines []string
	for _, name := range cols {
		ci := s.ColumnIndex(name)
		if ci < 0 {
			continue
		}
		// Truncate before styling so the cut can never land inside an
		// escape sequence.
		line := truncateToWidth(fmt.Sprintf("    %-14s %10.4f", name, s.Rows[idx][ci]), width)
		lines = append(lines, m.theme.Status.Render(line))
	}
	return lines
}

func (m Model) renderFooter() string {
	k := m.keys
	bindings := []struct{ key, desc string }{
		{k.PlayPause.Help().Key, k.PlayPause.Help().Desc},
		{k.PrevFrame.Help().Key, "step frame"},
		{k.SpeedUp.Help().Key, "speed"},
		{k.Sync.Help().Key, k.Sync.Help().Desc},
		{k.AddStep.Help().Key, k.AddStep.Help().Desc},
		{k.AddHalf.Help().Key, k.AddHalf.Help().Desc},
		{k.RemoveStep.Help().Key, k.RemoveStep.Help().Desc},
		{k.SwitchFoot.Help().Key, k.SwitchFoot.Help().Desc},
		{k.Export.Help().Key, k.Export.Help().Desc},
		{k.Quit.Help().Key, k.Quit.Help().Desc},
	}

	var parts []string
	for _, b := range bindings {
		parts = append(parts, m.theme.FooterKey.Render(b.key)+m.theme.FooterDesc.Render(" "+b.desc))
	}
	return strings.Join(parts, "  ")
}

// Helpers

func formatSeconds(t float64) string {
	return fmt.Sprintf("%.3fs", t)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// truncateToWidth shortens plain (unstyled) text to the given cell width.
func truncateToWidth(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		return string(runes[:width-1]) + "…"
	}
	return s
}
