// Package app is the root bubbletea model: it owns the playback clock, the
// sync engine and the marker sets, and translates key presses into mutations
// on them. Every mutation that is part of the persisted session is written
// back to the session store immediately.
package app

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gaitsync/internal/clipboard"
	"gaitsync/internal/config"
	"gaitsync/internal/db"
	"gaitsync/internal/export"
	"gaitsync/internal/marker"
	"gaitsync/internal/playback"
	"gaitsync/internal/recording"
	"gaitsync/internal/session"
	"gaitsync/internal/syncpoint"
	"gaitsync/internal/timeseries"
	"gaitsync/internal/ui"
	"gaitsync/internal/video"
)

// Model is the root bubbletea model.
type Model struct {
	cfg     *config.Config
	store   *session.Store
	history *db.Store // nil when the history database is unavailable
	folder  *recording.Folder
	video   *video.Info

	right *timeseries.Series
	left  *timeseries.Series

	clock  *playback.Clock
	engine *syncpoint.Engine

	stepRight *marker.Set
	stepLeft  *marker.Set
	halfRight *marker.Set
	halfLeft  *marker.Set

	focused      marker.Foot
	cursorRight  int // sample index into right series
	cursorLeft   int
	scrub        bool
	showSteps    bool
	selectedCols []string

	theme ui.Theme
	keys  KeyMap

	width  int
	height int

	statusText   string
	errorMessage string

	tickGen    int
	lastExport *db.ExportRun
	exporting  bool
}

// New builds the model from the loaded recording and its persisted session.
func New(cfg *config.Config, store *session.Store, history *db.Store,
	folder *recording.Folder, info *video.Info,
	right, left *timeseries.Series, doc *session.Document) Model {

	clock := playback.New(info.FrameCount(), info.FPS())
	clock.Seek(doc.CurrentFrame)
	clock.SetSpeed(doc.PlaybackSpeed)

	m := Model{
		cfg:          cfg,
		store:        store,
		history:      history,
		folder:       folder,
		video:        info,
		right:        right,
		left:         left,
		clock:        clock,
		engine:       syncpoint.New(doc.SyncOffset),
		stepRight:    marker.NewSet(doc.StepRight),
		stepLeft:     marker.NewSet(doc.StepLeft),
		halfRight:    marker.NewSet(doc.HalfRight),
		halfLeft:     marker.NewSet(doc.HalfLeft),
		showSteps:    doc.ShowSteps,
		selectedCols: doc.SelectedColumns,
		theme:        ui.ByName(doc.Theme),
		keys:         DefaultKeyMap(),
	}

	if history != nil {
		if last, err := history.LastExport(session.Key(folder.Path)); err == nil {
			m.lastExport = last
		}
	}
	return m
}

// Init returns no command: playback always starts paused.
func (m Model) Init() tea.Cmd {
	return nil
}

// playTickCmd schedules the next frame advance at the clock's current cadence.
func playTickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return playTickMsg{gen: gen}
	})
}

// clearStatusCmd fires after a delay to clear the transient status line.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// exportCmd runs the segment export off the update loop and records the
// outcome in the history database.
func exportCmd(e *export.Exporter, folder string, history *db.Store,
	right, left *export.Foot) tea.Cmd {
	return func() tea.Msg {
		res, err := e.Run(folder, right, left)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if history != nil {
			now := time.Now()
			var runs []db.ExportRun
			for _, fr := range res.Feet {
				runs = append(runs, db.ExportRun{
					ID:            res.RunID,
					RecordingKey:  session.Key(folder),
					Foot:          fr.Foot.String(),
					WholeSegments: fr.WholeSegments,
					HalfSegments:  fr.HalfSegments,
					SkippedSlices: fr.SkippedSlices,
					CreatedAt:     now,
				})
			}
			if err := history.RecordExport(runs); err != nil {
				return exportDoneMsg{result: res, err: err}
			}
		}
		return exportDoneMsg{result: res}
	}
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case playTickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		m.clock.Tick()
		if m.clock.Playing() {
			return m, playTickCmd(m.tickGen, m.clock.Interval())
		}
		m.save()
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			return m, nil
		}
		m.statusText = summarizeExport(msg.result)
		if m.history != nil {
			if last, err := m.history.LastExport(session.Key(m.folder.Path)); err == nil {
				m.lastExport = last
			}
		}
		return m, clearStatusCmd()

	case clearStatusMsg:
		m.statusText = ""
		return m, nil
	}

	return m, nil
}

func summarizeExport(res *export.Result) string {
	whole, halves, skippedFeet := 0, 0, 0
	for _, fr := range res.Feet {
		whole += fr.WholeSegments
		halves += fr.HalfSegments
		if fr.NoMarkers {
			skippedFeet++
		}
	}
	s := fmt.Sprintf("exported %d steps, %d half-steps", whole, halves)
	if skippedFeet > 0 {
		s += fmt.Sprintf(" (%d foot skipped, no markers)", skippedFeet)
	}
	return s
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		m.clock.Pause()
		m.save()
		if m.history != nil {
			m.history.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, keys.PlayPause):
		// The data-point phase and scrub mode both need a frozen playhead;
		// the video-point phase still allows playback so the operator can
		// find the frame.
		if m.engine.State() == syncpoint.AwaitingDataPoint || m.scrub {
			return m, nil
		}
		m.tickGen++
		if m.clock.Playing() {
			m.clock.Pause()
			m.save()
			return m, nil
		}
		if m.clock.Finished() {
			m.clock.Restart()
		} else {
			m.clock.Play()
		}
		return m, playTickCmd(m.tickGen, m.clock.Interval())

	case key.Matches(msg, keys.PrevFrame):
		m.stepFrames(-1)
		return m, nil

	case key.Matches(msg, keys.NextFrame):
		m.stepFrames(1)
		return m, nil

	case key.Matches(msg, keys.SpeedUp):
		return m.cycleSpeed(1)

	case key.Matches(msg, keys.SpeedDown):
		return m.cycleSpeed(-1)

	case key.Matches(msg, keys.Scrub):
		m.scrub = !m.scrub
		if m.scrub {
			m.tickGen++
			m.clock.Pause()
		}
		return m, nil

	case key.Matches(msg, keys.Sync):
		if m.engine.State() == syncpoint.Idle {
			if err := m.engine.Begin(); err != nil {
				m.errorMessage = err.Error()
				return m, nil
			}
			m.statusText = "sync: seek to the alignment frame, then press enter"
			return m, nil
		}
		m.engine.Cancel()
		m.statusText = "sync cancelled"
		return m, clearStatusCmd()

	case key.Matches(msg, keys.Capture):
		return m.captureAnchor()

	case key.Matches(msg, keys.CursorLeft):
		m.moveCursor(-1)
		m.scrubFollow()
		return m, nil

	case key.Matches(msg, keys.CursorRight):
		m.moveCursor(1)
		m.scrubFollow()
		return m, nil

	case key.Matches(msg, keys.AddStep):
		m.addMarker(marker.KindStep, m.playheadDataTime())
		return m, clearStatusCmd()

	case key.Matches(msg, keys.AddHalf):
		m.addMarker(marker.KindHalfCycle, m.playheadDataTime())
		return m, clearStatusCmd()

	case key.Matches(msg, keys.AddStepCursor):
		m.addMarker(marker.KindStep, m.cursorTime())
		return m, clearStatusCmd()

	case key.Matches(msg, keys.AddHalfCursor):
		m.addMarker(marker.KindHalfCycle, m.cursorTime())
		return m, clearStatusCmd()

	case key.Matches(msg, keys.RemoveStep):
		m.removeMarker(marker.KindStep)
		return m, clearStatusCmd()

	case key.Matches(msg, keys.RemoveHalf):
		m.removeMarker(marker.KindHalfCycle)
		return m, clearStatusCmd()

	case key.Matches(msg, keys.SwitchFoot):
		if m.focused == marker.FootRight {
			m.focused = marker.FootLeft
		} else {
			m.focused = marker.FootRight
		}
		return m, nil

	case key.Matches(msg, keys.SwapFeet):
		m.folder.Swap()
		m.right, m.left = m.left, m.right
		m.cursorRight, m.cursorLeft = m.cursorLeft, m.cursorRight
		m.save()
		m.statusText = "swapped foot CSV assignment"
		return m, clearStatusCmd()

	case key.Matches(msg, keys.ToggleSteps):
		m.showSteps = !m.showSteps
		m.save()
		return m, nil

	case key.Matches(msg, keys.Theme):
		if m.theme.Name == "dark" {
			m.theme = ui.Light()
		} else {
			m.theme = ui.Dark()
		}
		m.save()
		return m, nil

	case key.Matches(msg, keys.Copy):
		t := m.playheadDataTime()
		if err := clipboard.CopyTimestamp(t); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.statusText = fmt.Sprintf("copied %.3f", t)
		return m, clearStatusCmd()

	case key.Matches(msg, keys.Export):
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		m.statusText = "exporting..."
		e := &export.Exporter{Charts: m.cfg.ExportCharts}
		// The command runs on its own goroutine while the update loop keeps
		// accepting marker keys, so it gets marker snapshots, never the live
		// sets. Series are immutable after load and safe to share.
		return m, exportCmd(e, m.folder.Path, m.history,
			&export.Foot{
				Foot:   marker.FootRight,
				Series: m.right,
				Steps:  marker.NewSet(m.stepRight.Stamps()),
				Halves: marker.NewSet(m.halfRight.Stamps()),
			},
			&export.Foot{
				Foot:   marker.FootLeft,
				Series: m.left,
				Steps:  marker.NewSet(m.stepLeft.Stamps()),
				Halves: marker.NewSet(m.halfLeft.Stamps()),
			},
		)

	case key.Matches(msg, keys.ResetSync):
		m.engine.Cancel()
		m.engine.SetOffset(0)
		m.save()
		m.statusText = "sync offset reset"
		return m, clearStatusCmd()

	case key.Matches(msg, keys.ResetAll):
		return m.resetSession()
	}

	// Digit keys toggle which channels the foot panels display.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.toggleColumn(int(s[0] - '1'))
		m.save()
	}
	return m, nil
}

func (m *Model) stepFrames(delta int) {
	m.tickGen++
	m.clock.Step(delta)
	m.save()
}

// scrubFollow seeks the video to the frame matching the data cursor through
// the sync offset, so moving along the sensor stream scrubs the video.
func (m *Model) scrubFollow() {
	if !m.scrub {
		return
	}
	videoTime := m.engine.ToVideoTime(m.cursorTime())
	m.tickGen++
	m.clock.Seek(int(videoTime*m.video.FPS() + 0.5))
	m.save()
}

func (m Model) cycleSpeed(direction int) (tea.Model, tea.Cmd) {
	presets := m.cfg.SpeedPresets
	idx := nearestPreset(presets, m.clock.Speed()) + direction
	if idx < 0 {
		idx = 0
	}
	if idx >= len(presets) {
		idx = len(presets) - 1
	}
	if err := m.clock.SetSpeed(presets[idx]); err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}
	m.save()
	if m.clock.Playing() {
		// Restart the ticker so the new cadence applies now, not after the
		// pending tick at the old interval.
		m.tickGen++
		return m, playTickCmd(m.tickGen, m.clock.Interval())
	}
	return m, nil
}

// nearestPreset returns the index of the preset closest to speed. A restored
// session speed may no longer appear in the configured presets, so cycling
// starts from the closest one rather than the first.
func nearestPreset(presets []float64, speed float64) int {
	best := 0
	bestDist := math.Abs(presets[0] - speed)
	for i, p := range presets[1:] {
		if d := math.Abs(p - speed); d < bestDist {
			bestDist = d
			best = i + 1
		}
	}
	return best
}

// captureAnchor advances the two-phase sync capture.
func (m Model) captureAnchor() (tea.Model, tea.Cmd) {
	switch m.engine.State() {
	case syncpoint.AwaitingVideoPoint:
		if err := m.engine.CaptureVideoAnchor(m.clock.CurrentVideoTime()); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.tickGen++
		m.clock.Pause()
		m.statusText = "sync: select the matching data sample (h/l), then press enter"
		return m, nil

	case syncpoint.AwaitingDataPoint:
		if err := m.engine.CaptureDataAnchor(m.cursorTime(), m.focusedSeries()); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.save()
		m.statusText = fmt.Sprintf("sync offset set to %.3f s", m.engine.Offset())
		return m, clearStatusCmd()
	}
	return m, nil
}

func (m *Model) focusedSeries() *timeseries.Series {
	if m.focused == marker.FootLeft {
		return m.left
	}
	return m.right
}

func (m *Model) cursorIndex() *int {
	if m.focused == marker.FootLeft {
		return &m.cursorLeft
	}
	return &m.cursorRight
}

func (m *Model) moveCursor(delta int) {
	s := m.focusedSeries()
	if s.Len() == 0 {
		return
	}
	idx := m.cursorIndex()
	*idx += delta
	if *idx < 0 {
		*idx = 0
	}
	if *idx >= s.Len() {
		*idx = s.Len() - 1
	}
}

// cursorTime is the data time under the focused foot's sample cursor.
func (m *Model) cursorTime() float64 {
	s := m.focusedSeries()
	if s.Len() == 0 {
		return 0
	}
	return s.Times[*m.cursorIndex()]
}

// playheadDataTime maps the current video position onto the data clock.
func (m *Model) playheadDataTime() float64 {
	return m.engine.ToDataTime(m.clock.CurrentVideoTime())
}

func (m *Model) markerSet(f marker.Foot, k marker.Kind) *marker.Set {
	switch {
	case f == marker.FootRight && k == marker.KindStep:
		return m.stepRight
	case f == marker.FootRight && k == marker.KindHalfCycle:
		return m.halfRight
	case f == marker.FootLeft && k == marker.KindStep:
		return m.stepLeft
	default:
		return m.halfLeft
	}
}

func (m *Model) addMarker(k marker.Kind, t float64) {
	m.markerSet(m.focused, k).Add(t)
	m.save()
	m.statusText = fmt.Sprintf("%s foot: %s marker at %.3f", m.focused, k, t)
}

func (m *Model) removeMarker(k marker.Kind) {
	t := m.playheadDataTime()
	if m.markerSet(m.focused, k).RemoveNearest(t, m.cfg.RemoveThreshold) {
		m.save()
		m.statusText = fmt.Sprintf("%s foot: removed %s marker near %.3f", m.focused, k, t)
	} else {
		m.statusText = fmt.Sprintf("no %s marker within %.3f s", k, m.cfg.RemoveThreshold)
	}
}

func (m Model) resetSession() (tea.Model, tea.Cmd) {
	if err := m.store.Reset(m.folder.Path); err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}
	m.tickGen++
	m.engine.Cancel()
	m.engine.SetOffset(0)
	m.clock.Seek(0)
	m.clock.SetSpeed(1.0)
	m.stepRight.Clear()
	m.stepLeft.Clear()
	m.halfRight.Clear()
	m.halfLeft.Clear()
	m.selectedCols = nil
	m.showSteps = true
	m.theme = ui.ByName(m.cfg.Theme)
	m.statusText = "session reset"
	return m, clearStatusCmd()
}

func (m *Model) toggleColumn(i int) {
	cols := m.right.Columns
	if i >= len(cols) {
		return
	}
	name := cols[i]
	for j, c := range m.selectedCols {
		if c == name {
			m.selectedCols = append(m.selectedCols[:j], m.selectedCols[j+1:]...)
			return
		}
	}
	m.selectedCols = append(m.selectedCols, name)
}

// save writes the current session state. A failed write surfaces on the
// error line but never interrupts the interaction that caused it.
func (m *Model) save() {
	doc := &session.Document{
		SyncOffset:       m.engine.Offset(),
		PlaybackSpeed:    m.clock.Speed(),
		CurrentFrame:     m.clock.Frame(),
		SelectedColumns:  m.selectedCols,
		RightCSV:         filepath.Base(m.folder.RightCSV),
		LeftCSV:          filepath.Base(m.folder.LeftCSV),
		Theme:            m.theme.Name,
		StepRight:        m.stepRight.Stamps(),
		StepLeft:         m.stepLeft.Stamps(),
		HalfRight:        m.halfRight.Stamps(),
		HalfLeft:         m.halfLeft.Stamps(),
		ShowSteps:        m.showSteps,
		VideoOrientation: m.video.Orientation(),
	}
	if err := m.store.Save(m.folder.Path, doc); err != nil {
		m.errorMessage = err.Error()
	}
}
