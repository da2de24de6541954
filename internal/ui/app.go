package ui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wodview/internal/configstore"
	"github.com/five82/wodview/internal/nav"
	"github.com/five82/wodview/internal/notify"
	"github.com/five82/wodview/internal/prefs"
	"github.com/five82/wodview/internal/render"
	"github.com/five82/wodview/internal/schedule"
	"github.com/five82/wodview/internal/state"
)

// Mode is the active content of the main area.
type Mode int

const (
	ModeBoard Mode = iota
	ModeWeeks
)

// wideLayout is the width from which cards react to mouse hover.
const wideLayout = 100

const revealInterval = 50 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context     context.Context
	Source      schedule.Source
	Store       *state.Store
	Configs     *configstore.Store
	Notices     *notify.Center
	LoadTimeout time.Duration
	ThemeName   string
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	source      schedule.Source
	store       *state.Store
	configs     *configstore.Store
	nav         *nav.Controller
	notices     *notify.Center
	keys        keyMap
	prefsPath   string
	loadTimeout time.Duration
	now         func() time.Time

	// UI state
	theme  Theme
	mode   Mode
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot
	view     render.View
	layout   boardLayout
	viewLoad uint64 // load token the board was built from

	// Board state
	selected    sectionRef
	hovered     int
	revealed    int
	revealStart time.Time
	content     viewport.Model

	// Explorer state
	weekCursor int

	// Help overlay
	showHelp bool

	// Configuration modal
	showConfig    bool
	configInputs  [2]textinput.Model // week, year
	configNotify  bool
	configFocus   int // 0 week, 1 year, 2 notifications
	configMessage string

	changes <-chan struct{}
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	notices := opts.Notices
	if notices == nil {
		notices = notify.NewCenter(notify.DefaultTTL)
	}
	timeout := opts.LoadTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	snap := opts.Store.Snapshot()
	m := Model{
		ctx:         ctx,
		source:      opts.Source,
		store:       opts.Store,
		configs:     opts.Configs,
		nav:         nav.New(opts.Store),
		notices:     notices,
		keys:        DefaultKeyMap(),
		prefsPath:   prefsPath,
		loadTimeout: timeout,
		now:         time.Now,
		theme:       themeFor(opts.ThemeName, snap.Config.DarkMode),
		snapshot:    snap,
		selected:    noSection,
		hovered:     -1,
		revealed:    -1,
	}
	m.initConfigInputs()
	m.rebuildView()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(time.Second),
		waitForChange(m.ctx, m.changes),
		m.startLoad(m.store.Config().Key()),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.content = viewport.New(m.width, m.contentHeight())
		}
		m.ready = true
		if m.width < wideLayout {
			m.hovered = -1
		}
		m.syncContent()
		return m, nil

	case tickMsg:
		// Repaints drop expired notifications.
		m.syncContent()
		return m, tickCmd(time.Second)

	case changedMsg:
		cmd := m.refresh()
		return m, tea.Batch(cmd, waitForChange(m.ctx, m.changes))

	case weekLoadedMsg:
		if !m.store.CompleteLoad(msg.token, msg.doc, msg.err) {
			log.Printf("discarded stale load of week %s", msg.key)
			return m, nil
		}
		if msg.err != nil {
			log.Printf("load week %s failed: %v", msg.key, msg.err)
		}
		return m, m.refresh()

	case weeksReloadedMsg:
		log.Printf("week list reloaded: %d weeks", msg.count)
		return m, m.refresh()

	case revealMsg:
		return m.handleReveal(time.Time(msg))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showConfig {
		return m.renderConfig()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}
	if m.showConfig {
		return m.handleConfigKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				log.Printf("save prefs failed: %v", err)
			}
		}
		m.syncContent()
		return m, nil

	case key.Matches(msg, m.keys.Configure):
		return m, m.openConfig()

	case key.Matches(msg, m.keys.Explorer):
		if m.mode == ModeWeeks {
			m.mode = ModeBoard
		} else {
			m.openExplorer()
		}
		m.rebuildView()
		m.syncContent()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.mode == ModeWeeks {
			m.mode = ModeBoard
			m.rebuildView()
			m.syncContent()
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevWeek):
		return m.changeWeek(nav.Previous)

	case key.Matches(msg, m.keys.NextWeek):
		return m.changeWeek(nav.Next)

	case key.Matches(msg, m.keys.Reload):
		return m, m.startLoad(m.store.Config().Key())

	case key.Matches(msg, m.keys.ReloadWeeks):
		return m, reloadWeeksCmd(m.ctx, m.configs, m.notices, m.loadTimeout)

	case key.Matches(msg, m.keys.Dismiss):
		if m.notices.DismissNewest() {
			m.syncContent()
		}
		return m, nil
	}

	if m.mode == ModeWeeks {
		return m.handleExplorerKey(msg)
	}
	return m.handleBoardKey(msg)
}

// handleBoardKey processes keys that act on the day cards.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	refs := m.sectionRefs()
	switch {
	case key.Matches(msg, m.keys.Down):
		m.selected = stepSection(refs, m.selected, 1)
	case key.Matches(msg, m.keys.Up):
		m.selected = stepSection(refs, m.selected, -1)
	case key.Matches(msg, m.keys.ToggleFeedback):
		if m.selected == noSection {
			return m, nil
		}
		card := &m.view.Cards[m.selected.Card]
		render.ToggleFeedback(&card.Sections[m.selected.Section])
	case key.Matches(msg, m.keys.PageDown):
		m.content.PageDown()
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.content.PageUp()
		return m, nil
	default:
		return m, nil
	}
	m.syncContent()
	return m, nil
}

// handleExplorerKey processes keys in the week explorer.
func (m Model) handleExplorerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	weeks := m.snapshot.Config.AvailableWeeks
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.weekCursor < len(weeks)-1 {
			m.weekCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.weekCursor > 0 {
			m.weekCursor--
		}
	case key.Matches(msg, m.keys.Confirm):
		if m.weekCursor >= len(weeks) {
			return m, nil
		}
		target, err := m.nav.JumpToWeek(weeks[m.weekCursor].FileRef)
		if err != nil {
			m.notices.Notify(err.Error(), notify.Warning)
			m.syncContent()
			return m, nil
		}
		m.mode = ModeBoard
		return m, m.startLoad(target)
	default:
		return m, nil
	}
	m.rebuildView()
	m.syncContent()
	return m, nil
}

// changeWeek moves one week in d or warns when that week is missing.
func (m Model) changeWeek(d nav.Direction) (tea.Model, tea.Cmd) {
	target, err := m.nav.ChangeWeek(d)
	var unavailable *nav.UnavailableWeekError
	if errors.As(err, &unavailable) {
		m.notices.Notify(unavailable.Error(), notify.Warning)
		m.syncContent()
		return m, nil
	}
	if err != nil {
		log.Printf("change week failed: %v", err)
		return m, nil
	}
	m.mode = ModeBoard
	return m, m.startLoad(target)
}

func (m *Model) openExplorer() {
	m.mode = ModeWeeks
	m.weekCursor = 0
	current := m.snapshot.Config.Key()
	for i, w := range m.snapshot.Config.AvailableWeeks {
		if w.WeekKey == current {
			m.weekCursor = i
			break
		}
	}
}

// startLoad registers a load with the store and returns the fetch command.
func (m *Model) startLoad(k schedule.WeekKey) tea.Cmd {
	token := m.store.BeginLoad(k)
	m.snapshot = m.store.Snapshot()
	return loadWeekCmd(m.ctx, m.source, k, token, m.loadTimeout)
}

// refresh pulls the latest snapshot and rebuilds the view when a load has
// completed since the last build. A fresh set of cards starts the entrance
// animation.
func (m *Model) refresh() tea.Cmd {
	m.snapshot = m.store.Snapshot()
	if m.mode == ModeWeeks {
		m.rebuildView()
		m.syncContent()
		return nil
	}
	if m.snapshot.LoadToken == m.viewLoad {
		m.syncContent()
		return nil
	}
	m.rebuildView()
	if len(m.view.Cards) > 0 {
		m.revealed = 0
		m.revealStart = m.now()
		m.syncContent()
		return revealCmd()
	}
	m.syncContent()
	return nil
}

// rebuildView renders the snapshot into a new view tree. Feedback toggles
// reset on every rebuild of the board.
func (m *Model) rebuildView() {
	snap := m.snapshot
	if m.mode == ModeWeeks {
		m.view = render.Weeks(snap.Config.AvailableWeeks, snap.Config.Key())
		return
	}
	m.viewLoad = snap.LoadToken
	switch {
	case snap.Status == state.LoadFailed:
		m.view = render.ErrorPanelFor(snap.Requested, snap.LoadError)
	case snap.Document != nil:
		m.view = render.Schedule(snap.Document)
	default:
		m.view = render.View{}
	}
	m.selected = noSection
	m.revealed = -1
}

func (m Model) handleReveal(now time.Time) (tea.Model, tea.Cmd) {
	if m.revealed < 0 {
		return m, nil
	}
	elapsed := now.Sub(m.revealStart)
	shown := 0
	for _, c := range m.view.Cards {
		if c.Delay <= elapsed {
			shown++
		}
	}
	if shown >= len(m.view.Cards) {
		m.revealed = -1
		m.syncContent()
		return m, nil
	}
	m.revealed = shown
	m.syncContent()
	return m, revealCmd()
}

func (m Model) sectionRefs() []sectionRef {
	var refs []sectionRef
	for ci, c := range m.view.Cards {
		for si := range c.Sections {
			refs = append(refs, sectionRef{Card: ci, Section: si})
		}
	}
	return refs
}

// stepSection moves the selection by delta, clamping at both ends.
func stepSection(refs []sectionRef, current sectionRef, delta int) sectionRef {
	if len(refs) == 0 {
		return noSection
	}
	idx := -1
	for i, r := range refs {
		if r == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta < 0 {
			return refs[len(refs)-1]
		}
		return refs[0]
	}
	idx = max(0, min(len(refs)-1, idx+delta))
	return refs[idx]
}

// Messages

type tickMsg time.Time

type revealMsg time.Time

type changedMsg struct{}

type weekLoadedMsg struct {
	key   schedule.WeekKey
	token uint64
	doc   *schedule.Document
	err   error
}

type weeksReloadedMsg struct{ count int }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func revealCmd() tea.Cmd {
	return tea.Tick(revealInterval, func(t time.Time) tea.Msg {
		return revealMsg(t)
	})
}

func loadWeekCmd(ctx context.Context, source schedule.Source, k schedule.WeekKey, token uint64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		doc, err := source.LoadWeek(ctx, k)
		return weekLoadedMsg{key: k, token: token, doc: doc, err: err}
	}
}

func reloadWeeksCmd(ctx context.Context, configs *configstore.Store, n configstore.Notifier, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return weeksReloadedMsg{count: configs.ReloadWeeks(ctx, n)}
	}
}

func waitForChange(ctx context.Context, ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			return changedMsg{}
		}
	}
}

// Run starts the Bubble Tea program. Store changes made outside the update
// loop, such as the monitor refreshing the week list, trigger a repaint.
func Run(opts Options) error {
	m := New(opts)
	changes, unsubscribe := opts.Store.Subscribe()
	defer unsubscribe()
	m.changes = changes

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
