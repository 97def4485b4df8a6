package ui

import (
	"context"
	"errors"
	"image"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cakes/internal/config"
	"github.com/five82/cakes/internal/state"
	"github.com/five82/cakes/internal/thumbnail"
)

// ThumbnailLoader turns an image URL into a thumbnail.
type ThumbnailLoader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Thumbnails ThumbnailLoader
	ThemeName  string
	PrefsPath  string
}

const headerHeight = 1

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	thumbs    ThumbnailLoader
	prefsPath string

	theme   Theme
	keys    keyMap
	list    list.Model
	spinner spinner.Model
	width   int
	height  int
	ready   bool

	snapshot  state.Snapshot
	slots     thumbSlots
	requested map[string]bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = config.DefaultPrefsPath()
	}

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		thumbs:    opts.Thumbnails,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		slots:     make(thumbSlots),
		requested: make(map[string]bool),
	}

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("cake", "cakes")
	l.DisableQuitKeybindings()
	l.FilterInput.Prompt = "/ "
	l.AdditionalShortHelpKeys = m.keys.ShortHelp
	l.AdditionalFullHelpKeys = m.keys.FullHelp
	m.list = l
	m.applyTheme()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store), waitForChangeCmd(m.ctx, m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-headerHeight, 0))
		m.ready = true
		return m, m.requestThumbnails()

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		return m, m.applySnapshot(state.Snapshot(msg))

	case changedMsg:
		cmd := m.applySnapshot(state.Snapshot(msg))
		return m, tea.Batch(cmd, waitForChangeCmd(m.ctx, m.store))

	case thumbMsg:
		if msg.err != nil {
			// No error image: the slot stays blank.
			log.Printf("thumbnail url=%s failed: %v", msg.url, msg.err)
		}
		m.slots[msg.url] = msg.rendered
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderHeader() + "\n" + m.renderContent()
}

// handleKey processes keyboard input. Screen keys are ignored while the
// list filter has focus so they can be typed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Quit) && m.list.FilterState() == list.Unfiltered:
			return m, tea.Quit
		case key.Matches(msg, m.keys.CycleTheme):
			m.theme = GetTheme(NextTheme(m.theme.Name))
			m.applyTheme()
			if m.prefsPath != "" {
				if err := config.SavePrefs(m.prefsPath, config.Prefs{Theme: m.theme.Name}); err != nil {
					log.Printf("save prefs: %v", err)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, tea.Batch(cmd, m.requestThumbnails())
}

// applySnapshot replaces the list contents wholesale with the snapshot's
// records and requests thumbnails for the rows now on screen.
func (m *Model) applySnapshot(snap state.Snapshot) tea.Cmd {
	m.snapshot = snap
	cmd := m.list.SetItems(toItems(snap.Records))
	var tick tea.Cmd
	if m.loading() {
		tick = m.spinner.Tick
	}
	return tea.Batch(cmd, tick, m.requestThumbnails())
}

// requestThumbnails issues one load per visible row whose image has not
// been requested yet.
func (m *Model) requestThumbnails() tea.Cmd {
	if m.thumbs == nil {
		return nil
	}
	visible := m.list.VisibleItems()
	start, end := m.list.Paginator.GetSliceBounds(len(visible))

	var cmds []tea.Cmd
	for _, item := range visible[start:end] {
		it, ok := item.(cakeItem)
		if !ok || it.ImageURL == "" || m.requested[it.ImageURL] {
			continue
		}
		m.requested[it.ImageURL] = true
		cmds = append(cmds, loadThumbnailCmd(m.ctx, m.thumbs, it.ImageURL))
	}
	return tea.Batch(cmds...)
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.list.SetDelegate(rowDelegate{styles: styles, thumbs: m.slots})
	m.list.Styles.StatusBar = styles.MutedText.Padding(0, 0, 1, 2)
	m.list.Styles.NoItems = styles.MutedText.Padding(0, 2)
	m.list.Styles.HelpStyle = styles.FaintText.Padding(1, 0, 0, 2)
	m.spinner.Style = styles.AccentText.Background(lipgloss.Color(m.theme.Surface))
}

// loading reports whether the catalogue load has not finished yet.
func (m Model) loading() bool {
	return m.snapshot.Phase == state.PhaseIdle || m.snapshot.Phase.Busy()
}

// Messages

type snapshotMsg state.Snapshot

type changedMsg state.Snapshot

type thumbMsg struct {
	url      string
	rendered string
	err      error
}

// Commands

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// waitForChangeCmd blocks until the store signals a change or ctx ends.
func waitForChangeCmd(ctx context.Context, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-store.Changed():
			return changedMsg(store.Snapshot())
		case <-ctx.Done():
			return nil
		}
	}
}

func loadThumbnailCmd(ctx context.Context, loader ThumbnailLoader, url string) tea.Cmd {
	return func() tea.Msg {
		img, err := loader.Load(ctx, url)
		if err != nil {
			return thumbMsg{url: url, err: err}
		}
		return thumbMsg{url: url, rendered: thumbnail.Render(img, thumbCols, thumbRows)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
