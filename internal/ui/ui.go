package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/services"
	"github.com/justfortestingnothibghere/Api/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SongListView ViewState = iota
	DetailView
	ErrorView
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	songs    services.Service
	openURL  func(string) error
	width    int
	height   int
	loading  bool
	songList list.Model
	selected *models.Song
	status   string
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model reading songs from srv.
func NewModel(ctx context.Context, srv services.Service) *Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Songs (%s)", srv.Name())
	l.SetFilteringEnabled(true)

	return &Model{
		ctx:      ctx,
		view:     SongListView,
		songs:    srv,
		openURL:  shared.OpenBrowser,
		loading:  true,
		songList: l,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init initializes the TUI by fetching the song list.
func (m *Model) Init() tea.Cmd {
	return m.fetchSongs()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.songList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SongListView:
			return m.handleListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case ErrorView:
			return m.handleErrorKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	if m.view == SongListView {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgSongsFetched:
		data := msg.data.(songsFetched)
		m.loading = false
		if data.err != nil {
			m.err = data.err
			m.view = ErrorView
			return m, nil
		}
		m.err = nil
		m.view = SongListView
		m.status = fmt.Sprintf("%d songs", len(data.songs))
		return m, m.songList.SetItems(songItems(data.songs))

	case MsgBrowserOpened:
		data := msg.data.(browserOpened)
		if data.err != nil {
			m.status = styles.warn.Render(fmt.Sprintf("could not open %s: %v", data.url, data.err))
		} else {
			m.status = styles.ok.Render(fmt.Sprintf("opened %s", data.url))
		}
		return m, nil
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SongListView:
		return m.renderList()
	case DetailView:
		return m.renderDetail()
	case ErrorView:
		return m.renderError()
	default:
		return ""
	}
}

// State returns the active view.
func (m *Model) State() ViewState { return m.view }

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Let the list own every key while the filter prompt is open.
	if m.songList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.reload):
		m.loading = true
		m.status = ""
		return m, m.fetchSongs()
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.songList.SelectedItem().(songItem); ok {
			song := item.song
			m.selected = &song
			m.status = ""
			m.view = DetailView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = SongListView
		m.selected = nil
		m.status = ""
	case key.Matches(msg, m.keys.open):
		if m.selected != nil {
			return m, m.openSong(m.selected.SongURL)
		}
	}
	return m, nil
}

func (m *Model) handleErrorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.reload):
		m.loading = true
		return m, m.fetchSongs()
	}
	return m, nil
}

func (m *Model) fetchSongs() tea.Cmd {
	return func() tea.Msg {
		songs, err := m.songs.ListSongs(m.ctx)
		return songsFetchedMsg(songs, err)
	}
}

func (m *Model) openSong(url string) tea.Cmd {
	open := m.openURL
	return func() tea.Msg {
		return browserOpenedMsg(url, open(url))
	}
}

func (m *Model) renderList() string {
	if m.loading {
		return styles.help.Render("Loading songs...")
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.reload, m.keys.quit}
	footer := m.help.ShortHelpView(helpKeys)
	if m.status != "" {
		footer = fmt.Sprintf("%s  %s", styles.help.Render(m.status), footer)
	}
	return fmt.Sprintf("%s\n\n%s", m.songList.View(), footer)
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return ""
	}
	s := m.selected

	var b strings.Builder
	b.WriteString(styles.title.Render(s.Title))
	b.WriteString("\n")
	rows := [][2]string{
		{"ID", fmt.Sprintf("%d", s.ID)},
		{"Artist", s.Artist},
		{"Song", s.SongURL},
		{"Thumbnail", s.ThumbnailURL},
	}
	for _, r := range rows {
		b.WriteString(styles.label.Render(r[0]))
		b.WriteString(r[1])
		b.WriteString("\n")
	}

	helpKeys := []key.Binding{m.keys.open, m.keys.back, m.keys.quit}
	footer := m.help.ShortHelpView(helpKeys)
	if m.status != "" {
		footer = fmt.Sprintf("%s\n%s", m.status, footer)
	}
	return fmt.Sprintf("%s\n\n%s", styles.box.Render(strings.TrimRight(b.String(), "\n")), footer)
}

func (m *Model) renderError() string {
	title := styles.err.Render("Could not load songs")
	helpKeys := []key.Binding{m.keys.reload, m.keys.quit}
	return fmt.Sprintf("%s\n\n%v\n\n%s", title, m.err, m.help.ShortHelpView(helpKeys))
}
