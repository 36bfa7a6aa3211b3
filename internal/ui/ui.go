package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vibelist/internal/models"
	"github.com/desertthunder/vibelist/internal/session"
	"github.com/desertthunder/vibelist/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	GenreBrowserView ViewState = iota
	ArtistSearchView
	ComposeView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	view   ViewState
	engine *session.Engine
	width  int
	height int

	genreList   list.Model
	resultList  list.Model
	searchInput textinput.Model
	promptInput textinput.Model
	spin        spinner.Model

	busy       bool
	preview    string
	created    *models.CreatedPlaylist
	failCopy   string
	inlineErr  string
	help       help.Model
	keys       keyMap
}

type engineEventMsg struct {
	event session.Event
}

type previewDoneMsg struct {
	text string
	err  error
}

type createDoneMsg struct {
	result *models.CreatedPlaylist
	err    error
}

// NewModel creates a new TUI model around the given engine.
func NewModel(ctx context.Context, engine *session.Engine) *Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "artist name"
	searchInput.CharLimit = 64

	promptInput := textinput.New()
	promptInput.Placeholder = "describe the vibe (e.g. rainy midnight drive)"
	promptInput.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	genreList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	genreList.Title = "Genres"
	genreList.SetFilteringEnabled(false) // "/" switches to artist search

	resultList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	resultList.Title = "Artists"
	resultList.SetFilteringEnabled(false)
	resultList.SetShowHelp(false)

	return &Model{
		ctx:         ctx,
		view:        GenreBrowserView,
		engine:      engine,
		genreList:   genreList,
		resultList:  resultList,
		searchInput: searchInput,
		promptInput: promptInput,
		spin:        sp,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init kicks off the catalog load and starts draining engine events.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog(), m.waitForEvent(), textinput.Blink)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.genreList.SetSize(msg.Width-4, msg.Height-8)
		m.resultList.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case GenreBrowserView:
			return m.handleGenreKeys(msg)
		case ArtistSearchView:
			return m.handleSearchKeys(msg)
		case ComposeView:
			return m.handleComposeKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case engineEventMsg:
		switch msg.event.Kind {
		case session.CatalogLoaded, session.HeroesLoaded:
			m.refreshGenreItems()
		case session.SearchCompleted, session.SearchCleared:
			m.refreshResultItems()
		}
		return m, m.waitForEvent()

	case previewDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.failCopy = fmt.Sprintf("Preview failed: %v", msg.err)
			m.view = ResultView
			return m, nil
		}
		m.failCopy = ""
		m.preview = msg.text
		m.view = ResultView
		return m, nil

	case createDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.failCopy = fmt.Sprintf("Playlist creation failed: %v", msg.err)
			m.view = ResultView
			return m, nil
		}
		m.failCopy = ""
		m.preview = ""
		m.created = msg.result
		m.view = ResultView
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case GenreBrowserView:
		return m.renderGenreBrowser()
	case ArtistSearchView:
		return m.renderSearch()
	case ComposeView:
		return m.renderCompose()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleGenreKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", " ":
		if item, ok := m.genreList.SelectedItem().(genreItem); ok {
			m.engine.ToggleGenre(item.name)
			m.refreshGenreItems()
		}
		return m, nil
	case "/":
		m.view = ArtistSearchView
		m.searchInput.Focus()
		return m, textinput.Blink
	case "tab":
		m.view = ComposeView
		m.promptInput.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.genreList, cmd = m.genreList.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = GenreBrowserView
		m.searchInput.Blur()
		return m, nil
	case "up", "down":
		var cmd tea.Cmd
		m.resultList, cmd = m.resultList.Update(msg)
		return m, cmd
	case "enter":
		if item, ok := m.resultList.SelectedItem().(artistItem); ok {
			if m.engine.AddArtist(item.artist) {
				m.searchInput.SetValue("")
				m.refreshResultItems()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.engine.ScheduleSearch(m.searchInput.Value())
	return m, cmd
}

func (m *Model) handleComposeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = GenreBrowserView
		m.promptInput.Blur()
		return m, nil
	case "up", "down":
		energy := session.DefaultEnergy
		if e := m.engine.Energy(); e != nil {
			energy = *e
		}
		if msg.String() == "up" {
			energy += 0.05
		} else {
			energy -= 0.05
		}
		m.engine.SetEnergy(energy)
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		if _, err := session.ValidatePrompt(m.promptInput.Value()); err != nil {
			if errors.Is(err, shared.ErrEmptyPrompt) {
				m.inlineErr = "Enter a prompt before previewing"
			}
			return m, nil
		}
		m.inlineErr = ""
		m.busy = true
		return m, tea.Batch(m.doPreview(), m.spin.Tick)
	case "ctrl+g":
		if m.busy {
			return m, nil
		}
		m.inlineErr = ""
		m.busy = true
		return m, tea.Batch(m.doCreate(), m.spin.Tick)
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	m.engine.SetPrompt(m.promptInput.Value())
	return m, cmd
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "o":
		if m.created != nil && m.created.URL != "" {
			url := m.created.URL
			return m, func() tea.Msg {
				_ = shared.OpenBrowser(url)
				return nil
			}
		}
		return m, nil
	case "r", "esc":
		m.view = ComposeView
		m.preview = ""
		m.created = nil
		m.failCopy = ""
		m.promptInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		m.engine.LoadCatalog(m.ctx)
		return nil
	}
}

// waitForEvent blocks on the engine's event channel and re-arms after every
// message, mirroring the channel-draining command pattern bubbletea expects.
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.engine.Events()
		if !ok {
			return nil
		}
		return engineEventMsg{event: event}
	}
}

func (m *Model) doPreview() tea.Cmd {
	return func() tea.Msg {
		text, err := m.engine.Preview(m.ctx)
		return previewDoneMsg{text: text, err: err}
	}
}

func (m *Model) doCreate() tea.Cmd {
	return func() tea.Msg {
		result, err := m.engine.Create(m.ctx)
		return createDoneMsg{result: result, err: err}
	}
}

func (m *Model) refreshGenreItems() {
	catalog := m.engine.Catalog()
	items := make([]list.Item, len(catalog))
	for i, genre := range catalog {
		hero, ok := m.engine.Hero(genre)
		items[i] = genreItem{
			name:     genre,
			hero:     hero,
			hasHero:  ok,
			selected: m.engine.GenreSelected(genre),
		}
	}
	m.genreList.SetItems(items)
}

func (m *Model) refreshResultItems() {
	results := m.engine.SearchResults()
	items := make([]list.Item, len(results))
	for i, artist := range results {
		items[i] = artistItem{artist: artist}
	}
	m.resultList.SetItems(items)
}

func (m *Model) renderGenreBrowser() string {
	helpKeys := []key.Binding{m.keys.toggle, m.keys.search, m.keys.compose, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s\n%s", m.genreList.View(), m.renderSelectionSummary(), helpView)
}

func (m *Model) renderSearch() string {
	addKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add artist"))
	helpKeys := []key.Binding{addKey, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n%s",
		styles.title.Render("Search Artists"),
		m.searchInput.View(),
		m.resultList.View(),
		helpView,
	)
}

func (m *Model) renderCompose() string {
	title := styles.title.Render("Compose Your Vibe")

	energy := session.DefaultEnergy
	if e := m.engine.Energy(); e != nil {
		energy = *e
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(m.promptInput.View())
	b.WriteString(fmt.Sprintf("\n\nEnergy: %s %.2f (↑/↓ to adjust)\n", energyBar(energy), energy))
	b.WriteString("\n")
	b.WriteString(m.renderSelectionSummary())

	if m.inlineErr != "" {
		b.WriteString("\n" + styles.warn.Render(m.inlineErr))
	}
	if m.busy {
		b.WriteString(fmt.Sprintf("\n%s working...", m.spin.View()))
	}

	helpKeys := []key.Binding{m.keys.preview, m.keys.create, m.keys.back, m.keys.quit}
	b.WriteString("\n\n" + m.help.ShortHelpView(helpKeys))

	return b.String()
}

func (m *Model) renderResult() string {
	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}

	if m.failCopy != "" {
		helpView := m.help.ShortHelpView(helpKeys)
		return fmt.Sprintf("%s\n\n%s", styles.err.Render(m.failCopy), helpView)
	}

	if m.preview != "" {
		title := styles.title.Render("Playlist Preview")
		helpView := m.help.ShortHelpView(helpKeys)
		return fmt.Sprintf("%s\n%s\n\n%s", title, m.preview, helpView)
	}

	if m.created != nil {
		title := styles.ok.Render("✓ Playlist Created!")
		var info string
		if m.created.URL != "" {
			info = fmt.Sprintf("\n%d tracks\n%s\n", m.created.Count, m.created.URL)
			helpKeys = []key.Binding{m.keys.open, m.keys.restart, m.keys.quit}
		} else if m.created.Message != "" {
			info = "\n" + m.created.Message + "\n"
		} else {
			info = "\nThe backend returned no playlist link.\n"
		}
		helpView := m.help.ShortHelpView(helpKeys)
		return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
	}

	return m.help.ShortHelpView(helpKeys)
}

func (m *Model) renderSelectionSummary() string {
	genres := m.engine.SelectedGenres()
	artists := m.engine.SelectedArtists()

	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}

	genreLine := "none"
	if len(genres) > 0 {
		genreLine = strings.Join(genres, ", ")
	}
	artistLine := "none"
	if len(names) > 0 {
		artistLine = strings.Join(names, ", ")
	}

	return fmt.Sprintf("Genres: %s\nArtists: %s", genreLine, artistLine)
}

// energyBar renders a ten-segment gauge for the energy target.
func energyBar(energy float64) string {
	filled := int(energy*10 + 0.5)
	if filled > 10 {
		filled = 10
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}
