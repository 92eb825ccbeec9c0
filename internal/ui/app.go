package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/five82/academia/internal/catalog"
	"github.com/five82/academia/internal/logging"
	"github.com/five82/academia/internal/openlibrary"
	"github.com/five82/academia/internal/prefs"
	"github.com/five82/academia/internal/state"
)

// Searcher runs a catalog search and returns the relevant books.
type Searcher interface {
	Search(ctx context.Context, query string) ([]catalog.Book, error)
}

// Describer fetches the description of a single book.
type Describer interface {
	Describe(ctx context.Context, book catalog.Book) (string, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Searcher  Searcher
	Describer Describer
	Logger    *log.Logger
	Brand     string
	ThemeName string
	PrefsPath string
	// WorkURL maps a work key to its web page. Optional.
	WorkURL func(key string) string
	// OpenURL opens a link outside the terminal. Defaults to OpenBrowser.
	OpenURL func(url string) error
}

const defaultBrand = "Academia Library"

var errNoSearcher = errors.New("no searcher configured")

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	searcher  Searcher
	describer Describer
	logger    *log.Logger
	workURL   func(string) string
	openURL   func(string) error
	prefsPath string
	brand     string

	// Domain state
	shell *state.Shell

	// Widgets
	theme  Theme
	keys   keyMap
	help   help.Model
	input  textinput.Model
	spin   spinner.Model
	detail viewport.Model

	// UI state
	width        int
	height       int
	ready        bool
	inputFocused bool
	showHelp     bool
	spinning     bool
	cursor       int
	offset       int
	notice       string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.New(nil, false)
	}

	brand := opts.Brand
	if brand == "" {
		brand = defaultBrand
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	openURL := opts.OpenURL
	if openURL == nil {
		openURL = OpenBrowser
	}

	input := textinput.New()
	input.Placeholder = "Search books, authors, subjects..."
	input.Prompt = "> "

	m := Model{
		ctx:       ctx,
		searcher:  opts.Searcher,
		describer: opts.Describer,
		logger:    logger,
		workURL:   opts.WorkURL,
		openURL:   openURL,
		prefsPath: prefsPath,
		brand:     brand,
		shell:     state.NewShell(),
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		spin:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		detail:    viewport.New(0, 0),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case descriptionMsg:
		return m.handleDescription(msg)

	case openURLMsg:
		if msg.err != nil {
			m.logger.Warn("open link failed", "url", msg.url, "error", msg.err)
			m.notice = "Could not open a browser"
		} else {
			m.notice = ""
		}
		return m, nil

	case spinner.TickMsg:
		b := m.shell.Browser()
		if !b.Loading() && !b.DescriptionLoading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.inputFocused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.shell.Browser().ModalOpen() {
		return m.renderModal()
	}
	return m.renderMain()
}

func (m Model) layout() layout {
	return newLayout(m.width, m.height, m.brand)
}

// resize fits widgets to the terminal.
func (m *Model) resize() {
	l := m.layout()
	m.input.Width = maxInt(1, l.searchInput().w-lipgloss.Width(m.input.Prompt)-1)
	m.help.Width = maxInt(0, m.width-footerStatusWidth)
	m.ensureCursorVisible()
	m.refreshDetail()
}

// applyTheme pushes theme colors into the bubbles widgets.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.input.Cursor.Style = styles.AccentText
	m.spin.Style = styles.Heading
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// startSpinner begins spinner ticks unless they are already running.
func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spin.Tick
}

// submit starts a search for the current input text.
func (m Model) submit() (tea.Model, tea.Cmd) {
	b := m.shell.Browser()
	b.SetQuery(m.input.Value())
	req, ok := b.Submit()
	if !ok {
		return m, nil
	}

	id := logging.RequestID()
	logging.With(m.logger, "request", id, "seq", req.Seq, "query", req.Query).Debug("search started")

	m.blurInput()
	m.cursor, m.offset = 0, 0
	return m, tea.Batch(searchCmd(m.ctx, m.searcher, req, id), m.startSpinner())
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	b := m.shell.Browser()
	b.Resolve(msg.result)

	r := msg.result
	reqLog := logging.With(m.logger, "request", msg.request, "seq", r.Seq, "query", r.Query)
	if r.Err != nil {
		reqLog.Warn("search failed", "error", r.Err)
	} else {
		reqLog.Info("search finished", "results", len(r.Books), "elapsed", msg.elapsed)
	}

	m.cursor, m.offset = 0, 0
	return m, nil
}

// openBook shows the detail modal for the book at index and starts the
// description fetch when the book needs one.
func (m Model) openBook(index int) (tea.Model, tea.Cmd) {
	b := m.shell.Browser()
	books := b.Books()
	if index < 0 || index >= len(books) {
		return m, nil
	}
	book := books[index]
	m.cursor = index
	needsFetch := b.Open(book)
	m.refreshDetail()
	if !needsFetch {
		return m, nil
	}

	id := logging.RequestID()
	logging.With(m.logger, "request", id, "id", book.ID).Debug("description fetch started")
	return m, tea.Batch(describeCmd(m.ctx, m.describer, book, id), m.startSpinner())
}

func (m Model) handleDescription(msg descriptionMsg) (tea.Model, tea.Cmd) {
	reqLog := logging.With(m.logger, "request", msg.request, "id", msg.id)
	if msg.err != nil {
		reqLog.Warn("description fetch failed", "error", msg.err)
	}
	if !m.shell.Browser().ApplyDescription(msg.id, msg.text) {
		reqLog.Debug("description dropped")
		return m, nil
	}
	m.refreshDetail()
	return m, nil
}

func (m *Model) closeModal() {
	m.shell.Browser().Close()
	m.detail.SetContent("")
}

// openSelected opens the selected book's cover, or its work page when it
// has no cover, in the system browser.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	book, ok := m.shell.Browser().Selected()
	if !ok {
		return m, nil
	}
	target := book.ImageURL(openlibrary.CoverLarge)
	if target == "" && !book.Synthesized() && m.workURL != nil {
		target = m.workURL(book.ID)
	}
	if target == "" {
		m.notice = "Nothing to open for this book"
		return m, nil
	}
	return m, openURLCmd(m.openURL, target)
}

// goHome is the navbar action.
func (m *Model) goHome() {
	m.shell.Home()
	m.afterReset()
}

func (m *Model) backToFeatured() {
	if m.shell.Browser().BackToFeatured() {
		m.afterReset()
	}
}

// afterReset mirrors a browser reset into the widgets.
func (m *Model) afterReset() {
	m.cursor, m.offset = 0, 0
	m.input.SetValue(m.shell.Browser().Query())
}

func (m *Model) focusInput() tea.Cmd {
	m.inputFocused = true
	return m.input.Focus()
}

func (m *Model) blurInput() {
	m.inputFocused = false
	m.input.Blur()
}

// gridVisible reports whether book cards are on screen.
func (m Model) gridVisible() bool {
	b := m.shell.Browser()
	switch b.View() {
	case state.ViewFeatured:
		return m.shell.ShowFeatured()
	case state.ViewResults:
		return len(b.Books()) > 0
	default:
		return false
	}
}

func (m Model) emptyResults() bool {
	b := m.shell.Browser()
	return b.View() == state.ViewResults && len(b.Books()) == 0
}

func (m Model) backLinkVisible() bool {
	b := m.shell.Browser()
	return b.CanGoBack() && len(b.Books()) > 0
}

// Messages

type searchResultMsg struct {
	result  state.Result
	request string
	elapsed time.Duration
}

type descriptionMsg struct {
	id      string
	text    string
	err     error
	request string
}

type openURLMsg struct {
	url string
	err error
}

// Commands

func searchCmd(ctx context.Context, searcher Searcher, req state.Request, requestID string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		var books []catalog.Book
		err := errNoSearcher
		if searcher != nil {
			books, err = searcher.Search(ctx, req.Query)
		}
		return searchResultMsg{
			result:  state.Result{Seq: req.Seq, Query: req.Query, Books: books, Err: err},
			request: requestID,
			elapsed: time.Since(start),
		}
	}
}

func describeCmd(ctx context.Context, describer Describer, book catalog.Book, requestID string) tea.Cmd {
	return func() tea.Msg {
		if describer == nil {
			return descriptionMsg{id: book.ID, text: catalog.DescriptionUnavailable, request: requestID}
		}
		text, err := describer.Describe(ctx, book)
		return descriptionMsg{id: book.ID, text: text, err: err, request: requestID}
	}
}

func openURLCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return openURLMsg{url: url, err: open(url)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
