package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui/views/documents"
	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui/views/leaderboard"
	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context passed to every scan.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	spinner   spinner.Model
	help      help.Model
	statusBar *status.Bar

	leaderboardView *leaderboard.View
	documentsView   *documents.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is restored when leaving the help view.
	previousView messages.ViewType

	// result holds the last scan result, possibly partial when err is set.
	result *domain.ScanResult

	// err holds the last scan error.
	err error

	scanning bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingScanService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = s.Subtitle

	h := help.New()
	h.ShowAll = true

	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		keymap:          km,
		spinner:         sp,
		help:            h,
		statusBar:       status.NewBar(s, km),
		leaderboardView: leaderboard.NewView(s),
		documentsView:   documents.NewView(s),
		currentView:     messages.ViewScanning,
		previousView:    messages.ViewLeaderboard,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It starts the first scan.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("cardscan"),
		func() tea.Msg { return messages.ScanStarted{} },
	)
}

// startScan marks the app as scanning and returns the commands that
// animate the spinner and run the scan.
func (a *App) startScan() tea.Cmd {
	a.scanning = true
	a.err = nil
	a.currentView = messages.ViewScanning
	a.statusBar.SetState(status.StateScanning)
	a.statusBar.SetMessage(fmt.Sprintf("%s %s", a.ports.Config.Mode(), a.ports.Config.Target()))

	ctx := a.ctx
	scan := a.ports.Scan
	cfg := a.ports.Config
	run := func() tea.Msg {
		result, err := scan.Scan(ctx, cfg)
		return messages.ScanCompleted{Result: result, Err: err}
	}
	return tea.Batch(a.spinner.Tick, run)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ScanStarted:
		if a.scanning {
			return a, nil
		}
		return a, a.startScan()

	case messages.ScanCompleted:
		a.finishScan(msg)
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case spinner.TickMsg:
		if !a.scanning {
			return a, nil
		}
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if key.Matches(msg, a.keymap.Quit) {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		if key.Matches(msg, a.keymap.Back) || key.Matches(msg, a.keymap.Help) {
			a.currentView = a.previousView
			a.restoreStatus()
		}
		return a, nil
	}

	if key.Matches(msg, a.keymap.Help) {
		a.previousView = a.currentView
		a.currentView = messages.ViewHelp
		a.statusBar.SetState(status.StateHelp)
		return a, nil
	}

	// Results keys are ignored while a scan is running.
	if a.scanning {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keymap.Rescan):
		return a, a.startScan()
	case key.Matches(msg, a.keymap.Switch):
		if a.currentView == messages.ViewDocuments {
			a.currentView = messages.ViewLeaderboard
		} else {
			a.currentView = messages.ViewDocuments
		}
		return a, nil
	}

	switch a.currentView {
	case messages.ViewLeaderboard:
		a.leaderboardView, cmd = a.leaderboardView.Update(msg)
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewScanning, messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) finishScan(msg messages.ScanCompleted) {
	a.scanning = false
	a.err = msg.Err
	if msg.Result != nil {
		a.result = msg.Result
	}

	a.leaderboardView.SetResult(a.result)
	a.documentsView.SetResult(a.result)
	if a.currentView == messages.ViewScanning {
		a.currentView = messages.ViewLeaderboard
	}
	a.restoreStatus()
}

func (a *App) restoreStatus() {
	switch {
	case a.scanning:
		a.statusBar.SetState(status.StateScanning)
	case a.err != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(a.err.Error())
	case a.result != nil:
		a.statusBar.SetState(status.StateResults)
		a.statusBar.SetMessage("")
		a.statusBar.SetCounts(len(a.result.Documents), a.result.Total())
	default:
		a.statusBar.Clear()
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewScanning:
		body = a.viewScanning()
	case messages.ViewLeaderboard:
		body = a.leaderboardView.View()
	case messages.ViewDocuments:
		body = a.documentsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.leaderboardView.View()
	}

	if a.err != nil && a.currentView != messages.ViewHelp {
		body = a.styles.Error.Render("Scan failed: "+a.err.Error()) + "\n\n" + body
	}

	return body + "\n\n" + a.statusBar.View()
}

func (a *App) viewScanning() string {
	return fmt.Sprintf("%s Scanning %s %s...",
		a.spinner.View(), a.ports.Config.Mode(), a.ports.Config.Target())
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Result returns the last scan result.
func (a *App) Result() *domain.ScanResult {
	return a.result
}

// Err returns the last scan error.
func (a *App) Err() error {
	return a.err
}

// Scanning reports whether a scan is in flight.
func (a *App) Scanning() bool {
	return a.scanning
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and resizes every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// Title, status bar and spacing.
	bodyHeight := height - 4
	a.leaderboardView.SetDimensions(width, bodyHeight)
	a.documentsView.SetDimensions(width, bodyHeight)
	a.statusBar.SetWidth(width)
	a.help.Width = width
}
