package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cardscan/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cardscan/internal/core/domain"
)

type mockScanService struct {
	mu     sync.Mutex
	calls  int
	result *domain.ScanResult
	err    error
}

func (m *mockScanService) Scan(_ context.Context, _ domain.ScanConfig) (*domain.ScanResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.result, m.err
}

func (m *mockScanService) ScanDocument(
	_ context.Context, ref domain.DocumentRef, _ domain.TagMapping,
) (domain.DocumentResult, error) {
	return domain.DocumentResult{Ref: ref}, m.err
}

func testResult() *domain.ScanResult {
	r := domain.NewScanResult("run-1", domain.ScanModeFolder, "f1", []string{"alice", "bob"})
	r.Add(domain.DocumentResult{
		Ref:    domain.DocumentRef{ID: "d1", Name: "Round 1"},
		Counts: map[string]int{"alice": 1, "bob": 3},
	})
	return r
}

func newTestApp(t *testing.T, svc *mockScanService) *App {
	t.Helper()
	mapping, err := domain.ParseTagMapping("alice:al|bob:bob")
	require.NoError(t, err)
	app, err := NewApp(NewPorts(svc, domain.ScanConfig{FolderID: "f1", Mapping: mapping}))
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app
}

// runScan executes the batch returned by a scan start and feeds the
// completion message back into the app.
func runScan(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		if done, ok := c().(messages.ScanCompleted); ok {
			app.Update(done)
			return
		}
	}
	t.Fatal("no scan completion in batch")
}

func press(app *App, s string) tea.Cmd {
	var msg tea.KeyMsg
	switch s {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	_, cmd := app.Update(msg)
	return cmd
}

func TestNewApp(t *testing.T) {
	_, err := NewApp(nil)
	assert.ErrorIs(t, err, ErrMissingScanService)

	_, err = NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingScanService)

	app, err := NewApp(NewPorts(&mockScanService{}, domain.ScanConfig{DocumentID: "d1"}))
	require.NoError(t, err)
	assert.Equal(t, messages.ViewScanning, app.CurrentView())
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_InitStartsScan(t *testing.T) {
	svc := &mockScanService{result: testResult()}
	app := newTestApp(t, svc)

	assert.NotNil(t, app.Init())

	_, cmd := app.Update(messages.ScanStarted{})
	assert.True(t, app.Scanning())
	assert.Contains(t, app.View(), "Scanning folder f1")

	runScan(t, app, cmd)

	assert.Equal(t, 1, svc.calls)
	assert.False(t, app.Scanning())
	assert.Equal(t, messages.ViewLeaderboard, app.CurrentView())
	require.NotNil(t, app.Result())
	assert.NoError(t, app.Err())

	view := app.View()
	assert.Contains(t, view, "Leaderboard")
	assert.Contains(t, view, "Top: bob with 3 cards")
	assert.Contains(t, view, "1 document, 4 cards")
}

func TestApp_DuplicateScanStartedIgnored(t *testing.T) {
	app := newTestApp(t, &mockScanService{result: testResult()})
	app.Update(messages.ScanStarted{})

	_, cmd := app.Update(messages.ScanStarted{})

	assert.Nil(t, cmd)
}

func TestApp_ScanError(t *testing.T) {
	svc := &mockScanService{err: errors.New("permission denied")}
	app := newTestApp(t, svc)

	_, cmd := app.Update(messages.ScanStarted{})
	runScan(t, app, cmd)

	assert.EqualError(t, app.Err(), "permission denied")
	assert.Nil(t, app.Result())
	assert.Contains(t, app.View(), "Scan failed: permission denied")
}

func TestApp_PartialResultKeptOnError(t *testing.T) {
	svc := &mockScanService{result: testResult(), err: errors.New("folder listing failed")}
	app := newTestApp(t, svc)

	_, cmd := app.Update(messages.ScanStarted{})
	runScan(t, app, cmd)

	require.NotNil(t, app.Result())
	assert.Error(t, app.Err())
	assert.Contains(t, app.View(), "bob")
}

func TestApp_Navigation(t *testing.T) {
	app := newTestApp(t, &mockScanService{result: testResult()})
	_, cmd := app.Update(messages.ScanStarted{})
	runScan(t, app, cmd)

	press(app, "tab")
	assert.Equal(t, messages.ViewDocuments, app.CurrentView())
	assert.Contains(t, app.View(), "Documents (1)")

	press(app, "tab")
	assert.Equal(t, messages.ViewLeaderboard, app.CurrentView())

	press(app, "?")
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "rescan")

	press(app, "esc")
	assert.Equal(t, messages.ViewLeaderboard, app.CurrentView())

	press(app, "down")
	assert.Equal(t, messages.ViewLeaderboard, app.CurrentView())
}

func TestApp_Rescan(t *testing.T) {
	svc := &mockScanService{result: testResult()}
	app := newTestApp(t, svc)
	_, cmd := app.Update(messages.ScanStarted{})
	runScan(t, app, cmd)

	cmd = press(app, "r")
	assert.True(t, app.Scanning())
	assert.Equal(t, messages.ViewScanning, app.CurrentView())

	// Results keys are ignored mid-scan.
	assert.Nil(t, press(app, "tab"))
	assert.Equal(t, messages.ViewScanning, app.CurrentView())

	runScan(t, app, cmd)
	assert.Equal(t, 2, svc.calls)
	assert.Equal(t, messages.ViewLeaderboard, app.CurrentView())
}

func TestApp_Quit(t *testing.T) {
	tests := []string{"q", "ctrl+c"}

	for _, k := range tests {
		t.Run(k, func(t *testing.T) {
			app := newTestApp(t, &mockScanService{})

			cmd := press(app, k)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(NewPorts(&mockScanService{}, domain.ScanConfig{DocumentID: "d1"}))
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, &mockScanService{})

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
}

func TestApp_ViewChanged(t *testing.T) {
	app := newTestApp(t, &mockScanService{})

	app.Update(messages.ViewChanged{View: messages.ViewDocuments})

	assert.Equal(t, messages.ViewDocuments, app.CurrentView())
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t, &mockScanService{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Same(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}
