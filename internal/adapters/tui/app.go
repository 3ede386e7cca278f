package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"drafts/internal/adapters/tui/views"
	"drafts/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewListing ViewState = iota
	ViewHelp
)

// forceQuit works from every view; raw mode swallows SIGINT
var forceQuit = key.NewBinding(key.WithKeys("ctrl+c"))

// App is the watch-mode TUI application model
type App struct {
	editor ports.EditorOpener

	state   ViewState
	listing *views.ListingModel
	help    *views.HelpModel
}

// NewApp creates a new TUI application. editor may be nil.
func NewApp(lister views.Lister, interval time.Duration, editor ports.EditorOpener) *App {
	return &App{
		editor:  editor,
		state:   ViewListing,
		listing: views.NewListingModel(lister, interval, editor != nil),
		help:    views.NewHelpModel(),
	}
}

// Err returns the scan error that ended the program, if any
func (a *App) Err() error {
	return a.listing.Err()
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.listing.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.listing.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, forceQuit) {
			return a, tea.Quit
		}

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToListingMsg:
		a.state = ViewListing
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.listing.SetMessage(fmt.Sprintf("Editor failed: %v", msg.err), true)
		}
		return a, nil

	// Refresh keeps running behind the help view
	case views.TickMsg, views.ScannedMsg:
		_, cmd := a.listing.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.listing.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}
	return a.listing.View()
}
