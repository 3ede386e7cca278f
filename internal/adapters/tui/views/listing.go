package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"drafts/internal/adapters/tui/styles"
	"drafts/internal/domain"
)

// Lister produces a fresh listing on every call
type Lister interface {
	Execute(ctx context.Context) (domain.Listing, error)
}

// ListingKeyMap defines key bindings for the listing view
type ListingKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Copy     key.Binding
	Open     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var ListingKeys = ListingKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "pgdown"),
		key.WithHelp("n", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "pgup"),
		key.WithHelp("p", "prev page"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Open: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// reserved rows for title, header, status and help lines
const chromeHeight = 9

// TickMsg fires once per refresh interval
type TickMsg time.Time

// ScannedMsg carries the result of a scan
type ScannedMsg struct {
	Listing domain.Listing
	Err     error
	// Scheduled is set for interval scans, which re-arm the tick
	Scheduled bool
}

// ListingModel shows the drafts listing and rescans it on every tick
type ListingModel struct {
	ViewState

	lister    Lister
	interval  time.Duration
	canEdit   bool
	listing   domain.Listing
	paginator *Paginator
	refreshed time.Time
	refreshes int
	err       error
	now       func() time.Time
	copy      func(string) error
}

// NewListingModel creates a new listing view model
func NewListingModel(lister Lister, interval time.Duration, canEdit bool) *ListingModel {
	return &ListingModel{
		lister:    lister,
		interval:  interval,
		canEdit:   canEdit,
		paginator: NewPaginator(20),
		now:       time.Now,
		copy:      clipboard.WriteAll,
	}
}

// Init runs the first scan
func (m *ListingModel) Init() tea.Cmd {
	return m.scan(true)
}

// Err returns the scan error that stopped the view, if any
func (m *ListingModel) Err() error {
	return m.err
}

func (m *ListingModel) scan(scheduled bool) tea.Cmd {
	return func() tea.Msg {
		listing, err := m.lister.Execute(context.Background())
		return ScannedMsg{Listing: listing, Err: err, Scheduled: scheduled}
	}
}

func (m *ListingModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles messages for the listing view
func (m *ListingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m, m.scan(true)

	case ScannedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, tea.Quit
		}
		m.listing = msg.Listing
		m.refreshes++
		m.refreshed = m.now()
		m.paginator.SetTotal(len(m.listing))
		if msg.Scheduled {
			return m, m.tick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ListingModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ListingKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, ListingKeys.Up):
		m.paginator.CursorUp()

	case key.Matches(msg, ListingKeys.Down):
		m.paginator.CursorDown()

	case key.Matches(msg, ListingKeys.NextPage):
		m.paginator.NextPage()

	case key.Matches(msg, ListingKeys.PrevPage):
		m.paginator.PrevPage()

	case key.Matches(msg, ListingKeys.Refresh):
		m.ClearMessage()
		return m, m.scan(false)

	case key.Matches(msg, ListingKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, ListingKeys.Copy):
		draft, ok := m.Selected()
		if !ok {
			return m, nil
		}
		if err := m.copy(draft.Path); err != nil {
			m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
		} else {
			m.SetMessage("Copied "+draft.Path, false)
		}

	case key.Matches(msg, ListingKeys.Open):
		draft, ok := m.Selected()
		if !ok || !m.canEdit {
			return m, nil
		}
		return m, func() tea.Msg { return OpenEditorMsg{Path: draft.Path} }
	}

	return m, nil
}

// Selected returns the draft under the cursor
func (m *ListingModel) Selected() (domain.Draft, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.listing) {
		return domain.Draft{}, false
	}
	return m.listing[i], true
}

// SetSize updates the dimensions and the page size
func (m *ListingModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(height - chromeHeight)
}

// View renders the listing view
func (m *ListingModel) View() string {
	if m.refreshes == 0 {
		return styles.App.Render("Scanning...")
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Drafts"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("refreshed %s • every %s",
		m.refreshed.Format("15:04:05"), m.interval)))
	b.WriteString("\n\n")

	b.WriteString(m.listing.Header())
	b.WriteString("\n")

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderLine(i, i == m.paginator.Cursor()))
		b.WriteString("\n")
	}

	if m.paginator.TotalPages() > 1 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("page %d/%d",
			m.paginator.CurrentPage(), m.paginator.TotalPages())))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *ListingModel) renderLine(i int, selected bool) string {
	if selected {
		return styles.EntrySelected.Render(m.listing.Line(i))
	}
	return styles.Index.Render(fmt.Sprintf("%d:", i)) + " " + styles.Entry.Render(m.listing[i].Path)
}

func (m *ListingModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"y", "copy"},
		{"e", "edit"},
		{"r", "refresh"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}
