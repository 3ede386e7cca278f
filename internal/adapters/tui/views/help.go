package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"drafts/internal/adapters/tui/styles"
)

var helpClose = key.NewBinding(
	key.WithKeys("esc", "q", "?"),
	key.WithHelp("esc/q/?", "close"),
)

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, helpClose) {
		return m, func() tea.Msg { return SwitchToListingMsg{} }
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Drafts Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Section.Render("Navigation"))
	b.WriteString("\n")
	for _, binding := range []key.Binding{ListingKeys.Up, ListingKeys.Down, ListingKeys.NextPage, ListingKeys.PrevPage} {
		b.WriteString(helpLine(binding))
	}
	b.WriteString("\n")

	b.WriteString(styles.Section.Render("Actions"))
	b.WriteString("\n")
	for _, binding := range []key.Binding{ListingKeys.Copy, ListingKeys.Open, ListingKeys.Refresh} {
		b.WriteString(helpLine(binding))
	}
	b.WriteString("\n")

	b.WriteString(styles.Section.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine(ListingKeys.Help))
	b.WriteString(helpLine(ListingKeys.Quit))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("The listing is rescanned on every refresh interval."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(binding key.Binding) string {
	h := binding.Help()
	return "  " + styles.HelpKey.Render(padRight(h.Key, 12)) + styles.HelpDesc.Render(h.Desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
