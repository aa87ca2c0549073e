package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/agent-gallery/internal/core"
	"github.com/valter-silva-au/agent-gallery/internal/observability"
	"github.com/valter-silva-au/agent-gallery/pkg/models"
)

// Browse modes.
const (
	modeList = iota
	modeTags
	modeDetail
)

type browseModel struct {
	mode   int
	width  int
	height int

	// Catalog data.
	tagUniverse []string
	domains     []string // with the "all" sentinel prepended

	// Session-local filter state, reset to defaults by "c".
	state     models.FilterState
	domainIdx int
	visible   []models.Agent

	// List view.
	cursor int
	search textinput.Model

	// Tag picker overlay.
	tagCursor int
	selected  map[string]bool

	// Detail view.
	detail  viewport.Model
	current *models.Agent

	status string
}

// Style definitions.
var (
	browseTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	cursorLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	tagOnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

func newBrowseModel() browseModel {
	search := textinput.New()
	search.Placeholder = "search title, summary, tags..."
	search.Prompt = "/ "
	search.CharLimit = 120

	m := browseModel{
		mode:     modeList,
		state:    models.DefaultFilterState(),
		search:   search,
		selected: make(map[string]bool),
		detail:   viewport.New(80, 20),
	}

	if Catalog != nil {
		m.tagUniverse = Selector.Tags(Catalog)
		m.domains = append([]string{models.DomainAll}, Selector.Domains(Catalog)...)
		m.visible = Selector.Visible(Catalog, m.state)
	}
	return m
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

// refilter recomputes the visible list from the current state and clamps
// the cursor.
func (m *browseModel) refilter() {
	m.state.RequiredTags = m.requiredTags()
	m.visible = Selector.Visible(Catalog, m.state)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// requiredTags flattens the toggle map in tag-universe order so the state
// is deterministic regardless of toggle order.
func (m *browseModel) requiredTags() []string {
	var tags []string
	for _, t := range m.tagUniverse {
		if m.selected[t] {
			tags = append(tags, t)
		}
	}
	return tags
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = msg.Width - 4
		m.detail.Height = msg.Height - 8
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeDetail:
			return m.updateDetail(msg)
		case modeTags:
			return m.updateTags(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			m.search.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.state.Query = m.search.Value()
			m.refilter()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "d":
		m.domainIdx = (m.domainIdx + 1) % len(m.domains)
		m.state.Domain = m.domains[m.domainIdx]
		m.refilter()
	case "t":
		m.mode = modeTags
		m.tagCursor = 0
	case "c":
		m.state = models.DefaultFilterState()
		m.domainIdx = 0
		m.selected = make(map[string]bool)
		m.search.SetValue("")
		m.refilter()
		m.status = "filters cleared"
	case "enter":
		if m.cursor < len(m.visible) {
			agent := m.visible[m.cursor]
			m.current = &agent
			m.mode = modeDetail
			// Render once on entry. View must leave the viewport
			// content alone so the scroll offset persists.
			body, err := glamour.Render(agent.Body, theme())
			if err != nil {
				body = agent.Body
			}
			m.detail.SetContent(body)
			m.detail.GotoTop()
			observability.Record(EventLog, observability.EventAgentViewed, map[string]any{"agent": agent.ID})
		}
	}
	return m, nil
}

func (m browseModel) updateTags(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "t":
		m.mode = modeList
		m.refilter()
	case "up", "k":
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case "down", "j":
		if m.tagCursor < len(m.tagUniverse)-1 {
			m.tagCursor++
		}
	case " ":
		if m.tagCursor < len(m.tagUniverse) {
			tag := m.tagUniverse[m.tagCursor]
			m.selected[tag] = !m.selected[tag]
			m.refilter()
		}
	}
	return m, nil
}

func (m browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.mode = modeList
		m.status = ""
	case "y":
		if m.current != nil {
			m.status = copyAgent(*m.current)
		}
	case "e":
		if m.current != nil {
			m.status = exportAgent(*m.current)
		}
	default:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

// copyAgent places the textual export form on the clipboard and returns a
// status line for the footer.
func copyAgent(agent models.Agent) string {
	content, err := core.ExportText(agent)
	if err != nil {
		return fmt.Sprintf("copy failed: %v", err)
	}
	if err := writeClipboard(content); err != nil {
		return fmt.Sprintf("clipboard unavailable: %v", err)
	}
	observability.Record(EventLog, observability.EventAgentCopied, map[string]any{"agent": agent.ID})
	return fmt.Sprintf("copied %s", agent.ID)
}

// exportAgent writes the markdown export next to the current directory and
// returns a status line for the footer.
func exportAgent(agent models.Agent) string {
	content, err := core.ExportText(agent)
	if err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	path := filepath.Join(".", core.ExportFileName(agent, core.FormatMarkdown))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	observability.Record(EventLog, observability.EventAgentExported, map[string]any{
		"agent":  agent.ID,
		"format": string(core.FormatMarkdown),
	})
	return fmt.Sprintf("exported %s", path)
}

func (m browseModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeTags:
		return m.viewTags()
	default:
		return m.viewList()
	}
}

func (m browseModel) viewList() string {
	var b strings.Builder
	b.WriteString(browseTitleStyle.Render(" Agent Gallery "))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.filterSummary()))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString("  No agents match the current filters.\n")
	}

	for i, a := range m.visible {
		line := fmt.Sprintf("  %-22s %-26s %s", a.ID, truncate(a.Title, 26), strings.Join(a.Tags, ", "))
		if i == m.cursor {
			line = cursorLineStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render("  " + m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("  /: search | t: tags | d: domain | c: clear | enter: detail | q: quit"))
	return b.String()
}

// filterSummary describes the active filter state in one line.
func (m browseModel) filterSummary() string {
	parts := []string{fmt.Sprintf("domain: %s", m.domains[safeIdx(m.domainIdx, len(m.domains))])}
	if tags := m.requiredTags(); len(tags) > 0 {
		parts = append(parts, "tags: "+strings.Join(tags, "+"))
	}
	parts = append(parts, fmt.Sprintf("%d/%d shown", len(m.visible), len(Catalog.Agents())))
	return "  " + strings.Join(parts, "  |  ")
}

func safeIdx(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 || i >= n {
		return 0
	}
	return i
}

func (m browseModel) viewTags() string {
	var b strings.Builder
	b.WriteString(browseTitleStyle.Render(" Filter by tags "))
	b.WriteString("\n\n")

	if len(m.tagUniverse) == 0 {
		b.WriteString("  No tags in the catalog.\n")
	}

	for i, t := range m.tagUniverse {
		mark := "[ ]"
		label := t
		if m.selected[t] {
			mark = "[x]"
			label = tagOnStyle.Render(t)
		}
		line := fmt.Sprintf("  %s %s", mark, label)
		if i == m.tagCursor {
			line = "> " + line[2:]
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  space: toggle | enter: apply | esc: back"))
	return b.String()
}

func (m browseModel) viewDetail() string {
	if m.current == nil {
		return "No agent selected."
	}

	var b strings.Builder
	b.WriteString(browseTitleStyle.Render(fmt.Sprintf(" %s ", m.current.Title)))
	b.WriteString("\n\n")

	domains := make([]string, len(m.current.Domains))
	for i, d := range m.current.Domains {
		domains[i] = lipgloss.NewStyle().Foreground(core.StyleForDomain(d).Color).Render(d)
	}
	tools := make([]string, len(m.current.Tools))
	for i, t := range m.current.Tools {
		tools[i] = core.IconForTool(t) + " " + t
	}
	b.WriteString(fmt.Sprintf("  %s\n", m.current.Summary))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s  |  %s\n", strings.Join(domains, ", "), strings.Join(tools, "  "))))
	b.WriteString("\n")
	b.WriteString(m.detail.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render("  " + m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("  y: copy | e: export | esc: back"))
	return b.String()
}

// writeClipboard is swapped out in tests.
var writeClipboard = defaultWriteClipboard

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive terminal gallery",
	Long: `Launch the interactive terminal gallery: live search, tag and domain
filters, a detail view with rendered markdown, and copy/export keybindings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Catalog == nil {
			return fmt.Errorf("catalog not initialized")
		}
		p := tea.NewProgram(newBrowseModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
