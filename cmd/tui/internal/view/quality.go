package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ledgerlens/internal/ledger"
)

// QualityModel lists facts whose references are dangling so they can be
// fixed from the database side.
type QualityModel struct {
	CommonModel
	ledgerService *ledger.Service

	table   table.Model
	gaps    []ledger.ReferenceGap
	loading bool
	err     error
}

func NewQualityModel(svc *ledger.Service) QualityModel {
	columns := []table.Column{
		{Title: "Transaction", Width: 36},
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 12},
		{Title: "Missing", Width: 28},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return QualityModel{
		ledgerService: svc,
		table:         t,
		loading:       true,
	}
}

func (m QualityModel) Title() string { return "Ledger Quality" }

func (m QualityModel) ShortHelp() string {
	return "Esc: back | r: refresh"
}

func (m QualityModel) Init() tea.Cmd {
	return m.loadGapsCmd()
}

func (m QualityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadGapsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.gaps = msg.gaps
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadGapsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m QualityModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Checking ledger references...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.gaps) == 0 {
		return lipgloss.NewStyle().Padding(2).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render("All fact references resolve."),
		)
	}

	header := fmt.Sprintf("%s facts with dangling references",
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(strconv.Itoa(len(m.gaps))))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
		),
	)
}

func (m *QualityModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.gaps))
	for _, g := range m.gaps {
		var missing []string
		if g.MissingCategory {
			missing = append(missing, "category")
		}

		if g.MissingAccount {
			missing = append(missing, "account")
		}

		if g.MissingType {
			missing = append(missing, "type")
		}

		rows = append(rows, table.Row{
			g.Fact.TransactionID.String(),
			FormatDate(g.Fact.Date),
			FormatAmount(g.Fact.AmountCents),
			strings.Join(missing, ", "),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadGapsMsg struct {
	gaps []ledger.ReferenceGap
	err  error
}

func (m QualityModel) loadGapsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		gaps, err := m.ledgerService.ReferenceGaps(ctx)

		return loadGapsMsg{gaps: gaps, err: err}
	}
}
