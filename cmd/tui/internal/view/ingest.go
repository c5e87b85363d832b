package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/ledgerlens/internal/ingest"
)

const ingestTimeout = 2 * time.Minute

type ingestState int

const (
	ingestStateFilePick ingestState = iota
	ingestStateIngesting
	ingestStateResult
)

type IngestModel struct {
	CommonModel
	ingestService *ingest.Service

	state      ingestState
	filePicker filepicker.Model

	status string
	err    error
}

func NewIngestModel(svc *ingest.Service) IngestModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return IngestModel{
		ingestService: svc,
		filePicker:    fp,
	}
}

func (m IngestModel) Title() string { return "Ingest Export" }

func (m IngestModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m IngestModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m IngestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == ingestStateResult {
				m.state = ingestStateFilePick
				m.err = nil
				m.status = ""

				return m, m.filePicker.Init()
			}

			return m, Back
		}

	case ingestResultMsg:
		m.state = ingestStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d facts (%d duplicates skipped).",
			msg.result.Imported, msg.result.Duplicates)

		return m, nil
	}

	if m.state != ingestStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = ingestStateIngesting
		m.status = fmt.Sprintf("Ingesting %s...", path)

		return m, m.ingestCmd(path)
	}

	return m, cmd
}

func (m IngestModel) View() string {
	switch m.state {
	case ingestStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select export file:\n\n%s", m.filePicker.View()),
		)
	case ingestStateIngesting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case ingestStateResult:
		return m.viewResult()
	}

	return ""
}

func (m IngestModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status) +
			"\n\n(Esc to go back)",
	)
}

// Messages

type ingestResultMsg struct {
	result *ingest.Result
	err    error
}

func (m IngestModel) ingestCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return ingestResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
		defer cancel()

		result, err := m.ingestService.Ingest(ctx, ingest.FormatLedgerCSV, f)
		if err != nil {
			return ingestResultMsg{err: err}
		}

		return ingestResultMsg{result: result}
	}
}
