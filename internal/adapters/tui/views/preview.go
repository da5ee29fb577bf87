package views

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"autogensummary/internal/adapters/tui/styles"
	"autogensummary/internal/application/commands"
	"autogensummary/internal/domain"
	"autogensummary/internal/ports"
)

// PreviewKeyMap defines key bindings for the preview view
type PreviewKeyMap struct {
	Toggle key.Binding
	Reload key.Binding
	Write  key.Binding
	Copy   key.Binding
	Edit   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var PreviewKeys = PreviewKeyMap{
	Toggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle titles"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rescan"),
	),
	Write: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "write"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
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

// Messages
type (
	renderedMsg struct{ result *commands.GenerateResult }
	writtenMsg  struct{ result *commands.GenerateResult }
	previewErr  struct{ err error }
)

// chromeHeight is the number of lines taken by the header and status bar
const chromeHeight = 6

// PreviewModel shows the summary a source directory would get
type PreviewModel struct {
	ViewState
	scanner   ports.TreeScanner
	store     ports.SummaryStore
	sourceDir string
	opts      domain.RenderOptions
	viewport  viewport.Model
	result    *commands.GenerateResult
	ready     bool
}

// NewPreviewModel creates a new preview view model
func NewPreviewModel(scanner ports.TreeScanner, store ports.SummaryStore, sourceDir string, opts domain.RenderOptions) *PreviewModel {
	return &PreviewModel{
		scanner:   scanner,
		store:     store,
		sourceDir: sourceDir,
		opts:      opts,
		viewport:  viewport.New(80, 20),
	}
}

// Init initializes the preview view
func (m *PreviewModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload rescans the source directory and renders it again
func (m *PreviewModel) Reload() tea.Cmd {
	return m.run(true)
}

// Options returns the current render options
func (m *PreviewModel) Options() domain.RenderOptions {
	return m.opts
}

// Text returns the last rendered summary
func (m *PreviewModel) Text() string {
	if m.result == nil {
		return ""
	}
	return m.result.Text
}

func (m *PreviewModel) run(dryRun bool) tea.Cmd {
	scanner, store, dir, opts := m.scanner, m.store, m.sourceDir, m.opts
	return func() tea.Msg {
		cmd := commands.NewGenerateCommand(scanner, store, dir, opts)
		cmd.DryRun = dryRun
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return previewErr{err: err}
		}
		if dryRun {
			return renderedMsg{result: result}
		}
		return writtenMsg{result: result}
	}
}

// Update handles messages for the preview view
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case renderedMsg:
		m.setResult(msg.result)
		return m, nil

	case writtenMsg:
		m.setResult(msg.result)
		if msg.result.Changed {
			m.SetMessage("Wrote "+msg.result.SummaryPath, false)
		} else {
			m.SetMessage(msg.result.SummaryPath+" is up to date", false)
		}
		return m, nil

	case previewErr:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PreviewKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PreviewKeys.Toggle):
			m.opts.UseTitleAsLinkText = !m.opts.UseTitleAsLinkText
			m.ClearMessage()
			return m, m.Reload()

		case key.Matches(msg, PreviewKeys.Reload):
			m.ClearMessage()
			return m, m.Reload()

		case key.Matches(msg, PreviewKeys.Write):
			return m, m.run(false)

		case key.Matches(msg, PreviewKeys.Copy):
			if err := clipboard.WriteAll(m.Text()); err != nil {
				m.SetMessage("Copy failed: "+err.Error(), true)
			} else {
				m.SetMessage("Copied summary to clipboard", false)
			}
			return m, nil

		case key.Matches(msg, PreviewKeys.Edit):
			path := m.summaryPath()
			return m, func() tea.Msg {
				return OpenEditorMsg{Path: path}
			}

		case key.Matches(msg, PreviewKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *PreviewModel) setResult(result *commands.GenerateResult) {
	m.result = result
	m.ready = true
	m.viewport.SetContent(HighlightSummary(result.Text))
}

func (m *PreviewModel) summaryPath() string {
	if m.result != nil {
		return m.result.SummaryPath
	}
	return filepath.Join(m.sourceDir, domain.SummaryFile)
}

// SetSize updates the view and viewport dimensions
func (m *PreviewModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-4, 10)
	m.viewport.Height = max(height-chromeHeight, 3)
}

// View renders the preview view
func (m *PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Summary preview"))
	b.WriteString("\n")

	mode := "file names"
	if m.opts.UseTitleAsLinkText {
		mode = "first headings"
	}
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s • link text from %s", m.sourceDir, mode)))
	b.WriteString("\n\n")

	if !m.ready {
		b.WriteString(styles.MutedText.Render("Scanning..."))
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	b.WriteString(m.statusBar())
	return styles.App.Render(b.String())
}

func (m *PreviewModel) statusBar() string {
	if m.Message != "" {
		if m.MessageErr {
			return styles.ErrorMsg.Render(m.Message)
		}
		return styles.Success.Render(m.Message)
	}

	var parts []string
	for _, binding := range []key.Binding{PreviewKeys.Toggle, PreviewKeys.Write, PreviewKeys.Copy, PreviewKeys.Edit, PreviewKeys.Help, PreviewKeys.Quit} {
		h := binding.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	status := strings.Join(parts, styles.HelpSeparator.String())

	if m.result != nil {
		status += styles.HelpSeparator.String() + styles.StatusText.Render(
			fmt.Sprintf("%d groups, %d documents", m.result.Stats.Groups, m.result.Stats.Documents))
	}
	return status
}

// HighlightSummary styles each summary line by its kind
func HighlightSummary(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == domain.SummaryTitle:
			lines[i] = styles.SummaryHeading.Render(line)
		case trimmed == domain.SeparatorLine:
			lines[i] = styles.SummarySeparator.Render(line)
		case strings.HasSuffix(trimmed, domain.IndexFile+")"):
			lines[i] = styles.SummaryGroup.Render(line)
		case trimmed != "":
			lines[i] = styles.SummaryDocument.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
