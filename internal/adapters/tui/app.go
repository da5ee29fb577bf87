package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"autogensummary/internal/adapters/tui/views"
	"autogensummary/internal/domain"
	"autogensummary/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPreview ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state   ViewState
	preview *views.PreviewModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. ed may be nil to disable editing.
func NewApp(scanner ports.TreeScanner, store ports.SummaryStore, sourceDir string, opts domain.RenderOptions, ed ports.EditorOpener) *App {
	return &App{
		editor:  ed,
		state:   ViewPreview,
		preview: views.NewPreviewModel(scanner, store, sourceDir, opts),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.preview.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.preview.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPreviewMsg:
		a.state = ViewPreview
		return a, nil

	case views.OpenEditorMsg:
		a.state = ViewPreview
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.preview.SetMessage(msg.err.Error(), true)
		}
		return a, a.preview.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPreview:
		_, cmd = a.preview.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
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
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.preview.View()
	}
}
