package status

import (
	"errors"
	"io"

	"github.com/bnema/windsurf-accounts-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// snapshotMsg hands the loaded collection, and the reason it may be empty,
// to the model.
type snapshotMsg struct {
	snapshot application.Snapshot
	loadErr  error
}

type listModel struct {
	opts    RenderOptions
	styles  styles
	pending snapshotMsg

	snapshot application.Snapshot
	loadErr  error
	output   string
}

func newListModel(snapshot application.Snapshot, opts RenderOptions) listModel {
	return listModel{
		opts:    opts,
		styles:  newStyles(),
		pending: snapshotMsg{snapshot: snapshot, loadErr: opts.LoadError},
	}
}

func (m listModel) Init() tea.Cmd {
	pending := m.pending
	return func() tea.Msg {
		return pending
	}
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	loaded, ok := msg.(snapshotMsg)
	if !ok {
		return m, nil
	}

	m.snapshot = loaded.snapshot
	m.loadErr = loaded.loadErr
	m.output = m.compose()
	return m, tea.Quit
}

func (m listModel) compose() string {
	if m.loadErr == nil {
		return renderList(m.snapshot, m.opts, m.styles)
	}

	// A failed load still shows the empty summary so the layout is stable
	// under watch.
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.title.Render("Windsurf Accounts"),
		m.styles.header.Render(summaryLine(m.snapshot.Summary)),
		m.styles.loadError.Render("Could not load accounts: "+m.loadErr.Error()),
	)
}

func (m listModel) View() string {
	return m.output
}

// Render draws the summary header followed by one block per account. When
// opts.LoadError is set the account blocks are replaced by an error banner.
func Render(snapshot application.Snapshot, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newListModel(snapshot, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(listModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// RenderDetails draws every field of one account.
func RenderDetails(view application.AccountView, opts RenderOptions) string {
	return renderDetails(view, opts, newStyles())
}
