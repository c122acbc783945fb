package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pkt.systems/pslog"

	"github.com/pluqqy/schemadeck/pkg/controller"
	"github.com/pluqqy/schemadeck/pkg/eventbus"
)

const statusTimeout = 3 * time.Second

// Options configures the terminal UI
type Options struct {
	ShowIcons bool
	Logger    pslog.Logger
}

type App struct {
	ctrl        *controller.Controller
	list        *SchemaListModel
	editor      *EditorModel
	events      <-chan eventbus.Event
	unsubscribe func()
	log         pslog.Logger
	width       int
	height      int
	statusMsg   string
	statusSeq   int
}

// NewApp builds the UI for ctrl and subscribes to its changes. Call Close
// when the program exits.
func NewApp(ctx context.Context, ctrl *controller.Controller, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = pslog.Ctx(ctx)
	}
	events, unsubscribe := ctrl.Subscribe()
	return &App{
		ctrl:        ctrl,
		list:        NewSchemaListModel(ctx, ctrl, opts.ShowIcons),
		editor:      NewEditorModel(ctrl),
		events:      events,
		unsubscribe: unsubscribe,
		log:         logger.With("item", ctrl.Item()),
	}
}

// Run shows the UI for ctrl until the user quits or ctx is cancelled
func Run(ctx context.Context, ctrl *controller.Controller, opts Options) error {
	app := NewApp(ctx, ctrl, opts)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Close stops listening for controller changes
func (a *App) Close() {
	a.unsubscribe()
}

func (a *App) Init() tea.Cmd {
	return waitForChange(a.events)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		a.editor.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		var cmd tea.Cmd
		switch {
		case a.list.Confirming():
			cmd = a.list.Update(msg)
		case a.editor.Open():
			cmd = a.editor.Update(msg)
		case msg.String() == "q":
			return a, tea.Quit
		default:
			cmd = a.list.Update(msg)
		}
		a.sync()
		return a, cmd

	case changeMsg:
		a.log.Trace("change", "type", msg.Type, "key", msg.Key, "version", msg.Version)
		a.sync()
		return a, waitForChange(a.events)

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case PersistentStatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		return a, nil

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil

	case errMsg:
		a.log.Debug("action failed", "err", msg.err)
		return a.Update(StatusMsg("✗ " + msg.err.Error()))
	}

	return a, nil
}

// sync brings the child models in line with the controller after a change
func (a *App) sync() {
	a.list.clamp()
	a.editor.Refresh()
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	parts := []string{headerStyle.Render("schemadeck · " + a.ctrl.Item())}
	if list := a.list.View(); list != "" {
		parts = append(parts, list)
	}
	if editor := a.editor.View(); editor != "" {
		parts = append(parts, editor)
	}
	parts = append(parts, helpStyle.Render(a.help()))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, statusStyle.Render(a.statusMsg))
	}
	return content
}

func (a *App) help() string {
	switch {
	case a.list.Confirming():
		return "y/d confirm • n/esc cancel"
	case a.editor.Open():
		return "tab switch tab • c copy JSON-LD • ↑/↓ scroll • esc close"
	case a.ctrl.ListEntries().IsEmpty():
		return "q quit"
	case a.ctrl.IsGated():
		return "↑/↓ move • e edit • p preview • d delete • q quit"
	}
	return "↑/↓ move • space set primary • e edit • p preview • d delete • q quit"
}

// StatusMsg is shown in the status bar and cleared after a few seconds
type StatusMsg string

// PersistentStatusMsg stays in the status bar until replaced
type PersistentStatusMsg string

type clearStatusMsg struct {
	seq int
}

type changeMsg eventbus.Event

type errMsg struct {
	err error
}

func statusCmd(s string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(s) }
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err: err} }
}

func waitForChange(events <-chan eventbus.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return changeMsg(ev)
	}
}
