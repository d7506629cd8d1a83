package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ptemaster/internal/cli/formatter"
	"github.com/alexanderramin/ptemaster/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive study dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the dashboard needs a terminal")
			}
			return runDashboard(app)
		},
	}
}

func runDashboard(app *App) error {
	ctx := context.Background()
	user, err := beginTracker(ctx, app)
	if err != nil {
		return err
	}
	defer app.Tracker.End()

	program := tea.NewProgram(newDashboardModel(app, user), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	// Persist whatever the debounce window has not written yet.
	return app.Tracker.Flush(ctx)
}

// ── keys ─────────────────────────────────────────────────────────────────────

type dashboardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Inc    key.Binding
	Dec    key.Binding
	Advice key.Binding
	Quit   key.Binding
}

func defaultDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Inc:    key.NewBinding(key.WithKeys("+", "enter", "l"), key.WithHelp("+", "log one")),
		Dec:    key.NewBinding(key.WithKeys("-", "h"), key.WithHelp("-", "undo one")),
		Advice: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "advice")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

type syncTickMsg time.Time

type adviceMsg struct{ text string }

func syncTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return syncTickMsg(t)
	})
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel is the interactive study screen: a selectable task list
// grouped by section, a live sync indicator and an on-demand coach tip.
type dashboardModel struct {
	app  *App
	user *domain.UserIdentity
	keys dashboardKeys

	cursor        int
	width         int
	advice        string
	adviceLoading bool
}

func newDashboardModel(app *App, user *domain.UserIdentity) dashboardModel {
	return dashboardModel{
		app:  app,
		user: user,
		keys: defaultDashboardKeys(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return syncTick()
}

func (m dashboardModel) loadAdvice() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return adviceMsg{text: app.Coach.StudyAdvice(ctx, app.Tracker.CompletedCount(), app.Tracker.TotalCount())}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case syncTickMsg:
		// Re-render so the sync pill tracks the scheduler state.
		return m, syncTick()

	case adviceMsg:
		m.adviceLoading = false
		m.advice = msg.text
		return m, nil

	case tea.KeyMsg:
		tasks := m.app.Tracker.Tasks()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Inc):
			if m.cursor < len(tasks) {
				m.app.Tracker.Adjust(tasks[m.cursor].ID, 1)
			}
		case key.Matches(msg, m.keys.Dec):
			if m.cursor < len(tasks) {
				m.app.Tracker.Adjust(tasks[m.cursor].ID, -1)
			}
		case key.Matches(msg, m.keys.Advice):
			if !m.adviceLoading {
				m.adviceLoading = true
				m.advice = ""
				return m, m.loadAdvice()
			}
		}
	}

	return m, nil
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.StyleHeader.Render("PTE STUDY TRACKER"))
	b.WriteString("  " + formatter.Dim(m.user.Email) + "\n\n")

	pct := float64(m.app.Tracker.DerivedProgress()) / 100
	b.WriteString(fmt.Sprintf("  %s %s  %s\n\n",
		formatter.Dim("Today"),
		formatter.RenderProgress(pct, 20),
		formatter.Dim(fmt.Sprintf("%d/%d tasks", m.app.Tracker.CompletedCount(), m.app.Tracker.TotalCount())),
	))

	tasks := m.app.Tracker.Tasks()
	var lastSection domain.Section
	for i, task := range tasks {
		if task.Section != lastSection {
			b.WriteString("  " + formatter.SectionBadge(task.Section) + "\n")
			lastSection = task.Section
		}

		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		name := task.Name
		if len(name) > 30 {
			name = name[:29] + "…"
		}

		b.WriteString(fmt.Sprintf("  %s%s %s %s %s\n",
			cursor,
			formatter.DoneMark(task.Done()),
			formatter.PadRight(nameStyle.Render(name), 30),
			formatter.RenderTaskBar(task.CurrentCount, task.TargetCount, 8),
			formatter.RenderCounter(task.CurrentCount, task.TargetCount),
		))
	}

	if m.adviceLoading {
		b.WriteString("\n  " + formatter.Dim("Asking the coach...") + "\n")
	} else if m.advice != "" {
		b.WriteString("\n" + formatter.RenderBox("Coach", m.advice) + "\n")
	}

	b.WriteString("\n  " + formatter.SyncPill(m.app.Tracker.Syncing()))
	b.WriteString("   " + m.helpLine() + "\n")

	return b.String()
}

func (m dashboardModel) helpLine() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Inc, m.keys.Dec, m.keys.Advice, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, formatter.Dim(h.Key+" "+h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" · "))
}
