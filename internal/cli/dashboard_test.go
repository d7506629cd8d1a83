package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(t *testing.T) (dashboardModel, *App) {
	t.Helper()
	app := testApp(t)
	login(t, app)

	user, err := app.Sessions.Restore(context.Background())
	require.NoError(t, err)
	require.NoError(t, app.Tracker.Begin(context.Background(), user))

	return newDashboardModel(app, user), app
}

func pressKey(m dashboardModel, runes ...rune) dashboardModel {
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: runes})
	return model.(dashboardModel)
}

func TestDashboard_View_ShowsTasksAndUser(t *testing.T) {
	m, _ := newTestDashboard(t)

	view := m.View()
	assert.Contains(t, view, "amy@example.com")
	assert.Contains(t, view, "SPEAKING")
	assert.Contains(t, view, "Read Aloud")
	assert.Contains(t, view, "0/5")
	assert.Contains(t, view, "Synced")
}

func TestDashboard_Navigation(t *testing.T) {
	m, _ := newTestDashboard(t)

	m = pressKey(m, 'j')
	m = pressKey(m, 'j')
	assert.Equal(t, 2, m.cursor)

	m = pressKey(m, 'k')
	assert.Equal(t, 1, m.cursor)

	// Cursor stops at the top.
	m = pressKey(m, 'k')
	m = pressKey(m, 'k')
	assert.Equal(t, 0, m.cursor)
}

func TestDashboard_AdjustSelectedTask(t *testing.T) {
	m, app := newTestDashboard(t)

	m = pressKey(m, '+')
	task, ok := app.Tracker.Task("s1")
	require.True(t, ok)
	assert.Equal(t, 1, task.CurrentCount)

	m = pressKey(m, '-')
	task, _ = app.Tracker.Task("s1")
	assert.Zero(t, task.CurrentCount)

	// Decrement clamps at zero.
	pressKey(m, '-')
	task, _ = app.Tracker.Task("s1")
	assert.Zero(t, task.CurrentCount)
}

func TestDashboard_AdviceKeyStartsLoad(t *testing.T) {
	m, _ := newTestDashboard(t)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = model.(dashboardModel)
	assert.True(t, m.adviceLoading)
	require.NotNil(t, cmd)

	// The command resolves to the coach's (offline) tip.
	msg := cmd()
	tip, ok := msg.(adviceMsg)
	require.True(t, ok)
	assert.NotEmpty(t, tip.text)

	model, _ = m.Update(tip)
	m = model.(dashboardModel)
	assert.False(t, m.adviceLoading)
	assert.Contains(t, m.View(), "Consistent practice")
}

func TestDashboard_QuitKey(t *testing.T) {
	m, _ := newTestDashboard(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
