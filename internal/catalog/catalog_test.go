package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/ptemaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasks_BuiltinCatalog(t *testing.T) {
	tasks := Tasks()
	require.Len(t, tasks, 15)

	seen := make(map[string]bool)
	perSection := make(map[domain.Section]int)
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
		assert.NotEmpty(t, task.Name, "task %s", task.ID)
		assert.True(t, domain.ValidSections[string(task.Section)], "task %s section %q", task.ID, task.Section)
		assert.Positive(t, task.TargetCount, "task %s", task.ID)
		assert.Zero(t, task.CurrentCount, "task %s", task.ID)
		perSection[task.Section]++
	}

	assert.Equal(t, 5, perSection[domain.SectionSpeaking])
	assert.Equal(t, 2, perSection[domain.SectionWriting])
	assert.Equal(t, 4, perSection[domain.SectionReading])
	assert.Equal(t, 4, perSection[domain.SectionListening])
}

func TestTasks_ReturnsCopy(t *testing.T) {
	a := Tasks()
	a[0].CurrentCount = 99

	b := Tasks()
	assert.Zero(t, b[0].CurrentCount)
}

func TestSampleHistory(t *testing.T) {
	history := SampleHistory()
	require.Len(t, history, 4)

	valid := make(map[string]bool)
	for _, task := range Tasks() {
		valid[task.ID] = true
	}
	for _, day := range history {
		assert.Equal(t, 15, day.TotalTasks)
		for _, id := range day.CompletedTasks {
			assert.True(t, valid[id], "unknown task %s on %s", id, day.Date)
		}
	}

	// The last demo day is a full sweep.
	assert.Len(t, history[3].CompletedTasks, 15)
}

func TestSampleHistory_ReturnsCopy(t *testing.T) {
	a := SampleHistory()
	a[0].CompletedTasks[0] = "mutated"

	b := SampleHistory()
	assert.Equal(t, "s1", b[0].CompletedTasks[0])
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeCatalogFile(t, `
tasks:
  - id: drill-1
    section: Speaking
    name: Shadowing Drill
    description: Repeat along with the recording
    target: 4
  - id: drill-2
    section: Listening
    name: Dictation Drill
    target: 6
`)

	tasks, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "drill-1", tasks[0].ID)
	assert.Equal(t, domain.SectionSpeaking, tasks[0].Section)
	assert.Equal(t, 4, tasks[0].TargetCount)
	assert.Zero(t, tasks[0].CurrentCount)
	assert.Equal(t, 6, tasks[1].TargetCount)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty", "tasks: []"},
		{"missing id", "tasks:\n  - section: Speaking\n    name: X\n    target: 1"},
		{"duplicate id", "tasks:\n  - id: a\n    section: Speaking\n    name: X\n    target: 1\n  - id: a\n    section: Reading\n    name: Y\n    target: 1"},
		{"missing name", "tasks:\n  - id: a\n    section: Speaking\n    target: 1"},
		{"bad section", "tasks:\n  - id: a\n    section: grammar\n    name: X\n    target: 1"},
		{"zero target", "tasks:\n  - id: a\n    section: Speaking\n    name: X\n    target: 0"},
		{"not yaml", "{{{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeCatalogFile(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
