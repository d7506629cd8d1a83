package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ptemaster/internal/domain"
)

// StatusData is everything the status screen needs, already computed by the
// tracker.
type StatusData struct {
	User            *domain.UserIdentity
	Tasks           []domain.Task
	DerivedProgress int
	CompletedCount  int
	TotalCount      int
}

// FormatStatus renders the per-section task breakdown with counters, bars
// and the overall progress line.
func FormatStatus(d StatusData) string {
	var b strings.Builder

	if d.User != nil {
		b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Logged in as"), Bold(d.User.Email)))
	}

	bySection := make(map[domain.Section][]domain.Task)
	for _, task := range d.Tasks {
		bySection[task.Section] = append(bySection[task.Section], task)
	}

	for _, section := range domain.SectionOrder {
		tasks := bySection[section]
		if len(tasks) == 0 {
			continue
		}
		b.WriteString(SectionBadge(section) + "\n")
		for _, task := range tasks {
			b.WriteString(fmt.Sprintf("  %s %s %s  %s %s\n",
				DoneMark(task.Done()),
				StyleGreen.Render(PadRight(task.ID, 4)),
				PadRight(StyleFg.Render(task.Name), 32),
				RenderTaskBar(task.CurrentCount, task.TargetCount, 8),
				RenderCounter(task.CurrentCount, task.TargetCount),
			))
		}
		b.WriteString("\n")
	}

	pct := float64(d.DerivedProgress) / 100
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Dim("Overall"),
		RenderProgress(pct, 16),
		Dim(fmt.Sprintf("%d of %d tasks done", d.CompletedCount, d.TotalCount)),
	))

	return b.String()
}

// FormatHistory renders the study history as a table, most recent day last.
func FormatHistory(history []domain.DayProgress) string {
	if len(history) == 0 {
		return Dim("No study history yet.") + "\n"
	}

	headers := []string{"DATE", "COMPLETED", "PROGRESS"}
	rows := make([][]string, 0, len(history))
	for _, day := range history {
		pct := 0.0
		if day.TotalTasks > 0 {
			pct = float64(len(day.CompletedTasks)) / float64(day.TotalTasks)
		}
		rows = append(rows, []string{
			StyleFg.Render(HumanDay(day.Date)),
			fmt.Sprintf("%d of %d", len(day.CompletedTasks), day.TotalTasks),
			RenderProgress(pct, 10),
		})
	}

	return RenderTable(headers, rows)
}

// FormatReminders renders the reminder list as a table.
func FormatReminders(reminders []*domain.Reminder) string {
	if len(reminders) == 0 {
		return Dim("No reminders set.") + "\n"
	}

	headers := []string{"ID", "TIME", "LABEL", "STATE"}
	rows := make([][]string, 0, len(reminders))
	for _, rem := range reminders {
		rows = append(rows, []string{
			TruncID(rem.ID),
			StyleBold.Render(rem.TimeOfDay),
			StyleFg.Render(rem.Label),
			ActivePill(rem.Active),
		})
	}

	return RenderTable(headers, rows)
}
