package domain

// DayProgress is one historical record: the tasks that reached their target
// on a given calendar day. Records are immutable once written; history is
// only replaced wholesale when a snapshot is loaded.
type DayProgress struct {
	Date           string   `json:"date"` // YYYY-MM-DD
	CompletedTasks []string `json:"completedTasks"`
	TotalTasks     int      `json:"totalTasks"`
}

// SyncPayload is the full snapshot of tasks and history persisted as one
// unit. It is derived from the progress store at the moment of a sync and
// has no identity of its own.
type SyncPayload struct {
	Tasks   []Task        `json:"tasks"`
	History []DayProgress `json:"history"`
}
