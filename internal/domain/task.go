package domain

// Section is one of the four fixed PTE study categories.
type Section string

const (
	SectionSpeaking  Section = "Speaking"
	SectionWriting   Section = "Writing"
	SectionReading   Section = "Reading"
	SectionListening Section = "Listening"
)

// SectionOrder is the display order of sections on the dashboard.
var SectionOrder = []Section{SectionSpeaking, SectionWriting, SectionReading, SectionListening}

// ValidSections is the canonical set of accepted section strings.
var ValidSections = map[string]bool{
	"Speaking": true, "Writing": true, "Reading": true, "Listening": true,
}

// Task is a unit of study work with a fixed target repetition count.
// ID, Section, Name, Description and TargetCount come from the catalog and
// never change; CurrentCount is the mutable per-session counter.
type Task struct {
	ID           string  `json:"id" yaml:"id"`
	Section      Section `json:"section" yaml:"section"`
	Name         string  `json:"name" yaml:"name"`
	Description  string  `json:"description" yaml:"description"`
	CurrentCount int     `json:"currentCount" yaml:"-"`
	TargetCount  int     `json:"targetCount" yaml:"target"`
}

// Done reports whether the task has reached its target.
func (t Task) Done() bool {
	return t.CurrentCount >= t.TargetCount
}

// Remaining returns how many repetitions are left before the target.
func (t Task) Remaining() int {
	if r := t.TargetCount - t.CurrentCount; r > 0 {
		return r
	}
	return 0
}

// ClampCount clamps n into [0, target].
func ClampCount(n, target int) int {
	if n < 0 {
		return 0
	}
	if n > target {
		return target
	}
	return n
}
