// Package catalog defines the fixed set of PTE practice tasks and the
// sample history used to seed a brand-new account.
package catalog

import "github.com/alexanderramin/ptemaster/internal/domain"

var builtinTasks = []domain.Task{
	// Speaking
	{ID: "s1", Section: domain.SectionSpeaking, Name: "Read Aloud", Description: "Read a text from the screen", TargetCount: 5},
	{ID: "s2", Section: domain.SectionSpeaking, Name: "Repeat Sentence", Description: "Hear a sentence and repeat it", TargetCount: 10},
	{ID: "s3", Section: domain.SectionSpeaking, Name: "Describe Image", Description: "Explain a chart or picture", TargetCount: 5},
	{ID: "s4", Section: domain.SectionSpeaking, Name: "Retell Lecture", Description: "Summarize a recording", TargetCount: 3},
	{ID: "s5", Section: domain.SectionSpeaking, Name: "Answer Short Question", Description: "Brief answer to a question", TargetCount: 10},

	// Writing
	{ID: "w1", Section: domain.SectionWriting, Name: "Summarize Written Text", Description: "Write a one-sentence summary", TargetCount: 2},
	{ID: "w2", Section: domain.SectionWriting, Name: "Write Essay", Description: "200-300 word formal essay", TargetCount: 1},

	// Reading
	{ID: "r1", Section: domain.SectionReading, Name: "Reading & Writing: Fill Blanks", Description: "Drop-down options in text", TargetCount: 5},
	{ID: "r2", Section: domain.SectionReading, Name: "Multiple Choice (Multiple)", Description: "Select all correct answers", TargetCount: 2},
	{ID: "r3", Section: domain.SectionReading, Name: "Re-order Paragraphs", Description: "Drag text into correct order", TargetCount: 3},
	{ID: "r4", Section: domain.SectionReading, Name: "Fill in the Blanks (Reading)", Description: "Drag and drop words", TargetCount: 5},

	// Listening
	{ID: "l1", Section: domain.SectionListening, Name: "Summarize Spoken Text", Description: "Write 50-70 words summary", TargetCount: 2},
	{ID: "l2", Section: domain.SectionListening, Name: "Fill in the Blanks", Description: "Type missing words from audio", TargetCount: 3},
	{ID: "l3", Section: domain.SectionListening, Name: "Highlight Correct Summary", Description: "Choose the best summary", TargetCount: 2},
	{ID: "l4", Section: domain.SectionListening, Name: "Write from Dictation", Description: "Type the exact sentence heard", TargetCount: 10},
}

var sampleHistory = []domain.DayProgress{
	{Date: "2023-10-20", CompletedTasks: []string{"s1", "s2", "w1"}, TotalTasks: 15},
	{Date: "2023-10-21", CompletedTasks: []string{"s1", "s2", "s3", "w2", "r1"}, TotalTasks: 15},
	{Date: "2023-10-22", CompletedTasks: []string{"s1", "r1", "r2", "l1"}, TotalTasks: 15},
	{Date: "2023-10-23", CompletedTasks: []string{"s1", "s2", "s3", "s4", "s5", "w1", "w2", "r1", "r2", "r3", "r4", "l1", "l2", "l3", "l4"}, TotalTasks: 15},
}

// Tasks returns a fresh copy of the built-in task catalog with all
// counters at zero.
func Tasks() []domain.Task {
	out := make([]domain.Task, len(builtinTasks))
	copy(out, builtinTasks)
	return out
}

// SampleHistory returns a fresh copy of the demo history shown to accounts
// that have never synced.
func SampleHistory() []domain.DayProgress {
	out := make([]domain.DayProgress, len(sampleHistory))
	for i, d := range sampleHistory {
		ids := make([]string, len(d.CompletedTasks))
		copy(ids, d.CompletedTasks)
		d.CompletedTasks = ids
		out[i] = d
	}
	return out
}
