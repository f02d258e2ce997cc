package engine

import "strings"

// ParseTaskStatus parses user input to a TaskStatus.
// Accepts a few common spellings; returns ok=false for anything else.
func ParseTaskStatus(input string) (TaskStatus, bool) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "backlog":
		return StatusBacklog, true
	case "todo", "to-do":
		return StatusTodo, true
	case "inprogress", "in-progress", "in_progress", "doing":
		return StatusInProgress, true
	case "review", "in-review":
		return StatusReview, true
	case "done", "complete", "completed":
		return StatusDone, true
	default:
		return "", false
	}
}

// ParsePriority parses user input to a Priority, defaulting to Medium.
func ParsePriority(input string) Priority {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// ParseTaskLevel parses user input to a TaskLevel, defaulting to Medium.
func ParseTaskLevel(input string) TaskLevel {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "easy":
		return LevelEasy
	case "hard":
		return LevelHard
	default:
		return LevelMedium
	}
}
