package engine

type EpicStatus string

const (
	EpicPlanned    EpicStatus = "planned"
	EpicInProgress EpicStatus = "in_progress"
	EpicCompleted  EpicStatus = "completed"
)

func (s EpicStatus) IsValid() bool {
	switch s {
	case EpicPlanned, EpicInProgress, EpicCompleted:
		return true
	default:
		return false
	}
}

type SprintStatus string

const (
	SprintPlanned   SprintStatus = "planned"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

func (s SprintStatus) IsValid() bool {
	switch s {
	case SprintPlanned, SprintActive, SprintCompleted:
		return true
	default:
		return false
	}
}

type SprintType string

const (
	SprintWeekly    SprintType = "weekly"
	SprintMonthly   SprintType = "monthly"
	SprintQuarterly SprintType = "quarterly"
)

func (t SprintType) IsValid() bool {
	switch t {
	case SprintWeekly, SprintMonthly, SprintQuarterly:
		return true
	default:
		return false
	}
}

// TaskStatus is one of the five fixed kanban states.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inProgress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// TaskStatuses returns the kanban states in board column order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{StatusBacklog, StatusTodo, StatusInProgress, StatusReview, StatusDone}
}

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type TaskLevel string

const (
	LevelEasy   TaskLevel = "Easy"
	LevelMedium TaskLevel = "Medium"
	LevelHard   TaskLevel = "Hard"
)

func (l TaskLevel) IsValid() bool {
	switch l {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryBug           Category = "Bug"
	CategoryFeature       Category = "Feature"
	CategoryResearch      Category = "Research"
	CategoryDocumentation Category = "Documentation"
	CategoryDesign        Category = "Design"
	CategoryDeployment    Category = "Deployment"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryBug, CategoryFeature, CategoryResearch, CategoryDocumentation, CategoryDesign, CategoryDeployment:
		return true
	default:
		return false
	}
}
