package store

import "time"

type Community struct {
	ID          string
	Name        string
	Type        string // main | branch | department | team
	Description string
	MemberCount int
	IsMain      bool
	ChildIDs    []string
	CreatedAt   time.Time
}

type Epic struct {
	ID          string
	Title       string
	Description string
	Status      string // planned | in_progress | completed
	Color       string
	StartDate   time.Time
	TargetDate  time.Time
	CommunityID string
	SprintIDs   []string

	// Derived from the linked sprint set; only the metrics engine writes these.
	Progress         int
	SprintCount      int
	CompletedSprints int

	CreatedAt time.Time
}

type WeeklySprint struct {
	ID       string
	Name     string
	Progress int
}

type Sprint struct {
	ID              string
	Name            string
	Goal            string
	Type            string // weekly | monthly | quarterly
	StartDate       time.Time
	EndDate         time.Time
	CommunityID     string
	EpicID          string // back-reference, empty when unlinked
	Status          string // planned | active | completed
	Velocity        int    // sum of completed story points; meaningful once completed
	CompletedPoints int
	TotalPoints     int
	Progress        int // derived from points
	Retrospective   string
	WeeklySprints   []WeeklySprint
	CreatedAt       time.Time
}

type Comment struct {
	Text      string
	Author    string
	CreatedAt time.Time
}

type Activity struct {
	Action    string
	User      string
	CreatedAt time.Time
}

type Task struct {
	ID             string
	Title          string
	Description    string
	Priority       string // Low | Medium | High
	TaskLevel      string // Easy | Medium | Hard
	Category       string // Bug | Feature | Research | Documentation | Design | Deployment
	Status         string // backlog | todo | inProgress | review | done
	Assignee       string // empty when unassigned
	DueDate        *time.Time
	EstimatedHours int
	StoryPoints    int
	CommunityID    string
	IsPersonal     bool
	SprintID       string
	EpicID         string
	Tags           []string
	Comments       []Comment
	ActivityLog    []Activity
	CreatedAt      time.Time
}

type Notification struct {
	ID            string
	Type          string // currently only "mention"
	Message       string
	TaskID        string
	MentionedUser string
	Read          bool
	CreatedAt     time.Time
}
