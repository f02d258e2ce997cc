package engine

import (
	"strings"
	"time"

	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

type CreateEpicInput struct {
	Title       string
	Description string
	Status      EpicStatus // defaults to planned
	Color       string
	StartDate   time.Time
	TargetDate  time.Time
	CommunityID string
}

type CreateSprintInput struct {
	Name        string
	Goal        string
	Type        SprintType // defaults to weekly
	StartDate   time.Time
	EndDate     time.Time
	CommunityID string
	TotalPoints int
}

type CreateTaskInput struct {
	Title          string
	Description    string
	Priority       Priority
	TaskLevel      TaskLevel
	Category       Category
	Status         TaskStatus // defaults to todo
	Assignee       string
	DueDate        *time.Time
	EstimatedHours int
	StoryPoints    int
	CommunityID    string
	IsPersonal     bool
	SprintID       string
	EpicID         string
	Tags           []string
}

// CreateEpic validates, mints an id and inserts at the head of the
// collection. Derived fields start at zero with an empty linked-sprint set.
// Target date must not precede the start date; this is enforced here rather
// than left to input widgets.
func (s *Service) CreateEpic(in CreateEpicInput) *Call[store.Epic] {
	s.store.SetLoading(store.KindEpic, true)
	return newCall(s.lat.Create, func() (store.Epic, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.store.SetLoading(store.KindEpic, false)

		title := strings.TrimSpace(in.Title)
		if title == "" {
			return store.Epic{}, ValidationError{Field: "title", Reason: "required"}
		}
		if in.StartDate.IsZero() || in.TargetDate.IsZero() {
			return store.Epic{}, ValidationError{Field: "dates", Reason: "start and target dates are required"}
		}
		if in.TargetDate.Before(in.StartDate) {
			return store.Epic{}, ValidationError{Field: "targetDate", Reason: "must not precede start date"}
		}
		status := in.Status
		if status == "" {
			status = EpicPlanned
		}
		if !status.IsValid() {
			return store.Epic{}, InvalidStatusError{Status: string(in.Status)}
		}

		e := store.Epic{
			ID:          s.newID(),
			Title:       title,
			Description: in.Description,
			Status:      string(status),
			Color:       in.Color,
			StartDate:   in.StartDate,
			TargetDate:  in.TargetDate,
			CommunityID: in.CommunityID,
			SprintIDs:   []string{},
			CreatedAt:   s.now(),
		}
		s.store.InsertEpic(e)
		return e, nil
	})
}

// CreateSprint validates and inserts a planned sprint with zero progress and
// velocity. End date must not precede the start date.
func (s *Service) CreateSprint(in CreateSprintInput) *Call[store.Sprint] {
	s.store.SetLoading(store.KindSprint, true)
	return newCall(s.lat.Create, func() (store.Sprint, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.store.SetLoading(store.KindSprint, false)

		name := strings.TrimSpace(in.Name)
		if name == "" {
			return store.Sprint{}, ValidationError{Field: "name", Reason: "required"}
		}
		if in.StartDate.IsZero() || in.EndDate.IsZero() {
			return store.Sprint{}, ValidationError{Field: "dates", Reason: "start and end dates are required"}
		}
		if in.EndDate.Before(in.StartDate) {
			return store.Sprint{}, ValidationError{Field: "endDate", Reason: "must not precede start date"}
		}
		typ := in.Type
		if typ == "" {
			typ = SprintWeekly
		}
		if !typ.IsValid() {
			return store.Sprint{}, ValidationError{Field: "type", Reason: "must be weekly, monthly or quarterly"}
		}

		sp := store.Sprint{
			ID:          s.newID(),
			Name:        name,
			Goal:        in.Goal,
			Type:        string(typ),
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			CommunityID: in.CommunityID,
			Status:      string(SprintPlanned),
			TotalPoints: in.TotalPoints,
			CreatedAt:   s.now(),
		}
		s.store.InsertSprint(sp)
		return sp, nil
	})
}

// CreateTask validates, seeds the activity log with a "created task" entry
// and inserts at the head. On success any @-prefixed tag produces a mention
// notification, one per tag occurrence.
func (s *Service) CreateTask(in CreateTaskInput) *Call[store.Task] {
	s.store.SetLoading(store.KindTask, true)
	return newCall(s.lat.Create, func() (store.Task, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.store.SetLoading(store.KindTask, false)

		title := strings.TrimSpace(in.Title)
		if title == "" {
			return store.Task{}, ValidationError{Field: "title", Reason: "required"}
		}
		if in.DueDate == nil {
			return store.Task{}, ValidationError{Field: "dueDate", Reason: "required"}
		}
		status := in.Status
		if status == "" {
			status = StatusTodo
		}
		if !status.IsValid() {
			return store.Task{}, InvalidStatusError{Status: string(in.Status)}
		}
		priority := in.Priority
		if priority == "" {
			priority = PriorityMedium
		}
		if !priority.IsValid() {
			return store.Task{}, ValidationError{Field: "priority", Reason: "must be Low, Medium or High"}
		}
		level := in.TaskLevel
		if level == "" {
			level = LevelMedium
		}
		if !level.IsValid() {
			return store.Task{}, ValidationError{Field: "taskLevel", Reason: "must be Easy, Medium or Hard"}
		}
		category := in.Category
		if category == "" {
			category = CategoryFeature
		}
		if !category.IsValid() {
			return store.Task{}, ValidationError{Field: "category", Reason: "unknown category"}
		}

		now := s.now()
		due := *in.DueDate
		t := store.Task{
			ID:             s.newID(),
			Title:          title,
			Description:    in.Description,
			Priority:       string(priority),
			TaskLevel:      string(level),
			Category:       string(category),
			Status:         string(status),
			Assignee:       in.Assignee,
			DueDate:        &due,
			EstimatedHours: in.EstimatedHours,
			StoryPoints:    in.StoryPoints,
			CommunityID:    in.CommunityID,
			IsPersonal:     in.IsPersonal,
			SprintID:       in.SprintID,
			EpicID:         in.EpicID,
			Tags:           append([]string(nil), in.Tags...),
			Comments:       []store.Comment{},
			ActivityLog: []store.Activity{
				{Action: "created task", User: s.user, CreatedAt: now},
			},
			CreatedAt: now,
		}
		s.store.InsertTask(t)
		s.dispatchTagMentions(t)
		return t, nil
	})
}
