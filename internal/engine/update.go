package engine

import (
	"fmt"
	"time"

	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

// UpdateTaskStatus is the drag-and-drop target: it moves a task to one of the
// five kanban states and appends exactly one activity entry. Any other status
// value fails with InvalidStatusError and leaves the task untouched.
func (s *Service) UpdateTaskStatus(taskID string, newStatus TaskStatus) *Call[store.Task] {
	return newCall(s.lat.Update, func() (store.Task, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !newStatus.IsValid() {
			return store.Task{}, InvalidStatusError{Status: string(newStatus)}
		}
		now := s.now()
		ok := s.store.MutateTask(taskID, func(t *store.Task) {
			t.Status = string(newStatus)
			t.ActivityLog = append(t.ActivityLog, store.Activity{
				Action:    fmt.Sprintf("moved to %s", newStatus),
				User:      s.user,
				CreatedAt: now,
			})
		})
		if !ok {
			return store.Task{}, NotFoundError{Kind: "task", ID: taskID}
		}
		t, _ := s.store.GetTask(taskID)
		return t, nil
	})
}

// UpdateTaskInput is a partial patch: nil fields are left untouched, set
// fields overwrite (shallow merge).
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	Priority       *Priority
	TaskLevel      *TaskLevel
	Category       *Category
	Assignee       *string
	DueDate        *time.Time
	EstimatedHours *int
	StoryPoints    *int
	Tags           []string // nil leaves tags untouched
	SprintID       *string
	EpicID         *string
}

// UpdateTask merges the patch into the task and appends one "updated task"
// activity entry. Status changes go through UpdateTaskStatus instead.
func (s *Service) UpdateTask(taskID string, patch UpdateTaskInput) *Call[store.Task] {
	return newCall(s.lat.Update, func() (store.Task, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if patch.Priority != nil && !patch.Priority.IsValid() {
			return store.Task{}, ValidationError{Field: "priority", Reason: "must be Low, Medium or High"}
		}
		if patch.TaskLevel != nil && !patch.TaskLevel.IsValid() {
			return store.Task{}, ValidationError{Field: "taskLevel", Reason: "must be Easy, Medium or Hard"}
		}
		if patch.Category != nil && !patch.Category.IsValid() {
			return store.Task{}, ValidationError{Field: "category", Reason: "unknown category"}
		}

		now := s.now()
		ok := s.store.MutateTask(taskID, func(t *store.Task) {
			if patch.Title != nil {
				t.Title = *patch.Title
			}
			if patch.Description != nil {
				t.Description = *patch.Description
			}
			if patch.Priority != nil {
				t.Priority = string(*patch.Priority)
			}
			if patch.TaskLevel != nil {
				t.TaskLevel = string(*patch.TaskLevel)
			}
			if patch.Category != nil {
				t.Category = string(*patch.Category)
			}
			if patch.Assignee != nil {
				t.Assignee = *patch.Assignee
			}
			if patch.DueDate != nil {
				due := *patch.DueDate
				t.DueDate = &due
			}
			if patch.EstimatedHours != nil {
				t.EstimatedHours = *patch.EstimatedHours
			}
			if patch.StoryPoints != nil {
				t.StoryPoints = *patch.StoryPoints
			}
			if patch.Tags != nil {
				t.Tags = append([]string(nil), patch.Tags...)
			}
			if patch.SprintID != nil {
				t.SprintID = *patch.SprintID
			}
			if patch.EpicID != nil {
				t.EpicID = *patch.EpicID
			}
			t.ActivityLog = append(t.ActivityLog, store.Activity{
				Action:    "updated task",
				User:      s.user,
				CreatedAt: now,
			})
		})
		if !ok {
			return store.Task{}, NotFoundError{Kind: "task", ID: taskID}
		}
		t, _ := s.store.GetTask(taskID)
		return t, nil
	})
}

// UpdateSprintInput is a partial patch with the same shallow-merge semantics
// as UpdateTaskInput.
type UpdateSprintInput struct {
	Name            *string
	Goal            *string
	Type            *SprintType
	Status          *SprintStatus
	StartDate       *time.Time
	EndDate         *time.Time
	CompletedPoints *int
	TotalPoints     *int
	Velocity        *int
	Retrospective   *string
}

// UpdateSprint merges the patch, recomputes the sprint's derived progress and
// then the aggregates of any epic linking this sprint. A sprint completing
// with no explicit velocity freezes its completed points as velocity.
func (s *Service) UpdateSprint(sprintID string, patch UpdateSprintInput) *Call[store.Sprint] {
	return newCall(s.lat.Update, func() (store.Sprint, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if patch.Type != nil && !patch.Type.IsValid() {
			return store.Sprint{}, ValidationError{Field: "type", Reason: "must be weekly, monthly or quarterly"}
		}
		if patch.Status != nil && !patch.Status.IsValid() {
			return store.Sprint{}, InvalidStatusError{Status: string(*patch.Status)}
		}

		ok := s.store.MutateSprint(sprintID, func(sp *store.Sprint) {
			if patch.Name != nil {
				sp.Name = *patch.Name
			}
			if patch.Goal != nil {
				sp.Goal = *patch.Goal
			}
			if patch.Type != nil {
				sp.Type = string(*patch.Type)
			}
			if patch.Status != nil {
				sp.Status = string(*patch.Status)
			}
			if patch.StartDate != nil {
				sp.StartDate = *patch.StartDate
			}
			if patch.EndDate != nil {
				sp.EndDate = *patch.EndDate
			}
			if patch.CompletedPoints != nil {
				sp.CompletedPoints = *patch.CompletedPoints
			}
			if patch.TotalPoints != nil {
				sp.TotalPoints = *patch.TotalPoints
			}
			if patch.Velocity != nil {
				sp.Velocity = *patch.Velocity
			}
			if patch.Retrospective != nil {
				sp.Retrospective = *patch.Retrospective
			}
			sp.Progress = SprintProgress(sp.CompletedPoints, sp.TotalPoints)
			if sp.Status == string(SprintCompleted) && sp.Velocity == 0 {
				sp.Velocity = sp.CompletedPoints
			}
		})
		if !ok {
			return store.Sprint{}, NotFoundError{Kind: "sprint", ID: sprintID}
		}
		s.recomputeEpicsLinking(sprintID)
		sp, _ := s.store.GetSprint(sprintID)
		return sp, nil
	})
}
