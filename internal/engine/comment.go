package engine

import (
	"fmt"
	"strings"

	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

// CommentResult carries the created comment plus the full updated task so
// the caller (and the mention dispatcher) can inspect it.
type CommentResult struct {
	Comment store.Comment
	Task    store.Task
}

// AddComment appends an immutable comment and exactly one activity entry
// quoting the comment text. On success every @name token in the text
// produces a mention notification, one per occurrence.
func (s *Service) AddComment(taskID, text string) *Call[CommentResult] {
	return newCall(s.lat.Comment, func() (CommentResult, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return CommentResult{}, EmptyCommentError{TaskID: taskID}
		}

		now := s.now()
		c := store.Comment{Text: trimmed, Author: s.user, CreatedAt: now}
		ok := s.store.MutateTask(taskID, func(t *store.Task) {
			t.Comments = append(t.Comments, c)
			t.ActivityLog = append(t.ActivityLog, store.Activity{
				Action:    fmt.Sprintf("commented: %q", trimmed),
				User:      s.user,
				CreatedAt: now,
			})
		})
		if !ok {
			return CommentResult{}, NotFoundError{Kind: "task", ID: taskID}
		}

		t, _ := s.store.GetTask(taskID)
		s.dispatchTextMentions(t, trimmed)
		return CommentResult{Comment: c, Task: t}, nil
	})
}
