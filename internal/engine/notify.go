package engine

import (
	"fmt"

	"github.com/Shubham12sharma/Assign-Alert/internal/mention"
	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

// The dispatcher runs after successful CreateTask and AddComment. Repeated
// mentions of the same user within one action are not deduplicated; each
// match appends its own notification.

func (s *Service) dispatchTagMentions(t store.Task) {
	for _, name := range mention.FromTags(t.Tags) {
		s.pushMention(t, name, fmt.Sprintf("%s tagged you in task #%s: %q", s.user, t.ID, t.Title))
	}
}

func (s *Service) dispatchTextMentions(t store.Task, text string) {
	for _, name := range mention.Extract(text) {
		s.pushMention(t, name, fmt.Sprintf("%s mentioned you in task #%s: %q", s.user, t.ID, t.Title))
	}
}

func (s *Service) pushMention(t store.Task, user, message string) {
	s.store.PushNotification(store.Notification{
		ID:            s.newID(),
		Type:          "mention",
		Message:       message,
		TaskID:        t.ID,
		MentionedUser: user,
		CreatedAt:     s.now(),
	})
}

// MarkNotificationRead flips one notification's read flag. Synchronous: the
// inbox is local UI state, not a simulated round trip.
func (s *Service) MarkNotificationRead(id string) bool {
	return s.store.MarkRead(id)
}

func (s *Service) MarkAllNotificationsRead() {
	s.store.MarkAllRead()
}
