package store

import (
	"testing"
	"time"
)

func TestInsertTaskAtHead(t *testing.T) {
	s := New()
	s.InsertTask(Task{ID: "a", Title: "first"})
	s.InsertTask(Task{ID: "b", Title: "second"})

	list := s.ListTasks(ScopeAll)
	if len(list) != 2 {
		t.Fatalf("tasks=%d, want 2", len(list))
	}
	if list[0].ID != "b" || list[1].ID != "a" {
		t.Fatalf("order=%s,%s, want newest first", list[0].ID, list[1].ID)
	}
}

func TestScopeFiltering(t *testing.T) {
	s := Seed()

	all := s.ListTasks(ScopeAll)
	if len(all) != 5 {
		t.Fatalf("all tasks=%d, want 5", len(all))
	}
	branch := s.ListTasks("branch-1")
	if len(branch) != 4 {
		t.Fatalf("branch-1 tasks=%d, want 4", len(branch))
	}
	for _, tk := range branch {
		if tk.CommunityID != "branch-1" {
			t.Fatalf("task %s leaked into scope: community=%q", tk.ID, tk.CommunityID)
		}
	}
	if got := s.ListSprints("branch-2"); len(got) != 1 || got[0].ID != "sprint-4" {
		t.Fatalf("branch-2 sprints=%v, want only sprint-4", got)
	}
	if got := s.ListEpics("missing"); len(got) != 0 {
		t.Fatalf("unknown scope epics=%d, want 0", len(got))
	}
}

func TestReadersGetCopies(t *testing.T) {
	s := Seed()

	tk, ok := s.GetTask("1")
	if !ok {
		t.Fatalf("task 1 missing from seed")
	}
	tk.Title = "mutated locally"
	tk.Tags[0] = "mutated"

	fresh, _ := s.GetTask("1")
	if fresh.Title == "mutated locally" || fresh.Tags[0] == "mutated" {
		t.Fatalf("reader mutation leaked into the store: %+v", fresh)
	}
}

func TestMutateTask(t *testing.T) {
	s := Seed()

	ok := s.MutateTask("1", func(tk *Task) { tk.Status = "done" })
	if !ok {
		t.Fatalf("MutateTask returned false for existing task")
	}
	got, _ := s.GetTask("1")
	if got.Status != "done" {
		t.Fatalf("status=%q, want done", got.Status)
	}

	if s.MutateTask("ghost", func(tk *Task) {}) {
		t.Fatalf("MutateTask returned true for unknown id")
	}
}

func TestCurrentPointers(t *testing.T) {
	s := Seed()

	if _, ok := s.CurrentSprint(); ok {
		t.Fatalf("seed should not preselect a sprint")
	}
	s.SetCurrentSprint("sprint-3")
	sp, ok := s.CurrentSprint()
	if !ok || sp.ID != "sprint-3" {
		t.Fatalf("current sprint=%+v, want sprint-3", sp)
	}

	c, ok := s.CurrentCommunity()
	if !ok || c.ID != "main-1" {
		t.Fatalf("current community=%+v, want main-1 from seed", c)
	}
}

func TestChildrenOf(t *testing.T) {
	s := Seed()
	kids := s.ChildrenOf("branch-1")
	if len(kids) != 3 {
		t.Fatalf("children=%d, want 3 teams", len(kids))
	}
	for _, c := range kids {
		if c.Type != "team" {
			t.Fatalf("child %s type=%q, want team", c.ID, c.Type)
		}
	}
	if got := s.ChildrenOf("team-1"); len(got) != 0 {
		t.Fatalf("leaf children=%d, want 0", len(got))
	}
}

func TestNotificationUnreadCounter(t *testing.T) {
	s := New()
	now := time.Now()
	s.PushNotification(Notification{ID: "n1", Message: "one", CreatedAt: now})
	s.PushNotification(Notification{ID: "n2", Message: "two", CreatedAt: now})

	if s.UnreadCount() != 2 {
		t.Fatalf("unread=%d, want 2", s.UnreadCount())
	}
	list := s.ListNotifications()
	if list[0].ID != "n2" {
		t.Fatalf("head=%s, want newest first", list[0].ID)
	}

	if !s.MarkRead("n1") {
		t.Fatalf("MarkRead(n1) returned false")
	}
	if s.MarkRead("n1") {
		t.Fatalf("second MarkRead(n1) returned true")
	}
	if s.UnreadCount() != 1 {
		t.Fatalf("unread=%d, want 1", s.UnreadCount())
	}

	s.MarkAllRead()
	if s.UnreadCount() != 0 {
		t.Fatalf("unread=%d after MarkAllRead, want 0", s.UnreadCount())
	}
	for _, n := range s.ListNotifications() {
		if !n.Read {
			t.Fatalf("notification %s still unread", n.ID)
		}
	}
}

func TestLoadingAndErrorFlags(t *testing.T) {
	s := New()
	s.SetLoading(KindEpic, true)
	if !s.Loading(KindEpic) || s.Loading(KindTask) {
		t.Fatalf("loading flags wrong: epic=%v task=%v", s.Loading(KindEpic), s.Loading(KindTask))
	}
	s.SetError(KindEpic, "boom")
	if s.Error(KindEpic) != "boom" {
		t.Fatalf("error=%q, want boom", s.Error(KindEpic))
	}
	s.SetError(KindEpic, "")
	if s.Error(KindEpic) != "" {
		t.Fatalf("error flag not cleared")
	}
}
