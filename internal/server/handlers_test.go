package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc := engine.NewService(store.Seed(), engine.Options{Latency: engine.NoLatency()})
	return New(svc, store.Members())
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
}

func TestListTasksScoped(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/api/tasks", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	var all []store.Task
	decode(t, w, &all)
	if len(all) != 5 {
		t.Fatalf("tasks=%d, want 5", len(all))
	}

	w = do(t, srv, http.MethodGet, "/api/tasks?scope=branch-2", "")
	var scoped []store.Task
	decode(t, w, &scoped)
	if len(scoped) != 1 || scoped[0].CommunityID != "branch-2" {
		t.Fatalf("scoped=%v, want single branch-2 task", scoped)
	}
}

func TestCreateTaskAndMentionFlow(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/tasks",
		`{"title":"Ship it","dueDate":"2026-01-20","tags":["@alice"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s, want 201", w.Code, w.Body.String())
	}
	var task store.Task
	decode(t, w, &task)
	if task.Status != "todo" || task.Priority != "Medium" {
		t.Fatalf("defaults=%s/%s", task.Status, task.Priority)
	}

	w = do(t, srv, http.MethodPost, "/api/tasks/"+task.ID+"/comments",
		`{"text":"looks good @Bob_Wilson"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("comment status=%d body=%s, want 201", w.Code, w.Body.String())
	}

	w = do(t, srv, http.MethodGet, "/api/notifications", "")
	var inbox struct {
		Notifications []store.Notification `json:"notifications"`
		UnreadCount   int                  `json:"unreadCount"`
	}
	decode(t, w, &inbox)
	if inbox.UnreadCount != 2 || len(inbox.Notifications) != 2 {
		t.Fatalf("inbox=%+v, want tag mention plus comment mention", inbox)
	}
	if inbox.Notifications[0].MentionedUser != "Bob_Wilson" {
		t.Fatalf("head mention=%q, want newest first", inbox.Notifications[0].MentionedUser)
	}

	w = do(t, srv, http.MethodPost, "/api/notifications/"+inbox.Notifications[0].ID+"/read", "")
	var read struct {
		UnreadCount int `json:"unreadCount"`
	}
	decode(t, w, &read)
	if read.UnreadCount != 1 {
		t.Fatalf("unread=%d after read, want 1", read.UnreadCount)
	}

	do(t, srv, http.MethodPost, "/api/notifications/read-all", "")
	w = do(t, srv, http.MethodGet, "/api/notifications", "")
	decode(t, w, &inbox)
	if inbox.UnreadCount != 0 {
		t.Fatalf("unread=%d after read-all, want 0", inbox.UnreadCount)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodPost, "/api/tasks", `{"title":"No due date"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["error"] != "validation_failed" {
		t.Fatalf("error=%q, want validation_failed", body["error"])
	}
}

func TestUpdateTaskStatusErrors(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPatch, "/api/tasks/1/status", `{"status":"archived"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400 for unknown status", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["error"] != "invalid_status" {
		t.Fatalf("error=%q, want invalid_status", body["error"])
	}

	w = do(t, srv, http.MethodPatch, "/api/tasks/ghost/status", `{"status":"done"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404 for unknown task", w.Code)
	}

	w = do(t, srv, http.MethodPatch, "/api/tasks/1/status", `{"status":"done"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s, want 200", w.Code, w.Body.String())
	}
	var task store.Task
	decode(t, w, &task)
	if task.Status != "done" {
		t.Fatalf("task status=%q, want done", task.Status)
	}
}

func TestEmptyCommentRejected(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodPost, "/api/tasks/1/comments", `{"text":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["error"] != "empty_comment" {
		t.Fatalf("error=%q, want empty_comment", body["error"])
	}
}

func TestLinkSprintUpdatesEpic(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/epics/epic-1/links",
		`{"sprintId":"sprint-2","link":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s, want 200", w.Code, w.Body.String())
	}
	var epic store.Epic
	decode(t, w, &epic)
	if epic.SprintCount != 1 || epic.Progress != 100 {
		t.Fatalf("epic count=%d progress=%d, want 1/100 from sprint-2", epic.SprintCount, epic.Progress)
	}

	w = do(t, srv, http.MethodPost, "/api/epics/epic-1/links",
		`{"sprintId":"ghost","link":true}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404 for unknown sprint", w.Code)
	}
}

func TestBurndownEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/api/sprints/sprint-3/burndown", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	var points []engine.BurndownPoint
	decode(t, w, &points)
	if len(points) == 0 || points[0].Actual != 60 {
		t.Fatalf("points=%v, want day 0 at full total", points)
	}

	w = do(t, srv, http.MethodGet, "/api/sprints/ghost/burndown", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}

func TestVelocityEndpoint(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/api/velocity?scope=branch-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	var stats engine.VelocityStats
	decode(t, w, &stats)
	if stats.Average != 50 || stats.Trend != engine.TrendUp {
		t.Fatalf("stats=%+v, want average 50 trending up", stats)
	}
}

func TestMemberSuggestEndpoint(t *testing.T) {
	srv := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/api/members?q=jane", "")
	var names []string
	decode(t, w, &names)
	if len(names) == 0 || names[0] != "Jane Smith" {
		t.Fatalf("names=%v, want Jane Smith first", names)
	}
}
