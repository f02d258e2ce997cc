package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
	"github.com/Shubham12sharma/Assign-Alert/internal/mention"
	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

const dateLayout = "2006-01-02"

// writeError maps engine error kinds onto HTTP statuses. Commands never
// panic past their boundary, so anything else is a plain 500.
func writeError(c *gin.Context, err error) {
	var (
		notFound     engine.NotFoundError
		validation   engine.ValidationError
		badStatus    engine.InvalidStatusError
		emptyComment engine.EmptyCommentError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "message": err.Error()})
	case errors.As(err, &badStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status", "message": err.Error()})
	case errors.As(err, &emptyComment):
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty_comment", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": err.Error()})
	}
}

func scopeOf(c *gin.Context) string {
	return c.DefaultQuery("scope", store.ScopeAll)
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListCommunities(c *gin.Context) {
	list, err := s.svc.FetchCommunities().Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleListEpics(c *gin.Context) {
	list, err := s.svc.FetchEpics(scopeOf(c)).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createEpicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Color       string `json:"color"`
	StartDate   string `json:"startDate"`
	TargetDate  string `json:"targetDate"`
	CommunityID string `json:"communityId"`
}

func (s *Server) handleCreateEpic(c *gin.Context) {
	var req createEpicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	start, _ := parseDate(req.StartDate)
	target, _ := parseDate(req.TargetDate)
	epic, err := s.svc.CreateEpic(engine.CreateEpicInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      engine.EpicStatus(req.Status),
		Color:       req.Color,
		StartDate:   start,
		TargetDate:  target,
		CommunityID: req.CommunityID,
	}).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, epic)
}

type linkRequest struct {
	SprintID string `json:"sprintId"`
	Link     bool   `json:"link"`
}

func (s *Server) handleLinkSprint(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	epic, err := s.svc.LinkSprintToEpic(c.Param("id"), req.SprintID, req.Link).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, epic)
}

func (s *Server) handleListSprints(c *gin.Context) {
	list, err := s.svc.FetchSprints(scopeOf(c)).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createSprintRequest struct {
	Name        string `json:"name"`
	Goal        string `json:"goal"`
	Type        string `json:"type"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	CommunityID string `json:"communityId"`
	TotalPoints int    `json:"totalPoints"`
}

func (s *Server) handleCreateSprint(c *gin.Context) {
	var req createSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	start, _ := parseDate(req.StartDate)
	end, _ := parseDate(req.EndDate)
	sprint, err := s.svc.CreateSprint(engine.CreateSprintInput{
		Name:        req.Name,
		Goal:        req.Goal,
		Type:        engine.SprintType(req.Type),
		StartDate:   start,
		EndDate:     end,
		CommunityID: req.CommunityID,
		TotalPoints: req.TotalPoints,
	}).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sprint)
}

type updateSprintRequest struct {
	Name            *string `json:"name"`
	Goal            *string `json:"goal"`
	Type            *string `json:"type"`
	Status          *string `json:"status"`
	StartDate       *string `json:"startDate"`
	EndDate         *string `json:"endDate"`
	CompletedPoints *int    `json:"completedPoints"`
	TotalPoints     *int    `json:"totalPoints"`
	Velocity        *int    `json:"velocity"`
	Retrospective   *string `json:"retrospective"`
}

func (s *Server) handleUpdateSprint(c *gin.Context) {
	var req updateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	patch := engine.UpdateSprintInput{
		Name:            req.Name,
		Goal:            req.Goal,
		CompletedPoints: req.CompletedPoints,
		TotalPoints:     req.TotalPoints,
		Velocity:        req.Velocity,
		Retrospective:   req.Retrospective,
	}
	if req.Type != nil {
		t := engine.SprintType(*req.Type)
		patch.Type = &t
	}
	if req.Status != nil {
		st := engine.SprintStatus(*req.Status)
		patch.Status = &st
	}
	if req.StartDate != nil {
		if t, ok := parseDate(*req.StartDate); ok {
			patch.StartDate = &t
		}
	}
	if req.EndDate != nil {
		if t, ok := parseDate(*req.EndDate); ok {
			patch.EndDate = &t
		}
	}
	sprint, err := s.svc.UpdateSprint(c.Param("id"), patch).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sprint)
}

func (s *Server) handleBurndown(c *gin.Context) {
	points, err := s.svc.SprintBurndown(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (s *Server) handleListTasks(c *gin.Context) {
	list, err := s.svc.FetchTasks(scopeOf(c)).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createTaskRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	TaskLevel      string   `json:"taskLevel"`
	Category       string   `json:"category"`
	Status         string   `json:"status"`
	Assignee       string   `json:"assignee"`
	DueDate        string   `json:"dueDate"`
	EstimatedHours int      `json:"estimatedHours"`
	StoryPoints    int      `json:"storyPoints"`
	CommunityID    string   `json:"communityId"`
	IsPersonal     bool     `json:"isPersonal"`
	SprintID       string   `json:"sprintId"`
	EpicID         string   `json:"epicId"`
	Tags           []string `json:"tags"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	in := engine.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       engine.Priority(req.Priority),
		TaskLevel:      engine.TaskLevel(req.TaskLevel),
		Category:       engine.Category(req.Category),
		Status:         engine.TaskStatus(req.Status),
		Assignee:       req.Assignee,
		EstimatedHours: req.EstimatedHours,
		StoryPoints:    req.StoryPoints,
		CommunityID:    req.CommunityID,
		IsPersonal:     req.IsPersonal,
		SprintID:       req.SprintID,
		EpicID:         req.EpicID,
		Tags:           req.Tags,
	}
	if due, ok := parseDate(req.DueDate); ok {
		in.DueDate = &due
	}
	task, err := s.svc.CreateTask(in).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

type updateTaskRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Priority       *string  `json:"priority"`
	TaskLevel      *string  `json:"taskLevel"`
	Category       *string  `json:"category"`
	Assignee       *string  `json:"assignee"`
	DueDate        *string  `json:"dueDate"`
	EstimatedHours *int     `json:"estimatedHours"`
	StoryPoints    *int     `json:"storyPoints"`
	Tags           []string `json:"tags"`
	SprintID       *string  `json:"sprintId"`
	EpicID         *string  `json:"epicId"`
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	patch := engine.UpdateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		Assignee:       req.Assignee,
		EstimatedHours: req.EstimatedHours,
		StoryPoints:    req.StoryPoints,
		Tags:           req.Tags,
		SprintID:       req.SprintID,
		EpicID:         req.EpicID,
	}
	if req.Priority != nil {
		p := engine.Priority(*req.Priority)
		patch.Priority = &p
	}
	if req.TaskLevel != nil {
		l := engine.TaskLevel(*req.TaskLevel)
		patch.TaskLevel = &l
	}
	if req.Category != nil {
		cat := engine.Category(*req.Category)
		patch.Category = &cat
	}
	if req.DueDate != nil {
		if t, ok := parseDate(*req.DueDate); ok {
			patch.DueDate = &t
		}
	}
	task, err := s.svc.UpdateTask(c.Param("id"), patch).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateTaskStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	task, err := s.svc.UpdateTaskStatus(c.Param("id"), engine.TaskStatus(req.Status)).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type addCommentRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleAddComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	res, err := s.svc.AddComment(c.Param("id"), req.Text).Settle()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (s *Server) handleListNotifications(c *gin.Context) {
	st := s.svc.Store()
	c.JSON(http.StatusOK, gin.H{
		"notifications": st.ListNotifications(),
		"unreadCount":   st.UnreadCount(),
	})
}

func (s *Server) handleMarkRead(c *gin.Context) {
	s.svc.MarkNotificationRead(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"unreadCount": s.svc.Store().UnreadCount()})
}

func (s *Server) handleMarkAllRead(c *gin.Context) {
	s.svc.MarkAllNotificationsRead()
	c.JSON(http.StatusOK, gin.H{"unreadCount": 0})
}

func (s *Server) handleVelocity(c *gin.Context) {
	stats := s.svc.VelocityHistory(scopeOf(c))
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleSuggestMembers(c *gin.Context) {
	c.JSON(http.StatusOK, mention.Suggest(c.Query("q"), s.members))
}
