// Package server exposes one HTTP endpoint per command, returning entity
// payloads or structured errors. It is a thin shell over the engine: handlers
// issue a command, settle it, and translate the outcome.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
)

type Server struct {
	svc     *engine.Service
	members []string
	router  *gin.Engine
}

func New(svc *engine.Service, members []string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{svc: svc, members: members, router: router}

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/communities", s.handleListCommunities)

		api.GET("/epics", s.handleListEpics)
		api.POST("/epics", s.handleCreateEpic)
		api.POST("/epics/:id/links", s.handleLinkSprint)

		api.GET("/sprints", s.handleListSprints)
		api.POST("/sprints", s.handleCreateSprint)
		api.PATCH("/sprints/:id", s.handleUpdateSprint)
		api.GET("/sprints/:id/burndown", s.handleBurndown)

		api.GET("/tasks", s.handleListTasks)
		api.POST("/tasks", s.handleCreateTask)
		api.PATCH("/tasks/:id", s.handleUpdateTask)
		api.PATCH("/tasks/:id/status", s.handleUpdateTaskStatus)
		api.POST("/tasks/:id/comments", s.handleAddComment)

		api.GET("/notifications", s.handleListNotifications)
		api.POST("/notifications/:id/read", s.handleMarkRead)
		api.POST("/notifications/read-all", s.handleMarkAllRead)

		api.GET("/velocity", s.handleVelocity)
		api.GET("/members", s.handleSuggestMembers)
	}

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() *gin.Engine { return s.router }

func (s *Server) Run(addr string) error {
	slog.Info("listening", "addr", addr)
	return s.router.Run(addr)
}
