package store

import "time"

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("seed: bad date " + s)
	}
	return t
}

func dp(s string) *time.Time {
	t := d(s)
	return &t
}

// Seed returns a store populated with the demo dataset: the Acme Corporation
// community tree, four epics, four sprints and five tasks. This stands in for
// the not-yet-built transport; a process restart resets everything.
func Seed() *Store {
	s := New()

	s.ReplaceCommunities([]Community{
		{
			ID: "main-1", Name: "Acme Corporation", Type: "main",
			Description: "Headquarters - Main Organization",
			MemberCount: 156, IsMain: true,
			ChildIDs:  []string{"branch-1", "branch-2", "dept-1"},
			CreatedAt: d("2024-01-15"),
		},
		{
			ID: "branch-1", Name: "Mumbai Branch", Type: "branch",
			Description: "Regional office in Mumbai",
			MemberCount: 48,
			ChildIDs:    []string{"team-1", "team-2", "team-3"},
			CreatedAt:   d("2024-03-20"),
		},
		{
			ID: "branch-2", Name: "Delhi Branch", Type: "branch",
			Description: "Regional office in Delhi",
			MemberCount: 62,
			ChildIDs:    []string{"team-4", "team-5", "team-6"},
			CreatedAt:   d("2024-04-10"),
		},
		{
			ID: "dept-1", Name: "Central IT Department", Type: "department",
			Description: "Cross-branch IT support",
			MemberCount: 20,
			CreatedAt:   d("2024-02-01"),
		},
		{ID: "team-1", Name: "Engineering Team", Type: "team", MemberCount: 22, CreatedAt: d("2024-03-20")},
		{ID: "team-2", Name: "Sales Team", Type: "team", MemberCount: 15, CreatedAt: d("2024-03-20")},
		{ID: "team-3", Name: "Design Team", Type: "team", MemberCount: 11, CreatedAt: d("2024-03-20")},
		{ID: "team-4", Name: "Product Team", Type: "team", MemberCount: 18, CreatedAt: d("2024-04-10")},
		{ID: "team-5", Name: "Marketing Team", Type: "team", MemberCount: 14, CreatedAt: d("2024-04-10")},
		{ID: "team-6", Name: "HR & Operations", Type: "team", MemberCount: 30, CreatedAt: d("2024-04-10")},
	})
	s.SetCurrentCommunity("main-1")

	s.ReplaceEpics([]Epic{
		{
			ID: "epic-1", Title: "AI-Powered Task Intelligence Platform",
			Description: "Build core AI features: priority prediction, workload balancer, risk alerts",
			Status:      "in_progress", Color: "indigo",
			StartDate: d("2025-09-01"), TargetDate: d("2026-03-31"),
			CommunityID: "branch-1",
			Progress:    65, SprintCount: 3, CompletedSprints: 2,
		},
		{
			ID: "epic-2", Title: "Enterprise Security & Compliance",
			Description: "Implement JWT auth, RBAC, audit logs, data isolation",
			Status:      "in_progress", Color: "purple",
			StartDate: d("2025-10-01"), TargetDate: d("2026-01-15"),
			CommunityID: "main-1",
			Progress:    80, SprintCount: 2, CompletedSprints: 1,
		},
		{
			ID: "epic-3", Title: "Multi-Branch Collaboration System",
			Description: "Hierarchical communities, cross-team visibility, invite system",
			Status:      "planned", Color: "blue",
			StartDate: d("2026-01-01"), TargetDate: d("2026-06-30"),
			CommunityID: "main-1",
			Progress:    15, SprintCount: 4, CompletedSprints: 0,
		},
		{
			ID: "epic-4", Title: "Mobile App Launch (React Native)",
			Description: "Native iOS/Android apps with voice task creation",
			Status:      "planned", Color: "green",
			StartDate: d("2026-04-01"), TargetDate: d("2026-12-31"),
			CommunityID: "branch-2",
			Progress:    0, SprintCount: 6, CompletedSprints: 0,
		},
	})

	s.ReplaceSprints([]Sprint{
		{
			ID: "sprint-1", Name: "Sprint 22 — Auth Hardening",
			Goal: "Close out session handling and token refresh work",
			Type: "weekly", Status: "completed",
			StartDate: d("2025-11-03"), EndDate: d("2025-11-14"),
			CommunityID: "branch-1",
			Velocity:    48, CompletedPoints: 48, TotalPoints: 50, Progress: 96,
			Retrospective: "Token refresh edge cases took longer than planned; estimation was otherwise solid.",
		},
		{
			ID: "sprint-2", Name: "Sprint 23 — Dashboard Widgets",
			Goal: "Ship velocity and insight widgets",
			Type: "weekly", Status: "completed",
			StartDate: d("2025-11-17"), EndDate: d("2025-11-28"),
			CommunityID: "branch-1",
			Velocity:    52, CompletedPoints: 52, TotalPoints: 52, Progress: 100,
			Retrospective: "Best sprint so far. Widget library paid off.",
		},
		{
			ID: "sprint-3", Name: "Sprint 24 — Risk Predictor",
			Goal: "First cut of the deadline risk predictor",
			Type: "monthly", Status: "active",
			StartDate: d("2025-12-01"), EndDate: d("2025-12-26"),
			CommunityID: "branch-1",
			CompletedPoints: 30, TotalPoints: 60, Progress: 50,
			WeeklySprints: []WeeklySprint{
				{ID: "sprint-3-w1", Name: "Week 1 — Data pipeline", Progress: 100},
				{ID: "sprint-3-w2", Name: "Week 2 — Model scaffold", Progress: 70},
				{ID: "sprint-3-w3", Name: "Week 3 — API endpoint", Progress: 20},
				{ID: "sprint-3-w4", Name: "Week 4 — UI integration", Progress: 0},
			},
		},
		{
			ID: "sprint-4", Name: "Sprint 25 — Mobile Spike",
			Goal: "Evaluate React Native build pipeline",
			Type: "weekly", Status: "planned",
			StartDate: d("2026-01-05"), EndDate: d("2026-01-16"),
			CommunityID: "branch-2",
			TotalPoints: 40,
		},
	})

	s.ReplaceTasks([]Task{
		{
			ID: "1", Title: "Fix authentication timeout issue",
			Description: "Users are being logged out too quickly in production.",
			Priority:    "High", TaskLevel: "Hard", Category: "Bug", Status: "inProgress",
			Assignee: "John Doe", DueDate: dp("2025-12-30"), EstimatedHours: 8,
			StoryPoints: 8, CommunityID: "branch-1",
			Tags:      []string{"auth", "security", "urgent"},
			CreatedAt: d("2025-12-20"),
		},
		{
			ID: "2", Title: "Implement AI deadline risk predictor",
			Description: "Build backend endpoint for AI risk analysis.",
			Priority:    "High", TaskLevel: "Hard", Category: "Feature", Status: "todo",
			Assignee: "Jane Smith", DueDate: dp("2026-01-15"), EstimatedHours: 20,
			StoryPoints: 13, CommunityID: "branch-1",
			Tags:      []string{"AI", "backend", "priority"},
			CreatedAt: d("2025-12-22"),
		},
		{
			ID: "3", Title: "Design new dashboard widgets",
			Description: "Create mockups for AI insights and sprint velocity.",
			Priority:    "Medium", TaskLevel: "Medium", Category: "Design", Status: "review",
			Assignee: "Alice Chen", DueDate: dp("2025-12-28"), EstimatedHours: 12,
			StoryPoints: 5, CommunityID: "branch-1",
			Tags:      []string{"UI/UX", "dashboard"},
			CreatedAt: d("2025-12-18"),
		},
		{
			ID: "4", Title: "Write user documentation for Kanban view",
			Description: "Document drag-and-drop, filters, and views.",
			Priority:    "Low", TaskLevel: "Easy", Category: "Documentation", Status: "done",
			Assignee: "Bob Wilson", DueDate: dp("2025-12-25"), EstimatedHours: 6,
			StoryPoints: 3, CommunityID: "branch-2",
			Tags:      []string{"docs", "onboarding"},
			CreatedAt: d("2025-12-10"),
		},
		{
			ID: "5", Title: "Set up CI/CD pipeline for frontend",
			Description: "Automate builds and deployments.",
			Priority:    "Medium", TaskLevel: "Medium", Category: "Deployment", Status: "backlog",
			EstimatedHours: 10, StoryPoints: 8, CommunityID: "branch-1",
			Tags:      []string{"devops", "infrastructure"},
			CreatedAt: d("2025-12-15"),
		},
	})

	return s
}

// Members lists the demo roster used for assignment and mention suggestions.
func Members() []string {
	return []string{"John Doe", "Jane Smith", "Alice Chen", "Bob Wilson"}
}
