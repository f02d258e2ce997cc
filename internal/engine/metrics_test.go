package engine

import (
	"testing"
	"time"

	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

func TestSprintProgressClamps(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 60, 0},
		{30, 60, 50},
		{60, 60, 100},
		{1, 3, 33},
		{2, 3, 67},
		{80, 60, 100}, // over-delivery clamps
		{-5, 60, 0},
		{10, 0, 0}, // no points, no division
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := SprintProgress(c.completed, c.total); got != c.want {
			t.Fatalf("SprintProgress(%d,%d)=%d, want %d", c.completed, c.total, got, c.want)
		}
	}
}

func TestRecomputeEpic(t *testing.T) {
	e := store.Epic{SprintIDs: []string{"a", "b"}}
	linked := []store.Sprint{
		{Progress: 40, Status: "completed"},
		{Progress: 80, Status: "active"},
	}
	RecomputeEpic(&e, linked)
	if e.Progress != 60 || e.SprintCount != 2 || e.CompletedSprints != 1 {
		t.Fatalf("progress=%d count=%d completed=%d, want 60/2/1",
			e.Progress, e.SprintCount, e.CompletedSprints)
	}

	e.SprintIDs = nil
	RecomputeEpic(&e, nil)
	if e.Progress != 0 || e.SprintCount != 0 || e.CompletedSprints != 0 {
		t.Fatalf("empty recompute left %d/%d/%d, want zeros",
			e.Progress, e.SprintCount, e.CompletedSprints)
	}
}

func completedSprint(velocity int, end time.Time) store.Sprint {
	return store.Sprint{Status: "completed", Velocity: velocity, EndDate: end}
}

func TestVelocityTrend(t *testing.T) {
	d1 := day(2025, 1, 10)
	d2 := day(2025, 1, 24)
	d3 := day(2025, 2, 7)

	stats := Velocity([]store.Sprint{
		completedSprint(52, d2),
		completedSprint(48, d1),
		{Status: "active", Velocity: 99, EndDate: d3},   // not completed
		{Status: "completed", Velocity: 0, EndDate: d3}, // zero velocity
	})
	if len(stats.Samples) != 2 {
		t.Fatalf("samples=%d, want 2", len(stats.Samples))
	}
	if stats.Samples[0].Velocity != 48 || stats.Samples[1].Velocity != 52 {
		t.Fatalf("samples not ordered by end date: %v", stats.Samples)
	}
	if stats.Average != 50 || stats.Trend != TrendUp {
		t.Fatalf("average=%d trend=%s, want 50/up", stats.Average, stats.Trend)
	}

	down := Velocity([]store.Sprint{completedSprint(52, d1), completedSprint(48, d2)})
	if down.Trend != TrendDown {
		t.Fatalf("trend=%s, want down", down.Trend)
	}

	flat := Velocity([]store.Sprint{completedSprint(50, d1), completedSprint(50, d2)})
	if flat.Trend != TrendFlat {
		t.Fatalf("trend=%s, want flat", flat.Trend)
	}

	single := Velocity([]store.Sprint{completedSprint(50, d1)})
	if single.Trend != TrendUnknown || single.Average != 50 {
		t.Fatalf("single sample trend=%s average=%d, want unknown/50", single.Trend, single.Average)
	}

	empty := Velocity(nil)
	if empty.Trend != TrendUnknown || empty.Average != 0 {
		t.Fatalf("empty trend=%s average=%d, want unknown/0", empty.Trend, empty.Average)
	}
}

func TestBurndownShape(t *testing.T) {
	start := day(2025, 3, 3)
	end := day(2025, 3, 10) // 7 days

	points := Burndown(60, start, end, 50)
	if len(points) != 8 {
		t.Fatalf("points=%d, want 8 (day 0..7)", len(points))
	}
	first, last := points[0], points[len(points)-1]
	if first.Ideal != 60 || first.Actual != 60 {
		t.Fatalf("day 0 ideal=%d actual=%d, want full total", first.Ideal, first.Actual)
	}
	if last.Ideal != 0 {
		t.Fatalf("final ideal=%d, want 0", last.Ideal)
	}
	// 50% progress burns half the total over the full span.
	if last.Actual != 30 {
		t.Fatalf("final actual=%d, want 30", last.Actual)
	}
	if !last.Date.Equal(end) {
		t.Fatalf("final date=%s, want %s", last.Date, end)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Ideal > points[i-1].Ideal || points[i].Actual > points[i-1].Actual {
			t.Fatalf("burndown not monotonic at day %d: %+v", i, points[i])
		}
	}
}

func TestBurndownSameDaySprint(t *testing.T) {
	d := day(2025, 3, 3)
	points := Burndown(40, d, d, 100)
	if len(points) != 1 {
		t.Fatalf("points=%d, want single day-0 point", len(points))
	}
	if points[0].Ideal != 40 || points[0].Actual != 40 || points[0].Day != 0 {
		t.Fatalf("same-day point=%+v, want full total at day 0", points[0])
	}
}

func TestBurndownFullProgressEndsAtZero(t *testing.T) {
	points := Burndown(40, day(2025, 3, 3), day(2025, 3, 5), 100)
	if got := points[len(points)-1].Actual; got != 0 {
		t.Fatalf("final actual=%d, want 0 at 100%% progress", got)
	}
}
