package engine

import (
	"math"
	"sort"
	"time"

	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

// Derived metrics are pure functions of current entity state. Commands call
// them synchronously after any mutation that changes an epic's linked-sprint
// set or a sprint's points, so derived fields can never be mutated
// independently of their inputs.

// SprintProgress returns completed/total as a 0-100 percentage, rounded and
// clamped. Zero total points means zero progress, never a division.
func SprintProgress(completedPoints, totalPoints int) int {
	if totalPoints <= 0 {
		return 0
	}
	p := int(math.Round(float64(completedPoints) / float64(totalPoints) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// RecomputeEpic refreshes progress, sprintCount and completedSprints from the
// currently linked sprints. The three are always written together.
func RecomputeEpic(e *store.Epic, linked []store.Sprint) {
	e.SprintCount = len(e.SprintIDs)
	if len(linked) == 0 {
		e.Progress = 0
		e.CompletedSprints = 0
		return
	}
	sum := 0
	completed := 0
	for _, sp := range linked {
		sum += sp.Progress
		if sp.Status == string(SprintCompleted) {
			completed++
		}
	}
	e.Progress = int(math.Round(float64(sum) / float64(len(linked))))
	e.CompletedSprints = completed
}

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendFlat    Trend = "flat"
	TrendUnknown Trend = "unknown"
)

type VelocityStats struct {
	Average int
	Trend   Trend
	Samples []store.Sprint // completed sprints with velocity, endDate ascending
}

// Velocity aggregates completed sprints with velocity > 0, ordered by end
// date ascending. The trend compares the last two samples; fewer than two
// means unknown.
func Velocity(sprints []store.Sprint) VelocityStats {
	var samples []store.Sprint
	for _, sp := range sprints {
		if sp.Status == string(SprintCompleted) && sp.Velocity > 0 {
			samples = append(samples, sp)
		}
	}
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].EndDate.Before(samples[j].EndDate)
	})

	stats := VelocityStats{Trend: TrendUnknown, Samples: samples}
	if len(samples) == 0 {
		return stats
	}
	sum := 0
	for _, sp := range samples {
		sum += sp.Velocity
	}
	stats.Average = int(math.Round(float64(sum) / float64(len(samples))))
	if len(samples) >= 2 {
		last := samples[len(samples)-1].Velocity
		prev := samples[len(samples)-2].Velocity
		switch {
		case last > prev:
			stats.Trend = TrendUp
		case last < prev:
			stats.Trend = TrendDown
		default:
			stats.Trend = TrendFlat
		}
	}
	return stats
}

type BurndownPoint struct {
	Day    int
	Date   time.Time
	Ideal  int
	Actual int
}

// Burndown produces one point per calendar day from start to end inclusive.
// The actual line is a linear approximation driven by the sprint's current
// overall progress — no per-day snapshots are kept. A same-day sprint yields
// a single day-0 point holding the full total.
func Burndown(totalPoints int, start, end time.Time, progress int) []BurndownPoint {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days <= 0 {
		return []BurndownPoint{{Day: 0, Date: start, Ideal: totalPoints, Actual: totalPoints}}
	}

	total := float64(totalPoints)
	done := float64(progress) / 100 * total
	points := make([]BurndownPoint, 0, days+1)
	for i := 0; i <= days; i++ {
		frac := float64(i) / float64(days)
		ideal := math.Max(0, total-total*frac)
		actual := math.Max(0, total-done*frac)
		points = append(points, BurndownPoint{
			Day:    i,
			Date:   start.AddDate(0, 0, i),
			Ideal:  int(math.Round(ideal)),
			Actual: int(math.Round(actual)),
		})
	}
	return points
}

// SprintBurndown is the single-sprint view helper: it resolves the sprint and
// derives its curve from current points and progress.
func (s *Service) SprintBurndown(sprintID string) ([]BurndownPoint, error) {
	sp, ok := s.store.GetSprint(sprintID)
	if !ok {
		return nil, NotFoundError{Kind: "sprint", ID: sprintID}
	}
	return Burndown(sp.TotalPoints, sp.StartDate, sp.EndDate, sp.Progress), nil
}

// VelocityHistory aggregates velocity over the sprints in scope.
func (s *Service) VelocityHistory(scope string) VelocityStats {
	return Velocity(s.store.ListSprints(scope))
}
