package progress

import (
	"strings"

	"github.com/formcoach/backend/internal/progress/stats"
)

type MilestoneStatus string

const (
	MilestoneLocked     MilestoneStatus = "locked"
	MilestoneAvailable  MilestoneStatus = "available"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

// MilestoneDefinition is a static achievement gate. Definitions are
// ordered, the order defines the unlock sequence.
type MilestoneDefinition struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Threshold        int      `json:"threshold"`
	ScoreRequirement float64  `json:"scoreRequirement"`
	Reward           string   `json:"reward"`
	Tips             []string `json:"tips"`
}

// MilestoneState is derived, recomputed from scratch on every call.
type MilestoneState struct {
	MilestoneID     string          `json:"milestoneId"`
	Status          MilestoneStatus `json:"status"`
	Progress        float64         `json:"progress"`
	CurrentValue    int             `json:"currentValue"`
	IsNewlyUnlocked bool            `json:"isNewlyUnlocked"`
}

// Unlock marks a milestone transitioning to completed on this
// recomputation. It carries only deterministic fields, the service layer
// enriches it into a published event.
type Unlock struct {
	MilestoneID string `json:"milestoneId"`
	Title       string `json:"title"`
	Reward      string `json:"reward"`
}

// milestoneCounters are the sample aggregates the per-milestone rules
// key off.
type milestoneCounters struct {
	totalSessions      int
	scores             []float64
	bestScore          float64
	averageScore       float64
	improvementStreak  int
	consistentSessions int
}

// ComputeMilestones is a pure fold over the milestone definitions:
// (prevStates, samples) -> (newStates, unlocks). The caller owns the
// previous state snapshot (nil on first invocation), the engine holds no
// memory of its own, so concurrent runs for different users are safe.
func ComputeMilestones(
	definitions []MilestoneDefinition,
	prevStates []MilestoneState,
	samples []Sample,
) ([]MilestoneState, []Unlock) {
	states := make([]MilestoneState, 0, len(definitions))

	if len(samples) == 0 {
		for _, def := range definitions {
			states = append(states, MilestoneState{
				MilestoneID: def.ID,
				Status:      MilestoneLocked,
			})
		}
		return states, nil
	}

	counters := countersFor(samples)

	prevByID := make(map[string]MilestoneState, len(prevStates))
	for _, prev := range prevStates {
		prevByID[prev.MilestoneID] = prev
	}

	var unlocks []Unlock
	for i, def := range definitions {
		currentValue := currentValueFor(def, counters)

		progress := float64(100)
		if def.Threshold > 0 {
			progress = float64(currentValue) / float64(def.Threshold) * 100
			if progress > 100 {
				progress = 100
			}
		}

		prevCompleted := i == 0 || states[i-1].Status == MilestoneCompleted
		prev, seenBefore := prevByID[def.ID]

		var status MilestoneStatus
		switch {
		case currentValue >= def.Threshold && counters.bestScore >= def.ScoreRequirement:
			status = MilestoneCompleted
		case seenBefore && prev.Status == MilestoneCompleted:
			// a once-earned achievement never reverts, even when a
			// streak or consistency counter later drops below threshold
			status = MilestoneCompleted
		case progress > 0 && prevCompleted:
			status = MilestoneInProgress
		case prevCompleted:
			status = MilestoneAvailable
		default:
			status = MilestoneLocked
		}

		state := MilestoneState{
			MilestoneID:  def.ID,
			Status:       status,
			Progress:     progress,
			CurrentValue: currentValue,
		}

		if status == MilestoneCompleted {
			if !seenBefore || prev.Status != MilestoneCompleted {
				state.IsNewlyUnlocked = true
				unlocks = append(unlocks, Unlock{
					MilestoneID: def.ID,
					Title:       def.Title,
					Reward:      def.Reward,
				})
			}
		}

		states = append(states, state)
	}

	return states, unlocks
}

func countersFor(samples []Sample) milestoneCounters {
	sorted := sortedByTime(samples)
	scores := scoresOf(sorted)
	average := stats.Mean(scores)

	consistent := 0
	for _, score := range scores {
		if score >= average-5 && score <= average+5 {
			consistent++
		}
	}

	return milestoneCounters{
		totalSessions:      len(samples),
		scores:             scores,
		bestScore:          bestScoreOf(samples),
		averageScore:       average,
		improvementStreak:  improvementStreak(scores),
		consistentSessions: consistent,
	}
}

// improvementStreak is the longest run of strictly increasing
// consecutive scores in chronological order.
func improvementStreak(orderedScores []float64) int {
	var longest, run int
	for i := 1; i < len(orderedScores); i++ {
		if orderedScores[i] > orderedScores[i-1] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// currentValueFor picks the progression rule from a token in the
// milestone id. Unknown tokens fall back to the session count rather
// than failing the whole list.
func currentValueFor(def MilestoneDefinition, counters milestoneCounters) int {
	switch {
	case strings.Contains(def.ID, "beginner"):
		return counters.totalSessions
	case strings.Contains(def.ID, "foundation"),
		strings.Contains(def.ID, "intermediate"),
		strings.Contains(def.ID, "advanced"),
		strings.Contains(def.ID, "expert"):
		count := 0
		for _, score := range counters.scores {
			if score >= def.ScoreRequirement {
				count++
			}
		}
		return count
	case strings.Contains(def.ID, "streak"):
		return counters.improvementStreak
	case strings.Contains(def.ID, "master"):
		return counters.consistentSessions
	default:
		return counters.totalSessions
	}
}
