package progress_test

import (
	"testing"

	"github.com/formcoach/backend/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMilestones_EmptySamples(t *testing.T) {
	definitions := progress.MilestoneCatalog("squat")

	states, unlocks := progress.ComputeMilestones(definitions, nil, nil)

	require.Len(t, states, len(definitions))
	assert.Empty(t, unlocks)
	for _, state := range states {
		assert.Equal(t, progress.MilestoneLocked, state.Status)
		assert.Equal(t, float64(0), state.Progress)
		assert.Equal(t, 0, state.CurrentValue)
		assert.False(t, state.IsNewlyUnlocked)
	}
}

func TestComputeMilestones_BeginnerProgress(t *testing.T) {
	definitions := progress.MilestoneCatalog("squat")
	samples := sampleSeries("squat", 40, 45)

	states, unlocks := progress.ComputeMilestones(definitions, nil, samples)
	require.Len(t, states, len(definitions))
	assert.Empty(t, unlocks)

	beginner := states[0]
	assert.Equal(t, "squat-beginner", beginner.MilestoneID)
	assert.Equal(t, progress.MilestoneInProgress, beginner.Status)
	assert.Equal(t, 2, beginner.CurrentValue)
	assert.InDelta(t, 40, beginner.Progress, 1e-9)

	// everything behind an uncompleted milestone stays locked
	for _, state := range states[1:] {
		assert.Equal(t, progress.MilestoneLocked, state.Status)
	}
}

func TestComputeMilestones_UnlockAndStreak(t *testing.T) {
	definitions := progress.MilestoneCatalog("squat")
	// 6 strictly increasing sessions: improvement streak of 5
	samples := sampleSeries("squat", 50, 60, 75, 80, 90, 95)

	states, unlocks := progress.ComputeMilestones(definitions, nil, samples)

	statesByID := make(map[string]progress.MilestoneState)
	for _, state := range states {
		statesByID[state.MilestoneID] = state
	}

	beginner := statesByID["squat-beginner"]
	assert.Equal(t, progress.MilestoneCompleted, beginner.Status)
	assert.True(t, beginner.IsNewlyUnlocked)
	assert.Equal(t, 6, beginner.CurrentValue)
	assert.InDelta(t, 100, beginner.Progress, 1e-9)

	streak := statesByID["squat-streak"]
	assert.Equal(t, 5, streak.CurrentValue)
	assert.Equal(t, progress.MilestoneCompleted, streak.Status)

	var unlockIDs []string
	for _, unlock := range unlocks {
		unlockIDs = append(unlockIDs, unlock.MilestoneID)
	}
	assert.Contains(t, unlockIDs, "squat-beginner")
	assert.Contains(t, unlockIDs, "squat-streak")
}

func TestComputeMilestones_UnlockOnlyOnTransition(t *testing.T) {
	definitions := progress.MilestoneCatalog("squat")
	samples := sampleSeries("squat", 50, 60, 75, 80, 90, 95)

	first, firstUnlocks := progress.ComputeMilestones(definitions, nil, samples)
	require.NotEmpty(t, firstUnlocks)

	// same samples, previous snapshot provided: no new unlock events
	second, secondUnlocks := progress.ComputeMilestones(definitions, first, samples)
	assert.Empty(t, secondUnlocks)
	for _, state := range second {
		assert.False(t, state.IsNewlyUnlocked)
	}
}

func TestComputeMilestones_SequentialGating(t *testing.T) {
	definitions := progress.MilestoneCatalog("deadlift")

	histories := [][]progress.Sample{
		nil,
		sampleSeries("deadlift", 30),
		sampleSeries("deadlift", 55, 58, 61, 64, 67),
		sampleSeries("deadlift", 62, 65, 68, 71, 74, 77, 80, 76, 82, 85),
		sampleSeries("deadlift",
			62, 65, 68, 71, 74, 77, 80, 76, 82, 85,
			84, 86, 83, 88, 90, 87, 91, 89, 92, 94,
		),
	}

	for _, samples := range histories {
		states, _ := progress.ComputeMilestones(definitions, nil, samples)
		for i, state := range states {
			if state.Status == progress.MilestoneAvailable || state.Status == progress.MilestoneInProgress {
				if i > 0 {
					assert.Equal(t, progress.MilestoneCompleted, states[i-1].Status,
						"milestone %s reachable while predecessor not completed", state.MilestoneID)
				}
			}
		}
	}
}

func TestComputeMilestones_CompletedNeverReverts(t *testing.T) {
	definitions := progress.MilestoneCatalog("squat")
	samples := sampleSeries("squat", 50, 60, 75, 80, 90, 95)

	states, _ := progress.ComputeMilestones(definitions, nil, samples)

	// more sessions arrive, breaking the improvement streak
	grown := append(samples, sampleSeries("squat", 40, 42, 41)...)
	next, _ := progress.ComputeMilestones(definitions, states, grown)

	nextByID := make(map[string]progress.MilestoneState)
	for _, state := range next {
		nextByID[state.MilestoneID] = state
	}
	for _, state := range states {
		if state.Status != progress.MilestoneCompleted {
			continue
		}
		assert.Equal(t, progress.MilestoneCompleted, nextByID[state.MilestoneID].Status,
			"milestone %s reverted", state.MilestoneID)
	}
}

func TestComputeMilestones_ScoreRequirementGate(t *testing.T) {
	definitions := []progress.MilestoneDefinition{
		{
			ID:               "squat-foundation",
			Title:            "Squat Foundation",
			Threshold:        3,
			ScoreRequirement: 60,
		},
	}

	// enough qualifying sessions but the threshold count not reached
	samples := sampleSeries("squat", 62, 64)
	states, _ := progress.ComputeMilestones(definitions, nil, samples)
	require.Len(t, states, 1)
	assert.Equal(t, progress.MilestoneInProgress, states[0].Status)
	assert.Equal(t, 2, states[0].CurrentValue)

	// low scores do not count toward a score-gated milestone
	samples = sampleSeries("squat", 30, 35, 40, 45)
	states, _ = progress.ComputeMilestones(definitions, nil, samples)
	assert.Equal(t, 0, states[0].CurrentValue)
	assert.Equal(t, progress.MilestoneAvailable, states[0].Status)
}

func TestComputeMilestones_UnknownTokenFallsBack(t *testing.T) {
	definitions := []progress.MilestoneDefinition{
		{
			ID:        "squat-legend",
			Title:     "Squat Legend",
			Threshold: 3,
		},
	}

	samples := sampleSeries("squat", 20, 25, 30)
	states, _ := progress.ComputeMilestones(definitions, nil, samples)
	require.Len(t, states, 1)
	// unknown id token: falls back to counting total sessions
	assert.Equal(t, 3, states[0].CurrentValue)
	assert.Equal(t, progress.MilestoneCompleted, states[0].Status)
}

func TestComputeMilestones_GenericCatalogForUnknownExercise(t *testing.T) {
	definitions := progress.MilestoneCatalog("handstand")
	require.NotEmpty(t, definitions)
	assert.Contains(t, definitions[0].ID, "generic")
}
