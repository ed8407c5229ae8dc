package progress

import "fmt"

// exerciseNames maps the exercise types tracked by the mobile app to
// display names used in milestone titles. Unknown types get the generic
// milestone ladder.
var exerciseNames = map[string]string{
	"squat":          "Squat",
	"deadlift":       "Deadlift",
	"bench_press":    "Bench Press",
	"overhead_press": "Overhead Press",
	"lunge":          "Lunge",
}

// MilestoneCatalog returns the ordered milestone ladder for an exercise
// type, or the generic ladder when the exercise is not specifically
// tracked. The returned definitions are freshly built, callers may not
// share them across goroutines anyway since they are value types.
func MilestoneCatalog(exerciseType string) []MilestoneDefinition {
	name, ok := exerciseNames[exerciseType]
	if !ok {
		return milestoneLadder("generic", "Training")
	}
	return milestoneLadder(exerciseType, name)
}

func milestoneLadder(idPrefix, name string) []MilestoneDefinition {
	return []MilestoneDefinition{
		{
			ID:          idPrefix + "-beginner",
			Title:       fmt.Sprintf("%s Beginner", name),
			Description: fmt.Sprintf("Complete your first 5 %s sessions", name),
			Threshold:   5,
			Reward:      "Beginner badge",
			Tips: []string{
				"Focus on the movement pattern before adding intensity",
				"Record every session so your progress counts",
			},
		},
		{
			ID:               idPrefix + "-foundation",
			Title:            fmt.Sprintf("%s Foundation", name),
			Description:      "Score 60 or better in 10 sessions",
			Threshold:        10,
			ScoreRequirement: 60,
			Reward:           "Foundation badge",
			Tips: []string{
				"Slow down the eccentric phase for better control",
			},
		},
		{
			ID:               idPrefix + "-intermediate",
			Title:            fmt.Sprintf("%s Intermediate", name),
			Description:      "Score 70 or better in 15 sessions",
			Threshold:        15,
			ScoreRequirement: 70,
			Reward:           "Intermediate badge",
			Tips: []string{
				"Review the form feedback after every session",
			},
		},
		{
			ID:               idPrefix + "-streak",
			Title:            "On a Roll",
			Description:      "Improve your score 5 sessions in a row",
			Threshold:        5,
			ScoreRequirement: 75,
			Reward:           "Streak badge",
			Tips: []string{
				"Small, steady improvements beat occasional jumps",
			},
		},
		{
			ID:               idPrefix + "-advanced",
			Title:            fmt.Sprintf("%s Advanced", name),
			Description:      "Score 80 or better in 20 sessions",
			Threshold:        20,
			ScoreRequirement: 80,
			Reward:           "Advanced badge",
			Tips: []string{
				"Tighten up the weakest checkpoint from your analysis",
			},
		},
		{
			ID:               idPrefix + "-master",
			Title:            fmt.Sprintf("%s Master", name),
			Description:      "Stay within 5 points of your average for 10 sessions",
			Threshold:        10,
			ScoreRequirement: 80,
			Reward:           "Master badge",
			Tips: []string{
				"Consistency at high scores is the mark of mastery",
			},
		},
		{
			ID:               idPrefix + "-expert",
			Title:            fmt.Sprintf("%s Expert", name),
			Description:      "Score 90 or better in 25 sessions",
			Threshold:        25,
			ScoreRequirement: 90,
			Reward:           "Expert badge",
			Tips: []string{
				"Near-perfect form, session after session",
			},
		},
	}
}
