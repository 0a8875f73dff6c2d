package training

import (
	"context"
	"slices"
)

var defaultCategories = []string{
	"Chest", "Back", "Shoulders", "Biceps", "Triceps",
	"Quads", "Hamstrings", "Glutes", "Calves", "Core", "Forearms",
	"Full Body", "Upper Body", "Lower Body",
	"Push", "Pull", "Legs",
	"Compound", "Isolation",
}

var defaultExercises = []struct {
	name       string
	categories []string
}{
	{"Bench Press (Barbell)", []string{"Chest", "Triceps", "Shoulders", "Compound", "Upper Body", "Push"}},
	{"Pull Up", []string{"Back", "Biceps", "Forearms", "Compound", "Upper Body", "Pull"}},
	{"Deadlift", []string{"Back", "Hamstrings", "Glutes", "Forearms", "Compound", "Full Body"}},
	{"Squat (Barbell)", []string{"Quads", "Glutes", "Hamstrings", "Compound", "Lower Body", "Legs"}},
	{"Overhead Press (Barbell)", []string{"Shoulders", "Triceps", "Compound", "Upper Body", "Push"}},
	{"Bent-Over Row (Barbell)", []string{"Back", "Biceps", "Compound", "Upper Body", "Pull"}},
	{"Bicep Curl (Dumbbell)", []string{"Biceps", "Isolation", "Upper Body", "Pull"}},
	{"Tricep Extension (Dumbbell)", []string{"Triceps", "Isolation", "Upper Body", "Push"}},
	{"Leg Press", []string{"Quads", "Glutes", "Hamstrings", "Compound", "Lower Body", "Legs"}},
	{"Lateral Raise (Dumbbell)", []string{"Shoulders", "Isolation", "Upper Body", "Push"}},
	{"Romanian Deadlift (Barbell)", []string{"Hamstrings", "Glutes", "Isolation", "Lower Body", "Legs"}},
	{"Plank", []string{"Core", "Isolation", "Full Body"}},
}

var defaultSchemes = []Scheme{
	{Name: "5x5 Strength", TargetReps: []int{5, 5, 5, 5, 5}, TargetWeights: []float64{0, 0, 0, 0, 0}},
	{Name: "3x10 Hypertrophy", TargetReps: []int{10, 10, 10}, TargetWeights: []float64{0, 0, 0}},
	{Name: "4x8 Standard", TargetReps: []int{8, 8, 8, 8}, TargetWeights: []float64{0, 0, 0, 0}},
	{Name: "3x12 Accessory", TargetReps: []int{12, 12, 12}, TargetWeights: []float64{0, 0, 0}},
	{Name: "Pyramid (10-8-6)", TargetReps: []int{10, 8, 6}, TargetWeights: []float64{0, 0, 0}},
}

type SeedResult struct {
	Categories int `json:"categories"`
	Exercises  int `json:"exercises"`
	Schemes    int `json:"schemes"`
}

// SeedLibrary loads the default catalog. Running it again changes nothing.
func (s *Service) SeedLibrary(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	err := s.run(ctx, "seed library", func(ctx context.Context, tx Tx) error {
		now := s.stamp()

		categoryIDs := make(map[string]int64, len(defaultCategories))
		for _, name := range defaultCategories {
			c, err := tx.UpsertCategory(ctx, name, now)
			if err != nil {
				return err
			}
			categoryIDs[name] = c.ID
		}

		for _, de := range defaultExercises {
			e, err := tx.UpsertExercise(ctx, de.name, "", now)
			if err != nil {
				return err
			}
			for _, category := range de.categories {
				if slices.Contains(e.Categories, category) {
					continue
				}
				if err := tx.AttachCategory(ctx, e.ID, categoryIDs[category]); err != nil {
					return err
				}
			}
		}

		for _, sc := range defaultSchemes {
			if _, err := tx.UpsertScheme(ctx, sc, now); err != nil {
				return err
			}
		}

		res = SeedResult{
			Categories: len(defaultCategories),
			Exercises:  len(defaultExercises),
			Schemes:    len(defaultSchemes),
		}
		return nil
	})
	return res, err
}
