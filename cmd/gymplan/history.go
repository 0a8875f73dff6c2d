package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/training"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newNextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the first planned workout not logged yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			next, err := a.service.NextWorkout(cmd.Context())
			out := cmd.OutOrStdout()
			if errors.Is(err, training.ErrNotFound) {
				fmt.Fprintln(out, "Every planned workout has been logged.")
				return nil
			}
			if err != nil {
				return err
			}
			faint := color.New(color.Faint)
			color.New(color.Bold).Fprintf(out, "%s", next.Name)
			fmt.Fprintf(out, " %s\n", faint.Sprintf("#%d", next.ID))
			fmt.Fprintf(out, "  %s / %s\n", next.MacroName, next.MiniName)
			if next.Notes != "" {
				fmt.Fprintf(out, "  %s\n", faint.Sprint(next.Notes))
			}
			return nil
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var (
		workoutID  int64
		exerciseID int64
		from       string
		to         string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show logged workouts",
		Long: `Show logged workouts with their sets, most recent first.

Filter by planned workout (--workout) or library exercise (--exercise); with
--exercise only that exercise's sets are listed. Dates are YYYY-MM-DD and
--to includes the whole day.

EXAMPLES:

  gymplan history --workout 3
  gymplan history --exercise 4 --from 2026-01-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := historyQuery(workoutID, exerciseID, from, to)
			if err != nil {
				return err
			}
			logs, err := a.service.ListHistory(cmd.Context(), q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No history found.")
				return nil
			}
			faint := color.New(color.Faint)
			for _, l := range logs {
				status := color.New(color.FgYellow).Sprint("open")
				if l.Finalized() {
					status = color.New(color.FgGreen).Sprint("done")
				}
				fmt.Fprintf(out, "%s %s %s\n",
					faint.Sprintf("#%d", l.ID),
					l.CompletedAt.Format("2006-01-02 15:04"),
					status)
				if l.OverallNotes != "" {
					fmt.Fprintf(out, "  %s\n", faint.Sprint(truncate(l.OverallNotes, 60)))
				}
				for _, s := range l.Sets {
					fmt.Fprintf(out, "  %s set %d: %g x %d\n", padRight(s.ExerciseName, 28), s.SetNumber, s.Weight, s.Reps)
				}
			}
			return nil
		},
	}
	cmd.Flags().Int64VarP(&workoutID, "workout", "w", 0, "planned workout id")
	cmd.Flags().Int64VarP(&exerciseID, "exercise", "e", 0, "library exercise id")
	cmd.Flags().StringVar(&from, "from", "", "from date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "to date, inclusive (YYYY-MM-DD)")
	return cmd
}

func historyQuery(workoutID, exerciseID int64, from, to string) (training.HistoryQuery, error) {
	var q training.HistoryQuery
	if workoutID > 0 {
		q.WorkoutID = &workoutID
	}
	if exerciseID > 0 {
		q.ExerciseID = &exerciseID
	}
	if from != "" {
		t, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return q, fmt.Errorf("invalid --from %q: use YYYY-MM-DD", from)
		}
		q.From = &t
	}
	if to != "" {
		t, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return q, fmt.Errorf("invalid --to %q: use YYYY-MM-DD", to)
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		q.To = &t
	}
	return q, nil
}
