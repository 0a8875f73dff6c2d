package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/internal/training/scheme"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newPlansCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "plans",
		Aliases: []string{"ls"},
		Short:   "List training plans",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			macros, err := a.service.ListMacroCycles(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(macros) == 0 {
				fmt.Fprintln(out, "No plans yet.")
				return nil
			}
			faint := color.New(color.Faint)
			for _, m := range macros {
				notes := ""
				if m.Notes != "" {
					notes = faint.Sprintf(" (%s)", truncate(m.Notes, 40))
				}
				fmt.Fprintf(out, "%s %s %s%s\n",
					faint.Sprintf("%4d", m.ID),
					faint.Sprint(m.CreatedAt.Format("2006-01-02")),
					m.Name,
					notes)
			}
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <plan-id>",
		Short: "Show a plan as a tree",
		Long: `Show a plan with its weeks, workouts and planned exercises.

Each planned exercise line reads: NAME  SETS x REPS @ WEIGHTS  [RIR]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tree, err := a.service.ListPlanTree(cmd.Context(), id)
			if err != nil {
				return err
			}
			printTree(cmd, tree)
			return nil
		},
	}
}

func printTree(cmd *cobra.Command, tree training.PlanTree) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Fprintf(out, "%s", tree.Name)
	fmt.Fprintf(out, " %s\n", faint.Sprintf("#%d", tree.ID))
	for _, mini := range tree.MiniCycles {
		fmt.Fprintf(out, "  %s %s\n", mini.Name, faint.Sprintf("#%d", mini.ID))
		for _, w := range mini.Workouts {
			fmt.Fprintf(out, "    %s %s\n", w.Name, faint.Sprintf("#%d", w.ID))
			for _, pe := range w.Exercises {
				fmt.Fprintf(out, "      %s %s %s\n",
					padRight(pe.ExerciseName, 28),
					formatTargets(pe),
					faint.Sprintf("#%d", pe.ID))
			}
		}
	}
}

func formatTargets(pe training.PlannedExercise) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx", pe.Sets)
	if len(pe.TargetReps) > 0 {
		b.WriteString(" " + joinInts(pe.TargetReps))
	}
	if len(pe.TargetWeights) > 0 {
		if weights, err := scheme.Encode(pe.TargetWeights); err == nil {
			b.WriteString(" @ " + strings.ReplaceAll(strings.Trim(weights, "[]"), ",", "/"))
		}
	}
	if len(pe.TargetRIR) > 0 {
		b.WriteString(" RIR " + joinInts(pe.TargetRIR))
	}
	return b.String()
}

func joinInts(values []int) string {
	return strings.ReplaceAll(strings.Trim(scheme.EncodeInts(values), "[]"), ",", "/")
}

func newDeleteCmd(a *app) *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a plan node and everything under it",
		Long: `Delete a plan node (a whole plan by default) and all nodes below it.

Logged workouts and sets are kept: they lose their link to the deleted plan
but keep the exercise they were performed for.

EXAMPLES:

  gymplan delete 3                            # delete plan 3
  gymplan delete 12 --level workout           # delete one workout
  gymplan rm 40 --level planned_exercise      # drop one planned exercise`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			l, err := training.ParseLevel(level)
			if err != nil {
				return err
			}
			if err := a.service.DeletePlanNode(cmd.Context(), l, id); err != nil {
				return err
			}
			color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Deleted %s %d\n", l, id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", string(training.LevelMacro), "node level: macro, mini, workout, planned_exercise")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return id, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
