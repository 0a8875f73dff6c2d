package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the default exercise library",
		Long: `Load the default categories, exercises and rep schemes.

Seeding is idempotent: entries that already exist are left untouched, so it
is safe to run again after adding your own exercises.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.service.SeedLibrary(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintln(out, "✓ Library seeded")
			fmt.Fprintf(out, "  %d categories, %d exercises, %d schemes\n", res.Categories, res.Exercises, res.Schemes)
			return nil
		},
	}
}

func newExercisesCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:     "exercises",
		Aliases: []string{"ex"},
		Short:   "List the exercise library",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exercises, err := a.service.ListExercises(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			faint := color.New(color.Faint)
			shown := 0
			for _, e := range exercises {
				if category != "" && !containsFold(e.Categories, category) {
					continue
				}
				shown++
				fmt.Fprintf(out, "%s %s %s\n",
					faint.Sprintf("%4d", e.ID),
					padRight(e.Name, 30),
					faint.Sprint(strings.Join(e.Categories, ", ")))
			}
			if shown == 0 {
				fmt.Fprintln(out, "No exercises found. Run 'gymplan seed' to load the defaults.")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only exercises in this category")
	return cmd
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
