package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/gymplan/internal/db"
	"github.com/2beens/gymplan/internal/logging"
	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/internal/training/sqlite"
	"github.com/2beens/gymplan/internal/training/tenancy"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// annotationNoDB marks commands that run without opening the database.
const annotationNoDB = "no-db"

// app is the state shared by all subcommands for one invocation.
type app struct {
	dbPath  string
	verbose bool

	store   *sqlite.Store
	service *training.Service
}

func (a *app) open(ctx context.Context) error {
	level := "warn"
	if a.verbose {
		level = "debug"
	}
	// stdout carries command output and the MCP stream
	log.SetOutput(os.Stderr)
	log.SetLevel(logging.GetLevel(level))

	sqlDB, err := db.NewSQLite(a.dbPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", a.dbPath, err)
	}
	store := sqlite.New(sqlDB)
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return fmt.Errorf("migrate database: %w", err)
	}
	log.Debugf("using database: %s", a.dbPath)

	a.store = store
	a.service = training.NewService(store, tenancy.SingleTenant{})
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gymplan",
		Short: "Training plan and workout log tracker",
		Long: `gymplan keeps structured training programs and the record of what was
actually lifted against them.

A plan is a macro cycle (a training block) made of mini cycles (weeks),
each holding workouts (days) of planned exercises with target sets, reps,
weights and RIR. Logged workouts and sets are history: deleting a plan
never deletes what was performed.

QUICK START:

  $ gymplan seed                 # load the default exercise library
  $ gymplan plans                # list plans
  $ gymplan show 1               # show plan 1 as a tree
  $ gymplan next                 # first workout not logged yet
  $ gymplan history --workout 3  # what was done for workout 3

MCP INTEGRATION:

  Run 'gymplan mcp' to serve the plan and history tools over stdio.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Annotations[annotationNoDB] == "true" {
				return nil
			}
			return a.open(cmd.Context())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", db.DefaultSQLitePath(), "path to the SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	rootCmd.AddCommand(
		newSeedCmd(a),
		newExercisesCmd(a),
		newPlansCmd(a),
		newShowCmd(a),
		newDeleteCmd(a),
		newNextCmd(a),
		newHistoryCmd(a),
		newMCPCmd(a),
		newHashPasswordCmd(),
	)
	return rootCmd
}
