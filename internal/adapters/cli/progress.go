package cli

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/andrescamacho/outpost-go/internal/adapters/persistence"
	"github.com/andrescamacho/outpost-go/internal/infrastructure/database"
)

// NewProgressCommand creates the progress command with subcommands
func NewProgressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Inspect persisted progress",
		Long: `Inspect what outlives a session: the rocket-built flag, recorded sessions
and the craft log.

Examples:
  outpost progress show
  outpost progress sessions --limit 5
  outpost progress crafts <session-id>
  outpost progress reset`,
	}

	cmd.AddCommand(newProgressShowCommand())
	cmd.AddCommand(newProgressSessionsCommand())
	cmd.AddCommand(newProgressCraftsCommand())
	cmd.AddCommand(newProgressResetCommand())

	return cmd
}

// withDatabase opens the configured database for one command
func withDatabase(fn func(ctx context.Context, db *gorm.DB) error) error {
	cfg, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close(db)

	return fn(context.Background(), db)
}

func newProgressShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the rocket progress flag and craft totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(ctx context.Context, db *gorm.DB) error {
				progressRepo := persistence.NewGormProgressRepository(db)
				craftLogRepo := persistence.NewGormCraftLogRepository(db)

				builtAt, err := progressRepo.BuiltAt(ctx)
				if err != nil {
					return err
				}
				counts, err := craftLogRepo.CountByRecipe(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if builtAt != nil {
					fmt.Fprintf(out, "Rocket built:  yes (first on %s)\n", builtAt.Format("2006-01-02 15:04:05"))
				} else {
					fmt.Fprintln(out, "Rocket built:  no")
				}

				if len(counts) == 0 {
					fmt.Fprintln(out, "Crafts:        none recorded")
					return nil
				}
				recipes := make([]string, 0, len(counts))
				for recipe := range counts {
					recipes = append(recipes, recipe)
				}
				sort.Strings(recipes)

				fmt.Fprintln(out, "Crafts:")
				for _, recipe := range recipes {
					fmt.Fprintf(out, "  %-20s %d\n", recipe, counts[recipe])
				}
				return nil
			})
		},
	}
}

func newProgressSessionsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recent sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(ctx context.Context, db *gorm.DB) error {
				sessions, err := persistence.NewGormSessionRepository(db).ListRecent(ctx, limit)
				if err != nil {
					return err
				}
				if len(sessions) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded")
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tSTARTED\tSTATUS\tELAPSED\tWORLD")
				for _, s := range sessions {
					fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%s\n",
						s.ID, s.StartedAt.Format("2006-01-02 15:04:05"), s.Status, s.Elapsed, s.WorldFile)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of sessions to list")
	return cmd
}

func newProgressCraftsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "crafts <session-id>",
		Short: "List the crafts of one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(ctx context.Context, db *gorm.DB) error {
				records, err := persistence.NewGormCraftLogRepository(db).ListBySession(ctx, args[0])
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No crafts recorded for %s\n", args[0])
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "SIM TIME\tFACTORY\tRECIPE")
				for _, r := range records {
					fmt.Fprintf(w, "%.2fs\t%s\t%s\n", r.SimTime, r.Factory, r.Recipe)
				}
				return w.Flush()
			})
		},
	}
}

func newProgressResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget that the rocket was built",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(ctx context.Context, db *gorm.DB) error {
				if err := persistence.NewGormProgressRepository(db).Reset(ctx); err != nil {
					return fmt.Errorf("failed to reset progress: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "✓ Rocket progress cleared")
				return nil
			})
		},
	}
}
