package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/outpost-go/internal/application/setup"
	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/infrastructure/config"
)

// NewCatalogCommand creates the catalog command
func NewCatalogCommand() *cobra.Command {
	var (
		world   string
		recipes bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the items and recipes of a world",
		Long: `Validate a world definition and print its item catalog.

Examples:
  outpost catalog
  outpost catalog --world configs/world.yaml --recipes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := world
			if path == "" {
				cfg, err := loadSettings()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				path = cfg.Simulation.WorldFile
			}

			def, err := config.LoadWorldDefinition(path)
			if err != nil {
				return err
			}
			items, err := setup.BuildCatalog(def)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printCatalog(out, items)
			if recipes {
				fmt.Fprintln(out)
				printRecipes(out, def)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&world, "world", "", "World definition file (default: configured world)")
	cmd.Flags().BoolVar(&recipes, "recipes", false, "Also list factory recipes")

	return cmd
}

func printCatalog(out io.Writer, items *catalog.Catalog) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tVALUE")
	for _, name := range items.Names() {
		item, _ := items.Get(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Name, item.Category, itemValue(item))
	}
	w.Flush()
}

func itemValue(item catalog.ItemData) string {
	if v, ok := item.FuelValue(); ok {
		return fmt.Sprintf("%.1fs power", v)
	}
	if v, ok := item.FoodValue(); ok {
		return fmt.Sprintf("%.1fs satiety", v)
	}
	if item.IsRocketPart() {
		return fmt.Sprintf("part #%d", item.PartBuildIndex)
	}
	return "-"
}

func printRecipes(out io.Writer, def *config.WorldDefinition) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FACTORY\tRECIPE\tDURATION\tINPUT\tOUTPUT")
	for _, factory := range def.Factories {
		for _, recipe := range factory.Recipes {
			fmt.Fprintf(w, "%s\t%s\t%.1fs\t%s\t%s\n",
				factory.Name, recipe.Name, recipe.Duration,
				formatStackDefs(recipe.Input), formatStackDefs(recipe.Output))
		}
	}
	w.Flush()
}

func formatStackDefs(stacks []config.StackDefinition) string {
	if len(stacks) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(stacks))
	for _, s := range stacks {
		parts = append(parts, fmt.Sprintf("%s×%d", s.Item, s.Count))
	}
	return strings.Join(parts, ", ")
}
