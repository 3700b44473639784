package tracker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/service"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

var (
	addName    string
	addLabel   labelFlags
	updateLbl  labelFlags
	showUnit   string
	showSize   string
	showSecond string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food from its nutrition label",
	RunE: func(cmd *cobra.Command, args []string) error {
		serving, err := addLabel.serving()
		if err != nil {
			return err
		}
		return withStore(cmd, func(s *store.SQLite) error {
			res, err := service.AddFood(s, service.AddFoodInput{
				Name:    addName,
				Macros:  addLabel.macros(),
				Serving: serving,
				Check:   addLabel.check,
			})
			if err != nil {
				return err
			}
			if res.Result == store.Duplicate {
				fmt.Fprintf(cmd.OutOrStdout(), "Food %q already exists\n", res.Food.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %s (per 100 g from %s)\n", res.Food.Name, serving)
			if res.Plausibility != nil {
				printPlausibility(cmd.OutOrStdout(), *res.Plausibility)
			}
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a stored food, per 100 g or for a serving",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var serving *food.Serving
		if strings.TrimSpace(showSize) != "" {
			sv, err := food.ParseServing(showUnit, showSize, showSecond)
			if err != nil {
				return err
			}
			serving = &sv
		}
		return withStore(cmd, func(s *store.SQLite) error {
			f, err := service.LookupFood(s, args[0])
			if err != nil {
				return err
			}
			if f == nil {
				return notFound(cmd.OutOrStdout(), s, args[0])
			}
			if serving == nil {
				fmt.Fprint(cmd.OutOrStdout(), f.String())
				return nil
			}
			m, err := food.Denormalize(*f, *serving)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s (%s)\n", f.Name, serving)
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %g\nFat: %g\nCarbs: %g\nFiber: %g\nProtein: %g\n", m.Calories, m.Fat, m.Carb, m.Fiber, m.Protein)
			return nil
		})
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Replace a stored food's values from a new label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		serving, err := updateLbl.serving()
		if err != nil {
			return err
		}
		return withStore(cmd, func(s *store.SQLite) error {
			n, err := service.UpdateFood(s, service.UpdateFoodInput{
				Name:    args[0],
				Macros:  updateLbl.macros(),
				Serving: serving,
				Check:   updateLbl.check,
			})
			if err != nil {
				return err
			}
			if n == 0 {
				return notFound(cmd.OutOrStdout(), s, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated food %s\n", args[0])
			return nil
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a stored food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.SQLite) error {
			n, err := s.Delete(args[0])
			if err != nil {
				return err
			}
			if n == 0 {
				return notFound(cmd.OutOrStdout(), s, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed food %s\n", args[0])
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored foods (per 100 g)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.SQLite) error {
			foods, err := s.List()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tKCAL\tFAT\tCARB\tFIBER\tPROTEIN")
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n", f.Name, f.Calories, f.Fat, f.Carb, f.Fiber, f.Protein)
			}
			return nil
		})
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Compare a stored food's calories against its macros",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.SQLite) error {
			f, err := service.LookupFood(s, args[0])
			if err != nil {
				return err
			}
			if f == nil {
				return notFound(cmd.OutOrStdout(), s, args[0])
			}
			p, err := food.CheckCalories(*f)
			if err != nil {
				return err
			}
			printPlausibility(cmd.OutOrStdout(), p)
			return nil
		})
	},
}

func printPlausibility(w io.Writer, p food.Plausibility) {
	verdict := "plausible"
	if !p.Plausible {
		verdict = "implausible"
	}
	fmt.Fprintf(w, "Calories: reported %.1f, estimated %.1f (%.1f%% off): %s\n",
		p.ReportedCalories, p.EstimatedCalories, p.RelativeError*100, verdict)
}

// notFound prints close names, if any, and returns the not-found error.
func notFound(w io.Writer, s store.FoodStore, name string) error {
	suggestions, err := service.SuggestNames(s, name, 0, 0)
	if err != nil {
		return err
	}
	if len(suggestions) > 0 {
		names := make([]string, 0, len(suggestions))
		for _, sug := range suggestions {
			names = append(names, sug.Name)
		}
		fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(names, ", "))
	}
	return errNotFound(name)
}

var errFoodNotFound = errors.New("food not found")

func errNotFound(name string) error {
	return fmt.Errorf("%w: %q", errFoodNotFound, name)
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "Food name")
	_ = addCmd.MarkFlagRequired("name")
	addLabel.register(addCmd)
	updateLbl.register(updateCmd)

	showCmd.Flags().StringVar(&showUnit, "unit", "g", "Serving unit ("+food.UnitList()+")")
	showCmd.Flags().StringVar(&showSize, "size", "", "Show values for this serving size instead of per 100 g")
	showCmd.Flags().StringVar(&showSecond, "second-size", "", "Extra ounces for lbs servings")

	rootCmd.AddCommand(addCmd, showCmd, updateCmd, removeCmd, listCmd, checkCmd)
}
