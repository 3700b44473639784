package tracker

import (
	"github.com/spf13/cobra"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/app"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/config"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

// withStore resolves settings, makes sure the schema exists and hands the
// command a store. Log lines go to the command's stderr.
func withStore(cmd *cobra.Command, run func(*store.SQLite) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path := cfg.DBPath
	if dbPath != "" {
		path = dbPath
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}

	logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	s, err := store.NewSQLite(store.Config{Path: path}, store.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := s.CreateSchema(); err != nil {
		return err
	}
	logger.Debug("opened food store", "path", path)
	return run(s)
}

// labelFlags are the nutrition label values shared by add and update.
type labelFlags struct {
	calories   float64
	fat        float64
	carb       float64
	fiber      float64
	protein    float64
	unit       string
	size       string
	secondSize string
	check      bool
}

func (l *labelFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&l.calories, "calories", 0, "Calories per serving")
	cmd.Flags().Float64Var(&l.fat, "fat", 0, "Fat grams per serving")
	cmd.Flags().Float64Var(&l.carb, "carb", 0, "Carbohydrate grams per serving")
	cmd.Flags().Float64Var(&l.fiber, "fiber", 0, "Fiber grams per serving")
	cmd.Flags().Float64Var(&l.protein, "protein", 0, "Protein grams per serving")
	cmd.Flags().StringVar(&l.unit, "unit", "g", "Serving unit ("+food.UnitList()+")")
	cmd.Flags().StringVar(&l.size, "size", "100", "Serving size in --unit (whole pounds for lbs)")
	cmd.Flags().StringVar(&l.secondSize, "second-size", "", "Extra ounces for lbs servings")
	cmd.Flags().BoolVar(&l.check, "check", false, "Reject the food when calories disagree with macros")
}

func (l labelFlags) macros() food.Macronutrients {
	return food.Macronutrients{
		Calories: l.calories,
		Fat:      l.fat,
		Carb:     l.carb,
		Fiber:    l.fiber,
		Protein:  l.protein,
	}
}

func (l labelFlags) serving() (food.Serving, error) {
	return food.ParseServing(l.unit, l.size, l.secondSize)
}
