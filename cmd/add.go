package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hambart471/caltrack/internal/domain"
)

var (
	addCalories int
	addCarbs    int
	addProtein  int
	addFat      int
	addGrams    int
	addDate     string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Log a food without opening the tracker",
	Long:  `Log a food entry with absolute nutrient values for the portion you ate.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		date := domain.Today()
		if addDate != "" {
			var err error
			if date, err = resolveDate([]string{addDate}); err != nil {
				return err
			}
		}

		food := domain.Food{
			Name:     domain.TruncateName(name),
			Calories: addCalories,
			Carbs:    addCarbs,
			Protein:  addProtein,
			Fat:      addFat,
			Grams:    addGrams,
		}
		rec := store.Record(date)
		rec.Foods = append(rec.Foods, food)
		if !store.Save() {
			return fmt.Errorf("could not write the food log at %s", dataPath)
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(map[string]interface{}{
				"date": date.String(),
				"food": food,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal food: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("Logged %s (%d cal) on %s\n", food.Name, food.Calories, date)
		return nil
	},
}

func init() {
	addCmd.Flags().IntVar(&addCalories, "calories", 0, "Calories for the portion")
	addCmd.Flags().IntVar(&addCarbs, "carbs", 0, "Carbohydrates in grams")
	addCmd.Flags().IntVar(&addProtein, "protein", 0, "Protein in grams")
	addCmd.Flags().IntVar(&addFat, "fat", 0, "Fat in grams")
	addCmd.Flags().IntVar(&addGrams, "grams", 100, "Portion size in grams")
	addCmd.Flags().StringVar(&addDate, "date", "", "Day to log against, dd/mm/yyyy (default: today)")
}
