package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	goalCalories int
	goalCarbs    int
	goalProtein  int
	goalFat      int
)

// goalsCmd represents the goals command
var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show or change the daily goals",
	Long: `Show the daily calorie and macro goals. Pass any of the value flags
to change them; unset flags keep their current value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goals := store.Goals()

		changed := false
		if cmd.Flags().Changed("calories") {
			goals.Calories = goalCalories
			changed = true
		}
		if cmd.Flags().Changed("carbs") {
			goals.Carbs = goalCarbs
			changed = true
		}
		if cmd.Flags().Changed("protein") {
			goals.Protein = goalProtein
			changed = true
		}
		if cmd.Flags().Changed("fat") {
			goals.Fat = goalFat
			changed = true
		}
		if changed {
			store.SetGoals(goals)
			if !store.Save() {
				return fmt.Errorf("could not write the food log at %s", dataPath)
			}
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(goals, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal goals: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("Daily goals: %d calories, %d carbs, %d protein, %d fat\n",
			goals.Calories, goals.Carbs, goals.Protein, goals.Fat)
		return nil
	},
}

func init() {
	goalsCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calorie goal")
	goalsCmd.Flags().IntVar(&goalCarbs, "carbs", 0, "Daily carbohydrate goal in grams")
	goalsCmd.Flags().IntVar(&goalProtein, "protein", 0, "Daily protein goal in grams")
	goalsCmd.Flags().IntVar(&goalFat, "fat", 0, "Daily fat goal in grams")
}
