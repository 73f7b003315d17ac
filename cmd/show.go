package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/Hambart471/caltrack/internal/domain"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the food log for a day",
	Long: `Show the logged foods and nutrient totals for a day without opening
the interactive tracker. The date is dd/mm/yyyy, "today", or "yesterday".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(args)
		if err != nil {
			return err
		}
		return runShow(date)
	},
}

func runShow(date domain.Date) error {
	rec := store.Record(date)
	goals := store.Goals()
	calories, carbs, protein, fat := rec.Totals()

	if jsonOutput {
		data := map[string]interface{}{
			"date": date.String(),
			"totals": map[string]int{
				"calories": calories, "carbs": carbs, "protein": protein, "fat": fat,
			},
			"goals": map[string]int{
				"calories": goals.Calories, "carbs": goals.Carbs, "protein": goals.Protein, "fat": goals.Fat,
			},
			"foods": rec.Foods,
		}
		jsonData, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	width := 80
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		width = w
	}

	fmt.Println(date.DisplayDate())
	fmt.Printf("Calories: %d / %d   Carbs: %d / %d   Protein: %d / %d   Fat: %d / %d\n",
		calories, goals.Calories, carbs, goals.Carbs, protein, goals.Protein, fat, goals.Fat)
	fmt.Println(strings.Repeat("=", width))

	if len(rec.Foods) == 0 {
		fmt.Println("No foods logged.")
		return nil
	}
	for i, f := range rec.Foods {
		fmt.Printf("%2d. %-*s %4dg  %4d cal  %3d carbs  %3d protein  %3d fat\n",
			i+1, domain.MaxNameLen, f.Name, f.Grams, f.Calories, f.Carbs, f.Protein, f.Fat)
	}
	return nil
}
