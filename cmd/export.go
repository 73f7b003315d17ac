package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hambart471/caltrack/internal/domain"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full food log",
	Long:  "Export every logged day in markdown or CSV format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch exportFormat {
		case "csv":
			return exportCSV(store.AllRecords())
		default:
			return exportMarkdown(store.AllRecords())
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "md", "Output format: md or csv")
}

func exportMarkdown(records []*domain.DailyRecord) error {
	fmt.Printf("# Caltrack Food Log\n\n")
	fmt.Printf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04"))

	goals := store.Goals()
	fmt.Printf("Daily goals: %d calories, %d carbs, %d protein, %d fat\n\n",
		goals.Calories, goals.Carbs, goals.Protein, goals.Fat)

	for _, rec := range records {
		if len(rec.Foods) == 0 {
			continue
		}
		calories, carbs, protein, fat := rec.Totals()
		fmt.Printf("## %s\n", rec.Date)
		fmt.Printf("Totals: %d cal, %d carbs, %d protein, %d fat\n\n", calories, carbs, protein, fat)
		for _, f := range rec.Foods {
			fmt.Printf("- %s: %dg, %d cal, %d carbs, %d protein, %d fat\n",
				f.Name, f.Grams, f.Calories, f.Carbs, f.Protein, f.Fat)
		}
		fmt.Println()
	}
	return nil
}

func exportCSV(records []*domain.DailyRecord) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"date", "name", "grams", "calories", "carbs", "protein", "fat"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		for _, f := range rec.Foods {
			row := []string{
				rec.Date.String(),
				f.Name,
				strconv.Itoa(f.Grams),
				strconv.Itoa(f.Calories),
				strconv.Itoa(f.Carbs),
				strconv.Itoa(f.Protein),
				strconv.Itoa(f.Fat),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}
	return nil
}
