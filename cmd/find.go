package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var findLimit int

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Fuzzy-search previously logged foods",
	Long: `Search every day's log for foods whose names fuzzy-match the query,
ranked by match quality. Useful for spotting what a food cost you last time.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFind(strings.Join(args, " "))
	},
}

// foodHit is one distinct food name with where it was last logged.
type foodHit struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Grams    int    `json:"grams"`
	LastDate string `json:"last_date"`
	Times    int    `json:"times"`
}

func runFind(query string) error {
	// Collapse the history to one entry per distinct name, keeping the
	// most recent occurrence's values.
	var hits []foodHit
	index := map[string]int{}
	for _, rec := range store.AllRecords() {
		for _, f := range rec.Foods {
			if i, ok := index[f.Name]; ok {
				hits[i].Calories = f.Calories
				hits[i].Grams = f.Grams
				hits[i].LastDate = rec.Date.String()
				hits[i].Times++
				continue
			}
			index[f.Name] = len(hits)
			hits = append(hits, foodHit{
				Name:     f.Name,
				Calories: f.Calories,
				Grams:    f.Grams,
				LastDate: rec.Date.String(),
				Times:    1,
			})
		}
	}

	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = h.Name
	}
	matches := fuzzy.Find(query, names)
	if len(matches) > findLimit {
		matches = matches[:findLimit]
	}

	if jsonOutput {
		matched := make([]foodHit, 0, len(matches))
		for _, m := range matches {
			matched = append(matched, hits[m.Index])
		}
		jsonData, err := json.MarshalIndent(matched, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal matches: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	if len(matches) == 0 {
		fmt.Printf("No logged food matches %q\n", query)
		return nil
	}
	for _, m := range matches {
		h := hits[m.Index]
		fmt.Printf("%-21s %4d cal / %dg  last logged %s (%dx)\n",
			h.Name, h.Calories, h.Grams, h.LastDate, h.Times)
	}
	return nil
}

func init() {
	findCmd.Flags().IntVar(&findLimit, "limit", 20, "Maximum number of matches to show")
}
