// Package cmd provides the CLI commands for the caltrack application.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Hambart471/caltrack/internal/adapters/notification"
	"github.com/Hambart471/caltrack/internal/adapters/storage"
	"github.com/Hambart471/caltrack/internal/adapters/tui"
	"github.com/Hambart471/caltrack/internal/config"
	"github.com/Hambart471/caltrack/internal/domain"
	"github.com/Hambart471/caltrack/internal/ports"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	dataPath   string
	jsonOutput bool

	// Global dependencies
	appConfig *config.Config
	store     ports.RecordStore
	notifier  *notification.Notifier
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "caltrack",
	Short: "Caltrack - a keyboard-driven daily food and calorie tracker",
	Long: `Caltrack is a terminal food log: record what you eat day by day and
watch the running totals against your daily calorie and macro goals.

Run "caltrack" with no arguments to open the interactive tracker.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launchTUI()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the food log file (default: ~/.caltrack/caltrack.txt)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Caltrack\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(mcpCmd)
}

// initializeServices loads the configuration and opens the record store.
func initializeServices() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	notifier = notification.New(&appConfig.Notifications)

	if dataPath == "" {
		dataPath = config.GetDataPath(appConfig)
	}
	if err := os.MkdirAll(filepath.Dir(dataPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	store = storage.New(dataPath)
	store.Load()
	return nil
}

// launchTUI starts the Bubbletea tracker interface.
func launchTUI() error {
	model := tui.NewModel(store, notifier, domain.NewTemplateSet(), &appConfig.Theme)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tracker error: %w", err)
	}
	return nil
}

// resolveDate parses an optional positional date argument, defaulting to
// today. Accepts dd/mm/yyyy plus the shortcuts "today" and "yesterday".
func resolveDate(args []string) (domain.Date, error) {
	if len(args) == 0 || args[0] == "today" {
		return domain.Today(), nil
	}
	if args[0] == "yesterday" {
		return domain.Today().AddDays(-1), nil
	}
	d, err := domain.ParseDate(args[0])
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid date %q: use dd/mm/yyyy", args[0])
	}
	return d, nil
}
