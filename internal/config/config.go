// Package config provides configuration management for caltrack.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the caltrack application.
type Config struct {
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// NotificationConfig holds feedback settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds theme customization settings (hex colors).
type ThemeConfig struct {
	ColorTitle    string `mapstructure:"color_title"`
	ColorAccent   string `mapstructure:"color_accent"`
	ColorSelected string `mapstructure:"color_selected"`
	ColorCalories string `mapstructure:"color_calories"`
	ColorCarbs    string `mapstructure:"color_carbs"`
	ColorProtein  string `mapstructure:"color_protein"`
	ColorFat      string `mapstructure:"color_fat"`
	ColorOver     string `mapstructure:"color_over"`
	ColorHelp     string `mapstructure:"color_help"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle:    "#E8C547",
		ColorAccent:   "#E06C75",
		ColorSelected: "#61AFEF",
		ColorCalories: "#98C379",
		ColorCarbs:    "#56B6C2",
		ColorProtein:  "#61AFEF",
		ColorFat:      "#C678DD",
		ColorOver:     "#BE5046",
		ColorHelp:     "#95A5A6",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Storage: StorageConfig{
			DataDir: "~/.caltrack",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first use.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")
	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in the data directory
	if cfg.Storage.DataDir == "~/.caltrack" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".caltrack")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_accent", cfg.Theme.ColorAccent)
	viper.Set("theme.color_selected", cfg.Theme.ColorSelected)
	viper.Set("theme.color_calories", cfg.Theme.ColorCalories)
	viper.Set("theme.color_carbs", cfg.Theme.ColorCarbs)
	viper.Set("theme.color_protein", cfg.Theme.ColorProtein)
	viper.Set("theme.color_fat", cfg.Theme.ColorFat)
	viper.Set("theme.color_over", cfg.Theme.ColorOver)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".caltrack", "config.toml"), nil
}

// GetDataPath returns the path to the persisted food log.
func GetDataPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "caltrack.txt")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("storage.data_dir", "~/.caltrack")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_accent", defaults.ColorAccent)
	viper.SetDefault("theme.color_selected", defaults.ColorSelected)
	viper.SetDefault("theme.color_calories", defaults.ColorCalories)
	viper.SetDefault("theme.color_carbs", defaults.ColorCarbs)
	viper.SetDefault("theme.color_protein", defaults.ColorProtein)
	viper.SetDefault("theme.color_fat", defaults.ColorFat)
	viper.SetDefault("theme.color_over", defaults.ColorOver)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
}
