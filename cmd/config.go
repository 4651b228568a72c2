package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ansmoore/UrentScoutsBot/internal/application"
	"github.com/ansmoore/UrentScoutsBot/internal/ports"
	"github.com/spf13/viper"
)

const (
	configDirName  = ".scouts"
	configFileName = "config"
	envPrefix      = "SCOUTS"

	keyTimezone      = "timezone"
	keyTimerFirst    = "timer.first_check"
	keyTimerInterval = "timer.interval"
	keyLogLevel      = "log.level"
	keyJournalPath   = "journal.path"
)

// loadConfig reads $HOME/.scouts/config.toml, or path when given. A missing
// default config file is not an error. SCOUTS_* variables override file
// values, e.g. SCOUTS_TIMER_INTERVAL.
func loadConfig(path string) (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetDefault(keyTimezone, ports.DefaultTimezone)
	cfg.SetDefault(keyTimerFirst, application.DefaultBreakFirstCheck)
	cfg.SetDefault(keyTimerInterval, application.DefaultBreakCheckInterval)
	cfg.SetDefault(keyLogLevel, "info")
	cfg.SetDefault(keyJournalPath, filepath.Join(configDir, "journal.jsonl"))

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if path != "" {
		cfg.SetConfigFile(path)
		if err := cfg.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg.SetConfigName(configFileName)
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(configDir)
	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return cfg, nil
}
