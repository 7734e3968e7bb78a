// Package config provides configuration management for unoup.
// It handles loading, merging, and accessing configuration from default and user config files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lvim-tech/unoup/pkg/utils"
)

//go:embed default.toml
var defaultConfigData string

// Config структура
type Config struct {
	// BrokerPort е фиксираният координационен порт: broker-ът го bind-ва,
	// а всички workers го получават като --broker-port.
	BrokerPort int `toml:"broker_port"`

	Menu     MenuConfig                `toml:"menu"`
	Programs ProgramsConfig            `toml:"programs"`
	Defaults DefaultsConfig            `toml:"defaults"`
	Terminal TerminalConfig            `toml:"terminal"`
	Commands map[string]map[string]any `toml:"commands"`
}

// MenuConfig за интерактивното меню
type MenuConfig struct {
	Title       string   `toml:"title"`
	ModuleOrder []string `toml:"module_order"`
}

// ProgramsConfig описва външните програми, които се стартират
type ProgramsConfig struct {
	Broker string `toml:"broker"`
	Worker string `toml:"worker"`
	Client string `toml:"client"`
}

// DefaultsConfig за стойностите при празен prompt input
type DefaultsConfig struct {
	BrokerHost string `toml:"broker_host"`
	WorkerPort string `toml:"worker_port"`
}

// TerminalConfig описва как се отваря нов терминал за spawn-нат процес.
// Празен Command означава auto-detect.
type TerminalConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// envOverrides се прилагат последни, след merge на файловете
type envOverrides struct {
	BrokerPort int    `env:"UNOUP_BROKER_PORT"`
	BrokerHost string `env:"UNOUP_BROKER_HOST"`
	WorkerPort string `env:"UNOUP_WORKER_PORT"`
	Terminal   string `env:"UNOUP_TERMINAL"`
}

// MenuConfigFile е за четене от TOML (с pointers за optional полета)
type MenuConfigFile struct {
	Title       *string  `toml:"title"`
	ModuleOrder []string `toml:"module_order"`
}

// ProgramsConfigFile е за четене от TOML
type ProgramsConfigFile struct {
	Broker *string `toml:"broker"`
	Worker *string `toml:"worker"`
	Client *string `toml:"client"`
}

// DefaultsConfigFile е за четене от TOML
type DefaultsConfigFile struct {
	BrokerHost *string `toml:"broker_host"`
	WorkerPort *string `toml:"worker_port"`
}

// TerminalConfigFile е за четене от TOML
type TerminalConfigFile struct {
	Command *string  `toml:"command"`
	Args    []string `toml:"args"`
}

// ConfigFile е за четене от TOML файл
type ConfigFile struct {
	BrokerPort *int                      `toml:"broker_port"`
	Menu       MenuConfigFile            `toml:"menu"`
	Programs   ProgramsConfigFile        `toml:"programs"`
	Defaults   DefaultsConfigFile        `toml:"defaults"`
	Terminal   TerminalConfigFile        `toml:"terminal"`
	Commands   map[string]map[string]any `toml:"commands"`
}

var globalConfig *Config

// GetUserConfigPath връща пътя до user config
func GetUserConfigPath() string {
	return filepath.Join(utils.GetConfigDir(), "unoup", "config.toml")
}

// GetSystemConfigPath връща пътя до system config
func GetSystemConfigPath() string {
	return "/etc/unoup/config.toml"
}

// Load зарежда config с merge на defaults + user config + env overrides
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// 1. Зареди defaults
	cfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// 2. Опитай да заредиш user config, иначе system config
	for _, path := range []string{GetUserConfigPath(), GetSystemConfigPath()} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fileCfg, err := loadConfigFromFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config %s: %v\n", path, err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			break
		}
		cfg = mergeConfigs(cfg, fileCfg)
		break
	}

	// 3. Environment overrides
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	globalConfig = cfg
	return globalConfig, nil
}

// Get връща глобалния config (lazy load)
func Get() *Config {
	if globalConfig == nil {
		globalConfig, _ = Load()
	}
	return globalConfig
}

// Reset изчиства кеширания config (за тестове)
func Reset() {
	globalConfig = nil
}

// loadDefaultConfig зарежда вградения default config
func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromFile зарежда config от файл
func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides прилага UNOUP_* environment variables
func applyEnvOverrides(cfg *Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return err
	}

	if overrides.BrokerPort != 0 {
		cfg.BrokerPort = overrides.BrokerPort
	}
	if overrides.BrokerHost != "" {
		cfg.Defaults.BrokerHost = overrides.BrokerHost
	}
	if overrides.WorkerPort != "" {
		cfg.Defaults.WorkerPort = overrides.WorkerPort
	}
	if overrides.Terminal != "" {
		cfg.Terminal.Command = overrides.Terminal
	}

	return nil
}

// mergeConfigs merge user config с defaults (user override defaults)
func mergeConfigs(defaultCfg *Config, userCfg *ConfigFile) *Config {
	merged := *defaultCfg

	// Override broker_port ако е зададен
	if userCfg.BrokerPort != nil && *userCfg.BrokerPort != 0 {
		merged.BrokerPort = *userCfg.BrokerPort
	}

	// Merge menu settings
	if userCfg.Menu.Title != nil && *userCfg.Menu.Title != "" {
		merged.Menu.Title = *userCfg.Menu.Title
	}
	if len(userCfg.Menu.ModuleOrder) > 0 {
		merged.Menu.ModuleOrder = userCfg.Menu.ModuleOrder
	}

	// Merge program paths
	if userCfg.Programs.Broker != nil && *userCfg.Programs.Broker != "" {
		merged.Programs.Broker = *userCfg.Programs.Broker
	}
	if userCfg.Programs.Worker != nil && *userCfg.Programs.Worker != "" {
		merged.Programs.Worker = *userCfg.Programs.Worker
	}
	if userCfg.Programs.Client != nil && *userCfg.Programs.Client != "" {
		merged.Programs.Client = *userCfg.Programs.Client
	}

	// Merge prompt defaults
	if userCfg.Defaults.BrokerHost != nil && *userCfg.Defaults.BrokerHost != "" {
		merged.Defaults.BrokerHost = *userCfg.Defaults.BrokerHost
	}
	if userCfg.Defaults.WorkerPort != nil && *userCfg.Defaults.WorkerPort != "" {
		merged.Defaults.WorkerPort = *userCfg.Defaults.WorkerPort
	}

	// Merge terminal settings
	if userCfg.Terminal.Command != nil {
		merged.Terminal.Command = *userCfg.Terminal.Command
	}
	if len(userCfg.Terminal.Args) > 0 {
		merged.Terminal.Args = userCfg.Terminal.Args
	}

	// Merge command tables (user таблицата override-ва цялата команда)
	if len(userCfg.Commands) > 0 {
		commands := make(map[string]map[string]any, len(merged.Commands))
		for name, table := range merged.Commands {
			commands[name] = table
		}
		for name, table := range userCfg.Commands {
			commands[name] = table
		}
		merged.Commands = commands
	}

	return &merged
}

// GetProgram връща пътя до външна програма по роля
func (c *Config) GetProgram(role string) string {
	switch role {
	case "broker":
		return c.Programs.Broker
	case "worker":
		return c.Programs.Worker
	case "client":
		return c.Programs.Client
	default:
		return ""
	}
}

// GetCommandConfig връща raw таблицата за команда (за mapstructure decode)
func (c *Config) GetCommandConfig(name string) map[string]any {
	if c.Commands == nil {
		return nil
	}
	return c.Commands[name]
}

// GetModuleOrder връща реда на командите в менюто
func (c *Config) GetModuleOrder() []string {
	return c.Menu.ModuleOrder
}

// InitUserConfig копира default config в user config директорията
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()
	userConfigDir := filepath.Dir(userConfigPath)

	// Провери дали вече съществува
	if _, err := os.Stat(userConfigPath); err == nil {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	// Създай директорията
	if err := utils.EnsureDir(userConfigDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Запиши default config
	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent връща съдържанието на default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}
