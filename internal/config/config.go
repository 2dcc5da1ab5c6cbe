package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultConfigDir      = "~/.config/taskpad"
	DefaultStoreDir       = "~/.local/share/taskpad"
	DefaultBackend        = "file"
	DefaultSlot           = "tasks"
	DefaultTimezone       = "Asia/Kolkata"
	DefaultIDs            = "time"
	DefaultLogLevel       = "info"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "TASKPAD_CONFIG"
)

type Keymap struct {
	Quit            string `toml:"quit"`
	Add             string `toml:"add"`
	Up              string `toml:"up"`
	Down            string `toml:"down"`
	Toggle          string `toml:"toggle"`
	Delete          string `toml:"delete"`
	Confirm         string `toml:"confirm"`
	Cancel          string `toml:"cancel"`
	Edit            string `toml:"edit"`
	FilterAll       string `toml:"filter_all"`
	FilterActive    string `toml:"filter_active"`
	FilterCompleted string `toml:"filter_completed"`
	ClearCompleted  string `toml:"clear_completed"`
	Theme           string `toml:"theme"`
}

type Config struct {
	StoreDir string `toml:"store_dir"`
	Backend  string `toml:"backend"`
	Slot     string `toml:"slot"`
	Timezone string `toml:"timezone"`
	IDs      string `toml:"ids"`
	LogPath  string `toml:"log_path"`
	LogLevel string `toml:"log_level"`
	Keys     Keymap `toml:"keys"`
}

// ResolveConfigPath returns $TASKPAD_CONFIG or the per-user default.
func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := homedir.Expand(DefaultConfigDir)
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, DefaultConfigFileName)
}

// LoadOrCreate reads path, writing the defaults there first if it does not
// exist. Missing fields fall back to defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.expand()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg.expand()
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.StoreDir == "" {
		c.StoreDir = d.StoreDir
	}
	if c.Backend == "" {
		c.Backend = d.Backend
	}
	if c.Slot == "" {
		c.Slot = d.Slot
	}
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
	if c.IDs == "" {
		c.IDs = d.IDs
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

func (c Config) expand() (Config, error) {
	var err error
	if c.StoreDir, err = homedir.Expand(c.StoreDir); err != nil {
		return c, err
	}
	if c.LogPath, err = homedir.Expand(c.LogPath); err != nil {
		return c, err
	}
	return c, nil
}

func Default() Config {
	return Config{
		StoreDir: DefaultStoreDir,
		Backend:  DefaultBackend,
		Slot:     DefaultSlot,
		Timezone: DefaultTimezone,
		IDs:      DefaultIDs,
		LogLevel: DefaultLogLevel,
		Keys: Keymap{
			Quit:            "q",
			Add:             "a",
			Up:              "k",
			Down:            "j",
			Toggle:          " ",
			Delete:          "d",
			Confirm:         "enter",
			Cancel:          "esc",
			Edit:            "e",
			FilterAll:       "1",
			FilterActive:    "2",
			FilterCompleted: "3",
			ClearCompleted:  "c",
			Theme:           "t",
		},
	}
}
