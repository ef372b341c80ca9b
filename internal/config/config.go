package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Board BoardConfig `mapstructure:"board"`
	Map   MapConfig   `mapstructure:"map"`
	Piece PieceConfig `mapstructure:"piece"`
	Demo  DemoConfig  `mapstructure:"demo"`
	Log   LogConfig   `mapstructure:"log"`
}

// BoardConfig holds board dimensions and the base field
type BoardConfig struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Terrain   string `mapstructure:"terrain"`
	Elevation int    `mapstructure:"elevation"`
}

// MapConfig holds elevation generation settings
type MapConfig struct {
	Seed         int64 `mapstructure:"seed"` // 0 picks a time-based seed
	Hills        int   `mapstructure:"hills"`
	MaxElevation int   `mapstructure:"max_elevation"`
	Ramp         bool  `mapstructure:"ramp"`
}

// PieceConfig describes the demo piece
type PieceConfig struct {
	Name        string `mapstructure:"name"`
	HP          int    `mapstructure:"hp"`
	AP          int    `mapstructure:"ap"`
	AttackRange int    `mapstructure:"attack_range"`
	StartX      int    `mapstructure:"start_x"`
	StartY      int    `mapstructure:"start_y"`
}

// DemoConfig holds the demo destination and step limit
type DemoConfig struct {
	DestX    int `mapstructure:"dest_x"`
	DestY    int `mapstructure:"dest_y"`
	MaxSteps int `mapstructure:"max_steps"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	cfg *Config
	v   *viper.Viper
)

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("board.width", 8)
	v.SetDefault("board.height", 8)
	v.SetDefault("board.terrain", "plain")
	v.SetDefault("board.elevation", 0)

	v.SetDefault("map.seed", 0)
	v.SetDefault("map.hills", 0)
	v.SetDefault("map.max_elevation", 3)
	v.SetDefault("map.ramp", false)

	v.SetDefault("piece.name", "scout")
	v.SetDefault("piece.hp", 10)
	v.SetDefault("piece.ap", 2)
	v.SetDefault("piece.attack_range", 1)
	v.SetDefault("piece.start_x", 0)
	v.SetDefault("piece.start_y", 0)

	v.SetDefault("demo.dest_x", 7)
	v.SetDefault("demo.dest_y", 7)
	v.SetDefault("demo.max_steps", 64)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Init initializes the configuration. Values come from defaults, then
// the config file, then BGAME_* environment variables, which may also be
// supplied through a .env file in the working directory.
func Init(configPath string) error {
	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	v = viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BGAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing explicit file falls back to defaults, like a missing default one
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// loadDotEnv exports the variables in path unless they are already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig reloads the config file when it changes. onChange runs
// after the reloaded values pass validation; invalid edits are dropped
// and reported through onError.
func WatchConfig(onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := v.Unmarshal(next); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		if err := Validate(next); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		cfg = next
		if onChange != nil {
			onChange(next)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive")
	}
	if c.Board.Terrain == "" {
		return fmt.Errorf("board.terrain must not be empty")
	}
	if c.Map.Hills < 0 {
		return fmt.Errorf("map.hills must be non-negative")
	}
	if c.Map.MaxElevation < 0 {
		return fmt.Errorf("map.max_elevation must be non-negative")
	}

	if c.Piece.HP <= 0 {
		return fmt.Errorf("piece.hp must be positive")
	}
	if c.Piece.AP <= 0 {
		return fmt.Errorf("piece.ap must be positive")
	}
	if c.Piece.AttackRange <= 0 {
		return fmt.Errorf("piece.attack_range must be positive")
	}
	if !onBoard(c, c.Piece.StartX, c.Piece.StartY) {
		return fmt.Errorf("piece start (%d,%d) is off the board", c.Piece.StartX, c.Piece.StartY)
	}
	if !onBoard(c, c.Demo.DestX, c.Demo.DestY) {
		return fmt.Errorf("demo destination (%d,%d) is off the board", c.Demo.DestX, c.Demo.DestY)
	}
	if c.Demo.MaxSteps < 0 {
		return fmt.Errorf("demo.max_steps must be non-negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json")
	}

	return nil
}

func onBoard(c *Config, x, y int) bool {
	return x >= 0 && x < c.Board.Width && y >= 0 && y < c.Board.Height
}
