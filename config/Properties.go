package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"PongBot/core"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const FrontendWindow = "window"
const FrontendTerminal = "terminal"

const DefaultEnv = "dev"

// Settings is everything the game reads at launch. Window size and title are not
// configurable.
type Settings struct {
	Frontend      string        `mapstructure:"frontend"`
	MaxScore      int           `mapstructure:"maxscore"`
	BallSpeed     float64       `mapstructure:"ballspeed"`
	Seed          int64         `mapstructure:"seed"` // 0 seeds from the clock
	LaunchPolicy  string        `mapstructure:"launchpolicy"`
	FontPath      string        `mapstructure:"fontpath"`
	Sound         bool          `mapstructure:"sound"`
	FrameInterval time.Duration `mapstructure:"frameinterval"`
	LogDir        string        `mapstructure:"logdir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("frontend", FrontendWindow)
	v.SetDefault("maxScore", core.MaxScore)
	v.SetDefault("ballSpeed", core.BallSpeed)
	v.SetDefault("seed", 0)
	v.SetDefault("launchPolicy", core.LaunchKeep.String())
	v.SetDefault("fontPath", "assets/Minecraft.ttf")
	v.SetDefault("sound", true)
	v.SetDefault("frameInterval", 16*time.Millisecond)
	v.SetDefault("logDir", "./")
}

// Flags declares the command line flags Load understands.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pong", pflag.ContinueOnError)
	fs.String("config", "", "path of a .properties file (default properties/$PONG_ENV.properties)")
	fs.String("frontend", FrontendWindow, "window or terminal")
	fs.Int64("seed", 0, "random seed, 0 seeds from the clock")
	fs.Int("max-score", core.MaxScore, "points needed to win")
	return fs
}

// DefaultPath returns properties/<env>.properties, env coming from PONG_ENV.
func DefaultPath() string {
	env := os.Getenv("PONG_ENV")
	if env == "" {
		env = DefaultEnv
	}
	return fmt.Sprintf("%s/%s.properties", "properties", env)
}

// Load reads settings from path on fsys, then PONG_* environment variables, then any
// flags set in flags. A missing file leaves the defaults in place. flags may be nil.
func Load(fsys afero.Fs, path string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigType("properties")
	setDefaults(v)

	v.SetEnvPrefix("PONG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{"frontend": "frontend", "seed": "seed", "maxScore": "max-score"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup("config"); f != nil && f.Changed {
			path = f.Value.String()
		}
	}

	if path == "" {
		path = DefaultPath()
	}
	if ok, _ := afero.Exists(fsys, path); ok {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	hook := viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())
	if err := v.Unmarshal(&s, hook); err != nil {
		return Settings{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return s, s.Validate()
}

var ErrInvalid = errors.New("invalid settings")

func (s Settings) Validate() error {
	if s.Frontend != FrontendWindow && s.Frontend != FrontendTerminal {
		return fmt.Errorf("%w: frontend %q", ErrInvalid, s.Frontend)
	}
	if s.MaxScore < 1 {
		return fmt.Errorf("%w: maxScore %d", ErrInvalid, s.MaxScore)
	}
	if s.BallSpeed <= 0 {
		return fmt.Errorf("%w: ballSpeed %v", ErrInvalid, s.BallSpeed)
	}
	if s.FrameInterval <= 0 {
		return fmt.Errorf("%w: frameInterval %v", ErrInvalid, s.FrameInterval)
	}
	if _, err := core.ParseLaunchPolicy(s.LaunchPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Game converts the settings into the scene controller's configuration.
func (s Settings) Game() core.GameConfig {
	launch, _ := core.ParseLaunchPolicy(s.LaunchPolicy)
	return core.GameConfig{MaxScore: s.MaxScore, BallSpeed: s.BallSpeed, Launch: launch}
}
