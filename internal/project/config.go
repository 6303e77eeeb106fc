package project

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig wraps every problem found in roost.toml.
var ErrInvalidConfig = errors.New("invalid configuration")

// Switch is a tri-state setting: forced on, forced off, or decided by
// whether stdout is a terminal.
type Switch string

const (
	SwitchAuto Switch = "auto"
	SwitchOn   Switch = "on"
	SwitchOff  Switch = "off"
)

// ParseSwitch accepts auto, on/always/true and off/never/false.
func ParseSwitch(value string) (Switch, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return SwitchAuto, nil
	case "on", "always", "true":
		return SwitchOn, nil
	case "off", "never", "false":
		return SwitchOff, nil
	default:
		return "", fmt.Errorf("invalid value %q (expected auto|on|off)", value)
	}
}

// Resolve turns the switch into a decision; isTTY is only consulted for auto.
func (s Switch) Resolve(isTTY bool) bool {
	switch s {
	case SwitchOn:
		return true
	case SwitchOff:
		return false
	default:
		return isTTY
	}
}

type RenderConfig struct {
	// Color picks the plain or ANSI variant of the banner.
	Color    string `toml:"color"`
	Format   string `toml:"format"`
	TabWidth int    `toml:"tab_width"`
}

type PromptConfig struct {
	UI string `toml:"ui"`
}

// DefaultsConfig holds the answers used when a prompt is left empty.
type DefaultsConfig struct {
	Path     string `toml:"path"`
	LineNo   int    `toml:"lineno"`
	ErrNum   int    `toml:"errnum"`
	Severity string `toml:"severity"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
	// CPUProfile and MemProfile are pprof output paths; empty disables them.
	CPUProfile string `toml:"cpu_profile"`
	MemProfile string `toml:"mem_profile"`
}

// Config mirrors roost.toml.
type Config struct {
	// Path is where the config was read from; empty for built-in defaults.
	Path string `toml:"-"`

	Render   RenderConfig   `toml:"render"`
	Prompt   PromptConfig   `toml:"prompt"`
	Defaults DefaultsConfig `toml:"defaults"`
	Trace    TraceConfig    `toml:"trace"`
}

// Default returns the settings used when no roost.toml exists. Color is
// always on, like the tool has always behaved.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Color:    string(SwitchOn),
			Format:   "pretty",
			TabWidth: 4,
		},
		Prompt: PromptConfig{
			UI: string(SwitchOff),
		},
		Defaults: DefaultsConfig{
			Path:     "<stdin>",
			LineNo:   1,
			ErrNum:   69,
			Severity: "error",
		},
		Trace: TraceConfig{
			Level:  "off",
			Format: "text",
			Output: "-",
		},
	}
}

// Load decodes path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w: %w", path, ErrInvalidConfig, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: %w: unknown keys: %s", path, ErrInvalidConfig, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds roost.toml above startDir and loads it, falling back to Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the values that do not need another package to interpret.
// Enumerations owned by other packages (format, severity, trace level) are
// parsed where they are used.
func (c Config) Validate() error {
	if _, err := ParseSwitch(c.Render.Color); err != nil {
		return fmt.Errorf("%w: [render].color: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseSwitch(c.Prompt.UI); err != nil {
		return fmt.Errorf("%w: [prompt].ui: %w", ErrInvalidConfig, err)
	}
	if c.Render.TabWidth < 1 || c.Render.TabWidth > 16 {
		return fmt.Errorf("%w: [render].tab_width must be within 1..16, got %d", ErrInvalidConfig, c.Render.TabWidth)
	}
	if strings.TrimSpace(c.Defaults.Path) == "" {
		return fmt.Errorf("%w: [defaults].path must not be empty", ErrInvalidConfig)
	}
	if c.Defaults.LineNo < 1 || c.Defaults.LineNo > math.MaxInt32 {
		return fmt.Errorf("%w: [defaults].lineno must be positive, got %d", ErrInvalidConfig, c.Defaults.LineNo)
	}
	if c.Defaults.ErrNum < 0 || c.Defaults.ErrNum > 9999 {
		return fmt.Errorf("%w: [defaults].errnum must be within 0..9999, got %d", ErrInvalidConfig, c.Defaults.ErrNum)
	}
	return nil
}
