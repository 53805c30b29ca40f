package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultBaseDir is the base configuration directory name
	DefaultBaseDir = ".giztoy"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.yaml"
)

// Config represents the main configuration structure for a CLI app
type Config struct {
	// AppName is the application name (e.g., "wavescale")
	AppName string `yaml:"-" json:"-"`

	// CurrentProfile is the name of the render profile used when none is given
	CurrentProfile string `yaml:"current_profile,omitempty" json:"current_profile,omitempty"`

	// Profiles is a map of profile name to render settings
	Profiles map[string]*Profile `yaml:"profiles,omitempty" json:"profiles,omitempty"`

	// configPath is the path to the config file
	configPath string
}

// Profile holds render settings. Zero fields mean "use the built-in default".
type Profile struct {
	// Name is the profile name
	Name string `yaml:"name" json:"name"`

	// SampleRate is samples per second
	SampleRate int `yaml:"sample_rate,omitempty" json:"sample_rate,omitempty"`

	// Duration is seconds per note
	Duration float64 `yaml:"duration,omitempty" json:"duration,omitempty"`

	// Amplitude is the peak sample magnitude
	Amplitude int `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`

	// Shape is the waveform name (sine, square, triangle, sawtooth)
	Shape string `yaml:"shape,omitempty" json:"shape,omitempty"`

	// Format is the output container (wav, raw)
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// OutputDir is where rendered files are written
	OutputDir string `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`

	// CheckOverflow rejects renders whose samples would wrap
	CheckOverflow bool `yaml:"check_overflow,omitempty" json:"check_overflow,omitempty"`
}

// LoadConfig loads or creates configuration for the specified app
func LoadConfig(appName string) (*Config, error) {
	return LoadConfigWithPath(appName, "")
}

// LoadConfigWithPath loads configuration from a custom path
func LoadConfigWithPath(appName, customPath string) (*Config, error) {
	configPath := customPath
	if configPath == "" {
		paths, err := NewPaths(appName)
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = paths.ConfigFile()
	}

	cfg := &Config{
		AppName:    appName,
		Profiles:   make(map[string]*Profile),
		configPath: configPath,
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Nothing saved yet; Save creates the file on first change.
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Ensure profiles map is initialized
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}

	cfg.AppName = appName
	cfg.configPath = configPath

	return cfg, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the config directory path
func (c *Config) Dir() string {
	return filepath.Dir(c.configPath)
}

// AddProfile adds or replaces a profile
func (c *Config) AddProfile(name string, p *Profile) error {
	p.Name = name
	c.Profiles[name] = p
	return c.Save()
}

// DeleteProfile removes a profile
func (c *Config) DeleteProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}
	delete(c.Profiles, name)
	if c.CurrentProfile == name {
		c.CurrentProfile = ""
	}
	return c.Save()
}

// UseProfile sets the current profile
func (c *Config) UseProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}
	c.CurrentProfile = name
	return c.Save()
}

// GetProfile returns a specific profile
func (c *Config) GetProfile(name string) (*Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found", name)
	}
	return p, nil
}

// ResolveProfile returns the named profile, the current profile if name is
// empty, or an empty profile when neither is set.
func (c *Config) ResolveProfile(name string) (*Profile, error) {
	if name == "" {
		name = c.CurrentProfile
	}
	if name == "" {
		return &Profile{}, nil
	}
	return c.GetProfile(name)
}

// ListProfiles returns all profile names, sorted
func (c *Config) ListProfiles() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a copy of p with every non-zero field of override applied.
func (p Profile) Merge(override Profile) Profile {
	if override.SampleRate != 0 {
		p.SampleRate = override.SampleRate
	}
	if override.Duration != 0 {
		p.Duration = override.Duration
	}
	if override.Amplitude != 0 {
		p.Amplitude = override.Amplitude
	}
	if override.Shape != "" {
		p.Shape = override.Shape
	}
	if override.Format != "" {
		p.Format = override.Format
	}
	if override.OutputDir != "" {
		p.OutputDir = override.OutputDir
	}
	if override.CheckOverflow {
		p.CheckOverflow = true
	}
	return p
}
