// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3; env overrides applied last

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/termscreen/internal/log"
	"github.com/mauromedda/termscreen/pkg/screen"
)

// Settings holds the merged configuration. Boolean fields are pointers so a
// project file can switch off what the global file switched on.
type Settings struct {
	Backend         string `yaml:"backend,omitempty"`
	AlternateScreen *bool  `yaml:"alternate_screen,omitempty"`
	RawMode         *bool  `yaml:"raw_mode,omitempty"`
	KeepRawOnExit   *bool  `yaml:"keep_raw_on_exit,omitempty"`
	LogLevel        string `yaml:"log_level,omitempty"`
	Title           string `yaml:"title,omitempty"`
}

// Load reads and merges global and project-local settings, expands ${VAR}
// references and applies TERMSCREEN_* environment overrides.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	return loadPaths(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

func loadPaths(globalPath, projectPath string) (*Settings, error) {
	global, err := loadFile(globalPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(projectPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	ApplyEnvOverrides(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Set project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Backend != "" {
		result.Backend = project.Backend
	}
	if project.AlternateScreen != nil {
		result.AlternateScreen = project.AlternateScreen
	}
	if project.RawMode != nil {
		result.RawMode = project.RawMode
	}
	if project.KeepRawOnExit != nil {
		result.KeepRawOnExit = project.KeepRawOnExit
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.Title != "" {
		result.Title = project.Title
	}

	return &result
}

// Validate checks the enumerated fields.
func (s *Settings) Validate() error {
	if _, err := screen.ParsePreference(s.Backend); err != nil {
		return fmt.Errorf("config backend: %w", err)
	}
	if s.LogLevel != "" {
		if _, err := log.ParseLevel(s.LogLevel); err != nil {
			return fmt.Errorf("config log_level: %w", err)
		}
	}
	return nil
}

// Preference returns the backend preference; Validate has already vetted it.
func (s *Settings) Preference() screen.Preference {
	p, _ := screen.ParsePreference(s.Backend)
	return p
}

// UseAlternateScreen defaults to true.
func (s *Settings) UseAlternateScreen() bool { return boolOr(s.AlternateScreen, true) }

// UseRawMode defaults to true.
func (s *Settings) UseRawMode() bool { return boolOr(s.RawMode, true) }

// KeepRaw defaults to false.
func (s *Settings) KeepRaw() bool { return boolOr(s.KeepRawOnExit, false) }

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
