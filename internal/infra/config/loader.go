// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Directory holding a project-local config file
	globalConfDir string // Global config directory (e.g. ~/.config/taskdeck)
}

// NewLoader creates a new Loader. localDir is usually the current working
// directory.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, domain.AppDirName)
}

// Load returns the merged configuration. Local config takes precedence
// over global config; both fall back to built-in defaults.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	localPath := filepath.Join(l.localDir, "."+domain.AppDirName+".toml")
	local, err := l.loadFile(localPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to a domain config and
// collects warnings for unknown keys instead of failing the load.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "backend":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "command":
						if s, ok := v.(string); ok {
							res.Backend.Command = s
						}
					case "args":
						if list, ok := v.([]any); ok {
							for _, item := range list {
								if s, ok := item.(string); ok {
									res.Backend.Args = append(res.Backend.Args, s)
								}
							}
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [backend]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "ui":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "namespace":
						if s, ok := v.(string); ok {
							res.UI.Namespace = s
						}
					case "status":
						if s, ok := v.(string); ok {
							res.UI.Status = s
						}
					case "domain":
						if s, ok := v.(string); ok {
							res.UI.Domain = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [ui]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Backend:  base.Backend,
		Log:      base.Log,
		UI:       base.UI,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Backend.Command != "" {
		result.Backend.Command = override.Backend.Command
	}
	if len(override.Backend.Args) > 0 {
		result.Backend.Args = append([]string{}, override.Backend.Args...)
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.UI.Namespace != "" {
		result.UI.Namespace = override.UI.Namespace
	}
	if override.UI.Status != "" {
		result.UI.Status = override.UI.Status
	}
	if override.UI.Domain != "" {
		result.UI.Domain = override.UI.Domain
	}
	return result
}
