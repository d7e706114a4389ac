package domain

// Config file name used in both global and local locations.
const ConfigFileName = "config.toml"

// AppDirName is the directory name under XDG config/state homes.
const AppDirName = "taskdeck"

// Config represents the application configuration.
type Config struct {
	Backend  BackendConfig // [backend] settings
	Log      LogConfig     // [log] settings
	UI       UIConfig      // [ui] settings
	Warnings []string      // Unknown key warnings collected at load time
}

// BackendConfig holds backend process settings from the [backend] section.
type BackendConfig struct {
	Command string   // Backend executable
	Args    []string // Arguments passed to the backend
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// UIConfig holds display defaults from the [ui] section.
type UIConfig struct {
	Namespace string // Default namespace filter
	Status    string // Default status filter
	Domain    string // Default domain filter
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{Command: "taskd"},
		Log:     LogConfig{Level: "info"},
	}
}
