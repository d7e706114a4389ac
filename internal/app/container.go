// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/bridge"
	"github.com/taskdeck/taskdeck/internal/infra/config"
	"github.com/taskdeck/taskdeck/internal/infra/logging"
	"github.com/taskdeck/taskdeck/internal/infra/querycache"
	"github.com/taskdeck/taskdeck/internal/infra/statefile"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Paths holds the filesystem locations the application works with.
type Paths struct {
	WorkDir  string // Directory taskdeck was launched from
	StateDir string // Per-user state directory (log, session file)
}

// newPaths derives the application paths for the given working directory.
func newPaths(workDir string) Paths {
	return Paths{
		WorkDir:  workDir,
		StateDir: defaultStateDir(),
	}
}

// defaultStateDir returns the per-user state directory, following
// XDG_STATE_HOME when set.
func defaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, domain.AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", domain.AppDirName)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Transport    domain.Transport
	Cache        domain.QueryCache
	Notifier     domain.Notifier
	Clock        domain.Clock
	Logger       domain.Logger
	ConfigLoader domain.ConfigLoader
	Session      domain.SessionStore

	// Loaded configuration
	AppConfig *domain.Config

	// Paths
	Paths Paths
}

// New creates a new Container rooted at the given working directory.
func New(workDir, version string) (*Container, error) {
	paths := newPaths(workDir)
	if paths.StateDir != "" {
		if err := os.MkdirAll(paths.StateDir, 0o755); err != nil {
			return nil, err
		}
	}

	configLoader := config.NewLoader(workDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// Fall back to defaults; warnings still surface via AppConfig.
		appConfig = domain.NewDefaultConfig()
	}

	logger := logging.New(paths.StateDir, logging.ParseLevel(appConfig.Log.Level))

	cache, err := querycache.New(querycache.DefaultSize)
	if err != nil {
		return nil, err
	}

	transport := bridge.New(appConfig.Backend.Command, appConfig.Backend.Args, version, logger)

	return &Container{
		Transport:    transport,
		Cache:        cache,
		Notifier:     NewStderrNotifier(),
		Clock:        domain.RealClock{},
		Logger:       logger,
		ConfigLoader: configLoader,
		Session:      statefile.New(paths.StateDir),
		AppConfig:    appConfig,
		Paths:        paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(transport domain.Transport, cache domain.QueryCache, notifier domain.Notifier, clock domain.Clock, logger domain.Logger, session domain.SessionStore) *Container {
	return &Container{
		Transport: transport,
		Cache:     cache,
		Notifier:  notifier,
		Clock:     clock,
		Logger:    logger,
		Session:   session,
		AppConfig: domain.NewDefaultConfig(),
	}
}

// WithNotifier returns a shallow copy of the container that routes
// notifications elsewhere. The TUI uses this to turn notifications into
// messages instead of stderr lines.
func (c *Container) WithNotifier(n domain.Notifier) *Container {
	copied := *c
	copied.Notifier = n
	return &copied
}

// Close releases the backend process and other held resources.
func (c *Container) Close() error {
	return c.Transport.Close()
}

// UseCase factory methods

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Cache, c.Transport, c.Logger)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Cache, c.Transport)
}

// CreateTasksUseCase returns a new CreateTasks use case.
func (c *Container) CreateTasksUseCase() *usecase.CreateTasks {
	return usecase.NewCreateTasks(c.Cache, c.Transport, c.Logger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Cache, c.Transport, c.Notifier, c.Clock, c.Logger)
}

// UpdateStatusUseCase returns a new UpdateStatus use case.
func (c *Container) UpdateStatusUseCase() *usecase.UpdateStatus {
	return usecase.NewUpdateStatus(c.Cache, c.Transport, c.Notifier, c.Clock, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Cache, c.Transport, c.Notifier, c.Logger)
}

// ToggleStepUseCase returns a new ToggleStep use case.
func (c *Container) ToggleStepUseCase() *usecase.ToggleStep {
	return usecase.NewToggleStep(c.Cache, c.Transport, c.Notifier, c.Logger)
}

// GetStorageUseCase returns a new GetStorage use case.
func (c *Container) GetStorageUseCase() *usecase.GetStorage {
	return usecase.NewGetStorage(c.Cache, c.Transport)
}

// SetStorageModeUseCase returns a new SetStorageMode use case.
func (c *Container) SetStorageModeUseCase() *usecase.SetStorageMode {
	return usecase.NewSetStorageMode(c.Cache, c.Transport, c.Notifier, c.Logger)
}

// GetHistoryUseCase returns a new GetHistory use case.
func (c *Container) GetHistoryUseCase() *usecase.GetHistory {
	return usecase.NewGetHistory(c.Cache, c.Transport)
}

// UndoUseCase returns a new Undo use case.
func (c *Container) UndoUseCase() *usecase.Undo {
	return usecase.NewUndo(c.Cache, c.Transport, c.Notifier, c.Logger)
}

// RedoUseCase returns a new Redo use case.
func (c *Container) RedoUseCase() *usecase.Redo {
	return usecase.NewRedo(c.Cache, c.Transport, c.Notifier, c.Logger)
}
