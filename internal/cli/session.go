package cli

import (
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// currentNamespace resolves the namespace commands operate in: the
// persisted session selection first, then the configured default.
func currentNamespace(c *app.Container) string {
	if c.Session != nil {
		if state, err := c.Session.Load(); err == nil && state.Namespace != "" {
			return state.Namespace
		}
	}
	if c.AppConfig != nil {
		return c.AppConfig.UI.Namespace
	}
	return ""
}

// defaultFilter builds the filter commands start from, before flag
// overrides are applied.
func defaultFilter(c *app.Container) domain.TaskFilter {
	filter := domain.TaskFilter{Namespace: currentNamespace(c)}
	if c.AppConfig != nil {
		if c.AppConfig.UI.Status != "" {
			if status, err := domain.ParseStatus(c.AppConfig.UI.Status); err == nil {
				filter.Status = status
			}
		}
		filter.Domain = c.AppConfig.UI.Domain
	}
	return filter
}

// saveNamespace persists the namespace selection for later invocations.
func saveNamespace(c *app.Container, namespace string) error {
	if c.Session == nil {
		return nil
	}
	state, err := c.Session.Load()
	if err != nil {
		state = &domain.SessionState{}
	}
	state.Namespace = namespace
	return c.Session.Save(state)
}
