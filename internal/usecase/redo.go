package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// RedoInput contains the parameters for re-applying an undone operation.
type RedoInput struct {
	Namespace string
}

// RedoOutput contains the result of a redo.
type RedoOutput struct{}

// Redo is the use case for re-applying the most recently undone backend
// operation. Same shape as Undo: no projection, full reconciliation on
// success.
type Redo struct {
	cache     domain.QueryCache
	transport domain.Transport
	notifier  domain.Notifier
	logger    domain.Logger
}

// NewRedo creates a new Redo use case.
func NewRedo(cache domain.QueryCache, transport domain.Transport, notifier domain.Notifier, logger domain.Logger) *Redo {
	return &Redo{
		cache:     cache,
		transport: transport,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute re-applies the most recently undone operation.
func (uc *Redo) Execute(ctx context.Context, in RedoInput) (*RedoOutput, error) {
	if in.Namespace == "" {
		uc.notifier.Error("select a namespace before redoing")
		return nil, domain.ErrNoNamespace
	}

	if err := uc.transport.Redo(ctx); err != nil {
		uc.notifier.Error(err.Error())
		return nil, err
	}

	invalidateAfterHistoryChange(uc.cache)
	uc.logger.Info("usecase", "redo applied in "+in.Namespace)
	uc.notifier.Info("Redid last undone operation")
	return &RedoOutput{}, nil
}
