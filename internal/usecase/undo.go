package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// UndoInput contains the parameters for undoing the last operation.
type UndoInput struct {
	// Namespace must name the currently selected namespace. Undo touches
	// arbitrary fields, so it is only meaningful within one namespace.
	Namespace string
}

// UndoOutput contains the result of an undo.
type UndoOutput struct{}

// Undo is the use case for reverting the most recent backend operation.
// There is no optimistic projection: the resulting state is unknown until
// the server responds. On success the task list, task detail, and history
// caches are all invalidated so they reconcile from the new ground truth.
type Undo struct {
	cache     domain.QueryCache
	transport domain.Transport
	notifier  domain.Notifier
	logger    domain.Logger
}

// NewUndo creates a new Undo use case.
func NewUndo(cache domain.QueryCache, transport domain.Transport, notifier domain.Notifier, logger domain.Logger) *Undo {
	return &Undo{
		cache:     cache,
		transport: transport,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute reverts the most recent operation in the namespace. A missing
// namespace is a local precondition failure: it is rejected before any
// remote call and mutates nothing.
func (uc *Undo) Execute(ctx context.Context, in UndoInput) (*UndoOutput, error) {
	if in.Namespace == "" {
		uc.notifier.Error("select a namespace before undoing")
		return nil, domain.ErrNoNamespace
	}

	if err := uc.transport.Undo(ctx); err != nil {
		uc.notifier.Error(err.Error())
		return nil, err
	}

	invalidateAfterHistoryChange(uc.cache)
	uc.logger.Info("usecase", "undo applied in "+in.Namespace)
	uc.notifier.Info("Undid last operation")
	return &UndoOutput{}, nil
}

// invalidateAfterHistoryChange marks the three cache families affected by
// undo/redo stale: lists, details, and the history itself.
func invalidateAfterHistoryChange(cache domain.QueryCache) {
	cache.InvalidatePrefix(domain.KeyPrefixTaskList)
	cache.InvalidatePrefix(domain.KeyPrefixTaskShow)
	cache.InvalidatePrefix(domain.KeyPrefixHistory)
}
