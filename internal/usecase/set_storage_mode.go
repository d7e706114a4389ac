package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// SetStorageModeInput contains the parameters for switching storage mode.
type SetStorageModeInput struct {
	Mode string
}

// SetStorageModeOutput contains the result of the switch.
type SetStorageModeOutput struct {
	Restarted bool
}

// SetStorageMode is the use case for switching the backend storage mode.
// No optimistic projection makes sense here: the backend may restart and
// the whole cache is ground truth no longer, so everything is invalidated
// after the call settles successfully.
type SetStorageMode struct {
	cache     domain.QueryCache
	transport domain.Transport
	notifier  domain.Notifier
	logger    domain.Logger
}

// NewSetStorageMode creates a new SetStorageMode use case.
func NewSetStorageMode(cache domain.QueryCache, transport domain.Transport, notifier domain.Notifier, logger domain.Logger) *SetStorageMode {
	return &SetStorageMode{
		cache:     cache,
		transport: transport,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute switches the storage mode.
func (uc *SetStorageMode) Execute(ctx context.Context, in SetStorageModeInput) (*SetStorageModeOutput, error) {
	if !domain.ValidStorageMode(in.Mode) {
		uc.notifier.Error("invalid storage mode: " + in.Mode)
		return nil, domain.ErrInvalidStorage
	}

	restarted, err := uc.transport.SetStorageMode(ctx, in.Mode)
	if err != nil {
		uc.notifier.Error(err.Error())
		return nil, fmt.Errorf("set storage mode: %w", err)
	}

	uc.cache.InvalidatePrefix(domain.KeyPrefixTaskList)
	uc.cache.InvalidatePrefix(domain.KeyPrefixTaskShow)
	uc.cache.InvalidatePrefix(domain.KeyPrefixHistory)
	uc.cache.Invalidate(domain.KeyStorage)

	uc.logger.Info("usecase", "storage mode set to "+in.Mode)
	uc.notifier.Info("Storage mode set to " + in.Mode)
	return &SetStorageModeOutput{Restarted: restarted}, nil
}
