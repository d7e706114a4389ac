package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// GetStorageInput contains the parameters for reading storage state.
type GetStorageInput struct {
	Refresh bool
}

// GetStorageOutput contains the backend's storage state.
type GetStorageOutput struct {
	Storage   *domain.StorageInfo
	FromCache bool
}

// GetStorage is the use case for reading namespaces and the backend's
// current storage mode.
type GetStorage struct {
	cache     domain.QueryCache
	transport domain.Transport
}

// NewGetStorage creates a new GetStorage use case.
func NewGetStorage(cache domain.QueryCache, transport domain.Transport) *GetStorage {
	return &GetStorage{
		cache:     cache,
		transport: transport,
	}
}

// Execute returns the storage state, cached when fresh.
func (uc *GetStorage) Execute(ctx context.Context, in GetStorageInput) (*GetStorageOutput, error) {
	if !in.Refresh && !uc.cache.IsStale(domain.KeyStorage) {
		if v, ok := uc.cache.Get(domain.KeyStorage); ok {
			if info, ok := v.(*domain.StorageInfo); ok {
				return &GetStorageOutput{Storage: info.Clone(), FromCache: true}, nil
			}
		}
	}

	info, err := uc.transport.GetStorage(ctx)
	if err != nil {
		return nil, fmt.Errorf("get storage: %w", err)
	}
	if ctx.Err() == nil {
		uc.cache.Put(domain.KeyStorage, info.Clone())
	}
	return &GetStorageOutput{Storage: info}, nil
}
