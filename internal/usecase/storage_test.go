package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestGetStorage_FetchesAndCaches(t *testing.T) {
	f := newFixture(t)
	f.transport.GetStorageFn = func(context.Context) (*domain.StorageInfo, error) {
		return &domain.StorageInfo{
			CurrentNamespace: "work",
			CurrentStorage:   domain.StorageFile,
			Namespaces: []domain.Namespace{
				{Name: "work", TaskCount: 3},
				{Name: "home", TaskCount: 1},
			},
		}, nil
	}

	uc := NewGetStorage(f.cache, f.transport)
	out, err := uc.Execute(context.Background(), GetStorageInput{})
	require.NoError(t, err)
	assert.False(t, out.FromCache)
	assert.Equal(t, "work", out.Storage.CurrentNamespace)

	out2, err := uc.Execute(context.Background(), GetStorageInput{})
	require.NoError(t, err)
	assert.True(t, out2.FromCache)
	require.Len(t, out2.Storage.Namespaces, 2)
	assert.Equal(t, []string{"storage_get"}, f.transport.Calls)

	// The cached copy is isolated from caller mutation.
	out2.Storage.Namespaces[0].Name = "scribbled"
	out3, err := uc.Execute(context.Background(), GetStorageInput{})
	require.NoError(t, err)
	assert.Equal(t, "work", out3.Storage.Namespaces[0].Name)
}

func TestGetStorage_FetchedValueIsIsolatedFromCache(t *testing.T) {
	f := newFixture(t)
	f.transport.GetStorageFn = func(context.Context) (*domain.StorageInfo, error) {
		return &domain.StorageInfo{
			CurrentNamespace: "work",
			CurrentStorage:   domain.StorageFile,
			Namespaces:       []domain.Namespace{{Name: "work", TaskCount: 3}},
		}, nil
	}

	uc := NewGetStorage(f.cache, f.transport)
	out, err := uc.Execute(context.Background(), GetStorageInput{})
	require.NoError(t, err)
	out.Storage.CurrentNamespace = "scribbled"
	out.Storage.Namespaces[0].Name = "scribbled"

	out2, err := uc.Execute(context.Background(), GetStorageInput{})
	require.NoError(t, err)
	assert.True(t, out2.FromCache)
	assert.Equal(t, "work", out2.Storage.CurrentNamespace)
	assert.Equal(t, "work", out2.Storage.Namespaces[0].Name)
}

func TestSetStorageMode_InvalidMode(t *testing.T) {
	f := newFixture(t)
	uc := NewSetStorageMode(f.cache, f.transport, f.notifier, f.logger)

	_, err := uc.Execute(context.Background(), SetStorageModeInput{Mode: "cloud"})

	require.ErrorIs(t, err, domain.ErrInvalidStorage)
	assert.Empty(t, f.transport.Calls)
	assert.Equal(t, []string{"invalid storage mode: cloud"}, f.notifier.Errors)
}

func TestSetStorageMode_SuccessInvalidatesEverything(t *testing.T) {
	f := newFixture(t)
	listKey := f.seedList(domain.TaskFilter{Namespace: "work"},
		&domain.Task{ID: "T-1", Namespace: "work", Status: domain.StatusTodo},
	)
	showKey := f.seedShow(&domain.Task{ID: "T-1", Namespace: "work"}, "")
	historyKey := domain.HistoryKey("work")
	f.cache.Put(historyKey, []domain.HistoryEntry{{ID: "op-1"}})
	f.cache.Put(domain.KeyStorage, &domain.StorageInfo{CurrentStorage: domain.StorageFile})

	f.transport.SetStorageModeFn = func(_ context.Context, mode string) (bool, error) {
		assert.Equal(t, domain.StorageSQLite, mode)
		return true, nil
	}

	uc := NewSetStorageMode(f.cache, f.transport, f.notifier, f.logger)
	out, err := uc.Execute(context.Background(), SetStorageModeInput{Mode: domain.StorageSQLite})
	require.NoError(t, err)
	assert.True(t, out.Restarted)

	// A mode switch makes the entire cache suspect.
	assert.True(t, f.cache.IsStale(listKey))
	assert.True(t, f.cache.IsStale(showKey))
	assert.True(t, f.cache.IsStale(historyKey))
	assert.True(t, f.cache.IsStale(domain.KeyStorage))
	assert.Equal(t, []string{"Storage mode set to sqlite"}, f.notifier.Infos)
}

func TestSetStorageMode_RemoteFailureLeavesCacheFresh(t *testing.T) {
	f := newFixture(t)
	listKey := f.seedList(domain.TaskFilter{Namespace: "work"},
		&domain.Task{ID: "T-1", Namespace: "work", Status: domain.StatusTodo},
	)

	remoteErr := domain.NewRemoteError("storage_set_mode", "migration failed")
	f.transport.SetStorageModeFn = func(context.Context, string) (bool, error) {
		return false, remoteErr
	}

	uc := NewSetStorageMode(f.cache, f.transport, f.notifier, f.logger)
	_, err := uc.Execute(context.Background(), SetStorageModeInput{Mode: domain.StorageFile})

	require.ErrorIs(t, err, remoteErr)
	assert.False(t, f.cache.IsStale(listKey))
	assert.Equal(t, []string{"migration failed"}, f.notifier.Errors)
}
