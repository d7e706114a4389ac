package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// DefaultHistoryLimit is used when no limit is given.
const DefaultHistoryLimit = 50

// GetHistoryInput contains the parameters for reading operation history.
type GetHistoryInput struct {
	Namespace string
	Limit     int
	Refresh   bool
}

// GetHistoryOutput contains operation history entries, most recent first
// (server-defined ordering).
type GetHistoryOutput struct {
	Entries   []domain.HistoryEntry
	FromCache bool
}

// historyEntry is the cached value for a history key. Limit records the
// fetch limit so a complete short history can be told apart from a
// truncated one.
type historyEntry struct {
	Limit   int
	Entries []domain.HistoryEntry
}

// GetHistory is the use case for reading the backend operation history.
type GetHistory struct {
	cache     domain.QueryCache
	transport domain.Transport
}

// NewGetHistory creates a new GetHistory use case.
func NewGetHistory(cache domain.QueryCache, transport domain.Transport) *GetHistory {
	return &GetHistory{
		cache:     cache,
		transport: transport,
	}
}

// Execute returns history entries, cached when fresh.
func (uc *GetHistory) Execute(ctx context.Context, in GetHistoryInput) (*GetHistoryOutput, error) {
	if in.Limit <= 0 {
		in.Limit = DefaultHistoryLimit
	}
	key := domain.HistoryKey(in.Namespace)

	if !in.Refresh && !uc.cache.IsStale(key) {
		if v, ok := uc.cache.Get(key); ok {
			// An entry from a smaller fetch may be truncated, so only
			// serve it when it covers the requested limit; otherwise
			// fall through to the transport.
			if e, ok := v.(historyEntry); ok && (len(e.Entries) >= in.Limit || e.Limit >= in.Limit) {
				n := len(e.Entries)
				if n > in.Limit {
					n = in.Limit
				}
				out := append([]domain.HistoryEntry(nil), e.Entries[:n]...)
				return &GetHistoryOutput{Entries: out, FromCache: true}, nil
			}
		}
	}

	entries, err := uc.transport.History(ctx, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	if ctx.Err() == nil {
		cached := historyEntry{Limit: in.Limit, Entries: append([]domain.HistoryEntry(nil), entries...)}
		uc.cache.Put(key, cached)
	}
	return &GetHistoryOutput{Entries: entries}, nil
}
