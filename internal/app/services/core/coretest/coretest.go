// Package coretest builds file-backed repositories for usecase tests.
package coretest

import (
	"context"
	"sync"
	"testing"
	"time"

	"brm-service/internal/app/contracts"
	"brm-service/internal/app/models"
	"brm-service/internal/app/services/shared/flatfile"
	"brm-service/internal/app/services/shared/locker"
	"brm-service/internal/app/services/shared/repositories"
	"brm-service/internal/app/services/shared/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func NewLocker() contracts.KeyedLocker {
	return locker.NewKeyedLocker(locker.NewMemoryLockService(), time.Minute, 1000, zap.NewNop())
}

// NewRepositories returns repositories over a fresh temporary data directory.
func NewRepositories(t *testing.T) (*contracts.Repositories, contracts.KeyedLocker) {
	t.Helper()
	backend, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	keyed := NewLocker()
	store := flatfile.NewStore(backend, keyed, zap.NewNop())
	repos, err := repositories.NewFileRepositories(context.Background(), store)
	require.NoError(t, err)
	return repos, keyed
}

// RecordingPublisher keeps every published event in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	Err    error
	events []models.StatusChangeEvent
}

func (p *RecordingPublisher) PublishStatusChange(ctx context.Context, event models.StatusChangeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *RecordingPublisher) Ping(ctx context.Context) error {
	return nil
}

func (p *RecordingPublisher) Events() []models.StatusChangeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.StatusChangeEvent(nil), p.events...)
}
