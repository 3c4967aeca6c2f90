package flatfile

import (
	"context"
	"errors"
	"os"

	"brm-service/internal/app/contracts"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"
	"brm-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Store reads and rewrites whole collections, each held as one JSON array
// document in the backend.
type Store struct {
	backend contracts.DocumentBackend
	locker  contracts.KeyedLocker
	Log     *zap.Logger
}

func NewStore(backend contracts.DocumentBackend, locker contracts.KeyedLocker, logger *zap.Logger) *Store {
	return &Store{
		backend: backend,
		locker:  locker,
		Log:     logger,
	}
}

// Init creates every missing collection document holding an empty array.
func (s *Store) Init(ctx context.Context, collections ...string) error {
	for _, collection := range collections {
		exists, err := s.backend.DocumentExists(ctx, collection)
		if err != nil {
			return exceptions.ErrStorageRead(err, collection)
		}
		if exists {
			continue
		}
		if err := s.backend.WriteDocument(ctx, collection, []byte("[]")); err != nil {
			return exceptions.ErrStorageWrite(err, collection)
		}
		s.Log.Info("flatfile.Store.Init created collection",
			zap.String(constvars.LoggingCollectionKey, collection),
		)
	}
	return nil
}

// Update runs fn while holding the collection lock, so a load-modify-save
// cycle is never interleaved with another one on the same collection.
func (s *Store) Update(ctx context.Context, collection string, fn func(ctx context.Context) error) error {
	key := utils.GenerateLockKey(constvars.LockKeyCollectionFormat, collection)
	return s.locker.WithLock(ctx, key, fn)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

// Load returns the parsed collection. A missing, unreadable or malformed
// document yields an empty collection; the failure is only logged.
func Load[T any](ctx context.Context, s *Store, collection string) []T {
	requestID := utils.GetRequestID(ctx)

	data, err := s.backend.ReadDocument(ctx, collection)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.Log.Warn("flatfile.Load collection document missing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCollectionKey, collection),
			)
		} else {
			s.Log.Error("flatfile.Load error reading collection",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCollectionKey, collection),
				zap.Error(err),
			)
		}
		return []T{}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		s.Log.Error("flatfile.Load error parsing collection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(err),
		)
		return []T{}
	}

	// Records are decoded one by one so a single entry that is not an object
	// costs only itself.
	items := make([]T, 0, len(records))
	for i, record := range records {
		var item T
		if err := json.Unmarshal(record, &item); err != nil {
			s.Log.Warn("flatfile.Load skipping undecodable record",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCollectionKey, collection),
				zap.Int(constvars.LoggingIndexKey, i),
				zap.Error(err),
			)
			continue
		}
		items = append(items, item)
	}
	return items
}

// Save overwrites the collection document with items as indented JSON.
func Save[T any](ctx context.Context, s *Store, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := s.backend.WriteDocument(ctx, collection, data); err != nil {
		s.Log.Error("flatfile.Save error writing collection",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(err, collection)
	}
	return nil
}
