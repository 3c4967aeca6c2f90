package flatfile

import (
	"context"

	"brm-service/internal/app/contracts"
	"brm-service/internal/app/models"
)

type repository[T models.Entity] struct {
	store      *Store
	collection string
}

func NewRepository[T models.Entity](store *Store, collection string) contracts.Repository[T] {
	return &repository[T]{
		store:      store,
		collection: collection,
	}
}

func (r *repository[T]) FindAll(ctx context.Context) ([]T, error) {
	return Load[T](ctx, r.store, r.collection), nil
}

func (r *repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	for _, item := range Load[T](ctx, r.store, r.collection) {
		if item.GetID() == id {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (r *repository[T]) FindByReference(ctx context.Context, referenceID string) ([]T, error) {
	matches := []T{}
	for _, item := range Load[T](ctx, r.store, r.collection) {
		if item.ReferenceID() == referenceID {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func (r *repository[T]) Insert(ctx context.Context, entity T) error {
	return r.store.Update(ctx, r.collection, func(ctx context.Context) error {
		items := Load[T](ctx, r.store, r.collection)
		items = append(items, entity)
		return Save(ctx, r.store, r.collection, items)
	})
}

func (r *repository[T]) Replace(ctx context.Context, entity T) error {
	return r.store.Update(ctx, r.collection, func(ctx context.Context) error {
		items := Load[T](ctx, r.store, r.collection)
		for i := range items {
			if items[i].GetID() == entity.GetID() {
				items[i] = entity
				return Save(ctx, r.store, r.collection, items)
			}
		}
		return contracts.ErrRecordNotFound
	})
}

func (r *repository[T]) DeleteByID(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.store.Update(ctx, r.collection, func(ctx context.Context) error {
		items := Load[T](ctx, r.store, r.collection)
		kept := r.filter(items, func(item T) bool { return item.GetID() != id })
		if len(kept) == len(items) {
			return nil
		}
		deleted = true
		return Save(ctx, r.store, r.collection, kept)
	})
	return deleted, err
}

func (r *repository[T]) DeleteByReference(ctx context.Context, referenceID string) (int, error) {
	var count int
	err := r.store.Update(ctx, r.collection, func(ctx context.Context) error {
		items := Load[T](ctx, r.store, r.collection)
		kept := r.filter(items, func(item T) bool { return item.ReferenceID() != referenceID })
		count = len(items) - len(kept)
		if count == 0 {
			return nil
		}
		return Save(ctx, r.store, r.collection, kept)
	})
	return count, err
}

func (r *repository[T]) filter(items []T, keep func(item T) bool) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
