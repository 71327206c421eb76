package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Patch exposes the explicitly supplied fields of a partial update.
type Patch interface {
	Fields() bson.M
}

// Now returns the current UTC time at millisecond precision, matching the
// resolution of bson datetimes. Stamping with anything finer would make the
// value handed back to callers diverge from the durable document.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Stamper is implemented (on pointer receivers) by every collection entity
// so CreateOne can assign identity and timestamps in one place.
type Stamper interface {
	Stamp(id string, now time.Time)
}

func decodeOne[T any](raw bson.Raw) (T, error) {
	var v T
	err := bson.Unmarshal(raw, &v)
	return v, err
}

// GetOrInit returns the sole document of a singleton collection, creating
// and persisting def() when none exists yet.
func GetOrInit[T any](ctx context.Context, s Store, col string, def func() T) (T, error) {
	raw, err := s.FindSingleton(ctx, col)
	if err == nil {
		return decodeOne[T](raw)
	}
	var zero T
	if !errors.Is(err, ErrNotFound) {
		return zero, err
	}
	d := def()
	if err := s.ReplaceSingleton(ctx, col, d); err != nil {
		return zero, err
	}
	return d, nil
}

// PatchSingleton merges the supplied fields into the singleton (materializing
// the default first when absent), refreshes updated_at and returns the
// document as re-read from the store.
func PatchSingleton[T any](ctx context.Context, s Store, col string, def func() T, p Patch) (T, error) {
	var zero T
	if _, err := GetOrInit(ctx, s, col, def); err != nil {
		return zero, err
	}
	set := p.Fields()
	set["updated_at"] = Now()
	if err := s.MergeSingleton(ctx, col, set); err != nil {
		return zero, err
	}
	return GetOrInit(ctx, s, col, def)
}

// ListSorted returns all documents of a collection ordered by sortKey.
func ListSorted[T any](ctx context.Context, s Store, col, sortKey string, descending bool) ([]T, error) {
	raws, err := s.FindAll(ctx, col, sortKey, descending)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := decodeOne[T](raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// CreateOne assigns id and equal created/updated timestamps, then persists.
func CreateOne(ctx context.Context, s Store, col string, doc Stamper) error {
	doc.Stamp(uuid.NewString(), Now())
	return s.Insert(ctx, col, doc)
}

// PatchByID merges the supplied fields into the document with the given id,
// refreshes updated_at and returns the fresh read. ErrNotFound when no
// document matches.
func PatchByID[T any](ctx context.Context, s Store, col, id string, p Patch) (T, error) {
	var zero T
	set := p.Fields()
	set["updated_at"] = Now()
	if err := s.UpdateByID(ctx, col, id, set); err != nil {
		return zero, err
	}
	raw, err := s.FindOneBy(ctx, col, bson.M{"id": id})
	if err != nil {
		return zero, err
	}
	return decodeOne[T](raw)
}
