package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used by unit tests. Documents are kept
// as bson maps produced by a marshal round-trip so decoding behaves like
// the Mongo-backed store.
type MemoryStore struct {
	mu   sync.RWMutex
	cols map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cols: make(map[string][]bson.M)}
}

func toDoc(v interface{}) (bson.M, error) {
	b, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func toRaw(m bson.M) (bson.Raw, error) {
	b, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	return bson.Raw(b), nil
}

func (s *MemoryStore) FindSingleton(ctx context.Context, col string) (bson.Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.cols[col]
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return toRaw(docs[0])
}

func (s *MemoryStore) ReplaceSingleton(ctx context.Context, col string, doc interface{}) error {
	m, err := toDoc(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols[col] = []bson.M{m}
	return nil
}

func (s *MemoryStore) MergeSingleton(ctx context.Context, col string, set bson.M) error {
	norm, err := toDoc(set)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.cols[col]
	if len(docs) == 0 {
		// $set upsert against an empty collection creates the document
		s.cols[col] = []bson.M{norm}
		return nil
	}
	for k, v := range norm {
		docs[0][k] = v
	}
	return nil
}

func (s *MemoryStore) Insert(ctx context.Context, col string, doc interface{}) error {
	m, err := toDoc(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols[col] = append(s.cols[col], m)
	return nil
}

func (s *MemoryStore) FindAll(ctx context.Context, col, sortKey string, descending bool) ([]bson.Raw, error) {
	s.mu.RLock()
	docs := append([]bson.M{}, s.cols[col]...)
	s.mu.RUnlock()

	// stable sort keeps insertion order for equal keys
	sort.SliceStable(docs, func(i, j int) bool {
		less := compareValues(docs[i][sortKey], docs[j][sortKey]) < 0
		if descending {
			return !less && compareValues(docs[i][sortKey], docs[j][sortKey]) != 0
		}
		return less
	})

	out := make([]bson.Raw, 0, len(docs))
	for _, m := range docs {
		raw, err := toRaw(m)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func (s *MemoryStore) FindOneBy(ctx context.Context, col string, filter bson.M) (bson.Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.cols[col] {
		if matches(m, filter) {
			return toRaw(m)
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateByID(ctx context.Context, col, id string, set bson.M) error {
	norm, err := toDoc(set)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.cols[col] {
		if m["id"] == id {
			for k, v := range norm {
				m[k] = v
			}
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteByID(ctx context.Context, col, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.cols[col]
	for i, m := range docs {
		if m["id"] == id {
			s.cols[col] = append(docs[:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if fmt.Sprint(doc[k]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

// compareValues orders the sort-key types the adapter actually stores:
// numbers, strings and bson datetimes. Missing keys sort first.
func compareValues(a, b interface{}) int {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	as := fmt.Sprint(a)
	bs := fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case primitive.DateTime:
		return float64(n), true
	case nil:
		return 0, true
	}
	return 0, false
}
