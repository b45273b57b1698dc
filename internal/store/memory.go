package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used by tests. Documents are kept in
// insertion order as decoded bson maps so that field names, enum strings and
// timestamp encoding match what the mongo-backed store persists.
type MemoryStore struct {
	mu    sync.RWMutex
	colls map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{colls: make(map[string][]bson.M)}
}

func (s *MemoryStore) Insert(_ context.Context, collection string, doc any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: failed to encode document for %s: %w", collection, err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("store: failed to decode document for %s: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.colls[collection] = append(s.colls[collection], m)
	return nil
}

func (s *MemoryStore) FindOne(_ context.Context, collection string, filter Filter, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.colls[collection] {
		if matches(doc, filter) {
			return decodeInto(doc, out)
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Find(_ context.Context, collection string, filter Filter, opts FindOptions, out any) error {
	s.mu.RLock()
	matched := make([]bson.M, 0)
	for _, doc := range s.colls[collection] {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	s.mu.RUnlock()

	if opts.Sort != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			less := compare(matched[i][opts.Sort], matched[j][opts.Sort]) < 0
			if opts.Desc {
				return compare(matched[i][opts.Sort], matched[j][opts.Sort]) > 0
			}
			return less
		})
	}
	if opts.Skip > 0 {
		if opts.Skip >= int64(len(matched)) {
			matched = nil
		} else {
			matched = matched[opts.Skip:]
		}
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	slice := reflect.ValueOf(out).Elem()
	slice.Set(reflect.MakeSlice(slice.Type(), 0, len(matched)))
	for _, doc := range matched {
		elem := reflect.New(slice.Type().Elem())
		if err := decodeInto(doc, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (s *MemoryStore) Count(_ context.Context, collection string, filter Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, doc := range s.colls[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Update(_ context.Context, collection string, filter Filter, set map[string]any) error {
	normalized, err := normalizeSet(set)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.colls[collection] {
		if matches(doc, filter) {
			for k, v := range normalized {
				doc[k] = v
			}
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) FindOneAndUpdate(_ context.Context, collection string, filter Filter, patch Patch, out any) error {
	var normalized bson.M
	if len(patch.Set) > 0 {
		var err error
		normalized, err = normalizeSet(patch.Set)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.colls[collection] {
		if matches(doc, filter) {
			for k, v := range normalized {
				doc[k] = v
			}
			for field, delta := range patch.Inc {
				switch v := doc[field].(type) {
				case float64:
					doc[field] = v + float64(delta)
				case int64:
					doc[field] = v + delta
				case int32:
					doc[field] = int64(v) + delta
				case nil:
					doc[field] = delta
				default:
					return fmt.Errorf("store: cannot increment non-numeric field %s.%s", collection, field)
				}
			}
			return decodeInto(doc, out)
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Delete(_ context.Context, collection string, filter Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.colls[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			s.colls[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) DeleteMany(_ context.Context, collection string, filter Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []bson.M
	var removed int64
	for _, doc := range s.colls[collection] {
		if matches(doc, filter) {
			removed++
			continue
		}
		kept = append(kept, doc)
	}
	s.colls[collection] = kept
	return removed, nil
}

func (s *MemoryStore) Increment(_ context.Context, collection string, filter Filter, field string, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.colls[collection] {
		if matches(doc, filter) {
			switch v := doc[field].(type) {
			case float64:
				doc[field] = v + float64(delta)
			case int64:
				doc[field] = v + delta
			case int32:
				doc[field] = int64(v) + delta
			case nil:
				doc[field] = delta
			default:
				return fmt.Errorf("store: cannot increment non-numeric field %s.%s", collection, field)
			}
			return nil
		}
	}
	return nil
}

func decodeInto(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: failed to re-encode document: %w", err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("store: failed to decode document: %w", err)
	}
	return nil
}

func normalizeSet(set map[string]any) (bson.M, error) {
	raw, err := bson.Marshal(bson.M(set))
	if err != nil {
		return nil, fmt.Errorf("store: failed to encode update fields: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("store: failed to decode update fields: %w", err)
	}
	return m, nil
}

func matches(doc bson.M, f Filter) bool {
	for field, cond := range f {
		switch c := cond.(type) {
		case Range:
			if c.Gte != nil && compare(doc[field], c.Gte) < 0 {
				return false
			}
			if c.Lte != nil && compare(doc[field], c.Lte) > 0 {
				return false
			}
		case Contains:
			str, ok := doc[field].(string)
			if !ok || !strings.Contains(strings.ToLower(str), strings.ToLower(string(c))) {
				return false
			}
		case In:
			if !matchesIn(doc[field], c) {
				return false
			}
		case Or:
			anyMatch := false
			for _, alt := range c {
				if matches(doc, alt) {
					anyMatch = true
					break
				}
			}
			if !anyMatch {
				return false
			}
		default:
			if compare(doc[field], cond) != 0 {
				return false
			}
		}
	}
	return true
}

// matchesIn mirrors mongo's $in: scalar fields match by equality, array
// fields match when any element is in the set.
func matchesIn(value any, set In) bool {
	if arr, ok := value.(bson.A); ok {
		for _, elem := range arr {
			for _, want := range set {
				if compare(elem, want) == 0 {
					return true
				}
			}
		}
		return false
	}
	for _, want := range set {
		if compare(value, want) == 0 {
			return true
		}
	}
	return false
}

// compare orders two bson-decoded values. Numbers compare numerically,
// timestamps chronologically, everything else by string form. Missing values
// sort first.
func compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if at, aok := asTime(a); aok {
		if bt, bok := asTime(b); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	as := fmt.Sprintf("%v", a)
	bs := fmt.Sprintf("%v", b)
	return strings.Compare(as, bs)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time(), true
	default:
		return time.Time{}, false
	}
}
