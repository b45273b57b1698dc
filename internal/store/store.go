package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("store: document not found")

// Filter describes a query against one collection. Keys are document field
// names; values are either plain values (exact match) or one of the condition
// types below. The special key Any holds an Or value for multi-field search.
type Filter map[string]any

// Any is the filter key for an Or condition.
const Any = "$or"

// Range matches numeric or time fields within [Gte, Lte]. Either bound may be
// nil to leave that side open.
type Range struct {
	Gte any
	Lte any
}

// Contains matches string fields containing the given substring,
// case-insensitively.
type Contains string

// In matches fields equal to any of the listed values, or array fields
// containing any of them.
type In []string

// Or matches documents satisfying at least one of the subfilters. Valid only
// under the Any key.
type Or []Filter

// Patch is a partial modification: Set overwrites fields, Inc atomically adds
// to numeric fields. Both parts apply in a single store operation.
type Patch struct {
	Set map[string]any
	Inc map[string]int64
}

// FindOptions controls ordering and pagination of Find.
type FindOptions struct {
	Sort  string // field to sort by; empty leaves order unspecified
	Desc  bool
	Skip  int64
	Limit int64 // 0 means no limit
}

// Store is a uniform adapter over document collections. Implementations must
// apply Update as a partial set of the given fields and Increment as an atomic
// in-place add, never a read-modify-write.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) error
	FindOne(ctx context.Context, collection string, filter Filter, out any) error
	Find(ctx context.Context, collection string, filter Filter, opts FindOptions, out any) error
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
	Update(ctx context.Context, collection string, filter Filter, set map[string]any) error
	// FindOneAndUpdate applies the patch to the first matching document and
	// decodes the post-update document into out. Returns ErrNotFound when
	// nothing matches. This is the race-free replacement for the
	// update-then-refetch pattern.
	FindOneAndUpdate(ctx context.Context, collection string, filter Filter, patch Patch, out any) error
	Delete(ctx context.Context, collection string, filter Filter) (int64, error)
	DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error)
	Increment(ctx context.Context, collection string, filter Filter, field string, delta int64) error
}
