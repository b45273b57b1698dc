package verse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/onimix/artist-platform/internal/store"
)

var (
	ErrNotFound   = errors.New("verse not found")
	ErrValidation = errors.New("invalid verse input")
)

type Service interface {
	Create(ctx context.Context, in CreateInput) (*Verse, error)
	GetByID(ctx context.Context, id string) (*Verse, error)
	List(ctx context.Context, filter ListFilter) ([]Verse, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Verse, error)
	Delete(ctx context.Context, id string) error
	RecordPlay(ctx context.Context, id string) error
	RecordLike(ctx context.Context, id string) error
}

type service struct {
	store store.Store
}

func NewService(st store.Store) Service {
	return &service{store: st}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Verse, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("title is required: %w", ErrValidation)
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", in.Category, ErrValidation)
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, fmt.Errorf("unknown priority %q: %w", in.Priority, ErrValidation)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate verse id: %w", err)
	}

	now := time.Now().UTC()
	v := &Verse{
		ID:               id.String(),
		Title:            in.Title,
		Lyrics:           in.Lyrics,
		Category:         in.Category,
		BeatExternalLink: in.BeatExternalLink,
		BeatName:         in.BeatName,
		Tags:             emptyIfNil(in.Tags),
		Notes:            in.Notes,
		Version:          1,
		WordCount:        WordCount(in.Lyrics),
		LineCount:        LineCount(in.Lyrics),
		RhymeScheme:      RhymeScheme(in.Lyrics),
		BPM:              in.BPM,
		Key:              in.Key,
		Mood:             in.Mood,
		Priority:         in.Priority,
		Collaborators:    emptyIfNil(in.Collaborators),
		IsComplete:       in.IsComplete,
		IsRecorded:       in.IsRecorded,
		IsPublished:      in.IsPublished,
		CreatedAt:        now,
		UpdatedAt:        now,
		LastEditedAt:     now,
	}

	if err := s.store.Insert(ctx, Collection, v); err != nil {
		log.Error().Err(err).Msg("service: failed to insert verse")
		return nil, fmt.Errorf("service: failed to create verse: %w", err)
	}

	log.Info().Str("verse_id", v.ID).Str("category", v.Category.String()).Msg("service: verse created")
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Verse, error) {
	var v Verse
	err := s.store.FindOne(ctx, Collection, store.Filter{"id": id}, &v)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to fetch verse %s: %w", id, err)
	}
	return &v, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Verse, error) {
	query := store.Filter{}
	if filter.Category != "" {
		if !filter.Category.Valid() {
			return nil, fmt.Errorf("unknown category %q: %w", filter.Category, ErrValidation)
		}
		query["category"] = string(filter.Category)
	}
	if filter.Search != "" {
		query[store.Any] = store.Or{
			{"title": store.Contains(filter.Search)},
			{"lyrics": store.Contains(filter.Search)},
			{"tags": store.In{filter.Search}},
		}
	}

	verses := make([]Verse, 0)
	err := s.store.Find(ctx, Collection, query, store.FindOptions{Sort: "updated_at", Desc: true, Limit: 1000}, &verses)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list verses: %w", err)
	}
	return verses, nil
}

func (s *service) Update(ctx context.Context, id string, in UpdateInput) (*Verse, error) {
	set := map[string]any{}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("title cannot be empty: %w", ErrValidation)
		}
		set["title"] = *in.Title
	}
	if in.Category != nil {
		if !in.Category.Valid() {
			return nil, fmt.Errorf("unknown category %q: %w", *in.Category, ErrValidation)
		}
		set["category"] = string(*in.Category)
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return nil, fmt.Errorf("unknown priority %q: %w", *in.Priority, ErrValidation)
		}
		set["priority"] = string(*in.Priority)
	}

	now := time.Now().UTC()
	if in.Lyrics != nil {
		// Derived metrics always track the lyrics they were computed from.
		set["lyrics"] = *in.Lyrics
		set["word_count"] = WordCount(*in.Lyrics)
		set["line_count"] = LineCount(*in.Lyrics)
		set["rhyme_scheme"] = RhymeScheme(*in.Lyrics)
		set["last_edited_at"] = now
	}
	if in.BeatExternalLink != nil {
		set["beat_external_link"] = *in.BeatExternalLink
	}
	if in.BeatName != nil {
		set["beat_name"] = *in.BeatName
	}
	if in.Tags != nil {
		set["tags"] = emptyIfNil(*in.Tags)
	}
	if in.Notes != nil {
		set["notes"] = *in.Notes
	}
	if in.BPM != nil {
		set["bpm"] = *in.BPM
	}
	if in.Key != nil {
		set["key"] = *in.Key
	}
	if in.Mood != nil {
		set["mood"] = *in.Mood
	}
	if in.Collaborators != nil {
		set["collaborators"] = emptyIfNil(*in.Collaborators)
	}
	if in.IsComplete != nil {
		set["is_complete"] = *in.IsComplete
	}
	if in.IsRecorded != nil {
		set["is_recorded"] = *in.IsRecorded
	}
	if in.IsPublished != nil {
		set["is_published"] = *in.IsPublished
	}
	set["updated_at"] = now

	var updated Verse
	err := s.store.FindOneAndUpdate(ctx, Collection, store.Filter{"id": id}, store.Patch{
		Set: set,
		Inc: map[string]int64{"version": 1},
	}, &updated)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("verse_id", id).Msg("service: failed to update verse")
		return nil, fmt.Errorf("service: failed to update verse %s: %w", id, err)
	}

	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	n, err := s.store.Delete(ctx, Collection, store.Filter{"id": id})
	if err != nil {
		return fmt.Errorf("service: failed to delete verse %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	log.Info().Str("verse_id", id).Msg("service: verse deleted")
	return nil
}

func (s *service) RecordPlay(ctx context.Context, id string) error {
	return s.bumpCounter(ctx, id, "plays_count")
}

func (s *service) RecordLike(ctx context.Context, id string) error {
	return s.bumpCounter(ctx, id, "likes_count")
}

func (s *service) bumpCounter(ctx context.Context, id, field string) error {
	var v Verse
	err := s.store.FindOneAndUpdate(ctx, Collection, store.Filter{"id": id}, store.Patch{
		Inc: map[string]int64{field: 1},
	}, &v)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service: failed to increment %s for verse %s: %w", field, id, err)
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
