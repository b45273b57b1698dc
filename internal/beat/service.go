package beat

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
	ErrNotFound   = errors.New("beat not found")
	ErrValidation = errors.New("invalid beat input")
)

type Service interface {
	Create(ctx context.Context, in CreateInput) (*Beat, error)
	GetByID(ctx context.Context, id string) (*Beat, error)
	List(ctx context.Context, filter ListFilter) ([]Beat, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Beat, error)
	Delete(ctx context.Context, id string) error
	RecordDownload(ctx context.Context, id string) error
}

type service struct {
	store store.Store
}

func NewService(st store.Store) Service {
	return &service{store: st}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Beat, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate beat id: %w", err)
	}

	now := time.Now().UTC()
	b := &Beat{
		ID:           id.String(),
		Name:         in.Name,
		Producer:     in.Producer,
		BPM:          in.BPM,
		Key:          in.Key,
		Genre:        in.Genre,
		Mood:         in.Mood,
		FileURL:      in.FileURL,
		ExternalLink: in.ExternalLink,
		Duration:     in.Duration,
		Tags:         in.Tags,
		Price:        in.Price,
		IsFree:       in.IsFree,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}

	if err := s.store.Insert(ctx, Collection, b); err != nil {
		log.Error().Err(err).Msg("service: failed to insert beat")
		return nil, fmt.Errorf("service: failed to create beat: %w", err)
	}

	log.Info().Str("beat_id", b.ID).Str("name", b.Name).Msg("service: beat created")
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Beat, error) {
	var b Beat
	err := s.store.FindOne(ctx, Collection, store.Filter{"id": id}, &b)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to fetch beat %s: %w", id, err)
	}
	return &b, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Beat, error) {
	query := store.Filter{}
	if filter.Genre != "" {
		query["genre"] = filter.Genre
	}
	if filter.FreeOnly {
		query["is_free"] = true
	}
	if filter.Search != "" {
		query[store.Any] = store.Or{
			{"name": store.Contains(filter.Search)},
			{"producer": store.Contains(filter.Search)},
			{"tags": store.In{filter.Search}},
		}
	}

	beats := make([]Beat, 0)
	err := s.store.Find(ctx, Collection, query, store.FindOptions{Sort: "created_at", Desc: true, Limit: 1000}, &beats)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list beats: %w", err)
	}
	return beats, nil
}

func (s *service) Update(ctx context.Context, id string, in UpdateInput) (*Beat, error) {
	set := map[string]any{}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("name cannot be empty: %w", ErrValidation)
		}
		set["name"] = *in.Name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("price cannot be negative: %w", ErrValidation)
		}
		set["price"] = *in.Price
	}
	if in.Producer != nil {
		set["producer"] = *in.Producer
	}
	if in.BPM != nil {
		set["bpm"] = *in.BPM
	}
	if in.Key != nil {
		set["key"] = *in.Key
	}
	if in.Genre != nil {
		set["genre"] = *in.Genre
	}
	if in.Mood != nil {
		set["mood"] = *in.Mood
	}
	if in.FileURL != nil {
		set["file_url"] = *in.FileURL
	}
	if in.ExternalLink != nil {
		set["external_link"] = *in.ExternalLink
	}
	if in.Duration != nil {
		set["duration"] = *in.Duration
	}
	if in.Tags != nil {
		set["tags"] = *in.Tags
	}
	if in.IsFree != nil {
		set["is_free"] = *in.IsFree
	}
	set["updated_at"] = time.Now().UTC()

	var updated Beat
	err := s.store.FindOneAndUpdate(ctx, Collection, store.Filter{"id": id}, store.Patch{Set: set}, &updated)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("beat_id", id).Msg("service: failed to update beat")
		return nil, fmt.Errorf("service: failed to update beat %s: %w", id, err)
	}
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	n, err := s.store.Delete(ctx, Collection, store.Filter{"id": id})
	if err != nil {
		return fmt.Errorf("service: failed to delete beat %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	log.Info().Str("beat_id", id).Msg("service: beat deleted")
	return nil
}

func (s *service) RecordDownload(ctx context.Context, id string) error {
	var b Beat
	err := s.store.FindOneAndUpdate(ctx, Collection, store.Filter{"id": id}, store.Patch{
		Inc: map[string]int64{"download_count": 1},
	}, &b)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service: failed to record download for beat %s: %w", id, err)
	}
	return nil
}
