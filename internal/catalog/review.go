package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/onimix/artist-platform/internal/store"
)

func (s *service) CreateReview(ctx context.Context, productID string, in CreateReviewInput) (*Review, error) {
	// Rating bounds are checked before anything touches the store.
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d: %w", in.Rating, ErrValidation)
	}
	if in.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required: %w", ErrValidation)
	}

	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate review id: %w", err)
	}

	r := &Review{
		ID:            id.String(),
		ProductID:     productID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Rating:        in.Rating,
		Comment:       in.Comment,
		IsVerified:    in.IsVerified,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, ReviewCollection, r); err != nil {
		log.Error().Err(err).Msg("service: failed to insert review")
		return nil, fmt.Errorf("service: failed to create review: %w", err)
	}

	if err := s.recomputeProductRating(ctx, productID); err != nil {
		return nil, err
	}

	log.Info().Str("review_id", r.ID).Str("product_id", productID).Int("rating", r.Rating).Msg("service: review created")
	return r, nil
}

func (s *service) ListReviews(ctx context.Context, productID string) ([]Review, error) {
	reviews := make([]Review, 0)
	err := s.store.Find(ctx, ReviewCollection, store.Filter{"product_id": productID},
		store.FindOptions{Sort: "created_at", Desc: true, Limit: 1000}, &reviews)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

// recomputeProductRating rebuilds the product's rating from the full review
// set rather than maintaining a running average, so the stored value always
// equals the mean of the reviews that exist right now.
func (s *service) recomputeProductRating(ctx context.Context, productID string) error {
	var reviews []Review
	err := s.store.Find(ctx, ReviewCollection, store.Filter{"product_id": productID}, store.FindOptions{}, &reviews)
	if err != nil {
		return fmt.Errorf("service: failed to load reviews for product %s: %w", productID, err)
	}

	rating := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		rating = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	var updated Product
	err = s.store.FindOneAndUpdate(ctx, ProductCollection, store.Filter{"id": productID}, store.Patch{
		Set: map[string]any{
			"rating":       rating,
			"review_count": len(reviews),
		},
	}, &updated)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Product vanished between the review write and the rollup; the
			// review stays, the stale product update is skipped.
			log.Warn().Str("product_id", productID).Msg("service: skipping rating rollup for missing product")
			return nil
		}
		return fmt.Errorf("service: failed to store rating for product %s: %w", productID, err)
	}
	return nil
}
