package catalog

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
	ErrProductNotFound = errors.New("product not found")
	ErrValidation      = errors.New("invalid catalog input")
)

type Service interface {
	CreateProduct(ctx context.Context, in CreateProductInput) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
	UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateReview(ctx context.Context, productID string, in CreateReviewInput) (*Review, error)
	ListReviews(ctx context.Context, productID string) ([]Review, error)
}

type service struct {
	store store.Store
}

func NewService(st store.Store) Service {
	return &service{store: st}
}

func (s *service) CreateProduct(ctx context.Context, in CreateProductInput) (*Product, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("unknown product category %q: %w", in.Category, ErrValidation)
	}
	if !in.ProductType.Valid() {
		return nil, fmt.Errorf("unknown product type %q: %w", in.ProductType, ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}
	if in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		return nil, fmt.Errorf("discount percentage must be within [0,100], got %v: %w", in.DiscountPercentage, ErrValidation)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate product id: %w", err)
	}

	now := time.Now().UTC()
	p := &Product{
		ID:                 id.String(),
		Name:               in.Name,
		Description:        in.Description,
		Price:              in.Price,
		Category:           in.Category,
		ProductType:        in.ProductType,
		ImageURL:           in.ImageURL,
		DownloadURL:        in.DownloadURL,
		StockQuantity:      in.StockQuantity,
		Tags:               emptyIfNil(in.Tags),
		Features:           emptyIfNil(in.Features),
		Requirements:       emptyIfNil(in.Requirements),
		IsActive:           true,
		IsFeatured:         in.IsFeatured,
		DiscountPercentage: in.DiscountPercentage,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.store.Insert(ctx, ProductCollection, p); err != nil {
		log.Error().Err(err).Msg("service: failed to insert product")
		return nil, fmt.Errorf("service: failed to create product: %w", err)
	}

	log.Info().Str("product_id", p.ID).Str("category", p.Category.String()).Msg("service: product created")
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := s.store.FindOne(ctx, ProductCollection, store.Filter{"id": id}, &p)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("service: failed to fetch product %s: %w", id, err)
	}
	return &p, nil
}

func (s *service) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	query := store.Filter{}
	if filter.Category != "" {
		if !filter.Category.Valid() {
			return nil, fmt.Errorf("unknown product category %q: %w", filter.Category, ErrValidation)
		}
		query["category"] = string(filter.Category)
	}
	if filter.ActiveOnly {
		query["is_active"] = true
	}
	if filter.FeaturedOnly {
		query["is_featured"] = true
	}

	products := make([]Product, 0)
	err := s.store.Find(ctx, ProductCollection, query, store.FindOptions{Sort: "created_at", Desc: true, Limit: 1000}, &products)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*Product, error) {
	set := map[string]any{}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("name cannot be empty: %w", ErrValidation)
		}
		set["name"] = *in.Name
	}
	if in.Category != nil {
		if !in.Category.Valid() {
			return nil, fmt.Errorf("unknown product category %q: %w", *in.Category, ErrValidation)
		}
		set["category"] = string(*in.Category)
	}
	if in.ProductType != nil {
		if !in.ProductType.Valid() {
			return nil, fmt.Errorf("unknown product type %q: %w", *in.ProductType, ErrValidation)
		}
		set["product_type"] = string(*in.ProductType)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("price cannot be negative: %w", ErrValidation)
		}
		set["price"] = *in.Price
	}
	if in.DiscountPercentage != nil {
		if *in.DiscountPercentage < 0 || *in.DiscountPercentage > 100 {
			return nil, fmt.Errorf("discount percentage must be within [0,100], got %v: %w", *in.DiscountPercentage, ErrValidation)
		}
		set["discount_percentage"] = *in.DiscountPercentage
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.ImageURL != nil {
		set["image_url"] = *in.ImageURL
	}
	if in.DownloadURL != nil {
		set["download_url"] = *in.DownloadURL
	}
	if in.StockQuantity != nil {
		set["stock_quantity"] = *in.StockQuantity
	}
	if in.Tags != nil {
		set["tags"] = emptyIfNil(*in.Tags)
	}
	if in.Features != nil {
		set["features"] = emptyIfNil(*in.Features)
	}
	if in.Requirements != nil {
		set["requirements"] = emptyIfNil(*in.Requirements)
	}
	if in.IsActive != nil {
		set["is_active"] = *in.IsActive
	}
	if in.IsFeatured != nil {
		set["is_featured"] = *in.IsFeatured
	}
	set["updated_at"] = time.Now().UTC()

	var updated Product
	err := s.store.FindOneAndUpdate(ctx, ProductCollection, store.Filter{"id": id}, store.Patch{Set: set}, &updated)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		log.Error().Err(err).Str("product_id", id).Msg("service: failed to update product")
		return nil, fmt.Errorf("service: failed to update product %s: %w", id, err)
	}
	return &updated, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	n, err := s.store.Delete(ctx, ProductCollection, store.Filter{"id": id})
	if err != nil {
		return fmt.Errorf("service: failed to delete product %s: %w", id, err)
	}
	if n == 0 {
		return ErrProductNotFound
	}
	log.Info().Str("product_id", id).Msg("service: product deleted")
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
