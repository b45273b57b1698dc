package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/onimix/artist-platform/internal/catalog"
	"github.com/onimix/artist-platform/internal/store"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrValidation        = errors.New("invalid order input")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

type Service interface {
	Create(ctx context.Context, in CreateInput) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, in StatusUpdateInput) (*Order, error)
}

type service struct {
	store store.Store
}

func NewService(st store.Store) Service {
	return &service{store: st}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Order, error) {
	if in.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required: %w", ErrValidation)
	}
	if in.CustomerEmail == "" {
		return nil, fmt.Errorf("customer email is required: %w", ErrValidation)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item: %w", ErrValidation)
	}
	for _, line := range in.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("quantity for product %s must be at least 1: %w", line.ProductID, ErrValidation)
		}
	}

	products, err := s.productSnapshot(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	items, totals := PriceCart(in.Items, products)

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate order id: %w", err)
	}

	now := time.Now().UTC()
	o := &Order{
		ID:              id.String(),
		OrderNumber:     newOrderNumber(now, id),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		Items:           items,
		TotalAmount:     totals.Total,
		TaxAmount:       totals.Tax,
		ShippingCost:    totals.Shipping,
		DiscountAmount:  totals.Discount,
		FinalAmount:     totals.Final,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Insert(ctx, Collection, o); err != nil {
		log.Error().Err(err).Msg("service: failed to insert order")
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}

	// sold_count moves via the store's atomic increment so concurrent orders
	// against the same product never lose updates.
	for _, item := range items {
		err := s.store.Increment(ctx, catalog.ProductCollection, store.Filter{"id": item.ProductID}, "sold_count", int64(item.Quantity))
		if err != nil {
			log.Error().Err(err).Str("product_id", item.ProductID).Msg("service: failed to bump sold_count")
		}
	}

	log.Info().
		Str("order_id", o.ID).
		Str("order_number", o.OrderNumber).
		Float64("final_amount", o.FinalAmount).
		Int("items", len(items)).
		Msg("service: order created")

	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := s.store.FindOne(ctx, Collection, store.Filter{"id": id}, &o)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to fetch order %s: %w", id, err)
	}
	return &o, nil
}

func (s *service) GetByOrderNumber(ctx context.Context, orderNumber string) (*Order, error) {
	var o Order
	err := s.store.FindOne(ctx, Collection, store.Filter{"order_number": orderNumber}, &o)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to fetch order %s: %w", orderNumber, err)
	}
	return &o, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Order, error) {
	query := store.Filter{}
	if filter.Status != "" {
		if !filter.Status.Valid() {
			return nil, fmt.Errorf("unknown status %q: %w", filter.Status, ErrValidation)
		}
		query["status"] = string(filter.Status)
	}

	orders := make([]Order, 0)
	err := s.store.Find(ctx, Collection, query, store.FindOptions{Sort: "created_at", Desc: true, Limit: 1000}, &orders)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, in StatusUpdateInput) (*Order, error) {
	if !in.Status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", in.Status, ErrValidation)
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !allowedTransitions[current.Status][in.Status] {
		log.Warn().
			Str("order_id", id).
			Stringer("current_status", current.Status).
			Stringer("new_status", in.Status).
			Msg("service: rejected status transition")
		return nil, fmt.Errorf("cannot transition from %s to %s: %w", current.Status, in.Status, ErrInvalidTransition)
	}

	now := time.Now().UTC()
	set := map[string]any{
		"status":     string(in.Status),
		"updated_at": now,
	}
	switch in.Status {
	case StatusPaid:
		if in.PaymentID != "" {
			set["payment_id"] = in.PaymentID
		}
	case StatusShipped:
		set["shipped_at"] = now
		if in.TrackingNumber != "" {
			set["tracking_number"] = in.TrackingNumber
		}
	case StatusDelivered:
		set["delivered_at"] = now
	}

	var updated Order
	err = s.store.FindOneAndUpdate(ctx, Collection, store.Filter{"id": id}, store.Patch{Set: set}, &updated)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("order_id", id).Msg("service: failed to update order status")
		return nil, fmt.Errorf("service: failed to update order %s: %w", id, err)
	}

	log.Info().
		Str("order_id", id).
		Stringer("old_status", current.Status).
		Stringer("new_status", updated.Status).
		Msg("service: order status updated")

	return &updated, nil
}

// productSnapshot resolves cart lines against the catalog. Unknown ids are
// left out of the snapshot; PriceCart skips them.
func (s *service) productSnapshot(ctx context.Context, lines []CartLine) (map[string]catalog.Product, error) {
	products := make(map[string]catalog.Product, len(lines))
	for _, line := range lines {
		if _, seen := products[line.ProductID]; seen {
			continue
		}
		var p catalog.Product
		err := s.store.FindOne(ctx, catalog.ProductCollection, store.Filter{"id": line.ProductID}, &p)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn().Str("product_id", line.ProductID).Msg("service: skipping cart line for unknown product")
				continue
			}
			return nil, fmt.Errorf("service: failed to load product %s: %w", line.ProductID, err)
		}
		products[p.ID] = p
	}
	return products, nil
}

// newOrderNumber builds the human-readable date-stamped identifier, e.g.
// ORD-20260831-9F2C41A7.
func newOrderNumber(now time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
