package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/onimix/artist-platform/internal/catalog"
	"github.com/onimix/artist-platform/internal/order"
	"github.com/onimix/artist-platform/internal/store"
	"github.com/onimix/artist-platform/internal/verse"
)

// revenueStatuses are the order statuses that count as revenue. Pending and
// cancelled orders are excluded.
var revenueStatuses = store.In{
	string(order.StatusPaid),
	string(order.StatusShipped),
	string(order.StatusDelivered),
}

const (
	monthlyWindow      = 6
	topProductLimit    = 5
	recentFeedLimit    = 10
	productivityWindow = 30 * 24 * time.Hour
)

// activityPriority breaks timestamp ties in the recent feed: verses before
// orders before products.
var activityPriority = map[ActivityType]int{
	ActivityVerse:   0,
	ActivityOrder:   1,
	ActivityProduct: 2,
}

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	VerseStats(ctx context.Context) (*VerseStats, error)
}

type service struct {
	store store.Store
	now   func() time.Time
}

func NewService(st store.Store) Service {
	return &service{store: st, now: time.Now}
}

// Dashboard recomputes the full snapshot from store reads on every call.
// There is no cache: either the whole snapshot is returned or an error is,
// never a partial result.
func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}

	var err error
	if d.TotalVerses, err = s.store.Count(ctx, verse.Collection, store.Filter{}); err != nil {
		return nil, fmt.Errorf("analytics: failed to count verses: %w", err)
	}
	if d.TotalProducts, err = s.store.Count(ctx, catalog.ProductCollection, store.Filter{"is_active": true}); err != nil {
		return nil, fmt.Errorf("analytics: failed to count products: %w", err)
	}
	if d.TotalOrders, err = s.store.Count(ctx, order.Collection, store.Filter{}); err != nil {
		return nil, fmt.Errorf("analytics: failed to count orders: %w", err)
	}

	if d.VersesByCategory, err = s.versesByCategory(ctx); err != nil {
		return nil, err
	}
	if d.ProductsByCategory, err = s.productsByCategory(ctx); err != nil {
		return nil, err
	}
	if d.OrdersByStatus, err = s.ordersByStatus(ctx); err != nil {
		return nil, err
	}

	eligible := make([]order.Order, 0)
	err = s.store.Find(ctx, order.Collection, store.Filter{"status": revenueStatuses}, store.FindOptions{}, &eligible)
	if err != nil {
		return nil, fmt.Errorf("analytics: failed to load revenue-eligible orders: %w", err)
	}
	for _, o := range eligible {
		d.TotalRevenue += o.FinalAmount
	}
	d.MonthlyRevenue = monthlySeries(eligible, s.now().UTC())

	if d.TopSellingProducts, err = s.topSellingProducts(ctx); err != nil {
		return nil, err
	}
	if d.RecentActivity, err = s.recentActivity(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

// Every enum member gets a bucket, zeros included; callers may index the maps
// without existence checks.

func (s *service) versesByCategory(ctx context.Context) (map[verse.Category]int64, error) {
	out := make(map[verse.Category]int64, len(verse.Categories()))
	for _, cat := range verse.Categories() {
		n, err := s.store.Count(ctx, verse.Collection, store.Filter{"category": string(cat)})
		if err != nil {
			return nil, fmt.Errorf("analytics: failed to count verses in %s: %w", cat, err)
		}
		out[cat] = n
	}
	return out, nil
}

func (s *service) productsByCategory(ctx context.Context) (map[catalog.ProductCategory]int64, error) {
	out := make(map[catalog.ProductCategory]int64, len(catalog.ProductCategories()))
	for _, cat := range catalog.ProductCategories() {
		n, err := s.store.Count(ctx, catalog.ProductCollection, store.Filter{"category": string(cat), "is_active": true})
		if err != nil {
			return nil, fmt.Errorf("analytics: failed to count products in %s: %w", cat, err)
		}
		out[cat] = n
	}
	return out, nil
}

func (s *service) ordersByStatus(ctx context.Context) (map[order.Status]int64, error) {
	out := make(map[order.Status]int64, len(order.Statuses()))
	for _, st := range order.Statuses() {
		n, err := s.store.Count(ctx, order.Collection, store.Filter{"status": string(st)})
		if err != nil {
			return nil, fmt.Errorf("analytics: failed to count orders in %s: %w", st, err)
		}
		out[st] = n
	}
	return out, nil
}

// monthlySeries buckets eligible orders into the trailing six calendar months,
// oldest first, the current partial month last. Buckets are half-open
// [start, nextStart) so an order lands in exactly one month regardless of
// month length or leap years.
func monthlySeries(eligible []order.Order, now time.Time) []MonthlyRevenue {
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	series := make([]MonthlyRevenue, 0, monthlyWindow)
	for i := monthlyWindow - 1; i >= 0; i-- {
		start := currentStart.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		bucket := MonthlyRevenue{Month: start.Format("Jan 2006")}
		for _, o := range eligible {
			if !o.CreatedAt.Before(start) && o.CreatedAt.Before(end) {
				bucket.Revenue += o.FinalAmount
				bucket.Orders++
			}
		}
		series = append(series, bucket)
	}
	return series
}

func (s *service) topSellingProducts(ctx context.Context) ([]TopProduct, error) {
	products := make([]catalog.Product, 0, topProductLimit)
	err := s.store.Find(ctx, catalog.ProductCollection, store.Filter{"is_active": true},
		store.FindOptions{Sort: "sold_count", Desc: true, Limit: topProductLimit}, &products)
	if err != nil {
		return nil, fmt.Errorf("analytics: failed to load top sellers: %w", err)
	}

	top := make([]TopProduct, 0, len(products))
	for _, p := range products {
		top = append(top, TopProduct{
			ProductID: p.ID,
			Name:      p.Name,
			SoldCount: p.SoldCount,
			Price:     p.Price,
			Revenue:   p.Price * float64(p.SoldCount),
		})
	}
	return top, nil
}

// recentActivity merges the newest verses, orders and products into one feed
// sorted by recency. Ties on identical timestamps fall back to type priority,
// then to the stores' own ordering.
func (s *service) recentActivity(ctx context.Context) ([]Activity, error) {
	feed := make([]Activity, 0, 8)

	verses := make([]verse.Verse, 0, 3)
	err := s.store.Find(ctx, verse.Collection, store.Filter{},
		store.FindOptions{Sort: "created_at", Desc: true, Limit: 3}, &verses)
	if err != nil {
		return nil, fmt.Errorf("analytics: failed to load recent verses: %w", err)
	}
	for _, v := range verses {
		feed = append(feed, Activity{
			Type:      ActivityVerse,
			Title:     v.Title,
			Timestamp: v.CreatedAt,
			Detail:    v.Category.String(),
		})
	}

	orders := make([]order.Order, 0, 3)
	err = s.store.Find(ctx, order.Collection, store.Filter{},
		store.FindOptions{Sort: "created_at", Desc: true, Limit: 3}, &orders)
	if err != nil {
		return nil, fmt.Errorf("analytics: failed to load recent orders: %w", err)
	}
	for _, o := range orders {
		feed = append(feed, Activity{
			Type:      ActivityOrder,
			Title:     o.OrderNumber,
			Timestamp: o.CreatedAt,
			Detail:    fmt.Sprintf("%s ($%.2f)", o.Status, o.FinalAmount),
		})
	}

	products := make([]catalog.Product, 0, 2)
	err = s.store.Find(ctx, catalog.ProductCollection, store.Filter{},
		store.FindOptions{Sort: "created_at", Desc: true, Limit: 2}, &products)
	if err != nil {
		return nil, fmt.Errorf("analytics: failed to load recent products: %w", err)
	}
	for _, p := range products {
		feed = append(feed, Activity{
			Type:      ActivityProduct,
			Title:     p.Name,
			Timestamp: p.CreatedAt,
			Detail:    p.Category.String(),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		if !feed[i].Timestamp.Equal(feed[j].Timestamp) {
			return feed[i].Timestamp.After(feed[j].Timestamp)
		}
		return activityPriority[feed[i].Type] < activityPriority[feed[j].Type]
	})

	if len(feed) > recentFeedLimit {
		feed = feed[:recentFeedLimit]
	}
	return feed, nil
}

func (s *service) VerseStats(ctx context.Context) (*VerseStats, error) {
	verses := make([]verse.Verse, 0)
	err := s.store.Find(ctx, verse.Collection, store.Filter{}, store.FindOptions{}, &verses)
	if err != nil {
		return nil, fmt.Errorf("analytics: failed to load verses: %w", err)
	}

	stats := &VerseStats{
		TotalVerses:  int64(len(verses)),
		Productivity: make(map[string]int),
	}
	if len(verses) == 0 {
		return stats, nil
	}

	var completed, recorded, published int
	var words, lines int
	cutoff := s.now().UTC().Add(-productivityWindow)

	for _, v := range verses {
		if v.IsComplete {
			completed++
		}
		if v.IsRecorded {
			recorded++
		}
		if v.IsPublished {
			published++
		}
		words += v.WordCount
		lines += v.LineCount

		if !v.CreatedAt.Before(cutoff) {
			stats.Productivity[v.CreatedAt.Format("2006-01-02")]++
		}
	}

	total := float64(len(verses))
	stats.CompletionRate = float64(completed) / total * 100
	stats.RecordingRate = float64(recorded) / total * 100
	stats.PublicationRate = float64(published) / total * 100
	stats.AvgWordCount = float64(words) / total
	stats.AvgLineCount = float64(lines) / total

	return stats, nil
}
