package analytics

import (
	"time"

	"github.com/onimix/artist-platform/internal/catalog"
	"github.com/onimix/artist-platform/internal/order"
	"github.com/onimix/artist-platform/internal/verse"
)

// MonthlyRevenue is one calendar-month bucket of the revenue series.
type MonthlyRevenue struct {
	Month   string  `json:"month"` // e.g. "Mar 2026"
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// TopProduct annotates a product with its lifetime revenue. Revenue uses the
// list price, not discounted order prices.
type TopProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	SoldCount int64   `json:"sold_count"`
	Price     float64 `json:"price"`
	Revenue   float64 `json:"revenue"`
}

type ActivityType string

const (
	ActivityVerse   ActivityType = "verse"
	ActivityOrder   ActivityType = "order"
	ActivityProduct ActivityType = "product"
)

// Activity is one entry of the unified recent-activity feed: heterogeneous
// records normalized into a common shape.
type Activity struct {
	Type      ActivityType `json:"type"`
	Title     string       `json:"title"`
	Timestamp time.Time    `json:"timestamp"`
	Detail    string       `json:"detail"`
}

// Dashboard is the on-demand aggregate over every collection. It is derived
// state with no lifecycle of its own; nothing here is persisted.
type Dashboard struct {
	TotalVerses        int64                             `json:"total_verses"`
	TotalProducts      int64                             `json:"total_products"`
	TotalOrders        int64                             `json:"total_orders"`
	TotalRevenue       float64                           `json:"total_revenue"`
	VersesByCategory   map[verse.Category]int64          `json:"verse_by_category"`
	ProductsByCategory map[catalog.ProductCategory]int64 `json:"products_by_category"`
	OrdersByStatus     map[order.Status]int64            `json:"orders_by_status"`
	MonthlyRevenue     []MonthlyRevenue                  `json:"monthly_revenue"`
	TopSellingProducts []TopProduct                      `json:"top_selling_products"`
	RecentActivity     []Activity                        `json:"recent_activity"`
}

// VerseStats summarizes the writing pipeline.
type VerseStats struct {
	TotalVerses     int64          `json:"total_verses"`
	CompletionRate  float64        `json:"completion_rate"`
	RecordingRate   float64        `json:"recording_rate"`
	PublicationRate float64        `json:"publication_rate"`
	AvgWordCount    float64        `json:"avg_word_count"`
	AvgLineCount    float64        `json:"avg_line_count"`
	// Productivity maps calendar dates (YYYY-MM-DD) of the trailing 30 days
	// to verse-creation counts. Days without verses are absent.
	Productivity map[string]int `json:"productivity"`
}
