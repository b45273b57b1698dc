package catalog

import "time"

const (
	// ProductCollection and ReviewCollection are the store collections for
	// the shop catalog.
	ProductCollection = "products"
	ReviewCollection  = "reviews"
)

type ProductCategory string

const (
	CategoryTechTools   ProductCategory = "tech_tools"
	CategorySongRecords ProductCategory = "song_records"
	CategoryBeats       ProductCategory = "beats"
	CategorySamples     ProductCategory = "samples"
	CategoryMerch       ProductCategory = "merch"
)

// ProductCategories lists every category in wire order; analytics emits one
// bucket per entry.
func ProductCategories() []ProductCategory {
	return []ProductCategory{
		CategoryTechTools,
		CategorySongRecords,
		CategoryBeats,
		CategorySamples,
		CategoryMerch,
	}
}

func (c ProductCategory) Valid() bool {
	for _, known := range ProductCategories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c ProductCategory) String() string {
	return string(c)
}

type ProductType string

const (
	TypeDigital      ProductType = "digital"
	TypePhysical     ProductType = "physical"
	TypeSubscription ProductType = "subscription"
)

func (t ProductType) Valid() bool {
	switch t {
	case TypeDigital, TypePhysical, TypeSubscription:
		return true
	}
	return false
}

type Product struct {
	ID                 string          `json:"id" bson:"id"`
	Name               string          `json:"name" bson:"name"`
	Description        string          `json:"description" bson:"description"`
	Price              float64         `json:"price" bson:"price"`
	Category           ProductCategory `json:"category" bson:"category"`
	ProductType        ProductType     `json:"product_type" bson:"product_type"`
	ImageURL           string          `json:"image_url,omitempty" bson:"image_url,omitempty"`
	DownloadURL        string          `json:"download_url,omitempty" bson:"download_url,omitempty"`
	StockQuantity      int             `json:"stock_quantity" bson:"stock_quantity"`
	SoldCount          int64           `json:"sold_count" bson:"sold_count"`
	Rating             float64         `json:"rating" bson:"rating"`
	ReviewCount        int             `json:"review_count" bson:"review_count"`
	Tags               []string        `json:"tags" bson:"tags"`
	Features           []string        `json:"features" bson:"features"`
	Requirements       []string        `json:"requirements" bson:"requirements"`
	IsActive           bool            `json:"is_active" bson:"is_active"`
	IsFeatured         bool            `json:"is_featured" bson:"is_featured"`
	DiscountPercentage float64         `json:"discount_percentage" bson:"discount_percentage"`
	CreatedAt          time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" bson:"updated_at"`
}

type CreateProductInput struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              float64         `json:"price"`
	Category           ProductCategory `json:"category"`
	ProductType        ProductType     `json:"product_type"`
	ImageURL           string          `json:"image_url"`
	DownloadURL        string          `json:"download_url"`
	StockQuantity      int             `json:"stock_quantity"`
	Tags               []string        `json:"tags"`
	Features           []string        `json:"features"`
	Requirements       []string        `json:"requirements"`
	IsFeatured         bool            `json:"is_featured"`
	DiscountPercentage float64         `json:"discount_percentage"`
}

type UpdateProductInput struct {
	Name               *string          `json:"name"`
	Description        *string          `json:"description"`
	Price              *float64         `json:"price"`
	Category           *ProductCategory `json:"category"`
	ProductType        *ProductType     `json:"product_type"`
	ImageURL           *string          `json:"image_url"`
	DownloadURL        *string          `json:"download_url"`
	StockQuantity      *int             `json:"stock_quantity"`
	Tags               *[]string        `json:"tags"`
	Features           *[]string        `json:"features"`
	Requirements       *[]string        `json:"requirements"`
	IsActive           *bool            `json:"is_active"`
	IsFeatured         *bool            `json:"is_featured"`
	DiscountPercentage *float64         `json:"discount_percentage"`
}

type ProductFilter struct {
	Category     ProductCategory
	ActiveOnly   bool
	FeaturedOnly bool
}

type Review struct {
	ID            string    `json:"id" bson:"id"`
	ProductID     string    `json:"product_id" bson:"product_id"`
	CustomerName  string    `json:"customer_name" bson:"customer_name"`
	CustomerEmail string    `json:"customer_email" bson:"customer_email"`
	Rating        int       `json:"rating" bson:"rating"`
	Comment       string    `json:"comment" bson:"comment"`
	IsVerified    bool      `json:"is_verified" bson:"is_verified"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

type CreateReviewInput struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	IsVerified    bool   `json:"is_verified"`
}
