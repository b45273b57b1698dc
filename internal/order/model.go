package order

import "time"

// Collection is the store collection holding orders.
const Collection = "orders"

type Status string

const (
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every status in lifecycle order; analytics emits one bucket
// per entry.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusPaid,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
}

func (s Status) Valid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// allowedTransitions is the order lifecycle: one forward step at a time, with
// cancellation possible from any non-terminal state. Nothing moves backwards.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusPaid:      true,
		StatusCancelled: true,
	},
	StatusPaid: {
		StatusProcessing: true,
		StatusCancelled:  true,
	},
	StatusProcessing: {
		StatusShipped:   true,
		StatusCancelled: true,
	},
	StatusShipped: {
		StatusDelivered: true,
		StatusCancelled: true,
	},
	StatusDelivered: {},
	StatusCancelled: {},
}

// Item is one line of an order. Name, unit price and discount are frozen at
// order-creation time; later catalog edits never change a placed order.
type Item struct {
	ProductID          string  `json:"product_id" bson:"product_id"`
	ProductName        string  `json:"product_name" bson:"product_name"`
	Quantity           int     `json:"quantity" bson:"quantity"`
	UnitPrice          float64 `json:"unit_price" bson:"unit_price"`
	DiscountPercentage float64 `json:"discount_percentage" bson:"discount_percentage"`
	// FinalPrice is the discounted unit price; Discount is the absolute
	// amount saved across the whole line.
	FinalPrice float64 `json:"final_price" bson:"final_price"`
	Discount   float64 `json:"discount" bson:"discount"`
}

type Order struct {
	ID              string     `json:"id" bson:"id"`
	OrderNumber     string     `json:"order_number" bson:"order_number"`
	CustomerName    string     `json:"customer_name" bson:"customer_name"`
	CustomerEmail   string     `json:"customer_email" bson:"customer_email"`
	CustomerPhone   string     `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	ShippingAddress string     `json:"shipping_address,omitempty" bson:"shipping_address,omitempty"`
	Items           []Item     `json:"items" bson:"items"`
	TotalAmount     float64    `json:"total_amount" bson:"total_amount"`
	TaxAmount       float64    `json:"tax_amount" bson:"tax_amount"`
	ShippingCost    float64    `json:"shipping_cost" bson:"shipping_cost"`
	DiscountAmount  float64    `json:"discount_amount" bson:"discount_amount"`
	FinalAmount     float64    `json:"final_amount" bson:"final_amount"`
	Status          Status     `json:"status" bson:"status"`
	PaymentID       string     `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	TrackingNumber  string     `json:"tracking_number,omitempty" bson:"tracking_number,omitempty"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" bson:"updated_at"`
	ShippedAt       *time.Time `json:"shipped_at,omitempty" bson:"shipped_at,omitempty"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty" bson:"delivered_at,omitempty"`
}

// CartLine is a requested product+quantity pair before pricing.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateInput struct {
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerPhone   string     `json:"customer_phone"`
	ShippingAddress string     `json:"shipping_address"`
	Items           []CartLine `json:"items"`
}

// StatusUpdateInput drives a single state-machine step. PaymentID is recorded
// on the transition to paid, TrackingNumber on the transition to shipped.
type StatusUpdateInput struct {
	Status         Status `json:"status"`
	PaymentID      string `json:"payment_id"`
	TrackingNumber string `json:"tracking_number"`
}

type ListFilter struct {
	Status Status
}
