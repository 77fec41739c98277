package order

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// KnownStatus reports whether the value belongs to the order status
// set. Transitions between known values are free-form.
func KnownStatus(status string) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func KnownPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

type Order struct {
	ID               string     `json:"id"`
	StoreID          string     `json:"storeId"`
	BuyerID          string     `json:"buyerId"`
	ShippingAddress  Address    `json:"shippingAddress"`
	PostTrackingCode string     `json:"postTrackingCode,omitempty"`
	Items            []LineItem `json:"items"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"paymentStatus"`
	Total            string     `json:"total"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type Patch struct {
	Status           *string
	PaymentStatus    *string
	PostTrackingCode *string
	ShippingAddress  *Address
}

type OrderResponse struct {
	Order Order `json:"order"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}
