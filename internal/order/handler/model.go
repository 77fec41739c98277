package handler

import "github.com/arminmzh/storeforge-backend/internal/order"

type AddressRequest struct {
	Street     string `json:"street" validate:"required,max=300"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
}

func (r *AddressRequest) toDomain() order.Address {
	return order.Address{
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
	}
}

type LineItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	UnitPrice string `json:"unitPrice" validate:"required,number"`
}

type OrderRequest struct {
	BuyerID          string            `json:"buyerId" validate:"required"`
	ShippingAddress  AddressRequest    `json:"shippingAddress" validate:"required"`
	PostTrackingCode string            `json:"postTrackingCode"`
	Items            []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	Status           string            `json:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	PaymentStatus    string            `json:"paymentStatus" validate:"omitempty,oneof=pending paid failed refunded"`
	Total            string            `json:"total" validate:"required,number"`
}

func (r *OrderRequest) ToDomain(storeID string) order.Order {
	items := make([]order.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, order.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return order.Order{
		StoreID:          storeID,
		BuyerID:          r.BuyerID,
		ShippingAddress:  r.ShippingAddress.toDomain(),
		PostTrackingCode: r.PostTrackingCode,
		Items:            items,
		Status:           r.Status,
		PaymentStatus:    r.PaymentStatus,
		Total:            r.Total,
	}
}

type OrderPatchRequest struct {
	Status           *string         `json:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	PaymentStatus    *string         `json:"paymentStatus" validate:"omitempty,oneof=pending paid failed refunded"`
	PostTrackingCode *string         `json:"postTrackingCode"`
	ShippingAddress  *AddressRequest `json:"shippingAddress"`
}

func (r *OrderPatchRequest) ToPatch() order.Patch {
	patch := order.Patch{
		Status:           r.Status,
		PaymentStatus:    r.PaymentStatus,
		PostTrackingCode: r.PostTrackingCode,
	}

	if r.ShippingAddress != nil {
		address := r.ShippingAddress.toDomain()
		patch.ShippingAddress = &address
	}

	return patch
}

type MessageResponse struct {
	Message string `json:"message"`
}
